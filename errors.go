package flatmark

import "errors"

// Sentinel errors for the renderer's failure modes.
var (
	// ErrUnsupportedToken indicates a token kind the renderer declares
	// but cannot render (html, def, escape). It is an internal
	// limitation, not malformed input.
	ErrUnsupportedToken = errors.New("unsupported markdown construct")

	// ErrUnknownToken indicates a token kind outside the declared set,
	// which is a contract violation by the tokenizer.
	ErrUnknownToken = errors.New("unknown token kind")
)
