// Package markdown flattens markdown source into plain display lines
// plus attribute spans, using goldmark for parsing. The flattened text
// carries no markup syntax except heading markers, code span backticks
// and link punctuation; every structural feature is reported as an
// attribute span addressed by 1-indexed line and byte column.
package markdown

import (
	"errors"
	"fmt"

	"github.com/fwojciec/flatmark"
)

// Flatten parses source with GitHub-flavored rules and renders the
// resulting token tree. Trailing blank lines are dropped from the
// output. A failure on an unsupported construct (raw HTML, link
// reference definitions, backslash escapes) is reported as an internal
// limitation carrying the original source; it is never a partial
// result.
func Flatten(source string) (flatmark.Result, error) {
	res, err := Render(Tokenize(source))
	if err != nil {
		if errors.Is(err, flatmark.ErrUnsupportedToken) {
			return flatmark.Result{}, fmt.Errorf(
				"cannot flatten a construct the renderer does not support (internal limitation, please report it): %w; source: %q",
				err, source)
		}
		return flatmark.Result{}, err
	}
	return res, nil
}
