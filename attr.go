package flatmark

import "encoding/json"

// AttrKind identifies the shape of a TextAttr variant.
type AttrKind string

// The closed set of attribute kinds. Each kind maps to exactly one
// TextAttr variant.
const (
	AttrFenced            AttrKind = "fenced"
	AttrTitle             AttrKind = "title"
	AttrHorizontalRule    AttrKind = "horizontalrule"
	AttrBold              AttrKind = "bold"
	AttrStrike            AttrKind = "strike"
	AttrItalic            AttrKind = "italic"
	AttrLink              AttrKind = "link"
	AttrURL               AttrKind = "url"
	AttrCodeSpan          AttrKind = "codespan"
	AttrCodeSpanDelimiter AttrKind = "codespanDelimiter"
)

// AttrKinds returns the declared attribute kinds.
func AttrKinds() []AttrKind {
	return []AttrKind{
		AttrFenced,
		AttrTitle,
		AttrHorizontalRule,
		AttrBold,
		AttrStrike,
		AttrItalic,
		AttrLink,
		AttrURL,
		AttrCodeSpan,
		AttrCodeSpanDelimiter,
	}
}

// TextAttr is a sealed interface representing an attribute span in
// flattened text. The unexported marker method prevents external
// implementations. Shift returns a copy moved by the given line and
// byte deltas; it is the primitive used when a recursively rendered
// buffer is merged into its parent.
type TextAttr interface {
	textAttr()
	Kind() AttrKind
	Shift(lines, chars int) TextAttr
}

// FencedAttr marks the body of a fenced code block. Lang is the
// declared language tag, empty when the fence declared none. The range
// covers the code body only, not the fence delimiters.
type FencedAttr struct {
	Range Range
	Lang  string
}

func (FencedAttr) textAttr() {}

// Kind returns AttrFenced.
func (FencedAttr) Kind() AttrKind { return AttrFenced }

// Shift returns the attribute moved by the given deltas.
func (a FencedAttr) Shift(lines, chars int) TextAttr {
	a.Range = a.Range.Shift(lines, chars)
	return a
}

// TitleAttr marks heading content, with Depth the heading level.
// Depth 0 is reused for link and image title annotations; consumers
// depend on that overload, so it is part of the contract.
type TitleAttr struct {
	Range Range
	Depth int
}

func (TitleAttr) textAttr() {}

// Kind returns AttrTitle.
func (TitleAttr) Kind() AttrKind { return AttrTitle }

// Shift returns the attribute moved by the given deltas.
func (a TitleAttr) Shift(lines, chars int) TextAttr {
	a.Range = a.Range.Shift(lines, chars)
	return a
}

// HorizontalRuleAttr marks a thematic break. It is a zero-width marker
// carrying only the 1-indexed line of the blank line pushed for the
// rule, so Shift ignores the byte delta.
type HorizontalRuleAttr struct {
	Line int
}

func (HorizontalRuleAttr) textAttr() {}

// Kind returns AttrHorizontalRule.
func (HorizontalRuleAttr) Kind() AttrKind { return AttrHorizontalRule }

// Shift returns the attribute moved by the given line delta.
func (a HorizontalRuleAttr) Shift(lines, _ int) TextAttr {
	a.Line += lines
	return a
}

// BoldAttr marks strong emphasis.
type BoldAttr struct {
	Range Range
}

func (BoldAttr) textAttr() {}

// Kind returns AttrBold.
func (BoldAttr) Kind() AttrKind { return AttrBold }

// Shift returns the attribute moved by the given deltas.
func (a BoldAttr) Shift(lines, chars int) TextAttr {
	a.Range = a.Range.Shift(lines, chars)
	return a
}

// StrikeAttr marks struck-through text.
type StrikeAttr struct {
	Range Range
}

func (StrikeAttr) textAttr() {}

// Kind returns AttrStrike.
func (StrikeAttr) Kind() AttrKind { return AttrStrike }

// Shift returns the attribute moved by the given deltas.
func (a StrikeAttr) Shift(lines, chars int) TextAttr {
	a.Range = a.Range.Shift(lines, chars)
	return a
}

// ItalicAttr marks emphasized text.
type ItalicAttr struct {
	Range Range
}

func (ItalicAttr) textAttr() {}

// Kind returns AttrItalic.
func (ItalicAttr) Kind() AttrKind { return AttrItalic }

// Shift returns the attribute moved by the given deltas.
func (a ItalicAttr) Shift(lines, chars int) TextAttr {
	a.Range = a.Range.Shift(lines, chars)
	return a
}

// LinkAttr marks the rendered label of a link or image.
type LinkAttr struct {
	Range Range
}

func (LinkAttr) textAttr() {}

// Kind returns AttrLink.
func (LinkAttr) Kind() AttrKind { return AttrLink }

// Shift returns the attribute moved by the given deltas.
func (a LinkAttr) Shift(lines, chars int) TextAttr {
	a.Range = a.Range.Shift(lines, chars)
	return a
}

// URLAttr marks the destination of a link or image.
type URLAttr struct {
	Range Range
}

func (URLAttr) textAttr() {}

// Kind returns AttrURL.
func (URLAttr) Kind() AttrKind { return AttrURL }

// Shift returns the attribute moved by the given deltas.
func (a URLAttr) Shift(lines, chars int) TextAttr {
	a.Range = a.Range.Shift(lines, chars)
	return a
}

// CodeSpanAttr marks the body of an inline code span, between the
// backtick delimiters.
type CodeSpanAttr struct {
	Range Range
}

func (CodeSpanAttr) textAttr() {}

// Kind returns AttrCodeSpan.
func (CodeSpanAttr) Kind() AttrKind { return AttrCodeSpan }

// Shift returns the attribute moved by the given deltas.
func (a CodeSpanAttr) Shift(lines, chars int) TextAttr {
	a.Range = a.Range.Shift(lines, chars)
	return a
}

// CodeSpanDelimiterAttr marks one backtick delimiter of an inline code
// span.
type CodeSpanDelimiterAttr struct {
	Range Range
}

func (CodeSpanDelimiterAttr) textAttr() {}

// Kind returns AttrCodeSpanDelimiter.
func (CodeSpanDelimiterAttr) Kind() AttrKind { return AttrCodeSpanDelimiter }

// Shift returns the attribute moved by the given deltas.
func (a CodeSpanDelimiterAttr) Shift(lines, chars int) TextAttr {
	a.Range = a.Range.Shift(lines, chars)
	return a
}

// Interface compliance checks.
var (
	_ TextAttr = FencedAttr{}
	_ TextAttr = TitleAttr{}
	_ TextAttr = HorizontalRuleAttr{}
	_ TextAttr = BoldAttr{}
	_ TextAttr = StrikeAttr{}
	_ TextAttr = ItalicAttr{}
	_ TextAttr = LinkAttr{}
	_ TextAttr = URLAttr{}
	_ TextAttr = CodeSpanAttr{}
	_ TextAttr = CodeSpanDelimiterAttr{}
)

// rangeAttrJSON is the wire form shared by the range-only variants.
type rangeAttrJSON struct {
	Kind  AttrKind `json:"kind"`
	Range Range    `json:"range"`
}

// MarshalJSON encodes the attribute with its kind tag.
func (a FencedAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  AttrKind `json:"kind"`
		Range Range    `json:"range"`
		Lang  string   `json:"lang"`
	}{a.Kind(), a.Range, a.Lang})
}

// MarshalJSON encodes the attribute with its kind tag.
func (a TitleAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  AttrKind `json:"kind"`
		Range Range    `json:"range"`
		Depth int      `json:"depth"`
	}{a.Kind(), a.Range, a.Depth})
}

// MarshalJSON encodes the attribute with its kind tag.
func (a HorizontalRuleAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind AttrKind `json:"kind"`
		Line int      `json:"line"`
	}{a.Kind(), a.Line})
}

// MarshalJSON encodes the attribute with its kind tag.
func (a BoldAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeAttrJSON{a.Kind(), a.Range})
}

// MarshalJSON encodes the attribute with its kind tag.
func (a StrikeAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeAttrJSON{a.Kind(), a.Range})
}

// MarshalJSON encodes the attribute with its kind tag.
func (a ItalicAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeAttrJSON{a.Kind(), a.Range})
}

// MarshalJSON encodes the attribute with its kind tag.
func (a LinkAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeAttrJSON{a.Kind(), a.Range})
}

// MarshalJSON encodes the attribute with its kind tag.
func (a URLAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeAttrJSON{a.Kind(), a.Range})
}

// MarshalJSON encodes the attribute with its kind tag.
func (a CodeSpanAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeAttrJSON{a.Kind(), a.Range})
}

// MarshalJSON encodes the attribute with its kind tag.
func (a CodeSpanDelimiterAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeAttrJSON{a.Kind(), a.Range})
}
