// Package flatmark defines the domain types for flattened markdown
// output: positions and ranges addressed by 1-indexed line and
// byte-offset column, the token tree consumed by the renderer, and the
// attribute spans it emits.
package flatmark

// Position is a location in flattened text. Line is 1-indexed;
// Character is a 1-indexed byte offset within that line. Columns count
// encoded UTF-8 bytes, never runes, because consumers address text by
// byte column.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Shift returns the position moved by the given line and byte deltas.
func (p Position) Shift(lines, chars int) Position {
	return Position{Line: p.Line + lines, Character: p.Character + chars}
}

// Range is a span of flattened text. End points one byte past the last
// byte of the span.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Shift returns the range with both endpoints moved by the given line
// and byte deltas.
func (r Range) Shift(lines, chars int) Range {
	return Range{Start: r.Start.Shift(lines, chars), End: r.End.Shift(lines, chars)}
}
