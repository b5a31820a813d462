package markdown

import "github.com/fwojciec/flatmark"

// Buffer exposes the renderer's position primitives for tests.
type Buffer struct{ r renderer }

// NewBuffer returns an empty render buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// AppendText exposes the renderer's appendText.
func (b *Buffer) AppendText(raw string) flatmark.Range { return b.r.appendText(raw) }

// EndOfBuffer exposes the renderer's endOfBuffer.
func (b *Buffer) EndOfBuffer(exclusive bool) flatmark.Position { return b.r.endOfBuffer(exclusive) }

// Lines returns the buffered lines.
func (b *Buffer) Lines() []string { return b.r.lines }
