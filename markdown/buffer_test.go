package markdown_test

import (
	"testing"

	"github.com/fwojciec/flatmark"
	"github.com/fwojciec/flatmark/markdown"
	"github.com/stretchr/testify/assert"
)

func TestBuffer_AppendText(t *testing.T) {
	t.Parallel()

	t.Run("first append starts at line 1 column 1", func(t *testing.T) {
		t.Parallel()
		b := markdown.NewBuffer()
		rng := b.AppendText("hello")
		assert.Equal(t, flatmark.Position{Line: 1, Character: 1}, rng.Start)
		assert.Equal(t, flatmark.Position{Line: 1, Character: 6}, rng.End)
		assert.Equal(t, []string{"hello"}, b.Lines())
	})

	t.Run("second append continues the last line", func(t *testing.T) {
		t.Parallel()
		b := markdown.NewBuffer()
		b.AppendText("ab")
		rng := b.AppendText("cd")
		assert.Equal(t, flatmark.Position{Line: 1, Character: 3}, rng.Start)
		assert.Equal(t, flatmark.Position{Line: 1, Character: 5}, rng.End)
		assert.Equal(t, []string{"abcd"}, b.Lines())
	})

	t.Run("newlines split into new lines", func(t *testing.T) {
		t.Parallel()
		b := markdown.NewBuffer()
		rng := b.AppendText("a\nbc\nd")
		assert.Equal(t, []string{"a", "bc", "d"}, b.Lines())
		assert.Equal(t, flatmark.Position{Line: 3, Character: 2}, rng.End)
	})

	t.Run("html entities are unescaped", func(t *testing.T) {
		t.Parallel()
		b := markdown.NewBuffer()
		rng := b.AppendText("a &amp; b")
		assert.Equal(t, []string{"a & b"}, b.Lines())
		assert.Equal(t, flatmark.Position{Line: 1, Character: 6}, rng.End)
	})

	t.Run("columns count bytes, not runes", func(t *testing.T) {
		t.Parallel()
		b := markdown.NewBuffer()
		rng := b.AppendText("héllo") // é is two bytes
		assert.Equal(t, flatmark.Position{Line: 1, Character: 7}, rng.End)
	})
}

func TestBuffer_EndOfBuffer(t *testing.T) {
	t.Parallel()

	t.Run("points one past the last byte", func(t *testing.T) {
		t.Parallel()
		b := markdown.NewBuffer()
		b.AppendText("ab\ncde")
		assert.Equal(t, flatmark.Position{Line: 2, Character: 4}, b.EndOfBuffer(false))
	})

	t.Run("exclusive adds one more byte", func(t *testing.T) {
		t.Parallel()
		b := markdown.NewBuffer()
		b.AppendText("ab")
		assert.Equal(t, flatmark.Position{Line: 1, Character: 4}, b.EndOfBuffer(true))
	})

	t.Run("uses byte length for multi-byte lines", func(t *testing.T) {
		t.Parallel()
		b := markdown.NewBuffer()
		b.AppendText("wörld")
		assert.Equal(t, flatmark.Position{Line: 1, Character: 7}, b.EndOfBuffer(false))
	})
}
