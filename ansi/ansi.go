// Package ansi paints flattened markdown output with ANSI styles. It
// is a reference consumer of the renderer's contract: every styled
// region is located purely through the attribute spans' 1-indexed
// lines and byte columns.
package ansi

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/flatmark"
)

// ruleGlyphs is drawn in place of the blank line a horizontal rule
// marks.
const ruleGlyphs = "───"

type styleMask uint8

const (
	maskBold styleMask = 1 << iota
	maskItalic
	maskStrike
	maskLink
	maskURL
	maskTitle
	maskCode
	maskDelimiter
)

// Render paints the flattened text with ANSI escape sequences selected
// per attribute span. Lines are joined with newlines.
func Render(res flatmark.Result, theme flatmark.Theme) string {
	masks := make([][]styleMask, len(res.Text))
	for i, line := range res.Text {
		masks[i] = make([]styleMask, len(line))
	}
	rules := map[int]bool{}

	for _, attr := range res.Attrs {
		switch a := attr.(type) {
		case flatmark.TitleAttr:
			mark(masks, a.Range, maskTitle)
		case flatmark.BoldAttr:
			mark(masks, a.Range, maskBold)
		case flatmark.ItalicAttr:
			mark(masks, a.Range, maskItalic)
		case flatmark.StrikeAttr:
			mark(masks, a.Range, maskStrike)
		case flatmark.LinkAttr:
			mark(masks, a.Range, maskLink)
		case flatmark.URLAttr:
			mark(masks, a.Range, maskURL)
		case flatmark.CodeSpanAttr:
			mark(masks, a.Range, maskCode)
		case flatmark.CodeSpanDelimiterAttr:
			mark(masks, a.Range, maskDelimiter)
		case flatmark.HorizontalRuleAttr:
			rules[a.Line] = true
		case flatmark.FencedAttr:
			// Code bodies render verbatim.
		}
	}

	muted := lipgloss.NewStyle().Faint(true).Foreground(ansiColor(theme.Muted))
	lines := make([]string, len(res.Text))
	for i, line := range res.Text {
		if rules[i+1] && line == "" {
			lines[i] = muted.Render(ruleGlyphs)
			continue
		}
		lines[i] = paint(line, masks[i], theme)
	}
	return strings.Join(lines, "\n")
}

// mark sets a style bit over the bytes a range covers. Ranges always
// align to rune boundaries, so multi-byte glyphs never split across
// masks.
func mark(masks [][]styleMask, r flatmark.Range, m styleMask) {
	for ln := r.Start.Line; ln <= r.End.Line; ln++ {
		if ln < 1 || ln > len(masks) {
			continue
		}
		row := masks[ln-1]
		from, to := 0, len(row)
		if ln == r.Start.Line {
			from = r.Start.Character - 1
		}
		if ln == r.End.Line {
			to = r.End.Character - 1
		}
		for b := max(from, 0); b < min(to, len(row)); b++ {
			row[b] |= m
		}
	}
}

// paint renders a line by grouping runs of bytes with an equal mask
// and styling each run once.
func paint(line string, mask []styleMask, theme flatmark.Theme) string {
	var sb strings.Builder
	for start := 0; start < len(line); {
		end := start + 1
		for end < len(line) && mask[end] == mask[start] {
			end++
		}
		if mask[start] == 0 {
			sb.WriteString(line[start:end])
		} else {
			sb.WriteString(styleFor(mask[start], theme).Render(line[start:end]))
		}
		start = end
	}
	return sb.String()
}

func styleFor(m styleMask, theme flatmark.Theme) lipgloss.Style {
	s := lipgloss.NewStyle()
	if m&(maskBold|maskCode) != 0 {
		s = s.Bold(true)
	}
	if m&maskItalic != 0 {
		s = s.Italic(true)
	}
	if m&maskStrike != 0 {
		s = s.Strikethrough(true)
	}
	if m&maskLink != 0 {
		s = s.Underline(true).Foreground(ansiColor(theme.Link))
	}
	if m&maskURL != 0 {
		s = s.Faint(true).Foreground(ansiColor(theme.Link))
	}
	if m&maskTitle != 0 {
		s = s.Bold(true).Foreground(ansiColor(theme.Accent))
	}
	if m&maskDelimiter != 0 {
		s = s.Faint(true).Foreground(ansiColor(theme.Muted))
	}
	return s
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
