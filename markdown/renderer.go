package markdown

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/flatmark"
)

const (
	// quotePrefix is prepended to every line of blockquote content. Its
	// byte length is the column shift applied to quoted attributes.
	quotePrefix = "> "

	// listBullet is the glyph for unordered list items. Width
	// arithmetic uses its byte length (3 for the UTF-8 bullet).
	listBullet = "•"

	// checkboxWidth is the byte width of the checkbox column when any
	// item in a list carries task state (" [x]", " [ ]", or padding).
	checkboxWidth = 4
)

// interiorIndent matches whitespace immediately following a newline
// inside a list item's text, which would otherwise double the
// indentation applied by the list renderer.
var interiorIndent = regexp.MustCompile(`\n[ \t]+`)

// renderer accumulates flattened lines and attribute spans for one
// render pass. Blockquote and list item content is rendered by fresh
// sub-renderers whose output is merged in with Shift; a renderer is
// never shared or reused.
type renderer struct {
	lines []string
	attrs []flatmark.TextAttr
}

// Render flattens a token tree into display lines and attribute spans.
// Trailing blank lines are trimmed. Rendering is all or nothing: on
// error no partial output is returned.
func Render(tokens []flatmark.Token) (flatmark.Result, error) {
	r := &renderer{}
	if _, err := r.renderTokens(tokens); err != nil {
		return flatmark.Result{}, err
	}
	r.trimTrailingBlank()
	return flatmark.Result{Text: r.lines, Attrs: r.attrs}, nil
}

// endOfBuffer returns the position immediately after the last byte of
// the last line. With exclusive set the column moves one byte further.
func (r *renderer) endOfBuffer(exclusive bool) flatmark.Position {
	p := flatmark.Position{Line: len(r.lines), Character: 1}
	if len(r.lines) > 0 {
		p.Character = len(r.lines[len(r.lines)-1]) + 1
	}
	if exclusive {
		p.Character++
	}
	return p
}

// appendText unescapes HTML entities in raw, splits it on newlines,
// concatenates the first segment onto the current last line and
// appends the rest as new lines. It returns the range covering exactly
// the appended text.
func (r *renderer) appendText(raw string) flatmark.Range {
	var start flatmark.Position
	if len(r.lines) == 0 {
		start = flatmark.Position{Line: 1, Character: 1}
		r.lines = append(r.lines, "")
	} else {
		start = r.endOfBuffer(false)
	}
	segments := strings.Split(html.UnescapeString(raw), "\n")
	r.lines[len(r.lines)-1] += segments[0]
	r.lines = append(r.lines, segments[1:]...)
	return flatmark.Range{Start: start, End: r.endOfBuffer(false)}
}

// pushBlank appends an empty line as a block separator.
func (r *renderer) pushBlank() {
	r.lines = append(r.lines, "")
}

// renderTokens dispatches every token in sequence and returns the
// range from before the first to after the last.
func (r *renderer) renderTokens(tokens []flatmark.Token) (flatmark.Range, error) {
	start := flatmark.Position{Line: 1, Character: 1}
	if len(r.lines) > 0 {
		start = r.endOfBuffer(false)
	}
	for i := range tokens {
		if err := r.renderToken(tokens[i]); err != nil {
			return flatmark.Range{}, err
		}
	}
	end := start
	if len(r.lines) > 0 {
		end = r.endOfBuffer(false)
	}
	return flatmark.Range{Start: start, End: end}, nil
}

func (r *renderer) renderToken(tok flatmark.Token) error {
	switch tok.Kind {
	case flatmark.KindHeading:
		return r.renderHeading(tok)
	case flatmark.KindParagraph:
		if _, err := r.renderTokens(tok.Tokens); err != nil {
			return err
		}
		r.pushBlank()
		return nil
	case flatmark.KindText:
		r.appendText(tok.Text)
		return nil
	case flatmark.KindSpace:
		r.appendText(strings.TrimSuffix(tok.Raw, "\n"))
		return nil
	case flatmark.KindBr:
		r.pushBlank()
		return nil
	case flatmark.KindStrong, flatmark.KindDel, flatmark.KindEm:
		return r.renderEmphasis(tok)
	case flatmark.KindLink:
		return r.renderLink(tok)
	case flatmark.KindImage:
		r.renderImage(tok)
		return nil
	case flatmark.KindCode:
		r.renderCode(tok)
		return nil
	case flatmark.KindCodeSpan:
		r.renderCodeSpan(tok)
		return nil
	case flatmark.KindBlockquote:
		return r.renderBlockquote(tok)
	case flatmark.KindHr:
		r.pushBlank()
		r.attrs = append(r.attrs, flatmark.HorizontalRuleAttr{Line: len(r.lines)})
		return nil
	case flatmark.KindTable:
		// Tables are not rendered structurally; the raw source passes
		// through as-is.
		r.appendText(tok.Raw)
		return nil
	case flatmark.KindList:
		return r.renderList(tok)
	case flatmark.KindListItem:
		return r.renderListItem(tok)
	case flatmark.KindHTML, flatmark.KindDef, flatmark.KindEscape:
		return fmt.Errorf("%s token %q: %w", tok.Kind, tok.Raw, flatmark.ErrUnsupportedToken)
	default:
		return fmt.Errorf("%q: %w", tok.Kind, flatmark.ErrUnknownToken)
	}
}

// renderHeading keeps the "#" marker in the text but emits the title
// range over the rendered children only, so the range start sits right
// after the marker.
func (r *renderer) renderHeading(tok flatmark.Token) error {
	r.appendText(strings.Repeat("#", tok.Depth) + " ")
	rng, err := r.renderTokens(tok.Tokens)
	if err != nil {
		return err
	}
	r.pushBlank()
	r.attrs = append(r.attrs, flatmark.TitleAttr{Depth: tok.Depth, Range: rng})
	return nil
}

func (r *renderer) renderEmphasis(tok flatmark.Token) error {
	rng, err := r.renderTokens(tok.Tokens)
	if err != nil {
		return err
	}
	switch tok.Kind {
	case flatmark.KindStrong:
		r.attrs = append(r.attrs, flatmark.BoldAttr{Range: rng})
	case flatmark.KindDel:
		r.attrs = append(r.attrs, flatmark.StrikeAttr{Range: rng})
	default:
		r.attrs = append(r.attrs, flatmark.ItalicAttr{Range: rng})
	}
	return nil
}

// renderLink flattens to "[label](href title)". The label comes from
// nested children when present, otherwise from the token's text.
func (r *renderer) renderLink(tok flatmark.Token) error {
	r.appendText("[")
	var label flatmark.Range
	if len(tok.Tokens) > 0 {
		var err error
		label, err = r.renderTokens(tok.Tokens)
		if err != nil {
			return err
		}
	} else {
		label = r.appendText(tok.Text)
	}
	r.attrs = append(r.attrs, flatmark.LinkAttr{Range: label})
	r.appendText("](")
	r.attrs = append(r.attrs, flatmark.URLAttr{Range: r.appendText(tok.Href)})
	if tok.Title != "" {
		r.appendText(" ")
		r.attrs = append(r.attrs, flatmark.TitleAttr{Depth: 0, Range: r.appendText(tok.Title)})
	}
	r.appendText(")")
	return nil
}

// renderImage is renderLink with a "![" opener and the alt text always
// appended as plain text; images have no nested children to render.
func (r *renderer) renderImage(tok flatmark.Token) {
	r.appendText("![")
	r.attrs = append(r.attrs, flatmark.LinkAttr{Range: r.appendText(tok.Text)})
	r.appendText("](")
	r.attrs = append(r.attrs, flatmark.URLAttr{Range: r.appendText(tok.Href)})
	if tok.Title != "" {
		r.appendText(" ")
		r.attrs = append(r.attrs, flatmark.TitleAttr{Depth: 0, Range: r.appendText(tok.Title)})
	}
	r.appendText(")")
}

// renderCode appends the code body without fence delimiters and emits
// the fenced attribute over exactly the body.
func (r *renderer) renderCode(tok flatmark.Token) {
	rng := r.appendText(tok.Text)
	r.attrs = append(r.attrs, flatmark.FencedAttr{Lang: tok.Lang, Range: rng})
	r.pushBlank()
}

func (r *renderer) renderCodeSpan(tok flatmark.Token) {
	open := r.appendText("`")
	r.attrs = append(r.attrs, flatmark.CodeSpanDelimiterAttr{Range: open})
	body := r.appendText(tok.Text)
	r.attrs = append(r.attrs, flatmark.CodeSpanAttr{Range: body})
	closing := r.appendText("`")
	r.attrs = append(r.attrs, flatmark.CodeSpanDelimiterAttr{Range: closing})
}

// renderBlockquote renders the children into a fresh sub-renderer,
// prefixes every resulting line with "> ", and merges the sub-result
// shifted by the parent's current line count and the prefix width.
func (r *renderer) renderBlockquote(tok flatmark.Token) error {
	sub := &renderer{}
	if _, err := sub.renderTokens(tok.Tokens); err != nil {
		return err
	}
	sub.trimTrailingBlank()
	lineShift := len(r.lines)
	for _, a := range sub.attrs {
		r.attrs = append(r.attrs, a.Shift(lineShift, len(quotePrefix)))
	}
	for _, line := range sub.lines {
		r.lines = append(r.lines, quotePrefix+line)
	}
	r.pushBlank()
	return nil
}

// renderList renders each item into a fresh sub-renderer, prefixes the
// item's first line with its label and indents continuation lines to
// the same width, then merges the item's attributes shifted by the
// parent line count and the indent width. Ordered labels are
// right-justified to a uniform width derived from the item count, so
// "10." aligns under " 1.".
func (r *renderer) renderList(tok flatmark.Token) error {
	items := tok.Tokens
	labelWidth := len(listBullet)
	if tok.Ordered {
		labelWidth = len(strconv.Itoa(len(items))) + 1
	}
	boxWidth := 0
	for _, item := range items {
		if item.Task {
			boxWidth = checkboxWidth
			break
		}
	}
	indent := labelWidth + boxWidth + 1
	pad := strings.Repeat(" ", indent)

	for i, item := range items {
		sub := &renderer{}
		if err := sub.renderListItem(item); err != nil {
			return err
		}
		label := listBullet
		if tok.Ordered {
			label = fmt.Sprintf("%*d.", labelWidth-1, i+1)
		}
		var box string
		switch {
		case boxWidth == 0:
		case item.Task && item.Checked:
			box = " [x]"
		case item.Task:
			box = " [ ]"
		default:
			box = strings.Repeat(" ", boxWidth)
		}
		lineShift := len(r.lines)
		for _, a := range sub.attrs {
			r.attrs = append(r.attrs, a.Shift(lineShift, indent))
		}
		if len(sub.lines) == 0 {
			sub.lines = []string{""}
		}
		for j, line := range sub.lines {
			if j == 0 {
				r.lines = append(r.lines, label+box+" "+line)
			} else {
				r.lines = append(r.lines, pad+line)
			}
		}
	}
	return nil
}

// renderListItem renders item children directly into the current
// buffer, except that nested lists go through their own sub-renderer
// merged at the current end of buffer, and text children lose
// whitespace that follows a newline so source indentation is not
// doubled by the list prefix.
func (r *renderer) renderListItem(item flatmark.Token) error {
	for _, child := range item.Tokens {
		switch child.Kind {
		case flatmark.KindList:
			sub := &renderer{}
			if err := sub.renderList(child); err != nil {
				return err
			}
			lineShift := len(r.lines)
			for _, a := range sub.attrs {
				r.attrs = append(r.attrs, a.Shift(lineShift, 0))
			}
			r.lines = append(r.lines, sub.lines...)
		case flatmark.KindText:
			r.appendText(interiorIndent.ReplaceAllString(child.Text, "\n"))
		default:
			if err := r.renderToken(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// trimTrailingBlank drops lines that are empty or whitespace-only from
// the end of the buffer.
func (r *renderer) trimTrailingBlank() {
	for len(r.lines) > 0 && strings.TrimSpace(r.lines[len(r.lines)-1]) == "" {
		r.lines = r.lines[:len(r.lines)-1]
	}
}
