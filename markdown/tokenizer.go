package markdown

import (
	"strings"

	"github.com/fwojciec/flatmark"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Tokenize parses source with GitHub-flavored rules (strikethrough,
// tables, task lists) and converts the goldmark AST into the token
// tree consumed by Render. Blank-line separators between blocks become
// space tokens so block spacing survives flattening.
func Tokenize(source string) []flatmark.Token {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))
	return convertBlocks(doc, src)
}

func convertBlocks(parent ast.Node, src []byte) []flatmark.Token {
	var tokens []flatmark.Token
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c != parent.FirstChild() && c.HasBlankPreviousLines() {
			tokens = append(tokens, flatmark.Token{Kind: flatmark.KindSpace, Raw: "\n\n"})
		}
		tokens = append(tokens, convertBlock(c, src)...)
	}
	return tokens
}

func convertBlock(node ast.Node, src []byte) []flatmark.Token {
	switch n := node.(type) {
	case *ast.Heading:
		return []flatmark.Token{{
			Kind:   flatmark.KindHeading,
			Depth:  n.Level,
			Tokens: convertInlines(n, src),
		}}
	case *ast.Paragraph, *ast.TextBlock:
		return []flatmark.Token{{
			Kind:   flatmark.KindParagraph,
			Tokens: convertInlines(n, src),
		}}
	case *ast.FencedCodeBlock:
		return []flatmark.Token{{
			Kind: flatmark.KindCode,
			Lang: string(n.Language(src)),
			Text: blockLines(n, src),
		}}
	case *ast.CodeBlock:
		return []flatmark.Token{{
			Kind: flatmark.KindCode,
			Text: blockLines(n, src),
		}}
	case *ast.Blockquote:
		return []flatmark.Token{{
			Kind:   flatmark.KindBlockquote,
			Tokens: convertBlocks(n, src),
		}}
	case *ast.ThematicBreak:
		return []flatmark.Token{{Kind: flatmark.KindHr}}
	case *ast.List:
		return []flatmark.Token{convertList(n, src)}
	case *ast.HTMLBlock:
		return []flatmark.Token{{
			Kind: flatmark.KindHTML,
			Raw:  htmlBlockRaw(n, src),
		}}
	case *east.Table:
		return []flatmark.Token{{
			Kind: flatmark.KindTable,
			Raw:  sourceSpan(n, src),
		}}
	default:
		// Unknown block containers contribute their children.
		return convertBlocks(node, src)
	}
}

func convertList(list *ast.List, src []byte) flatmark.Token {
	tok := flatmark.Token{Kind: flatmark.KindList, Ordered: list.IsOrdered()}
	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		if item, ok := c.(*ast.ListItem); ok {
			tok.Tokens = append(tok.Tokens, convertListItem(item, src))
		}
	}
	return tok
}

// convertListItem flattens the item's paragraph blocks into inline
// tokens so the renderer can lay them out behind the item label; a
// task checkbox leading the first block marks the item instead of
// becoming a token.
func convertListItem(item *ast.ListItem, src []byte) flatmark.Token {
	tok := flatmark.Token{Kind: flatmark.KindListItem}
	seenBlock := false
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			if box, ok := n.FirstChild().(*east.TaskCheckBox); ok {
				tok.Task = true
				tok.Checked = box.IsChecked
			}
			if seenBlock {
				tok.Tokens = append(tok.Tokens, flatmark.Token{Kind: flatmark.KindBr, Raw: "\n"})
			}
			inlines := convertInlines(n, src)
			if tok.Task && len(inlines) > 0 && inlines[0].Kind == flatmark.KindText {
				inlines[0].Text = strings.TrimPrefix(inlines[0].Text, " ")
				inlines[0].Raw = inlines[0].Text
			}
			tok.Tokens = append(tok.Tokens, inlines...)
		default:
			tok.Tokens = append(tok.Tokens, convertBlock(c, src)...)
		}
		seenBlock = true
	}
	return tok
}

func convertInlines(parent ast.Node, src []byte) []flatmark.Token {
	var tokens []flatmark.Token
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		tokens = append(tokens, convertInline(c, src)...)
	}
	return tokens
}

func convertInline(node ast.Node, src []byte) []flatmark.Token {
	switch n := node.(type) {
	case *ast.Text:
		raw := string(n.Segment.Value(src))
		if n.HardLineBreak() {
			return []flatmark.Token{
				{Kind: flatmark.KindText, Raw: raw, Text: raw},
				{Kind: flatmark.KindBr, Raw: "\n"},
			}
		}
		if n.SoftLineBreak() {
			raw += "\n"
		}
		return []flatmark.Token{{Kind: flatmark.KindText, Raw: raw, Text: raw}}
	case *ast.String:
		v := string(n.Value)
		return []flatmark.Token{{Kind: flatmark.KindText, Raw: v, Text: v}}
	case *ast.CodeSpan:
		body := inlineText(n, src)
		return []flatmark.Token{{Kind: flatmark.KindCodeSpan, Raw: "`" + body + "`", Text: body}}
	case *ast.Emphasis:
		kind := flatmark.KindEm
		if n.Level > 1 {
			kind = flatmark.KindStrong
		}
		return []flatmark.Token{{Kind: kind, Tokens: convertInlines(n, src)}}
	case *east.Strikethrough:
		return []flatmark.Token{{Kind: flatmark.KindDel, Tokens: convertInlines(n, src)}}
	case *ast.Link:
		return []flatmark.Token{{
			Kind:   flatmark.KindLink,
			Href:   string(n.Destination),
			Title:  string(n.Title),
			Tokens: convertInlines(n, src),
		}}
	case *ast.AutoLink:
		url := string(n.URL(src))
		return []flatmark.Token{{
			Kind: flatmark.KindLink,
			Href: url,
			Text: string(n.Label(src)),
		}}
	case *ast.Image:
		return []flatmark.Token{{
			Kind:  flatmark.KindImage,
			Href:  string(n.Destination),
			Title: string(n.Title),
			Text:  inlineText(n, src),
		}}
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(src))
		}
		return []flatmark.Token{{Kind: flatmark.KindHTML, Raw: sb.String()}}
	case *east.TaskCheckBox:
		// Recorded on the enclosing list item.
		return nil
	default:
		return convertInlines(node, src)
	}
}

// inlineText collects the plain text of a node's inline descendants.
func inlineText(node ast.Node, src []byte) string {
	var sb strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(src))
		case *ast.String:
			sb.Write(n.Value)
		default:
			sb.WriteString(inlineText(c, src))
		}
	}
	return sb.String()
}

// blockLines joins a block's source lines without the trailing newline,
// matching the code-body shape the renderer expects.
func blockLines(node ast.Node, src []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(src))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func htmlBlockRaw(n *ast.HTMLBlock, src []byte) string {
	raw := blockLines(n, src)
	if n.HasClosure() {
		raw += "\n" + strings.TrimSuffix(string(n.ClosureLine.Value(src)), "\n")
	}
	return raw
}

// sourceSpan reconstructs the raw source of a node from the extremes
// of its descendant text segments, widened to full lines. Used for
// tables, whose transformed AST no longer carries block lines.
func sourceSpan(node ast.Node, src []byte) string {
	start, stop := -1, -1
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		if t, ok := n.(*ast.Text); ok {
			if start == -1 || t.Segment.Start < start {
				start = t.Segment.Start
			}
			if t.Segment.Stop > stop {
				stop = t.Segment.Stop
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(node)
	if start == -1 {
		return ""
	}
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	for stop < len(src) && src[stop] != '\n' {
		stop++
	}
	return string(src[start:stop])
}
