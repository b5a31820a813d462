package flatmark

// TokenKind identifies a markdown token produced by the tokenizer.
type TokenKind string

// The closed set of token kinds the renderer accepts. KindHTML,
// KindDef and KindEscape are declared but unsupported: rendering them
// fails the whole call.
const (
	KindParagraph  TokenKind = "paragraph"
	KindHeading    TokenKind = "heading"
	KindText       TokenKind = "text"
	KindStrong     TokenKind = "strong"
	KindEm         TokenKind = "em"
	KindDel        TokenKind = "del"
	KindLink       TokenKind = "link"
	KindImage      TokenKind = "image"
	KindCode       TokenKind = "code"
	KindCodeSpan   TokenKind = "codespan"
	KindBlockquote TokenKind = "blockquote"
	KindHr         TokenKind = "hr"
	KindList       TokenKind = "list"
	KindListItem   TokenKind = "list_item"
	KindSpace      TokenKind = "space"
	KindBr         TokenKind = "br"
	KindTable      TokenKind = "table"
	KindHTML       TokenKind = "html"
	KindDef        TokenKind = "def"
	KindEscape     TokenKind = "escape"
)

// Token is one node of the tree produced by the tokenizer. Fields
// beyond Kind are populated per kind: Depth for headings, Href/Title
// for links and images, Lang for fenced code, Ordered/Task/Checked for
// lists and their items, Text for leaf content, Raw for source text
// kept for diagnostics and passthrough.
type Token struct {
	Kind    TokenKind
	Raw     string
	Text    string
	Depth   int
	Href    string
	Title   string
	Lang    string
	Ordered bool
	Task    bool
	Checked bool
	Tokens  []Token
}
