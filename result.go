package flatmark

// Result is the output of one render pass: the flattened display lines
// and the attribute spans anchored into them. It is a plain value; the
// renderer retains no state after returning it.
type Result struct {
	Text  []string   `json:"text"`
	Attrs []TextAttr `json:"attrs"`
}
