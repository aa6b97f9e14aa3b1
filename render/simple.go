package render

import "github.com/pageforge/docprinter/doc"

// SimpleLayout selects which alternative of an Alt a SimpleRenderer always
// picks.
type SimpleLayout int

const (
	// ShortestLines always picks the first (narrowest/most broken-up)
	// alternative.
	ShortestLines SimpleLayout = iota
	// LongestLines always picks the last (widest/most single-line)
	// alternative.
	LongestLines
)

// SimpleRenderer renders a document by always committing to one fixed
// alternative of every Alt it encounters; it never looks ahead or
// backtracks. A renderer instance is not safe to share between
// concurrent renderings — build one per top-level render, or reuse one
// sequentially.
type SimpleRenderer struct {
	Layout SimpleLayout
	OnEmit []OnEmit
}

// NewSimpleRenderer builds a SimpleRenderer with the given layout.
func NewSimpleRenderer(layout SimpleLayout) *SimpleRenderer {
	return &SimpleRenderer{Layout: layout}
}

// Use registers an additional on_emit callback, applied in registration
// order to every token this renderer emits.
func (r *SimpleRenderer) Use(cb OnEmit) { r.OnEmit = append(r.OnEmit, cb) }

// Render lazily renders d into a token stream.
func (r *SimpleRenderer) Render(d doc.Doc) TokenStream {
	onAlt := simpleAltFunc(r.Layout)
	return newStream(r.OnEmit, d, onAlt)
}

// ToStr eagerly renders d and concatenates every token's text.
func (r *SimpleRenderer) ToStr(d doc.Doc) (string, error) {
	return ToStr(r.Render(d))
}

func simpleAltFunc(layout SimpleLayout) altFunc {
	var onAlt altFunc
	onAlt = func(e *engine, n *doc.AltDoc, out sink, suffix doc.WidthHint) error {
		if len(n.Alts) == 0 {
			return &RenderError{Doc: n}
		}
		idx := 0
		if layout == LongestLines {
			idx = len(n.Alts) - 1
		}
		return e.walk(n.Alts[idx], out, onAlt, suffix)
	}
	return onAlt
}
