package doc

// NestDoc applies Indent spaces of indentation to every rendered line of
// Doc after the first, and to the first line too when Overlap is set and
// the current column is left of Indent.
type NestDoc struct {
	Indent  int
	Doc     Doc
	Overlap bool
}

func (d *NestDoc) docNode() {}

// WidthHint is the inner hint, plus Indent when Overlap applies to the
// first line.
func (d *NestDoc) WidthHint() WidthHint {
	hint := d.Doc.WidthHint()
	if d.Overlap {
		return WidthHint{Width: hint.Width + d.Indent, EndOfLine: hint.EndOfLine}
	}
	return hint
}

func (d *NestDoc) ToDict() map[string]any {
	return map[string]any{
		"type":    "Nest",
		"indent":  d.Indent,
		"doc":     d.Doc.ToDict(),
		"overlap": d.Overlap,
	}
}

// Nest indents child by indent columns. Nested Nest documents collapse by
// summing their indents; an indent ≤ 0 is a no-op that returns child
// unchanged, and nesting Empty stays Empty.
func Nest(indent int, overlap bool, items ...DocLike) Doc {
	child := Cat(items...)
	if child == Doc(Empty) {
		return Empty
	}
	if n, ok := child.(*NestDoc); ok {
		indent += n.Indent
		child = n.Doc
	}
	if indent <= 0 {
		return child
	}
	return &NestDoc{Indent: indent, Doc: child, Overlap: overlap}
}
