package doc

// CatDoc concatenates two or more documents in order. Use Cat to build one;
// the zero value is not meaningful.
type CatDoc struct {
	Docs []Doc
}

func (d *CatDoc) docNode() {}

// WidthHint folds the hints of its children left to right, stopping at the
// first child whose hint already ends a line.
func (d *CatDoc) WidthHint() WidthHint {
	hint := Unknown
	for _, c := range d.Docs {
		hint = hint.Add(c.WidthHint())
		if hint.EndOfLine {
			break
		}
	}
	return hint
}

func (d *CatDoc) ToDict() map[string]any {
	docs := make([]any, len(d.Docs))
	for i, c := range d.Docs {
		docs[i] = c.ToDict()
	}
	return map[string]any{"type": "Cat", "docs": docs}
}

// Cat concatenates its arguments into a single document. Strings are split
// into word/line tokens, nested slices are splatted, and nil/Empty entries
// are dropped. Existing Cat children are flattened so no Cat ever contains
// another Cat. Zero surviving children yields Empty; exactly one yields
// that child unchanged.
func Cat(items ...DocLike) Doc {
	docs := splat(items)
	var flat []Doc
	for _, d := range docs {
		if d == Doc(Empty) {
			continue
		}
		if c, ok := d.(*CatDoc); ok {
			flat = append(flat, c.Docs...)
		} else {
			flat = append(flat, d)
		}
	}
	switch len(flat) {
	case 0:
		return Empty
	case 1:
		return flat[0]
	default:
		return &CatDoc{Docs: flat}
	}
}
