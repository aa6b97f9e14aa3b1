package doc

// AltDoc holds an ordered list of layout alternatives. By convention Alts
// is ordered narrowest/most-broken first to widest/most-single-line last;
// renderers rely on that ordering but do not verify it.
type AltDoc struct {
	Alts []Doc
}

func (d *AltDoc) docNode() {}

// WidthHint is the hint of the first (narrowest) alternative, since that is
// the one a non-speculative renderer would fall back to.
func (d *AltDoc) WidthHint() WidthHint {
	if len(d.Alts) == 0 {
		return Unknown
	}
	return d.Alts[0].WidthHint()
}

func (d *AltDoc) ToDict() map[string]any {
	if len(d.Alts) == 0 {
		return map[string]any{"type": "Fail"}
	}
	if d.isSoftLine() {
		return map[string]any{"type": "SoftLine"}
	}
	alts := make([]any, len(d.Alts))
	for i, a := range d.Alts {
		alts[i] = a.ToDict()
	}
	return map[string]any{"type": "Alt", "alts": alts}
}

func (d *AltDoc) isSoftLine() bool {
	return len(d.Alts) == 2 && d.Alts[0] == Doc(Line) && d.Alts[1] == Doc(Space)
}

// Fail is the empty Alt: a document with no viable layout. Selecting it
// during rendering is a RenderError, never a panic, since it can be reached
// through perfectly valid document construction (e.g. Alt with no
// arguments).
var Fail Doc = &AltDoc{}

// SoftLine breaks onto a new line if needed, otherwise renders as a single
// space. Per the resolved ambiguity between (Line, Empty) and (Line, Space)
// forms, this module always uses (Line, Space).
var SoftLine Doc = &AltDoc{Alts: []Doc{Line, Space}}

// Alt builds an ordered set of layout alternatives. Splatting and nested
// Alt flattening apply as in Cat, but unlike Cat an Empty alternative is
// never dropped: Alt(Line, Empty) is a genuine "break or nothing" choice,
// not an unconditional Line. A single surviving alternative collapses to
// itself, matching the "unary alt collapses" invariant.
func Alt(items ...DocLike) Doc {
	docs := splat(items)
	var flat []Doc
	for _, d := range docs {
		if a, ok := d.(*AltDoc); ok {
			flat = append(flat, a.Alts...)
		} else {
			flat = append(flat, d)
		}
	}
	switch len(flat) {
	case 0:
		return Fail
	case 1:
		return flat[0]
	case 2:
		if flat[0] == Doc(Line) && flat[1] == Doc(Space) {
			return SoftLine
		}
		return &AltDoc{Alts: flat}
	default:
		return &AltDoc{Alts: flat}
	}
}
