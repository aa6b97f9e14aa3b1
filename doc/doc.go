package doc

// Doc is the sum type at the root of the document algebra. Every value
// produced by a smart constructor, and Token itself (a one-token document),
// implements it. The unexported docNode method seals the interface to this
// package: external code builds documents only through the constructors
// below, never by implementing Doc directly.
type Doc interface {
	docNode()
	// WidthHint estimates the width of the document's first rendered line.
	// It is advisory: the smart renderer's correctness never depends on it.
	WidthHint() WidthHint
	// ToDict encodes the document in the dictionary form used by golden
	// tests. It is not a wire format.
	ToDict() map[string]any
}

// WidthHint estimates the width of a document's first line before it is
// rendered. EndOfLine becomes true as soon as a Line token is known to
// terminate that first line; once true, further addition is a no-op, since
// nothing past a newline belongs to the first line anymore.
type WidthHint struct {
	Width     int
	EndOfLine bool
}

// Unknown is the interned zero value of WidthHint.
var Unknown = WidthHint{}

// Add combines hint h with whatever comes after it in evaluation order.
// Addition short-circuits once EndOfLine is set: the width of content past
// a line break cannot extend the first line.
func (h WidthHint) Add(next WidthHint) WidthHint {
	if h.EndOfLine {
		return h
	}
	return WidthHint{Width: h.Width + next.Width, EndOfLine: next.EndOfLine}
}

// DocLike is anything the smart constructors accept in place of a Doc:
// a Doc itself, a plain string (split into words and lines per the
// normalization rules), a slice of DocLike for splatting nested sequences,
// or nil (dropped entirely, contributing nothing).
type DocLike any

// splat flattens a variadic DocLike argument list into a slice of Doc,
// recursively expanding nested slices and converting strings via Lines.
// Only nil entries are dropped here; an Empty document is passed through
// unchanged. Whether Empty then survives into the constructed node is a
// per-constructor decision: Cat drops it, Alt keeps it, since Alt(Line,
// Empty) is a meaningful "break or nothing" choice.
func splat(items []DocLike) []Doc {
	var out []Doc
	var walk func(DocLike)
	walk = func(item DocLike) {
		switch v := item.(type) {
		case nil:
			return
		case Doc:
			out = append(out, v)
		case string:
			walk(Lines(v))
		case []DocLike:
			for _, x := range v {
				walk(x)
			}
		case []Doc:
			for _, x := range v {
				walk(x)
			}
		case []string:
			for _, x := range v {
				walk(x)
			}
		default:
			panic("doc: unsupported DocLike value")
		}
	}
	for _, item := range items {
		walk(item)
	}
	return out
}

// toDocLikes adapts a []Doc to the []DocLike shape splat/Join expect.
func toDocLikes(docs []Doc) []DocLike {
	out := make([]DocLike, len(docs))
	for i, d := range docs {
		out[i] = d
	}
	return out
}
