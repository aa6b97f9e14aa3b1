package doc

// Join interleaves sep between consecutive items, without inserting it
// inside an already-flattened Cat. cat() with no items is Empty.
func Join(sep DocLike, items ...DocLike) Doc {
	docs := splat(items)
	if len(docs) == 0 {
		return Empty
	}
	interleaved := make([]DocLike, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			interleaved = append(interleaved, sep)
		}
		interleaved = append(interleaved, d)
	}
	return Cat(interleaved...)
}

// Then concatenates a and b directly (the `/` operator in the document
// algebra's notation), dropping whichever side is Empty.
func Then(a, b DocLike) Doc {
	return Cat(a, b)
}

// SpaceJoin concatenates a and b with a single Space between them (the `//`
// operator), except that the space is dropped when either side is
// Empty/Space, or already ends/starts with one — inserting a second space
// next to an existing one would violate the "no adjacent redundant
// whitespace" normalization a caller expects from the sugar layer.
func SpaceJoin(a, b DocLike) Doc {
	da := Cat(a)
	db := Cat(b)
	if da == Doc(Empty) || da == Doc(Space) {
		return db
	}
	if db == Doc(Empty) || db == Doc(Space) {
		return da
	}
	if startsWithSpace(db) || endsWithSpace(da) {
		return Cat(da, db)
	}
	return Cat(da, Space, db)
}

func endsWithSpace(d Doc) bool {
	switch v := d.(type) {
	case Token:
		return v == Space
	case *CatDoc:
		if len(v.Docs) == 0 {
			return false
		}
		return endsWithSpace(v.Docs[len(v.Docs)-1])
	default:
		return false
	}
}

func startsWithSpace(d Doc) bool {
	switch v := d.(type) {
	case Token:
		return v == Space
	case *CatDoc:
		if len(v.Docs) == 0 {
			return false
		}
		return startsWithSpace(v.Docs[0])
	default:
		return false
	}
}

// Parens wraps items in "(" and ")".
func Parens(items ...DocLike) Doc { return wrap("(", ")", items) }

// Brackets wraps items in "[" and "]".
func Brackets(items ...DocLike) Doc { return wrap("[", "]", items) }

// Braces wraps items in "{" and "}".
func Braces(items ...DocLike) Doc { return wrap("{", "}", items) }

// Angles wraps items in "<" and ">".
func Angles(items ...DocLike) Doc { return wrap("<", ">", items) }

func wrap(open, close string, items []DocLike) Doc {
	inner := Cat(items...)
	return Cat(Text(open), inner, Text(close))
}
