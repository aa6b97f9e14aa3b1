package doc

import (
	"strings"

	"github.com/pageforge/docprinter/internal/assert"
)

// EditFunc transforms a finished token stream into another one. It is the
// external-collaborator contract for a named editor: this package
// only fixes the contract and the closed set of names below, not how an
// editor decides what to do with a token.
type EditFunc func(tokens []Token) []Token

// EditDoc applies a named token-stream editor to the rendering of Doc.
// Function identifies the editor so the document can round-trip through
// ToDict/FromDict; the actual transform is looked up in the editors
// registry at render time.
type EditDoc struct {
	Function string
	Doc      Doc
}

func (d *EditDoc) docNode() {}

// WidthHint is the inner hint: editors must not materially change a
// document's width, only its escaping/quoting/line structure.
func (d *EditDoc) WidthHint() WidthHint { return d.Doc.WidthHint() }

func (d *EditDoc) ToDict() map[string]any {
	return map[string]any{"type": "Edit", "function": d.Function, "doc": d.Doc.ToDict()}
}

// Edit wraps child so its rendered token stream is passed through the
// named editor. function must be one of the names registered in Editors;
// this is checked at construction, consistent with construction errors
// failing immediately with a clear message.
func Edit(function string, items ...DocLike) Doc {
	_, ok := Editors[function]
	assert.That(ok, "doc: unknown token-stream editor %q", function)
	child := Cat(items...)
	if child == Doc(Empty) {
		return Empty
	}
	return &EditDoc{Function: function, Doc: child}
}

// Editors is the closed set of named token-stream editors, keyed by the
// name used in serialized Edit documents.
var Editors = map[string]EditFunc{
	"escape_single":                     escapeFunc('\'', false),
	"escape_single_and_unescape_double": escapeFunc('\'', true),
	"escape_double":                     escapeFunc('"', false),
	"escape_double_and_unescape_single": escapeFunc('"', true),
	"smart_quote":                       smartQuoteEdit,
	"inline":                            inlineEdit,
}

// escapeFunc returns an editor that backslash-escapes every occurrence of
// quote within each text token, optionally unescaping the other quote
// character first.
func escapeFunc(quote byte, unescapeOther bool) EditFunc {
	other := byte('"')
	if quote == '"' {
		other = '\''
	}
	return func(tokens []Token) []Token {
		out := make([]Token, len(tokens))
		for i, t := range tokens {
			if t == Space || t == Line || t == Empty {
				out[i] = t
				continue
			}
			s := t.String()
			if unescapeOther {
				s = unescape(s, other)
			}
			out[i] = Text(escape(s, quote))
		}
		return out
	}
}

// escape backslash-escapes every unescaped occurrence of quote in s.
func escape(s string, quote byte) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			b.WriteByte(c)
			i++
			b.WriteByte(s[i])
			continue
		}
		if c == quote {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unescape removes a backslash preceding quote, leaving other escapes
// untouched.
func unescape(s string, quote byte) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && s[i+1] == quote {
			b.WriteByte(quote)
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// smartQuoteEdit is the one editor that also adds delimiter tokens: the
// choice of delimiter can only be made once the final token content is
// known, so it is made here rather than by the SmartQuote builder.
func smartQuoteEdit(tokens []Token) []Token {
	single, double := 0, 0
	for _, t := range tokens {
		if t == Space || t == Line || t == Empty {
			continue
		}
		single += strings.Count(t.String(), "'")
		double += strings.Count(t.String(), "\"")
	}
	quote := byte('"')
	if single < double {
		quote = '\''
	}
	transformed := escapeFunc(quote, true)(tokens)
	out := make([]Token, 0, len(transformed)+2)
	q := Text(string(quote))
	out = append(out, q)
	out = append(out, transformed...)
	out = append(out, q)
	return out
}

func inlineEdit(tokens []Token) []Token {
	out := tokens[:0:0]
	for _, t := range tokens {
		if t == Line {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SingleQuote wraps items in single quotes, escaping embedded single
// quotes and leaving double quotes untouched.
func SingleQuote(items ...DocLike) Doc {
	return quoted("escape_single", '\'', items)
}

// DoubleQuote wraps items in double quotes, escaping embedded double
// quotes and leaving single quotes untouched.
func DoubleQuote(items ...DocLike) Doc {
	return quoted("escape_double", '"', items)
}

// SmartQuote wraps items in whichever of single or double quotes requires
// less escaping, deciding and unescaping the other quote character at
// render time once the final token content is known.
func SmartQuote(items ...DocLike) Doc {
	return Edit("smart_quote", items...)
}

func quoted(function string, quote byte, items []DocLike) Doc {
	inner := Cat(items...)
	q := Text(string(quote))
	return Cat(q, Edit(function, inner), q)
}
