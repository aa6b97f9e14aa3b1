// Package doc implements the algebraic document model: an immutable tree of
// text, concatenation, layout alternatives, indentation, and aligned rows
// and tables, together with the smart constructors that normalize it.
package doc

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pageforge/docprinter/internal/assert"
)

// Token is the unit of rendered output: plain text, or one of the three
// interned sentinels Empty, Space and Line. Token is a plain value type, so
// Go's == already gives the identity comparison the sentinels need: no
// other Text content can equal "", " " or "\n" (Text enforces that), so
// Token{s} == Space is true exactly when s denotes the same sentinel.
type Token struct {
	text string
}

// Empty is the zero-width sentinel. It is never emitted by a renderer.
var Empty = Token{text: ""}

// Space is a single blank.
var Space = Token{text: " "}

// Line is the newline sentinel.
var Line = Token{text: "\n"}

// Text constructs a token holding s. s must not contain whitespace other
// than exactly matching one of the three sentinels above; panics otherwise,
// since a malformed token is a construction-time programmer error.
func Text(s string) Token {
	switch s {
	case "":
		return Empty
	case " ":
		return Space
	case "\n":
		return Line
	}
	assert.That(!strings.ContainsAny(s, " \t\n\r"), "doc: Text(%q) contains whitespace other than the interned sentinels", s)
	return Token{text: s}
}

// String returns the token's literal text.
func (t Token) String() string { return t.text }

// Width reports the token's on-screen column width: 0 for Empty and Line,
// and the rune-display width of the content otherwise. Text measured this
// way accounts for wide (e.g. CJK) runes, unlike a plain byte or rune count.
func (t Token) Width() int {
	if t == Line || t == Empty {
		return 0
	}
	return runewidth.StringWidth(t.text)
}

func (t Token) docNode() {}

// WidthHint reports t's contribution to a first line: Line ends the line
// immediately, every other token simply advances it.
func (t Token) WidthHint() WidthHint {
	if t == Line {
		return WidthHint{Width: 0, EndOfLine: true}
	}
	return WidthHint{Width: t.Width(), EndOfLine: false}
}

// ToDict encodes t in the dictionary form used by golden tests.
func (t Token) ToDict() map[string]any {
	switch t {
	case Empty:
		return map[string]any{"type": "Empty"}
	case Space:
		return map[string]any{"type": "Space"}
	case Line:
		return map[string]any{"type": "Line"}
	default:
		return map[string]any{"type": "Text", "text": t.text}
	}
}

// splitEachByte splits s at every byte found in cutset, one separator at a
// time rather than collapsing a run of them, so two adjacent separators
// still produce the empty field between them.
func splitEachByte(s, cutset string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(cutset, s[i]) >= 0 {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

// Words splits s on spaces and tabs and builds a Cat joining the
// resulting Text tokens with interned Space tokens. It is the convenience
// path assumed by the normalization laws for string literals passed to
// cat/alt/row.
func Words(s string) Doc {
	fields := splitEachByte(s, " \t")
	items := make([]DocLike, 0, len(fields))
	for _, f := range fields {
		items = append(items, Text(f))
	}
	return Join(Space, items...)
}

// Lines splits s on newlines and builds a Cat joining the resulting
// documents with interned Line tokens. "\r\n" and a lone "\r" are both
// normalized to "\n" first, so a stray carriage return is consumed as a
// line boundary instead of reaching Text inside a word.
func Lines(s string) Doc {
	s = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
	parts := strings.Split(s, "\n")
	items := make([]DocLike, 0, len(parts))
	for _, p := range parts {
		items = append(items, Words(p))
	}
	return Join(Line, items...)
}
