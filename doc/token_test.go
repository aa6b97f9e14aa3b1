package doc

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestTextInterning(t *testing.T) {
	assert.True(t, Text("") == Empty, "Text(\"\") must be the interned Empty")
	assert.True(t, Text(" ") == Space, "Text(\" \") must be the interned Space")
	assert.True(t, Text("\n") == Line, "Text(\"\\n\") must be the interned Line")
}

func TestTokenWidth(t *testing.T) {
	tests := map[string]struct {
		tok  Token
		want int
	}{
		"empty":   {Empty, 0},
		"line":    {Line, 0},
		"space":   {Space, 1},
		"ascii":   {Text("hello"), 5},
		"wide CJK": {Text("日本語"), 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equals(t, tt.tok.Width(), tt.want, "Width(%q)", tt.tok.String())
		})
	}
}

func TestWords(t *testing.T) {
	got := ToDictOrNil(Words("a b c"))
	want := ToDictOrNil(Cat("a", Space, "b", Space, "c"))
	assert.NoDiff(t, got, want)
}

func TestLines(t *testing.T) {
	got := ToDictOrNil(Lines("a b\nc"))
	want := ToDictOrNil(Cat(Words("a b"), Line, Words("c")))
	assert.NoDiff(t, got, want)
}

func TestWordsSplitsOnTabWithoutPanicking(t *testing.T) {
	got := ToDictOrNil(Words("a\tb"))
	want := ToDictOrNil(Cat("a", Space, "b"))
	assert.NoDiff(t, got, want)
}

func TestLinesNormalizesCarriageReturns(t *testing.T) {
	got := ToDictOrNil(Lines("a\r\nb\rc"))
	want := ToDictOrNil(Cat(Words("a"), Line, Words("b"), Line, Words("c")))
	assert.NoDiff(t, got, want)
}

// ToDictOrNil is a test helper returning nil for a nil Doc and d.ToDict()
// otherwise, so a comparison against a nil Doc does not panic.
func ToDictOrNil(d Doc) map[string]any {
	if d == nil {
		return nil
	}
	return d.ToDict()
}
