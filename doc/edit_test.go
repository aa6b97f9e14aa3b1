package doc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/teleivo/assertive/assert"
)

// renderFlat concatenates a Doc's tokens assuming every Alt takes alts[0]
// and no Nest/Row/Table structure is present — enough to check the
// editors, which operate on a flat Cat of Text/Space tokens.
func renderFlat(t *testing.T, d Doc) string {
	t.Helper()
	var out string
	var walk func(Doc)
	walk = func(d Doc) {
		switch v := d.(type) {
		case Token:
			out += v.String()
		case *CatDoc:
			for _, c := range v.Docs {
				walk(c)
			}
		case *AltDoc:
			walk(v.Alts[0])
		case *EditDoc:
			fn := Editors[v.Function]
			var tokens []Token
			var collect func(Doc)
			collect = func(d Doc) {
				switch v := d.(type) {
				case Token:
					tokens = append(tokens, v)
				case *CatDoc:
					for _, c := range v.Docs {
						collect(c)
					}
				default:
					t.Fatalf("renderFlat: unsupported nested node %T", d)
				}
			}
			collect(v.Doc)
			for _, tok := range fn(tokens) {
				out += tok.String()
			}
		default:
			t.Fatalf("renderFlat: unsupported node %T", d)
		}
	}
	walk(d)
	return out
}

func TestSingleQuoteScenario(t *testing.T) {
	got := renderFlat(t, SingleQuote("'hello'", Space, `"world"`))
	want := `'\'hello\' "world"'`
	assert.Equals(t, got, want)
}

func TestSmartQuoteScenario(t *testing.T) {
	got := renderFlat(t, SmartQuote(`\'hello\'`, Space, `\"world\"`))
	want := `"'hello' \"world\""`
	assert.Equals(t, got, want)
}

func TestSmartQuotePrefersDoubleOnTie(t *testing.T) {
	got := renderFlat(t, SmartQuote("a'b\"c"))
	want := `"a'b\"c"`
	assert.Equals(t, got, want)
}

func TestInlineDropsLines(t *testing.T) {
	d := Edit("inline", Text("a"), Line, Text("b"))
	got := renderFlat(t, d)
	assert.Equals(t, got, "ab")
}

func TestEditRoundTrip(t *testing.T) {
	d := SmartQuote("x")
	got := FromDict(d.ToDict())
	if diff := cmp.Diff(d.ToDict(), got.ToDict()); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}
