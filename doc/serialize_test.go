package doc

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestRoundTrip(t *testing.T) {
	tests := map[string]Doc{
		"Empty":         Empty,
		"Space":         Space,
		"Line":          Line,
		"Text":          Text("hello"),
		"Fail":          Fail,
		"SoftLine":      SoftLine,
		"Cat":           Cat("a", Space, "b"),
		"Alt":           Alt(Text("x"), Text("y"), Text("z")),
		"Nest":          Nest(4, true, Text("x")),
		"NestNoOverlap": Nest(2, false, Text("x")),
		"Edit":          SingleQuote("quoted"),
		"Row":           Row(RowOpts{TableType: "t", MinColWidths: []int{3, 0}}, "a", "b"),
		"Table":         Table(Row(RowOpts{}, "a"), Row(RowOpts{}, "b")),
	}

	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			got := FromDict(d.ToDict())
			assert.NoDiff(t, got.ToDict(), d.ToDict())
		})
	}
}
