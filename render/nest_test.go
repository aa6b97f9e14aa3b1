package render

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/pageforge/docprinter/doc"
)

// These three cases are the concrete Nest scenarios seeding the suite: a
// label joined with an indented two-line block, with and without overlap.
func TestNestScenarios(t *testing.T) {
	block := func(indent int, overlap bool) doc.Doc {
		return doc.SpaceJoin("label:", doc.Nest(indent, overlap, doc.Then(doc.Then(doc.Text("a"), doc.Line), doc.Text("b"))))
	}

	tests := map[string]struct {
		d    doc.Doc
		want string
	}{
		"indent=2, no overlap":  {block(2, false), "label: a\n  b"},
		"indent=10, no overlap": {block(10, false), "label: a\n          b"},
		"indent=10, overlap":    {block(10, true), "label:    a\n          b"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewSimpleRenderer(ShortestLines).ToStr(tt.d)
			assert.NoError(t, err)
			assert.Equals(t, got, tt.want)
		})
	}
}
