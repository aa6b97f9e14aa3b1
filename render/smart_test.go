package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/pageforge/docprinter/doc"
)

// TestSmartSoftLineJoinScenario is the concrete scenario seeding the
// suite: nine two-column tokens joined by SoftLine under a width-10
// budget pack as many words per line as fit, wrapping greedily.
func TestSmartSoftLineJoinScenario(t *testing.T) {
	items := make([]doc.DocLike, 0, 9)
	for i := 1; i <= 9; i++ {
		items = append(items, fmt.Sprintf("%02d", i))
	}
	d := doc.Join(doc.SoftLine, items...)

	r := NewSmartRenderer()
	r.MaxLineWidth = 10
	got, err := r.ToStr(d)
	assert.NoError(t, err)
	assert.Equals(t, got, "01 02 03\n04 05 06\n07 08 09")
}

// TestSmartRendererRespectsWidthBudget checks the renderer law that every
// emitted line stays within MaxLineWidth whenever the Alt fallback itself
// fits, across a variety of nested Alt/Cat/Nest shapes.
func TestSmartRendererRespectsWidthBudget(t *testing.T) {
	call := func(name string, args ...string) doc.Doc {
		items := make([]doc.DocLike, len(args))
		for i, a := range args {
			items[i] = a
		}
		return doc.Cat(
			name, "(",
			doc.Nest(2, false,
				doc.Alt(doc.Line, doc.Empty),
				doc.Join(doc.Alt(doc.Cat(",", doc.Line), ", "), items...),
				doc.Alt(doc.Cat(doc.Line), doc.Empty),
			),
			")",
		)
	}

	tests := map[string]doc.Doc{
		"fits on one line": call("f", "a", "b"),
		"needs to wrap":    call("greet", "name=ava", "loud=true", "times=3", "verbose=no"),
		"nested calls":     doc.Cat(call("outer", "1", "2"), doc.Line, call("another", "x", "y", "z", "w")),
	}

	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewSmartRenderer()
			r.MaxLineWidth = 20
			got, err := r.ToStr(d)
			assert.NoError(t, err)
			for _, line := range strings.Split(got, "\n") {
				assert.True(t, len([]rune(line)) <= 20, "line %q exceeds the 20-column budget", line)
			}
		})
	}
}

func TestSimpleRendererAlwaysPicksFixedAlternative(t *testing.T) {
	d := doc.Alt(doc.Text("a"), doc.Text("b"), doc.Text("c"))

	got, err := NewSimpleRenderer(ShortestLines).ToStr(d)
	assert.NoError(t, err)
	assert.Equals(t, got, "a")

	got, err = NewSimpleRenderer(LongestLines).ToStr(d)
	assert.NoError(t, err)
	assert.Equals(t, got, "c")
}

func TestRenderErrorOnFail(t *testing.T) {
	_, err := NewSmartRenderer().ToStr(doc.Fail)
	assert.True(t, err != nil, "rendering Fail must surface a RenderError")
	var rerr *RenderError
	assert.True(t, errors.As(err, &rerr), "error must be a *RenderError, got %T", err)
}
