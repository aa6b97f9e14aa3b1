package render

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/pageforge/docprinter/doc"
)

// A lone Row aligns against nothing but itself: no column is ever wider
// than its own content, so no padding is inserted beyond the separator.
func TestRowAlignsAgainstItself(t *testing.T) {
	d := doc.Row(doc.RowOpts{}, "a", "bb", "ccc")

	got, err := NewSimpleRenderer(ShortestLines).ToStr(d)
	assert.NoError(t, err)
	assert.Equals(t, got, "a bb ccc\n")
}

// Rows sharing a Table unify their column widths to the widest cell in
// each column, padding every cell but the last out to that width.
func TestTableUnifiesColumnWidths(t *testing.T) {
	d := doc.Table(
		doc.Row(doc.RowOpts{}, "a", "bb"),
		doc.Row(doc.RowOpts{}, "ccc", "d"),
	)

	got, err := NewSimpleRenderer(ShortestLines).ToStr(d)
	assert.NoError(t, err)
	assert.Equals(t, got, "a   bb\nccc d\n")
}

// A declared MinColWidths floor applies even when every row's own content
// is narrower than it.
func TestTableHonorsDeclaredMinColWidths(t *testing.T) {
	d := doc.Table(
		doc.Row(doc.RowOpts{MinColWidths: []int{5, -1}}, "a", "b"),
		doc.Row(doc.RowOpts{}, "c", "d"),
	)

	got, err := NewSimpleRenderer(ShortestLines).ToStr(d)
	assert.NoError(t, err)
	assert.Equals(t, got, "a     b\nc     d\n")
}

// A custom hsep is used as the separator between every pair of cells, on
// top of the usual per-column padding.
func TestRowCustomSeparator(t *testing.T) {
	sep := doc.Text("|")
	d := doc.Table(
		doc.Row(doc.RowOpts{HSep: sep}, "a", "bb"),
		doc.Row(doc.RowOpts{HSep: sep}, "ccc", "d"),
	)
	got, err := NewSimpleRenderer(ShortestLines).ToStr(d)
	assert.NoError(t, err)
	assert.Equals(t, got, "a  |bb\nccc|d\n")
}

// Cells with Alt content still resolve through the same onAlt strategy used
// by the rest of the document, since row buffering walks cells with the
// caller's altFunc rather than a fixed choice.
func TestRowCellRendersAltContent(t *testing.T) {
	d := doc.Row(doc.RowOpts{}, doc.Alt(doc.Text("short"), "much longer"), "x")

	got, err := NewSimpleRenderer(LongestLines).ToStr(d)
	assert.NoError(t, err)
	assert.Equals(t, got, "much longer x\n")
}
