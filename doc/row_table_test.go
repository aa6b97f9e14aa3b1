package doc

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestRowAdoptsIdenticalInfoChild(t *testing.T) {
	r1 := Row(RowOpts{}, "a", "b")
	r2 := Row(RowOpts{}, r1)
	assert.NoDiff(t, r1.ToDict(), r2.ToDict())
}

func TestRowFlattensNestedRowAmongOtherCells(t *testing.T) {
	inner := Row(RowOpts{}, "a", "b")
	got := Row(RowOpts{}, inner, "c")
	want := Row(RowOpts{}, "a", "b", "c")
	assert.NoDiff(t, got.ToDict(), want.ToDict())
}

func TestRowRejectsNestedRowWithDifferentInfo(t *testing.T) {
	defer func() {
		r := recover()
		assert.True(t, r != nil, "Row(opts, Row(otherOpts, ...), x) must panic on mismatched info")
	}()
	inner := Row(RowOpts{HSep: Text("|")}, "a")
	Row(RowOpts{}, inner, "b")
}

func TestCreateTablesStrictAdjacency(t *testing.T) {
	prose := Text("not a row")
	r1 := Row(RowOpts{}, "a", "b")
	r2 := Row(RowOpts{}, "c", "d")

	got := CreateTables([]Doc{prose, r1, r2}, Line)
	assert.Equals(t, len(got), 2, "a non-row document plus one grouped table alternative")

	assert.NoDiff(t, got[0].ToDict(), prose.ToDict())

	alt, ok := got[1].(*AltDoc)
	assert.True(t, ok, "a run of >= 2 adjacent rows must become an Alt(join, table)")
	if ok {
		assert.Equals(t, len(alt.Alts), 2, "the Alt must offer exactly the streaming and table forms")
		_, isTable := alt.Alts[1].(*TableDoc)
		assert.True(t, isTable, "the second alternative must be a Table")
	}
}

func TestCreateTablesRequiresTwoAdjacentRows(t *testing.T) {
	r1 := Row(RowOpts{}, "a")
	got := CreateTables([]Doc{r1}, Line)
	assert.Equals(t, len(got), 1, "a single row candidate never becomes a Table alternative")
	assert.NoDiff(t, got[0].ToDict(), r1.ToDict())
}
