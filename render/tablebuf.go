package render

import "github.com/pageforge/docprinter/doc"

// cellBuffer holds one cell's fully rendered tokens together with its
// intrinsic (minWidth) and final padded (width) column width. The setter
// for minWidth enforces width = max(width, minWidth).
type cellBuffer struct {
	tokens   []doc.Token
	minWidth int
	width    int
}

func newCellBuffer(tokens []doc.Token) *cellBuffer {
	w := 0
	for _, t := range tokens {
		w += t.Width()
	}
	return &cellBuffer{tokens: tokens, minWidth: w, width: w}
}

func (c *cellBuffer) setMinWidth(w int) {
	if w > c.minWidth {
		c.minWidth = w
	}
	if c.width < c.minWidth {
		c.width = c.minWidth
	}
}

func (c *cellBuffer) setWidth(w int) {
	c.width = w
	if c.width < c.minWidth {
		c.width = c.minWidth
	}
}

// rowBuffer holds a row's cells, its padding/separator tokens, and any
// declared per-column minimum widths. minColWidths entries of -1 mean "no
// declared minimum for this column".
type rowBuffer struct {
	cells        []*cellBuffer
	hpad, hsep   doc.Token
	minColWidths []int
}

func (r *rowBuffer) minNCols() int { return len(r.cells) }

// mergeMinColWidths takes the element-wise maximum of r's declared minimum
// widths and other's, treating a missing position on either side as 0.
func (r *rowBuffer) mergeMinColWidths(other []int) {
	n := len(r.minColWidths)
	if len(other) > n {
		n = len(other)
	}
	merged := make([]int, n)
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(r.minColWidths) && r.minColWidths[i] > 0 {
			a = r.minColWidths[i]
		}
		if i < len(other) && other[i] > 0 {
			b = other[i]
		}
		if a > b {
			merged[i] = a
		} else {
			merged[i] = b
		}
	}
	r.minColWidths = merged
}

// colWidths reports, for each cell, the maximum of its intrinsic width and
// any declared column minimum.
func (r *rowBuffer) colWidths() []int {
	out := make([]int, len(r.cells))
	for i, c := range r.cells {
		out[i] = c.minWidth
		if i < len(r.minColWidths) && r.minColWidths[i] > out[i] {
			out[i] = r.minColWidths[i]
		}
	}
	return out
}

// setColWidths applies a unified set of column widths to this row's cells.
func (r *rowBuffer) setColWidths(widths []int) {
	for i, c := range r.cells {
		if i < len(widths) {
			c.setWidth(widths[i])
		}
	}
}

// tableBuffer accumulates rows and the column widths unified across all of
// them. update() propagates the unified widths back into every row, which
// in turn sets each cell's final width.
type tableBuffer struct {
	rows      []*rowBuffer
	colWidths []int
}

// addRow folds row's column requirements into the table's running
// col_widths: the maximum of the current widths, each cell's min_width,
// and the row's declared min_col_widths.
func (t *tableBuffer) addRow(row *rowBuffer) {
	widths := row.colWidths()
	if len(widths) > len(t.colWidths) {
		grown := make([]int, len(widths))
		copy(grown, t.colWidths)
		t.colWidths = grown
	}
	for i, w := range widths {
		if w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// update propagates the unified col_widths back into every row.
func (t *tableBuffer) update() {
	for _, row := range t.rows {
		row.setColWidths(t.colWidths)
	}
}
