package doc

import "github.com/pageforge/docprinter/internal/assert"

// RowInfo carries a Row's alignment configuration: the padding token
// inserted to widen a cell to its column width, the separator token placed
// between cells, an optional table-type tag used by CreateTables to group
// adjacent rows, and a declared per-column minimum width.
type RowInfo struct {
	TableType    string
	HPad         Token
	HSep         Token
	MinColWidths []int // -1 at an index means "no declared minimum"
}

func defaultRowInfo() RowInfo {
	return RowInfo{HPad: Space, HSep: Space}
}

// RowDoc is a horizontal arrangement of cells sharing column widths with
// other rows of the same Table.
type RowDoc struct {
	Cells []Doc
	Info  RowInfo
}

func (d *RowDoc) docNode() {}

// WidthHint sums the first-line widths of cells and separators; a row
// always terminates a line, so EndOfLine is forced true.
func (d *RowDoc) WidthHint() WidthHint {
	width := 0
	for i, c := range d.Cells {
		width += c.WidthHint().Width
		if i > 0 {
			width += d.Info.HSep.Width()
		}
	}
	return WidthHint{Width: width, EndOfLine: true}
}

func (d *RowDoc) ToDict() map[string]any {
	cells := make([]any, len(d.Cells))
	for i, c := range d.Cells {
		cells[i] = c.ToDict()
	}
	info := map[string]any{
		"table_type":     d.Info.TableType,
		"hpad":           d.Info.HPad.ToDict(),
		"hsep":           d.Info.HSep.ToDict(),
		"min_col_widths": d.Info.MinColWidths,
	}
	return map[string]any{"type": "Row", "cells": cells, "info": info}
}

// RowOpts configures a Row's RowInfo. The zero value uses Space for both
// HPad and HSep and declares no minimum widths or table type.
type RowOpts struct {
	TableType    string
	HPad         Token
	HSep         Token
	MinColWidths []int
}

func (o RowOpts) toInfo() RowInfo {
	info := defaultRowInfo()
	info.TableType = o.TableType
	if o.HPad != (Token{}) {
		info.HPad = o.HPad
	}
	if o.HSep != (Token{}) {
		info.HSep = o.HSep
	}
	info.MinColWidths = o.MinColWidths
	return info
}

func rowInfoEqual(a, b RowInfo) bool {
	if a.TableType != b.TableType || a.HPad != b.HPad || a.HSep != b.HSep {
		return false
	}
	if len(a.MinColWidths) != len(b.MinColWidths) {
		return false
	}
	for i := range a.MinColWidths {
		if a.MinColWidths[i] != b.MinColWidths[i] {
			return false
		}
	}
	return true
}

// Row builds a horizontally aligned row from cells. Each splatted child
// that is itself a Row has its cells adopted in place rather than nesting
// a Row inside a cell, matching the "no cell is Row" invariant; its info
// must match the row being built. Every other child becomes a single
// cell. hpad must be exactly one column wide and neither hpad nor hsep
// may be Line.
func Row(opts RowOpts, items ...DocLike) Doc {
	info := opts.toInfo()
	assert.That(info.HPad != Line, "doc: Row hpad must not be Line")
	assert.That(info.HPad.Width() == 1, "doc: Row hpad must be exactly one column wide, got %q", info.HPad.String())
	assert.That(info.HSep != Line, "doc: Row hsep must not be Line")

	docs := splat(items)
	var cells []Doc
	for _, d := range docs {
		if r, ok := d.(*RowDoc); ok {
			assert.That(rowInfoEqual(r.Info, info), "doc: nested Row has different info from the row being built")
			cells = append(cells, r.Cells...)
			continue
		}
		cells = append(cells, d)
	}
	return &RowDoc{Cells: cells, Info: info}
}
