package doc

import "github.com/pageforge/docprinter/internal/assert"

// TableDoc is a sequence of rows rendered with column widths unified
// across every row.
type TableDoc struct {
	Rows []*RowDoc
}

func (d *TableDoc) docNode() {}

// WidthHint is the first row's hint, since every row in a table shares
// column widths and a table always spans at least one full line.
func (d *TableDoc) WidthHint() WidthHint {
	if len(d.Rows) == 0 {
		return Unknown
	}
	return d.Rows[0].WidthHint()
}

func (d *TableDoc) ToDict() map[string]any {
	rows := make([]any, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = r.ToDict()
	}
	return map[string]any{"type": "Table", "rows": rows}
}

// Table builds a Table from a sequence of rows. Every child must be a Row.
func Table(items ...DocLike) Doc {
	docs := splat(items)
	rows := make([]*RowDoc, 0, len(docs))
	for _, d := range docs {
		r, ok := d.(*RowDoc)
		assert.That(ok, "doc: Table child must be a Row")
		rows = append(rows, r)
	}
	return &TableDoc{Rows: rows}
}

// rowCandidate classifies a document as a grouping key for CreateTables: it
// is either a bare Row, an Alt with a Row among its alternatives (the usual
// shape of "maybe align this as a table row, else fall back to prose"), or
// neither.
type rowCandidate struct {
	row       *RowDoc
	isRow     bool
	tableType string
}

func classify(d Doc) rowCandidate {
	if r, ok := d.(*RowDoc); ok {
		return rowCandidate{row: r, isRow: true, tableType: r.Info.TableType}
	}
	if a, ok := d.(*AltDoc); ok {
		for _, alt := range a.Alts {
			if r, ok := alt.(*RowDoc); ok {
				return rowCandidate{row: r, isRow: true, tableType: r.Info.TableType}
			}
		}
	}
	return rowCandidate{}
}

// CreateTables groups a sequence of documents into Table alternatives.
// Using the strict-adjacency resolution of the corresponding Open
// Question: a run of two or more consecutive row candidates sharing the
// same table type becomes Alt(Cat(separator.join(originals)), Table(rows));
// a lone row candidate, or a non-candidate, passes through unchanged.
func CreateTables(docs []Doc, separator Doc) []Doc {
	out := make([]Doc, 0, len(docs))
	i := 0
	for i < len(docs) {
		key := classify(docs[i])
		j := i + 1
		for j < len(docs) {
			next := classify(docs[j])
			if next.isRow != key.isRow || next.tableType != key.tableType {
				break
			}
			j++
		}
		group := docs[i:j]
		if key.isRow && len(group) >= 2 {
			rows := make([]*RowDoc, len(group))
			for k, g := range group {
				rows[k] = classify(g).row
			}
			flat := Join(separator, toDocLikes(group)...)
			out = append(out, Alt(flat, &TableDoc{Rows: rows}))
		} else {
			out = append(out, group...)
		}
		i = j
	}
	return out
}
