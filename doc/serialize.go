package doc

import "github.com/pageforge/docprinter/internal/assert"

// FromDict decodes the dictionary form produced by ToDict back into a Doc.
// It is used by golden tests and by cmd/docprint's render command to read
// its JSON input, never by the renderer.
func FromDict(m map[string]any) Doc {
	typ, _ := m["type"].(string)
	switch typ {
	case "Empty":
		return Empty
	case "Space":
		return Space
	case "Line":
		return Line
	case "Text":
		return Text(m["text"].(string))
	case "Fail":
		return Fail
	case "SoftLine":
		return SoftLine
	case "Cat":
		return &CatDoc{Docs: docsFromDict(m["docs"])}
	case "Alt":
		return &AltDoc{Alts: docsFromDict(m["alts"])}
	case "Nest":
		return &NestDoc{
			Indent:  toInt(m["indent"]),
			Doc:     FromDict(m["doc"].(map[string]any)),
			Overlap: m["overlap"].(bool),
		}
	case "Edit":
		return &EditDoc{
			Function: m["function"].(string),
			Doc:      FromDict(m["doc"].(map[string]any)),
		}
	case "Row":
		return &RowDoc{Cells: docsFromDict(m["cells"]), Info: rowInfoFromDict(m["info"].(map[string]any))}
	case "Table":
		rows := docsFromDict(m["rows"])
		out := make([]*RowDoc, len(rows))
		for i, r := range rows {
			out[i] = r.(*RowDoc)
		}
		return &TableDoc{Rows: out}
	default:
		assert.That(false, "doc: unknown dictionary type %q", typ)
		return nil
	}
}

func docsFromDict(v any) []Doc {
	items, _ := v.([]any)
	out := make([]Doc, len(items))
	for i, item := range items {
		out[i] = FromDict(item.(map[string]any))
	}
	return out
}

func rowInfoFromDict(m map[string]any) RowInfo {
	info := RowInfo{
		TableType: m["table_type"].(string),
		HPad:      FromDict(m["hpad"].(map[string]any)).(Token),
		HSep:      FromDict(m["hsep"].(map[string]any)).(Token),
	}
	if raw, ok := m["min_col_widths"].([]int); ok {
		info.MinColWidths = raw
	} else if raw, ok := m["min_col_widths"].([]any); ok {
		widths := make([]int, len(raw))
		for i, w := range raw {
			widths[i] = toInt(w)
		}
		info.MinColWidths = widths
	}
	return info
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}
