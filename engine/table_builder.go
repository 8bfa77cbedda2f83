package engine

import "strconv"

// ============================================================================
// TABLE BUILDER — Produces TableData for raw row display
// ============================================================================
// Column discovery uses view.DimensionKeys(); the first column is the row's
// position in the source table, so a page of a filtered view still shows
// where each trip came from.
// ============================================================================

// IndexColumn is the key of the leading row-index column.
const IndexColumn = "#"

// BuildRowTable renders rows [start, end) of a view. The range is clamped
// to the view; an out-of-range page produces a table with columns but no rows.
func BuildRowTable(view RecordView, start, end int) *TableData {
	page := Slice(view, start, end)
	dimKeys := view.DimensionKeys()

	columns := make([]Column, 0, len(dimKeys)+1)
	columns = append(columns, Column{Key: IndexColumn, Label: ""})
	for _, key := range dimKeys {
		columns = append(columns, Column{Key: key, Label: key})
	}

	rows := make([][]string, 0, page.Len())
	for i := 0; i < page.Len(); i++ {
		row := make([]string, 0, len(columns))
		row = append(row, strconv.Itoa(SourceIndex(page, i)))
		for _, key := range dimKeys {
			row = append(row, page.Dimension(i, key))
		}
		rows = append(rows, row)
	}

	return &TableData{
		Columns: columns,
		Rows:    rows,
	}
}
