package engine

// ============================================================================
// ENGINE TYPES — Trip-table analytics
// ============================================================================
// The engine reads rows through RecordView and never owns the table.
// Filters narrow a view, aggregators summarise it, builders turn it into
// render-ready rows.
// ============================================================================

// ============================================================================
// RECORD — Generic data row
// ============================================================================

// Record is a single data row with string dimensions and numeric measures.
// Used by SliceView for ad-hoc tables (tests, small fixtures).
type Record struct {
	Dimensions map[string]string  `json:"dimensions"`
	Measures   map[string]float64 `json:"measures"`
}

// ============================================================================
// FILTERS
// ============================================================================

// Filters define which records to include.
// Keys are dimension names. Values are allowed values.
// OR within a dimension, AND across dimensions. Empty = all.
//
//	Filters{Dimensions: {"month": ["5"], "day_of_week": ["Monday"]}}
type Filters struct {
	Dimensions map[string][]string `json:"dimensions"`
}

// Where returns a copy of f with an equality constraint on dimension.
func (f Filters) Where(dimension string, values ...string) Filters {
	out := Filters{Dimensions: make(map[string][]string, len(f.Dimensions)+1)}
	for k, v := range f.Dimensions {
		out.Dimensions[k] = v
	}
	out.Dimensions[dimension] = append([]string(nil), values...)
	return out
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	if f.Dimensions == nil {
		return true
	}
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group is one distinct value of a dimension and the rows carrying it.
type Group struct {
	Key   string     `json:"key"`
	Count int        `json:"count"`
	View  RecordView `json:"-"` // Sub-view for records in this group (zero-copy)
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData is a render-ready slice of rows.
type TableData struct {
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// IsEmpty reports whether the table has no rows.
func (t *TableData) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}
