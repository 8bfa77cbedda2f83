package engine

import "math"

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns the trip table. It reads through this interface.
//
// Implementations:
//   SliceView  — wraps []Record (fixtures, ad-hoc tables)
//   SubView    — filtered or sliced subset (indices into parent, zero-copy)
//   trips.FrameView — wraps a loaded DataFrame
// ============================================================================

// RecordView provides indexed access to a dataset.
// Measure returns NaN when a value is missing or not numeric.
type RecordView interface {
	Len() int
	Dimension(index int, key string) string
	Measure(index int, key string) float64
	DimensionKeys() []string // available dimension keys, in display order
	MeasureKeys() []string   // available measure keys
}

// Indexer is implemented by views that can map a row back to its
// position in the table they were derived from.
type Indexer interface {
	SourceIndex(index int) int
}

// SourceIndex returns the position of row i in the underlying source table.
func SourceIndex(view RecordView, i int) int {
	if ix, ok := view.(Indexer); ok {
		return ix.SourceIndex(i)
	}
	return i
}

// ============================================================================
// SLICE VIEW — wraps []Record
// ============================================================================

// SliceView wraps a []Record slice as a RecordView.
type SliceView struct {
	records []Record
	dimKeys []string
	mesKeys []string
}

// NewSliceView creates a RecordView from a []Record slice.
// Keys are reported in first-seen order; pass dimKeys to fix the order.
func NewSliceView(records []Record, dimKeys ...string) RecordView {
	v := &SliceView{records: records, dimKeys: dimKeys}
	v.cacheKeys()
	return v
}

func (v *SliceView) cacheKeys() {
	dimSeen := make(map[string]bool)
	for _, k := range v.dimKeys {
		dimSeen[k] = true
	}
	mesSeen := make(map[string]bool)
	for _, r := range v.records {
		for k := range r.Dimensions {
			if !dimSeen[k] {
				dimSeen[k] = true
				v.dimKeys = append(v.dimKeys, k)
			}
		}
		for k := range r.Measures {
			if !mesSeen[k] {
				mesSeen[k] = true
				v.mesKeys = append(v.mesKeys, k)
			}
		}
	}
}

func (v *SliceView) Len() int { return len(v.records) }

func (v *SliceView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.records) {
		return ""
	}
	return v.records[i].Dimensions[key]
}

func (v *SliceView) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.records) {
		return math.NaN()
	}
	val, ok := v.records[i].Measures[key]
	if !ok {
		return math.NaN()
	}
	return val
}

func (v *SliceView) DimensionKeys() []string { return v.dimKeys }
func (v *SliceView) MeasureKeys() []string   { return v.mesKeys }

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a subset of a parent RecordView.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

// Slice returns rows [start, end) of view. Bounds are clamped, so a range
// past the end yields a short or empty view, never an error.
func Slice(view RecordView, start, end int) RecordView {
	n := view.Len()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return newSubView(view, nil)
	}
	indices := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indices = append(indices, i)
	}
	return newSubView(view, indices)
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Dimension(v.indices[i], key)
}

func (v *SubView) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.indices) {
		return math.NaN()
	}
	return v.parent.Measure(v.indices[i], key)
}

func (v *SubView) SourceIndex(i int) int {
	if i < 0 || i >= len(v.indices) {
		return -1
	}
	return SourceIndex(v.parent, v.indices[i])
}

func (v *SubView) DimensionKeys() []string { return v.parent.DimensionKeys() }
func (v *SubView) MeasureKeys() []string   { return v.parent.MeasureKeys() }
