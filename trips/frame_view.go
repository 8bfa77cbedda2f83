package trips

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// ============================================================================
// FRAME VIEW — engine.RecordView over a loaded DataFrame
// ============================================================================
// Columns are copied out of the DataFrame once; the engine then reads cells
// by index in tight loops. NA cells read as "" (Dimension) or NaN (Measure).
// ============================================================================

// FrameView exposes a DataFrame to the engine.
type FrameView struct {
	n        int
	names    []string
	text     map[string][]string
	numbers  map[string][]float64
	measures []string
}

// NewFrameView snapshots df. Columns listed in measures are parsed as
// numbers; a non-blank cell that does not parse is an error.
func NewFrameView(df dataframe.DataFrame, measures ...string) (*FrameView, error) {
	if df.Err != nil {
		return nil, df.Err
	}

	v := &FrameView{
		n:       df.Nrow(),
		names:   df.Names(),
		text:    make(map[string][]string),
		numbers: make(map[string][]float64),
	}

	for _, name := range v.names {
		col := df.Col(name)
		vals := col.Records()
		for i, na := range col.IsNaN() {
			if na {
				vals[i] = ""
			}
		}
		v.text[name] = vals
	}

	for _, key := range measures {
		vals, ok := v.text[key]
		if !ok {
			continue
		}
		nums := make([]float64, len(vals))
		for i, s := range vals {
			if s == "" {
				nums[i] = math.NaN()
				continue
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %q is not a number", key, i, s)
			}
			nums[i] = f
		}
		v.numbers[key] = nums
		v.measures = append(v.measures, key)
	}

	return v, nil
}

func (v *FrameView) Len() int { return v.n }

func (v *FrameView) Dimension(i int, key string) string {
	col, ok := v.text[key]
	if !ok || i < 0 || i >= len(col) {
		return ""
	}
	return col[i]
}

func (v *FrameView) Measure(i int, key string) float64 {
	col, ok := v.numbers[key]
	if !ok || i < 0 || i >= len(col) {
		return math.NaN()
	}
	return col[i]
}

func (v *FrameView) DimensionKeys() []string { return v.names }
func (v *FrameView) MeasureKeys() []string   { return v.measures }
