package engine

import (
	"math"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
)

// ============================================================================
// AGGREGATORS — Grouping, mode and numeric summaries via RecordView
// ============================================================================
// Blank dimensions and NaN measures are skipped, the way a dataframe skips
// missing values. Every function is safe on an empty view and reports
// whether it found anything to aggregate.
// ============================================================================

// ============================================================================
// GROUPING
// ============================================================================

// GroupBy splits a view by the distinct non-blank values of a dimension.
// Groups come back in first-seen order.
func GroupBy(view RecordView, dimension string) []Group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key := view.Dimension(i, dimension)
		if key == "" {
			continue
		}
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:   key,
			Count: len(grouped[key]),
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// SortByFrequency orders groups by count descending. Ties go to the
// smaller key: numeric order when both keys are numbers, lexical otherwise.
func SortByFrequency(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return keyLess(groups[i].Key, groups[j].Key)
	})
}

func keyLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}

// ============================================================================
// MODE / DISTINCT
// ============================================================================

// Mode returns the most frequent non-blank value of a dimension and how
// often it occurs. ok is false when the view has no values to count.
func Mode(view RecordView, dimension string) (value string, count int, ok bool) {
	groups := GroupBy(view, dimension)
	if len(groups) == 0 {
		return "", 0, false
	}
	SortByFrequency(groups)
	return groups[0].Key, groups[0].Count, true
}

// ModeMeasure returns the most frequent numeric value of a measure.
// Ties go to the smallest value.
func ModeMeasure(view RecordView, measure string) (value float64, count int, ok bool) {
	counts := make(map[float64]int)
	for i := 0; i < view.Len(); i++ {
		v := view.Measure(i, measure)
		if math.IsNaN(v) {
			continue
		}
		counts[v]++
	}
	for v, c := range counts {
		if !ok || c > count || (c == count && v < value) {
			value, count, ok = v, c, true
		}
	}
	return value, count, ok
}

// CountDistinct returns the number of distinct non-blank values of a dimension.
func CountDistinct(view RecordView, dimension string) int {
	return len(UniqueValues(view, dimension))
}

// UniqueValues returns distinct non-blank values for a dimension, first-seen order.
func UniqueValues(view RecordView, dimension string) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := view.Dimension(i, dimension)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}

// ============================================================================
// NUMERIC SUMMARIES
// ============================================================================

// SumMeasure sums a named measure across a view.
// n is the number of non-missing values that contributed.
func SumMeasure(view RecordView, measure string) (total float64, n int) {
	for i := 0; i < view.Len(); i++ {
		v := view.Measure(i, measure)
		if math.IsNaN(v) {
			continue
		}
		total += v
		n++
	}
	return total, n
}

// MeanMeasure computes the average of the non-missing values of a measure.
func MeanMeasure(view RecordView, measure string) (float64, bool) {
	total, n := SumMeasure(view, measure)
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// MaxMeasure returns the largest value of a named measure.
func MaxMeasure(view RecordView, measure string) (float64, bool) {
	return extremeMeasure(view, measure, func(a, b float64) bool { return a > b })
}

// MinMeasure returns the smallest value of a named measure.
func MinMeasure(view RecordView, measure string) (float64, bool) {
	return extremeMeasure(view, measure, func(a, b float64) bool { return a < b })
}

func extremeMeasure(view RecordView, measure string, better func(a, b float64) bool) (float64, bool) {
	var m float64
	found := false
	for i := 0; i < view.Len(); i++ {
		v := view.Measure(i, measure)
		if math.IsNaN(v) {
			continue
		}
		if !found || better(v, m) {
			m = v
			found = true
		}
	}
	return m, found
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatNumber formats a total with comma separators, dropping the
// fraction when the value is whole ("1,234" vs "1,234.5").
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return humanize.Comma(int64(v))
	}
	return humanize.Commaf(v)
}

// RoundHalfEven rounds to the nearest whole number, ties to even.
func RoundHalfEven(v float64) int64 {
	return int64(math.RoundToEven(v))
}
