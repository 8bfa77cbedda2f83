package report

import (
	"fmt"
	"io"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/schema"
	"github.com/spektr-org/bikeshare/trips"
)

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Month int // 1–12
	Day   string
	Hour  int // 0–23
}

// ComputeTimeStats returns the modes of the derived month, day_of_week
// and hour columns. ok is false for an empty view.
func ComputeTimeStats(view engine.RecordView) (stats TimeStats, ok bool) {
	month, _, ok := engine.ModeMeasure(view, schema.ColMonth)
	if !ok {
		return stats, false
	}
	day, _, _ := engine.Mode(view, schema.ColDayOfWeek)
	hour, _, _ := engine.ModeMeasure(view, schema.ColHour)

	return TimeStats{Month: int(month), Day: day, Hour: int(hour)}, true
}

// TimeStats prints the most common month, day of week and start hour.
func (r *Reporter) TimeStats(t *trips.Table) {
	r.section("Calculating The Most Frequent Times of Travel...", t.View, func(w io.Writer) {
		stats, ok := ComputeTimeStats(t.View)
		if !ok {
			fmt.Fprintln(w, NoData)
			return
		}
		fmt.Fprintf(w, "Most common month: %s\n", trips.MonthName(stats.Month))
		fmt.Fprintf(w, "Most common day of week: %s\n", stats.Day)
		fmt.Fprintf(w, "Most common hour: %d\n", stats.Hour)
	})
}
