package report

import (
	"fmt"
	"io"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/schema"
	"github.com/spektr-org/bikeshare/trips"
)

// DurationStats holds total and mean trip duration.
type DurationStats struct {
	Total float64
	Mean  float64
	Trips int // rows with a duration
}

// ComputeDurationStats sums and averages Trip Duration, skipping blanks.
func ComputeDurationStats(view engine.RecordView) (stats DurationStats, ok bool) {
	total, n := engine.SumMeasure(view, schema.ColTripDuration)
	if n == 0 {
		return stats, false
	}
	return DurationStats{Total: total, Mean: total / float64(n), Trips: n}, true
}

// DurationStats prints total and average travel time.
func (r *Reporter) DurationStats(t *trips.Table) {
	r.section("Calculating Trip Duration...", t.View, func(w io.Writer) {
		stats, ok := ComputeDurationStats(t.View)
		if !ok {
			fmt.Fprintln(w, NoData)
			return
		}
		fmt.Fprintf(w, "Total travel time: %s minutes\n", engine.FormatNumber(stats.Total))
		fmt.Fprintf(w, "Average travel time: %d minutes\n", engine.RoundHalfEven(stats.Mean))
	})
}
