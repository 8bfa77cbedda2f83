package report

import (
	"fmt"
	"io"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/schema"
	"github.com/spektr-org/bikeshare/trips"
)

// StationStats holds the most popular stations and trip.
type StationStats struct {
	Start string
	End   string
	Combo string // "start - end"
}

// ComputeStationStats returns the modes of the start station, end station
// and Station Combo columns.
func ComputeStationStats(view engine.RecordView) (stats StationStats, ok bool) {
	start, _, okStart := engine.Mode(view, schema.ColStartStation)
	end, _, okEnd := engine.Mode(view, schema.ColEndStation)
	combo, _, okCombo := engine.Mode(view, schema.ColStationCombo)
	if !okStart && !okEnd && !okCombo {
		return stats, false
	}
	return StationStats{Start: start, End: end, Combo: combo}, true
}

// StationStats prints the most common start station, end station and
// start/end pair.
func (r *Reporter) StationStats(t *trips.Table) {
	r.section("Calculating The Most Popular Stations and Trip...", t.View, func(w io.Writer) {
		stats, ok := ComputeStationStats(t.View)
		if !ok {
			fmt.Fprintln(w, NoData)
			return
		}
		fmt.Fprintf(w, "Most common start station: %s\n", stats.Start)
		fmt.Fprintf(w, "Most common end station: %s\n", stats.End)
		fmt.Fprintf(w, "Most common start and end station combo: %s\n", stats.Combo)
	})
}
