package report

import (
	"fmt"
	"io"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/schema"
	"github.com/spektr-org/bikeshare/trips"
)

// UserStats holds user demographics. Gender and birth year fields are only
// meaningful when the matching Has flag is set.
type UserStats struct {
	UserTypes int

	HasGender   bool
	GenderTypes int

	HasBirthYear      bool
	BirthYearFound    bool // false when every birth year in the view is blank
	EarliestBirthYear int
	LatestBirthYear   int
	CommonBirthYear   int
}

// ComputeUserStats counts user types and, where sch carries them, gender
// types and birth-year extremes. Absent columns are never read.
func ComputeUserStats(view engine.RecordView, sch *schema.Config) UserStats {
	stats := UserStats{
		UserTypes: engine.CountDistinct(view, schema.ColUserType),
	}

	if sch.Has(schema.ColGender) {
		stats.HasGender = true
		stats.GenderTypes = engine.CountDistinct(view, schema.ColGender)
	}

	if sch.Has(schema.ColBirthYear) {
		stats.HasBirthYear = true
		earliest, ok := engine.MinMeasure(view, schema.ColBirthYear)
		if ok {
			latest, _ := engine.MaxMeasure(view, schema.ColBirthYear)
			common, _, _ := engine.ModeMeasure(view, schema.ColBirthYear)
			stats.BirthYearFound = true
			stats.EarliestBirthYear = int(earliest)
			stats.LatestBirthYear = int(latest)
			stats.CommonBirthYear = int(common)
		}
	}

	return stats
}

// UserStats prints user type, gender and birth year statistics.
func (r *Reporter) UserStats(t *trips.Table) {
	r.section("Calculating User Stats...", t.View, func(w io.Writer) {
		stats := ComputeUserStats(t.View, t.Schema)

		fmt.Fprintf(w, "Count of user types: %d\n", stats.UserTypes)

		if stats.HasGender {
			fmt.Fprintf(w, "Count of gender types: %d\n", stats.GenderTypes)
		} else {
			fmt.Fprintln(w, "Gender stats not available for this city.")
		}

		switch {
		case !stats.HasBirthYear:
			fmt.Fprintln(w, "Birth year stats not available for this city.")
		case !stats.BirthYearFound:
			fmt.Fprintln(w, "Birth year stats not available for the selected filters.")
		default:
			fmt.Fprintf(w, "Earliest birth year: %d\n", stats.EarliestBirthYear)
			fmt.Fprintf(w, "Latest birth year: %d\n", stats.LatestBirthYear)
			fmt.Fprintf(w, "Most common birth year: %d\n", stats.CommonBirthYear)
		}
	})
}
