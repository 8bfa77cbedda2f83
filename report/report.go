// Package report prints the four descriptive statistics sections for a
// filtered trip table: times of travel, stations, trip duration and users.
//
// Each section is a read-only pass over the table. Computation and
// rendering are split so the numbers can be checked without parsing text.
package report

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/trips"
)

// NoData replaces a section's statistics when the filters left no rows.
const NoData = "No data available for the selected filters."

var separator = strings.Repeat("-", 40)

// Reporter writes report sections to an output stream.
type Reporter struct {
	out io.Writer
	cfg *config
}

// New creates a Reporter writing to out.
func New(out io.Writer, opts ...Option) *Reporter {
	return &Reporter{out: out, cfg: applyOptions(opts)}
}

// All prints the four sections in order.
func (r *Reporter) All(t *trips.Table) {
	r.TimeStats(t)
	r.StationStats(t)
	r.DurationStats(t)
	r.UserStats(t)
}

// section prints the title, the body (or NoData on an empty view), the
// elapsed time and the separator.
func (r *Reporter) section(title string, view engine.RecordView, body func(w io.Writer)) {
	fmt.Fprintf(r.out, "\n%s\n\n", title)
	started := r.cfg.Now()

	if view.Len() == 0 {
		fmt.Fprintln(r.out, NoData)
	} else {
		body(r.out)
	}

	elapsed := r.cfg.Now().Sub(started)
	log.Printf("⏱️ %q over %d rows in %v", title, view.Len(), elapsed)
	fmt.Fprintf(r.out, "\nThis took %s seconds.\n", formatSeconds(elapsed))
	fmt.Fprintln(r.out, separator)
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
