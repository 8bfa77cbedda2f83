package trips

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/helpers"
	"github.com/spektr-org/bikeshare/schema"
)

// ============================================================================
// LOADER — city file → DataFrame → derived columns → filtered view
// ============================================================================
// Pipeline:
//   1. Resolve the city to its file and read it into a DataFrame
//   2. Discover the schema from the header (optional columns per city)
//   3. Add month, day_of_week, hour and Station Combo columns
//   4. Snapshot into a FrameView and apply the month/day filters → SubView
// ============================================================================

// stationSeparator joins start and end station in the Station Combo column.
const stationSeparator = " - "

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// Table is the loaded, filtered trip table for one session iteration.
type Table struct {
	City   string
	Schema *schema.Config
	Frame  dataframe.DataFrame // every row, source and derived columns
	Source *FrameView          // unfiltered rows
	View   engine.RecordView   // rows matching the selection
}

// Len returns the number of rows after filtering.
func (t *Table) Len() int { return t.View.Len() }

// Load reads the selected city's file and applies the selection's filters.
// A missing or malformed file is returned as an error.
func Load(reg *Registry, sel Selection) (*Table, error) {
	path, err := reg.Path(sel.City)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	df, err := helpers.ReadCSVFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s data: %w", sel.City, err)
	}
	log.Printf("📂 Read %s (%s rows) in %v", path, humanize.Comma(int64(df.Nrow())), time.Since(started))

	return FromFrame(sel, df)
}

// FromFrame builds a Table from an already-loaded DataFrame.
func FromFrame(sel Selection, df dataframe.DataFrame) (*Table, error) {
	sch, err := schema.DiscoverFromHeader(sel.City, df.Names())
	if err != nil {
		return nil, err
	}
	for canonical, inFile := range sch.Renamed {
		df = df.Rename(canonical, inFile)
	}

	df, err = deriveColumns(df)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sel.City, err)
	}
	sch.AddDerived()
	log.Printf("🧭 %s columns: %s", sel.City, sch.Describe())

	source, err := NewFrameView(df, sch.MeasureKeys()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sel.City, err)
	}

	filters := sel.Filters()
	view := engine.ApplyFilters(source, filters)
	log.Printf("📊 %s: %s trips, %s after filters (month=%s, day=%s)",
		sel.City, humanize.Comma(int64(source.Len())), humanize.Comma(int64(view.Len())), sel.Month, sel.Day)

	return &Table{
		City:   sel.City,
		Schema: sch,
		Frame:  df,
		Source: source,
		View:   view,
	}, nil
}

// deriveColumns adds month (1–12), day_of_week, hour (0–23) and
// Station Combo to df.
func deriveColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	n := df.Nrow()
	starts := df.Col(schema.ColStartTime)
	startRaw, startNA := starts.Records(), starts.IsNaN()

	months := make([]int, n)
	days := make([]string, n)
	hours := make([]int, n)
	for i := 0; i < n; i++ {
		if startNA[i] {
			return df, fmt.Errorf("row %d: missing %s", i, schema.ColStartTime)
		}
		ts, err := ParseStartTime(startRaw[i])
		if err != nil {
			return df, fmt.Errorf("row %d: %w", i, err)
		}
		months[i] = int(ts.Month())
		days[i] = ts.Weekday().String()
		hours[i] = ts.Hour()
	}

	startCol, endCol := df.Col(schema.ColStartStation), df.Col(schema.ColEndStation)
	startSt, startStNA := startCol.Records(), startCol.IsNaN()
	endSt, endStNA := endCol.Records(), endCol.IsNaN()
	combos := make([]string, n)
	for i := 0; i < n; i++ {
		if startStNA[i] || endStNA[i] {
			combos[i] = "NaN"
			continue
		}
		combos[i] = StationCombo(startSt[i], endSt[i])
	}

	df = df.Mutate(series.New(months, series.Int, schema.ColMonth)).
		Mutate(series.New(days, series.String, schema.ColDayOfWeek)).
		Mutate(series.New(hours, series.Int, schema.ColHour)).
		Mutate(series.New(combos, series.String, schema.ColStationCombo))
	if df.Err != nil {
		return df, fmt.Errorf("failed to add derived columns: %w", df.Err)
	}
	return df, nil
}

// StationCombo joins a start and end station the way the Station Combo
// column does.
func StationCombo(start, end string) string {
	return start + stationSeparator + end
}

// ParseStartTime parses a Start Time cell.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable %s %q", schema.ColStartTime, s)
}
