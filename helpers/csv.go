package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ============================================================================
// CSV HELPER — Reads a trip file into a DataFrame
// ============================================================================
// Every column is read as text. Type detection on bikeshare exports is
// unreliable (blank birth years, float durations in one city, ints in
// another), so numeric parsing happens later, per column, where the schema
// asks for it. Blank cells become NA.
//
// A blank header name becomes "Unnamed: <position>", the label the trip
// exports' leading index column carries elsewhere. A header with no rows
// is a valid, empty table.
// ============================================================================

var missingValues = []string{"", "NA", "NaN", "nan", "<nil>"}

// ReadCSV parses CSV data with a header row into a DataFrame.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse CSV: no header row")
	}
	records[0] = nameUnnamed(records[0])

	if len(records) == 1 {
		return emptyFrame(records[0])
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		return df, fmt.Errorf("failed to parse CSV: %w", df.Err)
	}
	return df, nil
}

// ReadCSVFile opens path and parses it with ReadCSV.
func ReadCSVFile(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	df, err := ReadCSV(f)
	if err != nil {
		return df, fmt.Errorf("%s: %w", path, err)
	}
	return df, nil
}

// emptyFrame builds a zero-row DataFrame with one text column per header.
func emptyFrame(header []string) (dataframe.DataFrame, error) {
	columns := make([]series.Series, len(header))
	for i, name := range header {
		columns[i] = series.New([]string{}, series.String, name)
	}
	df := dataframe.New(columns...)
	if df.Err != nil {
		return df, fmt.Errorf("failed to parse CSV: %w", df.Err)
	}
	return df, nil
}

func nameUnnamed(header []string) []string {
	named := make([]string, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		named[i] = name
	}
	return named
}
