// Package bikeshare is an interactive explorer for US bike share trips.
// Pick a city, a month and a day of week; get the popular travel times,
// stations, trip durations and user demographics, then page through the
// raw rows.
//
// Usage:
//
//	go run ./cmd/bikeshare -data ./data
//
// The pieces can also be driven directly:
//
//	reg := trips.DefaultRegistry()
//	table, err := trips.Load(reg, trips.Selection{City: "chicago", Month: "may", Day: trips.All})
//	report.New(os.Stdout).All(table)
//
// All computation is local; the only inputs are one CSV file per city and
// the answers typed at the prompt.
package bikeshare
