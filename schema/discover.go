package schema

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ============================================================================
// DISCOVERY — Classify a trip file's header
// ============================================================================
// Header names are matched to the canonical trip columns by snake_case key,
// so "start_time", "Start Time" and "StartTime" are the same column.
// Required columns must be present; Gender and Birth Year are optional and
// simply absent from the Config when a city does not publish them. Unknown
// columns are kept as plain dimensions so raw display still shows them.
// ============================================================================

// ErrMissingColumn is returned when a required trip column is absent.
var ErrMissingColumn = errors.New("missing required column")

type columnRole int

const (
	roleDimension columnRole = iota
	roleMeasure
)

type knownColumn struct {
	name     string
	role     columnRole
	unit     string
	required bool
	temporal bool
}

var knownColumns = []knownColumn{
	{name: ColStartTime, role: roleDimension, required: true, temporal: true},
	{name: ColEndTime, role: roleDimension, temporal: true},
	{name: ColTripDuration, role: roleMeasure, unit: "minutes", required: true},
	{name: ColStartStation, role: roleDimension, required: true},
	{name: ColEndStation, role: roleDimension, required: true},
	{name: ColUserType, role: roleDimension, required: true},
	{name: ColGender, role: roleDimension},
	{name: ColBirthYear, role: roleMeasure, unit: "year"},
}

// DiscoverFromHeader builds a Config from a trip file's header row.
// name labels the dataset (usually the city).
func DiscoverFromHeader(name string, headers []string) (*Config, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("%s: CSV has no columns", name)
	}

	byKey := make(map[string]knownColumn, len(knownColumns))
	for _, k := range knownColumns {
		byKey[toSnakeCase(k.name)] = k
	}

	config := &Config{Name: name}

	found := make(map[string]bool)
	for _, header := range headers {
		known, ok := byKey[toSnakeCase(header)]
		if !ok || found[known.name] {
			config.Dimensions = append(config.Dimensions, DimensionMeta{
				Key:         header,
				DisplayName: toDisplayName(header),
				Optional:    true,
			})
			continue
		}
		found[known.name] = true
		if header != known.name {
			if config.Renamed == nil {
				config.Renamed = make(map[string]string)
			}
			config.Renamed[known.name] = header
		}

		switch known.role {
		case roleMeasure:
			config.Measures = append(config.Measures, MeasureMeta{
				Key:         known.name,
				DisplayName: known.name,
				Unit:        known.unit,
				Optional:    !known.required,
			})
		default:
			config.Dimensions = append(config.Dimensions, DimensionMeta{
				Key:         known.name,
				DisplayName: known.name,
				IsTemporal:  known.temporal,
				Optional:    !known.required,
			})
		}
	}

	var missing []string
	for _, k := range knownColumns {
		if k.required && !found[k.name] {
			missing = append(missing, fmt.Sprintf("%q", k.name))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w %s", name, ErrMissingColumn, strings.Join(missing, ", "))
	}

	return config, nil
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// toSnakeCase converts "Column Name" or "columnName" → "column_name".
func toSnakeCase(s string) string {
	s = strings.TrimSpace(s)
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}

	s = result.String()
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "__", "_")
	s = strings.Trim(s, "_")
	return s
}

// toDisplayName cleans a header for human display.
// "trip_id" → "Trip Id", "" → "(unnamed)"
func toDisplayName(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(unnamed)"
	}
	if strings.Contains(s, " ") {
		return strings.TrimSpace(s)
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
	}
	return strings.Join(words, " ")
}
