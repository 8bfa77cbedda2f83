package schema

import (
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA — Describes the shape of one city's trip file
// ============================================================================
// Discovered from the CSV header at load time. Which optional columns
// exist (Gender, Birth Year) differs per city, so reporters ask the schema
// instead of assuming.
// ============================================================================

// Canonical source columns of a trip file.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColTripDuration = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// Columns derived from Start Time and the station pair.
const (
	ColMonth        = "month"
	ColDayOfWeek    = "day_of_week"
	ColHour         = "hour"
	ColStationCombo = "Station Combo"
)

// Config describes the complete shape of a trip file.
type Config struct {
	Name string `json:"name"`

	Dimensions []DimensionMeta `json:"dimensions"`
	Measures   []MeasureMeta   `json:"measures"`

	// Header names as they appear in the file, keyed by canonical name.
	// Only set where the file spelling differs from the canonical one.
	Renamed map[string]string `json:"renamed,omitempty"`
}

// DimensionMeta describes a string column.
type DimensionMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	IsTemporal  bool   `json:"isTemporal,omitempty"`
	Optional    bool   `json:"optional,omitempty"`
	DerivedFrom string `json:"derivedFrom,omitempty"`
}

// MeasureMeta describes a numeric column.
type MeasureMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Unit        string `json:"unit,omitempty"` // "minutes", "year"
	Optional    bool   `json:"optional,omitempty"`
	DerivedFrom string `json:"derivedFrom,omitempty"`
}

// Has reports whether the file carries a column (canonical name).
func (c *Config) Has(key string) bool {
	if c == nil {
		return false
	}
	for _, d := range c.Dimensions {
		if d.Key == key {
			return true
		}
	}
	for _, m := range c.Measures {
		if m.Key == key {
			return true
		}
	}
	return false
}

// DimensionKeys returns all dimension keys.
func (c *Config) DimensionKeys() []string {
	keys := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// MeasureKeys returns all measure keys.
func (c *Config) MeasureKeys() []string {
	keys := make([]string, len(c.Measures))
	for i, m := range c.Measures {
		keys[i] = m.Key
	}
	return keys
}

// AddDerived registers the columns the loader computes from Start Time
// and the station pair.
func (c *Config) AddDerived() {
	c.Measures = append(c.Measures,
		MeasureMeta{Key: ColMonth, DisplayName: "Month", DerivedFrom: ColStartTime},
		MeasureMeta{Key: ColHour, DisplayName: "Hour", DerivedFrom: ColStartTime},
	)
	c.Dimensions = append(c.Dimensions,
		DimensionMeta{Key: ColDayOfWeek, DisplayName: "Day of Week", IsTemporal: true, DerivedFrom: ColStartTime},
		DimensionMeta{Key: ColStationCombo, DisplayName: "Station Combo", DerivedFrom: ColStartStation},
	)
}

// Describe summarises the columns for diagnostics, one entry per column:
// "Birth Year [year, optional]", "Month [from Start Time]".
func (c *Config) Describe() string {
	parts := make([]string, 0, len(c.Dimensions)+len(c.Measures))
	for _, d := range c.Dimensions {
		var tags []string
		if d.IsTemporal {
			tags = append(tags, "time")
		}
		parts = append(parts, describeColumn(d.DisplayName, d.Optional, d.DerivedFrom, tags))
	}
	for _, m := range c.Measures {
		var tags []string
		if m.Unit != "" {
			tags = append(tags, m.Unit)
		}
		parts = append(parts, describeColumn(m.DisplayName, m.Optional, m.DerivedFrom, tags))
	}
	return strings.Join(parts, ", ")
}

func describeColumn(name string, optional bool, derivedFrom string, tags []string) string {
	if optional {
		tags = append(tags, "optional")
	}
	if derivedFrom != "" {
		tags = append(tags, "from "+derivedFrom)
	}
	if len(tags) == 0 {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, strings.Join(tags, ", "))
}
