package schema

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// DISCOVERY TESTS
// ============================================================================

// Header of the Chicago / New York City exports (leading unnamed index column).
var chicagoHeader = []string{"Unnamed: 0", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type", "Gender", "Birth Year"}

// Washington publishes no demographic columns.
var washingtonHeader = []string{"Unnamed: 0", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}

func TestDiscoverChicagoHeader(t *testing.T) {
	config, err := DiscoverFromHeader("chicago", chicagoHeader)
	if err != nil {
		t.Fatalf("DiscoverFromHeader failed: %v", err)
	}

	dimKeys := config.DimensionKeys()
	assertContains(t, dimKeys, ColStartTime, "Start Time should be a dimension")
	assertContains(t, dimKeys, ColStartStation, "Start Station should be a dimension")
	assertContains(t, dimKeys, ColGender, "Gender should be a dimension")
	assertContains(t, dimKeys, "Unnamed: 0", "unnamed index column should be kept")

	measKeys := config.MeasureKeys()
	assertContains(t, measKeys, ColTripDuration, "Trip Duration should be a measure")
	assertContains(t, measKeys, ColBirthYear, "Birth Year should be a measure")

	if !config.Has(ColGender) || !config.Has(ColBirthYear) {
		t.Error("chicago should report Gender and Birth Year")
	}

	for _, m := range config.Measures {
		if m.Key == ColTripDuration && m.Unit != "minutes" {
			t.Errorf("Trip Duration unit = %q, want minutes", m.Unit)
		}
		if m.Key == ColBirthYear && !m.Optional {
			t.Error("Birth Year should be optional")
		}
	}
	for _, d := range config.Dimensions {
		if d.Key == ColStartTime && !d.IsTemporal {
			t.Error("Start Time should be temporal")
		}
	}
}

func TestDiscoverWashingtonHeader(t *testing.T) {
	config, err := DiscoverFromHeader("washington", washingtonHeader)
	if err != nil {
		t.Fatalf("DiscoverFromHeader failed: %v", err)
	}
	if config.Has(ColGender) {
		t.Error("washington should not report Gender")
	}
	if config.Has(ColBirthYear) {
		t.Error("washington should not report Birth Year")
	}
	if !config.Has(ColUserType) {
		t.Error("washington should report User Type")
	}
}

func TestDiscoverMatchesHeaderSpelling(t *testing.T) {
	header := []string{"start_time", "TripDuration", "Start Station", "end-station", "User Type"}
	config, err := DiscoverFromHeader("custom", header)
	if err != nil {
		t.Fatalf("DiscoverFromHeader failed: %v", err)
	}

	tests := []struct {
		canonical string
		inFile    string
	}{
		{ColStartTime, "start_time"},
		{ColTripDuration, "TripDuration"},
		{ColEndStation, "end-station"},
	}
	for _, tt := range tests {
		t.Run(tt.canonical, func(t *testing.T) {
			if !config.Has(tt.canonical) {
				t.Fatalf("%q not discovered", tt.canonical)
			}
			if got := config.Renamed[tt.canonical]; got != tt.inFile {
				t.Errorf("Renamed[%q] = %q, want %q", tt.canonical, got, tt.inFile)
			}
		})
	}
	if _, ok := config.Renamed[ColStartStation]; ok {
		t.Error("Start Station is already canonical and should not be renamed")
	}
}

func TestDiscoverMissingRequiredColumn(t *testing.T) {
	header := []string{"Start Time", "Start Station", "End Station", "User Type"}
	_, err := DiscoverFromHeader("broken", header)
	if err == nil {
		t.Fatal("expected an error for a file without Trip Duration")
	}
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("error %v should wrap ErrMissingColumn", err)
	}
}

func TestDiscoverEmptyHeader(t *testing.T) {
	if _, err := DiscoverFromHeader("empty", nil); err == nil {
		t.Fatal("expected an error for an empty header")
	}
}

func TestAddDerived(t *testing.T) {
	config, err := DiscoverFromHeader("washington", washingtonHeader)
	if err != nil {
		t.Fatalf("DiscoverFromHeader failed: %v", err)
	}
	config.AddDerived()

	for _, key := range []string{ColMonth, ColHour, ColDayOfWeek, ColStationCombo} {
		if !config.Has(key) {
			t.Errorf("derived column %q missing", key)
		}
	}
	assertContains(t, config.MeasureKeys(), ColMonth, "month is numeric")
}

func TestDescribe(t *testing.T) {
	config, err := DiscoverFromHeader("chicago", chicagoHeader)
	if err != nil {
		t.Fatalf("DiscoverFromHeader failed: %v", err)
	}
	config.AddDerived()

	parts := strings.Split(config.Describe(), ", ")
	for _, want := range []string{
		"Unnamed: 0 [optional]",
		"Start Time [time]",
		"Start Station",
		"Gender [optional]",
		"Trip Duration [minutes]",
		"Birth Year [year",
		"Month [from Start Time]",
		"Day of Week [time",
	} {
		found := false
		for _, p := range parts {
			if strings.HasPrefix(p, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Describe() missing %q: %v", want, parts)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Start Time":   "start_time",
		"StartTime":    "start_time",
		"start-time":   "start_time",
		" Birth Year ": "birth_year",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func assertContains(t *testing.T, slice []string, item string, msg string) {
	t.Helper()
	for _, s := range slice {
		if s == item {
			return
		}
	}
	t.Errorf("%s: %q not found in %v", msg, item, slice)
}
