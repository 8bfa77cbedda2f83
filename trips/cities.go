package trips

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownCity is returned for a city outside the fixed registry.
var ErrUnknownCity = errors.New("unknown city")

// City is one entry of the registry: canonical lower-case name and the
// file holding its trips.
type City struct {
	Name string
	File string
}

// The registry is fixed; configuration may move files, never add cities.
var defaultCities = []City{
	{Name: "chicago", File: "chicago.csv"},
	{Name: "new york city", File: "new_york_city.csv"},
	{Name: "washington", File: "washington.csv"},
}

// Registry resolves canonical city names to dataset paths.
type Registry struct {
	dataDir string
	cities  []City
}

// NewRegistry builds the registry rooted at dataDir. files overrides the
// file of individual cities by canonical name; unknown names are rejected.
func NewRegistry(dataDir string, files map[string]string) (*Registry, error) {
	cities := make([]City, len(defaultCities))
	copy(cities, defaultCities)

	for name, file := range files {
		key := normalize(name)
		idx := indexOfCity(cities, key)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCity, name)
		}
		if file != "" {
			cities[idx].File = file
		}
	}

	return &Registry{dataDir: dataDir, cities: cities}, nil
}

// DefaultRegistry returns the registry with files in the working directory.
func DefaultRegistry() *Registry {
	r, _ := NewRegistry("", nil)
	return r
}

// Names returns the canonical city names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.cities))
	for i, c := range r.cities {
		names[i] = c.Name
	}
	return names
}

// Path returns the dataset path for a canonical city name.
func (r *Registry) Path(city string) (string, error) {
	idx := indexOfCity(r.cities, city)
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	file := r.cities[idx].File
	if r.dataDir == "" || filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(r.dataDir, file), nil
}

func indexOfCity(cities []City, name string) int {
	for i, c := range cities {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// normalize lower-cases and trims user input.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
