package config

// CityConfig relocates one city's trip file
type CityConfig struct {
	Name string `yaml:"name" validate:"required"`
	File string `yaml:"file" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	DataDir  string       `yaml:"data_dir"`
	PageSize int          `yaml:"page_size" validate:"gte=0,lte=100"`
	Verbose  bool         `yaml:"verbose"`
	Cities   []CityConfig `yaml:"cities" validate:"dive"`

	// Source is the file the configuration was read from, "" for defaults.
	Source string `yaml:"-"`
}

// CityFiles returns the per-city file overrides keyed by city name.
func (c *AppConfig) CityFiles() map[string]string {
	if len(c.Cities) == 0 {
		return nil
	}
	files := make(map[string]string, len(c.Cities))
	for _, city := range c.Cities {
		files[city.Name] = city.File
	}
	return files
}
