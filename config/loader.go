package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig  = "BIKESHARE_CONFIG"
	EnvDataDir = "BIKESHARE_DATA_DIR"
	EnvVerbose = "BIKESHARE_VERBOSE"
)

const (
	defaultDataDir  = "."
	defaultPageSize = 5
)

var candidatePaths = []string{"config.yml", "config/config.yml"}

// Default returns the configuration used when no file is found.
func Default() *AppConfig {
	return &AppConfig{DataDir: defaultDataDir, PageSize: defaultPageSize}
}

// Load reads .env, then the configuration file, then environment overrides.
// An explicit path (or BIKESHARE_CONFIG) must exist; otherwise the candidate
// paths are tried and a missing file yields Default().
func Load(path string) (*AppConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		for _, p := range candidatePaths {
			data, err = os.ReadFile(p)
			if err == nil {
				path = p
				break
			}
		}
	}

	cfg := &AppConfig{}
	if path != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		v := validator.New()
		if err := v.Struct(cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
		cfg.Source = path
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}
	return cfg, nil
}

// loadDotEnv loads ./.env when present. Variables already set win.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvVerbose, v, err)
		}
		cfg.Verbose = verbose
	}
	return nil
}
