package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate runs the test in an empty directory with the BIKESHARE_*
// variables unset.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{EnvConfig, EnvDataDir, EnvVerbose} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// TestConfig_MissingFileUsesDefaults tests that no config file is not an error
func TestConfig_MissingFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "." || cfg.PageSize != 5 || cfg.Verbose || cfg.Source != "" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.CityFiles() != nil {
		t.Errorf("CityFiles = %v, want nil", cfg.CityFiles())
	}
}

// TestConfig_LoadFromCandidatePath tests discovery of config/config.yml
func TestConfig_LoadFromCandidatePath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config", "config.yml"), `
data_dir: /srv/bikeshare
page_size: 10
cities:
  - name: chicago
    file: chicago-2017.csv
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != "config/config.yml" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.DataDir != "/srv/bikeshare" || cfg.PageSize != 10 {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.CityFiles()["chicago"]; got != "chicago-2017.csv" {
		t.Errorf("chicago file = %q", got)
	}
}

// TestConfig_ExplicitPathMustExist tests that a named file is required
func TestConfig_ExplicitPathMustExist(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("Loading a missing explicit config should return error")
	}

	t.Setenv(EnvConfig, filepath.Join(dir, "also-missing.yml"))
	if _, err := Load(""); err == nil {
		t.Errorf("%s pointing at a missing file should return error", EnvConfig)
	}
}

// TestConfig_InvalidYAML tests error handling for invalid YAML
func TestConfig_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yml"), "invalid: yaml: content: [[[")

	if _, err := Load(""); err == nil {
		t.Error("Loading invalid YAML should return error")
	}
}

// TestConfig_Validation tests struct tag validation
func TestConfig_Validation(t *testing.T) {
	tests := map[string]string{
		"page size too large": "page_size: 1000\n",
		"negative page size":  "page_size: -1\n",
		"city without file":   "cities:\n  - name: chicago\n",
		"city without name":   "cities:\n  - file: x.csv\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.yml")
			writeFile(t, path, data)
			if _, err := Load(path); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

// TestConfig_EnvOverrides tests BIKESHARE_* overrides and .env loading
func TestConfig_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yml"), "data_dir: from-file\n")
	writeFile(t, filepath.Join(dir, ".env"), "BIKESHARE_VERBOSE=true\n")
	t.Setenv(EnvDataDir, "from-env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "from-env" {
		t.Errorf("DataDir = %q, want from-env", cfg.DataDir)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be set from .env")
	}
}

// TestConfig_InvalidVerbose tests a malformed boolean override
func TestConfig_InvalidVerbose(t *testing.T) {
	isolate(t)
	t.Setenv(EnvVerbose, "loud")
	if _, err := Load(""); err == nil {
		t.Errorf("invalid %s should return error", EnvVerbose)
	}
}
