// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every setting is optional: without a file the explorer reads the three
// city files from the working directory and pages five rows at a time.
// A .env file and BIKESHARE_* environment variables override the file.
package config
