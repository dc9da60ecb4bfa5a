package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/bikeshare-stats/filters"
)

// Config is the global application configuration
var Config = Default()

// Default returns the built-in configuration: the three city files in the
// working directory and five-row raw data pages.
func Default() AppConfig {
	return AppConfig{
		Data: DataConfig{
			Dir: ".",
			Cities: []CityConfig{
				{Name: "Chicago", File: "chicago.csv"},
				{Name: "New York City", File: "new_york_city.csv"},
				{Name: "Washington", File: "washington.csv"},
			},
		},
		Browser: BrowserConfig{PageSize: 5},
		Log:     LogConfig{Level: "warn"},
	}
}

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file leaves the defaults in place.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	for _, p := range paths {
		cfg, err := LoadFromFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		Config = cfg
		return nil
	}
	Config = Default()
	return nil
}

// LoadFromFile reads the YAML file at path over the defaults and validates
// the result.
func LoadFromFile(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return AppConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Keys that
// are absent keep their default value; a cities list replaces the default one.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := filters.RegisterValidations(v); err != nil {
		return err
	}
	return v.Struct(cfg)
}

// CityFiles maps each configured city to the path of its CSV file. Relative
// file names are resolved against Data.Dir.
func (c AppConfig) CityFiles() map[string]string {
	files := make(map[string]string, len(c.Data.Cities))
	for _, city := range c.Data.Cities {
		path := city.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.Data.Dir, path)
		}
		files[city.Name] = path
	}
	return files
}

// Pause returns the configured delay before each calculation block.
func (c AppConfig) Pause() time.Duration {
	return time.Duration(c.Report.PauseMS) * time.Millisecond
}
