package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestConfig_MissingFile tests that defaults apply when no config.yml exists
func TestConfig_MissingFile(t *testing.T) {
	origConfig := Config
	origDir, _ := os.Getwd()
	defer func() {
		Config = origConfig
		os.Chdir(origDir)
	}()

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	Config = AppConfig{}

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("Missing config should fall back to defaults: %v", err)
	}
	if len(Config.Data.Cities) != 3 {
		t.Errorf("expected 3 default cities, got %d", len(Config.Data.Cities))
	}
	if Config.Browser.PageSize != 5 {
		t.Errorf("expected default page size 5, got %d", Config.Browser.PageSize)
	}
}

// TestConfig_LoadFromWorkingDir tests that config.yml in the working directory is picked up
func TestConfig_LoadFromWorkingDir(t *testing.T) {
	origConfig := Config
	origDir, _ := os.Getwd()
	defer func() {
		Config = origConfig
		os.Chdir(origDir)
	}()

	tmpDir := t.TempDir()
	content := "data:\n  dir: /srv/bikeshare\nbrowser:\n  pageSize: 10\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("Failed to load config.yml: %v", err)
	}
	if Config.Browser.PageSize != 10 {
		t.Errorf("expected page size 10, got %d", Config.Browser.PageSize)
	}
	if got := Config.CityFiles()["Chicago"]; got != "/srv/bikeshare/chicago.csv" {
		t.Errorf("expected Chicago under data dir, got %s", got)
	}
}

// TestConfig_InvalidYAML tests error handling for invalid YAML
func TestConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("invalid: yaml: content: [[["), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("Loading invalid YAML should return error")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg AppConfig)
	}{
		{
			name: "empty file keeps defaults",
			yaml: "",
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Data.Dir != "." || len(cfg.Data.Cities) != 3 {
					t.Errorf("expected defaults, got %+v", cfg.Data)
				}
				if cfg.Log.Level != "warn" {
					t.Errorf("expected default log level warn, got %q", cfg.Log.Level)
				}
			},
		},
		{
			name: "cities list replaces defaults",
			yaml: "data:\n  cities:\n    - name: Washington\n      file: dc.csv\n",
			check: func(t *testing.T, cfg AppConfig) {
				files := cfg.CityFiles()
				if len(files) != 1 || files["Washington"] != "dc.csv" {
					t.Errorf("expected only Washington -> dc.csv, got %v", files)
				}
			},
		},
		{
			name: "pause",
			yaml: "report:\n  pauseMS: 1500\n",
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Pause() != 1500*time.Millisecond {
					t.Errorf("expected 1.5s pause, got %v", cfg.Pause())
				}
			},
		},
		{
			name: "absolute city file is kept",
			yaml: "data:\n  dir: data\n  cities:\n    - name: Chicago\n      file: /tmp/chi.csv\n",
			check: func(t *testing.T, cfg AppConfig) {
				if got := cfg.CityFiles()["Chicago"]; got != "/tmp/chi.csv" {
					t.Errorf("expected absolute path untouched, got %s", got)
				}
			},
		},
		{name: "unknown city", yaml: "data:\n  cities:\n    - name: Boston\n      file: boston.csv\n", wantErr: true},
		{name: "duplicate city", yaml: "data:\n  cities:\n    - {name: Chicago, file: a.csv}\n    - {name: Chicago, file: b.csv}\n", wantErr: true},
		{name: "missing file name", yaml: "data:\n  cities:\n    - name: Chicago\n", wantErr: true},
		{name: "no cities", yaml: "data:\n  cities: []\n", wantErr: true},
		{name: "zero page size", yaml: "browser:\n  pageSize: 0\n", wantErr: true},
		{name: "negative pause", yaml: "report:\n  pauseMS: -1\n", wantErr: true},
		{name: "bad log level", yaml: "log:\n  level: verbose\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
