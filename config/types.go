package config

// CityConfig maps a supported city to its trip CSV file
type CityConfig struct {
	Name string `yaml:"name" validate:"required,city"`
	File string `yaml:"file" validate:"required"`
}

// DataConfig locates the trip data files
type DataConfig struct {
	Dir    string       `yaml:"dir"`
	Cities []CityConfig `yaml:"cities" validate:"min=1,unique=Name,dive"`
}

// BrowserConfig contains raw data browser configuration
type BrowserConfig struct {
	PageSize int `yaml:"pageSize" validate:"gt=0"`
}

// ReportConfig contains report configuration
type ReportConfig struct {
	PauseMS int `yaml:"pauseMS" validate:"gte=0"` // delay before each calculation block
}

// LogConfig contains diagnostic logging configuration
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Browser BrowserConfig `yaml:"browser"`
	Report  ReportConfig  `yaml:"report"`
	Log     LogConfig     `yaml:"log"`
}
