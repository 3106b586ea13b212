package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type AppSettings struct {
	// InputDir holds the zip archives to import.
	InputDir string `yaml:"inputDir"`

	// DatabasePath is deleted and recreated on every run.
	DatabasePath string `yaml:"databasePath"`

	BatchSize int  `yaml:"batchSize"`
	Debug     bool `yaml:"debug"`
}

const DefaultBatchSize = 10000

func Default() AppSettings {
	return AppSettings{
		InputDir:     "data_zip",
		DatabasePath: "forex_data.db",
		BatchSize:    DefaultBatchSize,
	}
}

// LoadConfig reads settings from a YAML file. A missing file is not an
// error: the built-in defaults are returned instead.
func LoadConfig(path string) (*AppSettings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if settings.BatchSize <= 0 {
		settings.BatchSize = DefaultBatchSize
	}

	return &settings, nil
}
