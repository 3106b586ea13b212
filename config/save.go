// config/save.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

func SaveConfig(settings *AppSettings, filename string) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
