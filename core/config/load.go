package config

import (
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := os.ReadFile(filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WriteDefault writes the default configuration into the directory and
// returns the path of the written file.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, ConfigurationName)
	if err := os.WriteFile(path, defaultConfigData, 0644); err != nil {
		return "", err
	}
	return path, nil
}
