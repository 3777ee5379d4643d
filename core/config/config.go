package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name the shell looks for in its config
// directory.
const ConfigurationName = "config.yaml"

type Configuration struct {
	// Banner is printed once when an interactive session starts.
	Banner string `json:"banner"`

	// Prompt is the prompt template. \u, \h and \w expand to the user,
	// host and working directory.
	Prompt string `json:"prompt" validate:"required"`

	// HistoryFile is where command history is persisted between sessions.
	// A leading ~ expands to the user's home directory. Empty disables
	// persistence.
	HistoryFile string `json:"history_file"`

	// HistorySize caps the number of retained history entries.
	HistorySize int `json:"history_size" validate:"gt=0"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// HistoryPath resolves the configured history file, expanding a leading ~.
func (c *Configuration) HistoryPath() (string, error) {
	path := c.HistoryFile
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return path, nil
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
