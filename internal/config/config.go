package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/menta2k/document-recognizer/internal/utils"
	"github.com/menta2k/document-recognizer/pkg/imagery"
	"github.com/menta2k/document-recognizer/pkg/recognizer"
	"github.com/menta2k/document-recognizer/pkg/recognizers"
)

// Config holds the application configuration
type Config struct {
	Collection  CollectionConfig          `json:"collection" yaml:"collection"`
	Output      OutputConfig              `json:"output" yaml:"output"`
	Recognizers map[string]map[string]any `json:"recognizers,omitempty" yaml:"recognizers,omitempty"`
}

// CollectionConfig holds the scan-wide settings passed to the engine
type CollectionConfig struct {
	AllowMultipleResults      bool `json:"allow_multiple_results" yaml:"allow_multiple_results"`
	MillisecondsBeforeTimeout int  `json:"milliseconds_before_timeout" yaml:"milliseconds_before_timeout"`
}

// OutputConfig holds configuration for result and image output
type OutputConfig struct {
	Dir          string `json:"dir" yaml:"dir"`
	Format       string `json:"format" yaml:"format"`
	Quality      int    `json:"quality" yaml:"quality"`
	Lossless     bool   `json:"lossless" yaml:"lossless"`
	MaxDimension int    `json:"max_dimension" yaml:"max_dimension"`
	Prefix       string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

var supportedFormats = []string{"jpg", "jpeg", "png", "webp"}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Collection: CollectionConfig{
			AllowMultipleResults:      false,
			MillisecondsBeforeTimeout: recognizer.DefaultMillisecondsBeforeTimeout,
		},
		Output: OutputConfig{
			Dir:          "./output",
			Format:       "jpg",
			Quality:      90,
			Lossless:     false,
			MaxDimension: 0,
		},
	}
}

// LoadFromFile loads configuration from a JSON or YAML file. Values missing
// from the file keep their defaults. Environment variables are expanded in
// YAML files.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()

	switch utils.GetFileExtension(filename) {
	case "yaml", "yml":
		data = []byte(os.ExpandEnv(string(data)))

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)

		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. Recognizer options are not
// checked against each other; the engine owns that.
func (c *Config) Validate() error {
	if c.Collection.MillisecondsBeforeTimeout < 0 {
		return fmt.Errorf("collection.milliseconds_before_timeout must not be negative")
	}

	if !isSupportedFormat(c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s", strings.Join(supportedFormats, ", "))
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	if c.Output.MaxDimension < 0 {
		return fmt.Errorf("output.max_dimension must not be negative")
	}

	for name, overrides := range c.Recognizers {
		r, err := recognizers.New(name)
		if err != nil {
			return fmt.Errorf("recognizers.%s: %w", name, err)
		}
		if err := recognizer.Configure(r, overrides); err != nil {
			return fmt.Errorf("recognizers.%s: %w", name, err)
		}
	}

	return nil
}

// BuildCollection creates the named recognizers with their configured
// overrides. All registered recognizers are used when names is empty.
func (c *Config) BuildCollection(names []string) (*recognizer.Collection, error) {
	if len(names) == 0 {
		names = recognizers.Names()
	}

	list := make([]recognizer.Recognizer, 0, len(names))

	for _, name := range names {
		r, err := recognizers.New(name)
		if err != nil {
			return nil, err
		}

		if err := recognizer.Configure(r, c.Recognizers[name]); err != nil {
			return nil, err
		}

		list = append(list, r)
	}

	collection, err := recognizer.NewCollection(list...)
	if err != nil {
		return nil, err
	}

	collection.AllowMultipleResults = c.Collection.AllowMultipleResults
	collection.MillisecondsBeforeTimeout = c.Collection.MillisecondsBeforeTimeout

	return collection, nil
}

// ExportConfig returns the image export settings
func (c *Config) ExportConfig() imagery.ExportConfig {
	return imagery.ExportConfig{
		Format:       c.Output.Format,
		Quality:      c.Output.Quality,
		Lossless:     c.Output.Lossless,
		MaxDimension: c.Output.MaxDimension,
		Prefix:       c.Output.Prefix,
	}
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "document-recognizer", "config.json")
}

func isSupportedFormat(format string) bool {
	for _, supported := range supportedFormats {
		if strings.EqualFold(format, supported) {
			return true
		}
	}
	return false
}
