package records

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds the values written for fields missing from a create request
type Defaults struct {
	Company     string `yaml:"company"`
	Campaign    string `yaml:"campaign"`
	Description string `yaml:"description"`
	Where       string `yaml:"where"`
	Language    string `yaml:"language"`
	Content     string `yaml:"content"`
	ImageName   string `yaml:"image-name"`
	ImageURL    string `yaml:"image-url"`
}

// DefaultValues returns the built-in create defaults
func DefaultValues() Defaults {
	return Defaults{
		Where:     DEFAULT_WHERE,
		Language:  DEFAULT_LANGUAGE,
		ImageName: DEFAULT_IMAGE_NAME,
		ImageURL:  DEFAULT_IMAGE_URL,
	}
}

// LoadDefaults reads a YAML defaults file on top of the built-in values.
// An empty path returns the built-in values. Keys missing from the file keep
// their built-in value
func LoadDefaults(path string) (Defaults, error) {
	defaults := DefaultValues()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("failed to read record defaults file: %w", err)
	}

	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return DefaultValues(), fmt.Errorf("failed to parse record defaults file: %w", err)
	}

	// The select column rejects an empty option name
	if defaults.Language == "" {
		defaults.Language = DEFAULT_LANGUAGE
	}
	if defaults.ImageURL == "" {
		defaults.ImageURL = DEFAULT_IMAGE_URL
	}

	return defaults, nil
}
