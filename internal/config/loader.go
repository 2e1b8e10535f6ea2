package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".2etools"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Defaults holds the client settings of the configuration file. Zero values
// keep the built-in defaults.
type Defaults struct {
	UserAgent   string        `yaml:"userAgent,omitempty"`
	Rate        float64       `yaml:"rate,omitempty"`
	Concurrency int           `yaml:"concurrency,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`

	// CloudflareBypass routes requests through a transport that mimics a
	// browser TLS handshake. Setting it to false in the file has no effect.
	CloudflareBypass bool `yaml:"cloudflareBypass,omitempty"`
}

// File represents the structure of the .2etools configuration file.
type File struct {
	// Kinds overrides the page source per kind name.
	Kinds map[string]Source `yaml:"kinds,omitempty"`

	// Defaults overrides the HTTP client settings.
	Defaults Defaults `yaml:"defaults,omitempty"`

	// TraitIndex overrides the trait index URL.
	TraitIndex string `yaml:"traitIndex,omitempty"`

	// FamilyRoster overrides the monster family roster URL.
	FamilyRoster string `yaml:"familyRoster,omitempty"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cf.Kinds == nil {
		cf.Kinds = make(map[string]Source)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .2etools in the current directory
// 3. Look for .2etools in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply merges a configuration file into c. Kind names are matched the way
// the command line matches them; an unknown name is an error.
func (c *Config) Apply(cf *File) error {
	sources := cloneSources(c.Sources)
	for name, override := range cf.Kinds {
		kind, err := model.ParseKind(name)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidKind, name)
		}
		merged, err := sources[kind].merge(override)
		if err != nil {
			return fmt.Errorf("kind %s: %w", kind, err)
		}
		sources[kind] = merged
	}
	c.Sources = sources

	d := cf.Defaults
	overlay := Config{
		UserAgent:        d.UserAgent,
		Rate:             d.Rate,
		Concurrency:      d.Concurrency,
		Timeout:          d.Timeout,
		CloudflareBypass: d.CloudflareBypass,
		TraitIndexURL:    cf.TraitIndex,
		FamilyRosterURL:  cf.FamilyRoster,
	}
	if err := mergo.Merge(c, overlay, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge configuration file: %w", err)
	}
	return nil
}
