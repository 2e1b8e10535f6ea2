package config

import (
	"maps"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "2etools"

	// DefaultTimeout bounds a single page request.
	DefaultTimeout = 30 * time.Second

	// DefaultRate is the number of requests per second sent to the site.
	DefaultRate = 2.0

	// DefaultConcurrency is the number of pages fetched at once. One keeps
	// the request order equal to the id order.
	DefaultConcurrency = 1

	// DefaultUserAgent identifies the scraper in HTTP requests.
	DefaultUserAgent = "2eTools-scraper/1.0 (+https://github.com/leolwelter/2eTools-scraper)"

	// DefaultTraitIndexURL lists every trait under its group heading.
	DefaultTraitIndexURL = "https://2e.aonprd.com/Traits.aspx"

	// DefaultFamilyRosterURL lists every creature under its family heading.
	DefaultFamilyRosterURL = "https://2e.aonprd.com/MonsterFamilies.aspx"
)

// Config holds all configuration options for a scraper run.
type Config struct {
	// Kind is the record kind to scrape.
	Kind model.Kind

	// CacheOnly disables network access; missing pages become placeholders.
	CacheOnly bool

	// OutputFile, when set, sends documents to a JSON lines file instead of
	// the database.
	OutputFile string

	// ReportFile, when set, receives a Markdown run report.
	ReportFile string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path. If empty,
	// .2etools is searched in the current and the home directory.
	ConfigFilePath string

	// DBDir is the directory holding the SQLite database.
	// Defaults to the XDG data directory (~/.local/share/2etools on Linux).
	DBDir string

	// CacheDir is the directory holding fetched pages, one subdirectory per
	// kind. Defaults to the XDG cache directory (~/.cache/2etools on Linux).
	CacheDir string

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// Rate is the request rate limit in requests per second.
	Rate float64

	// Concurrency is the number of pages fetched at once.
	Concurrency int

	// Timeout bounds a single page request.
	Timeout time.Duration

	// CloudflareBypass wraps the HTTP transport so requests pass the site's
	// bot check.
	CloudflareBypass bool

	// Sources maps each kind to its page URL template and id range.
	Sources map[model.Kind]Source

	// TraitIndexURL is the trait index used to fill trait groups.
	TraitIndexURL string

	// FamilyRosterURL is the roster used to fill creature families.
	FamilyRosterURL string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		DBDir:           XDGDataDir(),
		CacheDir:        XDGCacheDir(),
		UserAgent:       DefaultUserAgent,
		Rate:            DefaultRate,
		Concurrency:     DefaultConcurrency,
		Timeout:         DefaultTimeout,
		Sources:         DefaultSources(),
		TraitIndexURL:   DefaultTraitIndexURL,
		FamilyRosterURL: DefaultFamilyRosterURL,
	}
}

// XDGDataDir returns the XDG data directory for the scraper.
// On Linux: ~/.local/share/2etools
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for the scraper.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for the scraper.
// On Linux: ~/.cache/2etools
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// DBPath returns the database file path inside DBDir.
func (c *Config) DBPath() string {
	return filepath.Join(c.DBDir, AppName+".db")
}

// Source returns the page source of the configured kind.
func (c *Config) Source() (Source, bool) {
	s, ok := c.Sources[c.Kind]
	return s, ok
}

// Validate checks that the configuration can drive a run. It returns the
// first problem found.
func (c *Config) Validate() error {
	if !c.Kind.Supported() {
		return ErrInvalidKind
	}
	src, ok := c.Source()
	if !ok {
		return ErrNoSource
	}
	if err := src.Validate(); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Rate <= 0 {
		return ErrInvalidRate
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.CacheDir == "" {
		return ErrNoCacheDir
	}
	if c.OutputFile == "" && c.DBDir == "" {
		return ErrNoDBDir
	}
	return nil
}

// cloneSources copies a sources map so defaults are never shared.
func cloneSources(src map[model.Kind]Source) map[model.Kind]Source {
	if src == nil {
		return make(map[model.Kind]Source)
	}
	return maps.Clone(src)
}
