// Package config provides the scraper's configuration: per-kind page
// locations, HTTP client settings, and the cache and database directories.
package config
