package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override the directories.
const (
	EnvDBDir    = "SCRAPER_DB_DIR"
	EnvCacheDir = "SCRAPER_CACHE_DIR"
)

// LoadEnv reads a .env file into the process environment. Variables already
// set are kept. A missing file is not an error.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ApplyEnv overrides the directories from the environment.
func (c *Config) ApplyEnv() {
	if dir := os.Getenv(EnvDBDir); dir != "" {
		c.DBDir = dir
	}
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		c.CacheDir = dir
	}
}
