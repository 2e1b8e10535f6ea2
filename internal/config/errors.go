package config

import "errors"

// Configuration validation errors returned by Config.Validate and the loaders.
var (
	// ErrInvalidKind is returned when the record kind cannot be scraped.
	ErrInvalidKind = errors.New("unsupported kind: must be creature, trait or ancestry")

	// ErrNoSource is returned when the kind has no page source.
	ErrNoSource = errors.New("no page source configured for kind")

	// ErrInvalidURLTemplate is returned when a page URL lacks exactly one %d.
	ErrInvalidURLTemplate = errors.New("invalid url template: must contain %d exactly once")

	// ErrInvalidMaxID is returned when a kind's maximum id is not positive.
	ErrInvalidMaxID = errors.New("invalid maxId: must be positive")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidRate is returned when the request rate is not positive.
	ErrInvalidRate = errors.New("invalid rate: must be positive")

	// ErrInvalidConcurrency is returned when the fetch concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrNoCacheDir is returned when no cache directory is set.
	ErrNoCacheDir = errors.New("no cache directory configured")

	// ErrNoDBDir is returned when neither a database directory nor an
	// output file is set.
	ErrNoDBDir = errors.New("no database directory configured")
)
