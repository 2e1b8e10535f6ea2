package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/leolwelter/2eTools-scraper/internal/database"
	"github.com/leolwelter/2eTools-scraper/internal/model"
	"github.com/leolwelter/2eTools-scraper/internal/pipeline"
)

// Summary describes one scrape run.
type Summary struct {
	// RunID identifies the run. The database sink stores it alongside
	// every collection it writes.
	RunID string
	// Kind is the record kind that was scraped.
	Kind model.Kind
	// Collection is the collection the records were written to.
	Collection string
	// Destination describes where the records went (a file or database path).
	Destination string
	// CacheOnly reports whether the network was skipped.
	CacheOnly bool

	// Pages is the number of detail pages in the run.
	Pages int
	// Records is the number of records written.
	Records int
	// Placeholders counts pages that could not be fetched.
	Placeholders int
	// Failures lists pages that were fetched but failed to assemble.
	Failures []pipeline.Failure
	// Warnings lists non-fatal problems, such as a failed enrichment.
	Warnings []string
	// Changes compares the written collection with the previous one. It is
	// nil when the records went to a file.
	Changes *database.Changes

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSummary starts a summary for kind with a fresh run id.
func NewSummary(kind model.Kind) *Summary {
	return &Summary{
		RunID:     uuid.NewString(),
		Kind:      kind,
		StartedAt: time.Now(),
	}
}

// Record copies the counts and failures of a batch into s.
func Record[R model.Record](s *Summary, pages int, result *pipeline.BatchResult[R]) {
	s.Pages = pages
	if result == nil {
		return
	}
	s.Records = len(result.Records)
	s.Placeholders = result.Placeholders
	s.Failures = append(s.Failures[:0], result.Failures...)
}

// Warn appends a non-fatal problem to the summary.
func (s *Summary) Warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}

// Finish stamps the end time of the run.
func (s *Summary) Finish() {
	s.FinishedAt = time.Now()
}

// Duration returns how long the run took, or zero when it has not finished.
func (s *Summary) Duration() time.Duration {
	if s.FinishedAt.IsZero() || s.StartedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// HasFailures reports whether any page failed to assemble.
func (s *Summary) HasFailures() bool {
	return len(s.Failures) > 0
}

// Status returns a one-word outcome for the run.
func (s *Summary) Status() string {
	switch {
	case s.Records == 0 && s.Pages > 0:
		return "empty"
	case s.HasFailures() || s.Placeholders > 0:
		return "partial"
	default:
		return "complete"
	}
}
