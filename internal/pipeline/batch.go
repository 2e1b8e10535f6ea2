package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/leolwelter/2eTools-scraper/internal/extract"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// Failure describes one page that produced no record.
type Failure struct {
	// ID is the id the record would have had.
	ID int
	// Step is the pipeline step that failed, empty when unknown.
	Step string
	// Field is the extracted field that failed, empty when unknown.
	Field string
	// Err is the underlying error.
	Err error
}

func newFailure(id int, err error) Failure {
	f := Failure{ID: id, Err: err}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		f.Step = stepErr.Step
	}
	var fieldErr *extract.FieldError
	if errors.As(err, &fieldErr) {
		f.Field = fieldErr.Field
	}
	return f
}

// BatchResult is the outcome of one batch.
type BatchResult[R model.Record] struct {
	// Records holds the assembled records in page order.
	Records []R
	// Failures holds the pages that were present but failed to assemble.
	Failures []Failure
	// Placeholders counts pages that were empty and skipped.
	Placeholders int
}

// BatchProcessor runs an assembler over a page sequence.
//
// Pages are processed sequentially. The page at index i always gets id i+1,
// so skipped and failed pages never shift the ids of later ones.
type BatchProcessor[R model.Record] struct {
	assemble Assembler[R]
	logger   *slog.Logger
}

// NewBatchProcessor creates a BatchProcessor for the given assembler.
func NewBatchProcessor[R model.Record](assemble Assembler[R], opts ...Option) *BatchProcessor[R] {
	o := applyOptions(opts)
	return &BatchProcessor[R]{
		assemble: assemble,
		logger:   o.logger,
	}
}

// ProcessBatch assembles a record from every non-empty page.
//
// A page that fails is recorded as a Failure and the batch continues. The
// only error returned is the context error when ctx is cancelled between
// pages; the partial result is returned with it.
func (bp *BatchProcessor[R]) ProcessBatch(ctx context.Context, pages []string) (*BatchResult[R], error) {
	bp.logger.Info("starting batch processing", "total_pages", len(pages))
	startTime := time.Now()

	result := &BatchResult[R]{
		Records:  make([]R, 0, len(pages)),
		Failures: make([]Failure, 0),
	}

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		id := i + 1
		if page == "" {
			result.Placeholders++
			bp.logger.Debug("skipping placeholder page", "id", id)
			continue
		}

		record, err := bp.assemble(ctx, id, page)
		if err != nil {
			failure := newFailure(id, err)
			result.Failures = append(result.Failures, failure)
			bp.logger.Error("page failed",
				"id", id,
				"step", failure.Step,
				"field", failure.Field,
				"error", err,
			)
			continue
		}
		result.Records = append(result.Records, record)
	}

	bp.logger.Info("batch processing complete",
		"records", len(result.Records),
		"failures", len(result.Failures),
		"placeholders", result.Placeholders,
		"elapsed", time.Since(startTime),
	)
	return result, nil
}
