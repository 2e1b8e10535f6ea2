package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// Assembler builds the record with the given id from one page.
type Assembler[R model.Record] func(ctx context.Context, id int, page string) (R, error)

// load parses a page into a cursor over its content node.
func load(page string) (markup.Cursor, error) {
	c, err := markup.Load(strings.NewReader(page), markup.ContentSelector)
	if err != nil {
		return markup.Cursor{}, &StepError{Step: "load", Err: err}
	}
	return c, nil
}

// done is the last step of every pipeline: it checks the invariants every
// emitted record holds.
func done[S any](record func(S) model.Record) Step[S] {
	return NewStep("done", func(_ context.Context, s S) error {
		r := record(s)
		if err := r.RecordSource().Validate(); err != nil {
			return fmt.Errorf("record %d: %w", r.RecordID(), err)
		}
		return nil
	})
}

// assemble runs p over a fresh state for one page.
func assemble[S any, R model.Record](ctx context.Context, p *Pipeline[S], state S, record func(S) R) (R, error) {
	var zero R
	if err := p.Execute(ctx, state); err != nil {
		return zero, err
	}
	return record(state), nil
}
