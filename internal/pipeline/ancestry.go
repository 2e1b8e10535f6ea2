package pipeline

import (
	"context"

	"github.com/leolwelter/2eTools-scraper/internal/extract"
	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// AncestryState is the state shared by the ancestry steps.
type AncestryState struct {
	Cursor   markup.Cursor
	Ancestry *model.Ancestry
}

// AncestrySteps returns the ancestry steps in page order.
func AncestrySteps() []Step[*AncestryState] {
	return []Step[*AncestryState]{
		NewStep("identity", func(_ context.Context, s *AncestryState) (err error) {
			s.Ancestry.Name, s.Cursor, err = extract.Title(s.Cursor)
			return err
		}),
		NewStep("classification", func(_ context.Context, s *AncestryState) error {
			var row extract.TraitRow
			row, s.Cursor = extract.Classification(s.Cursor)
			s.Ancestry.Rarity = row.Rarity
			s.Ancestry.Traits = row.TraitNames()
			return nil
		}),
		NewStep("source", func(_ context.Context, s *AncestryState) (err error) {
			s.Ancestry.Source, s.Cursor, err = extract.Source(s.Cursor)
			return err
		}),
		NewStep("sections", func(_ context.Context, s *AncestryState) error {
			var sections []extract.AncestrySection
			sections, s.Cursor = extract.AncestrySections(s.Cursor)
			return extract.ApplySections(s.Ancestry, sections)
		}),
		done(func(s *AncestryState) model.Record { return s.Ancestry }),
	}
}

// NewAncestryAssembler returns an assembler for ancestry pages. urlFor
// gives the page URL stored on each record.
func NewAncestryAssembler(urlFor func(id int) string, opts ...Option) Assembler[*model.Ancestry] {
	p := New[*AncestryState](opts...)
	p.AddSteps(AncestrySteps()...)

	return func(ctx context.Context, id int, page string) (*model.Ancestry, error) {
		c, err := load(page)
		if err != nil {
			return nil, err
		}
		state := &AncestryState{Cursor: c, Ancestry: model.NewAncestry(id, urlFor(id))}
		return assemble(ctx, p, state, func(s *AncestryState) *model.Ancestry { return s.Ancestry })
	}
}
