package pipeline

import (
	"context"

	"github.com/leolwelter/2eTools-scraper/internal/extract"
	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// TraitState is the state shared by the trait steps.
type TraitState struct {
	Cursor markup.Cursor
	Trait  *model.Trait
}

// TraitSteps returns the trait steps in page order.
func TraitSteps() []Step[*TraitState] {
	return []Step[*TraitState]{
		NewStep("identity", func(_ context.Context, s *TraitState) (err error) {
			s.Trait.Name, s.Cursor, err = extract.Title(s.Cursor)
			return err
		}),
		NewStep("source", func(_ context.Context, s *TraitState) (err error) {
			s.Trait.Source, s.Cursor, err = extract.SourceLink(s.Cursor)
			return err
		}),
		NewStep("description", func(_ context.Context, s *TraitState) error {
			s.Trait.Description, s.Cursor = extract.TraitDescription(s.Cursor)
			return nil
		}),
		done(func(s *TraitState) model.Record { return s.Trait }),
	}
}

// NewTraitAssembler returns an assembler for trait pages. Groups are left
// empty for the enrichment pass.
func NewTraitAssembler(opts ...Option) Assembler[*model.Trait] {
	p := New[*TraitState](opts...)
	p.AddSteps(TraitSteps()...)

	return func(ctx context.Context, id int, page string) (*model.Trait, error) {
		c, err := load(page)
		if err != nil {
			return nil, err
		}
		state := &TraitState{Cursor: c, Trait: model.NewTrait(id)}
		return assemble(ctx, p, state, func(s *TraitState) *model.Trait { return s.Trait })
	}
}
