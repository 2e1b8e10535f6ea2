package pipeline

import (
	"context"
	"log/slog"

	"github.com/leolwelter/2eTools-scraper/internal/extract"
	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// CreatureState is the state shared by the creature steps.
type CreatureState struct {
	Cursor   markup.Cursor
	Creature *model.Creature
}

func creatureStep(name string, fn func(s *CreatureState) error) Step[*CreatureState] {
	return NewStep(name, func(_ context.Context, s *CreatureState) error { return fn(s) })
}

// CreatureSteps returns the creature steps in page order.
func CreatureSteps(logger *slog.Logger) []Step[*CreatureState] {
	return []Step[*CreatureState]{
		creatureStep("identity", func(s *CreatureState) (err error) {
			s.Creature.Name, s.Creature.Level, s.Cursor, err = extract.Identity(s.Cursor)
			return err
		}),
		creatureStep("traits-and-classification", func(s *CreatureState) error {
			var row extract.TraitRow
			row, s.Cursor = extract.Classification(s.Cursor)
			s.Creature.Rarity = row.Rarity
			s.Creature.Alignment = row.Alignment
			s.Creature.Size = row.Size
			s.Creature.Traits = row.Traits
			return nil
		}),
		creatureStep("source", func(s *CreatureState) (err error) {
			s.Creature.Source, s.Cursor, err = extract.Source(s.Cursor)
			return err
		}),
		creatureStep("senses", func(s *CreatureState) error {
			s.Creature.Description, s.Cursor = extract.Prose(s.Cursor, markup.Bold("Perception"))
			senses, next, err := extract.Perception(s.Cursor)
			if err != nil {
				return err
			}
			s.Creature.Perception = senses.Perception
			s.Creature.Senses = senses.Senses
			s.Cursor = next
			return nil
		}),
		creatureStep("languages", func(s *CreatureState) error {
			var langs extract.Languages
			langs, s.Cursor = extract.SpokenLanguages(s.Cursor)
			s.Creature.Languages = langs.Languages
			s.Creature.OtherCommunication = langs.Other
			return nil
		}),
		creatureStep("skills", func(s *CreatureState) error {
			s.Creature.Skills, s.Cursor = extract.Skills(s.Cursor)
			return nil
		}),
		creatureStep("ability-modifiers", func(s *CreatureState) (err error) {
			s.Creature.AbilityMods, s.Cursor, err = extract.AbilityModifiers(s.Cursor)
			return err
		}),
		creatureStep("items", func(s *CreatureState) error {
			s.Creature.Items, s.Cursor = extract.Items(s.Cursor)
			return nil
		}),
		creatureStep("interaction-abilities", func(s *CreatureState) (err error) {
			s.Creature.InteractionAbilities, s.Cursor, err = extract.AbilityBlock(s.Cursor, markup.Section, "interactionAbilities")
			return err
		}),
		creatureStep("ac-and-saves", func(s *CreatureState) error {
			ac, next, err := extract.ArmorClass(s.Cursor)
			if err != nil {
				return err
			}
			saves, next, err := extract.Saves(next)
			if err != nil {
				return err
			}
			c := s.Creature
			c.AC, c.ACNotes = ac.Value, ac.Notes
			c.Fortitude, c.FortitudeNotes = saves.Fortitude, saves.FortitudeNotes
			c.Reflex, c.ReflexNotes = saves.Reflex, saves.ReflexNotes
			c.Will, c.WillNotes = saves.Will, saves.WillNotes
			c.SaveNotes = saves.Notes
			s.Cursor = next
			return nil
		}),
		creatureStep("vitals", func(s *CreatureState) error {
			v, next, err := extract.HitPoints(s.Cursor)
			if err != nil {
				return err
			}
			c := s.Creature
			c.HitPoints, c.HitPointsNotes = v.HitPoints, v.Notes
			c.Hardness, c.Regeneration, c.DeactivatedBy = v.Hardness, v.Regeneration, v.DeactivatedBy
			s.Cursor = next
			return nil
		}),
		creatureStep("defenses", func(s *CreatureState) error {
			var d extract.DefenseLists
			d, s.Cursor = extract.Defenses(s.Cursor)
			s.Creature.Immunities = d.Immunities
			s.Creature.Weaknesses = d.Weaknesses
			s.Creature.Resistances = d.Resistances
			return nil
		}),
		creatureStep("automatic-abilities", func(s *CreatureState) error {
			d, next, err := extract.DefensiveAbilities(s.Cursor)
			if err != nil {
				return err
			}
			s.Creature.AutomaticAbilities = d.Automatic
			s.Creature.ReactiveAbilities = d.Reactive
			s.Cursor = next
			return nil
		}),
		creatureStep("speed", func(s *CreatureState) error {
			s.Creature.Speed, s.Cursor = extract.Speed(s.Cursor)
			return nil
		}),
		creatureStep("strikes", func(s *CreatureState) (err error) {
			s.Creature.Strikes, s.Cursor, err = extract.Strikes(s.Cursor)
			return err
		}),
		creatureStep("spells", func(s *CreatureState) error {
			var labels []string
			labels, s.Cursor = extract.Spells(s.Cursor)
			if len(labels) > 0 {
				logger.Debug("spell lists not extracted",
					"id", s.Creature.ID,
					"lists", labels,
				)
			}
			return nil
		}),
		creatureStep("active-abilities", func(s *CreatureState) (err error) {
			s.Creature.ActiveAbilities, s.Cursor, err = extract.ActiveAbilities(s.Cursor)
			return err
		}),
		creatureStep("sidebars", func(s *CreatureState) error {
			s.Creature.Sidebars, s.Cursor = extract.Sidebars(s.Cursor)
			return nil
		}),
		done(func(s *CreatureState) model.Record { return s.Creature }),
	}
}

// NewCreatureAssembler returns an assembler for creature pages.
func NewCreatureAssembler(opts ...Option) Assembler[*model.Creature] {
	o := applyOptions(opts)
	p := New[*CreatureState](opts...)
	p.AddSteps(CreatureSteps(o.logger)...)

	return func(ctx context.Context, id int, page string) (*model.Creature, error) {
		c, err := load(page)
		if err != nil {
			return nil, err
		}
		state := &CreatureState{Cursor: c, Creature: model.NewCreature(id)}
		return assemble(ctx, p, state, func(s *CreatureState) *model.Creature { return s.Creature })
	}
}
