// Package pipeline assembles records from detail pages.
//
// # Architecture
//
// A Pipeline runs named steps strictly forward over shared state: a
// markup.Cursor and the record under construction. Each step hands the
// cursor it leaves behind to the next one, so steps are ordered the way
// fields are printed on the page and the cursor never rewinds.
//
// Creature pages run:
//
//	identity → traits-and-classification → source → senses → languages →
//	skills → ability-modifiers → items → interaction-abilities →
//	ac-and-saves → vitals → defenses → automatic-abilities → speed →
//	strikes → spells → active-abilities → sidebars → done
//
// A failing step aborts the record with a *StepError naming the step.
//
// # Components
//
//   - Pipeline and Step: the generic step runner, with StepFunc adapting
//     plain functions
//   - Assembler: turns one page into one record; NewCreatureAssembler,
//     NewTraitAssembler and NewAncestryAssembler build the three kinds
//   - BatchProcessor: runs an assembler over a page sequence
//
// # Batches
//
// The BatchProcessor assigns ids by position (the first page is id 1),
// skips placeholder pages without shifting later ids and collects a
// Failure per page that fails to assemble. Only cancellation stops a
// batch early.
//
// # Usage
//
//	bp := pipeline.NewBatchProcessor(pipeline.NewTraitAssembler())
//	result, err := bp.ProcessBatch(ctx, pages)
package pipeline
