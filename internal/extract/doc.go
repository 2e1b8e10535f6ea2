// Package extract recovers typed fields from detail pages.
//
// # Architecture
//
// Every extractor takes a markup.Cursor positioned at or before its anchor
// and returns the value it found together with a cursor advanced past the
// consumed section. Extractors never rewind, so the order in which they are
// called must follow the order fields are printed on the page.
//
// Most fields are read by collecting one line with markup.Collect and
// matching it against a compiled pattern with named groups.
//
// # Components
//
//   - Identity and classification: Identity, Title, Classification
//   - Provenance: Source, SourceLink
//   - Statistics: Perception, SpokenLanguages, Skills, AbilityModifiers,
//     Items, Prose
//   - Defense: ArmorClass, Saves, HitPoints, Defenses, DefensiveAbilities
//   - Offense: Speed, Strikes, Spells, ActiveAbilities, Sidebars
//   - Abilities: AbilityBlock, shared by every ability section
//   - Other kinds: TraitDescription, AncestrySections, ApplySections
//
// # Errors
//
// An optional field whose anchor never appears yields its default value
// and the original cursor. A mandatory field that is missing or malformed
// yields a *FieldError naming the field, wrapping one of ErrAnchorNotFound,
// ErrPatternMismatch or ErrTemplateBreak. A template break means the page
// no longer follows the layout the extractor expects, such as ability names
// and bodies that do not pair up; the record is dropped rather than filled
// with misaligned data.
package extract
