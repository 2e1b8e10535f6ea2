// Package model defines the records produced by the scraper.
//
// This package contains the following main types:
//   - Creature: a monster stat block with defenses, abilities and strikes
//   - Trait: a rules trait with its description and index groups
//   - Ancestry: a playable ancestry split into named sections
//   - Document: the serialized form handed to a sink
//
// Every top-level record owns exactly one Source citation and a 1-based id
// equal to its position in the fetched page sequence. Optional numbers are
// pointers so that an absent value is never confused with a real zero.
package model
