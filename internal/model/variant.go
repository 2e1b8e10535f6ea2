package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// foldVariant normalizes variant text for case-insensitive lookups.
// A fresh Caser is used per call because Casers are not safe for concurrent use.
func foldVariant(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// parseVariant looks up text in a closed name table.
func parseVariant[T comparable](what, text string, names map[T]string) (T, error) {
	folded := foldVariant(text)
	for v, name := range names {
		if name == folded {
			return v, nil
		}
	}
	var zero T
	return zero, parseErr(what, text)
}

// marshalVariant renders a variant as its canonical name.
func marshalVariant[T comparable](what string, v T, names map[T]string) ([]byte, error) {
	name, ok := names[v]
	if !ok {
		return nil, fmt.Errorf("%w: %s %v", ErrUnknownVariant, what, v)
	}
	return []byte(name), nil
}

// CastingType is how a spellcasting block prepares its spells.
type CastingType int

const (
	// CastingPrepared spells are chosen in advance each day.
	CastingPrepared CastingType = iota + 1
	// CastingSpontaneous spells are cast from a repertoire using slots.
	CastingSpontaneous
	// CastingFocus spells are fueled by a focus point pool.
	CastingFocus
	// CastingInnate spells come from the creature's nature.
	CastingInnate
)

var castingTypeNames = map[CastingType]string{
	CastingPrepared:    "prepared",
	CastingSpontaneous: "spontaneous",
	CastingFocus:       "focus",
	CastingInnate:      "innate",
}

// ParseCastingType returns the casting type named by s.
func ParseCastingType(s string) (CastingType, error) {
	return parseVariant("casting type", s, castingTypeNames)
}

func (c CastingType) String() string { return castingTypeNames[c] }

// MarshalText implements encoding.TextMarshaler.
func (c CastingType) MarshalText() ([]byte, error) {
	return marshalVariant("casting type", c, castingTypeNames)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CastingType) UnmarshalText(b []byte) error {
	v, err := ParseCastingType(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// SpellTradition is one of the four magical traditions.
type SpellTradition int

const (
	TraditionArcane SpellTradition = iota + 1
	TraditionDivine
	TraditionOccult
	TraditionPrimal
)

var traditionNames = map[SpellTradition]string{
	TraditionArcane: "arcane",
	TraditionDivine: "divine",
	TraditionOccult: "occult",
	TraditionPrimal: "primal",
}

// ParseSpellTradition returns the tradition named by s.
func ParseSpellTradition(s string) (SpellTradition, error) {
	return parseVariant("spell tradition", s, traditionNames)
}

func (t SpellTradition) String() string { return traditionNames[t] }

// MarshalText implements encoding.TextMarshaler.
func (t SpellTradition) MarshalText() ([]byte, error) {
	return marshalVariant("spell tradition", t, traditionNames)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SpellTradition) UnmarshalText(b []byte) error {
	v, err := ParseSpellTradition(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// SidebarKind classifies the boxed text that follows a stat block.
type SidebarKind int

const (
	SidebarAdditionalLore SidebarKind = iota + 1
	SidebarAdviceAndRules
	SidebarLocations
	SidebarRelatedCreatures
	SidebarTreasureAndRewards
)

var sidebarKindNames = map[SidebarKind]string{
	SidebarAdditionalLore:     "additional lore",
	SidebarAdviceAndRules:     "advice and rules",
	SidebarLocations:          "locations",
	SidebarRelatedCreatures:   "related creatures",
	SidebarTreasureAndRewards: "treasure and rewards",
}

// ParseSidebarKind returns the sidebar kind named by s.
func ParseSidebarKind(s string) (SidebarKind, error) {
	return parseVariant("sidebar kind", s, sidebarKindNames)
}

func (k SidebarKind) String() string { return sidebarKindNames[k] }

// MarshalText implements encoding.TextMarshaler.
func (k SidebarKind) MarshalText() ([]byte, error) {
	return marshalVariant("sidebar kind", k, sidebarKindNames)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SidebarKind) UnmarshalText(b []byte) error {
	v, err := ParseSidebarKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Rarity is how often a creature, ancestry or item is encountered.
// The zero value is RarityCommon.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityUnique
)

var rarityNames = map[Rarity]string{
	RarityCommon:   "common",
	RarityUncommon: "uncommon",
	RarityRare:     "rare",
	RarityUnique:   "unique",
}

// ParseRarity returns the rarity named by s.
func ParseRarity(s string) (Rarity, error) {
	return parseVariant("rarity", s, rarityNames)
}

func (r Rarity) String() string { return rarityNames[r] }

// MarshalText implements encoding.TextMarshaler.
func (r Rarity) MarshalText() ([]byte, error) {
	return marshalVariant("rarity", r, rarityNames)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rarity) UnmarshalText(b []byte) error {
	v, err := ParseRarity(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
