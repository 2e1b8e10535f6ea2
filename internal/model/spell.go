package model

// SpellcastingBlock is one spell list of a creature. A creature owns at
// most three: innate, focus, and prepared or spontaneous.
type SpellcastingBlock struct {
	Tradition SpellTradition `json:"tradition"`
	CastType  CastingType    `json:"castType"`

	DC     *int `json:"dc"`
	Attack *int `json:"attack"`

	// Slots lists per-level slot counts in ascending level order.
	Slots []SlotCount `json:"slots"`

	Spells      []SpellLevel `json:"spells"`
	FocusPoints *int         `json:"focusPoints"`
}

// SlotCount is the number of slots available at one spell level.
type SlotCount struct {
	Level int `json:"level"`
	Count int `json:"count"`
}

// SpellLevel groups the spells known at one level. Level 0 holds cantrips.
type SpellLevel struct {
	Level  int          `json:"level"`
	Spells []SpellEntry `json:"spells"`
}

// SpellEntry is one spell in a level list.
type SpellEntry struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
	Notes    string `json:"notes"`
}

// NewSpellcastingBlock builds an empty block after validating the
// tradition and casting type names.
func NewSpellcastingBlock(tradition, castType string) (SpellcastingBlock, error) {
	t, err := ParseSpellTradition(tradition)
	if err != nil {
		return SpellcastingBlock{}, err
	}
	c, err := ParseCastingType(castType)
	if err != nil {
		return SpellcastingBlock{}, err
	}
	return SpellcastingBlock{
		Tradition: t,
		CastType:  c,
		Slots:     []SlotCount{},
		Spells:    []SpellLevel{},
	}, nil
}

// Sidebar is boxed text printed after a stat block.
type Sidebar struct {
	Kind  SidebarKind `json:"kind"`
	Title string      `json:"title"`
	Text  string      `json:"text"`
}
