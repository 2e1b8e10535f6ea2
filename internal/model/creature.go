package model

// NoFamily is the family of a creature absent from the family roster.
const NoFamily = "none"

// Creature is a monster stat block.
type Creature struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Rarity Rarity `json:"rarity"`

	// Alignment is the alignment trait abbreviation, e.g. "CE".
	Alignment string `json:"alignment"`
	Size      string `json:"size"`

	// Family is the monster family from the roster page, or NoFamily.
	Family string     `json:"family"`
	Source Source     `json:"source"`
	Traits []TraitRef `json:"traits"`

	AC      int    `json:"ac"`
	ACNotes string `json:"acNotes"`

	Fortitude      int    `json:"fortitude"`
	FortitudeNotes string `json:"fortitudeNotes"`
	Reflex         int    `json:"reflex"`
	ReflexNotes    string `json:"reflexNotes"`
	Will           int    `json:"will"`
	WillNotes      string `json:"willNotes"`
	SaveNotes      string `json:"saveNotes"`

	HitPoints      int    `json:"hitPoints"`
	HitPointsNotes string `json:"hitPointsNotes"`
	Hardness       *int   `json:"hardness"`
	Regeneration   *int   `json:"regeneration"`
	DeactivatedBy  string `json:"deactivatedBy"`

	Immunities  []string `json:"immunities"`
	Weaknesses  []string `json:"weaknesses"`
	Resistances []string `json:"resistances"`

	Perception int      `json:"perception"`
	Senses     []string `json:"senses"`

	Languages          []string    `json:"languages"`
	OtherCommunication []string    `json:"otherCommunication"`
	Skills             []Header    `json:"skills"`
	AbilityMods        AbilityMods `json:"abilityMods"`
	Items              []string    `json:"items"`

	InteractionAbilities []Action `json:"interactionAbilities"`
	AutomaticAbilities   []Action `json:"automaticAbilities"`
	ReactiveAbilities    []Action `json:"reactiveAbilities"`
	ActiveAbilities      []Action `json:"activeAbilities"`

	Speed   string   `json:"speed"`
	Strikes []Strike `json:"strikes"`

	Spellcasting []SpellcastingBlock `json:"spellcasting"`
	Sidebars     []Sidebar           `json:"sidebars"`
	Description  string              `json:"description"`
}

// AbilityMods holds the six ability modifiers.
type AbilityMods struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`
}

// NewCreature returns a creature with every list initialized empty so that
// documents never carry null lists.
func NewCreature(id int) *Creature {
	return &Creature{
		ID:                   id,
		Family:               NoFamily,
		Traits:               []TraitRef{},
		Immunities:           []string{},
		Weaknesses:           []string{},
		Resistances:          []string{},
		Senses:               []string{},
		Languages:            []string{},
		OtherCommunication:   []string{},
		Skills:               []Header{},
		Items:                []string{},
		InteractionAbilities: []Action{},
		AutomaticAbilities:   []Action{},
		ReactiveAbilities:    []Action{},
		ActiveAbilities:      []Action{},
		Strikes:              []Strike{},
		Spellcasting:         []SpellcastingBlock{},
		Sidebars:             []Sidebar{},
	}
}

// RecordID implements Record.
func (c *Creature) RecordID() int { return c.ID }

// RecordName implements Record.
func (c *Creature) RecordName() string { return c.Name }

// RecordSource implements Record.
func (c *Creature) RecordSource() Source { return c.Source }
