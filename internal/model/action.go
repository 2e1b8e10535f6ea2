package model

// ActionCost is the action glyph printed before an ability or strike.
type ActionCost string

const (
	CostNone         ActionCost = ""
	CostSingleAction ActionCost = "Single Action"
	CostTwoActions   ActionCost = "Two Actions"
	CostThreeActions ActionCost = "Three Actions"
	CostReaction     ActionCost = "Reaction"
	CostFreeAction   ActionCost = "Free Action"
)

// ParseActionCost returns the cost whose glyph text is s.
func ParseActionCost(s string) (ActionCost, error) {
	switch c := ActionCost(s); c {
	case CostNone, CostSingleAction, CostTwoActions, CostThreeActions, CostReaction, CostFreeAction:
		return c, nil
	}
	return CostNone, parseErr("action cost", s)
}

// Action is one ability entry of a stat block.
type Action struct {
	Cost         ActionCost `json:"cost"`
	Name         string     `json:"name"`
	Traits       []string   `json:"traits"`
	Frequency    *string    `json:"frequency"`
	Trigger      string     `json:"trigger"`
	Requirements string     `json:"requirements"`
	Description  string     `json:"description"`
	Damage       *string    `json:"damage"`
}

// IsReactive reports whether the action is used in response to a trigger.
func (a Action) IsReactive() bool {
	return a.Cost == CostReaction || a.Trigger != ""
}

// StrikeKind distinguishes melee and ranged strikes.
type StrikeKind string

const (
	StrikeMelee  StrikeKind = "melee"
	StrikeRanged StrikeKind = "ranged"
)

// ParseStrikeKind returns the strike kind for the leading "Melee" or
// "Ranged" label of a strike line.
func ParseStrikeKind(s string) (StrikeKind, error) {
	switch foldVariant(s) {
	case "melee":
		return StrikeMelee, nil
	case "ranged":
		return StrikeRanged, nil
	}
	return "", parseErr("strike kind", s)
}

// Strike is an attack line of a stat block.
type Strike struct {
	Action

	Kind StrikeKind `json:"kind"`

	// Attack is the first attack modifier.
	Attack int `json:"attack"`

	// MultipleAttack holds the bracketed follow-up modifiers, e.g. "+6", "+2".
	MultipleAttack []string `json:"multipleAttack"`

	Effect *string `json:"effect"`
}
