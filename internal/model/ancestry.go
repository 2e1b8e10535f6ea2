package model

// Ancestry is a playable ancestry page.
type Ancestry struct {
	ID     int      `json:"id"`
	URL    string   `json:"url"`
	Name   string   `json:"name"`
	Rarity Rarity   `json:"rarity"`
	Traits []string `json:"traits"`
	Source Source   `json:"source"`

	// Description holds the sections printed before the first statistics
	// heading.
	Description []Section `json:"description"`

	HitPoints     int      `json:"hitPoints"`
	Size          string   `json:"size"`
	Speed         string   `json:"speed"`
	AbilityBoosts []string `json:"abilityBoosts"`
	AbilityFlaws  []string `json:"abilityFlaws"`
	Languages     []string `json:"languages"`

	Senses []Section `json:"senses"`
	Extras []Section `json:"extras"`
}

// NewAncestry returns an ancestry with every list initialized empty.
func NewAncestry(id int, url string) *Ancestry {
	return &Ancestry{
		ID:            id,
		URL:           url,
		Traits:        []string{},
		Description:   []Section{},
		AbilityBoosts: []string{},
		AbilityFlaws:  []string{},
		Languages:     []string{},
		Senses:        []Section{},
		Extras:        []Section{},
	}
}

// RecordID implements Record.
func (a *Ancestry) RecordID() int { return a.ID }

// RecordName implements Record.
func (a *Ancestry) RecordName() string { return a.Name }

// RecordSource implements Record.
func (a *Ancestry) RecordSource() Source { return a.Source }
