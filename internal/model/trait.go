package model

// NotListedMarker is the body text of traits that have no description.
const NotListedMarker = "This trait was not listed"

// Trait is a rules trait page.
type Trait struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Source Source `json:"source"`

	// Description is nil when the page body says NotListedMarker.
	Description *string `json:"description"`

	// Groups lists the index headings the trait appears under.
	// Filled in by the enrichment pass.
	Groups []string `json:"groups"`
}

// NewTrait returns a trait with empty groups.
func NewTrait(id int) *Trait {
	return &Trait{ID: id, Groups: []string{}}
}

// RecordID implements Record.
func (t *Trait) RecordID() int { return t.ID }

// RecordName implements Record.
func (t *Trait) RecordName() string { return t.Name }

// RecordSource implements Record.
func (t *Trait) RecordSource() Source { return t.Source }
