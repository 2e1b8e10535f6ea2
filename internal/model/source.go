package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSource is returned when a citation has no book or no positive page.
var ErrInvalidSource = errors.New("invalid source")

// Source is the rulebook citation a record was published in.
type Source struct {
	// Book is the title of the rulebook, e.g. "Bestiary".
	Book string `json:"book"`

	// Page is the 1-based page number within Book.
	Page int `json:"page"`
}

// Validate checks that the citation names a book and a positive page.
func (s Source) Validate() error {
	if strings.TrimSpace(s.Book) == "" {
		return fmt.Errorf("%w: empty book", ErrInvalidSource)
	}
	if s.Page <= 0 {
		return fmt.Errorf("%w: page %d is not positive", ErrInvalidSource, s.Page)
	}
	return nil
}

func (s Source) String() string {
	return fmt.Sprintf("%s pg. %d", s.Book, s.Page)
}

// TraitRef is a trait referenced by name from another record.
type TraitRef struct {
	Name string `json:"name"`

	// Description is the tooltip text shown on hover; nil when the page
	// carries no tooltip.
	Description *string `json:"description"`
}

// Header is a named value such as a skill bonus.
type Header struct {
	Name     string `json:"name"`
	Text     string `json:"text"`
	Modifier *int   `json:"modifier"`
}

// Section is a titled block of ancestry prose, optionally holding a table.
// When Table is non-nil its first row holds the header cells.
type Section struct {
	Header string     `json:"header"`
	Text   string     `json:"text"`
	Table  [][]string `json:"table"`
}
