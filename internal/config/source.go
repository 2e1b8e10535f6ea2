package config

import (
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// Source locates the detail pages of one kind.
type Source struct {
	// URL is the page URL template; "%d" is replaced by the record id.
	URL string `yaml:"url,omitempty"`

	// MaxID is the highest page id, inclusive. Ids start at 1.
	MaxID int `yaml:"maxId,omitempty"`
}

// DefaultSources returns the page sources of the supported kinds.
func DefaultSources() map[model.Kind]Source {
	return map[model.Kind]Source{
		model.KindCreature: {URL: "https://2e.aonprd.com/Monsters.aspx?ID=%d", MaxID: 981},
		model.KindTrait:    {URL: "https://2e.aonprd.com/Traits.aspx?ID=%d", MaxID: 314},
		model.KindAncestry: {URL: "https://2e.aonprd.com/Ancestries.aspx?ID=%d", MaxID: 36},
	}
}

// PageURL returns the URL of the page with the given id.
func (s Source) PageURL(id int) string {
	return strings.Replace(s.URL, "%d", fmt.Sprint(id), 1)
}

// Validate checks the template and the id range.
func (s Source) Validate() error {
	if strings.Count(s.URL, "%d") != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidURLTemplate, s.URL)
	}
	if s.MaxID <= 0 {
		return ErrInvalidMaxID
	}
	return nil
}

// merge overrides the fields set in o.
func (s Source) merge(o Source) (Source, error) {
	if err := mergo.Merge(&s, o, mergo.WithOverride); err != nil {
		return s, err
	}
	return s, nil
}
