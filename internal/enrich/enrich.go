package enrich

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// ErrNoIndex is returned when an index page has no detail content.
var ErrNoIndex = errors.New("index page has no content")

// content returns the detail content of an index page.
func content(page string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse index page: %w", err)
	}
	sel := doc.Find(markup.ContentSelector).First()
	if sel.Length() == 0 {
		return nil, ErrNoIndex
	}
	return sel, nil
}

// TraitGroups appends to each trait the headings of the trait index it is
// listed under. Each h2 "<Label> Traits" opens a group; a trait badge whose
// title equals a trait's name files that trait under the open group.
// Badges before the first heading belong to no group.
func TraitGroups(indexHTML string, traits []*model.Trait) error {
	root, err := content(indexHTML)
	if err != nil {
		return err
	}

	byName := make(map[string][]*model.Trait, len(traits))
	for _, t := range traits {
		byName[t.Name] = append(byName[t.Name], t)
	}

	label := ""
	root.Find("h2, span.trait").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "h2" {
			heading, _, _ := strings.Cut(s.Text(), "Traits")
			label = strings.TrimSpace(heading)
			return
		}
		if label == "" {
			return
		}
		title, _ := s.Attr("title")
		for _, t := range byName[title] {
			t.Groups = append(t.Groups, label)
		}
	})
	return nil
}

// Families reads the monster family roster into a creature name to family
// table. Every h2 names a family and each monster link up to the next h2 is
// a member.
func Families(rosterHTML string) (map[string]string, error) {
	root, err := content(rosterHTML)
	if err != nil {
		return nil, err
	}

	table := make(map[string]string)
	family := ""
	root.Find(`h2, a[href*="Monsters.aspx"]`).Each(func(_ int, s *goquery.Selection) {
		name := markup.Squash(s.Text())
		if goquery.NodeName(s) == "h2" {
			family = name
			return
		}
		if family == "" || name == "" {
			return
		}
		if _, seen := table[name]; !seen {
			table[name] = family
		}
	})
	return table, nil
}

// ApplyFamilies sets each creature's family by exact name lookup. Creatures
// missing from the table get model.NoFamily.
func ApplyFamilies(creatures []*model.Creature, table map[string]string) {
	for _, c := range creatures {
		family, ok := table[c.Name]
		if !ok || family == "" {
			family = model.NoFamily
		}
		c.Family = family
	}
}
