package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

var levelPattern = regexp.MustCompile(`^Creature\s*(?P<level>-?\d+)$`)

// isLevelSpan matches the "Creature N" badge printed beside the title.
func isLevelSpan(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "span" &&
		levelPattern.MatchString(markup.Squash(markup.Text(n)))
}

// Title returns the text of the first h1, without any level badge nested
// inside it, and a cursor past the heading.
func Title(c markup.Cursor) (string, markup.Cursor, error) {
	h1, ok := c.Find(markup.Element("h1"))
	if !ok {
		return "", c, missing("name")
	}
	var sb strings.Builder
	for child := h1.Node().FirstChild; child != nil; child = child.NextSibling {
		if isLevelSpan(child) {
			continue
		}
		sb.WriteString(markup.Text(child))
	}
	name := markup.Squash(sb.String())
	if name == "" {
		return "", c, mismatch("name", "")
	}
	end := h1
	end.Skip()
	return name, end, nil
}

// Identity returns a creature's name and level. The level badge may sit
// inside the title heading or right after it.
func Identity(c markup.Cursor) (name string, level int, next markup.Cursor, err error) {
	h1, ok := c.Find(markup.Element("h1"))
	if !ok {
		return "", 0, c, missing("name")
	}
	name, afterTitle, err := Title(h1)
	if err != nil {
		return "", 0, c, err
	}

	badge, ok := h1.Find(isLevelSpan)
	if !ok {
		return "", 0, c, missing("level")
	}
	run := markup.Squash(badge.Text())
	m, _ := find(levelPattern, run)
	level, ok = m.integer("level")
	if !ok {
		return "", 0, c, mismatch("level", run)
	}

	if contains(h1.Node(), badge.Node()) {
		return name, level, afterTitle, nil
	}
	badge.Skip()
	return name, level, badge, nil
}

func contains(ancestor, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// TraitRow is the classification printed under a title.
type TraitRow struct {
	Rarity    model.Rarity
	Alignment string
	Size      string
	Traits    []model.TraitRef
}

// TraitNames returns the names of the plain traits in order.
func (cl TraitRow) TraitNames() []string {
	names := make([]string, 0, len(cl.Traits))
	for _, t := range cl.Traits {
		names = append(names, t.Name)
	}
	return names
}

var traitRowEnd = markup.Any(markup.Element("br", "hr", "h2", "h3"), markup.Bold("Source"))

// Classification reads the trait spans from c up to the end of the trait
// row or the Source label. Every trait is optional; without a trait row the
// original cursor is returned.
func Classification(c markup.Cursor) (TraitRow, markup.Cursor) {
	cl := TraitRow{Rarity: model.RarityCommon, Traits: []model.TraitRef{}}

	probe := c
	seen := false
	for !probe.Done() && !traitRowEnd(probe.Node()) {
		if probe.Tag() != "span" {
			probe.Next()
			continue
		}
		text := markup.Squash(probe.Text())
		switch {
		case probe.HasClass("traituncommon"):
			cl.Rarity = model.RarityUncommon
		case probe.HasClass("traitrare"):
			cl.Rarity = model.RarityUnique
			if r, err := model.ParseRarity(text); err == nil && r == model.RarityRare {
				cl.Rarity = model.RarityRare
			}
		case probe.HasClass("traitunique"):
			cl.Rarity = model.RarityUnique
		case probe.HasClass("traitalignment"):
			cl.Alignment = text
		case probe.HasClass("traitsize"):
			cl.Size = text
		case probe.HasClass("trait"):
			ref := model.TraitRef{Name: text}
			if title := probe.Attr("title"); title != "" {
				ref.Description = &title
			}
			cl.Traits = append(cl.Traits, ref)
		default:
			probe.Next()
			continue
		}
		seen = true
		probe.Skip()
	}

	if !seen {
		return cl, c
	}
	return cl, probe
}
