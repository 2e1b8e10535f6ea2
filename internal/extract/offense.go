package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

var strikePattern = regexp.MustCompile(`^(?P<kind>Melee|Ranged)\s*` +
	`(?:(?P<cost>Single Action|Two Actions|Three Actions|Reaction|Free Action)\s*)?` +
	`(?P<name>.+?)\s+(?P<attack>[+-]\d+)\s*` +
	`(?:\[(?P<map>[^\]]*)\]\s*)?` +
	`(?:\((?P<traits>(?:[^()]|\([^()]*\))*)\)\s*)?` +
	`,?\s*(?:Damage\s*(?P<damage>.*?))?` +
	`\s*(?:;?\s*Effect\s*(?P<effect>.*?))?\s*$`)

// offenseEnd ends the strike and spell lines of a stat block.
var offenseEnd = markup.Element("hr", "h1", "h2", "h3")

// Speed reads the optional "Speed ..." line.
func Speed(c markup.Cursor) (string, markup.Cursor) {
	anchor, ok := c.Find(markup.Bold("Speed"))
	if !ok {
		return "", c
	}
	run, end := line(anchor, markup.Line)
	return trimLabel(run, "Speed"), end
}

// Strikes reads the consecutive hanging-indent spans after the cursor.
// Spans that do not start with Melee or Ranged are passed over. A strike
// span that does not match the strike pattern is a template break.
func Strikes(c markup.Cursor) ([]model.Strike, markup.Cursor, error) {
	strikes := []model.Strike{}
	hanging := markup.ClassIs("hanging-indent")
	for {
		span, ok := findBefore(c, hanging, markup.Any(offenseEnd, markup.AnyBold))
		if !ok {
			return strikes, c, nil
		}
		run := markup.Squash(markup.CollectWithin(span.Node()))
		if strings.HasPrefix(run, "Melee") || strings.HasPrefix(run, "Ranged") {
			strike, err := parseStrike(run)
			if err != nil {
				return nil, c, err
			}
			strikes = append(strikes, strike)
		}
		c = span
		c.Skip()
	}
}

func parseStrike(run string) (model.Strike, error) {
	m, ok := find(strikePattern, run)
	if !ok {
		return model.Strike{}, broken("strikes", run, "unrecognized strike")
	}
	kind, err := model.ParseStrikeKind(m.str("kind"))
	if err != nil {
		return model.Strike{}, broken("strikes", run, "%v", err)
	}
	cost, err := model.ParseActionCost(m.str("cost"))
	if err != nil {
		return model.Strike{}, broken("strikes", run, "%v", err)
	}
	attack, _ := m.integer("attack")

	penalties := []string{}
	for _, p := range strings.Split(m.str("map"), "/") {
		penalties = appendTrimmed(penalties, p)
	}

	return model.Strike{
		Action: model.Action{
			Cost:   cost,
			Name:   m.str("name"),
			Traits: splitList(m.str("traits")),
			Damage: m.optional("damage"),
		},
		Kind:           kind,
		Attack:         attack,
		MultipleAttack: penalties,
		Effect:         m.optional("effect"),
	}, nil
}

// spellListSuffixes end the bold label of a spell list line.
var spellListSuffixes = []string{"Spells", "Rituals", "Formulas"}

// isSpellLabel matches the bold label opening a spell list line, such as
// "Arcane Innate Spells", "Occult Rituals" or "Alchemical Formulas".
func isSpellLabel(n *html.Node) bool {
	if !markup.AnyBold(n) {
		return false
	}
	label := markup.Squash(markup.Text(n))
	for _, suffix := range spellListSuffixes {
		if strings.HasSuffix(label, suffix) {
			return true
		}
	}
	return false
}

// Spells passes over the spell list lines following the cursor and returns
// their labels. Spell list contents are not extracted.
//
// TODO: parse DC, attack, slots and per-level spell lists into
// model.SpellcastingBlock once the level headings are mapped.
func Spells(c markup.Cursor) ([]string, markup.Cursor) {
	labels := []string{}
	for {
		next, ok := findBefore(c, markup.AnyBold, offenseEnd)
		if !ok || !isSpellLabel(next.Node()) {
			return labels, c
		}
		labels = append(labels, markup.Squash(next.Text()))
		_, c = markup.Collect(next, markup.Line)
	}
}

// ActiveAbilities reads the abilities that close the stat block.
func ActiveAbilities(c markup.Cursor) ([]model.Action, markup.Cursor, error) {
	return AbilityBlock(c, markup.Section.OrTags("h1", "h2", "h3"), "activeAbilities")
}

// Sidebars passes over the rest of the content. Sidebar text is not
// extracted and the result is always empty.
func Sidebars(c markup.Cursor) ([]model.Sidebar, markup.Cursor) {
	for c.Next() {
	}
	return []model.Sidebar{}, c
}
