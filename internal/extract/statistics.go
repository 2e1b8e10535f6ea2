package extract

import (
	"regexp"
	"strings"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

var (
	perceptionPattern = regexp.MustCompile(`^Perception\s*(?P<perception>[+-]?\d+)\s*;?\s*(?P<senses>.*)$`)
	languagesPattern  = regexp.MustCompile(`^Languages\s*(?P<languages>[^;]*?)\s*(?:;\s*(?P<other>.*))?$`)
	skillPattern      = regexp.MustCompile(`^(?P<name>.+?)\s*(?P<modifier>[+-]\d+)\s*(?:\((?P<notes>.*)\))?$`)
	abilityModPattern = regexp.MustCompile(`^Str\s*(?P<str>[+-]\d+)\s*,\s*Dex\s*(?P<dex>[+-]\d+)\s*,\s*` +
		`Con\s*(?P<con>[+-]\d+)\s*,\s*Int\s*(?P<int>[+-]\d+)\s*,\s*` +
		`Wis\s*(?P<wis>[+-]\d+)\s*,\s*Cha\s*(?P<cha>[+-]\d+)`)
)

// statisticsEnd bounds the optional lookups between Perception and the
// ability modifier line.
var statisticsEnd = markup.Any(markup.Element("hr", "h2"), markup.Bold("Str"))

// Senses is the Perception line.
type Senses struct {
	Perception int
	Senses     []string
}

// Perception reads "Perception +N; sense, sense".
func Perception(c markup.Cursor) (Senses, markup.Cursor, error) {
	anchor, ok := c.Find(markup.Bold("Perception"))
	if !ok {
		return Senses{}, c, missing("perception")
	}
	run, end := line(anchor, markup.Line)
	m, ok := find(perceptionPattern, run)
	if !ok {
		return Senses{}, c, mismatch("perception", run)
	}
	perception, _ := m.integer("perception")
	return Senses{Perception: perception, Senses: splitList(m.str("senses"))}, end, nil
}

// Languages is the Languages line. Other holds the communication entries
// printed after the semicolon, such as telepathy.
type Languages struct {
	Languages []string
	Other     []string
}

// SpokenLanguages reads the optional "Languages a, b; other" line.
func SpokenLanguages(c markup.Cursor) (Languages, markup.Cursor) {
	langs := Languages{Languages: []string{}, Other: []string{}}
	anchor, ok := findBefore(c, markup.Bold("Languages"), statisticsEnd)
	if !ok {
		return langs, c
	}
	run, end := line(anchor, markup.Line)
	m, ok := find(languagesPattern, run)
	if !ok {
		return langs, c
	}
	langs.Languages = splitList(m.str("languages"))
	langs.Other = splitList(m.str("other"))
	return langs, end
}

// Skills reads the optional "Skills Name +N (notes), ..." line. An entry
// without a modifier is kept by name with a nil modifier.
func Skills(c markup.Cursor) ([]model.Header, markup.Cursor) {
	skills := []model.Header{}
	anchor, ok := findBefore(c, markup.Bold("Skills"), statisticsEnd)
	if !ok {
		return skills, c
	}
	run, end := line(anchor, markup.Line)
	for _, entry := range splitList(trimLabel(run, "Skills")) {
		m, ok := find(skillPattern, entry)
		if !ok {
			skills = append(skills, model.Header{Name: entry})
			continue
		}
		skills = append(skills, model.Header{
			Name:     m.str("name"),
			Text:     m.str("notes"),
			Modifier: m.intPtr("modifier"),
		})
	}
	return skills, end
}

// AbilityModifiers reads "Str +N, Dex +N, Con +N, Int +N, Wis +N, Cha +N".
func AbilityModifiers(c markup.Cursor) (model.AbilityMods, markup.Cursor, error) {
	anchor, ok := c.Find(markup.Bold("Str"))
	if !ok {
		return model.AbilityMods{}, c, missing("abilityMods")
	}
	run, end := line(anchor, markup.Line)
	m, ok := find(abilityModPattern, run)
	if !ok {
		return model.AbilityMods{}, c, mismatch("abilityMods", run)
	}
	var mods model.AbilityMods
	mods.Str, _ = m.integer("str")
	mods.Dex, _ = m.integer("dex")
	mods.Con, _ = m.integer("con")
	mods.Int, _ = m.integer("int")
	mods.Wis, _ = m.integer("wis")
	mods.Cha, _ = m.integer("cha")
	return mods, end, nil
}

// Items reads the optional "Items a, b (c, d)" line of the current section.
// The items line is sometimes printed among the interaction abilities, so
// the cursor is not advanced; AbilityBlock drops the line instead.
func Items(c markup.Cursor) ([]string, markup.Cursor) {
	anchor, ok := findBefore(c, markup.Bold("Items"), markup.Element("hr", "h2"))
	if !ok {
		return []string{}, c
	}
	run, _ := line(anchor, markup.Line)
	return splitList(trimLabel(run, "Items")), c
}

// Prose returns the squashed text between c and the first node matching
// stop, and a cursor at that node. Nothing is consumed when stop never
// matches.
func Prose(c markup.Cursor, stop markup.Predicate) (string, markup.Cursor) {
	end, ok := c.Find(stop)
	if !ok {
		return "", c
	}
	var sb strings.Builder
	for probe := c; probe.Node() != end.Node(); probe.Next() {
		if probe.IsText() {
			sb.WriteString(probe.Text())
		}
	}
	return markup.Squash(sb.String()), end
}
