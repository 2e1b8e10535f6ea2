package extract

import (
	"regexp"
	"strings"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
)

var (
	acPattern = regexp.MustCompile(`^AC\s*(?P<ac>\d+)\s*(?P<notes>.*)$`)

	savePattern = regexp.MustCompile(`^Fort\s*(?P<fort>[+-]\d+)\s*(?P<fortNotes>(?:\([^)]*\)|[^,])*?)\s*,\s*` +
		`Ref\s*(?P<ref>[+-]\d+)\s*(?P<refNotes>(?:\([^)]*\)|[^,])*?)\s*,\s*` +
		`Will\s*(?P<will>[+-]\d+)\s*(?P<willNotes>[^;]*?)\s*(?:;\s*(?P<notes>.*?))?\s*$`)

	hpPattern           = regexp.MustCompile(`^HP\s*(?P<hp>\d+)\s*(?P<notes>.*)$`)
	hpEchoPattern       = regexp.MustCompile(`^[\s;,]*HP\s*\d+\s*[,;]+`)
	hardnessPattern     = regexp.MustCompile(`[hH]ardness\s+(?P<hardness>\d+)`)
	regenerationPattern = regexp.MustCompile(`[rR]egeneration\s+(?P<regeneration>\d+)\s*,?\s*` +
		`(?:\(deactivated by\s*(?P<deactivated>[^)]+)\)|deactivated by\s*(?P<deactivatedBare>[^;]+))`)
	separatorRunPattern = regexp.MustCompile(`\s*([;,])(?:\s*[;,])+\s*`)
)

var defenseLabels = []string{"Immunities", "Weaknesses", "Resistances"}

// Armor is the AC entry of the defense line.
type Armor struct {
	Value int
	Notes string
}

// ArmorClass reads "AC N (notes);" up to the Fort label.
func ArmorClass(c markup.Cursor) (Armor, markup.Cursor, error) {
	anchor, ok := c.Find(markup.Bold("AC"))
	if !ok {
		return Armor{}, c, missing("ac")
	}
	run, end := line(anchor, markup.Line.OrBold("Fort"))
	m, ok := find(acPattern, run)
	if !ok {
		return Armor{}, c, mismatch("ac", run)
	}
	ac, _ := m.integer("ac")
	return Armor{Value: ac, Notes: trimNotes(m.str("notes"))}, end, nil
}

// SavingThrows is the Fort/Ref/Will line with its per-save and shared notes.
type SavingThrows struct {
	Fortitude      int
	FortitudeNotes string
	Reflex         int
	ReflexNotes    string
	Will           int
	WillNotes      string
	Notes          string
}

// Saves reads "Fort +N (notes), Ref +N (notes), Will +N (notes); notes".
func Saves(c markup.Cursor) (SavingThrows, markup.Cursor, error) {
	anchor, ok := c.Find(markup.Bold("Fort"))
	if !ok {
		return SavingThrows{}, c, missing("saves")
	}
	run, end := line(anchor, markup.Line)
	m, ok := find(savePattern, run)
	if !ok {
		return SavingThrows{}, c, mismatch("saves", run)
	}
	var s SavingThrows
	s.Fortitude, _ = m.integer("fort")
	s.Reflex, _ = m.integer("ref")
	s.Will, _ = m.integer("will")
	s.FortitudeNotes = m.str("fortNotes")
	s.ReflexNotes = m.str("refNotes")
	s.WillNotes = m.str("willNotes")
	s.Notes = m.str("notes")
	return s, end, nil
}

// Vitals is the hit points line with hardness and regeneration peeled out
// of its notes.
type Vitals struct {
	HitPoints     int
	Notes         string
	Hardness      *int
	Regeneration  *int
	DeactivatedBy string
}

// HitPoints reads "HP N; notes" up to the end of the line or the first
// defense label. The returned cursor sits on that label when one follows.
// A leading "HP N;" repeat is dropped from the notes; an HP figure inside
// the notes, such as "(HP 40 when enlarged)", is kept.
func HitPoints(c markup.Cursor) (Vitals, markup.Cursor, error) {
	anchor, ok := c.Find(markup.Bold("HP"))
	if !ok {
		return Vitals{}, c, missing("hitPoints")
	}
	run, end := line(anchor, markup.Line.OrBold(defenseLabels...))
	m, ok := find(hpPattern, run)
	if !ok {
		return Vitals{}, c, mismatch("hitPoints", run)
	}
	hp, _ := m.integer("hp")
	if hp <= 0 {
		return Vitals{}, c, mismatch("hitPoints", run)
	}

	v := Vitals{HitPoints: hp}
	notes := hpEchoPattern.ReplaceAllString(m.str("notes"), "")
	if rm, ok := find(regenerationPattern, notes); ok {
		v.Regeneration = rm.intPtr("regeneration")
		v.DeactivatedBy = rm.str("deactivated")
		if v.DeactivatedBy == "" {
			v.DeactivatedBy = rm.str("deactivatedBare")
		}
		notes = regenerationPattern.ReplaceAllString(notes, "")
	}
	if hm, ok := find(hardnessPattern, notes); ok {
		v.Hardness = hm.intPtr("hardness")
		notes = hardnessPattern.ReplaceAllString(notes, "")
	}
	v.Notes = trimNotes(notes)
	return v, end, nil
}

// trimNotes collapses separator runs left behind by removed clauses and
// trims separators from both ends.
func trimNotes(notes string) string {
	notes = separatorRunPattern.ReplaceAllString(notes, "$1 ")
	return markup.Squash(strings.Trim(notes, " ;,"))
}

// DefenseLists holds the immunities, weaknesses and resistances.
type DefenseLists struct {
	Immunities  []string
	Weaknesses  []string
	Resistances []string
}

// Defenses reads the optional "Immunities ...; Weaknesses ...; Resistances
// ..." clauses in any order from the current line.
func Defenses(c markup.Cursor) (DefenseLists, markup.Cursor) {
	d := DefenseLists{Immunities: []string{}, Weaknesses: []string{}, Resistances: []string{}}
	anchor, ok := findBefore(c, markup.BoldIn(defenseLabels...), markup.Element("br", "hr"))
	if !ok {
		return d, c
	}
	run, end := line(anchor, markup.Line)
	for _, clause := range splitOutside(run, ';') {
		label, rest, _ := strings.Cut(clause, " ")
		switch label {
		case "Immunities":
			d.Immunities = append(d.Immunities, splitList(rest)...)
		case "Weaknesses":
			d.Weaknesses = append(d.Weaknesses, splitList(rest)...)
		case "Resistances":
			d.Resistances = append(d.Resistances, splitList(rest)...)
		}
	}
	return d, end
}
