package extract

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// clauseLabels are bold labels that open a clause inside an ability rather
// than naming a new ability.
var clauseLabels = []string{
	"Trigger", "Effect", "Requirements", "Requirement", "Frequency", "Damage",
	"Critical Success", "Success", "Failure", "Critical Failure",
	"Saving Throw", "Onset", "Maximum Duration", "Range", "Area", "Targets",
	"Duration", "Cost",
}

// isClauseLabel also covers the numbered "Stage N" labels of afflictions.
func isClauseLabel(label string) bool {
	return slices.Contains(clauseLabels, label) || strings.HasPrefix(label, "Stage ")
}

// outcomeLabels open a degree-of-success line that continues the previous
// ability body.
var outcomeLabels = []string{"Critical Success", "Success", "Failure", "Critical Failure"}

// clauseEnd ends a Frequency, Trigger or Requirements clause: a semicolon,
// an unseparated Effect keyword, or the end of the body.
const clauseEnd = `\s*(?:;\s*|\s+Effect\b\s*|$)`

var abilityPattern = regexp.MustCompile(`(?s)^\s*` +
	`(?:(?P<cost>Single Action|Two Actions|Three Actions|Reaction|Free Action)\s*)?` +
	`(?:\((?P<traits>(?:[^()]|\([^()]*\))*)\)\s*)?` +
	`(?:Frequency\s*(?P<frequency>.*?)` + clauseEnd + `)?` +
	`(?:Trigger\s*(?P<trigger>.*?)` + clauseEnd + `)?` +
	`(?:Requirements?\s*(?P<requirements>.*?)` + clauseEnd + `)?` +
	`(?:Effect\s*)?` +
	`(?P<description>.*?)\s*$`)

// abilityLines walks from c to the first node matching end and returns the
// ability names and bodies found on the way. Names are bold labels that do
// not open a clause. Bodies are the text of each line; a line opened by a
// degree-of-success label is appended to the previous body.
func abilityLines(c markup.Cursor, end markup.Stop) (names, bodies []string, next markup.Cursor) {
	var sb strings.Builder
	lead := ""
	flush := func() {
		body := markup.Squash(sb.String())
		sb.Reset()
		defer func() { lead = "" }()
		if body == "" {
			return
		}
		if len(bodies) > 0 && slices.Contains(outcomeLabels, lead) {
			bodies[len(bodies)-1] += " " + body
			return
		}
		bodies = append(bodies, body)
	}

	for !c.Done() {
		n := c.Node()
		if end.Matches(n) {
			break
		}
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case markup.IsActionIcon(n):
			sb.WriteString(" " + markup.Attr(n, "alt") + " ")
		case n.Type == html.ElementNode && n.Data == "br":
			flush()
		case markup.AnyBold(n):
			label := markup.Squash(markup.Text(n))
			if lead == "" && strings.TrimSpace(sb.String()) == "" {
				lead = label
			}
			if label != "" && !isClauseLabel(label) {
				names = append(names, label)
			}
		}
		c.Next()
	}
	flush()
	return names, bodies, c
}

// AbilityBlock reads the abilities printed from c up to the first node
// matching end, usually the next section break. Names and bodies are zipped
// in order and an "Items" entry is dropped. A block whose names and bodies
// do not pair up, or whose non-empty body has no recognizable part, is a
// template break.
func AbilityBlock(c markup.Cursor, end markup.Stop, field string) ([]model.Action, markup.Cursor, error) {
	names, bodies, next := abilityLines(c, end)
	if len(names) != len(bodies) {
		return nil, c, broken(field, strings.Join(bodies, " | "),
			"%d ability names for %d bodies", len(names), len(bodies))
	}

	actions := []model.Action{}
	for i, name := range names {
		if name == "Items" {
			continue
		}
		body := strings.Replace(bodies[i], name, "", 1)
		action, err := parseAbility(name, body)
		if err != nil {
			return nil, c, broken(field, bodies[i], "ability %q: %v", name, err)
		}
		actions = append(actions, action)
	}
	return actions, next, nil
}

var errNoComponents = errors.New("no recognizable component")

// parseAbility reads one ability body. A name printed without a body
// yields an action with an empty description.
func parseAbility(name, body string) (model.Action, error) {
	if strings.TrimSpace(body) == "" {
		return model.Action{Name: name, Traits: []string{}}, nil
	}
	m, ok := find(abilityPattern, body)
	if !ok {
		return model.Action{}, errNoComponents
	}
	cost, err := model.ParseActionCost(m.str("cost"))
	if err != nil {
		return model.Action{}, err
	}
	action := model.Action{
		Cost:         cost,
		Name:         name,
		Traits:       splitList(m.str("traits")),
		Frequency:    m.optional("frequency"),
		Trigger:      m.str("trigger"),
		Requirements: m.str("requirements"),
		Description:  m.str("description"),
	}
	if action.Description == "" && action.Trigger == "" && action.Requirements == "" &&
		action.Cost == model.CostNone && len(action.Traits) == 0 && action.Frequency == nil {
		return model.Action{}, errNoComponents
	}
	return action, nil
}

// Defensive holds the abilities printed after the hit points line.
type Defensive struct {
	Automatic []model.Action
	Reactive  []model.Action
}

// DefensiveAbilities reads the ability block up to the next section break
// and splits it: reactions and triggered abilities are reactive, the rest
// automatic.
func DefensiveAbilities(c markup.Cursor) (Defensive, markup.Cursor, error) {
	actions, next, err := AbilityBlock(c, markup.Section.OrTags("h2"), "automaticAbilities")
	if err != nil {
		return Defensive{}, c, err
	}
	d := Defensive{Automatic: []model.Action{}, Reactive: []model.Action{}}
	for _, a := range actions {
		if a.IsReactive() {
			d.Reactive = append(d.Reactive, a)
		} else {
			d.Automatic = append(d.Automatic, a)
		}
	}
	return d, next, nil
}
