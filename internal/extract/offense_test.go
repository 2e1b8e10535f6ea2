package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leolwelter/2eTools-scraper/internal/model"
)

func TestSpeed(t *testing.T) {
	t.Parallel()

	speed, next := Speed(page(t, creatureBody))
	if speed != "25 feet, climb 10 feet" {
		t.Errorf("Speed() = %q", speed)
	}
	if !next.IsElement("br") {
		t.Errorf("cursor at %q, want br", next.Tag())
	}
}

func TestStrikes(t *testing.T) {
	t.Parallel()

	_, c := Speed(page(t, creatureBody))
	strikes, next, err := Strikes(c)
	if err != nil {
		t.Fatalf("Strikes() error = %v", err)
	}
	want := []model.Strike{
		{
			Action: model.Action{
				Cost:   model.CostSingleAction,
				Name:   "dogslicer",
				Traits: []string{"agile", "backstabber", "finesse"},
				Damage: strPtr("1d6 slashing"),
			},
			Kind:           model.StrikeMelee,
			Attack:         7,
			MultipleAttack: []string{},
		},
		{
			Action: model.Action{
				Cost:   model.CostSingleAction,
				Name:   "shortbow",
				Traits: []string{"deadly d10", "range increment 60 feet", "reload 0"},
				Damage: strPtr("1d6 piercing"),
			},
			Kind:           model.StrikeRanged,
			Attack:         6,
			MultipleAttack: []string{"+1", "-4"},
		},
	}
	if diff := cmp.Diff(want, strikes); diff != "" {
		t.Errorf("Strikes() mismatch (-want +got):\n%s", diff)
	}
	if next.IsElement("span") {
		t.Error("cursor left on a strike span")
	}
}

func TestStrikeWithEffect(t *testing.T) {
	t.Parallel()

	body := `<b>Speed</b> 30 feet<br><span class="hanging-indent"><b>Melee</b> <img alt="Single Action" class="actiondark"> +1 striking longsword +14 (<a>versatile P</a>), <b>Damage</b> 2d8+6 slashing; <b>Effect</b> Grab</span>`
	_, c := Speed(page(t, body))
	strikes, _, err := Strikes(c)
	if err != nil {
		t.Fatalf("Strikes() error = %v", err)
	}
	if len(strikes) != 1 {
		t.Fatalf("Strikes() returned %d strikes", len(strikes))
	}
	s := strikes[0]
	if s.Name != "+1 striking longsword" || s.Attack != 14 {
		t.Errorf("strike = %q %+d", s.Name, s.Attack)
	}
	if s.Damage == nil || *s.Damage != "2d8+6 slashing" {
		t.Errorf("Damage = %v", s.Damage)
	}
	if s.Effect == nil || *s.Effect != "Grab" {
		t.Errorf("Effect = %v", s.Effect)
	}
}

func TestStrikesTemplateBreak(t *testing.T) {
	t.Parallel()

	body := `<b>Speed</b> 30 feet<br><span class="hanging-indent"><b>Melee</b> claw, Damage 1d4</span>`
	_, c := Speed(page(t, body))
	_, _, err := Strikes(c)
	if !errors.Is(err, ErrTemplateBreak) {
		t.Errorf("Strikes() error = %v, want ErrTemplateBreak", err)
	}
}

func TestStrikesSkipOtherSpans(t *testing.T) {
	t.Parallel()

	body := `<b>Speed</b> 30 feet<br><span class="hanging-indent">Flavor line</span><br>` +
		`<span class="hanging-indent"><b>Melee</b> fist +3, <b>Damage</b> 1d4</span>`
	_, c := Speed(page(t, body))
	strikes, _, err := Strikes(c)
	if err != nil {
		t.Fatalf("Strikes() error = %v", err)
	}
	if len(strikes) != 1 || strikes[0].Name != "fist" || strikes[0].Cost != model.CostNone {
		t.Errorf("Strikes() = %+v", strikes)
	}
}

func TestSpellsThenActiveAbilities(t *testing.T) {
	t.Parallel()

	_, c := Speed(page(t, creatureBody))
	_, c, err := Strikes(c)
	if err != nil {
		t.Fatalf("Strikes() error = %v", err)
	}

	labels, c := Spells(c)
	if diff := cmp.Diff([]string{"Occult Innate Spells"}, labels); diff != "" {
		t.Errorf("Spells() mismatch (-want +got):\n%s", diff)
	}

	actions, next, err := ActiveAbilities(c)
	if err != nil {
		t.Fatalf("ActiveAbilities() error = %v", err)
	}
	var names []string
	for _, a := range actions {
		names = append(names, a.Name)
	}
	if diff := cmp.Diff([]string{"Goblin Scuttle", "Breath of Soot"}, names); diff != "" {
		t.Errorf("active ability names mismatch (-want +got):\n%s", diff)
	}
	if !next.IsElement("h2") {
		t.Errorf("cursor at %q, want h2", next.Tag())
	}

	sidebars, end := Sidebars(next)
	if len(sidebars) != 0 || sidebars == nil {
		t.Errorf("Sidebars() = %#v, want empty list", sidebars)
	}
	if !end.Done() {
		t.Error("Sidebars() did not reach the end of the content")
	}
}

func TestSpellsRitualAndFormulaLines(t *testing.T) {
	t.Parallel()

	body := strings.Replace(creatureBody, `<b>Goblin Scuttle</b>`,
		`<b>Occult Rituals</b> DC 25; <b>1st</b> <a><i>commune</i></a><br>`+
			`<b>Alchemical Formulas</b> <b>1st</b> <a><i>lesser elixir of life</i></a><br>`+
			`<b>Goblin Scuttle</b>`, 1)

	_, c := Speed(page(t, body))
	_, c, err := Strikes(c)
	if err != nil {
		t.Fatalf("Strikes() error = %v", err)
	}

	labels, c := Spells(c)
	want := []string{"Occult Innate Spells", "Occult Rituals", "Alchemical Formulas"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("Spells() mismatch (-want +got):\n%s", diff)
	}

	actions, _, err := ActiveAbilities(c)
	if err != nil {
		t.Fatalf("ActiveAbilities() error = %v", err)
	}
	var names []string
	for _, a := range actions {
		names = append(names, a.Name)
	}
	if diff := cmp.Diff([]string{"Goblin Scuttle", "Breath of Soot"}, names); diff != "" {
		t.Errorf("active ability names mismatch (-want +got):\n%s", diff)
	}
}

func TestSpellsNone(t *testing.T) {
	t.Parallel()

	c := page(t, `<br><b>Grab</b> <img alt="Single Action" class="actiondark"> text<hr>`)
	labels, next := Spells(c)
	if len(labels) != 0 || next != c {
		t.Errorf("Spells() = %v, moved %v", labels, next != c)
	}
}
