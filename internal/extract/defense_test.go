package extract

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
)

func TestArmorClass(t *testing.T) {
	t.Parallel()

	ac, next, err := ArmorClass(page(t, creatureBody))
	if err != nil {
		t.Fatalf("ArmorClass() error = %v", err)
	}
	if ac != (Armor{Value: 16, Notes: "(18 with shield raised)"}) {
		t.Errorf("ArmorClass() = %+v", ac)
	}
	if markup.Squash(next.Text()) != "Fort" {
		t.Errorf("cursor at %q, want Fort", next.Text())
	}
}

func TestSaves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want SavingThrows
	}{
		{
			name: "shared notes",
			body: `<b>Fort</b> +12, <b>Ref</b> +10, <b>Will</b> +14; +2 vs. poison<br>`,
			want: SavingThrows{Fortitude: 12, Reflex: 10, Will: 14, Notes: "+2 vs. poison"},
		},
		{
			name: "per save notes",
			body: creatureBody,
			want: SavingThrows{
				Fortitude:   5,
				Reflex:      7,
				ReflexNotes: "(+1 vs. traps)",
				Will:        3,
				Notes:       "+1 status to all saves vs. magic",
			},
		},
		{
			name: "no notes",
			body: `<b>Fort</b> -1, <b>Ref</b> +0, <b>Will</b> +2<br>`,
			want: SavingThrows{Fortitude: -1, Reflex: 0, Will: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			saves, _, err := Saves(page(t, tc.body))
			if err != nil {
				t.Fatalf("Saves() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, saves); diff != "" {
				t.Errorf("Saves() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSavesMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := Saves(page(t, `<b>Fort</b> +12, <b>Will</b> +14<br>`))
	if !errors.Is(err, ErrPatternMismatch) {
		t.Errorf("Saves() error = %v, want ErrPatternMismatch", err)
	}
}

var hpEcho = regexp.MustCompile(`^HP\s*\d`)

func TestHitPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want Vitals
	}{
		{
			name: "hardness peeled out",
			body: `<b>HP</b> 15; Hardness 5<br>`,
			want: Vitals{HitPoints: 15, Hardness: intPtr(5)},
		},
		{
			name: "regeneration peeled out",
			body: `<b>HP</b> 90, regeneration 10 (deactivated by acid or fire)<br>`,
			want: Vitals{HitPoints: 90, Regeneration: intPtr(10), DeactivatedBy: "acid or fire"},
		},
		{
			name: "deactivation list kept whole",
			body: `<b>HP</b> 90; <b>Hardness</b> 10, regeneration 10 (deactivated by good, cold iron)<br>`,
			want: Vitals{HitPoints: 90, Hardness: intPtr(10), Regeneration: intPtr(10), DeactivatedBy: "good, cold iron"},
		},
		{
			name: "deactivation without parentheses",
			body: `<b>HP</b> 60; regeneration 5, deactivated by fire; negative healing<br>`,
			want: Vitals{HitPoints: 60, Regeneration: intPtr(5), DeactivatedBy: "fire", Notes: "negative healing"},
		},
		{
			name: "hit points inside notes kept",
			body: `<b>HP</b> 30 (HP 40 when enlarged)<br>`,
			want: Vitals{HitPoints: 30, Notes: "(HP 40 when enlarged)"},
		},
		{
			name: "echo stripped",
			body: `<b>HP</b> 20; HP 20, negative healing<br>`,
			want: Vitals{HitPoints: 20, Notes: "negative healing"},
		},
		{
			name: "stops at defenses",
			body: creatureBody,
			want: Vitals{HitPoints: 6, Hardness: intPtr(2)},
		},
		{
			name: "zero hardness is not absent",
			body: `<b>HP</b> 40; Hardness 0, fast healing 2<br>`,
			want: Vitals{HitPoints: 40, Hardness: intPtr(0), Notes: "fast healing 2"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, _, err := HitPoints(page(t, tc.body))
			if err != nil {
				t.Fatalf("HitPoints() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, v); diff != "" {
				t.Errorf("HitPoints() mismatch (-want +got):\n%s", diff)
			}
			if hpEcho.MatchString(v.Notes) {
				t.Errorf("notes %q still carry an HP echo", v.Notes)
			}
		})
	}
}

func TestHitPointsMandatory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"missing", `<b>AC</b> 12<br>`, ErrAnchorNotFound},
		{"zero", `<b>HP</b> 0<br>`, ErrPatternMismatch},
		{"not a number", `<b>HP</b> see text<br>`, ErrPatternMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := HitPoints(page(t, tc.body))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("HitPoints() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDefenses(t *testing.T) {
	t.Parallel()

	_, c, err := HitPoints(page(t, creatureBody))
	if err != nil {
		t.Fatalf("HitPoints() error = %v", err)
	}
	d, next := Defenses(c)
	want := DefenseLists{
		Immunities:  []string{"fire", "sleep"},
		Weaknesses:  []string{"cold iron 3"},
		Resistances: []string{"physical 5 (except adamantine, silver)"},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("Defenses() mismatch (-want +got):\n%s", diff)
	}
	if !next.IsElement("br") {
		t.Errorf("cursor at %q, want br", next.Tag())
	}
}

func TestDefensesAnyOrder(t *testing.T) {
	t.Parallel()

	_, c, err := HitPoints(page(t, `<b>HP</b> 30; <b>Resistances</b> fire 5; <b>Immunities</b> poison<br>`))
	if err != nil {
		t.Fatalf("HitPoints() error = %v", err)
	}
	d, _ := Defenses(c)
	want := DefenseLists{
		Immunities:  []string{"poison"},
		Weaknesses:  []string{},
		Resistances: []string{"fire 5"},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("Defenses() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefensesAbsent(t *testing.T) {
	t.Parallel()

	v, c, err := HitPoints(page(t, `<b>HP</b> 8<br><b>Immunities</b> fire`))
	if err != nil {
		t.Fatalf("HitPoints() error = %v", err)
	}
	if v.HitPoints != 8 {
		t.Errorf("HitPoints = %d, want 8", v.HitPoints)
	}
	d, next := Defenses(c)
	if next != c || len(d.Immunities) != 0 {
		t.Errorf("Defenses() = %+v, read past the hit points line", d)
	}
}
