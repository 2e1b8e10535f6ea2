package model

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSourceValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  Source
		wantErr bool
	}{
		{"valid", Source{Book: "Bestiary", Page: 12}, false},
		{"zero page", Source{Book: "Bestiary", Page: 0}, true},
		{"negative page", Source{Book: "Bestiary", Page: -3}, true},
		{"blank book", Source{Book: "  ", Page: 4}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.source.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSource) {
				t.Errorf("Validate() error = %v, want ErrInvalidSource", err)
			}
		})
	}
}

func TestToDocumentIsDeterministic(t *testing.T) {
	t.Parallel()

	build := func() *Creature {
		c := NewCreature(7)
		c.Name = "Goblin Warrior"
		c.Level = -1
		c.Source = Source{Book: "Bestiary", Page: 180}
		c.Languages = []string{"Common", "Goblin", "Common"}
		return c
	}

	first, err := ToDocument(build())
	if err != nil {
		t.Fatalf("ToDocument() error = %v", err)
	}
	second, err := ToDocument(build())
	if err != nil {
		t.Fatalf("ToDocument() error = %v", err)
	}
	if !bytes.Equal(first.Body, second.Body) {
		t.Errorf("documents differ:\n%s\n%s", first.Body, second.Body)
	}
	if first.ID != 7 || first.Name != "Goblin Warrior" {
		t.Errorf("document identity = %d/%q", first.ID, first.Name)
	}
	if !strings.Contains(string(first.Body), `"languages":["Common","Goblin","Common"]`) {
		t.Errorf("list order or duplicates lost: %s", first.Body)
	}
}

func TestToDocumentKeepsAbsentDistinctFromZero(t *testing.T) {
	t.Parallel()

	zero := 0
	c := NewCreature(1)
	c.Hardness = &zero

	doc, err := ToDocument(c)
	if err != nil {
		t.Fatalf("ToDocument() error = %v", err)
	}
	body := string(doc.Body)
	if !strings.Contains(body, `"hardness":0`) {
		t.Errorf("explicit zero hardness missing: %s", body)
	}
	if !strings.Contains(body, `"regeneration":null`) {
		t.Errorf("absent regeneration should be null: %s", body)
	}
	if !strings.Contains(body, `"family":"none"`) {
		t.Errorf("default family should be %q: %s", NoFamily, body)
	}
	if strings.Contains(body, `:null,"weaknesses"`) {
		t.Errorf("lists must not serialize as null: %s", body)
	}
}

func TestToDocuments(t *testing.T) {
	t.Parallel()

	traits := []*Trait{NewTrait(1), NewTrait(2)}
	traits[0].Name = "Fire"
	traits[1].Name = "Cold"

	docs, err := ToDocuments(traits)
	if err != nil {
		t.Fatalf("ToDocuments() error = %v", err)
	}
	if len(docs) != 2 || docs[0].Name != "Fire" || docs[1].Name != "Cold" {
		t.Errorf("ToDocuments() = %+v", docs)
	}
}
