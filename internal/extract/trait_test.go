package extract

import "testing"

func TestTraitDescription(t *testing.T) {
	t.Parallel()

	_, c, err := SourceLink(page(t, traitBody))
	if err != nil {
		t.Fatalf("SourceLink() error = %v", err)
	}
	description, next := TraitDescription(c)
	if description == nil {
		t.Fatal("TraitDescription() = nil")
	}
	if want := "Effects with the fire trait deal fire damage. Fire rules apply."; *description != want {
		t.Errorf("TraitDescription() = %q, want %q", *description, want)
	}
	if !next.IsElement("h2") {
		t.Errorf("cursor at %q, want h2", next.Tag())
	}
}

func TestTraitDescriptionNotListed(t *testing.T) {
	t.Parallel()

	_, c, err := SourceLink(page(t, unlistedTraitBody))
	if err != nil {
		t.Fatalf("SourceLink() error = %v", err)
	}
	description, _ := TraitDescription(c)
	if description != nil {
		t.Errorf("TraitDescription() = %q, want nil", *description)
	}
}
