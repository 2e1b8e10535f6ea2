package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leolwelter/2eTools-scraper/internal/database"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// seedTraits writes a traits collection into a new database directory.
func seedTraits(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	opts := database.DefaultOptions()
	opts.RunID = "seed-run"
	store, err := database.Open(dir, opts)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	traits := make([]*model.Trait, len(names))
	for i, name := range names {
		traits[i] = model.NewTrait(i + 1)
		traits[i].Name = name
	}
	docs, err := model.ToDocuments(traits)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Write(context.Background(), docs, "traits", model.IndexField); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return dir
}

// The subtests share one database file and run in order.
func TestDBCmd(t *testing.T) {
	t.Parallel()

	dir := seedTraits(t, "Fire", "Cold")

	t.Run("lists collections", func(t *testing.T) {
		out, err := execute(t, "db", "--db", dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"traits", "seed-run", "Documents"} {
			if !strings.Contains(out, want) {
				t.Errorf("listing missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("counts a collection", func(t *testing.T) {
		out, err := execute(t, "db", "traits", "--db", dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(out) != "2" {
			t.Errorf("count = %q, want 2", out)
		}
	})

	t.Run("finds documents by name", func(t *testing.T) {
		out, err := execute(t, "db", "traits", "Cold", "--db", dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var tr model.Trait
		if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &tr); err != nil {
			t.Fatalf("bad output %q: %v", out, err)
		}
		if tr.ID != 2 || tr.Name != "Cold" {
			t.Errorf("found %+v", tr)
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		if _, err := execute(t, "db", "traits", "Acid", "--db", dir); err == nil {
			t.Error("expected error for a missing document")
		}
	})

	t.Run("unknown collection fails", func(t *testing.T) {
		if _, err := execute(t, "db", "creatures", "--db", dir); err == nil {
			t.Error("expected error for a missing collection")
		}
	})
}

func TestDBCmdMissingDatabase(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "db", "--db", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "database not found") {
		t.Errorf("expected database not found, got %v", err)
	}
}
