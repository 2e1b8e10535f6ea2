package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/leolwelter/2eTools-scraper/internal/database"
	"github.com/leolwelter/2eTools-scraper/internal/extract"
	"github.com/leolwelter/2eTools-scraper/internal/model"
	"github.com/leolwelter/2eTools-scraper/internal/pipeline"
)

func testSummary() *Summary {
	s := NewSummary(model.KindCreature)
	s.Collection = "creatures"
	s.Destination = "/tmp/2etools.db"
	s.StartedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.FinishedAt = s.StartedAt.Add(90 * time.Second)

	result := &pipeline.BatchResult[*model.Creature]{
		Records:      []*model.Creature{model.NewCreature(1), model.NewCreature(3)},
		Placeholders: 1,
		Failures: []pipeline.Failure{{
			ID:    4,
			Step:  "vitals",
			Field: "hitPoints",
			Err:   &extract.FieldError{Field: "hitPoints", Reason: extract.ErrAnchorNotFound},
		}},
	}
	Record(s, 4, result)
	return s
}

func TestSummary(t *testing.T) {
	t.Parallel()

	t.Run("new summary has a run id", func(t *testing.T) {
		t.Parallel()

		a, b := NewSummary(model.KindTrait), NewSummary(model.KindTrait)
		if a.RunID == "" || a.RunID == b.RunID {
			t.Errorf("run ids %q and %q", a.RunID, b.RunID)
		}
		if a.Duration() != 0 {
			t.Errorf("unfinished Duration() = %v", a.Duration())
		}
	})

	t.Run("record copies batch counts", func(t *testing.T) {
		t.Parallel()

		s := testSummary()
		if s.Pages != 4 || s.Records != 2 || s.Placeholders != 1 || len(s.Failures) != 1 {
			t.Errorf("summary = %+v", s)
		}
		if s.Duration() != 90*time.Second {
			t.Errorf("Duration() = %v", s.Duration())
		}
	})

	t.Run("status", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			s    Summary
			want string
		}{
			{"complete", Summary{Pages: 2, Records: 2}, "complete"},
			{"placeholders", Summary{Pages: 2, Records: 1, Placeholders: 1}, "partial"},
			{"failures", Summary{Pages: 2, Records: 1, Failures: []pipeline.Failure{{ID: 2}}}, "partial"},
			{"nothing assembled", Summary{Pages: 2}, "empty"},
			{"no pages", Summary{}, "complete"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				if got := tt.s.Status(); got != tt.want {
					t.Errorf("Status() = %q, want %q", got, tt.want)
				}
			})
		}
	})
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes counts and failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := testSummary()
		if _, err := NewSimpleWriter(&buf).Write(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"2eTools scrape: creature",
			s.RunID,
			"records:      2",
			"placeholders: 1",
			"FAILURES",
			"ID",
			"vitals/hitPoints",
			"anchor not found",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("omits failure section when clean", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := NewSummary(model.KindTrait)
		s.Pages, s.Records = 3, 3
		if _, err := NewSimpleWriter(&buf).Write(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "FAILURES") {
			t.Error("expected no failure section")
		}
	})

	t.Run("truncates long failure lists unless verbose", func(t *testing.T) {
		t.Parallel()

		s := NewSummary(model.KindTrait)
		for i := 1; i <= maxListed+5; i++ {
			s.Failures = append(s.Failures, pipeline.Failure{ID: i, Step: "source", Err: errors.New("bad")})
		}

		var short, long bytes.Buffer
		if _, err := NewSimpleWriter(&short).Write(s); err != nil {
			t.Fatal(err)
		}
		if _, err := NewSimpleWriter(&long, WithVerbose(true)).Write(s); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(short.String(), "... and 5 more") {
			t.Errorf("expected truncation notice:\n%s", short.String())
		}
		if strings.Contains(long.String(), "more") {
			t.Errorf("verbose output truncated:\n%s", long.String())
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := testSummary()
		s.Warn("trait index unavailable")
		n, err := NewMarkdownWriter(&buf).Write(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n == 0 {
			t.Error("expected non-zero byte count")
		}

		out := buf.String()
		for _, want := range []string{
			"# 2eTools Scrape Report",
			"## Pages",
			"## Warnings",
			"trait index unavailable",
			"## Failures",
			"hitPoints",
			"mermaid",
			"[!WARNING]",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("clean run gets a tip and no chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := NewSummary(model.KindAncestry)
		s.Pages, s.Records = 2, 2
		if _, err := NewMarkdownWriter(&buf).Write(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "[!TIP]") {
			t.Errorf("expected tip alert:\n%s", out)
		}
		if strings.Contains(out, "mermaid") {
			t.Error("expected no pie chart")
		}
		if !strings.Contains(out, "No failed pages.") {
			t.Error("expected empty failure section")
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write(*Summary) (int, error) { return 0, errors.New("disk full") }

func TestWritersChanges(t *testing.T) {
	t.Parallel()

	s := testSummary()
	s.Changes = &database.Changes{Added: 1, Changed: 2, Removed: 3, Unchanged: 4}

	var text bytes.Buffer
	if _, err := NewSimpleWriter(&text).Write(s); err != nil {
		t.Fatalf("SimpleWriter.Write() error = %v", err)
	}
	if !strings.Contains(text.String(), "changes:      +1 ~2 -3 (4 unchanged)") {
		t.Errorf("text summary missing changes:\n%s", text.String())
	}

	var md bytes.Buffer
	if _, err := NewMarkdownWriter(&md).Write(s); err != nil {
		t.Fatalf("MarkdownWriter.Write() error = %v", err)
	}
	if !strings.Contains(md.String(), "## Changes") {
		t.Errorf("markdown report missing changes:\n%s", md.String())
	}

	s.Changes = nil
	text.Reset()
	if _, err := NewSimpleWriter(&text).Write(s); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(text.String(), "changes:") {
		t.Errorf("file runs should not report changes:\n%s", text.String())
	}
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to every writer", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		mw := NewMultiWriter(NewSimpleWriter(&a), NewMarkdownWriter(&b))
		n, err := mw.Write(testSummary())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Len() == 0 || b.Len() == 0 || n == 0 {
			t.Errorf("a=%d b=%d n=%d", a.Len(), b.Len(), n)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var after bytes.Buffer
		mw := NewMultiWriter(failingWriter{}, NewSimpleWriter(&after))
		if _, err := mw.Write(testSummary()); err == nil {
			t.Fatal("expected error")
		}
		if after.Len() != 0 {
			t.Error("writer after failure should not run")
		}
	})
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
