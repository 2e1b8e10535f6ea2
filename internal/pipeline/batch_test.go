package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leolwelter/2eTools-scraper/internal/extract"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// echoAssembler builds a trait named after its page.
func echoAssembler(_ context.Context, id int, page string) (*model.Trait, error) {
	tr := model.NewTrait(id)
	tr.Name = page
	return tr, nil
}

func ids(traits []*model.Trait) []int {
	out := make([]int, len(traits))
	for i, tr := range traits {
		out[i] = tr.ID
	}
	return out
}

func TestBatchProcessorProcessBatch(t *testing.T) {
	t.Parallel()

	t.Run("assigns ids by position", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(echoAssembler)
		result, err := bp.ProcessBatch(context.Background(), []string{"a", "b", "c"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]int{1, 2, 3}, ids(result.Records)); diff != "" {
			t.Errorf("ids mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("placeholders are skipped without id drift", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(echoAssembler)
		result, err := bp.ProcessBatch(context.Background(), []string{"a", "", "c", "", "e"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]int{1, 3, 5}, ids(result.Records)); diff != "" {
			t.Errorf("ids mismatch (-want +got):\n%s", diff)
		}
		if result.Placeholders != 2 {
			t.Errorf("Placeholders = %d, want 2", result.Placeholders)
		}
		for _, tr := range result.Records {
			if tr.Name == "" {
				t.Errorf("record %d built from a placeholder", tr.ID)
			}
		}
	})

	t.Run("failures are collected and the batch continues", func(t *testing.T) {
		t.Parallel()

		fieldErr := &extract.FieldError{Field: "source", Reason: extract.ErrAnchorNotFound}
		assemble := func(ctx context.Context, id int, page string) (*model.Trait, error) {
			if page == "bad" {
				return nil, &StepError{Step: "source", Err: fieldErr}
			}
			return echoAssembler(ctx, id, page)
		}

		bp := NewBatchProcessor(assemble)
		result, err := bp.ProcessBatch(context.Background(), []string{"a", "bad", "c"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]int{1, 3}, ids(result.Records)); diff != "" {
			t.Errorf("ids mismatch (-want +got):\n%s", diff)
		}
		if len(result.Failures) != 1 {
			t.Fatalf("expected 1 failure, got %d", len(result.Failures))
		}
		f := result.Failures[0]
		if f.ID != 2 || f.Step != "source" || f.Field != "source" {
			t.Errorf("failure = %+v", f)
		}
		if !errors.Is(f.Err, extract.ErrAnchorNotFound) {
			t.Errorf("failure error = %v", f.Err)
		}
	})

	t.Run("stops between pages on cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		assemble := func(ctx context.Context, id int, page string) (*model.Trait, error) {
			if id == 2 {
				cancel()
			}
			return echoAssembler(ctx, id, page)
		}

		bp := NewBatchProcessor(assemble)
		result, err := bp.ProcessBatch(ctx, []string{"a", "b", "c", "d"})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if diff := cmp.Diff([]int{1, 2}, ids(result.Records)); diff != "" {
			t.Errorf("ids mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("runs real assemblers", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(NewTraitAssembler())
		result, err := bp.ProcessBatch(context.Background(), []string{"", firePage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Records) != 1 || result.Records[0].ID != 2 || result.Records[0].Name != "Fire" {
			t.Errorf("records = %+v", result.Records)
		}
	})
}
