package database

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// Sink receives the documents of one collection.
type Sink interface {
	// Write replaces collection with docs, indexed on indexField.
	Write(ctx context.Context, docs []model.Document, collection, indexField string) error
}

var (
	_ Sink = (*Store)(nil)
	_ Sink = (*FileSink)(nil)
)

// FileSink writes documents to a file, one JSON document per line.
type FileSink struct {
	path string
}

// NewFileSink returns a sink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the output file path.
func (s *FileSink) Path() string { return s.path }

// Write replaces the file with docs. The collection and index field are not
// recorded in the file.
func (s *FileSink) Write(ctx context.Context, docs []model.Document, _, _ string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close() //nolint:errcheck // closed explicitly below

	w := bufio.NewWriter(f)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := w.Write(doc.Body); err != nil {
			return fmt.Errorf("failed to write document %d: %w", doc.ID, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write document %d: %w", doc.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return f.Close()
}
