package database

import (
	"context"
	"errors"
	"fmt"
)

// Changes counts how the documents of a collection moved between two
// writes, matched by id and compared by digest.
type Changes struct {
	Added     int
	Changed   int
	Removed   int
	Unchanged int
}

// Total returns the number of documents that differ.
func (c Changes) Total() int {
	return c.Added + c.Changed + c.Removed
}

// CompareDigests compares two id to digest maps as returned by
// Store.Digests. A nil before map counts every document as added.
func CompareDigests(before, after map[int]string) Changes {
	var c Changes
	for id, digest := range after {
		prev, ok := before[id]
		switch {
		case !ok:
			c.Added++
		case prev != digest:
			c.Changed++
		default:
			c.Unchanged++
		}
	}
	for id := range before {
		if _, ok := after[id]; !ok {
			c.Removed++
		}
	}
	return c
}

// Snapshot returns the digests of a collection, or nil when it has never
// been written.
func (s *Store) Snapshot(ctx context.Context, collection string) (map[int]string, error) {
	digests, err := s.Digests(ctx, collection)
	if errors.Is(err, ErrNoCollection) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot %s: %w", collection, err)
	}
	return digests, nil
}
