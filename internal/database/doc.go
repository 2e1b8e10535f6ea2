// Package database stores record documents.
//
// Store keeps one SQLite table per collection (modernc.org/sqlite, no cgo).
// Writing a collection replaces it: the table is dropped, recreated with an
// expression index on the index field and bulk-loaded inside a single
// transaction, so a failed write leaves the previous collection intact.
// FileSink writes the same documents as JSON lines instead.
//
// Every stored document carries a SHA3 digest; CompareDigests turns two
// snapshots of a collection into added, changed and removed counts.
package database
