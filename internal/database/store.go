package database

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// FileName is the database file created inside the database directory.
const FileName = "2etools.db"

var (
	// ErrInvalidIdentifier is returned for collection or field names that
	// cannot be used as SQL identifiers.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNoCollection is returned when a collection has never been written.
	ErrNoCollection = errors.New("collection not found")
)

// identifier restricts collection and field names; they are spliced into
// SQL text.
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store is a SQLite document store with one table per collection.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// runID tags every collection written through this store.
	runID string

	logger *slog.Logger
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool

	// RunID tags the collections written by this run. A random UUID is
	// used when empty.
	RunID string

	// Logger receives write progress. slog.Default is used when nil.
	Logger *slog.Logger
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the store in dbDir.
func Open(dbDir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
		runID:  opts.RunID,
		logger: opts.Logger,
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string { return s.dbPath }

// RunID returns the run id written with each collection.
func (s *Store) RunID() string { return s.runID }

func (s *Store) createTables() error {
	schema := `
	-- One row per collection table
	CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		index_field TEXT NOT NULL,
		run_id TEXT NOT NULL,
		count INTEGER NOT NULL,
		written_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// table returns the quoted table name of a collection.
func table(collection string) string {
	return `"col_` + collection + `"`
}

func checkIdentifiers(names ...string) error {
	for _, name := range names {
		if !identifier.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
	}
	return nil
}

// Digest returns the hex SHA3-256 digest of a document body.
func Digest(body []byte) string {
	sum := sha3.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Write replaces collection with docs: the table is dropped, recreated,
// indexed on json_extract(doc, '$.<indexField>') and loaded in one
// transaction. Any failure rolls the whole write back.
func (s *Store) Write(ctx context.Context, docs []model.Document, collection, indexField string) (err error) {
	if err := checkIdentifiers(collection, indexField); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	tbl := table(collection)
	stmts := []string{
		`DROP TABLE IF EXISTS ` + tbl,
		`CREATE TABLE ` + tbl + ` (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			doc TEXT NOT NULL,
			digest TEXT NOT NULL
		)`,
		`CREATE INDEX "idx_` + collection + `_` + indexField + `" ON ` + tbl +
			` (json_extract(doc, '$.` + indexField + `'))`,
	}
	for _, stmt := range stmts {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to prepare collection %s: %w", collection, err)
		}
	}

	insert, err := tx.PrepareContext(ctx, `INSERT INTO `+tbl+` (id, name, doc, digest) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer insert.Close() //nolint:errcheck // closed with the transaction

	for _, doc := range docs {
		if _, err = insert.ExecContext(ctx, doc.ID, doc.Name, string(doc.Body), Digest(doc.Body)); err != nil {
			return fmt.Errorf("failed to insert document %d: %w", doc.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO collections (name, index_field, run_id, count)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		index_field = excluded.index_field,
		run_id = excluded.run_id,
		count = excluded.count,
		written_at = CURRENT_TIMESTAMP
	`, collection, indexField, s.runID, len(docs))
	if err != nil {
		return fmt.Errorf("failed to record collection %s: %w", collection, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit collection %s: %w", collection, err)
	}
	s.logger.Info("collection written",
		"collection", collection,
		"documents", len(docs),
		"run_id", s.runID,
	)
	return nil
}

// CollectionInfo describes a written collection.
type CollectionInfo struct {
	Name       string
	IndexField string
	RunID      string
	Count      int
	WrittenAt  time.Time
}

// Collection returns the metadata of one collection.
func (s *Store) Collection(ctx context.Context, name string) (*CollectionInfo, error) {
	var info CollectionInfo
	var writtenAt string
	err := s.db.QueryRowContext(ctx, `
	SELECT name, index_field, run_id, count, written_at FROM collections WHERE name = ?
	`, name).Scan(&info.Name, &info.IndexField, &info.RunID, &info.Count, &writtenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoCollection, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection %s: %w", name, err)
	}
	info.WrittenAt = parseTimestamp(writtenAt)
	return &info, nil
}

// Collections lists every written collection by name.
func (s *Store) Collections(ctx context.Context) ([]CollectionInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT name, index_field, run_id, count, written_at FROM collections ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	infos := make([]CollectionInfo, 0)
	for rows.Next() {
		var info CollectionInfo
		var writtenAt string
		if err := rows.Scan(&info.Name, &info.IndexField, &info.RunID, &info.Count, &writtenAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		info.WrittenAt = parseTimestamp(writtenAt)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Count returns the number of documents in a collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	if _, err := s.Collection(ctx, collection); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table(collection)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n, nil
}

// Find returns the documents whose index field equals value, in id order.
func (s *Store) Find(ctx context.Context, collection, value string) ([]model.Document, error) {
	info, err := s.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	if err := checkIdentifiers(info.IndexField); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
	SELECT id, name, doc FROM `+table(collection)+`
	WHERE json_extract(doc, '$.`+info.IndexField+`') = ?
	ORDER BY id
	`, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		var doc model.Document
		var body string
		if err := rows.Scan(&doc.ID, &doc.Name, &body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.Body = []byte(body)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Digests returns the stored digest of every document by id.
func (s *Store) Digests(ctx context.Context, collection string) (map[int]string, error) {
	if _, err := s.Collection(ctx, collection); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, digest FROM `+table(collection))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	digests := make(map[int]string)
	for rows.Next() {
		var id int
		var digest string
		if err := rows.Scan(&id, &digest); err != nil {
			return nil, fmt.Errorf("failed to scan digest: %w", err)
		}
		digests[id] = digest
	}
	return digests, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp returns the zero time when no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
