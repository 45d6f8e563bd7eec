// Package history records completed artifact downloads in a local SQLite
// ledger. Tasks themselves are never persisted; the ledger tracks only
// files materialized on disk.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one completed download.
type Record struct {
	ID         int64     `json:"id"`
	TaskID     string    `json:"task_id"`
	ArtifactID string    `json:"artifact_id"`
	URL        string    `json:"url"`
	Path       string    `json:"path"`
	Bytes      int64     `json:"bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

// Ledger is an append-mostly download log backed by SQLite.
type Ledger struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS downloads (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  task_id TEXT NOT NULL,
  artifact_id TEXT NOT NULL,
  url TEXT NOT NULL,
  path TEXT NOT NULL,
  bytes INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
)`

// Open opens (creating if needed) the ledger database at path.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Add appends one download record. A zero CreatedAt is filled with the
// current time.
func (l *Ledger) Add(rec Record) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	_, err := l.db.Exec(
		`INSERT INTO downloads (task_id, artifact_id, url, path, bytes, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.TaskID, rec.ArtifactID, rec.URL, rec.Path, rec.Bytes, created.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording download: %w", err)
	}
	return nil
}

// List returns the most recent downloads, newest first. limit <= 0 means
// no limit.
func (l *Ledger) List(limit int) ([]Record, error) {
	query := `SELECT id, task_id, artifact_id, url, path, bytes, created_at FROM downloads ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying downloads: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var created string
		if err := rows.Scan(&rec.ID, &rec.TaskID, &rec.ArtifactID, &rec.URL, &rec.Path, &rec.Bytes, &created); err != nil {
			return nil, fmt.Errorf("scanning download record: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading download records: %w", err)
	}

	return records, nil
}
