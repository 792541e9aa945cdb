// Package store keeps an append-only audit log of processing runs in a
// local sqlite database. The log is optional; an empty path disables it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite" // pure Go sqlite driver

	"hiredocs/constants"
)

// Entry is one processed document in the audit log.
type Entry struct {
	ID          string
	Kind        string
	FilePath    string
	ProcessedAt time.Time
	Status      constants.RunStatus
	Error       string
	RequiresOCR bool
}

// Store wraps the audit database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens or creates the audit database and ensures the schema exists.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		logger.Debug("wal pragma failed", "error", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		file_path TEXT NOT NULL,
		processed_at DATETIME NOT NULL,
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		requires_ocr INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_runs_kind_time ON runs(kind, processed_at);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure audit schema: %w", err)
	}

	logger.Info("audit log opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one run. Audit failures are the caller's to log, not fatal
// to document processing.
func (s *Store) Append(ctx context.Context, e Entry) error {
	if e.Status == "" {
		e.Status = constants.RunStatusRunning
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, kind, file_path, processed_at, status, error, requires_ocr)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Kind, e.FilePath, e.ProcessedAt.UTC(), string(e.Status), e.Error, e.RequiresOCR)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, file_path, processed_at, status, error, requires_ocr
		 FROM runs ORDER BY processed_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.FilePath, &e.ProcessedAt,
			&e.Status, &e.Error, &e.RequiresOCR); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByKind returns run totals per document kind.
func (s *Store) CountByKind(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM runs GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("count audit entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan audit count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}
