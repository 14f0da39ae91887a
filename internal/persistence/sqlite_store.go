package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &SQLiteStore{db: db}
	if err := store.init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
		return fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS validation_results (
		path TEXT NOT NULL,
		modified_at INTEGER NOT NULL,
		thread_id TEXT NOT NULL DEFAULT '',
		run_id TEXT NOT NULL DEFAULT '',
		valid INTEGER NOT NULL,
		violation TEXT NOT NULL DEFAULT '',
		checked_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (path, modified_at)
	);`); err != nil {
		return fmt.Errorf("create validation_results: %w", err)
	}
	return nil
}

// SaveResult upserts the outcome for one (path, modified_at) pair.
func (s *SQLiteStore) SaveResult(ctx context.Context, record ValidationRecord) error {
	valid := 0
	if record.Valid {
		valid = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO validation_results
		(path, modified_at, thread_id, run_id, valid, violation)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path, modified_at) DO UPDATE SET
			thread_id = excluded.thread_id,
			run_id = excluded.run_id,
			valid = excluded.valid,
			violation = excluded.violation,
			checked_at = CURRENT_TIMESTAMP`,
		record.Path, record.ModifiedAt, record.ThreadID, record.RunID, valid, record.Violation)
	if err != nil {
		return fmt.Errorf("save validation result: %w", err)
	}
	return nil
}

// HasResult reports whether the given file version was already checked.
func (s *SQLiteStore) HasResult(ctx context.Context, path string, modifiedAt int64) (bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM validation_results WHERE path = ? AND modified_at = ?`,
		path, modifiedAt)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("query validation result: %w", err)
	}
	return count > 0, nil
}

// RecentResults returns the most recently checked records, newest first.
func (s *SQLiteStore) RecentResults(ctx context.Context, limit int) ([]ValidationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT path, modified_at, thread_id, run_id, valid, violation, checked_at
		FROM validation_results ORDER BY checked_at DESC, path DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query validation results: %w", err)
	}
	defer rows.Close()

	var records []ValidationRecord
	for rows.Next() {
		var record ValidationRecord
		var valid int
		if err := rows.Scan(&record.Path, &record.ModifiedAt, &record.ThreadID,
			&record.RunID, &valid, &record.Violation, &record.CheckedAt); err != nil {
			return nil, fmt.Errorf("scan validation result: %w", err)
		}
		record.Valid = valid == 1
		records = append(records, record)
	}
	return records, rows.Err()
}
