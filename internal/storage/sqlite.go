package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "modernc.org/sqlite" // CGO-free SQLite driver

	"github.com/rwblickhan/linty/internal/lint"
)

// ErrNotFound is returned when a run id has no row.
var ErrNotFound = errors.New("storage: run not found")

// DB is the run-history store backed by SQLite.
type DB struct {
	conn *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite DB at path.
func OpenSQLite(path string) (*DB, error) {
	// Pragmas via DSN keep it portable with the modernc driver.
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	c, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &DB{conn: c}, nil
}

func (db *DB) Close() error { return db.conn.Close() }

// CreateSchema ensures the runs and violations tables exist.
func (db *DB) CreateSchema() error {
	_, err := db.conn.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id         TEXT PRIMARY KEY,
  started_at TEXT,          -- RFC3339
  root       TEXT,
  version    TEXT,
  run_json   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS violations (
  run_id   TEXT NOT NULL,
  seq      INTEGER NOT NULL, -- discovery order within the run
  rule_id  TEXT NOT NULL,
  severity TEXT NOT NULL,
  file     TEXT NOT NULL,
  lines    TEXT NOT NULL,    -- comma-joined 1-based line numbers
  PRIMARY KEY (run_id, seq),
  FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_violations_run ON violations(run_id);
CREATE INDEX IF NOT EXISTS idx_violations_rule ON violations(rule_id);
`)
	return err
}

// SaveRun upserts a run JSON and (re)writes its violations.
func (db *DB) SaveRun(run *lint.Run) error {
	b, err := json.Marshal(run)
	if err != nil {
		return err
	}
	ts := run.StartedAt.UTC().Format(time.RFC3339Nano)

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, started_at, root, version, run_json)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET started_at=excluded.started_at, root=excluded.root, version=excluded.version, run_json=excluded.run_json`,
		run.ID, ts, run.Root, run.Version, string(b),
	); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM violations WHERE run_id = ?`, run.ID); err != nil {
		return err
	}
	if len(run.Violations) > 0 {
		stmt, err := tx.Prepare(`
			INSERT INTO violations (run_id, seq, rule_id, severity, file, lines)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, v := range run.Violations {
			if _, err := stmt.Exec(run.ID, i, v.RuleID, string(v.Severity), v.File, encodeLines(v.Lines)); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// LoadRun reads one run back from its JSON blob.
func (db *DB) LoadRun(id string) (lint.Run, error) {
	var blob string
	err := db.conn.QueryRow(`SELECT run_json FROM runs WHERE id = ?`, id).Scan(&blob)
	if err == sql.ErrNoRows {
		return lint.Run{}, ErrNotFound
	}
	if err != nil {
		return lint.Run{}, err
	}
	var run lint.Run
	if err := json.Unmarshal([]byte(blob), &run); err != nil {
		return lint.Run{}, err
	}
	return run, nil
}

// LoadLatestRun returns the most recently started run.
func (db *DB) LoadLatestRun() (lint.Run, error) {
	var id string
	err := db.conn.QueryRow(`SELECT id FROM runs ORDER BY started_at DESC, id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return lint.Run{}, ErrNotFound
	}
	if err != nil {
		return lint.Run{}, err
	}
	return db.LoadRun(id)
}
