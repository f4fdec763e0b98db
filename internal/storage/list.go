package storage

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/rwblickhan/linty/internal/lint"
)

// ListRuns returns a lightweight list of runs with violation counts, newest
// first.
func (db *DB) ListRuns(limit, offset int) ([]RunRow, error) {
	const q = `
		SELECT r.id, r.started_at, r.root, r.version,
		       (SELECT COUNT(1) FROM violations v WHERE v.run_id = r.id) AS violations
		  FROM runs r
		 ORDER BY r.started_at DESC, r.id DESC
		 LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var rr RunRow
		var startedAtStr string
		if err := rows.Scan(&rr.ID, &startedAtStr, &rr.Root, &rr.Version, &rr.Violations); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, startedAtStr); err == nil {
			rr.StartedAt = t
		} else if t2, err2 := time.Parse(time.RFC3339, startedAtStr); err2 == nil {
			rr.StartedAt = t2
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// ListViolations returns a run's violations, optionally restricted to one
// severity, in discovery order.
func (db *DB) ListViolations(runID string, severity lint.Severity) ([]lint.Violation, error) {
	const q = `
		SELECT rule_id, severity, file, lines
		  FROM violations
		 WHERE run_id = ?
		   AND (? = '' OR severity = ?)
		 ORDER BY seq`
	rows, err := db.conn.Query(q, runID, string(severity), string(severity))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []lint.Violation
	for rows.Next() {
		var v lint.Violation
		var sev, lines string
		if err := rows.Scan(&v.RuleID, &sev, &v.File, &lines); err != nil {
			return nil, err
		}
		v.Severity = lint.Severity(sev)
		v.Lines = decodeLines(lines)
		out = append(out, v)
	}
	return out, rows.Err()
}

// HasRun reports whether a run id exists.
func (db *DB) HasRun(id string) (bool, error) {
	const q = `SELECT 1 FROM runs WHERE id = ? LIMIT 1`
	var one int
	err := db.conn.QueryRow(q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func encodeLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func decodeLines(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			out = append(out, n)
		}
	}
	return out
}
