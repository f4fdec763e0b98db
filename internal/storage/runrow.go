package storage

import "time"

// RunRow is a lightweight listing row for run history.
type RunRow struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	Root       string    `json:"root,omitempty"`
	Version    string    `json:"version,omitempty"`
	Violations int       `json:"violations"`
}
