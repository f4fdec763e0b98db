// Package lint holds the core data model shared by the scan pipeline,
// storage, and reporting layers.
package lint

import "time"

// Version identifies the run payload format persisted to storage.
const Version = "1"

// Severity classifies a rule. The set is closed: warnings are advisory and
// interactively dismissible, errors always fail the run.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Valid reports whether s is one of the two known severities.
func (s Severity) Valid() bool {
	return s == SeverityWarning || s == SeverityError
}

// Violation is evidence that a rule's pattern matched within one file.
// Lines holds the 1-based line number of each match start, in match order;
// it is never empty. Multiple matches starting on the same line each
// contribute an entry.
type Violation struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
	Lines    []int    `json:"lines"`
}

// Run is one complete scan: where it ran, which config drove it, and every
// violation it produced, in discovery order.
type Run struct {
	ID         string      `json:"id"`
	StartedAt  time.Time   `json:"started_at"`
	Root       string      `json:"root"`
	ConfigPath string      `json:"config_path,omitempty"`
	Version    string      `json:"version"`
	Violations []Violation `json:"violations"`
}
