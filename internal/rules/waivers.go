package rules

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/rwblickhan/linty/internal/lint"
)

// Waiver suppresses violations of one rule, optionally narrowed to files
// matching a glob. Reason is informational only.
type Waiver struct {
	RuleID string `json:"rule_id" yaml:"rule_id" toml:"rule_id"`
	File   string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty" toml:"reason,omitempty"`
}

type CompiledWaiver struct {
	RuleID string
	file   glob.Glob // nil matches every file
}

// CompileWaivers validates waiver globs up front; an invalid glob is a
// startup error, same as an invalid rule glob.
func CompileWaivers(ws []Waiver) ([]CompiledWaiver, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]CompiledWaiver, 0, len(ws))
	for i, w := range ws {
		if w.RuleID == "" {
			return nil, fmt.Errorf("waiver at position %d: missing rule_id", i)
		}
		cw := CompiledWaiver{RuleID: w.RuleID}
		if w.File != "" {
			g, err := glob.Compile(w.File, '/')
			if err != nil {
				return nil, fmt.Errorf("waiver for rule %q: invalid file glob %q: %w", w.RuleID, w.File, err)
			}
			cw.file = g
		}
		out = append(out, cw)
	}
	return out, nil
}

// ApplyWaivers filters out violations matched by any waiver.
// Returns (kept, waivedCount).
func ApplyWaivers(in []lint.Violation, waivers []CompiledWaiver) ([]lint.Violation, int) {
	if len(waivers) == 0 || len(in) == 0 {
		return in, 0
	}
	out := make([]lint.Violation, 0, len(in))
	waived := 0
nextViolation:
	for _, v := range in {
		for _, w := range waivers {
			if v.RuleID != w.RuleID {
				continue
			}
			if w.file != nil && !w.file.Match(v.File) {
				continue
			}
			waived++
			continue nextViolation
		}
		out = append(out, v)
	}
	return out, waived
}
