package reporting

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rwblickhan/linty/internal/lint"
)

// DiffPayload compares the violations of two runs. A violation's identity
// is its (rule id, file) pair; lines changing within a surviving pair is a
// change, not a new violation.
type DiffPayload struct {
	BaseID  string           `json:"base_id"`
	HeadID  string           `json:"head_id"`
	Summary DiffSummary      `json:"summary"`
	New     []lint.Violation `json:"new"`
	Fixed   []lint.Violation `json:"fixed"`
	Changed []ChangedLines   `json:"changed"`
}

type DiffSummary struct {
	NewCount     int `json:"new"`
	FixedCount   int `json:"fixed"`
	ChangedCount int `json:"changed"`
}

type ChangedLines struct {
	RuleID    string `json:"rule_id"`
	File      string `json:"file"`
	BaseLines []int  `json:"base_lines"`
	HeadLines []int  `json:"head_lines"`
}

// Diff computes the violation delta from base to head.
func Diff(base, head *lint.Run) DiffPayload {
	bm := map[string]lint.Violation{}
	hm := map[string]lint.Violation{}
	for _, v := range base.Violations {
		bm[keyOf(v)] = v
	}
	for _, v := range head.Violations {
		hm[keyOf(v)] = v
	}

	var added, fixed []lint.Violation
	var changed []ChangedLines

	for k, hv := range hm {
		bv, ok := bm[k]
		if !ok {
			added = append(added, hv)
			continue
		}
		if !equalLines(bv.Lines, hv.Lines) {
			changed = append(changed, ChangedLines{
				RuleID:    hv.RuleID,
				File:      hv.File,
				BaseLines: bv.Lines,
				HeadLines: hv.Lines,
			})
		}
	}
	for k, bv := range bm {
		if _, ok := hm[k]; !ok {
			fixed = append(fixed, bv)
		}
	}

	// stable order for reproducible output
	sort.Slice(added, func(i, j int) bool { return keyOf(added[i]) < keyOf(added[j]) })
	sort.Slice(fixed, func(i, j int) bool { return keyOf(fixed[i]) < keyOf(fixed[j]) })
	sort.Slice(changed, func(i, j int) bool {
		if changed[i].RuleID == changed[j].RuleID {
			return changed[i].File < changed[j].File
		}
		return changed[i].RuleID < changed[j].RuleID
	})

	return DiffPayload{
		BaseID: base.ID, HeadID: head.ID,
		Summary: DiffSummary{
			NewCount:     len(added),
			FixedCount:   len(fixed),
			ChangedCount: len(changed),
		},
		New:     added,
		Fixed:   fixed,
		Changed: changed,
	}
}

// WriteDiffJSON writes the delta to <outDir>/diff_<base>__<head>.json.
func WriteDiffJSON(outDir string, base, head *lint.Run) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, "diff_"+base.ID+"__"+head.ID+".json")
	b, err := json.MarshalIndent(Diff(base, head), "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}

// PrintDiff renders the delta as indented JSON to w.
func PrintDiff(w io.Writer, base, head *lint.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Diff(base, head))
}

func keyOf(v lint.Violation) string {
	return v.RuleID + "|" + v.File
}

func equalLines(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
