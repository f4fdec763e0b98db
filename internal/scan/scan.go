// Package scan walks a file tree and runs compiled rules against each
// candidate file, producing violations in discovery order.
package scan

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rwblickhan/linty/internal/lint"
	"github.com/rwblickhan/linty/internal/rules"
)

type Scanner struct {
	Rules  []rules.Compiled
	Walker *Walker
	Logger *slog.Logger
}

// Run evaluates every in-scope rule against each file the walker yields.
// A file's content is read at most once no matter how many rules apply, and
// dropped as soon as its last rule has run. Files that cannot be read are
// logged and skipped; the scan itself only fails if the root is unwalkable.
func (s *Scanner) Run() ([]lint.Violation, error) {
	var out []lint.Violation
	err := s.Walker.Walk(func(relPath string) error {
		var content []byte
		loaded := false
		for i := range s.Rules {
			r := &s.Rules[i]
			if !r.InScope(relPath) {
				continue
			}
			if !loaded {
				b, err := os.ReadFile(filepath.Join(s.Walker.Root, filepath.FromSlash(relPath)))
				if err != nil {
					s.Logger.Error("read file", "path", relPath, "err", err)
					return nil
				}
				content = b
				loaded = true
			}
			lines := MatchLines(r.Pattern, content)
			if len(lines) > 0 {
				out = append(out, lint.Violation{
					RuleID:   r.ID,
					Severity: r.Severity,
					File:     relPath,
					Lines:    lines,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
