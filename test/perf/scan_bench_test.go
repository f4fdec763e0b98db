package perf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rwblickhan/linty/internal/lint"
	"github.com/rwblickhan/linty/internal/rules"
	"github.com/rwblickhan/linty/internal/scan"
)

func benchTree(b *testing.B, files, lines int) string {
	b.Helper()
	dir := b.TempDir()
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		if i%10 == 0 {
			sb.WriteString("TODO something on this line\n")
		} else {
			sb.WriteString("just an ordinary line of text\n")
		}
	}
	content := []byte(sb.String())
	for i := 0; i < files; i++ {
		p := filepath.Join(dir, fmt.Sprintf("file%03d.txt", i))
		if err := os.WriteFile(p, content, 0o644); err != nil {
			b.Fatal(err)
		}
	}
	return dir
}

func BenchmarkScan_Small(b *testing.B) {
	dir := benchTree(b, 20, 200)
	compiled, err := rules.Compile([]rules.Definition{
		{ID: "no-todo", Message: "m", Regex: "TODO", Severity: lint.SeverityWarning},
		{ID: "no-fixme", Message: "m", Regex: "FIXME", Severity: lint.SeverityError},
		{ID: "txt-only", Message: "m", Regex: "ordinary", Severity: lint.SeverityWarning, Includes: []string{"*.txt"}},
	})
	if err != nil {
		b.Fatal(err)
	}
	logger := slog.New(slog.DiscardHandler)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := &scan.Scanner{
			Rules:  compiled,
			Walker: &scan.Walker{Root: dir, Logger: logger},
			Logger: logger,
		}
		if _, err := s.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
