package scan

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// StagedLister returns the paths queued for the next commit. It is injected
// into the CLI so the scan pipeline can be exercised without a git binary.
type StagedLister func() ([]string, error)

// GitStagedFiles shells out to git for the staged file list. Any failure is
// fatal to the run.
func GitStagedFiles() ([]string, error) {
	out, err := exec.Command("git", "diff", "--cached", "--name-only", "--diff-filter=ACMR").Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("list staged files: %s", bytes.TrimSpace(ee.Stderr))
		}
		return nil, fmt.Errorf("list staged files: %w", err)
	}
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}
