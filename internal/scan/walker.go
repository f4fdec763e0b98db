package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// Walker enumerates candidate files under Root. Directories are never
// candidates. Hidden entries and gitignored entries are skipped unless the
// corresponding toggle is set; .git itself is always skipped. When Only is
// non-nil, a candidate is skipped unless its canonical path is in the set —
// the walk still runs, Only just restricts it.
type Walker struct {
	Root           string
	IncludeIgnored bool
	IncludeHidden  bool
	Only           map[string]struct{}
	Logger         *slog.Logger
}

// CanonicalSet resolves each path to canonical absolute form for the Only
// restriction. A path that cannot be resolved is a fatal startup error.
func CanonicalSet(paths []string) (map[string]struct{}, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve path %q: %w", p, err)
		}
		canon, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, fmt.Errorf("resolve path %q: %w", p, err)
		}
		set[canon] = struct{}{}
	}
	return set, nil
}

// Walk visits every candidate file, passing its root-relative
// slash-separated path. Per-entry traversal errors are logged and the walk
// continues; only a failure on the root itself aborts.
func (w *Walker) Walk(visit func(relPath string) error) error {
	var ign gitignore.GitIgnore
	if !w.IncludeIgnored {
		repo, err := gitignore.NewRepository(w.Root)
		if err != nil {
			w.Logger.Debug("no gitignore rules", "root", w.Root, "err", err)
		} else {
			ign = repo
		}
	}
	return filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				return err // the root itself is unreadable
			}
			w.Logger.Error("traversal error", "path", path, "err", err)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel, rerr := filepath.Rel(w.Root, path)
		if rerr != nil {
			w.Logger.Error("traversal error", "path", path, "err", rerr)
			return nil
		}
		rel = filepath.ToSlash(rel)
		name := d.Name()
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if name == ".git" {
				return fs.SkipDir
			}
			if !w.IncludeHidden && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			if ign != nil {
				if m := ign.Relative(rel, true); m != nil && m.Ignore() {
					return fs.SkipDir
				}
			}
			return nil
		}
		if !w.IncludeHidden && strings.HasPrefix(name, ".") {
			return nil
		}
		if ign != nil {
			if m := ign.Relative(rel, false); m != nil && m.Ignore() {
				return nil
			}
		}
		if w.Only != nil {
			abs, aerr := filepath.Abs(path)
			if aerr == nil {
				abs, aerr = filepath.EvalSymlinks(abs)
			}
			if aerr != nil {
				w.Logger.Error("traversal error", "path", path, "err", aerr)
				return nil
			}
			if _, ok := w.Only[abs]; !ok {
				return nil
			}
		}
		return visit(rel)
	})
}
