// Package rules turns declarative rule definitions into executable matchers:
// a compiled regex plus include/exclude glob sets that bound which files the
// regex runs against.
package rules

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"

	"github.com/rwblickhan/linty/internal/lint"
)

// Definition is one rule as it appears in config. Read-only after decode.
type Definition struct {
	ID       string        `json:"id" yaml:"id" toml:"id"`
	Message  string        `json:"message" yaml:"message" toml:"message"`
	Regex    string        `json:"regex" yaml:"regex" toml:"regex"`
	Severity lint.Severity `json:"severity" yaml:"severity" toml:"severity"`
	Includes []string      `json:"includes,omitempty" yaml:"includes,omitempty" toml:"includes,omitempty"`
	Excludes []string      `json:"excludes,omitempty" yaml:"excludes,omitempty" toml:"excludes,omitempty"`
}

// Compiled is the executable form of a Definition. One Compiled per
// Definition, at the same position.
type Compiled struct {
	ID       string
	Message  string
	Severity lint.Severity
	Pattern  *regexp.Regexp

	includes globSet
	excludes globSet
}

// Compile builds the full rule set or fails atomically: any invalid regex,
// invalid glob, missing field, or duplicate id aborts with an error naming
// the offending rule, and no partial set is returned.
func Compile(defs []Definition) ([]Compiled, error) {
	out := make([]Compiled, 0, len(defs))
	seen := make(map[string]int, len(defs))
	for i, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("rule at position %d: missing id", i)
		}
		if first, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("rule %q: duplicate id (first defined at position %d)", d.ID, first)
		}
		seen[d.ID] = i
		if !d.Severity.Valid() {
			return nil, fmt.Errorf("rule %q: unknown severity %q (want %q or %q)",
				d.ID, d.Severity, lint.SeverityWarning, lint.SeverityError)
		}
		re, err := regexp.Compile(d.Regex)
		if err != nil {
			return nil, fmt.Errorf("rule %q: invalid regex %q: %w", d.ID, d.Regex, err)
		}
		inc, err := compileGlobs(d.Includes)
		if err != nil {
			return nil, fmt.Errorf("rule %q: invalid include glob: %w", d.ID, err)
		}
		exc, err := compileGlobs(d.Excludes)
		if err != nil {
			return nil, fmt.Errorf("rule %q: invalid exclude glob: %w", d.ID, err)
		}
		out = append(out, Compiled{
			ID:       d.ID,
			Message:  d.Message,
			Severity: d.Severity,
			Pattern:  re,
			includes: inc,
			excludes: exc,
		})
	}
	return out, nil
}

// InScope reports whether the rule applies to the slash-separated path. A
// file is in scope when the include set is empty or matches it, and no
// exclude matches it. Exclude wins when both match.
func (c *Compiled) InScope(path string) bool {
	if len(c.includes) > 0 && !c.includes.match(path) {
		return false
	}
	return !c.excludes.match(path)
}

// globSet is a compiled list of glob patterns. The zero value matches
// nothing.
type globSet []glob.Glob

func compileGlobs(patterns []string) (globSet, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	gs := make(globSet, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		gs = append(gs, g)
	}
	return gs, nil
}

func (gs globSet) match(path string) bool {
	for _, g := range gs {
		if g.Match(path) {
			return true
		}
	}
	return false
}
