package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer renders a report. Out and In are injected rather than bound to
// the process streams so tests can script a terminal session.
type Printer struct {
	Out         io.Writer
	In          io.Reader
	Interactive bool
	Messages    map[string]string // rule id -> configured message
}

// PrintWarnings renders every warning group. In interactive mode each
// rule's listing is followed by a confirmation prompt; answering n declines
// the run, and later groups print without further prompting. Returns
// whether the user declined.
func (p *Printer) PrintWarnings(g Groups) bool {
	declined := false
	in := bufio.NewScanner(p.In)
	for _, id := range g.Order {
		fmt.Fprintf(p.Out, "Found warning %s: %s\n", id, p.Messages[id])
		for _, v := range g.ByRule[id] {
			fmt.Fprintf(p.Out, "Warning present in file: %s, lines: %s\n", v.File, joinLines(v.Lines))
		}
		if p.Interactive && !declined && !p.confirm(in) {
			declined = true
		}
	}
	return declined
}

// PrintErrors renders every error group. Errors are never confirmable.
func (p *Printer) PrintErrors(g Groups) {
	for _, id := range g.Order {
		fmt.Fprintf(p.Out, "Found error %s: %s\n", id, p.Messages[id])
		for _, v := range g.ByRule[id] {
			fmt.Fprintf(p.Out, "Error present in file: %s, lines: %s\n", v.File, joinLines(v.Lines))
		}
	}
}

// confirm re-prompts until the input is exactly y or n. Exhausted input
// counts as declining.
func (p *Printer) confirm(in *bufio.Scanner) bool {
	for {
		fmt.Fprint(p.Out, "Ignore this warning and continue? [y/n] ")
		if !in.Scan() {
			return false
		}
		switch strings.TrimSpace(in.Text()) {
		case "y":
			return true
		case "n":
			return false
		}
	}
}

func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
