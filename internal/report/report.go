// Package report aggregates violations into a severity-partitioned report,
// renders it, and decides the final run outcome.
package report

import (
	"fmt"

	"github.com/rwblickhan/linty/internal/lint"
)

// Groups maps rule id to that rule's violations, remembering first-seen
// rule order. Violations within a group stay in discovery order.
type Groups struct {
	Order  []string
	ByRule map[string][]lint.Violation
}

func (g *Groups) add(v lint.Violation) {
	if g.ByRule == nil {
		g.ByRule = make(map[string][]lint.Violation)
	}
	if _, ok := g.ByRule[v.RuleID]; !ok {
		g.Order = append(g.Order, v.RuleID)
	}
	g.ByRule[v.RuleID] = append(g.ByRule[v.RuleID], v)
}

func (g *Groups) Empty() bool { return len(g.Order) == 0 }

// Report is the severity partition of a violation list: every violation
// lands in exactly one side, and the union recovers the input.
type Report struct {
	Warnings Groups
	Errors   Groups
}

// Partition splits violations by severity and groups each side by rule id.
// The severity set is closed; an unknown value here means a rule bypassed
// compilation, which is a bug.
func Partition(vs []lint.Violation) Report {
	var rep Report
	for _, v := range vs {
		switch v.Severity {
		case lint.SeverityWarning:
			rep.Warnings.add(v)
		case lint.SeverityError:
			rep.Errors.add(v)
		default:
			panic(fmt.Sprintf("report: unknown severity %q for rule %q", v.Severity, v.RuleID))
		}
	}
	return rep
}
