package report

// Policy decides the final run status once the report is rendered.
type Policy struct {
	ErrorOnWarning bool
}

// Outcome returns whether the run passed and, when it did not, the summary
// line for stderr. Errors always fail; warnings fail under escalation or an
// interactive decline.
func (p Policy) Outcome(rep Report, declined bool) (ok bool, reason string) {
	switch {
	case !rep.Errors.Empty():
		return false, "Failing due to errors"
	case declined:
		return false, "Failing due to declined warning"
	case p.ErrorOnWarning && !rep.Warnings.Empty():
		return false, "Failing due to warnings treated as errors"
	default:
		return true, ""
	}
}
