package trace

// Outcome is the caller-side verdict for a tracing session.
type Outcome int

const (
	// OutcomePending means the session is still running.
	OutcomePending Outcome = iota
	// OutcomeSuccess means the progress goal was reached.
	OutcomeSuccess
	// OutcomeFailure means too many cracks were counted.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "pending"
	}
}

// Rules holds the win/lose conditions a scene checks after each Update.
type Rules struct {
	// Goal is the progress fraction that wins the session.
	Goal float64
	// MaxCracks is the crack count that loses the session. Zero disables it.
	MaxCracks int
}

// Evaluate returns the outcome for the tracker's current state.
// Success takes precedence when both conditions hold on the same frame.
func (r Rules) Evaluate(t *Tracker) Outcome {
	if t.Progress() >= r.Goal {
		return OutcomeSuccess
	}
	if r.MaxCracks > 0 && t.Cracks() >= r.MaxCracks {
		return OutcomeFailure
	}
	return OutcomePending
}
