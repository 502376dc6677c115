package throw

// ResultState represents the framework classification a thrown exception
// carries. Control exceptions (assertion failures, ignores, inconclusive
// signals) are recognized by this state rather than by their type name.
type ResultState int

const (
	// StateNone indicates an ordinary exception with no special classification.
	StateNone ResultState = iota

	// StateSuccess indicates an intentionally-successful outcome.
	StateSuccess

	// StateFailure indicates an intentional test failure (assertion).
	StateFailure

	// StateIgnored indicates the test asked to be ignored.
	StateIgnored

	// StateInconclusive indicates the test could not reach a verdict.
	StateInconclusive

	// StateNotRunnable indicates a configuration error detected before the
	// test body ever runs.
	StateNotRunnable
)

// String returns a string representation of the state.
func (s ResultState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateSuccess:
		return "Success"
	case StateFailure:
		return "Failure"
	case StateIgnored:
		return "Ignored"
	case StateInconclusive:
		return "Inconclusive"
	case StateNotRunnable:
		return "NotRunnable"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether the state is a valid terminal verdict for a
// test, as opposed to StateNone which only marks an unclassified exception.
func (s ResultState) IsTerminal() bool {
	return s != StateNone
}
