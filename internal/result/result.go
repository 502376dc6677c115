// Package result defines the sink that receives a test's terminal verdict.
package result

import (
	"github.com/nisha-kaushik/nunit/pkg/throw"
)

// Sink receives exactly one terminal call per test verification. It is
// owned by the surrounding test runner; the expectation engine only writes
// into it.
type Sink interface {
	// Success marks the test successful. The message may be empty.
	Success(message string)

	// Failure marks the test failed with a diagnostic message and a stack
	// trace (empty when none is available).
	Failure(message, trace string)

	// Ignore marks the test ignored, using the exception's message as the
	// reason.
	Ignore(ex *throw.Exception)

	// Inconclusive marks the test inconclusive with a reason.
	Inconclusive(reason string)

	// SetResult records an arbitrary terminal state together with the
	// exception that caused it.
	SetResult(state throw.ResultState, ex *throw.Exception)
}

// Recorder is a Sink that records the terminal verdict. It counts terminal
// calls so callers can assert the exactly-once write contract.
type Recorder struct {
	state     throw.ResultState
	message   string
	trace     string
	exception *throw.Exception
	calls     int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{state: throw.StateNone}
}

// Success marks the test successful.
func (r *Recorder) Success(message string) {
	r.record(throw.StateSuccess, message, "", nil)
}

// Failure marks the test failed.
func (r *Recorder) Failure(message, trace string) {
	r.record(throw.StateFailure, message, trace, nil)
}

// Ignore marks the test ignored.
func (r *Recorder) Ignore(ex *throw.Exception) {
	r.record(throw.StateIgnored, exceptionMessage(ex), "", ex)
}

// Inconclusive marks the test inconclusive.
func (r *Recorder) Inconclusive(reason string) {
	r.record(throw.StateInconclusive, reason, "", nil)
}

// SetResult records an arbitrary terminal state.
func (r *Recorder) SetResult(state throw.ResultState, ex *throw.Exception) {
	r.record(state, exceptionMessage(ex), "", ex)
}

func (r *Recorder) record(state throw.ResultState, message, trace string, ex *throw.Exception) {
	r.state = state
	r.message = message
	r.trace = trace
	r.exception = ex
	r.calls++
}

func exceptionMessage(ex *throw.Exception) string {
	if ex == nil {
		return ""
	}

	return ex.Message()
}

// State returns the recorded terminal state, throw.StateNone before any
// terminal call.
func (r *Recorder) State() throw.ResultState {
	return r.state
}

// Message returns the recorded message.
func (r *Recorder) Message() string {
	return r.message
}

// Trace returns the recorded stack trace.
func (r *Recorder) Trace() string {
	return r.trace
}

// Exception returns the exception recorded with the verdict, if any.
func (r *Recorder) Exception() *throw.Exception {
	return r.exception
}

// TerminalCalls returns how many terminal calls were made.
func (r *Recorder) TerminalCalls() int {
	return r.calls
}

// Verify interface compliance.
var _ Sink = (*Recorder)(nil)
