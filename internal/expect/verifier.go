// Package expect decides whether the exception a test threw (or failed to
// throw) satisfies the expectation criteria declared for it, and produces
// the failure diagnostics when it does not.
package expect

import (
	"github.com/cockroachdb/errors"

	"github.com/nisha-kaushik/nunit/internal/fixture"
	"github.com/nisha-kaushik/nunit/internal/result"
	"github.com/nisha-kaushik/nunit/pkg/logger"
	"github.com/nisha-kaushik/nunit/pkg/throw"
)

// ErrHandlerNotFound is returned from NewVerifier when an explicitly named
// exception handler does not exist on the fixture. The owning test is not
// runnable; neither process method is ever reached.
var ErrHandlerNotFound = errors.New("exception handler not found")

const (
	// noStackTrace substitutes for a stack trace whose retrieval failed.
	noStackTrace = "No stack trace available"

	// anyExceptionName names the expectation when no type is declared.
	anyExceptionName = "An Exception"
)

// Verifier checks a thrown exception (or its absence) against expectation
// criteria. One verifier is built per test method carrying criteria and
// lives for that single test's execution; it is never shared.
type Verifier struct {
	criteria   Criteria
	matcher    MessageMatcher
	handler    throw.HandlerFunc
	classifier Classifier
	logger     logger.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithClassifier sets the exception classifier.
func WithClassifier(c Classifier) Option {
	return func(v *Verifier) {
		if c != nil {
			v.classifier = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(v *Verifier) {
		if log != nil {
			v.logger = log
		}
	}
}

// NewVerifier builds a verifier for the given criteria and fixture. The
// message matcher is compiled and the handler resolved here, once; both
// are reused for every invocation.
//
// A handler name that names no suitable method on the fixture is a
// configuration error: the error wraps ErrHandlerNotFound and the owning
// test must be marked not runnable without ever executing.
func NewVerifier(
	criteria Criteria,
	d fixture.Descriptor,
	opts ...Option,
) (*Verifier, error) {
	v := &Verifier{
		criteria:   criteria,
		classifier: NewStateClassifier(),
		logger:     logger.NewNoOpLogger(),
	}

	for _, opt := range opts {
		opt(v)
	}

	if criteria.ExpectsMessage() {
		matcher, err := MatcherFor(criteria.Strategy, *criteria.Message)
		if err != nil {
			return nil, err
		}

		v.matcher = matcher
	}

	handler, err := resolveHandler(criteria.HandlerName, d)
	if err != nil {
		return nil, err
	}

	v.handler = handler

	return v, nil
}

// resolveHandler locates the exception handler once, at construction.
// An explicit name must resolve; otherwise the conventional default
// handler is attached only when the fixture declares the capability
// marker. No fixture and no explicit name means no handler.
func resolveHandler(name string, d fixture.Descriptor) (throw.HandlerFunc, error) {
	if d == nil {
		if name == "" {
			return nil, nil
		}

		return nil, errors.Wrapf(
			ErrHandlerNotFound,
			"handler %q specified but no fixture is attached",
			name,
		)
	}

	if name != "" {
		handler, ok := d.FindHandler(name)
		if !ok {
			return nil, errors.Wrapf(
				ErrHandlerNotFound,
				"the specified exception handler %s was not found on fixture %s",
				name,
				d.TypeName(),
			)
		}

		return handler, nil
	}

	if d.HandlesExceptions() {
		handler, _ := d.FindHandler(throw.DefaultHandlerName)

		return handler, nil
	}

	return nil, nil
}

// ProcessNoException reports the failure for a test body that completed
// without throwing. The exception was required, so this is always a
// failure.
func (v *Verifier) ProcessNoException(sink result.Sink) {
	v.logger.Info("expected exception was not thrown",
		"expected", v.expectedName(),
	)

	sink.Failure(v.combineWithUserMessage(v.noExceptionMessage()), "")
}

// ProcessException checks a thrown exception against the criteria and
// writes exactly one terminal verdict into the sink.
//
// The handler, if one is attached, runs with the fixture's live state and
// may itself panic; that panic is deliberately not recovered here — the
// surrounding runner decides how to classify a handler that throws.
func (v *Verifier) ProcessException(ex *throw.Exception, sink result.Sink) {
	if ex == nil {
		v.ProcessNoException(sink)

		return
	}

	// Comparisons always operate on the innermost real exception.
	ex = ex.Innermost()

	if !v.typeMatches(ex) {
		v.processWrongType(ex, sink)

		return
	}

	if v.matcher != nil && !v.matcher.Match(ex.Message()) {
		v.logger.Info("exception message did not match",
			"strategy", v.criteria.Strategy.String(),
			"expected", v.matcher.String(),
			"actual", ex.Message(),
		)

		sink.Failure(
			v.combineWithUserMessage(v.wrongMessageText(ex)),
			safeStackTrace(ex),
		)

		return
	}

	if v.handler != nil {
		v.handler(ex)
	}

	v.logger.Debug("expected exception matched",
		"type", ex.TypeName(),
	)

	sink.Success("")
}

// processWrongType handles an exception of an unexpected type. Framework-
// recognized control exceptions propagate their own classification; only
// unclassified exceptions become a wrong-type failure.
func (v *Verifier) processWrongType(ex *throw.Exception, sink result.Sink) {
	state := v.classifier.Classify(ex)

	v.logger.Info("unexpected exception type",
		"expected", v.expectedName(),
		"actual", ex.TypeName(),
		"classification", state.String(),
	)

	switch state {
	case throw.StateFailure:
		sink.Failure(ex.Message(), safeStackTrace(ex))
	case throw.StateIgnored:
		sink.Ignore(ex)
	case throw.StateInconclusive:
		sink.SetResult(throw.StateInconclusive, ex)
	case throw.StateSuccess:
		sink.Success(ex.Message())
	default:
		sink.Failure(
			v.combineWithUserMessage(v.wrongTypeText(ex)),
			safeStackTrace(ex),
		)
	}
}

// typeMatches compares fully-qualified type names for exact equality.
// Subtypes do not match; an absent expected type matches anything.
func (v *Verifier) typeMatches(ex *throw.Exception) bool {
	if !v.criteria.ExpectsType() {
		return true
	}

	return ex.TypeName() == v.criteria.TypeName
}

func (v *Verifier) expectedName() string {
	if !v.criteria.ExpectsType() {
		return anyExceptionName
	}

	return v.criteria.TypeName
}

func (v *Verifier) noExceptionMessage() string {
	return v.expectedName() + " was expected"
}

func (v *Verifier) wrongTypeText(ex *throw.Exception) string {
	return "An unexpected exception type was thrown\n" +
		"Expected: " + v.criteria.TypeName + "\n" +
		" but was: " + ex.TypeName() + " : " + ex.Message()
}

func (v *Verifier) wrongMessageText(ex *throw.Exception) string {
	return "The exception message text was incorrect\n" +
		v.matcher.Expectation() + v.matcher.String() + "\n" +
		" but was: " + ex.Message()
}

// combineWithUserMessage prefixes the user-supplied message, when present,
// to a generated diagnostic.
func (v *Verifier) combineWithUserMessage(message string) string {
	if v.criteria.UserMessage == "" {
		return message
	}

	return v.criteria.UserMessage + "\n" + message
}

// safeStackTrace retrieves the exception's stack trace, substituting a
// placeholder when retrieval fails. The primary failure's message stays
// the dominant signal; trace retrieval problems never propagate.
func safeStackTrace(ex *throw.Exception) (trace string) {
	defer func() {
		if r := recover(); r != nil {
			trace = noStackTrace
		}
	}()

	s, err := ex.StackTrace()
	if err != nil {
		return noStackTrace
	}

	return s
}
