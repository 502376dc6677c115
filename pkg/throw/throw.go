// Package throw models thrown exceptions as the test engine sees them:
// a fully-qualified type name, a message, an optional inner cause, and an
// optional framework classification carried by control exceptions.
package throw

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultHandlerName is the conventionally-named handler method looked
	// up on fixtures that declare the Handler capability marker.
	DefaultHandlerName = "HandleException"

	assertionTypeName    = "nunit.framework.AssertionException"
	ignoreTypeName       = "nunit.framework.IgnoreException"
	inconclusiveTypeName = "nunit.framework.InconclusiveException"
	successTypeName      = "nunit.framework.SuccessException"
	wrapperTypeName      = "nunit.framework.TestWrapperException"
)

// Handler is the capability marker for fixtures that support exception
// handling. Fixtures implementing it get their HandleException method
// attached as the default handler when no explicit handler name is given.
type Handler interface {
	HandleException(ex *Exception)
}

// HandlerFunc is a resolved exception handler callable.
type HandlerFunc func(ex *Exception)

// StackProvider retrieves a stack trace for an exception. Retrieval may
// fail; callers are expected to substitute a placeholder in that case.
type StackProvider func() (string, error)

// Exception is an immutable description of a thrown exception. Instances
// are built once, when the test engine catches whatever the test body
// threw, and never mutated afterward.
type Exception struct {
	typeName string
	message  string
	state    ResultState
	inner    *Exception
	wrapper  bool
	stack    StackProvider
}

// Option configures an Exception at construction time.
type Option func(*Exception)

// WithStackProvider sets the stack trace provider.
func WithStackProvider(p StackProvider) Option {
	return func(ex *Exception) {
		ex.stack = p
	}
}

// WithInner attaches an inner cause.
func WithInner(inner *Exception) Option {
	return func(ex *Exception) {
		ex.inner = inner
	}
}

// New creates an ordinary exception with the given fully-qualified type
// name and message.
func New(typeName, message string, opts ...Option) *Exception {
	ex := &Exception{
		typeName: typeName,
		message:  message,
		state:    StateNone,
	}

	for _, opt := range opts {
		opt(ex)
	}

	return ex
}

// Wrap creates a framework-internal wrapper exception around an inner
// cause. Expectation comparisons never operate on wrappers; they unwrap
// to the innermost real exception first.
func Wrap(message string, inner *Exception) *Exception {
	return &Exception{
		typeName: wrapperTypeName,
		message:  message,
		state:    StateNone,
		inner:    inner,
		wrapper:  true,
	}
}

func newControl(typeName, message string, state ResultState, opts []Option) *Exception {
	ex := &Exception{
		typeName: typeName,
		message:  message,
		state:    state,
	}

	for _, opt := range opts {
		opt(ex)
	}

	return ex
}

// NewAssertionFailure creates a control exception classified as an
// intentional test failure.
func NewAssertionFailure(message string, opts ...Option) *Exception {
	return newControl(assertionTypeName, message, StateFailure, opts)
}

// NewIgnore creates a control exception classified as an intentional
// ignore.
func NewIgnore(message string, opts ...Option) *Exception {
	return newControl(ignoreTypeName, message, StateIgnored, opts)
}

// NewInconclusive creates a control exception classified as inconclusive.
func NewInconclusive(message string, opts ...Option) *Exception {
	return newControl(inconclusiveTypeName, message, StateInconclusive, opts)
}

// NewSuccess creates a control exception classified as an intentional
// success.
func NewSuccess(message string, opts ...Option) *Exception {
	return newControl(successTypeName, message, StateSuccess, opts)
}

// FromError adapts a Go error into an exception. The type name is the
// error's reflected type, the inner chain follows errors.Unwrap, and the
// stack trace is the error's verbose rendering (which includes the
// captured stack for cockroachdb errors).
func FromError(err error) *Exception {
	if err == nil {
		return nil
	}

	var inner *Exception
	if cause := errors.Unwrap(err); cause != nil {
		inner = FromError(cause)
	}

	return &Exception{
		typeName: reflect.TypeOf(err).String(),
		message:  err.Error(),
		state:    StateNone,
		inner:    inner,
		stack: func() (string, error) {
			return fmt.Sprintf("%+v", err), nil
		},
	}
}

// FromPanic adapts a recovered panic value into a wrapper exception whose
// inner cause is the real thrown exception.
func FromPanic(recovered any) *Exception {
	switch v := recovered.(type) {
	case *Exception:
		return Wrap("exception thrown by test method", v)
	case error:
		return Wrap("panic during test execution", FromError(v))
	default:
		inner := New(reflect.TypeOf(recovered).String(), fmt.Sprint(v))
		return Wrap("panic during test execution", inner)
	}
}

// TypeName returns the fully-qualified type name.
func (ex *Exception) TypeName() string {
	return ex.typeName
}

// Message returns the exception message.
func (ex *Exception) Message() string {
	return ex.message
}

// State returns the framework classification, StateNone for ordinary
// exceptions.
func (ex *Exception) State() ResultState {
	return ex.state
}

// Inner returns the inner cause, nil when there is none.
func (ex *Exception) Inner() *Exception {
	return ex.inner
}

// IsWrapper reports whether this is a framework-internal wrapper carrying
// the real exception as its inner cause.
func (ex *Exception) IsWrapper() bool {
	return ex.wrapper
}

// Innermost unwraps wrapper exceptions until it reaches the innermost
// non-wrapper exception. A wrapper without an inner cause is returned
// as-is.
func (ex *Exception) Innermost() *Exception {
	cur := ex
	for cur.wrapper && cur.inner != nil {
		cur = cur.inner
	}

	return cur
}

// StackTrace retrieves the stack trace. Exceptions without a provider
// report an empty trace without error.
func (ex *Exception) StackTrace() (string, error) {
	if ex.stack == nil {
		return "", nil
	}

	return ex.stack()
}

// String returns "typeName: message" for diagnostics and logging.
func (ex *Exception) String() string {
	if ex.message == "" {
		return ex.typeName
	}

	return ex.typeName + ": " + ex.message
}
