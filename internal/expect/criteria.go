package expect

import (
	"github.com/nisha-kaushik/nunit/pkg/config"
)

// Criteria describes what a test's exception is expected to look like.
// Set once, at verifier construction, and never mutated afterward.
type Criteria struct {
	// TypeName is the fully-qualified name of the expected exception type.
	// Empty means any exception is acceptable.
	TypeName string

	// Message is the text matched against the thrown exception's message.
	// Nil means the message is not checked.
	Message *string

	// Strategy selects how Message is compared.
	Strategy config.MatchStrategy

	// HandlerName names a handler method on the fixture. Empty means the
	// conventional default handler is looked up via the capability marker.
	HandlerName string

	// UserMessage is prefixed to any generated failure message.
	UserMessage string
}

// ExpectsType reports whether a specific exception type is required.
func (c Criteria) ExpectsType() bool {
	return c.TypeName != ""
}

// ExpectsMessage reports whether a message check is declared.
func (c Criteria) ExpectsMessage() bool {
	return c.Message != nil
}
