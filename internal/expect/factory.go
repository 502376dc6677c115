package expect

import (
	"github.com/cockroachdb/errors"

	"github.com/nisha-kaushik/nunit/internal/fixture"
	"github.com/nisha-kaushik/nunit/pkg/config"
)

// ErrNilExpectation is returned when a verifier is requested for a test
// with no expectation entry.
var ErrNilExpectation = errors.New("nil expectation config")

// FromConfig builds a verifier from a declarative expectation entry. The
// name identifies the test method and only appears in error messages.
func FromConfig(
	name string,
	cfg *config.ExpectationConfig,
	d fixture.Descriptor,
	opts ...Option,
) (*Verifier, error) {
	if cfg == nil {
		return nil, errors.Wrapf(ErrNilExpectation, "test %s", name)
	}

	criteria := Criteria{
		TypeName:    cfg.Type,
		Message:     cfg.Message,
		Strategy:    cfg.Match,
		HandlerName: cfg.Handler,
		UserMessage: cfg.UserMessage,
	}

	verifier, err := NewVerifier(criteria, d, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "building verifier for test %s", name)
	}

	return verifier, nil
}
