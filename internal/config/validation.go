package config

import (
	"regexp"

	"github.com/cockroachdb/errors"

	"github.com/nisha-kaushik/nunit/pkg/config"
)

var (
	// ErrEmptyExpectation is returned for an expectation entry with no body.
	ErrEmptyExpectation = errors.New("empty expectation entry")

	// ErrStrategyWithoutMessage is returned when a non-default match
	// strategy is declared without a message to match.
	ErrStrategyWithoutMessage = errors.New("match strategy declared without a message")

	// ErrInvalidPattern is returned when a regexp message pattern does not
	// compile.
	ErrInvalidPattern = errors.New("invalid message pattern")

	// ErrUnknownStrategy is returned when an entry declares a match strategy
	// value outside the known set.
	ErrUnknownStrategy = errors.New("unknown match strategy")
)

// EntryError ties a validation error to the expectation entry it came from.
type EntryError struct {
	// Test is the test method name keying the entry.
	Test string

	// Err is the underlying validation error.
	Err error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return e.Test + ": " + e.Err.Error()
}

// Unwrap returns the underlying validation error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// Validate checks every expectation entry for configuration errors that
// would otherwise only surface when the test runs: unknown strategy
// values, unparseable regexp patterns, and strategies that have nothing
// to match. Returns one error per invalid entry.
func Validate(cfg *config.Config) []*EntryError {
	if cfg == nil {
		return nil
	}

	var errs []*EntryError

	for name, entry := range cfg.Expectations {
		if err := validateEntry(entry); err != nil {
			errs = append(errs, &EntryError{Test: name, Err: err})
		}
	}

	return errs
}

func validateEntry(entry *config.ExpectationConfig) error {
	if entry == nil {
		return ErrEmptyExpectation
	}

	if !entry.Match.IsValid() {
		return errors.Wrapf(ErrUnknownStrategy, "%d", int(entry.Match))
	}

	if !entry.HasMessage() {
		if entry.Match != config.MatchExact {
			return errors.Wrapf(
				ErrStrategyWithoutMessage,
				"strategy %q",
				entry.Match.String(),
			)
		}

		return nil
	}

	if entry.Match == config.MatchRegexp {
		if _, err := regexp.Compile(entry.GetMessage()); err != nil {
			return errors.Wrapf(ErrInvalidPattern, "%v", err)
		}
	}

	return nil
}
