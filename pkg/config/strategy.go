package config

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidMatchStrategy is returned when an invalid match strategy value
// is provided.
var ErrInvalidMatchStrategy = errors.New("invalid match strategy")

// MatchStrategy describes how an expected message is compared against the
// actual exception message.
type MatchStrategy int

const (
	// MatchExact requires the actual message to equal the expected text
	// byte-for-byte. This is the default.
	MatchExact MatchStrategy = iota

	// MatchContains requires the expected text to be a substring of the
	// actual message.
	MatchContains

	// MatchRegexp treats the expected text as a regular expression and
	// requires the actual message to match it anywhere (unanchored).
	MatchRegexp

	// MatchStartsWith requires the actual message to begin with the
	// expected text.
	MatchStartsWith
)

// IsValid reports whether the value is one of the declared strategies.
func (s MatchStrategy) IsValid() bool {
	switch s {
	case MatchExact, MatchContains, MatchRegexp, MatchStartsWith:
		return true
	default:
		return false
	}
}

// String returns the canonical string form used in configuration files.
func (s MatchStrategy) String() string {
	switch s {
	case MatchExact:
		return "exact"
	case MatchContains:
		return "contains"
	case MatchRegexp:
		return "regexp"
	case MatchStartsWith:
		return "startswith"
	default:
		return "unknown"
	}
}

// ParseMatchStrategy parses a string into a MatchStrategy value. The empty
// string parses to the default strategy.
func ParseMatchStrategy(s string) (MatchStrategy, error) {
	switch strings.ToLower(s) {
	case "", MatchExact.String():
		return MatchExact, nil
	case MatchContains.String():
		return MatchContains, nil
	case MatchRegexp.String():
		return MatchRegexp, nil
	case MatchStartsWith.String():
		return MatchStartsWith, nil
	default:
		return MatchExact,
			errors.Wrapf(
				ErrInvalidMatchStrategy,
				"%q, must be one of %q, %q, %q, %q",
				s,
				MatchExact.String(),
				MatchContains.String(),
				MatchRegexp.String(),
				MatchStartsWith.String(),
			)
	}
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (s MatchStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (s *MatchStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseMatchStrategy(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
