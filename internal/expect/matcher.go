package expect

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/nisha-kaushik/nunit/pkg/config"
)

// MessageMatcher compares an actual exception message against expected
// text. Each matcher carries the diagnostic prefix naming its strategy so
// failure messages can state how the comparison was performed.
type MessageMatcher interface {
	// Match returns true if the actual message satisfies the expectation.
	Match(actual string) bool

	// Expectation returns the diagnostic prefix for this strategy.
	Expectation() string

	// String returns the expected text.
	String() string
}

// ExactMatcher requires the actual message to equal the expected text.
type ExactMatcher struct {
	text string
}

// NewExactMatcher creates a matcher for byte-for-byte equality.
func NewExactMatcher(text string) *ExactMatcher {
	return &ExactMatcher{text: text}
}

// Match returns true if the actual message equals the expected text.
func (m *ExactMatcher) Match(actual string) bool {
	return actual == m.text
}

// Expectation returns the diagnostic prefix.
func (*ExactMatcher) Expectation() string {
	return "Expected: "
}

// String returns the expected text.
func (m *ExactMatcher) String() string {
	return m.text
}

// ContainsMatcher requires the expected text to be a substring of the
// actual message.
type ContainsMatcher struct {
	text string
}

// NewContainsMatcher creates a matcher for substring containment.
func NewContainsMatcher(text string) *ContainsMatcher {
	return &ContainsMatcher{text: text}
}

// Match returns true if the actual message contains the expected text.
func (m *ContainsMatcher) Match(actual string) bool {
	return strings.Contains(actual, m.text)
}

// Expectation returns the diagnostic prefix.
func (*ContainsMatcher) Expectation() string {
	return "Expected message containing: "
}

// String returns the expected text.
func (m *ContainsMatcher) String() string {
	return m.text
}

// RegexpMatcher treats the expected text as a regular expression matched
// anywhere in the actual message (unanchored).
type RegexpMatcher struct {
	text     string
	compiled *regexp.Regexp
}

// NewRegexpMatcher creates a matcher from a regular expression. The
// pattern is compiled once, at construction.
func NewRegexpMatcher(text string) (*RegexpMatcher, error) {
	compiled, err := regexp.Compile(text)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling message pattern %q", text)
	}

	return &RegexpMatcher{
		text:     text,
		compiled: compiled,
	}, nil
}

// Match returns true if the actual message matches the pattern anywhere.
func (m *RegexpMatcher) Match(actual string) bool {
	return m.compiled.MatchString(actual)
}

// Expectation returns the diagnostic prefix.
func (*RegexpMatcher) Expectation() string {
	return "Expected message matching: "
}

// String returns the expected pattern.
func (m *RegexpMatcher) String() string {
	return m.text
}

// StartsWithMatcher requires the actual message to begin with the expected
// text.
type StartsWithMatcher struct {
	text string
}

// NewStartsWithMatcher creates a matcher for prefix matching.
func NewStartsWithMatcher(text string) *StartsWithMatcher {
	return &StartsWithMatcher{text: text}
}

// Match returns true if the actual message starts with the expected text.
func (m *StartsWithMatcher) Match(actual string) bool {
	return strings.HasPrefix(actual, m.text)
}

// Expectation returns the diagnostic prefix.
func (*StartsWithMatcher) Expectation() string {
	return "Expected message starting: "
}

// String returns the expected text.
func (m *StartsWithMatcher) String() string {
	return m.text
}

// MatcherFor creates the matcher for the given strategy and expected text.
//
//nolint:ireturn // interface for polymorphism
func MatcherFor(strategy config.MatchStrategy, text string) (MessageMatcher, error) {
	switch strategy {
	case config.MatchContains:
		return NewContainsMatcher(text), nil
	case config.MatchRegexp:
		return NewRegexpMatcher(text)
	case config.MatchStartsWith:
		return NewStartsWithMatcher(text), nil
	case config.MatchExact:
		return NewExactMatcher(text), nil
	default:
		return nil, errors.Wrapf(config.ErrInvalidMatchStrategy, "%d", int(strategy))
	}
}

// Verify interface compliance.
var (
	_ MessageMatcher = (*ExactMatcher)(nil)
	_ MessageMatcher = (*ContainsMatcher)(nil)
	_ MessageMatcher = (*RegexpMatcher)(nil)
	_ MessageMatcher = (*StartsWithMatcher)(nil)
)
