// Package config provides the schema types for declarative test
// expectation criteria. Expectations are the structured equivalent of an
// attribute on a test method: they declare what exception the test is
// required to throw.
package config

// CurrentConfigVersion is the latest expectations schema version.
const CurrentConfigVersion = 1

// Config represents the root of an expectations file.
type Config struct {
	// Version is the expectations schema version. Defaults to 1 when omitted.
	Version int `json:"version,omitempty" koanf:"version" toml:"version,omitempty"`

	// Expectations maps a test method name to its expectation criteria.
	Expectations map[string]*ExpectationConfig `json:"expectations,omitempty" koanf:"expectations" toml:"expectations,omitempty"`
}

// ExpectationConfig declares the exception a single test method is
// required to throw. All fields beyond Type are optional.
type ExpectationConfig struct {
	// Type is the fully-qualified name of the expected exception type.
	// Empty means any exception is acceptable.
	Type string `json:"type,omitempty" koanf:"type" toml:"type,omitempty"`

	// Message is the text matched against the thrown exception's message.
	// Nil means the message is not checked.
	Message *string `json:"message,omitempty" koanf:"message" toml:"message,omitempty"`

	// Match selects how Message is compared. Defaults to exact.
	Match MatchStrategy `json:"match,omitempty" koanf:"match" toml:"match,omitempty"`

	// Handler names a handler method on the fixture to invoke with the
	// matched exception. Empty means the conventional default handler is
	// used when the fixture declares the exception-handling capability.
	Handler string `json:"handler,omitempty" koanf:"handler" toml:"handler,omitempty"`

	// UserMessage is prefixed to any generated failure message.
	UserMessage string `json:"user_message,omitempty" koanf:"user_message" toml:"user_message,omitempty"`
}

// GetExpectations returns the expectations map, creating it if it doesn't
// exist.
func (c *Config) GetExpectations() map[string]*ExpectationConfig {
	if c.Expectations == nil {
		c.Expectations = make(map[string]*ExpectationConfig)
	}

	return c.Expectations
}

// Expectation returns the expectation declared for the given test method
// name, if any.
func (c *Config) Expectation(name string) (*ExpectationConfig, bool) {
	if c == nil || c.Expectations == nil {
		return nil, false
	}

	e, ok := c.Expectations[name]

	return e, ok
}

// HasMessage reports whether a message check is declared.
func (e *ExpectationConfig) HasMessage() bool {
	return e != nil && e.Message != nil
}

// GetMessage returns the declared message text, empty when absent.
func (e *ExpectationConfig) GetMessage() string {
	if e == nil || e.Message == nil {
		return ""
	}

	return *e.Message
}
