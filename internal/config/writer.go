package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/nisha-kaushik/nunit/internal/schema"
	"github.com/nisha-kaushik/nunit/pkg/config"
)

const (
	// expectationsFileMode is the file mode for expectations files (user
	// read/write only).
	expectationsFileMode = 0o600

	// expectationsDirMode is the file mode for created directories.
	expectationsDirMode = 0o700
)

// ErrNilConfig is returned when a nil config is passed to the writer.
var ErrNilConfig = errors.New("nil config")

// Writer writes expectations configuration to TOML files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile writes the expectations configuration to the given path. The
// output starts with the Taplo schema directive and is indented per table.
func (w *Writer) WriteFile(path string, cfg *config.Config) error {
	if cfg == nil {
		return errors.Wrap(ErrNilConfig, "cannot write expectations")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, expectationsDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	var buf bytes.Buffer

	buf.WriteString(schema.Directive())
	buf.WriteByte('\n')

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode expectations to TOML")
	}

	if err := os.WriteFile(path, buf.Bytes(), expectationsFileMode); err != nil {
		return errors.Wrapf(err, "failed to write expectations file %s", path)
	}

	return nil
}

// Scaffold returns a starter expectations config with one worked example
// per field, suitable as the seed for a new expectations file.
func Scaffold() *config.Config {
	message := "attempted to divide by zero"

	return &config.Config{
		Version: config.CurrentConfigVersion,
		Expectations: map[string]*config.ExpectationConfig{
			"TestDivideByZero": {
				Type:    "System.DivideByZeroException",
				Message: &message,
				Match:   config.MatchContains,
			},
		},
	}
}
