// Package config loads expectation criteria from declarative sources.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/nisha-kaushik/nunit/pkg/config"
)

var (
	// ErrConfigNotFound is returned when the expectations file is missing.
	ErrConfigNotFound = errors.New("expectations file not found")

	// ErrInvalidTOML is returned when the expectations file cannot be parsed.
	ErrInvalidTOML = errors.New("invalid TOML")
)

const (
	// DefaultConfigFile is the conventional expectations file name.
	DefaultConfigFile = "expectations.toml"

	envPrefix = "NUNIT_"
)

// Loader loads the expectations configuration from layered sources.
// Precedence order (highest to lowest):
// 1. Environment variables (NUNIT_*)
// 2. Expectations file (TOML)
// 3. Defaults
type Loader struct {
	k    *koanf.Koanf
	path string
}

// NewLoader creates a Loader for the given expectations file path. An
// empty path loads defaults and environment variables only.
func NewLoader(path string) *Loader {
	return &Loader{
		k:    koanf.New("."),
		path: path,
	}
}

// Load loads configuration from all sources with precedence and
// unmarshals it into the schema types.
func (l *Loader) Load() (*config.Config, error) {
	defaults := confmap.Provider(map[string]any{
		"version": config.CurrentConfigVersion,
	}, ".")

	if err := l.k.Load(defaults, nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if l.path != "" {
		if err := l.loadFile(l.path); err != nil {
			return nil, err
		}
	}

	envOpt := env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	var cfg config.Config

	unmarshalConf := koanf.UnmarshalConf{
		Tag:           "koanf",
		FlatPaths:     false,
		DecoderConfig: CustomDecoderConfig(),
	}
	unmarshalConf.DecoderConfig.Result = &cfg

	if err := l.k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal expectations")
	}

	return &cfg, nil
}

// loadFile loads a single TOML expectations file.
func (l *Loader) loadFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(ErrConfigNotFound, "%s", path)
	}

	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.Wrapf(ErrInvalidTOML, "%s: %v", path, err)
	}

	return nil
}

// envTransform transforms environment variable names to config paths.
// NUNIT_EXPECTATIONS_TESTDIVIDE_TYPE → expectations.testdivide.type
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, envPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	return key, value
}
