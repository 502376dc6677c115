package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nisha-kaushik/nunit/pkg/config"
)

// CustomDecoderConfig returns a mapstructure decoder config with a custom
// type hook for the MatchStrategy type.
func CustomDecoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToMatchStrategyHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           nil, // Set by caller
	}
}

// stringToMatchStrategyHookFunc returns a decode hook for converting
// strings to config.MatchStrategy.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToMatchStrategyHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[config.MatchStrategy]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return config.ParseMatchStrategy(v)

		case int:
			return config.MatchStrategy(v), nil

		case int64:
			return config.MatchStrategy(v), nil

		default:
			return data, nil
		}
	}
}
