package cliconfig

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ApplyEnvOverrides returns a copy of config with environment variable
// overrides applied. Candidate variable names are derived from the struct's
// field paths: prefix + the path in SCREAMING_SNAKE_CASE, so with prefix
// "MYAPP_" the field Server.Port is overridden by MYAPP_SERVER_PORT. Values
// are parsed leniently (bool, integer, float, quoted or bare string) and
// decoded over the configuration, leaving unmentioned fields untouched.
//
// In the resolution pipeline this layer sits between the configuration file
// and the command-line merge, so the precedence is file < env < CLI.
func ApplyEnvOverrides[C RootConfig[C]](config C, prefix string) (C, error) {
	overrides := make(map[string]any)
	collectEnvOverrides(reflect.TypeOf(config), prefix, nil, overrides)
	if len(overrides) == 0 {
		return config, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &config,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return config, fmt.Errorf("%w: environment override decoder creation failed: %w", ErrLoadingConfig, err)
	}
	if err := decoder.Decode(overrides); err != nil {
		return config, fmt.Errorf("%w: environment override decoding failed: %w", ErrLoadingConfig, err)
	}
	return config, nil
}

// collectEnvOverrides walks the configuration struct's shape and records, for
// every leaf field whose derived environment variable is set, the parsed
// value under the field's dot-notation path.
func collectEnvOverrides(shape reflect.Type, prefix string, path []string, overrides map[string]any) {
	for shape != nil && shape.Kind() == reflect.Pointer {
		shape = shape.Elem()
	}
	if shape == nil || shape.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < shape.NumField(); i++ {
		field := shape.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldPath := append(path[:len(path):len(path)], field.Name)

		fieldType := field.Type
		for fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		// time.Time is a leaf despite being a struct: overridden as RFC3339
		if fieldType.Kind() == reflect.Struct && fieldType != reflect.TypeOf(time.Time{}) {
			collectEnvOverrides(fieldType, prefix, fieldPath, overrides)
			continue
		}

		envVar := prefix + strings.ToUpper(strings.Join(fieldPath, "_"))
		if value, exists := os.LookupEnv(envVar); exists {
			setNestedValue(overrides, strings.Join(fieldPath, "."), parseValue(value))
		}
	}
}
