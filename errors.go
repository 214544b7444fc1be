package cliconfig

import "errors"

// Error categories returned by this package. Failures are wrapped with
// contextual information (the file path, the operation attempted) and with
// their underlying cause, so callers can detect classes using errors.Is/As:
//   - ErrLoadingConfig: read or deserialization failure while loading a config file.
//   - ErrSavingConfig: serialization, rename or write failure while persisting.
//   - ErrUnsupportedConfigFileFormat: file extension (or lack of one) not recognized.
//   - ErrRon, ErrYaml, ErrToml: codec-level (de)serialization failures, one per format.
//
// A missing config file is not an error: loading reports it as "absent" and
// the store falls back to creating the default.
var (
	ErrLoadingConfig               = errors.New("loading config")
	ErrSavingConfig                = errors.New("saving config")
	ErrUnsupportedConfigFileFormat = errors.New("unsupported config file format")
	ErrRon                         = errors.New("ron codec")
	ErrYaml                        = errors.New("yaml codec")
	ErrToml                        = errors.New("toml codec")
)
