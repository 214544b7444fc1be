package cliconfig

// RootConfig is the constraint for application root configuration types: any
// struct able to round-trip through the supported codecs and to produce its
// own default value. Implementations typically aggregate sub-config structs,
// one per application concern.
//
//	type AppRootConfig struct {
//	    Log LogConfig
//	}
//
//	func (AppRootConfig) Default() AppRootConfig { ... }
//
// Values are never mutated in place by this package: merges and overrides
// always produce a new value.
type RootConfig[C any] interface {
	// Default returns the configuration the application starts from when no
	// file and no overrides are present. Called on the zero value.
	Default() C
}

// CmdLineOptions is the capability set a parsed command-line options type must
// expose to drive the resolution pipeline. Parsing itself is delegated to the
// integrator (see [ParseFunc]); any flag library works.
type CmdLineOptions[C any] interface {
	// ConfigFilePath returns the configuration file explicitly selected on
	// the command line, or "" to trigger the default path search
	// (<program-name>.config.ron, then <program-name>.config.yaml).
	//
	// Supported formats & extensions: '.ron', '.yaml' & '.yml', '.toml'.
	// If the selected file doesn't exist, one is created with default values.
	ConfigFilePath() string

	// ShouldShowEffectiveConfig reports whether the effective configuration
	// (config file + command-line overrides) must be dumped to the
	// diagnostics stream before the pipeline returns.
	ShouldShowEffectiveConfig() bool

	// ShouldWriteEffectiveConfig reports whether the config file must be
	// rewritten with the effective configuration. USE WITH CAUTION: any
	// hand-written comments and any values overridden by the command line
	// are lost. The old file is kept, renamed with a '~' suffix.
	ShouldWriteEffectiveConfig() bool

	// MergeWithConfig merges the receiver's command-line values into the
	// given configuration, returning the effective configuration.
	// Command-line values take precedence; fields without a command-line
	// counterpart keep the configuration's values.
	MergeWithConfig(config C) C
}

// ParseFunc parses command-line arguments (excluding the program name) into
// the integrator's options type. It must be deterministic and side-effect
// free; malformed arguments are reported through the returned error.
type ParseFunc[C any, O CmdLineOptions[C]] func(args []string) (O, error)
