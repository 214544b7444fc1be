package cliconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// debugDump renders configuration and options values for human consumption
// (diagnostic dumps and rewrite documentation). Deterministic output: sorted
// map keys, no pointer addresses.
var debugDump = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Resolver drives the configuration resolution pipeline for a root config
// type C and a command-line options type O: parse the command line, resolve
// the config file path, load or create the configuration, apply optional
// environment overrides, merge the command-line options in, and honor the
// show/write-effective-config flags. Build one with [NewResolver] and
// customize it with the With* methods before calling [Resolver.Resolve].
type Resolver[C RootConfig[C], O CmdLineOptions[C]] struct {
	parse       ParseFunc[C, O]
	args        []string
	tailDocs    string
	envPrefix   string
	diagnostics io.Writer
	now         func() time.Time
}

// NewResolver creates a resolver using parse for the command-line options.
// Defaults: the process's own arguments, no documentation text, no
// environment overrides, diagnostics to stderr.
func NewResolver[C RootConfig[C], O CmdLineOptions[C]](parse ParseFunc[C, O]) *Resolver[C, O] {
	return &Resolver[C, O]{
		parse:       parse,
		args:        os.Args,
		diagnostics: os.Stderr,
		now:         time.Now,
	}
}

// WithArgs sets the argument vector to resolve against. args[0] is the
// program name (used for the default config file path); the rest is handed
// to the parse function.
func (r *Resolver[C, O]) WithArgs(args []string) *Resolver[C, O] {
	r.args = args
	return r
}

// WithTailDocs sets the documentation text appended to config files this
// resolver creates, typically the output of [DocumentedConfigModels].
func (r *Resolver[C, O]) WithTailDocs(tailDocs string) *Resolver[C, O] {
	r.tailDocs = tailDocs
	return r
}

// WithEnvPrefix enables environment variable overrides with the given
// prefix, e.g. "MYAPP_". See [ApplyEnvOverrides].
func (r *Resolver[C, O]) WithEnvPrefix(prefix string) *Resolver[C, O] {
	r.envPrefix = prefix
	return r
}

// WithDiagnostics redirects the effective-config dump away from stderr.
func (r *Resolver[C, O]) WithDiagnostics(w io.Writer) *Resolver[C, O] {
	r.diagnostics = w
	return r
}

// Resolve runs the pipeline and returns the effective configuration the
// application must use. Every step is attempted at most once; the first
// failure aborts the resolution with a path-annotated error.
func (r *Resolver[C, O]) Resolve() (C, error) {
	var zero C

	programArgs := r.args
	if len(programArgs) > 0 {
		programArgs = programArgs[1:]
	}
	cmdlineOptions, err := r.parse(programArgs)
	if err != nil {
		return zero, fmt.Errorf("%w: parsing command line options: %w", ErrLoadingConfig, err)
	}

	configFilePath, err := resolveConfigFilePath(cmdlineOptions.ConfigFilePath(), r.args)
	if err != nil {
		return zero, err
	}

	loadedConfig, err := LoadOrCreateDefault[C](configFilePath, r.tailDocs)
	if err != nil {
		return zero, err
	}

	mergeBase := loadedConfig
	if r.envPrefix != "" {
		mergeBase, err = ApplyEnvOverrides(mergeBase, r.envPrefix)
		if err != nil {
			return zero, err
		}
	}

	effectiveConfig := MergeCmdLineArgsWithConfigs(cmdlineOptions, mergeBase)

	if cmdlineOptions.ShouldShowEffectiveConfig() {
		_, err := fmt.Fprintf(r.diagnostics, "EFFECTIVE PROGRAM CONFIGURATION: %s\n", debugDump.Sdump(effectiveConfig))
		if err != nil {
			return zero, fmt.Errorf("%w: dumping the effective program configuration to the diagnostics stream: %w", ErrLoadingConfig, err)
		}
	}

	if cmdlineOptions.ShouldWriteEffectiveConfig() {
		if err := r.writeEffectiveConfig(configFilePath, cmdlineOptions, loadedConfig, effectiveConfig); err != nil {
			return zero, err
		}
	}

	return effectiveConfig, nil
}

// writeEffectiveConfig backs up the current config file (by appending '~' to
// its name) and rewrites it with the effective configuration, documented with
// the rewrite timestamp, the command-line options and the previous
// configuration. If the backup rename fails, the original file is left
// untouched; if the subsequent save fails, the backup is renamed back so the
// original path is never left empty.
func (r *Resolver[C, O]) writeEffectiveConfig(configFilePath string, cmdlineOptions O, loadedConfig C, effectiveConfig C) error {
	backupConfigFilePath := configFilePath + "~"

	docComments := fmt.Sprintf(`
Rewritten from merging the previous configs & the command line options at %s
(previous configuration file backed up to '%s')

COMMAND LINE OPTIONS: %s
PREVIOUS CONFIG: %s`,
		r.now().Format(time.UnixDate),
		backupConfigFilePath,
		debugDump.Sdump(cmdlineOptions),
		debugDump.Sdump(loadedConfig))

	if err := os.Rename(configFilePath, backupConfigFilePath); err != nil {
		return fmt.Errorf("%w: rewriting the config file '%s' with a new effective configuration: the file couldn't be renamed to '%s': %w",
			ErrSavingConfig, configFilePath, backupConfigFilePath, err)
	}

	if err := Save(effectiveConfig, docComments, configFilePath); err != nil {
		// restore the backup so the original path is not left without a file
		if restoreErr := os.Rename(backupConfigFilePath, configFilePath); restoreErr != nil {
			return errors.Join(err,
				fmt.Errorf("%w: restoring '%s' from its backup '%s' after a failed rewrite: %w",
					ErrSavingConfig, configFilePath, backupConfigFilePath, restoreErr))
		}
		return err
	}
	return nil
}

// MergeCmdLineArgsWithConfigs returns the "effective configuration"
// applications should use: the given command-line options merged into the
// given root config, with command-line values taking precedence.
func MergeCmdLineArgsWithConfigs[C RootConfig[C], O CmdLineOptions[C]](cmdlineOptions O, rootConfig C) C {
	return cmdlineOptions.MergeWithConfig(rootConfig)
}
