package cliconfig

import (
	"fmt"
	"os"
)

// configFileSuffixes lists the default config file suffix candidates appended
// to the program name, probed in order. The first entry doubles as the
// fallback, so a fresh default file is always created in the preferred format.
var configFileSuffixes = []string{
	".config.ron",
	".config.yaml",
}

// resolveConfigFilePath returns the config file path the pipeline should use:
// the explicit path when one was given on the command line (existing or not),
// otherwise the default path derived from the program name in args[0].
func resolveConfigFilePath(explicitPath string, args []string) (string, error) {
	if explicitPath != "" {
		return explicitPath, nil
	}
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%w: program name couldn't be retrieved from the arguments; please specify which configuration file to use via the command line",
			ErrLoadingConfig)
	}
	return defaultConfigFilePath(args[0]), nil
}

// defaultConfigFilePath probes <programName><suffix> for each candidate
// suffix and returns the first that exists on disk; when none does, the
// first candidate is returned so it gets created with defaults.
func defaultConfigFilePath(programName string) string {
	for _, suffix := range configFileSuffixes {
		candidate := programName + suffix
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return programName + configFileSuffixes[0]
}
