// Package cliconfig reconciles a persisted configuration file with command-line
// overrides, producing the single "effective configuration" an application
// consumes at startup.
//
// Features:
//   - Format-agnostic (de)serialization selected by file extension:
//     RON-like (.ron), YAML (.yaml, .yml) and TOML (.toml)
//   - Load-or-create-default semantics: a missing config file is not an error,
//     it is written out with the schema's default values and documentation
//   - Safe effective-config rewrite: the previous file is backed up with a '~'
//     suffix before the merged configuration is written in its place
//   - Documentation extraction from the config-model sources themselves, so
//     generated files carry the field docs right next to the values
//   - Optional environment variable overrides layered between the file and the
//     command-line merge
//   - Schema-agnostic by design: any struct with a Default method plugs in
//
// Quick Start:
//
//	type AppRootConfig struct {
//	    Server ServerConfig
//	    Log    LogConfig
//	}
//
//	func (AppRootConfig) Default() AppRootConfig {
//	    var config AppRootConfig
//	    config.Server.Port = 8080
//	    return config
//	}
//
//	//go:embed *.go
//	var configModelSources embed.FS
//
//	func main() {
//	    docs, _ := cliconfig.DocumentedConfigModels(configModelSources)
//	    effective, err := cliconfig.ParseCmdLineAndMergeWithLoadedConfigs[AppRootConfig](parseOptions, docs)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    run(effective)
//	}
//
// Effective precedence (highest to lowest):
//  1. Command-line options (via the options type's MergeWithConfig)
//  2. Environment variables (when enabled with WithEnvPrefix)
//  3. Configuration file
//  4. Default values (the schema's Default method)
//
// The command-line parsing library is not prescribed: any options type
// implementing [CmdLineOptions] plugs into the pipeline. The example under
// example/ uses spf13/pflag.
package cliconfig
