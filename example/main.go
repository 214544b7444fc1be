// A complete example integrator: an application whose configuration comes
// from a config file reconciled with command-line options by cliconfig.
//
// Try it out:
//
//	go run .                               # creates ./example.config.ron with defaults & docs
//	go run . --log-level debug            # overrides the file's log level for this run
//	go run . --show-effective-config      # dumps the merged configuration to stderr
//	go run . --write-effective-config     # rewrites the config file (backing it up with a '~')
//	EXAMPLE_SERVER_PORT=9090 go run .     # environment override, between file and CLI
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	cliconfig "github.com/zertyz/ogre-config-meld"
	"github.com/zertyz/ogre-config-meld/example/appconfig"
)

// CmdLineOptions is this application's command-line surface. Besides the
// three standard config-handling flags it exposes a couple of config
// overrides, applied in MergeWithConfig.
type CmdLineOptions struct {
	ConfigFile           string
	ShowEffectiveConfig  bool
	WriteEffectiveConfig bool
	LogLevel             string
	ServerPort           int
}

func (o CmdLineOptions) ConfigFilePath() string { return o.ConfigFile }
func (o CmdLineOptions) ShouldShowEffectiveConfig() bool { return o.ShowEffectiveConfig }
func (o CmdLineOptions) ShouldWriteEffectiveConfig() bool { return o.WriteEffectiveConfig }

func (o CmdLineOptions) MergeWithConfig(config appconfig.AppRootConfig) appconfig.AppRootConfig {
	if o.LogLevel != "" {
		config.Log.Level = o.LogLevel
	}
	if o.ServerPort != 0 {
		config.Server.Port = o.ServerPort
	}
	return config
}

func parseCmdLineOptions(args []string) (CmdLineOptions, error) {
	var opts CmdLineOptions
	flagSet := pflag.NewFlagSet("example", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.ConfigFile, "config-file", "c", "", "configuration file to use (.ron, .yaml, .yml or .toml)")
	flagSet.BoolVar(&opts.ShowEffectiveConfig, "show-effective-config", false, "dump the effective configuration to stderr")
	flagSet.BoolVar(&opts.WriteEffectiveConfig, "write-effective-config", false, "rewrite the config file with the effective configuration")
	flagSet.StringVar(&opts.LogLevel, "log-level", "", "override the configured log level")
	flagSet.IntVar(&opts.ServerPort, "server-port", 0, "override the configured server port")
	err := flagSet.Parse(args)
	return opts, err
}

func main() {
	docs, err := cliconfig.DocumentedConfigModels(appconfig.Sources)
	if err != nil {
		log.Fatalf("extracting config docs: %v", err)
	}

	effective, err := cliconfig.NewResolver[appconfig.AppRootConfig](parseCmdLineOptions).
		WithTailDocs(docs).
		WithEnvPrefix("EXAMPLE_").
		Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log.Printf("would now serve on %s:%d (up to %d connections, log level %q, log sink %q)",
		effective.Server.Host, effective.Server.Port, effective.Server.MaxConnections,
		effective.Log.Level, effective.Log.Sink)
}
