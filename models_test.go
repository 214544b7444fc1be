package cliconfig

import (
	"github.com/spf13/pflag"
)

// Shared test schema: a root config aggregating two sub-configs, the way a
// typical integrator lays theirs out.

// AppRootConfig is the root of the test application's configuration.
type AppRootConfig struct {
	// Server holds the network-facing settings
	Server ServerConfig
	// Log specifies what the application does with its log messages
	Log LogConfig
}

func (AppRootConfig) Default() AppRootConfig {
	var config AppRootConfig
	config.Server.Host = "localhost"
	config.Server.Port = 8080
	config.Log.Level = "info"
	config.Log.Sink = "stdout"
	return config
}

// ServerConfig holds the listening address settings.
type ServerConfig struct {
	// Host is the address to bind to
	Host string
	// Port is the TCP port to listen on
	Port int
}

// LogConfig specifies the logging behavior.
type LogConfig struct {
	// Level is the minimum severity to emit
	Level string
	// Sink is where log messages go: "stdout", "stderr" or "null"
	Sink string
}

// testCmdLineOptions implements CmdLineOptions over the test schema, parsed
// with pflag the way the example integrator does.
type testCmdLineOptions struct {
	configFile     string
	showEffective  bool
	writeEffective bool
	logLevel       string
	serverPort     int
}

func (o testCmdLineOptions) ConfigFilePath() string { return o.configFile }
func (o testCmdLineOptions) ShouldShowEffectiveConfig() bool { return o.showEffective }
func (o testCmdLineOptions) ShouldWriteEffectiveConfig() bool { return o.writeEffective }

func (o testCmdLineOptions) MergeWithConfig(config AppRootConfig) AppRootConfig {
	if o.logLevel != "" {
		config.Log.Level = o.logLevel
	}
	if o.serverPort != 0 {
		config.Server.Port = o.serverPort
	}
	return config
}

func parseTestOptions(args []string) (testCmdLineOptions, error) {
	var opts testCmdLineOptions
	flagSet := pflag.NewFlagSet("app", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.configFile, "config-file", "c", "", "configuration file to use")
	flagSet.BoolVar(&opts.showEffective, "show-effective-config", false, "dump the effective configuration to the diagnostics stream")
	flagSet.BoolVar(&opts.writeEffective, "write-effective-config", false, "rewrite the config file with the effective configuration")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	flagSet.IntVar(&opts.serverPort, "server-port", 0, "override the configured server port")
	err := flagSet.Parse(args)
	return opts, err
}
