// Package appconfig holds the example application's configuration schema.
// The field docs in this package are extracted by cliconfig and written at
// the tail of generated config files.
package appconfig

// AppRootConfig is the root of the application's configuration, aggregating
// one sub-config per concern.
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
	config.Server.MaxConnections = 256
	config.Log.Level = "info"
	config.Log.Sink = "stderr"
	return config
}

// ServerConfig holds the listening address settings.
type ServerConfig struct {
	// Host is the address to bind to
	Host string
	// Port is the TCP port to listen on
	Port int
	// MaxConnections caps the number of simultaneous client connections
	MaxConnections int
}

// LogConfig specifies where log messages go and which ones are kept.
type LogConfig struct {
	// Level is the minimum severity to emit: "trace", "debug", "info",
	// "warn" or "error"
	Level string
	// Sink is the destination of log messages: "stdout", "stderr" or "null"
	Sink string
}
