package cliconfig

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docsTestModelSource = `// Package appconfig holds the application's configuration schema.
// Field docs in this package end up next to the generated config files.
package appconfig

import (
	"time"

	"github.com/spf13/pflag"
)

//go:generate stringer -type=Sink

// AppRootConfig is the root of the application's configuration.
type AppRootConfig struct {
	// Server holds the network-facing settings
	Server ServerConfig
	// GracePeriod is how long to wait before forceful shutdown
	GracePeriod time.Duration
}

func (AppRootConfig) Default() AppRootConfig {
	var config AppRootConfig
	config.Server.Port = 8080
	return config
}

func (c AppRootConfig) Validate() error {
	if c.Server.Port <= 0 {
		return errInvalidPort
	}
	return nil
}
`

const docsTestSubModelSource = `package appconfig

import "fmt"

// ServerConfig holds the listening address settings.
type ServerConfig struct {
	// Host is the address to bind to
	Host string
	// Port is the TCP port to listen on
	Port int
}

func (c ServerConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
`

func TestDocumentedConfigModels(t *testing.T) {
	sources := fstest.MapFS{
		"appconfig.go": {Data: []byte(docsTestModelSource)},
		"server.go":    {Data: []byte(docsTestSubModelSource)},
	}

	docs, err := DocumentedConfigModels(sources)
	require.NoError(t, err)

	// removed constructs
	assert.NotContains(t, docs, "// Package appconfig")
	assert.NotContains(t, docs, "package appconfig")
	assert.NotContains(t, docs, "import")
	assert.NotContains(t, docs, "pflag")
	assert.NotContains(t, docs, "//go:generate")
	assert.NotContains(t, docs, "func ")
	assert.NotContains(t, docs, "Validate")
	assert.NotContains(t, docs, "Sprintf")

	// surviving field declarations and field docs
	assert.Contains(t, docs, "type AppRootConfig struct {")
	assert.Contains(t, docs, "// Server holds the network-facing settings")
	assert.Contains(t, docs, "// GracePeriod is how long to wait before forceful shutdown")
	assert.Contains(t, docs, "type ServerConfig struct {")
	assert.Contains(t, docs, "// Port is the TCP port to listen on")

	// blank-line runs are collapsed to exactly one blank line
	assert.NotContains(t, docs, "\n\n\n")
}

// TestDocumentedConfigModelsDeterministic verifies files are concatenated in
// lexical order regardless of map iteration order
func TestDocumentedConfigModelsDeterministic(t *testing.T) {
	sources := fstest.MapFS{
		"z_last.go":  {Data: []byte("package appconfig\n\n// Zeta is documented\ntype Zeta struct{}\n")},
		"a_first.go": {Data: []byte("package appconfig\n\n// Alpha is documented\ntype Alpha struct{}\n")},
	}

	docs, err := DocumentedConfigModels(sources)
	require.NoError(t, err)
	require.Contains(t, docs, "type Alpha")
	require.Contains(t, docs, "type Zeta")
	assert.Less(t, strings.Index(docs, "type Alpha"), strings.Index(docs, "type Zeta"))

	again, err := DocumentedConfigModels(sources)
	require.NoError(t, err)
	assert.Equal(t, docs, again)
}
