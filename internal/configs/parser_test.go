package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "configs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "configs", "config.yaml"), []byte(content), 0644))

	t.Setenv("WORKING_DIRECTORY", root)
	t.Setenv("CONFIG_PATH", "/configs/config.yaml")
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("WORKING_DIRECTORY", t.TempDir())
	t.Setenv("CONFIG_PATH", "/configs/absent.yaml")

	require.NoError(t, LoadConfig())

	assert.Equal(t, "0.0.0.0:5000", GetServerConfig().Addr)
	assert.Equal(t, 5*time.Second, GetServerConfig().ShutdownTimeout)
	assert.True(t, GetComponentsConfig().Server)
	assert.True(t, GetMetricsConfig().Enabled)
	assert.Equal(t, "/metrics", GetMetricsConfig().Path)
	assert.Empty(t, GetRoutesConfig())
}

func TestLoadConfigFromFile(t *testing.T) {
	writeConfig(t, `
server:
  addr: "127.0.0.1:8080"
  debug: true
  response_timeout: 3s
metrics:
  enabled: false
routes:
  - path: /version
    payload:
      version: "1.0.0"
      build: 7
`)

	require.NoError(t, LoadConfig())

	server := GetServerConfig()
	assert.Equal(t, "127.0.0.1:8080", server.Addr)
	assert.True(t, server.Debug)
	assert.Equal(t, 3*time.Second, server.ResponseTimeout)
	// keys absent from the file keep their defaults
	assert.Equal(t, 10*time.Second, server.AcceptTimeout)
	assert.True(t, server.ReusePort)

	assert.False(t, GetMetricsConfig().Enabled)

	routes := GetRoutesConfig()
	require.Len(t, routes, 1)
	assert.Equal(t, "/version", routes[0].Path)
	assert.Equal(t, map[string]any{"version": "1.0.0", "build": 7}, routes[0].Payload)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	writeConfig(t, `
server:
  addr: "127.0.0.1:8080"
`)
	t.Setenv("SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("SERVER_DEBUG", "true")

	require.NoError(t, LoadConfig())

	assert.Equal(t, "127.0.0.1:9090", GetServerConfig().Addr)
	assert.True(t, GetServerConfig().Debug)
}

func TestLoadConfigIgnoresBadDebugEnv(t *testing.T) {
	writeConfig(t, `
server:
  debug: true
`)
	t.Setenv("SERVER_DEBUG", "maybe")

	require.NoError(t, LoadConfig())
	assert.True(t, GetServerConfig().Debug)
}

func TestLoadConfigMalformed(t *testing.T) {
	writeConfig(t, "server: [not, a, map]\n")

	err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal config")
}

func TestConfigureForTesting(t *testing.T) {
	t.Setenv("WORKING_DIRECTORY", t.TempDir())
	t.Setenv("CONFIG_PATH", "/configs/absent.yaml")

	SetConfigureForTestingFunc(func(cfg *ServiceConfig) {
		cfg.Server.Addr = "127.0.0.1:0"
	})
	defer SetConfigureForTestingFunc(nil)

	require.NoError(t, LoadConfig())
	assert.Equal(t, "127.0.0.1:0", GetServerConfig().Addr)
}

func TestLoadConfigOutsideCheckoutUsesDefaults(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("WORKING_DIRECTORY", "")
	require.NoError(t, os.Unsetenv("WORKING_DIRECTORY"))
	t.Setenv("CONFIG_PATH", "")

	require.NoError(t, LoadConfig())

	assert.Equal(t, DefaultAddr, GetServerConfig().Addr)
	assert.True(t, GetComponentsConfig().Server)
}

func TestLoadConfigUnquotedDateInPayload(t *testing.T) {
	writeConfig(t, `
routes:
  - path: /release
    payload:
      date: 2024-01-02
`)

	require.NoError(t, LoadConfig())

	routes := GetRoutesConfig()
	require.Len(t, routes, 1)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), routes[0].Payload["date"])
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
