package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_FORMAT", "console")

	cfg := LoadFromEnv()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestDefaultDiscovery(t *testing.T) {
	disc := DefaultDiscovery()

	require.Len(t, disc.Versions, 2)
	assert.Equal(t, "1.0", disc.Versions[0].VersionID)
	assert.Equal(t, "2.1", disc.Versions[1].VersionID)
	assert.Equal(t, "https://github.com/BuildingSMART/BCF-API", disc.Versions[0].DetailedVersion)
	assert.Equal(t, "https://github.com/BuildingSMART/BCF-API", disc.Versions[1].DetailedVersion)

	require.NotNil(t, disc.Auth.OAuth2AuthURL)
	require.NotNil(t, disc.Auth.OAuth2TokenURL)
	require.NotNil(t, disc.Auth.HTTPBasicSupported)
	assert.True(t, *disc.Auth.HTTPBasicSupported)
	assert.Len(t, disc.Auth.SupportedOAuth2Flows, 3)
}

func TestLoad_WithoutConfigFile(t *testing.T) {
	t.Setenv("BCF_CONFIG", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultDiscovery(), cfg.Discovery)
}

func TestLoad_ConfigFileOverridesVersions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bcf.yaml")
	data := `versions:
  - version_id: "3.0"
    detailed_version: "https://example.com/bcf/3.0"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("BCF_CONFIG", path)

	cfg, err := Load()

	require.NoError(t, err)
	require.Len(t, cfg.Discovery.Versions, 1)
	assert.Equal(t, "3.0", cfg.Discovery.Versions[0].VersionID)
	// auth table untouched by a versions-only file
	assert.Equal(t, DefaultDiscovery().Auth, cfg.Discovery.Auth)
}

func TestLoad_ConfigFileOverridesAuth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bcf.yaml")
	data := `auth:
  http_basic_supported: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("BCF_CONFIG", path)

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg.Discovery.Auth.HTTPBasicSupported)
	assert.False(t, *cfg.Discovery.Auth.HTTPBasicSupported)
	// replaced wholesale: no OAuth2 urls advertised anymore
	assert.Nil(t, cfg.Discovery.Auth.OAuth2AuthURL)
	assert.Nil(t, cfg.Discovery.Auth.OAuth2TokenURL)
	assert.Nil(t, cfg.Discovery.Auth.SupportedOAuth2Flows)
	// versions table untouched
	assert.Equal(t, DefaultDiscovery().Versions, cfg.Discovery.Versions)
}

func TestLoad_ConfigFileMissing(t *testing.T) {
	t.Setenv("BCF_CONFIG", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_ConfigFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bcf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("versions: [unclosed"), 0o644))
	t.Setenv("BCF_CONFIG", path)

	_, err := Load()

	assert.Error(t, err)
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 8000}

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}
