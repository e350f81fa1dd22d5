package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/opensourcebim/bcf-server/pkg/types"
)

// Config holds the configuration for the BCF discovery server
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, console
}

// DiscoveryConfig holds the read-only tables served by the discovery
// endpoints. It is built once at startup and never mutated afterwards.
type DiscoveryConfig struct {
	Versions []types.Version        `yaml:"versions"`
	Auth     types.AuthCapabilities `yaml:"auth"`
}

// Load builds the configuration from environment variables and, when
// BCF_CONFIG points to a YAML file, overlays the discovery tables from it.
func Load() (*Config, error) {
	cfg := LoadFromEnv()

	if path := os.Getenv("BCF_CONFIG"); path != "" {
		if err := cfg.loadDiscoveryFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvInt("SERVER_PORT", 8000),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Discovery: DefaultDiscovery(),
	}
}

// DefaultDiscovery returns the built-in discovery tables: the supported BCF
// API versions and the advertised authentication capabilities.
func DefaultDiscovery() DiscoveryConfig {
	return DiscoveryConfig{
		Versions: []types.Version{
			{VersionID: "1.0", DetailedVersion: "https://github.com/BuildingSMART/BCF-API"},
			{VersionID: "2.1", DetailedVersion: "https://github.com/BuildingSMART/BCF-API"},
		},
		Auth: types.AuthCapabilities{
			OAuth2AuthURL:             stringPtr("https://example.com/bcf/oauth2/auth"),
			OAuth2TokenURL:            stringPtr("https://example.com/bcf/oauth2/token"),
			OAuth2DynamicClientRegURL: stringPtr("https://example.com/bcf/oauth2/reg"),
			HTTPBasicSupported:        boolPtr(true),
			SupportedOAuth2Flows: []string{
				types.FlowAuthorizationCodeGrant,
				types.FlowImplicitGrant,
				types.FlowResourceOwnerPasswordCredentialsGrant,
			},
		},
	}
}

// loadDiscoveryFile overlays the discovery tables from a YAML file. A table
// absent from the file keeps its built-in value; a present table replaces the
// built-in one wholesale.
func (c *Config) loadDiscoveryFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file struct {
		Versions []types.Version         `yaml:"versions"`
		Auth     *types.AuthCapabilities `yaml:"auth"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	if len(file.Versions) > 0 {
		c.Discovery.Versions = file.Versions
	}
	if file.Auth != nil {
		c.Discovery.Auth = *file.Auth
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
