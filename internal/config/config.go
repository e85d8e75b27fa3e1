package config

import (
	"fmt"
	"time"
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Config is the root configuration for registrygen.
type Config struct {
	RegistryURL string        `yaml:"registryUrl,omitempty"`
	IconBaseURL string        `yaml:"iconBaseUrl,omitempty"`
	Template    string        `yaml:"template,omitempty"`
	Output      string        `yaml:"output,omitempty"`
	Placeholder string        `yaml:"placeholder,omitempty"`
	Fetch       FetchConfig   `yaml:"fetch,omitempty"`
	Logging     LoggingConfig `yaml:"logging,omitempty"`
}

// FetchConfig bounds the individual network calls.
type FetchConfig struct {
	RegistryTimeoutSeconds int `yaml:"registryTimeoutSeconds,omitempty"`
	IconTimeoutSeconds     int `yaml:"iconTimeoutSeconds,omitempty"`
}

// RegistryTimeout returns the registry fetch timeout as a duration.
func (f FetchConfig) RegistryTimeout() time.Duration {
	return time.Duration(f.RegistryTimeoutSeconds) * time.Second
}

// IconTimeout returns the per-icon fetch timeout as a duration.
func (f FetchConfig) IconTimeout() time.Duration {
	return time.Duration(f.IconTimeoutSeconds) * time.Second
}

// LoggingConfig controls console logging.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug | info | warn | error | silent
}

// Defaults returns a Config with sensible defaults applied.
// URLs and paths mirror the registry CDN layout the docs site consumes.
func Defaults() Config {
	return Config{
		RegistryURL: "https://cdn.agentclientprotocol.com/registry/v1/latest/registry.json",
		IconBaseURL: "https://cdn.agentclientprotocol.com/registry/v1/latest",
		Template:    "docs/get-started/_registry_agents.mdx",
		Output:      "docs/get-started/registry.mdx",
		Placeholder: "$$AGENTS_CARDS$$",
		Fetch: FetchConfig{
			RegistryTimeoutSeconds: 30,
			IconTimeoutSeconds:     10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
