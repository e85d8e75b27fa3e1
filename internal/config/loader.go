package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up relative to the working directory.
const DefaultPath = "registrygen.yaml"

// Load reads the config file, applies environment overrides, and returns
// a merged Config. Missing files produce defaults only.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigError{Message: "failed to parse config: " + err.Error()}
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyDefaults fills zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	def := Defaults()
	if cfg.RegistryURL == "" {
		cfg.RegistryURL = def.RegistryURL
	}
	if cfg.IconBaseURL == "" {
		cfg.IconBaseURL = def.IconBaseURL
	}
	if cfg.Template == "" {
		cfg.Template = def.Template
	}
	if cfg.Output == "" {
		cfg.Output = def.Output
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = def.Placeholder
	}
	if cfg.Fetch.RegistryTimeoutSeconds == 0 {
		cfg.Fetch.RegistryTimeoutSeconds = def.Fetch.RegistryTimeoutSeconds
	}
	if cfg.Fetch.IconTimeoutSeconds == 0 {
		cfg.Fetch.IconTimeoutSeconds = def.Fetch.IconTimeoutSeconds
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}

// applyEnvOverrides reads environment variables and overrides config values.
// REGISTRY_URL is the documented override used by the docs CI job.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("REGISTRY_URL"); v != "" {
		cfg.RegistryURL = v
	}
	if v := os.Getenv("REGISTRYGEN_ICON_BASE_URL"); v != "" {
		cfg.IconBaseURL = v
	}
	if v := os.Getenv("REGISTRYGEN_TEMPLATE"); v != "" {
		cfg.Template = v
	}
	if v := os.Getenv("REGISTRYGEN_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("REGISTRYGEN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}
