// Package config handles loading and persisting user configuration
// for ochat. Configuration is stored in ~/.ochat/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	dirName  = ".ochat"
	fileName = "config.json"

	defaultRunner   = "ollama"
	defaultEndpoint = "http://localhost:3000"

	envKeyModel    = "OCHAT_MODEL"
	envKeyRunner   = "OCHAT_RUNNER"
	envKeyEndpoint = "OCHAT_ENDPOINT"
)

// Config holds the user's configuration. An empty Model means no model
// has been chosen yet; the chat command auto-selects the first
// installed one.
type Config struct {
	Model    string `json:"model,omitempty"`
	Runner   string `json:"runner"`
	Endpoint string `json:"endpoint"`
}

// Dir returns the configuration directory path.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, dirName)
}

func configPath() string {
	return filepath.Join(Dir(), fileName)
}

// Load reads the configuration from disk and environment variables.
// It never fails: missing pieces fall back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Runner:   defaultRunner,
		Endpoint: defaultEndpoint,
	}

	data, err := os.ReadFile(configPath())
	if err == nil {
		_ = json.Unmarshal(data, cfg)
	}

	if model := os.Getenv(envKeyModel); model != "" {
		cfg.Model = model
	}
	if runner := os.Getenv(envKeyRunner); runner != "" {
		cfg.Runner = runner
	}
	if endpoint := os.Getenv(envKeyEndpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}

	if cfg.Runner == "" {
		cfg.Runner = defaultRunner
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	return cfg, nil
}

// save persists the config to disk.
func save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0o600)
}

func loadForUpdate() *Config {
	cfg := &Config{Runner: defaultRunner, Endpoint: defaultEndpoint}
	data, err := os.ReadFile(configPath())
	if err == nil {
		_ = json.Unmarshal(data, cfg)
	}
	return cfg
}

// SetModel saves the model preference to the config file.
func SetModel(model string) error {
	cfg := loadForUpdate()
	cfg.Model = model
	return save(cfg)
}

// SetRunner saves the runner preference to the config file.
func SetRunner(runner string) error {
	cfg := loadForUpdate()
	cfg.Runner = runner
	return save(cfg)
}

// SetEndpoint saves the gateway endpoint to the config file.
func SetEndpoint(endpoint string) error {
	cfg := loadForUpdate()
	cfg.Endpoint = endpoint
	return save(cfg)
}
