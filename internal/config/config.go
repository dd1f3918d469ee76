// Package config loads host-application settings from YAML and environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for one chat engine instance.
type Config struct {
	Host           string `yaml:"host"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

const (
	defaultHost           = "http://localhost:11434"
	defaultModel          = "llama3.1"
	defaultTimeoutSeconds = 120
)

// Load reads an optional YAML file and applies environment overrides
// (TL_HOST, TL_MODEL, TL_TIMEOUT_SECONDS). A missing or empty path yields
// defaults; a present but malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Config{
		Host:           defaultHost,
		Model:          defaultModel,
		TimeoutSeconds: defaultTimeoutSeconds,
	}

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if v := os.Getenv("TL_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("TL_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TL_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid TL_TIMEOUT_SECONDS %q: %w", v, err)
		}
		cfg.TimeoutSeconds = n
	}

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}
	return cfg, nil
}

// Endpoint returns the chat endpoint URL for the configured host.
func (c Config) Endpoint() string {
	return strings.TrimRight(c.Host, "/") + "/api/chat"
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
