// Package config provides configuration management for mack.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the mack configuration.
type Config struct {
	WebhookURL     string `yaml:"webhook_url,omitempty"`
	BotToken       string `yaml:"bot_token,omitempty"`
	DefaultChannel string `yaml:"default_channel,omitempty"`
}

// Validate checks that the configuration describes at least one usable
// delivery path.
func (c *Config) Validate() error {
	if c.WebhookURL == "" && c.BotToken == "" {
		return errors.New("either webhook_url or bot_token is required")
	}
	if c.WebhookURL != "" && !strings.HasPrefix(c.WebhookURL, "https://") {
		return errors.New("webhook_url must use https")
	}
	if c.BotToken != "" && !strings.HasPrefix(c.BotToken, "xoxb-") {
		return errors.New("bot_token must start with xoxb-")
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if url := os.Getenv("MACK_WEBHOOK_URL"); url != "" {
		c.WebhookURL = url
	}
	if token := os.Getenv("MACK_BOT_TOKEN"); token != "" {
		c.BotToken = token
	}
	if channel := os.Getenv("MACK_DEFAULT_CHANNEL"); channel != "" {
		c.DefaultChannel = channel
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mack", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mack", "config.yml")
	}

	return filepath.Join(home, ".config", "mack", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Tokens live in this file, so keep it user read/write only.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file starts from an empty config.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
