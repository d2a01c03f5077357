package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API     APIConfig     `toml:"api" validate:"required"`
	Session SessionConfig `toml:"session"`
}

// APIConfig contains transfer backend settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url" validate:"required,url"`
	TimeoutSeconds int    `toml:"timeout_seconds" validate:"gte=0"`
}

// SessionConfig contains session cookie storage settings.
type SessionConfig struct {
	CookiePath string `toml:"cookie_path"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads, parses, and validates a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CookiePath returns the configured session cookie path or the working
// directory default.
func (c *Config) CookiePath() string {
	if c.Session.CookiePath != "" {
		return c.Session.CookiePath
	}
	return "playlifts_session.json"
}
