package config

import (
	"errors"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// EnvBaseURL is consulted first; EnvBaseURLFallback second. The TOML
	// file is only used when neither variable is set.
	EnvBaseURL         = "MEMO_API_URL"
	EnvBaseURLFallback = "NOTES_API_URL"

	defaultBaseURL       = "http://127.0.0.1:8787"
	defaultTimeout       = 15 * time.Second
	defaultAutosaveDelay = 650 * time.Millisecond
)

type Config struct {
	API      APIConfig      `toml:"api"`
	Autosave AutosaveConfig `toml:"autosave"`
	Logging  LoggingConfig  `toml:"logging"`
}

type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type AutosaveConfig struct {
	DelayMS int `toml:"delay_ms"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: defaultBaseURL,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration once, at startup: TOML file under the data
// directory, then environment overrides for the API base URL. A missing file
// yields the defaults.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := loadFromPath(path)
	if err != nil {
		return Config{}, err
	}
	if url := resolveEnvBaseURL(); url != "" {
		cfg.API.BaseURL = url
	}
	return cfg, nil
}

func loadFromPath(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolveEnvBaseURL() string {
	if url := strings.TrimSpace(os.Getenv(EnvBaseURL)); url != "" {
		return url
	}
	return strings.TrimSpace(os.Getenv(EnvBaseURLFallback))
}

// BaseURL returns the note service base URL with any trailing slashes
// stripped so paths can be concatenated directly.
func (c Config) BaseURL() string {
	url := strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if url == "" {
		return defaultBaseURL
	}
	return url
}

func (c Config) RequestTimeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func (c Config) AutosaveDelay() time.Duration {
	if c.Autosave.DelayMS <= 0 {
		return defaultAutosaveDelay
	}
	return time.Duration(c.Autosave.DelayMS) * time.Millisecond
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}
