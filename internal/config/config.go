// Package config loads the application configuration from the environment,
// an optional config file and command line overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ActivityMock serves a synthetic annual activity series.
	ActivityMock = "mock"
	// ActivityGitHub serves the user's real contribution calendar.
	ActivityGitHub = "github"
)

// Config holds application configuration. It is built once at start-up and
// passed to every component that needs it.
type Config struct {
	GitHubToken    string
	GitHubAPIURL   string
	ReviewAPIKey   string
	Port           int
	AllowedOrigin  string
	ActivitySource string
}

// Load reads the configuration. configFile may be empty; when set it is read
// in addition to the environment, which always takes precedence.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.allowed_origin", "http://localhost:5173")
	v.SetDefault("activity.source", ActivityMock)

	bindings := map[string]string{
		"github.token":          "GITHUB_TOKEN",
		"github.api_url":        "GITHUB_API_URL",
		"review.api_key":        "AI_API_KEY",
		"server.port":           "PORT",
		"server.allowed_origin": "ALLOWED_ORIGIN",
		"activity.source":       "ACTIVITY_SOURCE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		GitHubToken:    strings.TrimSpace(v.GetString("github.token")),
		GitHubAPIURL:   v.GetString("github.api_url"),
		ReviewAPIKey:   v.GetString("review.api_key"),
		Port:           v.GetInt("server.port"),
		AllowedOrigin:  v.GetString("server.allowed_origin"),
		ActivitySource: strings.ToLower(v.GetString("activity.source")),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at runtime.
// A missing GitHub token is not an error here; requests report it instead.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.ActivitySource {
	case ActivityMock, ActivityGitHub:
	default:
		return fmt.Errorf("unknown activity source %q", c.ActivitySource)
	}
	return nil
}
