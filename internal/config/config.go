package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Credentials are the Reddit API credentials from the JSON config file.
type Credentials struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	UserAgent    string `mapstructure:"user_agent"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
}

// Config is the full runtime configuration.
type Config struct {
	Mode          string // "api", "public", or "mock"
	Subreddits    []string
	Limit         int
	PollInterval  time.Duration
	FlushInterval time.Duration
	Output        string // spreadsheet path
	DashboardPort string // empty disables the dashboard
	Credentials   Credentials
}

// Load reads the JSON config file at path, applies defaults, and lets
// REDDITLOG_* environment variables override individual settings. A missing
// or malformed file is an error; startup should not continue without
// credentials.
func Load(path string) (*Config, error) {
	godotenv.Load()

	v := viper.New()
	v.SetDefault("mode", "public")
	v.SetDefault("subreddits", []string{"all"})
	v.SetDefault("limit", 100)
	v.SetDefault("poll_interval", "30s")
	v.SetDefault("flush_interval", "2m")
	v.SetDefault("output", "reddit_output.ods")
	v.SetDefault("dashboard_port", "")
	v.SetEnvPrefix("REDDITLOG")
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{
		Mode:          v.GetString("mode"),
		Subreddits:    v.GetStringSlice("subreddits"),
		Limit:         v.GetInt("limit"),
		Output:        v.GetString("output"),
		DashboardPort: v.GetString("dashboard_port"),
	}
	if err := v.Unmarshal(&cfg.Credentials); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	var err error
	if cfg.PollInterval, err = time.ParseDuration(v.GetString("poll_interval")); err != nil {
		return nil, fmt.Errorf("invalid poll_interval: %w", err)
	}
	if cfg.FlushInterval, err = time.ParseDuration(v.GetString("flush_interval")); err != nil {
		return nil, fmt.Errorf("invalid flush_interval: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Subreddits) == 0 {
		return errors.New("no subreddits configured")
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	switch c.Mode {
	case "api":
		if c.Credentials.ClientID == "" || c.Credentials.ClientSecret == "" {
			return errors.New("mode 'api' requires client_id and client_secret")
		}
		if c.Credentials.UserAgent == "" {
			return errors.New("mode 'api' requires user_agent")
		}
	case "public":
		if c.Credentials.UserAgent == "" {
			return errors.New("mode 'public' requires user_agent")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown mode: %s (use 'api', 'public', or 'mock')", c.Mode)
	}
	return nil
}
