package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all taskboard configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Client
	API      APIConfig
	Timezone string

	// Development backend
	MockAPI MockAPIConfig

	// Optional calendar export
	Calendar CalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         string // terminal client only: write logs here instead of stderr
}

// APIConfig is the remote task API the client talks to.
type APIConfig struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

type MockAPIConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type CalendarConfig struct {
	CredentialsPath string
	TokenPath       string // OAuth user token written by scripts/gcal-auth
	CalendarID      string
	Timezone        string
}

// Enabled reports whether calendar export is configured.
func (c CalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/taskboard/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/taskboard/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.File = v.GetString("logger.file")

	// API: the deployment-provided base URL wins over the file
	cfg.API.BaseURL = v.GetString("api.base_url")
	if apiURL := v.GetString("api_url"); apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	cfg.API.AccessToken = v.GetString("api.access_token")
	cfg.API.Timeout = v.GetDuration("api.timeout")
	if cfg.API.Timeout <= 0 {
		return nil, fmt.Errorf("api.timeout must be positive, got %s", v.GetString("api.timeout"))
	}

	cfg.Timezone = v.GetString("timezone")

	cfg.MockAPI.Port = v.GetInt("mock_api.port")
	cfg.MockAPI.Mode = v.GetString("mock_api.mode")
	cfg.MockAPI.RateLimitPerMin = v.GetInt("mock_api.rate_limit_per_min")

	cfg.Calendar.CredentialsPath = v.GetString("calendar.credentials_path")
	if creds := v.GetString("google_calendar_credentials"); creds != "" {
		cfg.Calendar.CredentialsPath = creds
	}
	cfg.Calendar.TokenPath = v.GetString("calendar.token_path")
	cfg.Calendar.CalendarID = v.GetString("calendar.calendar_id")
	cfg.Calendar.Timezone = v.GetString("calendar.timezone")
	if cfg.Calendar.Timezone == "" {
		cfg.Calendar.Timezone = cfg.Timezone
	}

	return cfg, nil
}

// Location resolves the configured timezone. Empty means the process local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ValidateClient checks the settings the terminal client cannot run without.
func (c *Config) ValidateClient() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required (set API_URL)")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("timezone", "Local")
	v.SetDefault("mock_api.port", 8080)
	v.SetDefault("mock_api.mode", "debug")
	v.SetDefault("mock_api.rate_limit_per_min", 600)
	v.SetDefault("calendar.token_path", "token.json")
	v.SetDefault("calendar.calendar_id", "primary")
}
