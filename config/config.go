package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  Server
	SMTP    SMTP
	Logging Logging
}

type Server struct {
	Port           string
	GinMode        string
	AppEnv         string
	StaticDir      string
	AllowedOrigins []string
}

// SMTP configures the outbound mail relay. User doubles as the
// authenticated account and the visible From address; Receiver is both
// the destination and the reply-to fallback.
type SMTP struct {
	Host               string
	Port               int
	User               string
	Pass               string
	Receiver           string
	SendTimeoutSeconds int
}

type Logging struct {
	Level string
	Dir   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("STATIC_DIR", "./web")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SEND_TIMEOUT_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	for _, origin := range strings.Split(v.GetString("ALLOWED_CORS_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins = append(allowedOrigins, origin)
		}
	}

	cfg := &Config{
		Server: Server{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			StaticDir:      v.GetString("STATIC_DIR"),
			AllowedOrigins: allowedOrigins,
		},
		SMTP: SMTP{
			Host:               v.GetString("SMTP_HOST"),
			Port:               v.GetInt("SMTP_PORT"),
			User:               v.GetString("SMTP_USER"),
			Pass:               v.GetString("SMTP_PASS"),
			Receiver:           v.GetString("RECEIVER_EMAIL"),
			SendTimeoutSeconds: v.GetInt("SEND_TIMEOUT_SECONDS"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.SMTP.User == "" {
		return fmt.Errorf("SMTP_USER is required")
	}
	if c.SMTP.Pass == "" {
		return fmt.Errorf("SMTP_PASS is required")
	}
	if c.SMTP.Receiver == "" {
		return fmt.Errorf("RECEIVER_EMAIL is required")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.SMTP.SendTimeoutSeconds <= 0 {
		return fmt.Errorf("SEND_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, origin := range c.Server.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
