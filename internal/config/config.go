package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL     = "https://platform.adobe.io"
	DefaultIMSTokenURL = "https://ims-na1.adobelogin.com/ims/token/v3"
	DefaultScope       = "openid,AdobeID,read_organizations"
	DefaultPort        = 3000
	DefaultHTTPTimeout = 30 * time.Second
)

// Credentials identifies this proxy to Adobe IMS and AEP.
// It is passed by value and never mutated after Load.
type Credentials struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	OrgID        string
	TokenURL     string
	Scope        string
	SandboxName  string // optional, sent as x-sandbox-name when set
}

// String never includes the client secret.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{BaseURL:%s ClientID:%s OrgID:%s}", c.BaseURL, c.ClientID, c.OrgID)
}

// LogConfig controls the slog handler installed at startup.
type LogConfig struct {
	Level  string
	Format string
}

// Config is the full process configuration.
type Config struct {
	Credentials Credentials
	Port        int
	HTTPTimeout time.Duration
	Log         LogConfig
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("AEP_HTTP_TIMEOUT", DefaultHTTPTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid AEP_HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Credentials: Credentials{
			BaseURL:      strings.TrimRight(getEnv("AEP_BASE_URL", DefaultBaseURL), "/"),
			ClientID:     os.Getenv("AEP_CLIENT_ID"),
			ClientSecret: os.Getenv("AEP_CLIENT_SECRET"),
			OrgID:        os.Getenv("AEP_ORG_ID"),
			TokenURL:     getEnv("AEP_IMS_TOKEN_URL", DefaultIMSTokenURL),
			Scope:        getEnv("AEP_SCOPE", DefaultScope),
			SandboxName:  os.Getenv("AEP_SANDBOX_NAME"),
		},
		Port:        port,
		HTTPTimeout: timeout,
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate reports the first missing or malformed setting.
func (c *Config) Validate() error {
	if c.Credentials.ClientID == "" {
		return errors.New("AEP_CLIENT_ID is required")
	}
	if c.Credentials.ClientSecret == "" {
		return errors.New("AEP_CLIENT_SECRET is required")
	}
	if c.Credentials.OrgID == "" {
		return errors.New("AEP_ORG_ID is required")
	}
	if c.Credentials.BaseURL == "" {
		return errors.New("AEP_BASE_URL must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid http timeout: %s", c.HTTPTimeout)
	}
	return nil
}

// ListenAddr returns the address gin should bind to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv reads an environment variable with a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	slog.Debug("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}
