package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	SlotAPI SlotAPIConfig
	UI      UIConfig
	Cookie  CookieConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type SlotAPIConfig struct {
	BaseURL            string        `envconfig:"SLOT_API_BASE_URL" default:"https://localhost:7009/api"`
	Timeout            time.Duration `envconfig:"SLOT_API_TIMEOUT" default:"30s"`
	InsecureSkipVerify bool          `envconfig:"SLOT_API_INSECURE_SKIP_VERIFY" default:"false"`
}

type UIConfig struct {
	ToastDuration      time.Duration `envconfig:"UI_TOAST_DURATION" default:"4s"`
	FormNoticeDuration time.Duration `envconfig:"UI_FORM_NOTICE_DURATION" default:"4s"`
	TimeZone           string        `envconfig:"UI_TIMEZONE" default:"UTC"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Location resolves the display time zone used for slot cards and the creation form.
func (c UIConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid UI_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c SlotAPIConfig) Validate() error {
	base := strings.ToLower(c.BaseURL)
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return fmt.Errorf("SLOT_API_BASE_URL must be an http(s) URL, got %q", c.BaseURL)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.SlotAPI.Validate(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.UI.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: 2 * time.Second,
			ShutdownTimeout:   2 * time.Second,
		},
		SlotAPI: SlotAPIConfig{
			BaseURL: "http://127.0.0.1:0/api", // replaced by the fake API URL in tests
			Timeout: 5 * time.Second,
		},
		UI: UIConfig{
			ToastDuration:      4 * time.Second,
			FormNoticeDuration: 4 * time.Second,
			TimeZone:           "UTC",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
