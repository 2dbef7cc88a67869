package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

// Config holds the configuration of the client side tools.
type Config struct {
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	BaseURL            string        `env:"GA_BASE_URL" envDefault:"https://www.google-analytics.com/"`
	APISecret          string        `env:"GA_API_SECRET,required,notEmpty"`
	FirebaseAppID      string        `env:"GA_FIREBASE_APP_ID"`
	AppInstanceID      string        `env:"GA_APP_INSTANCE_ID"`
	MeasurementID      string        `env:"GA_MEASUREMENT_ID"`
	ClientID           string        `env:"GA_CLIENT_ID"`
	UserID             string        `env:"GA_USER_ID"`
	ValidationBehavior string        `env:"GA_VALIDATION_BEHAVIOR"`
	HTTPTimeout        time.Duration `env:"GA_HTTP_TIMEOUT" envDefault:"10s"`
	Gzip               bool          `env:"GA_GZIP" envDefault:"false"`
	RateLimitRPS       float64       `env:"GA_RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst     int           `env:"GA_RATE_LIMIT_BURST" envDefault:"1"`
	MetricsAddr        string        `env:"METRICS_ADDR"`
}

// MockConfig holds the configuration of the protocol emulator.
type MockConfig struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServerAddr  string `env:"MOCK_SERVER_ADDR" envDefault:":8080"`
	APISecret   string `env:"MOCK_API_SECRET"`
	MaxBodySize int64  `env:"MOCK_MAX_BODY_BYTES" envDefault:"131072"` // 128KB
}

// Load reads the client configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Identity(); err != nil {
		return nil, err
	}
	if _, err := cfg.Behavior(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadMock reads the emulator configuration from environment variables.
func LoadMock() (*MockConfig, error) {
	_ = godotenv.Load()

	cfg := &MockConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Identity returns the configured identity. Exactly one of the Firebase app id
// and the measurement id must be set. A missing app instance id or client id
// is generated.
func (c *Config) Identity() (domain.Identity, error) {
	switch {
	case c.FirebaseAppID != "" && c.MeasurementID != "":
		return domain.Identity{}, fmt.Errorf("%w: set only one of GA_FIREBASE_APP_ID and GA_MEASUREMENT_ID", domain.ErrInvalidIdentity)
	case c.FirebaseAppID != "":
		if c.AppInstanceID == "" {
			c.AppInstanceID = NewInstanceID()
		}
		return domain.FirebaseIdentity(c.FirebaseAppID, c.AppInstanceID), nil
	case c.MeasurementID != "":
		if c.ClientID == "" {
			c.ClientID = NewInstanceID()
		}
		return domain.GtagIdentity(c.MeasurementID, c.ClientID), nil
	default:
		return domain.Identity{}, fmt.Errorf("%w: one of GA_FIREBASE_APP_ID or GA_MEASUREMENT_ID is required", domain.ErrInvalidIdentity)
	}
}

// Behavior parses GA_VALIDATION_BEHAVIOR. Empty means the server default.
func (c *Config) Behavior() (domain.ValidationBehavior, error) {
	b := domain.ValidationBehavior(strings.ToUpper(strings.TrimSpace(c.ValidationBehavior)))
	switch b {
	case "", domain.ValidationRelaxed, domain.ValidationEnforceRecommendations:
		return b, nil
	}
	return "", errors.New("GA_VALIDATION_BEHAVIOR must be RELAXED or ENFORCE_RECOMMENDATIONS")
}

// NewInstanceID returns a random 32 character hex id, the format the SDKs use
// for app instance ids.
func NewInstanceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
