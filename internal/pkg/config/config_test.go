package config

import (
	"errors"
	"testing"
	"time"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Setenv("GA_API_SECRET", "secret")
	t.Setenv("GA_MEASUREMENT_ID", "G-TEST")
	t.Setenv("GA_CLIENT_ID", "client-1")
	t.Setenv("GA_VALIDATION_BEHAVIOR", "relaxed")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://www.google-analytics.com/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s", cfg.HTTPTimeout)
	}
	if cfg.Gzip {
		t.Error("gzip must be off by default")
	}
	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 1 {
		t.Errorf("unexpected rate limit defaults %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	b, err := cfg.Behavior()
	if err != nil || b != domain.ValidationRelaxed {
		t.Errorf("Behavior() = %q, %v", b, err)
	}
	id, err := cfg.Identity()
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	if _, v := id.BodyField(); v != "client-1" {
		t.Errorf("client id = %q", v)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("GA_API_SECRET", "")
	t.Setenv("GA_MEASUREMENT_ID", "G-TEST")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error without GA_API_SECRET")
	}
}

func TestConfig_Identity(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		firebase   bool
		expectErr  bool
		generateID bool
	}{
		{name: "Firebase with instance", cfg: Config{FirebaseAppID: "app", AppInstanceID: "inst"}, firebase: true},
		{name: "Firebase generates instance", cfg: Config{FirebaseAppID: "app"}, firebase: true, generateID: true},
		{name: "Gtag generates client", cfg: Config{MeasurementID: "G-1"}, generateID: true},
		{name: "Both configured", cfg: Config{FirebaseAppID: "app", MeasurementID: "G-1"}, expectErr: true},
		{name: "Neither configured", cfg: Config{}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tt.cfg.Identity()
			if tt.expectErr {
				if !errors.Is(err, domain.ErrInvalidIdentity) {
					t.Fatalf("expected ErrInvalidIdentity, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Identity() error = %v", err)
			}
			if id.IsFirebase() != tt.firebase {
				t.Errorf("IsFirebase() = %v, want %v", id.IsFirebase(), tt.firebase)
			}
			if err := id.Validate(); err != nil {
				t.Errorf("identity does not validate: %v", err)
			}
			_, instance := id.BodyField()
			if tt.generateID && len(instance) != 32 {
				t.Errorf("expected a 32 character generated id, got %q", instance)
			}
		})
	}
}

func TestConfig_Identity_StableAfterGeneration(t *testing.T) {
	cfg := Config{FirebaseAppID: "app"}
	first, _ := cfg.Identity()
	second, _ := cfg.Identity()
	if first != second {
		t.Error("a generated instance id must be reused")
	}
}

func TestConfig_Behavior(t *testing.T) {
	cfg := Config{ValidationBehavior: "bogus"}
	if _, err := cfg.Behavior(); err == nil {
		t.Error("expected an error for an unknown behavior")
	}
	cfg.ValidationBehavior = "enforce_recommendations"
	if b, err := cfg.Behavior(); err != nil || b != domain.ValidationEnforceRecommendations {
		t.Errorf("Behavior() = %q, %v", b, err)
	}
}

func TestLoadMock(t *testing.T) {
	t.Setenv("MOCK_API_SECRET", "m")
	cfg, err := LoadMock()
	if err != nil {
		t.Fatalf("LoadMock() error = %v", err)
	}
	if cfg.ServerAddr != ":8080" || cfg.APISecret != "m" || cfg.MaxBodySize != 131072 {
		t.Errorf("unexpected config %+v", cfg)
	}
}
