package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Pricing holds the geofencing and cost constants. It is injected into the
// pricing engine at startup so tests can substitute fixtures.
type Pricing struct {
	HubLatitude     float64 `mapstructure:"HUB_LATITUDE"`
	HubLongitude    float64 `mapstructure:"HUB_LONGITUDE"`
	ServiceRadiusKM float64 `mapstructure:"SERVICE_RADIUS_KM"`
	RatePerKM       float64 `mapstructure:"RATE_PER_KM"`
	BaseRate        float64 `mapstructure:"BASE_RATE"`
}

// Config is the full application configuration, loaded once in main and
// passed down explicitly. No package keeps ambient settings.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	// Single shared operator account for the pilot. The password is a
	// bcrypt hash, never plaintext.
	AdminUsername     string `mapstructure:"ADMIN_USERNAME"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// MaxImageBytes caps the base64-encoded waste photo (~2 MB raw).
	MaxImageBytes int `mapstructure:"MAX_IMAGE_BYTES"`

	Pricing Pricing `mapstructure:",squash"`
}

// LoadConfig reads configuration from app.env in the given path and from
// the environment. Environment variables win over the file.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:3000")
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("HUB_LATITUDE", 26.7271)
	v.SetDefault("HUB_LONGITUDE", 88.3953)
	v.SetDefault("SERVICE_RADIUS_KM", 20.0)
	v.SetDefault("RATE_PER_KM", 10.0)
	v.SetDefault("BASE_RATE", 50.0)
	v.SetDefault("MAX_IMAGE_BYTES", 2799698) // 2.67 MiB of base64, ~2 MB raw

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; env vars alone can configure the app.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("config: DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("config: JWT_SECRET is required")
	}
	return cfg, nil
}
