package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"

	devJWTSecret = "shopflow-dev-secret"
)

// Config holds application configuration.
type Config struct {
	ServerAddr    string
	StorageDriver string
	DatabaseURL   string
	RedisURL      string

	JWTSecret string
	TokenTTL  time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	BanMaxStrikes   int
	BanStrikeWindow time.Duration
	BanDuration     time.Duration

	LogLevel string

	SeedDemoUser       bool
	SeedSampleProducts bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("database.url", "")
	v.SetDefault("redis.url", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("ratelimit.rps", 5)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("ban.max_strikes", 5)
	v.SetDefault("ban.strike_window", "10m")
	v.SetDefault("ban.duration", "1h")
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.demo_user", true)
	v.SetDefault("seed.sample_products", true)
}

// Load reads .env (if present), then config.yaml from . or /etc/shopflow (if present),
// then SHOPFLOW_* environment variables, later sources winning.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/shopflow")

	v.SetEnvPrefix("SHOPFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		ServerAddr:         v.GetString("server.addr"),
		StorageDriver:      strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
		DatabaseURL:        strings.TrimSpace(v.GetString("database.url")),
		RedisURL:           strings.TrimSpace(v.GetString("redis.url")),
		JWTSecret:          strings.TrimSpace(v.GetString("auth.jwt_secret")),
		TokenTTL:           v.GetDuration("auth.token_ttl"),
		RateLimitRPS:       v.GetFloat64("ratelimit.rps"),
		RateLimitBurst:     v.GetInt("ratelimit.burst"),
		BanMaxStrikes:      v.GetInt("ban.max_strikes"),
		BanStrikeWindow:    v.GetDuration("ban.strike_window"),
		BanDuration:        v.GetDuration("ban.duration"),
		LogLevel:           v.GetString("log.level"),
		SeedDemoUser:       v.GetBool("seed.demo_user"),
		SeedSampleProducts: v.GetBool("seed.sample_products"),
	}

	if cfg.JWTSecret == "" && cfg.StorageDriver == DriverMemory {
		cfg.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("database.url is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.StorageDriver))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("ratelimit.rps and ratelimit.burst must be positive"))
	}
	if c.BanMaxStrikes <= 0 || c.BanStrikeWindow <= 0 || c.BanDuration <= 0 {
		errs = append(errs, errors.New("ban settings must be positive"))
	}
	return errors.Join(errs...)
}
