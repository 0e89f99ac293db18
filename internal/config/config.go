package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConnectTimeout bounds the initial connection to the store. It is applied
// exactly once, at startup; steady-state operations rely on the pool.
const ConnectTimeout = 5 * time.Second

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	DBHost      string   `mapstructure:"DB_HOST"`
	DBPort      string   `mapstructure:"DB_PORT"`
	DBUser      string   `mapstructure:"DB_USER"`
	DBPassword  string   `mapstructure:"DB_PASSWORD"`
	DBDatabase  string   `mapstructure:"DB_DATABASE"`
	DBMaxConns  int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DB_HOST")
	v.BindEnv("DB_PORT")
	v.BindEnv("DB_USER")
	v.BindEnv("DB_PASSWORD")
	v.BindEnv("DB_DATABASE")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DBHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	if !cfg.hostIsURL() && cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) hostIsURL() bool {
	return strings.HasPrefix(c.DBHost, "postgres://") ||
		strings.HasPrefix(c.DBHost, "postgresql://")
}

// DatabaseURL returns the connection string for the store. A DB_HOST that is
// already a full postgres:// URL (managed/cloud instances) is used verbatim;
// otherwise the string is composed from the individual DB_* settings.
func (c *Config) DatabaseURL() string {
	if c.hostIsURL() {
		return c.DBHost
	}
	u := &url.URL{
		Scheme: "postgres",
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBDatabase,
	}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	}
	return u.String()
}
