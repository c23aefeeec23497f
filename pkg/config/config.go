package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	Storage  Storage  `yaml:"storage"`
	Identity Identity `yaml:"identity"`
	Payment  Payment  `yaml:"payment"`
}

type Storage struct {
	// Backend selects the blob store: memory, file, redis or sqlite.
	Backend    string `yaml:"backend"`
	DataDir    string `yaml:"data_dir"`
	RedisAddr  string `yaml:"redis_addr"`
	SQLitePath string `yaml:"sqlite_path"`
}

type Identity struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type Payment struct {
	Delay time.Duration `yaml:"delay"`
}

// Load reads STOREFRONT_CONFIG as a YAML file when set, then applies
// environment overrides on top of the defaults.
func Load() (Config, error) {
	cfg := Config{
		AppEnv:   "dev",
		LogLevel: "info",
		Storage: Storage{
			Backend:    "memory",
			DataDir:    "./data",
			RedisAddr:  "localhost:6379",
			SQLitePath: "./storefront.db",
		},
		Identity: Identity{JWTSecret: "dev-secret"},
		Payment:  Payment{Delay: 2 * time.Second},
	}

	if path := os.Getenv("STOREFRONT_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Storage.Backend = getEnv("STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.DataDir = getEnv("STORAGE_DATA_DIR", cfg.Storage.DataDir)
	cfg.Storage.RedisAddr = getEnv("REDIS_ADDR", cfg.Storage.RedisAddr)
	cfg.Storage.SQLitePath = getEnv("SQLITE_PATH", cfg.Storage.SQLitePath)
	cfg.Identity.JWTSecret = getEnv("JWT_SECRET", cfg.Identity.JWTSecret)
	cfg.Payment.Delay = getEnvDuration("PAYMENT_DELAY", cfg.Payment.Delay)

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
