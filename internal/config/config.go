package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN              string
	BaleToken          string
	Environment        string
	CatalogPath        string
	MigrationsPath     string
	EscalationInterval time.Duration
	StaleThreshold     time.Duration
}

func Load() (*Config, error) {
	// Load .env if present; plain environment variables work too.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		BaleToken:      os.Getenv("BALE_TOKEN"),
		Environment:    os.Getenv("ENV"),
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	var err error
	cfg.EscalationInterval, err = durationEnv("ESCALATION_INTERVAL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.StaleThreshold, err = durationEnv("STALE_THRESHOLD", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
