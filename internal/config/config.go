// Package config reads server configuration from flags and environment.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration.
type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	StorageType string `env:"STORAGE_TYPE"`
	RedisURL    string `env:"REDIS_URL"`
	SQLitePath  string `env:"SQLITE_PATH"`
	DatabaseURI string `env:"DATABASE_URI"`
	CatalogPath string `env:"CATALOG_PATH"`
}

// Parse reads configuration from command-line flags and environment
// variables. Environment variables take precedence over flags.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envStorageType := cfg.StorageType
	envRedisURL := cfg.RedisURL
	envSQLitePath := cfg.SQLitePath
	envDatabaseURI := cfg.DatabaseURI
	envCatalogPath := cfg.CatalogPath

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.StorageType, "s", "memory", "storage backend (memory, redis, sqlite, postgres)")
	flag.StringVar(&cfg.RedisURL, "r", "", "redis URL")
	flag.StringVar(&cfg.SQLitePath, "f", "", "sqlite database path")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "postgres database URI")
	flag.StringVar(&cfg.CatalogPath, "c", "data/museums.json", "path to museum catalog file")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envStorageType != "" {
		cfg.StorageType = envStorageType
	}
	if envRedisURL != "" {
		cfg.RedisURL = envRedisURL
	}
	if envSQLitePath != "" {
		cfg.SQLitePath = envSQLitePath
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envCatalogPath != "" {
		cfg.CatalogPath = envCatalogPath
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.StorageType == "" {
		cfg.StorageType = "memory"
	}

	return cfg, nil
}
