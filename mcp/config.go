package mcp

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the database connection parameters. It is loaded once at
// startup and never mutated afterwards.
type Config struct {
	Driver       DriverType
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	QueryTimeout time.Duration
}

// LoadConfig reads the configuration from the environment.
// MYSQL_USER, MYSQL_PASSWORD and MYSQL_DATABASE are required.
func LoadConfig() (Config, error) {
	cfg := Config{
		Driver:   DriverType(envOr("DB_DRIVER", string(DefaultDriver))),
		Host:     envOr("MYSQL_HOST", DefaultHost),
		Port:     DefaultPort,
		User:     os.Getenv("MYSQL_USER"),
		Password: os.Getenv("MYSQL_PASSWORD"),
		Database: os.Getenv("MYSQL_DATABASE"),
	}

	var missing []string
	if cfg.User == "" {
		missing = append(missing, "MYSQL_USER")
	}
	if cfg.Password == "" {
		missing = append(missing, "MYSQL_PASSWORD")
	}
	if cfg.Database == "" {
		missing = append(missing, "MYSQL_DATABASE")
	}
	if len(missing) > 0 {
		return Config{}, &ConfigurationError{Missing: missing, Err: ErrMissingConfig}
	}

	if v := os.Getenv("MYSQL_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, &ConfigurationError{Err: fmt.Errorf("%w: %q", ErrInvalidPort, v)}
		}
		cfg.Port = port
	}

	if v := os.Getenv("MYSQL_QUERY_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil || timeout < 0 {
			return Config{}, &ConfigurationError{Err: fmt.Errorf("%w: %q", ErrInvalidTimeout, v)}
		}
		cfg.QueryTimeout = timeout
	}

	if _, err := NewDialect(string(cfg.Driver)); err != nil {
		return Config{}, &ConfigurationError{Err: err}
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
