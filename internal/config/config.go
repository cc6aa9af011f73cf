package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	OrdersFile      string
	DriversFile     string
	StaticDir       string
	RetentionDays   int
	CleanupInterval time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultOrdersFile      = "orders.json"
	defaultDriversFile     = "drivers.json"
	defaultCleanupInterval = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from an optional .env file, environment
// variables, and flags (highest precedence).
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		OrdersFile:      getString(lookup, "ORDERS_FILE", defaultOrdersFile),
		DriversFile:     getString(lookup, "DRIVERS_FILE", defaultDriversFile),
		StaticDir:       getString(lookup, "STATIC_DIR", ""),
		RetentionDays:   getInt(lookup, "RETENTION_DAYS", 0),
		CleanupInterval: getDuration(lookup, "CLEANUP_INTERVAL", defaultCleanupInterval),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("taxi-service", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cleanupIntervalStr = cfg.CleanupInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN (empty: JSON file storage)")
	fs.StringVar(&cfg.OrdersFile, "orders-file", cfg.OrdersFile, "Path of the orders JSON document")
	fs.StringVar(&cfg.DriversFile, "drivers-file", cfg.DriversFile, "Path of the drivers JSON document")
	fs.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "Directory with the web client (empty: disabled)")
	fs.IntVar(&cfg.RetentionDays, "retention-days", cfg.RetentionDays, "Purge orders older than this many days (0: disabled)")
	fs.StringVar(&cleanupIntervalStr, "cleanup-interval", cleanupIntervalStr, "Interval between retention sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CleanupInterval, err = time.ParseDuration(cleanupIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid cleanup interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RetentionDays < 0 {
		cfg.RetentionDays = 0
	}

	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = defaultCleanupInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" && (cfg.OrdersFile == "" || cfg.DriversFile == "") {
		return nil, fmt.Errorf("orders and drivers file paths must be provided for file storage")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := cast.ToIntE(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := cast.ToDurationE(v); err == nil {
			return d
		}
	}
	return def
}
