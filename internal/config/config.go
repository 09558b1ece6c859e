package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	MaxHabits       int
	// Location defines where calendar days begin for streak accounting.
	Location *time.Location
	LogLevel slog.Level
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultTokenTTL        = 72 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxHabits       = 10
	defaultTimezone        = "UTC"
	defaultLogLevel        = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:        getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxHabits:       getInt(lookup, "MAX_HABITS", defaultMaxHabits),
	}

	fs := flag.NewFlagSet("habitquest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		timezone           = getString(lookup, "TIMEZONE", defaultTimezone)
		logLevel           = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MaxHabits, "max-habits", cfg.MaxHabits, "Maximum number of habits per user")
	fs.StringVar(&timezone, "timezone", timezone, "IANA time zone that defines calendar days")
	fs.StringVar(&logLevel, "log-level", logLevel, "Minimum log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.Location, err = time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MaxHabits <= 0 {
		cfg.MaxHabits = defaultMaxHabits
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
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
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
