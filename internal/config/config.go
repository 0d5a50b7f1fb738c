package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Recompute modes for the ledger. Strict-historical reproduces the original
// behavior where edits and deletes never touch other entries; consistent-ledger
// recomputes every subsequent closing balance whenever a mutation is accepted.
const (
	ModeStrictHistorical = "strict-historical"
	ModeConsistentLedger = "consistent-ledger"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Ledger   LedgerConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// LedgerConfig holds ledger behavior configuration
type LedgerConfig struct {
	// Mode selects the recompute behavior on edit/delete. One of
	// ModeStrictHistorical (default) or ModeConsistentLedger.
	Mode string

	// AuditSchedule is a cron expression for the periodic consistency audit.
	// Empty disables the scheduled audit; the HTTP endpoint stays available.
	AuditSchedule string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/return_ledger.db"),
		},
		Ledger: LedgerConfig{
			Mode:          getEnv("LEDGER_MODE", ModeStrictHistorical),
			AuditSchedule: getEnv("AUDIT_SCHEDULE", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	if config.Ledger.Mode != ModeStrictHistorical && config.Ledger.Mode != ModeConsistentLedger {
		return nil, fmt.Errorf("invalid LEDGER_MODE %q: want %q or %q",
			config.Ledger.Mode, ModeStrictHistorical, ModeConsistentLedger)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
