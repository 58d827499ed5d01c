package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config aggregates application configuration values.
type Config struct {
	Storage Storage
	Logging LoggingConfig
	// MetricsSummary makes the CLI tools print counter totals after a run.
	MetricsSummary bool
}

// Storage selects and parameterizes the customer repository backend.
type Storage struct {
	Driver     string // memory|sqlite|graph
	SQLitePath string
	Graph      GraphConfig
}

// GraphConfig describes connectivity to the graph database.
type GraphConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// Storage driver names accepted by CUSTOMERDESK_STORAGE_DRIVER.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverGraph  = "graph"
)

const (
	defaultDriver           = DriverMemory
	defaultSQLitePath       = "customerdesk.db"
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "text"
	defaultGraphMaxSessions = 10
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Storage: Storage{
			Driver:     valueOrDefault("CUSTOMERDESK_STORAGE_DRIVER", defaultDriver),
			SQLitePath: valueOrDefault("CUSTOMERDESK_SQLITE_PATH", defaultSQLitePath),
			Graph: GraphConfig{
				URI:            os.Getenv("CUSTOMERDESK_GRAPH_URI"),
				Database:       os.Getenv("CUSTOMERDESK_GRAPH_DATABASE"),
				Username:       os.Getenv("CUSTOMERDESK_GRAPH_USERNAME"),
				Password:       os.Getenv("CUSTOMERDESK_GRAPH_PASSWORD"),
				MaxConnections: parseIntWithDefault("CUSTOMERDESK_GRAPH_MAX_CONNECTIONS", defaultGraphMaxSessions),
			},
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
		MetricsSummary: parseBoolWithDefault("CUSTOMERDESK_METRICS_SUMMARY", false),
	}

	switch cfg.Storage.Driver {
	case DriverMemory, DriverSQLite, DriverGraph:
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Storage.Driver == DriverGraph && cfg.Storage.Graph.URI == "" {
		return Config{}, fmt.Errorf("CUSTOMERDESK_GRAPH_URI is required for the graph driver")
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}
