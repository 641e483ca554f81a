package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds the public listener and Fiber engine settings.
type ServerConfig struct {
	Host               string
	Port               string
	Prefork            bool
	ReadTimeoutSec     int
	WriteTimeoutSec    int
	IdleTimeoutSec     int
	ShutdownTimeoutSec int
}

// ObservabilityConfig toggles the per-request middleware and the admin listener.
// A benchmark run may switch these off to measure the bare hot path.
type ObservabilityConfig struct {
	AdminAddr      string
	AccessLog      bool
	MetricsEnabled bool
	LogTimezone    string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	Server        ServerConfig
	Observability ObservabilityConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:               getEnv("HOST", "0.0.0.0"),
			Port:               getEnv("PORT", "8080"),
			Prefork:            getEnvBool("PREFORK", false),
			ReadTimeoutSec:     getEnvInt("READ_TIMEOUT_SEC", 0),
			WriteTimeoutSec:    getEnvInt("WRITE_TIMEOUT_SEC", 0),
			IdleTimeoutSec:     getEnvInt("IDLE_TIMEOUT_SEC", 0),
			ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		},
		Observability: ObservabilityConfig{
			AdminAddr:      getEnvAllowEmpty("ADMIN_ADDR", "127.0.0.1:9090"),
			AccessLog:      getEnvBool("ACCESS_LOG", true),
			MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
			LogTimezone:    getEnv("LOG_TIMEZONE", "UTC"),
		},
	}
}

// Addr returns the public listen address, host:port.
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// ShutdownTimeout is the graceful shutdown budget shared by both listeners.
func (c *AppConfig) ShutdownTimeout() time.Duration {
	if c.Server.ShutdownTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Server.ShutdownTimeoutSec) * time.Second
}

// Location resolves LogTimezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Observability.LogTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvAllowEmpty is like getEnv but treats a variable that is set to "" as an explicit value.
func getEnvAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
