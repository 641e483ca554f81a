package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "PREFORK", "ADMIN_ADDR", "ACCESS_LOG", "METRICS_ENABLED", "SHUTDOWN_TIMEOUT_SEC", "LOG_TIMEZONE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := Load()

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.False(t, cfg.Server.Prefork)
	assert.Equal(t, "127.0.0.1:9090", cfg.Observability.AdminAddr)
	assert.True(t, cfg.Observability.AccessLog)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoad(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9999")
	t.Setenv("PREFORK", "true")
	t.Setenv("ACCESS_LOG", "false")
	t.Setenv("READ_TIMEOUT_SEC", "5")
	t.Setenv("SHUTDOWN_TIMEOUT_SEC", "3")
	t.Setenv("ADMIN_ADDR", "")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:9999", cfg.Addr())
	assert.True(t, cfg.Server.Prefork)
	assert.False(t, cfg.Observability.AccessLog)
	assert.Equal(t, 5, cfg.Server.ReadTimeoutSec)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout())
	assert.Empty(t, cfg.Observability.AdminAddr)
}

func TestAppConfig_Addr_IPv6(t *testing.T) {
	cfg := &AppConfig{Server: ServerConfig{Host: "::", Port: "8080"}}
	assert.Equal(t, "[::]:8080", cfg.Addr())
}

func TestAppConfig_Location(t *testing.T) {
	cfg := &AppConfig{Observability: ObservabilityConfig{LogTimezone: "Asia/Jakarta"}}
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())

	cfg.Observability.LogTimezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvAllowEmpty(t *testing.T) {
	key := "TEST_EMPTY_VAR"
	os.Unsetenv(key)
	assert.Equal(t, "default", getEnvAllowEmpty(key, "default"))

	t.Setenv(key, "")
	assert.Equal(t, "", getEnvAllowEmpty(key, "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
