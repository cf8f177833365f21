package main

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("UPC_TEST_VALUE", "set")
	assert.Equal(t, "set", getEnv("UPC_TEST_VALUE", "default"))
	assert.Equal(t, "default", getEnv("UPC_TEST_MISSING", "default"))

	t.Setenv("UPC_TEST_EMPTY", "")
	assert.Equal(t, "", getEnv("UPC_TEST_EMPTY", "default"))
}

func TestGetEnvInt(t *testing.T) {
	logs := captureLogs(t)

	t.Setenv("UPC_TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("UPC_TEST_INT", 7))

	assert.Equal(t, 7, getEnvInt("UPC_TEST_INT_MISSING", 7))

	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		t.Setenv("UPC_TEST_INT", raw)
		assert.Equal(t, 7, getEnvInt("UPC_TEST_INT", 7), raw)
	}
	assert.Contains(t, logs.String(), "Ignoring invalid numeric environment variable")
}

func TestGetEnvBool(t *testing.T) {
	assert.False(t, getEnvBool("UPC_TEST_BOOL_MISSING", false))
	assert.True(t, getEnvBool("UPC_TEST_BOOL_MISSING", true))

	for raw, want := range map[string]bool{"true": true, "TRUE": true, "True": true, "false": false, "1": false, "yes": false} {
		t.Setenv("UPC_TEST_BOOL", raw)
		assert.Equal(t, want, getEnvBool("UPC_TEST_BOOL", false), raw)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(":9999")
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ServerAddr)
	assert.False(t, cfg.MiddlewareAuth)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, DefaultCacheMaxEntries, cfg.CacheMaxEntries)
	assert.Equal(t, runtime.NumCPU(), cfg.KeygenWorkers)
	assert.Equal(t, DefaultWorkerCount, cfg.WorkerCount)
	assert.Equal(t, DefaultQueueSize, cfg.QueueSize)
	assert.Equal(t, DefaultRateLimitRequests, cfg.RateLimitRequests)
	assert.Equal(t, time.Duration(DefaultRateLimitWindow)*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, DefaultCORSMaxAge, cfg.CORSMaxAge)
	assert.Equal(t, DefaultLookupTimeout, cfg.LookupTimeout)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv(EnvServerAddr, ":7070")
	t.Setenv(EnvMiddlewareAuth, "true")
	t.Setenv(EnvAuthKey, mockAPIKey)
	t.Setenv(EnvCacheTTL, "5")
	t.Setenv(EnvCacheMaxEntries, "10")
	t.Setenv(EnvKeygenWorkers, "3")
	t.Setenv(EnvWorkerCount, "4")
	t.Setenv(EnvQueueSize, "8")
	t.Setenv(EnvRateLimitRequests, "100")
	t.Setenv(EnvRateLimitWindow, "30")
	t.Setenv(EnvCORSAllowedOrigins, " https://a.example , ,https://b.example")
	t.Setenv(EnvCORSMaxAge, "120")
	t.Setenv(EnvLookupTimeoutSecond, "12")

	cfg, err := loadConfig(DefaultServerAddr)
	require.NoError(t, err)

	assert.Equal(t, appConfig{
		ServerAddr:        ":7070",
		MiddlewareAuth:    true,
		AuthKey:           mockAPIKey,
		CacheTTL:          5 * time.Minute,
		CacheMaxEntries:   10,
		KeygenWorkers:     3,
		WorkerCount:       4,
		QueueSize:         8,
		RateLimitRequests: 100,
		RateLimitWindow:   30 * time.Second,
		CORSOrigins:       []string{"https://a.example", "https://b.example"},
		CORSMaxAge:        120,
		LookupTimeout:     12 * time.Second,
	}, cfg)
}

func TestLoadConfig_AuthWithoutKey(t *testing.T) {
	t.Setenv(EnvMiddlewareAuth, "true")
	t.Setenv(EnvAuthKey, "")

	_, err := loadConfig(DefaultServerAddr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAuthKey)
}

func TestInitLoggerWrapper(t *testing.T) {
	originalLogger := logger
	originalInit := initLogger
	t.Cleanup(func() {
		logger = originalLogger
		initLogger = originalInit
	})

	initLogger = func() (*zap.Logger, error) { return zap.NewNop(), nil }
	require.NoError(t, initLoggerWrapper())

	initLogger = func() (*zap.Logger, error) { return nil, errors.New("no sink") }
	err := initLoggerWrapper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize logger")
}
