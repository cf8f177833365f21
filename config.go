package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// logger is the process-wide structured logger; a no-op until initLoggerWrapper runs
var logger = zap.NewNop()

// appConfig holds every setting read from the environment at startup
type appConfig struct {
	ServerAddr        string
	MiddlewareAuth    bool
	AuthKey           string
	CacheTTL          time.Duration
	CacheMaxEntries   int
	KeygenWorkers     int
	WorkerCount       int
	QueueSize         int
	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSOrigins       []string
	CORSMaxAge        int
	LookupTimeout     time.Duration
}

// getEnv retrieves environment variable value with fallback to default if not set
func getEnv(key, defaultValue string) string {
	// Check if environment variable exists
	if value, exists := os.LookupEnv(key); exists {
		return value // Return environment variable value
	}
	return defaultValue // Return default value if environment variable not set
}

// getEnvInt reads a positive integer, keeping the default for missing or invalid values
func getEnvInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		logger.Warn("Ignoring invalid numeric environment variable",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Int("default", defaultValue))
		return defaultValue
	}
	return n
}

// getEnvBool treats only "true" (any case) as enabled
func getEnvBool(key string, defaultValue bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	return strings.EqualFold(raw, "true")
}

// loadConfig builds the service configuration from the environment
func loadConfig(addr string) (appConfig, error) {
	cfg := appConfig{
		ServerAddr:        getEnv(EnvServerAddr, addr),
		MiddlewareAuth:    getEnvBool(EnvMiddlewareAuth, false),
		AuthKey:           getEnv(EnvAuthKey, DefaultAuthKey),
		CacheTTL:          time.Duration(getEnvInt(EnvCacheTTL, int(DefaultCacheTTL/time.Minute))) * time.Minute,
		CacheMaxEntries:   getEnvInt(EnvCacheMaxEntries, DefaultCacheMaxEntries),
		KeygenWorkers:     getEnvInt(EnvKeygenWorkers, runtime.NumCPU()),
		WorkerCount:       getEnvInt(EnvWorkerCount, DefaultWorkerCount),
		QueueSize:         getEnvInt(EnvQueueSize, DefaultQueueSize),
		RateLimitRequests: getEnvInt(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   time.Duration(getEnvInt(EnvRateLimitWindow, DefaultRateLimitWindow)) * time.Second,
		CORSMaxAge:        getEnvInt(EnvCORSMaxAge, DefaultCORSMaxAge),
		LookupTimeout:     time.Duration(getEnvInt(EnvLookupTimeoutSecond, int(DefaultLookupTimeout/time.Second))) * time.Second,
	}

	// Split and trim the comma separated origin list
	for _, origin := range strings.Split(getEnv(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	// Refuse to start in an insecure state
	if cfg.MiddlewareAuth && cfg.AuthKey == "" {
		return appConfig{}, fmt.Errorf("%s is enabled but %s is not set. "+
			"Set %s environment variable or disable %s",
			EnvMiddlewareAuth, EnvAuthKey, EnvAuthKey, EnvMiddlewareAuth)
	}
	return cfg, nil
}

// initLoggerWrapper handles logger initialization and returns error
func initLoggerWrapper() error {
	l, err := initLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// Function to initialize logger (package-level variable for testing)
var initLogger = func() (*zap.Logger, error) {
	return zap.NewProduction() // Use production configuration for logger
}
