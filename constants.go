package main

import "time"

// Task types for worker pool operations
const (
	TaskTypePrecompute = "precomputeKeys"
)

// Environment variable names
const (
	EnvServerAddr          = "SERVER_ADDR"
	EnvMiddlewareAuth      = "MIDDLEWARE_AUTH"
	EnvAuthKey             = "AUTH_KEY"
	EnvCacheTTL            = "CACHE_TTL_MINUTES"
	EnvCacheMaxEntries     = "CACHE_MAX_ENTRIES"
	EnvKeygenWorkers       = "KEYGEN_WORKERS"
	EnvWorkerCount         = "WORKER_COUNT"
	EnvQueueSize           = "QUEUE_SIZE"
	EnvRateLimitRequests   = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow     = "RATE_LIMIT_WINDOW"
	EnvCORSAllowedOrigins  = "CORS_ALLOWED_ORIGINS"
	EnvCORSMaxAge          = "CORS_MAX_AGE"
	EnvLookupTimeoutSecond = "LOOKUP_TIMEOUT_SECONDS"
)

// Server and pool defaults
const (
	DefaultServerAddr = ":8080"
	// DefaultAuthKey is intentionally empty - MUST be set via AUTH_KEY when MIDDLEWARE_AUTH=true
	DefaultAuthKey            = ""
	DefaultCacheTTL           = 60 * time.Minute
	DefaultCacheMaxEntries    = 1024
	DefaultShutdownTimeout    = 30 * time.Second
	DefaultRequestTimeout     = 60 * time.Second
	DefaultLookupTimeout      = 30 * time.Second
	DefaultWorkerCount        = 2
	DefaultQueueSize          = 32
	DefaultRateLimitRequests  = 30
	DefaultRateLimitWindow    = 60 // seconds
	DefaultCORSAllowedOrigins = "*"
	DefaultCORSMaxAge         = 86400 // seconds
)

// Brute force protection for API key authentication
const (
	MaxFailedAuthAttempts = 5
	AuthAttemptWindow     = 5 * time.Minute
	AuthLockoutDuration   = 15 * time.Minute
)

// Query parameters
const (
	QueryBand = "band"
	QuerySSID = "ssid"
)

// HTTP headers
const (
	HeaderXAPIKey = "X-API-Key"
)

// SSID vendor prefix and default band
const (
	SSIDPrefix  = "UPC"
	DefaultBand = "2.4GHz"
)

// HTTP response statuses
const (
	StatusOK                 = "OK"
	StatusAccepted           = "Accepted"
	StatusBadRequest         = "Bad Request"
	StatusUnauthorized       = "Unauthorized"
	StatusTooManyRequests    = "Too Many Requests"
	StatusInternalError      = "Internal Server Error"
	StatusServiceUnavailable = "Service Unavailable"
	StatusTimeout            = "Timeout"
)

// Error messages
const (
	ErrInvalidSSID         = "SSID must be a 3 character prefix followed by a numeric suffix"
	ErrInvalidBand         = "band must be one of 2.4GHz or 5GHz"
	ErrInvalidSerial       = "serial must be SAAP followed by 8 digits"
	ErrInvalidInputGeneric = "Invalid input"
	ErrLookupTimeout       = "Operation timed out while enumerating candidates"
	ErrMissingAPIKey       = "Missing API key"
	ErrInvalidAPIKey       = "Invalid API key"
	ErrAuthLockedOut       = "Too many failed authentication attempts. Please try again later."
	ErrRateLimited         = "Rate limit exceeded. Please try again later."
	ErrHashPrimitive       = "Key derivation is unavailable on this server"
	ErrGenericInternal     = "An error occurred processing your request"
	ErrQueueFull           = "Precompute queue is full, try again later"
	ErrCacheKeyRequired    = "ssid is required when band is given"
)

// Success messages
const (
	MsgCacheCleared        = "Cache cleared"
	MsgPrecomputeSubmitted = "Precompute task submitted. Query the GET endpoint again after a few moments."
)

// Audit event types
const (
	AuditEventKeyLookup   = "KEY_LOOKUP"
	AuditEventSerialKey   = "SERIAL_DERIVE"
	AuditEventPrecompute  = "PRECOMPUTE"
	AuditEventCacheClear  = "CACHE_CLEAR"
	AuditEventAuthFailure = "AUTH_FAILURE"
	AuditEventAuthSuccess = "AUTH_SUCCESS"
	AuditEventAuthBlocked = "AUTH_BLOCKED"
)
