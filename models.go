package main

import "github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"

// --- API Response Models ---

// Response represents standardized API response format for all endpoints
type Response struct {
	Code   int         `json:"code"`            // HTTP status code
	Status string      `json:"status"`          // Status message (e.g., "OK", "Bad Request")
	Data   interface{} `json:"data,omitempty"`  // Response payload data when successful
	Error  string      `json:"error,omitempty"` // Error description when operation fails
}

// KeyLookupResponse lists every default key candidate for an SSID
// @Description Candidate serials and passphrases for one SSID and band
type KeyLookupResponse struct {
	SSID       string          `json:"ssid" example:"UPC1234567"`
	Target     uint32          `json:"target" example:"1234567"`
	Band       string          `json:"band" example:"2.4GHz"`
	Count      int             `json:"count" example:"9"`
	Cached     bool            `json:"cached" example:"false"`
	Candidates []keygen.Result `json:"candidates"`
}

// SerialKeyResponse is the derivation for one known serial
// @Description Passphrase and broadcast SSID derived from a serial number
type SerialKeyResponse struct {
	Serial   string `json:"serial" example:"SAAP12345678"`
	Band     string `json:"band" example:"5GHz"`
	SSID     string `json:"ssid,omitempty" example:"UPC1596878"`
	Checksum uint32 `json:"checksum" example:"1596878"`
	Password string `json:"password" example:"AKJNHJHC"`
}

// --- Swagger Documentation Response Types ---

// Compile-time check to ensure Swagger types are valid (prevents "unused" warnings)
var (
	_ = HealthResponse{}
	_ = MessageResponse{}
)

// HealthResponse represents health check response
// @Description Health check response data
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// MessageResponse represents a simple message response
// @Description Simple message response
type MessageResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}
