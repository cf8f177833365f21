package main

import (
	"errors"
	"strings"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
)

// validateSSIDCharacters validates that the SSID contains only printable ASCII (0x20-0x7E)
func validateSSIDCharacters(ssid string) error {
	for _, r := range ssid {
		if r < 0x20 || r > 0x7E {
			return errors.New(ErrInvalidSSID)
		}
	}
	return nil
}

// parseSSIDParam accepts either a full SSID ("UPC1234567") or the bare numeric suffix
func parseSSIDParam(ssid string) (uint32, error) {
	if err := validateSSIDCharacters(ssid); err != nil {
		return 0, errors.Join(keygen.ErrInvalidInput, err)
	}
	if ssid != "" && ssid[0] >= '0' && ssid[0] <= '9' {
		return keygen.ParseTarget(ssid)
	}
	return keygen.ParseSSID(ssid)
}

// parseBandParam parses the band query value, defaulting to 2.4GHz when empty
func parseBandParam(raw string) (keygen.Band, error) {
	if raw == "" {
		raw = DefaultBand
	}
	return keygen.ParseBand(raw)
}

// sanitizeErrorMessage removes user input and internals from error messages
func sanitizeErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	errMsg := err.Error()

	// keygen echoes the offending input, never pass it through
	if errors.Is(err, keygen.ErrInvalidInput) {
		return ErrInvalidInputGeneric
	}
	if errors.Is(err, keygen.ErrHashUnavailable) {
		return ErrHashPrimitive
	}

	// Timeouts are safe to report as-is
	if strings.Contains(errMsg, "deadline exceeded") {
		return ErrLookupTimeout
	}

	// Return generic message for unknown errors to prevent info leakage
	return ErrGenericInternal
}
