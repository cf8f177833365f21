package main

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"github.com/go-chi/chi/v5"
)

// GetClientIP extracts the client IP address from the request.
// It checks X-Real-IP header first (for proxied requests), then falls back to RemoteAddr.
func GetClientIP(r *http.Request) string {
	clientIP := r.RemoteAddr
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		if parsedIP := net.ParseIP(realIP); parsedIP != nil {
			clientIP = realIP
		}
	}
	return clientIP
}

// canonicalSSID renders a target as the SSID a device broadcasts
func canonicalSSID(target uint32) string {
	return fmt.Sprintf("%s%07d", SSIDPrefix, target)
}

// --- HTTP Handler Helpers ---

// ExtractTarget parses the {ssid} URL parameter.
// Returns the target and true if successful, or sends a 400 and returns false
func ExtractTarget(w http.ResponseWriter, r *http.Request) (uint32, bool) {
	target, err := parseSSIDParam(chi.URLParam(r, "ssid"))
	if err != nil {
		sendError(w, http.StatusBadRequest, StatusBadRequest, ErrInvalidSSID)
		return 0, false
	}
	return target, true
}

// ExtractBand parses the band query parameter.
// Returns the band and true if successful, or sends a 400 and returns false
func ExtractBand(w http.ResponseWriter, r *http.Request) (keygen.Band, bool) {
	band, err := parseBandParam(r.URL.Query().Get(QueryBand))
	if err != nil {
		sendError(w, http.StatusBadRequest, StatusBadRequest, ErrInvalidBand)
		return 0, false
	}
	return band, true
}

// ExtractSerial parses the {serial} URL parameter, upper-casing it first
func ExtractSerial(w http.ResponseWriter, r *http.Request) (string, keygen.Tuple, bool) {
	serial := strings.ToUpper(chi.URLParam(r, "serial"))
	tuple, err := keygen.ParseSerial(serial)
	if err != nil {
		sendError(w, http.StatusBadRequest, StatusBadRequest, ErrInvalidSerial)
		return "", keygen.Tuple{}, false
	}
	return serial, tuple, true
}
