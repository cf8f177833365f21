package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"go.uber.org/zap"
)

// sendResponse sends a standardized success response with JSON formatting
func sendResponse(w http.ResponseWriter, code int, status string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(Response{Code: code, Status: status, Data: data}); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// sendError sends a standardized error response with JSON formatting
func sendError(w http.ResponseWriter, code int, status string, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(Response{Code: code, Status: status, Error: errorMsg}); err != nil {
		logger.Error("Failed to encode JSON error response", zap.Error(err))
	}
}

// sendKeygenError maps a keygen or context error onto the matching HTTP status
func sendKeygenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, keygen.ErrInvalidInput):
		sendError(w, http.StatusBadRequest, StatusBadRequest, sanitizeErrorMessage(err))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		sendError(w, http.StatusRequestTimeout, StatusTimeout, ErrLookupTimeout)
	case errors.Is(err, keygen.ErrHashUnavailable):
		sendError(w, http.StatusInternalServerError, StatusInternalError, ErrHashPrimitive)
	default:
		sendError(w, http.StatusInternalServerError, StatusInternalError, sanitizeErrorMessage(err))
	}
}
