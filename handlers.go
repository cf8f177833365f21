package main

import (
	"context"
	"net/http"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
)

// healthCheckHandler handles health check requests to verify service status
//
//	@Summary		Health check
//	@Description	Reports that the service is running
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	Response{data=HealthResponse}
//	@Router			/health [get]
func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	sendResponse(w, http.StatusOK, StatusOK, map[string]string{"status": "healthy"})
}

// clearCacheHandler clears one SSID (optionally one band of it) or the whole cache
//
//	@Summary		Clear cache
//	@Description	Clears cached candidates for one SSID, one SSID and band, or everything
//	@Tags			System
//	@Produce		json
//	@Param			ssid	query		string	false	"Full SSID or numeric suffix"
//	@Param			band	query		string	false	"Radio band, requires ssid"
//	@Success		200		{object}	Response{data=MessageResponse}
//	@Failure		400		{object}	Response
//	@Failure		401		{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/api/v1/upc/cache/clear [post]
func clearCacheHandler(w http.ResponseWriter, r *http.Request) {
	clientIP := GetClientIP(r)
	ssidParam := r.URL.Query().Get(QuerySSID)
	bandParam := r.URL.Query().Get(QueryBand)

	if ssidParam == "" {
		if bandParam != "" {
			sendError(w, http.StatusBadRequest, StatusBadRequest, ErrCacheKeyRequired)
			return
		}
		resultCacheInstance.clearAll()
		AuditLog(AuditEventCacheClear, clientIP, "", "All cached candidates cleared")
		sendResponse(w, http.StatusOK, StatusOK, map[string]string{"message": MsgCacheCleared})
		return
	}

	target, err := parseSSIDParam(ssidParam)
	if err != nil {
		sendError(w, http.StatusBadRequest, StatusBadRequest, ErrInvalidSSID)
		return
	}

	bands := keygen.Bands
	if bandParam != "" {
		band, err := keygen.ParseBand(bandParam)
		if err != nil {
			sendError(w, http.StatusBadRequest, StatusBadRequest, ErrInvalidBand)
			return
		}
		bands = []keygen.Band{band}
	}
	for _, band := range bands {
		resultCacheInstance.clear(cacheKey(band, target))
	}
	AuditLog(AuditEventCacheClear, clientIP, canonicalSSID(target), "Cached candidates cleared")
	sendResponse(w, http.StatusOK, StatusOK, map[string]string{"message": MsgCacheCleared})
}

// contextWithLookupTimeout bounds how long a request waits for an enumeration
func contextWithLookupTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), lookupTimeout)
}
