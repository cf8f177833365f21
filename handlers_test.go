package main

import (
	"net/http"
	"testing"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckHandler(t *testing.T) {
	router, _ := setupTestServer(t)

	rr := doRequest(router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var data HealthResponse
	resp := decodeResponse(t, rr, &data)
	assert.Equal(t, StatusOK, resp.Status)
	assert.Equal(t, "healthy", data.Status)
}

// seedCache stores an entry for both bands of mockTarget and of another SSID
func seedCache() {
	for _, band := range keygen.Bands {
		resultCacheInstance.set(cacheKey(band, mockTarget), mockCandidates)
		resultCacheInstance.set(cacheKey(band, 1596878), mockCandidates5GHz)
	}
}

func TestClearCacheHandler(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantLeft  int
		wantError string
	}{
		{name: "everything", query: "", wantCode: http.StatusOK, wantLeft: 0},
		{name: "one SSID both bands", query: "?ssid=UPC1234567", wantCode: http.StatusOK, wantLeft: 2},
		{name: "one SSID by suffix", query: "?ssid=1234567", wantCode: http.StatusOK, wantLeft: 2},
		{name: "one SSID one band", query: "?ssid=UPC1234567&band=5GHz", wantCode: http.StatusOK, wantLeft: 3},
		{name: "band without ssid", query: "?band=5GHz", wantCode: http.StatusBadRequest, wantLeft: 4, wantError: ErrCacheKeyRequired},
		{name: "invalid ssid", query: "?ssid=UPCnope", wantCode: http.StatusBadRequest, wantLeft: 4, wantError: ErrInvalidSSID},
		{name: "invalid band", query: "?ssid=UPC1234567&band=7", wantCode: http.StatusBadRequest, wantLeft: 4, wantError: ErrInvalidBand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupTestServer(t)
			seedCache()
			require.Equal(t, 4, resultCacheInstance.len())

			rr := doRequest(router, http.MethodPost, "/api/v1/upc/cache/clear"+tt.query)
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantLeft, resultCacheInstance.len())

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeResponse(t, rr, nil).Error)
				return
			}
			var msg MessageResponse
			decodeResponse(t, rr, &msg)
			assert.Equal(t, MsgCacheCleared, msg.Message)
		})
	}
}

func TestClearCacheHandler_ForcesRecompute(t *testing.T) {
	router, stub := setupTestServer(t)

	doRequest(router, http.MethodGet, "/api/v1/upc/keys/UPC1234567")
	doRequest(router, http.MethodPost, "/api/v1/upc/cache/clear?ssid=UPC1234567&band=2.4GHz")
	rr := doRequest(router, http.MethodGet, "/api/v1/upc/keys/UPC1234567")

	var data KeyLookupResponse
	decodeResponse(t, rr, &data)
	assert.False(t, data.Cached)
	assert.Equal(t, int32(2), stub.calls.Load())
}

func TestClearCacheHandler_AuditLogged(t *testing.T) {
	router, _ := setupTestServer(t)
	logs := captureLogs(t)

	doRequest(router, http.MethodPost, "/api/v1/upc/cache/clear?ssid=1234567")
	assert.Contains(t, logs.String(), AuditEventCacheClear)
	assert.Contains(t, logs.String(), mockSSID)
}
