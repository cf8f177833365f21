package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// --- Mock Data Constants ---

const (
	mockSSID     = "UPC1234567"
	mockTarget   = uint32(1234567)
	mockSerial   = "SAAP12345678"
	mockAPIKey   = "test-secret-key"
	failTarget   = uint32(6666666)
	emptyTarget  = uint32(7777777)
	mockClientIP = "192.0.2.10"
)

// mockCandidates is what the stub enumerator returns for mockTarget on 2.4GHz
var mockCandidates = []keygen.Result{
	{Serial: "SAAP19165767", Password: "CWGUJAJX"},
	{Serial: "SAAP25488167", Password: "AJCZEGNA"},
	{Serial: "SAAP25491367", Password: "KTXRJYNQ"},
}

// mockCandidates5GHz is what the stub enumerator returns for mockTarget on 5GHz
var mockCandidates5GHz = []keygen.Result{
	{Serial: "SAAP05488167", Password: "ZDUEKEST"},
}

// stubCollector replaces the 10^7 enumeration with canned answers and counts calls
type stubCollector struct {
	calls    atomic.Int32
	finished atomic.Int32
	delay    time.Duration
}

func (s *stubCollector) collect(ctx context.Context, band keygen.Band, target uint32, _ int) ([]keygen.Result, error) {
	s.calls.Add(1)
	defer s.finished.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	switch {
	case target == failTarget:
		return nil, errors.New("enumeration backend exploded")
	case target == emptyTarget:
		return []keygen.Result{}, nil
	case band == keygen.Band5GHz:
		return append([]keygen.Result{}, mockCandidates5GHz...), nil
	default:
		return append([]keygen.Result{}, mockCandidates...), nil
	}
}

// --- Test Setup Functions ---

// idle reports whether every enumeration that reached the stub has returned
func (s *stubCollector) idle() bool {
	return s.calls.Load() == s.finished.Load()
}

// waitIdle blocks until detached enumerations started by a test have returned
func (s *stubCollector) waitIdle(t *testing.T) {
	t.Helper()
	require.Eventually(t, s.idle, 5*time.Second, 5*time.Millisecond)
}

// setupTestState swaps in a fresh cache, worker pool and stub enumerator
func setupTestState(t *testing.T) *stubCollector {
	t.Helper()
	stub := &stubCollector{}

	originalCollect := collectKeys
	originalCache := resultCacheInstance
	originalPool := taskWorkerPool
	originalTimeout := lookupTimeout
	originalTracker := authTracker
	t.Cleanup(func() {
		stub.waitIdle(t)
		collectKeys = originalCollect
		resultCacheInstance = originalCache
		taskWorkerPool = originalPool
		lookupTimeout = originalTimeout
		authTracker = originalTracker
	})

	collectKeys = stub.collect
	resultCacheInstance = newResultCache(time.Minute, 16)
	lookupTimeout = 5 * time.Second
	authTracker = newAuthAttemptTracker()

	taskWorkerPool = newWorkerPool(1, 10)
	taskWorkerPool.Start()
	t.Cleanup(taskWorkerPool.Stop)

	return stub
}

func setupTestServer(t *testing.T) (*chi.Mux, *stubCollector) {
	t.Helper()
	stub := setupTestState(t)

	r := chi.NewRouter()
	r.Route(APIBasePath, registerAPIRoutes)
	r.Get("/health", healthCheckHandler)
	return r, stub
}

// captureLogs installs a JSON logger writing into the returned buffer
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buffer bytes.Buffer
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(&buffer)), zap.DebugLevel)

	originalLogger := logger
	logger = zap.New(core)
	t.Cleanup(func() { logger = originalLogger })
	return &buffer
}

// doRequest serves one request against handler and returns the recorder
func doRequest(handler http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// decodeResponse unmarshals the envelope and re-decodes Data into data when non-nil
func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, data interface{}) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	if data != nil && resp.Data != nil {
		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, data))
	}
	return resp
}
