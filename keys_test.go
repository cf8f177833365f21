package main

import (
	"context"
	"testing"
	"time"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKeys_CacheMissThenHit(t *testing.T) {
	stub := setupTestState(t)
	logs := captureLogs(t)

	got, cached, err := lookupKeys(context.Background(), mockTarget, keygen.Band24GHz)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, mockCandidates, got)
	assert.Contains(t, logs.String(), "Enumerated key candidates")

	got, cached, err = lookupKeys(context.Background(), mockTarget, keygen.Band24GHz)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, mockCandidates, got)
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestLookupKeys_BandsAreSeparate(t *testing.T) {
	stub := setupTestState(t)

	g24, _, err := lookupKeys(context.Background(), mockTarget, keygen.Band24GHz)
	require.NoError(t, err)
	g5, _, err := lookupKeys(context.Background(), mockTarget, keygen.Band5GHz)
	require.NoError(t, err)

	assert.NotEqual(t, g24, g5)
	assert.Equal(t, int32(2), stub.calls.Load())
}

func TestLookupKeys_ErrorNotCached(t *testing.T) {
	stub := setupTestState(t)

	_, _, err := lookupKeys(context.Background(), failTarget, keygen.Band24GHz)
	require.Error(t, err)
	_, _, err = lookupKeys(context.Background(), failTarget, keygen.Band24GHz)
	require.Error(t, err)

	assert.Equal(t, int32(2), stub.calls.Load())
	assert.Equal(t, 0, resultCacheInstance.len())
}

func TestLookupKeys_CallerCancelledEnumerationCompletes(t *testing.T) {
	stub := setupTestState(t)
	stub.delay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := lookupKeys(ctx, 4444444, keygen.Band24GHz)
	assert.ErrorIs(t, err, context.Canceled)

	// The detached enumeration still lands in the cache
	require.Eventually(t, func() bool {
		_, ok := resultCacheInstance.get(cacheKey(keygen.Band24GHz, 4444444))
		return ok
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLookupKeys_ReturnsCopies(t *testing.T) {
	setupTestState(t)

	got, _, err := lookupKeys(context.Background(), mockTarget, keygen.Band24GHz)
	require.NoError(t, err)
	got[0].Serial = "CHANGED"

	again, _, err := lookupKeys(context.Background(), mockTarget, keygen.Band24GHz)
	require.NoError(t, err)
	assert.Equal(t, mockCandidates, again)
}

func TestLookupKeys_DetachedEnumerationUsesSnapshot(t *testing.T) {
	stub := setupTestState(t)
	stub.delay = 50 * time.Millisecond
	cache := resultCacheInstance

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := lookupKeys(ctx, 3333333, keygen.Band24GHz)
	require.ErrorIs(t, err, context.Canceled)

	// Globals swapped while the enumeration is in flight must not affect it
	collectKeys = func(context.Context, keygen.Band, uint32, int) ([]keygen.Result, error) {
		t.Error("enumeration read collectKeys after it started")
		return nil, nil
	}
	resultCacheInstance = newResultCache(time.Minute, 1)

	stub.waitIdle(t)
	require.Eventually(t, func() bool {
		_, ok := cache.get(cacheKey(keygen.Band24GHz, 3333333))
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, resultCacheInstance.len())
}
