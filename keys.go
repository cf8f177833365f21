package main

import (
	"context"
	"slices"
	"time"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// resultCacheInstance holds enumerated candidates, replaced by runServer with configured limits
	resultCacheInstance = newResultCache(DefaultCacheTTL, DefaultCacheMaxEntries)

	// taskWorkerPool runs precompute tasks, replaced by runServer with configured sizes
	taskWorkerPool = newWorkerPool(DefaultWorkerCount, DefaultQueueSize)

	// lookupGroup coalesces concurrent lookups of the same (band, target)
	lookupGroup singleflight.Group

	// keygenWorkers bounds the goroutines of one enumeration; 0 means every CPU
	keygenWorkers = 0

	// lookupTimeout bounds one enumeration regardless of who is waiting on it
	lookupTimeout = DefaultLookupTimeout

	// collectKeys is the enumeration backend (package-level variable for testing)
	collectKeys = keygen.Collect
)

// lookupKeys returns the candidates for target on band and whether they came from cache.
// The enumeration itself runs detached from ctx so one cancelled caller does
// not fail the others sharing it; ctx only bounds how long this caller waits.
func lookupKeys(ctx context.Context, target uint32, band keygen.Band) ([]keygen.Result, bool, error) {
	// The detached enumeration may outlive this call, so it only sees this snapshot
	cache, collect, timeout, workers, log := resultCacheInstance, collectKeys, lookupTimeout, keygenWorkers, logger

	key := cacheKey(band, target)
	if cached, found := cache.get(key); found {
		return cached, true, nil
	}

	ch := lookupGroup.DoChan(key, func() (interface{}, error) {
		start := time.Now()
		enumCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results, err := collect(enumCtx, band, target, workers)
		if err != nil {
			return nil, err
		}
		cache.set(key, results)
		log.Info("Enumerated key candidates",
			zap.String("band", band.String()),
			zap.Uint32("target", target),
			zap.Int("candidates", len(results)),
			zap.Duration("elapsed", time.Since(start)))
		return results, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		// Shared callers get their own copy
		return slices.Clone(res.Val.([]keygen.Result)), false, nil
	}
}
