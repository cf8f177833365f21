package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// serverShutdown stops the server gracefully (package-level variable for testing)
var serverShutdown = func(ctx context.Context, server *http.Server) error {
	return server.Shutdown(ctx)
}

func runServer(addr string) error {
	cfg, err := loadConfig(addr)
	if err != nil {
		return err
	}
	logger.Info("Middleware authentication", zap.Bool("enabled", cfg.MiddlewareAuth))

	// apply config to the shared lookup state
	resultCacheInstance = newResultCache(cfg.CacheTTL, cfg.CacheMaxEntries)
	keygenWorkers = cfg.KeygenWorkers
	lookupTimeout = cfg.LookupTimeout
	logger.Info("Key generation configured",
		zap.Int("keygen_workers", cfg.KeygenWorkers),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("cache_max_entries", cfg.CacheMaxEntries),
		zap.Duration("lookup_timeout", cfg.LookupTimeout))

	// start worker pool
	taskWorkerPool = newWorkerPool(cfg.WorkerCount, cfg.QueueSize)
	taskWorkerPool.Start()
	defer taskWorkerPool.Stop()

	rl := newRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	rl.StartCleanup()
	defer rl.StopCleanup()
	logger.Info("Rate limiting configured",
		zap.Int("requests", cfg.RateLimitRequests),
		zap.Duration("window", cfg.RateLimitWindow))
	logger.Info("CORS enabled", zap.Strings("allowed_origins", cfg.CORSOrigins))

	authTracker = newAuthAttemptTracker()
	authTracker.StartCleanup()
	defer authTracker.StopCleanup()

	server := newHTTPServer(cfg.ServerAddr, newRouter(cfg, rl))

	// serverErr always receives exactly once, so runServer can wait for the listener to exit
	serverErr := make(chan error, 1)
	logger.Info("Server listening", zap.String("address", server.Addr))
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		logger.Info("Shutdown signal received, starting graceful shutdown...")

		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		if err := serverShutdown(ctx, server); err != nil {
			// Force the listener down so it does not outlive runServer
			_ = server.Close()
			<-serverErr
			return err
		}
		if err := <-serverErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		logger.Info("Server exited properly")
		return nil
	}
}
