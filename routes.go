package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Cepat-Kilat-Teknologi/upc-keys-relay/docs"
)

// APIBasePath is the prefix of every key recovery endpoint
const APIBasePath = "/api/v1/upc"

// newRouter wires middleware and routes
func newRouter(cfg appConfig, rl *rateLimiter) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(DefaultRequestTimeout))
	if rl != nil {
		r.Use(rateLimitMiddleware(rl))
	}
	r.Use(securityHeadersMiddleware)
	r.Use(corsMiddleware(cfg.CORSOrigins, cfg.CORSMaxAge))

	// Health and docs stay outside authentication
	r.Get("/health", healthCheckHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route(APIBasePath, func(r chi.Router) {
		if cfg.MiddlewareAuth {
			r.Use(apiKeyAuthMiddleware(cfg.AuthKey, authTracker))
		}
		registerAPIRoutes(r)
	})
	return r
}

// registerAPIRoutes mounts the key recovery endpoints on r
func registerAPIRoutes(r chi.Router) {
	r.Get("/keys/{ssid}", getKeysBySSIDHandler)
	r.Post("/keys/{ssid}/precompute", precomputeKeysHandler)
	r.Get("/serial/{serial}", getSerialKeyHandler)
	r.Post("/cache/clear", clearCacheHandler)
}

// newHTTPServer builds the HTTP server (package-level variable for testing)
var newHTTPServer = func(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      DefaultRequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
