// Package api serves the DNA transcoding HTTP API: encode and decode
// endpoints for messages and files, plus the sequence vault, behind
// X-API-Key authentication with Prometheus metrics on /metrics.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the chi router with all routes and middleware
// configured. /metrics is left unprotected for scraping; everything
// under /api/v1 requires the API key.
func NewRouter(server *Server, metrics *Metrics, apiKey string) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(apiKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Codec operations
		r.Post("/encode", metrics.InstrumentHandler("POST", "/api/v1/encode", server.handleEncode))
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
		r.Post("/encode/file", metrics.InstrumentHandler("POST", "/api/v1/encode/file", server.handleEncodeFile))
		r.Post("/decode/file", metrics.InstrumentHandler("POST", "/api/v1/decode/file", server.handleDecodeFile))

		// Sequence vault
		r.Post("/vault", metrics.InstrumentHandler("POST", "/api/v1/vault", server.handleVaultPut))
		r.Get("/vault", metrics.InstrumentHandler("GET", "/api/v1/vault", server.handleVaultList))
		r.Get("/vault/{id}", metrics.InstrumentHandler("GET", "/api/v1/vault/{id}", server.handleVaultGet))
		r.Delete("/vault/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/vault/{id}", server.handleVaultDelete))
	})

	return r
}

// StartServer runs the HTTP server until ctx is cancelled, then shuts
// down gracefully. The caller owns the vault lifecycle.
func StartServer(ctx context.Context, server *Server, config ServerConfig) error {
	r := NewRouter(server, server.metrics, config.APIKey)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting DNA transcoding API on %s", addr)
		logrus.Infof("Metrics available at http://%s/metrics", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logrus.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
