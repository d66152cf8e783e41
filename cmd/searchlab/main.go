package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/curio-labs/searchlab/internal/catalog"
	"github.com/curio-labs/searchlab/internal/config"
	logpkg "github.com/curio-labs/searchlab/internal/logger"
	"github.com/curio-labs/searchlab/internal/media"
	"github.com/curio-labs/searchlab/internal/metrics"
	"github.com/curio-labs/searchlab/internal/repository/chatlog"
	documentrepo "github.com/curio-labs/searchlab/internal/repository/document"
	"github.com/curio-labs/searchlab/internal/repository/memorypad"
	chiTransport "github.com/curio-labs/searchlab/internal/transport/chi"
	chatuc "github.com/curio-labs/searchlab/internal/usecase/chat"
	healthuc "github.com/curio-labs/searchlab/internal/usecase/health"
	memoryuc "github.com/curio-labs/searchlab/internal/usecase/memory"
	searchuc "github.com/curio-labs/searchlab/internal/usecase/search"
	"github.com/curio-labs/searchlab/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting searchlab API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_path", cfg.Catalog.Path),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Document store + search service with configured jitter source
	store := documentrepo.New()
	searchSvc := searchuc.New(store, buildNoise(cfg.Search))

	// Seed the catalog
	products := catalog.Default()
	if cfg.Catalog.Path != "" {
		products, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logger.Fatal("Failed to load catalog", zap.Error(err))
		}
	}
	docs, err := catalog.Documents(products)
	if err != nil {
		logger.Fatal("Invalid catalog", zap.Error(err))
	}

	ctx := context.Background()
	if err := searchSvc.Index(ctx, docs); err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}
	metrics.DocumentsIndexed.Set(float64(searchSvc.Count(ctx)))
	logger.Info("Catalog indexed", zap.Int("documents", searchSvc.Count(ctx)))

	// Media mocks share the search seed so a fixed seed makes the whole
	// pipeline reproducible.
	transcriber, analyzer := buildMedia(cfg.Search.Seed)

	// Chat and memory collaborators
	chatSvc := chatuc.New(chatlog.New(), transcriber, analyzer)

	pad, err := memorypad.New(cfg.Memory.Root)
	if err != nil {
		logger.Fatal("Failed to create memory pad", zap.Error(err))
	}
	memSvc := memoryuc.New(pad)

	healthSvc := healthuc.New(store, pad)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, chatSvc, memSvc, healthSvc, transcriber, analyzer, logger).
		WithDefaultTopK(cfg.Search.DefaultTopK).
		WithLatency(chiTransport.Latency{
			Min: time.Duration(cfg.Search.MinLatency) * time.Millisecond,
			Max: time.Duration(cfg.Search.MaxLatency) * time.Millisecond,
		})

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildNoise picks the jitter source for semantic scoring from config.
func buildNoise(cfg config.SearchConfig) searchuc.Noise {
	if cfg.ZeroJitter {
		return searchuc.ZeroNoise{}
	}
	if cfg.Seed != 0 {
		return searchuc.NewSeededNoise(cfg.Seed)
	}
	return searchuc.NewRandomNoise()
}

// buildMedia creates the audio and image mocks, seeded when configured.
func buildMedia(seed uint64) (media.Transcriber, media.Analyzer) {
	if seed != 0 {
		return media.NewSeededTranscriber(seed), media.NewSeededAnalyzer(seed)
	}
	return media.NewMockTranscriber(), media.NewMockAnalyzer()
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
