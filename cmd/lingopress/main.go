// Package main is the entry point for the lingopress catalog server.
// It loads configuration, loads the corpus, wires the use cases and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"lingopress/internal/cache"
	"lingopress/internal/config"
	"lingopress/internal/content"
	"lingopress/internal/corpus"
	"lingopress/internal/handlers"
	"lingopress/internal/metrics"
	"lingopress/internal/middleware"
	"lingopress/internal/router"
	"lingopress/internal/storage"
	"lingopress/internal/store"
	"lingopress/internal/usecase"
)

func main() {
	// Bootstrap logger until the configured level and format are known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text in development.
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if !cfg.IsDev() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"locales", cfg.Locales,
		"default_locale", cfg.DefaultLocale,
	)

	ctx := context.Background()

	// Corpus and body sources: S3 when configured, local directories otherwise.
	dataSrc, contentSrc, err := sources(cfg)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}

	c, err := loadCorpus(ctx, cfg, dataSrc)
	if err != nil {
		slog.Error("failed to load corpus", "error", err, "source", dataSrc)
		os.Exit(1)
	}

	// Metrics registry with the standard process and runtime collectors.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)
	collector.SetCorpusRows("articles", len(c.Articles))
	collector.SetCorpusRows("categories", len(c.Categories))
	collector.SetCorpusRows("tags", len(c.Tags))

	// Optional L2 body cache in Valkey. The server runs without it.
	var shared content.SharedCache
	if cfg.ValkeyEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, body cache disabled", "error", err)
		} else {
			defer valkeyClient.Close()
			bodyCache := cache.NewBodyCache(valkeyClient, cache.DefaultBodyTTL)
			// Bodies compiled for a previous corpus may be stale.
			bodyCache.InvalidateAll(ctx)
			shared = bodyCache
		}
	}

	// Repositories, body provider and use cases.
	stores := store.New(c, cfg.SearchThreshold)
	bodies := content.NewStore(contentSrc, shared, logger)
	svc := usecase.NewServices(usecase.Deps{
		Articles:   stores.Articles,
		Categories: stores.Categories,
		Tags:       stores.Tags,
		Bodies:     bodies,
		Locales:    cfg.LocaleSet(),
		Bounds:     cfg.Bounds(),
		Logger:     logger,
		Recorder:   collector,
	})

	routerOpts := router.Options{
		Metrics:    metrics.Handler(reg),
		Recorder:   collector,
		TrustProxy: cfg.TrustProxy,
	}
	if cfg.RateLimitEnabled() {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		defer limiter.Stop()
		routerOpts.Limiter = limiter
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(handlers.NewPublic(svc, cfg.PublicDefaultPageSize), routerOpts)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// sources returns where corpus JSON and Markdown bodies are read from.
func sources(cfg *config.Config) (data, bodies storage.Source, err error) {
	if !cfg.S3Enabled() {
		return storage.NewDir(cfg.DataDir), storage.NewDir(cfg.ContentDir), nil
	}

	dataS3, err := storage.NewS3(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3DataPrefix)
	if err != nil {
		return nil, nil, err
	}
	bodiesS3, err := storage.NewS3(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3ContentPrefix)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	return dataS3, bodiesS3, nil
}

// loadCorpus reads the corpus from src. In development with
// SEED_DEV_CORPUS set, a missing corpus is replaced by generated data.
func loadCorpus(ctx context.Context, cfg *config.Config, src storage.Source) (*corpus.Corpus, error) {
	c, err := corpus.Load(ctx, src)
	if err == nil {
		return c, nil
	}
	if cfg.IsDev() && cfg.SeedDevCorpus && errors.Is(err, fs.ErrNotExist) {
		slog.Warn("corpus not found, serving the development seed", "source", src)
		return corpus.Seed(cfg.Locales), nil
	}
	return nil, err
}
