package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kdduha/foto2latex/internal/cache"
	"github.com/kdduha/foto2latex/internal/config"
	"github.com/kdduha/foto2latex/internal/handler"
	"github.com/kdduha/foto2latex/internal/metrics"
	"github.com/kdduha/foto2latex/internal/service"
	"github.com/kdduha/foto2latex/internal/session"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/kdduha/foto2latex/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Foto2LaTeX API
// @version 1.0
// @description Extracts LaTeX equations from images with a vision model.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.Default()
	if cfg.OpenAI.SecretErr != nil {
		logger.Printf("warning: cannot read %s: %v\n", cfg.OpenAI.APIKeyFile, cfg.OpenAI.SecretErr)
	}
	if !cfg.OpenAI.HasAPIKey() {
		logger.Printf("warning: set OPENAI_API_KEY or %s before extracting; requests will fail until then\n", cfg.OpenAI.APIKeyFile)
	}

	extractService := service.NewExtractService(
		logger,
		openai.NewClient(
			option.WithAPIKey(cfg.OpenAI.APIKey),
			option.WithBaseURL(cfg.OpenAI.BaseURL),
			option.WithMaxRetries(0),
		), cfg.OpenAI)

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Printf("redis ping failed, cache lookups will be skipped on error: %v\n", err)
		}
		extractService.SetCacheClient(redisCache)
		logger.Println("set redis as cache")
	}

	h := handler.NewExtractHandler(logger, extractService, session.NewStore(cfg.Session.TTL), cfg.Upload.MaxBytes)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	h.Register(r)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Printf("server started :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}
