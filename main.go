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
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"lease-agent/config"
	httpLayer "lease-agent/http"
	"lease-agent/repository"
	"lease-agent/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer zap.L().Sync()

	var repo repository.AnalysisRepository
	switch cfg.Store.Driver {
	case "sqlite":
		sqliteRepo, err := repository.NewSQLite(cfg.Store.Path)
		if err != nil {
			zap.L().Fatal("failed to open sqlite store", zap.Error(err))
		}
		defer sqliteRepo.Close()
		repo = sqliteRepo
		zap.L().Info("using sqlite store", zap.String("path", cfg.Store.Path))
	default:
		repo = repository.NewAnalysisRepositoryMemory()
		zap.L().Info("using in-memory store")
	}

	var cache repository.CacheRepository
	if cfg.Cache.Enabled {
		redisCache := repository.NewRedisCache(cfg.Cache.Addr, cfg.Cache.TTL())
		defer redisCache.Close()
		cache = redisCache
		zap.L().Info("using redis cache", zap.String("addr", cfg.Cache.Addr))
	} else {
		cache = repository.NewMockCache()
	}

	explainer := service.NewExplainer(cfg.Explainer.Model)
	leaseService := service.NewLeaseService(repo, cache, explainer)

	analyzeHandler := httpLayer.NewAnalyzeHandler(leaseService)
	historyHandler := httpLayer.NewHistoryHandler(repo)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window())
	defer rateLimiter.Stop()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)
		r.Post("/lease/analyze", analyzeHandler.Analyze)
		r.Get("/lease/history", historyHandler.ListRecent)
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSecs) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		zap.L().Info("starting server", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		zap.L().Error("server error", zap.Error(err))
		return
	case <-quit:
		zap.L().Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("error during server shutdown", zap.Error(err))
	}

	zap.L().Info("server exited")
}
