package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jwebster45206/orion-rescue/internal/config"
	"github.com/jwebster45206/orion-rescue/internal/handlers"
	"github.com/jwebster45206/orion-rescue/internal/logger"
	"github.com/jwebster45206/orion-rescue/internal/middleware"
	"github.com/jwebster45206/orion-rescue/internal/stats"
	"github.com/jwebster45206/orion-rescue/internal/storage"
	"github.com/jwebster45206/orion-rescue/pkg/game"
	"github.com/jwebster45206/orion-rescue/pkg/savecode"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Orion Rescue API",
		"port", cfg.Port,
		"environment", cfg.Environment)

	var store storage.Storage = storage.NewRedisStorage(cfg.RedisURL, log)
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := store.Ping(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	rng := savecode.NewLockedRand(time.Now().UnixNano())
	codec, err := savecode.LoadPools(filepath.Join(cfg.DataDir, "wordpools"), rng)
	if err != nil {
		log.Error("Failed to load save word pools", "error", err, "data_dir", cfg.DataDir)
		os.Exit(1)
	}
	log.Info("Save word pools loaded", "combinations", codec.Combinations())

	aggregator := stats.NewAggregator(store, log)
	engine := game.NewEngine(store, aggregator, codec, rng, log)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	sessionHandler := handlers.NewSessionHandler(store, engine, log)
	mux.Handle("/v1/sessions", sessionHandler)
	mux.Handle("/v1/sessions/", sessionHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
