package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rkashyapa/automanage-industrial-hub/internal/config"
	"github.com/rkashyapa/automanage-industrial-hub/internal/infra"
	"github.com/rkashyapa/automanage-industrial-hub/internal/repository"
	"github.com/rkashyapa/automanage-industrial-hub/internal/router"
	"github.com/rkashyapa/automanage-industrial-hub/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Snapshot pipeline: dispatcher enqueues, pool persists, breaker guards
	// the store, redrive cron drains the DLQ after recovery.
	snapshotCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	snapshotRepo := repository.NewSnapshotRepository(rdb, time.Duration(cfg.SnapshotTTLHours)*time.Hour)
	snapshotWorker := worker.NewSnapshotWorker(snapshotRepo, snapshotCB)
	worker.StartWorkerPool(ctx, rdb, snapshotWorker, cfg.WorkerPoolSize)
	worker.StartRedriveCron(ctx, worker.RedriveCronConfig{RDB: rdb, CB: snapshotCB})

	r := router.New(cfg, db, rdb, snapshotCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("automanage hub listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
