package worker

// redrive_cron.go
// Background goroutine that periodically drains the snapshot DLQ back into
// the live queue once the snapshot store is reachable again. Uses the
// Circuit Breaker state to avoid re-feeding jobs into a downed store.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/rkashyapa/automanage-industrial-hub/internal/infra"
)

const (
	redriveTickInterval = 30 * time.Second
	redriveBatchSize    = 10
)

// RedriveCronConfig holds all dependencies for the redrive goroutine.
type RedriveCronConfig struct {
	RDB *redis.Client
	CB  *infra.CircuitBreaker
}

// StartRedriveCron launches a background goroutine that ticks every 30s and
// re-enqueues dead-lettered snapshot jobs while the circuit breaker is closed.
// It respects the context for graceful shutdown.
func StartRedriveCron(ctx context.Context, cfg RedriveCronConfig) {
	go func() {
		ticker := time.NewTicker(redriveTickInterval)
		defer ticker.Stop()

		log.Info().Msg("redrive_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("redrive_cron: shutting down")
				return
			case <-ticker.C:
				processRedrive(ctx, cfg)
			}
		}
	}()
}

func processRedrive(ctx context.Context, cfg RedriveCronConfig) {
	// Only redrive while the store is healthy. Half-open counts as not yet
	// recovered; the probe traffic decides that.
	if cfg.CB.State() != infra.CBClosed {
		log.Debug().Msg("redrive_cron: circuit breaker not closed, skipping tick")
		return
	}

	dlqKey := DLQPrefix + QueueSnapshots
	redriven := 0

	for i := 0; i < redriveBatchSize; i++ {
		raw, err := cfg.RDB.RPop(ctx, dlqKey).Result()
		if err == redis.Nil {
			break
		}
		if err != nil {
			log.Error().Err(err).Msg("redrive_cron: failed to pop from DLQ")
			return
		}

		var entry DLQEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			log.Error().Err(err).Msg("redrive_cron: corrupt DLQ entry, dropping")
			continue
		}

		// Attempts reset to zero: the store was down, not the payload bad.
		job := Job{Type: entry.JobType, Payload: entry.Payload}
		encoded, err := json.Marshal(job)
		if err != nil {
			log.Error().Err(err).Msg("redrive_cron: failed to marshal job")
			continue
		}
		if err := cfg.RDB.LPush(ctx, QueueSnapshots, encoded).Err(); err != nil {
			log.Error().Err(err).Msg("redrive_cron: failed to re-enqueue job")
			return
		}
		redriven++
	}

	if redriven > 0 {
		log.Info().Int("count", redriven).Msg("redrive_cron: re-enqueued dead-lettered jobs")
	}
}
