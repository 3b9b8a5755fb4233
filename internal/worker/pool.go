package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

const QueueSnapshots = "jobs:snapshots"

const (
	JobTypeBOMSnapshot       = "bom_snapshot"
	JobTypeTimesheetSnapshot = "timesheet_snapshot"
)

// MaxJobAttempts is how many times a job is retried before landing in the DLQ.
const MaxJobAttempts = 3

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueBOMSnapshot pushes a BOM persistence job to Redis.
// The snapshot payload is self-contained, so a worker can persist it even
// after the originating session state has moved on.
func (d *Dispatcher) EnqueueBOMSnapshot(ctx context.Context, snap model.BOMSnapshot) error {
	return d.enqueue(ctx, JobTypeBOMSnapshot, snap)
}

// EnqueueTimesheetSnapshot pushes a timesheet persistence job to Redis.
func (d *Dispatcher) EnqueueTimesheetSnapshot(ctx context.Context, snap model.TimesheetSnapshot) error {
	return d.enqueue(ctx, JobTypeTimesheetSnapshot, snap)
}

func (d *Dispatcher) enqueue(ctx context.Context, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueSnapshots, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the snapshot queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, sw *SnapshotWorker, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, sw, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, sw *SnapshotWorker, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueSnapshots).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, sw, result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, sw *SnapshotWorker, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal job")
		return
	}

	err := sw.Handle(ctx, job)
	if err == nil {
		return
	}

	job.Attempts++
	if job.Attempts >= MaxJobAttempts {
		SendToDLQ(ctx, rdb, QueueSnapshots, job.Type, job.Payload, err.Error(), job.Attempts)
		return
	}

	log.Warn().
		Str("type", job.Type).
		Int("attempts", job.Attempts).
		Err(err).
		Msg("job failed, re-enqueueing")

	encoded, mErr := json.Marshal(job)
	if mErr != nil {
		log.Error().Err(mErr).Msg("failed to re-marshal job for retry")
		return
	}
	if pErr := rdb.LPush(ctx, QueueSnapshots, encoded).Err(); pErr != nil {
		log.Error().Err(pErr).Msg("failed to re-enqueue job")
	}
}
