package worker

// snapshot_worker.go
// Persists session snapshots (BOM state, timesheet state) into the Redis
// document store. Writes go through the circuit breaker so a downed store
// fast-fails instead of blocking the pool.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rkashyapa/automanage-industrial-hub/internal/infra"
	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
	"github.com/rkashyapa/automanage-industrial-hub/internal/repository"
)

// SnapshotWorker handles snapshot persistence jobs from QueueSnapshots.
type SnapshotWorker struct {
	snapshots repository.SnapshotRepository
	cb        *infra.CircuitBreaker
}

func NewSnapshotWorker(snapshots repository.SnapshotRepository, cb *infra.CircuitBreaker) *SnapshotWorker {
	return &SnapshotWorker{snapshots: snapshots, cb: cb}
}

// Handle decodes the job payload and writes it to the snapshot store.
func (w *SnapshotWorker) Handle(ctx context.Context, job Job) error {
	switch job.Type {
	case JobTypeBOMSnapshot:
		var snap model.BOMSnapshot
		if err := json.Unmarshal(job.Payload, &snap); err != nil {
			return fmt.Errorf("decode bom snapshot: %w", err)
		}
		return w.cb.Execute(func() error {
			return w.snapshots.SaveBOM(ctx, snap)
		})
	case JobTypeTimesheetSnapshot:
		var snap model.TimesheetSnapshot
		if err := json.Unmarshal(job.Payload, &snap); err != nil {
			return fmt.Errorf("decode timesheet snapshot: %w", err)
		}
		return w.cb.Execute(func() error {
			return w.snapshots.SaveTimesheet(ctx, snap)
		})
	default:
		return fmt.Errorf("unknown job type %q", job.Type)
	}
}
