package service

import (
	"context"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// SnapshotQueue is the async persistence entry point. *worker.Dispatcher is
// the production implementation; tests swap in an in-memory recorder.
type SnapshotQueue interface {
	EnqueueBOMSnapshot(ctx context.Context, snap model.BOMSnapshot) error
	EnqueueTimesheetSnapshot(ctx context.Context, snap model.TimesheetSnapshot) error
}
