package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkashyapa/automanage-industrial-hub/internal/infra"
	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
	"github.com/rkashyapa/automanage-industrial-hub/internal/repository"
)

type fakeSnapshotRepo struct {
	mu         sync.Mutex
	boms       map[string]model.BOMSnapshot
	timesheets map[string]model.TimesheetSnapshot
	failSaves  bool
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{
		boms:       make(map[string]model.BOMSnapshot),
		timesheets: make(map[string]model.TimesheetSnapshot),
	}
}

func (r *fakeSnapshotRepo) SaveBOM(_ context.Context, snap model.BOMSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSaves {
		return errors.New("store unavailable")
	}
	r.boms[snap.SessionID] = snap
	return nil
}

func (r *fakeSnapshotRepo) LoadBOM(_ context.Context, sessionID string) (*model.BOMSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap, ok := r.boms[sessionID]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}
	return &snap, nil
}

func (r *fakeSnapshotRepo) SaveTimesheet(_ context.Context, snap model.TimesheetSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSaves {
		return errors.New("store unavailable")
	}
	r.timesheets[snap.SessionID] = snap
	return nil
}

func (r *fakeSnapshotRepo) LoadTimesheet(_ context.Context, sessionID string) (*model.TimesheetSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap, ok := r.timesheets[sessionID]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}
	return &snap, nil
}

func bomJob(t *testing.T, sessionID string) Job {
	t.Helper()
	payload, err := json.Marshal(model.BOMSnapshot{SessionID: sessionID, SavedAt: time.Now()})
	require.NoError(t, err)
	return Job{Type: JobTypeBOMSnapshot, Payload: payload}
}

func TestSnapshotWorkerPersistsBOM(t *testing.T) {
	repo := newFakeSnapshotRepo()
	sw := NewSnapshotWorker(repo, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	require.NoError(t, sw.Handle(context.Background(), bomJob(t, "sess-1")))

	got, err := repo.LoadBOM(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.SessionID)
}

func TestSnapshotWorkerPersistsTimesheet(t *testing.T) {
	repo := newFakeSnapshotRepo()
	sw := NewSnapshotWorker(repo, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	payload, err := json.Marshal(model.TimesheetSnapshot{SessionID: "sess-1", Weeks: []string{"Week 1"}})
	require.NoError(t, err)
	require.NoError(t, sw.Handle(context.Background(), Job{Type: JobTypeTimesheetSnapshot, Payload: payload}))

	got, err := repo.LoadTimesheet(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Week 1"}, got.Weeks)
}

func TestSnapshotWorkerRejectsUnknownType(t *testing.T) {
	sw := NewSnapshotWorker(newFakeSnapshotRepo(), infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	err := sw.Handle(context.Background(), Job{Type: "send_email", Payload: []byte("{}")})
	assert.Error(t, err)
}

func TestSnapshotWorkerBreakerFastFails(t *testing.T) {
	repo := newFakeSnapshotRepo()
	repo.failSaves = true
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, OpenTimeout: time.Hour})
	sw := NewSnapshotWorker(repo, cb)

	require.Error(t, sw.Handle(context.Background(), bomJob(t, "a")))
	require.Error(t, sw.Handle(context.Background(), bomJob(t, "b")))
	require.Equal(t, infra.CBOpen, cb.State())

	// tripped: the repo is no longer touched
	repo.failSaves = false
	err := sw.Handle(context.Background(), bomJob(t, "c"))
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
	_, loadErr := repo.LoadBOM(context.Background(), "c")
	assert.ErrorIs(t, loadErr, repository.ErrSnapshotNotFound)
}
