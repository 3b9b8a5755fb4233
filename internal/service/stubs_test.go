package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
	"github.com/rkashyapa/automanage-industrial-hub/internal/repository"
)

// ── In-memory SnapshotRepository stub ────────────────────────────────────────

type stubSnapshotRepo struct {
	mu         sync.Mutex
	boms       map[string]model.BOMSnapshot
	timesheets map[string]model.TimesheetSnapshot
	failSaves  bool
}

func newStubSnapshotRepo() *stubSnapshotRepo {
	return &stubSnapshotRepo{
		boms:       make(map[string]model.BOMSnapshot),
		timesheets: make(map[string]model.TimesheetSnapshot),
	}
}

func (r *stubSnapshotRepo) SaveBOM(_ context.Context, snap model.BOMSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSaves {
		return errors.New("store down")
	}
	r.boms[snap.SessionID] = snap
	return nil
}

func (r *stubSnapshotRepo) LoadBOM(_ context.Context, sessionID string) (*model.BOMSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap, ok := r.boms[sessionID]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}
	return &snap, nil
}

func (r *stubSnapshotRepo) SaveTimesheet(_ context.Context, snap model.TimesheetSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSaves {
		return errors.New("store down")
	}
	r.timesheets[snap.SessionID] = snap
	return nil
}

func (r *stubSnapshotRepo) LoadTimesheet(_ context.Context, sessionID string) (*model.TimesheetSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap, ok := r.timesheets[sessionID]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}
	return &snap, nil
}

// ── SnapshotQueue recorder ───────────────────────────────────────────────────

type recordingQueue struct {
	mu         sync.Mutex
	boms       []model.BOMSnapshot
	timesheets []model.TimesheetSnapshot
}

func (q *recordingQueue) EnqueueBOMSnapshot(_ context.Context, snap model.BOMSnapshot) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.boms = append(q.boms, snap)
	return nil
}

func (q *recordingQueue) EnqueueTimesheetSnapshot(_ context.Context, snap model.TimesheetSnapshot) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.timesheets = append(q.timesheets, snap)
	return nil
}

// ── In-memory ProjectRepository stub ─────────────────────────────────────────

type stubProjectRepo struct {
	projects map[uuid.UUID]*model.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[uuid.UUID]*model.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *model.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for _, existing := range r.projects {
		if existing.Code == p.Code {
			return errors.New("unique constraint violation")
		}
	}
	r.projects[p.ID] = p
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	p, ok := r.projects[id]
	if !ok || !p.Active {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProjectRepo) FindByCode(_ context.Context, code string) (*model.Project, error) {
	for _, p := range r.projects {
		if p.Code == code && p.Active {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProjectRepo) List(_ context.Context) ([]model.Project, error) {
	result := make([]model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if p.Active {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *model.Project) error {
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *stubProjectRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Active = false
	return nil
}
