package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rkashyapa/automanage-industrial-hub/internal/dto"
	"github.com/rkashyapa/automanage-industrial-hub/internal/repository"
	"github.com/rkashyapa/automanage-industrial-hub/internal/timesheet"
)

type TimesheetService interface {
	View(ctx context.Context, sessionID string) (*dto.TimesheetResponse, error)
	Totals(ctx context.Context, sessionID string) (*dto.TimesheetTotalsResponse, error)

	AddWeek(ctx context.Context, sessionID string) (string, error)
	AddEngineer(ctx context.Context, sessionID, name string) (*dto.EngineerResponse, error)
	RenameEngineer(ctx context.Context, sessionID string, engineerIndex int, name string) error
	SetHours(ctx context.Context, sessionID string, engineerIndex int, week string, hours float64) error
	SelectWeek(ctx context.Context, sessionID, week string) error

	CostAnalysis(ctx context.Context, sessionID string, req dto.CostAnalysisRequest) (*dto.CostAnalysisResponse, error)
	Save(ctx context.Context, sessionID string) (*dto.TimesheetSavedResponse, error)
	ExportRows(ctx context.Context, sessionID string) (header []string, rows [][]string, err error)
}

// timesheetService mirrors bomService: one live Sheet per session, restored
// lazily from the snapshot store, persisted asynchronously after mutations.
// Cost analysis joins the sheet's hours with the session's BOM material cost.
type timesheetService struct {
	mu        sync.RWMutex
	sheets    map[string]*timesheet.Sheet
	snapshots repository.SnapshotRepository
	jobs      SnapshotQueue
	bom       BOMService
}

func NewTimesheetService(snapshots repository.SnapshotRepository, jobs SnapshotQueue, bom BOMService) TimesheetService {
	return &timesheetService{
		sheets:    make(map[string]*timesheet.Sheet),
		snapshots: snapshots,
		jobs:      jobs,
		bom:       bom,
	}
}

func (s *timesheetService) sheet(ctx context.Context, sessionID string) (*timesheet.Sheet, error) {
	s.mu.RLock()
	sh, ok := s.sheets[sessionID]
	s.mu.RUnlock()
	if ok {
		return sh, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sh, ok := s.sheets[sessionID]; ok {
		return sh, nil
	}

	sh = timesheet.NewSheet()
	snap, err := s.snapshots.LoadTimesheet(ctx, sessionID)
	switch {
	case err == nil:
		sh.Restore(*snap)
	case errors.Is(err, repository.ErrSnapshotNotFound):
		// first visit, start empty
	default:
		return nil, err
	}
	s.sheets[sessionID] = sh
	return sh, nil
}

func (s *timesheetService) persist(ctx context.Context, sessionID string, sh *timesheet.Sheet) {
	snap := sh.Snapshot(sessionID)
	if err := s.jobs.EnqueueTimesheetSnapshot(ctx, snap); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to enqueue timesheet snapshot")
	}
}

func (s *timesheetService) View(ctx context.Context, sessionID string) (*dto.TimesheetResponse, error) {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	weeks, engineers := sh.View()
	resp := &dto.TimesheetResponse{
		Weeks:        weeks,
		Engineers:    make([]dto.EngineerResponse, 0, len(engineers)),
		SelectedWeek: sh.Totals().SelectedWeek,
	}
	for _, e := range engineers {
		resp.Engineers = append(resp.Engineers, dto.EngineerResponse{Name: e.Name, Hours: e.Hours})
	}
	return resp, nil
}

func (s *timesheetService) Totals(ctx context.Context, sessionID string) (*dto.TimesheetTotalsResponse, error) {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	t := sh.Totals()
	return &dto.TimesheetTotalsResponse{
		PerEngineer:  t.PerEngineer,
		PerWeek:      t.PerWeek,
		Grand:        t.Grand,
		AvgPerWeek:   t.AvgPerWeek,
		Engineers:    t.Engineers,
		ActiveWeeks:  t.ActiveWeeks,
		SelectedWeek: t.SelectedWeek,
	}, nil
}

func (s *timesheetService) AddWeek(ctx context.Context, sessionID string) (string, error) {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return "", err
	}
	week := sh.AddWeek()
	s.persist(ctx, sessionID, sh)
	return week, nil
}

func (s *timesheetService) AddEngineer(ctx context.Context, sessionID, name string) (*dto.EngineerResponse, error) {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	e := sh.AddEngineer(name)
	s.persist(ctx, sessionID, sh)
	return &dto.EngineerResponse{Name: e.Name, Hours: e.Hours}, nil
}

func (s *timesheetService) RenameEngineer(ctx context.Context, sessionID string, engineerIndex int, name string) error {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := sh.RenameEngineer(engineerIndex, name); err != nil {
		return err
	}
	s.persist(ctx, sessionID, sh)
	return nil
}

func (s *timesheetService) SetHours(ctx context.Context, sessionID string, engineerIndex int, week string, hours float64) error {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := sh.SetHours(engineerIndex, week, hours); err != nil {
		return err
	}
	s.persist(ctx, sessionID, sh)
	return nil
}

func (s *timesheetService) SelectWeek(ctx context.Context, sessionID, week string) error {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := sh.SelectWeek(week); err != nil {
		return err
	}
	s.persist(ctx, sessionID, sh)
	return nil
}

// CostAnalysis prices the sheet's hours and folds in the material cost of
// the session's BOM (finalized vendors only).
func (s *timesheetService) CostAnalysis(ctx context.Context, sessionID string, req dto.CostAnalysisRequest) (*dto.CostAnalysisResponse, error) {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	material, err := s.bom.MaterialCost(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	r := sh.Cost(req.HourlyRate, req.Budget, material)
	return &dto.CostAnalysisResponse{
		TotalHours:        r.TotalHours,
		HourlyRate:        r.HourlyRate,
		LaborCost:         r.LaborCost,
		MaterialCost:      r.MaterialCost,
		TotalCost:         r.TotalCost,
		Budget:            r.Budget,
		ProfitLoss:        r.ProfitLoss,
		BudgetUtilization: r.BudgetUtilization,
	}, nil
}

func (s *timesheetService) Save(ctx context.Context, sessionID string) (*dto.TimesheetSavedResponse, error) {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	snap := sh.Snapshot(sessionID)
	if err := s.snapshots.SaveTimesheet(ctx, snap); err != nil {
		return nil, err
	}
	return &dto.TimesheetSavedResponse{SessionID: sessionID, SavedAt: snap.SavedAt}, nil
}

func (s *timesheetService) ExportRows(ctx context.Context, sessionID string) ([]string, [][]string, error) {
	sh, err := s.sheet(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	header, rows := sh.ExportRows()
	return header, rows, nil
}
