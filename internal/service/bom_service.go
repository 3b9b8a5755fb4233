package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rkashyapa/automanage-industrial-hub/internal/bom"
	"github.com/rkashyapa/automanage-industrial-hub/internal/dto"
	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
	"github.com/rkashyapa/automanage-industrial-hub/internal/repository"
)

type BOMService interface {
	View(ctx context.Context, sessionID string) (*dto.BOMResponse, error)
	Query(ctx context.Context, sessionID string, filter bom.Filter) (*dto.BOMResponse, error)
	Summary(ctx context.Context, sessionID string) (*dto.BOMSummaryResponse, error)
	Part(ctx context.Context, sessionID, key string) (*dto.PartResponse, error)

	AddCategory(ctx context.Context, sessionID, name string) error
	RenameCategory(ctx context.Context, sessionID, oldName, newName string) error
	DeleteCategory(ctx context.Context, sessionID, name string) error

	AddPart(ctx context.Context, sessionID, category string, req dto.CreatePartRequest) (*dto.PartResponse, error)
	UpdatePart(ctx context.Context, sessionID, key string, req dto.UpdatePartRequest) (*dto.PartResponse, error)
	DeletePart(ctx context.Context, sessionID, key string) error
	SetQuantity(ctx context.Context, sessionID, key string, quantity int) (*dto.PartResponse, error)

	AddVendor(ctx context.Context, sessionID, key string, req dto.CreateVendorRequest) (*dto.PartResponse, error)
	UpdateVendor(ctx context.Context, sessionID, key string, idx int, req dto.UpdateVendorRequest) (*dto.PartResponse, error)
	DeleteVendor(ctx context.Context, sessionID, key string, idx int) (*dto.PartResponse, error)
	FinalizeVendor(ctx context.Context, sessionID, key string, idx int) (*dto.PartResponse, error)

	AddPartDocument(ctx context.Context, sessionID, key, doc string) (*dto.PartResponse, error)
	RemovePartDocument(ctx context.Context, sessionID, key, doc string) (*dto.PartResponse, error)
	AddVendorDocument(ctx context.Context, sessionID, key string, idx int, doc string) (*dto.PartResponse, error)
	RemoveVendorDocument(ctx context.Context, sessionID, key string, idx int, doc string) (*dto.PartResponse, error)

	Save(ctx context.Context, sessionID string) (*dto.SnapshotSavedResponse, error)
	ExportRows(ctx context.Context, sessionID string, meta bom.ProjectMeta) ([][]string, error)
	Categories(ctx context.Context, sessionID string) ([]model.Category, error)
	MaterialCost(ctx context.Context, sessionID string) (decimal.Decimal, error)
}

// bomService keeps one in-memory Store per session. The store is the source
// of truth while the session lives; Redis snapshots are the durable copy and
// are written asynchronously through the worker pool.
type bomService struct {
	mu        sync.RWMutex
	stores    map[string]*bom.Store
	snapshots repository.SnapshotRepository
	jobs      SnapshotQueue
}

func NewBOMService(snapshots repository.SnapshotRepository, jobs SnapshotQueue) BOMService {
	return &bomService{
		stores:    make(map[string]*bom.Store),
		snapshots: snapshots,
		jobs:      jobs,
	}
}

// store returns the session's live store, restoring it from the snapshot
// repository the first time a session is seen after a restart.
func (s *bomService) store(ctx context.Context, sessionID string) (*bom.Store, error) {
	s.mu.RLock()
	st, ok := s.stores[sessionID]
	s.mu.RUnlock()
	if ok {
		return st, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stores[sessionID]; ok {
		return st, nil
	}

	st = bom.NewStore()
	snap, err := s.snapshots.LoadBOM(ctx, sessionID)
	switch {
	case err == nil:
		st.Restore(*snap)
	case errors.Is(err, repository.ErrSnapshotNotFound):
		// first visit, start empty
	default:
		return nil, err
	}
	s.stores[sessionID] = st
	return st, nil
}

// persist snapshots the store and hands it to the async pipeline.
// Persistence failures are logged, never surfaced: the live store already
// holds the accepted mutation.
func (s *bomService) persist(ctx context.Context, sessionID string, st *bom.Store) {
	snap := st.Snapshot(sessionID)
	if err := s.jobs.EnqueueBOMSnapshot(ctx, snap); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to enqueue bom snapshot")
	}
}

// ── Views ─────────────────────────────────────────────────────────────────────

func (s *bomService) View(ctx context.Context, sessionID string) (*dto.BOMResponse, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toBOMResponse(st.Categories()), nil
}

func (s *bomService) Query(ctx context.Context, sessionID string, filter bom.Filter) (*dto.BOMResponse, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toBOMResponse(st.Query(filter)), nil
}

func (s *bomService) Summary(ctx context.Context, sessionID string) (*dto.BOMSummaryResponse, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sum := st.Summary()
	return &dto.BOMSummaryResponse{
		Total:        sum.Total,
		Received:     sum.Received,
		Ordered:      sum.Ordered,
		Pending:      sum.Pending,
		MaterialCost: st.MaterialCost(),
	}, nil
}

func (s *bomService) Part(ctx context.Context, sessionID, key string) (*dto.PartResponse, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	p, err := st.Part(key)
	if err != nil {
		return nil, err
	}
	resp := dto.FromPart(p)
	return &resp, nil
}

// ── Categories ────────────────────────────────────────────────────────────────

func (s *bomService) AddCategory(ctx context.Context, sessionID, name string) error {
	return s.mutate(ctx, sessionID, func(st *bom.Store) error {
		return st.AddCategory(name)
	})
}

func (s *bomService) RenameCategory(ctx context.Context, sessionID, oldName, newName string) error {
	return s.mutate(ctx, sessionID, func(st *bom.Store) error {
		return st.RenameCategory(oldName, newName)
	})
}

func (s *bomService) DeleteCategory(ctx context.Context, sessionID, name string) error {
	return s.mutate(ctx, sessionID, func(st *bom.Store) error {
		return st.DeleteCategory(name)
	})
}

// mutate runs a void store operation and persists on success.
func (s *bomService) mutate(ctx context.Context, sessionID string, op func(*bom.Store) error) error {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := op(st); err != nil {
		return err
	}
	s.persist(ctx, sessionID, st)
	return nil
}

// partMutate runs a store operation that yields the updated part and
// persists on success.
func (s *bomService) partMutate(ctx context.Context, sessionID string, op func(*bom.Store) (model.Part, error)) (*dto.PartResponse, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	p, err := op(st)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, sessionID, st)
	resp := dto.FromPart(p)
	return &resp, nil
}

// ── Parts ─────────────────────────────────────────────────────────────────────

func (s *bomService) AddPart(ctx context.Context, sessionID, category string, req dto.CreatePartRequest) (*dto.PartResponse, error) {
	draft := bom.PartDraft{
		Name:               req.Name,
		PartID:             req.PartID,
		Description:        req.Description,
		DescriptionEntries: req.Entries(),
		Quantity:           req.Quantity,
	}
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		return st.AddPart(category, draft)
	})
}

func (s *bomService) UpdatePart(ctx context.Context, sessionID, key string, req dto.UpdatePartRequest) (*dto.PartResponse, error) {
	patch := bom.PartPatch{
		Name:                 req.Name,
		Description:          req.Description,
		Quantity:             req.Quantity,
		ExpectedDelivery:     req.ExpectedDelivery,
		PONumber:             req.PONumber,
		FinalizedVendorIndex: req.FinalizedVendorIndex,
		ClearFinalizedVendor: req.ClearFinalizedVendor,
	}
	if req.DescriptionEntries != nil {
		entries := req.Entries()
		patch.DescriptionEntries = &entries
	}
	if req.Status != nil {
		status := model.PartStatus(*req.Status)
		patch.Status = &status
	}
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		return st.UpdatePart(key, patch)
	})
}

func (s *bomService) DeletePart(ctx context.Context, sessionID, key string) error {
	return s.mutate(ctx, sessionID, func(st *bom.Store) error {
		return st.DeletePart(key)
	})
}

func (s *bomService) SetQuantity(ctx context.Context, sessionID, key string, quantity int) (*dto.PartResponse, error) {
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		if _, err := st.SetPartQuantity(key, quantity); err != nil {
			return model.Part{}, err
		}
		return st.Part(key)
	})
}

// ── Vendors ───────────────────────────────────────────────────────────────────

func (s *bomService) AddVendor(ctx context.Context, sessionID, key string, req dto.CreateVendorRequest) (*dto.PartResponse, error) {
	draft := bom.VendorDraft{
		Name:         req.Name,
		Price:        req.Price,
		LeadTime:     req.LeadTime,
		Availability: req.Availability,
		Quantity:     req.Quantity,
	}
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		return st.AddVendor(key, draft)
	})
}

func (s *bomService) UpdateVendor(ctx context.Context, sessionID, key string, idx int, req dto.UpdateVendorRequest) (*dto.PartResponse, error) {
	patch := bom.VendorPatch{
		Name:         req.Name,
		Price:        req.Price,
		LeadTime:     req.LeadTime,
		Availability: req.Availability,
		Quantity:     req.Quantity,
	}
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		return st.UpdateVendor(key, idx, patch)
	})
}

func (s *bomService) DeleteVendor(ctx context.Context, sessionID, key string, idx int) (*dto.PartResponse, error) {
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		return st.DeleteVendor(key, idx)
	})
}

func (s *bomService) FinalizeVendor(ctx context.Context, sessionID, key string, idx int) (*dto.PartResponse, error) {
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		return st.FinalizeVendor(key, idx)
	})
}

// ── Documents ─────────────────────────────────────────────────────────────────

func (s *bomService) AddPartDocument(ctx context.Context, sessionID, key, doc string) (*dto.PartResponse, error) {
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		if err := st.AddPartDocument(key, doc); err != nil {
			return model.Part{}, err
		}
		return st.Part(key)
	})
}

func (s *bomService) RemovePartDocument(ctx context.Context, sessionID, key, doc string) (*dto.PartResponse, error) {
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		if err := st.RemovePartDocument(key, doc); err != nil {
			return model.Part{}, err
		}
		return st.Part(key)
	})
}

func (s *bomService) AddVendorDocument(ctx context.Context, sessionID, key string, idx int, doc string) (*dto.PartResponse, error) {
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		if err := st.AddVendorDocument(key, idx, doc); err != nil {
			return model.Part{}, err
		}
		return st.Part(key)
	})
}

func (s *bomService) RemoveVendorDocument(ctx context.Context, sessionID, key string, idx int, doc string) (*dto.PartResponse, error) {
	return s.partMutate(ctx, sessionID, func(st *bom.Store) (model.Part, error) {
		if err := st.RemoveVendorDocument(key, idx, doc); err != nil {
			return model.Part{}, err
		}
		return st.Part(key)
	})
}

// ── Persistence and export ────────────────────────────────────────────────────

// Save writes the snapshot synchronously. Used by the explicit save endpoint
// so the client gets a confirmed timestamp back.
func (s *bomService) Save(ctx context.Context, sessionID string) (*dto.SnapshotSavedResponse, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	snap := st.Snapshot(sessionID)
	if err := s.snapshots.SaveBOM(ctx, snap); err != nil {
		return nil, err
	}
	return &dto.SnapshotSavedResponse{SessionID: sessionID, SavedAt: snap.SavedAt}, nil
}

func (s *bomService) ExportRows(ctx context.Context, sessionID string, meta bom.ProjectMeta) ([][]string, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.ExportRows(meta), nil
}

func (s *bomService) Categories(ctx context.Context, sessionID string) ([]model.Category, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.Categories(), nil
}

func (s *bomService) MaterialCost(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return decimal.Zero, err
	}
	return st.MaterialCost(), nil
}

func toBOMResponse(cats []model.Category) *dto.BOMResponse {
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		items := make([]dto.PartResponse, 0, len(c.Items))
		for _, p := range c.Items {
			items = append(items, dto.FromPart(p))
		}
		out = append(out, dto.CategoryResponse{Name: c.Name, Items: items})
	}
	return &dto.BOMResponse{Categories: out}
}
