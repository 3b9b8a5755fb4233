package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// ErrSnapshotNotFound is returned when no snapshot exists for a session.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Key layout in the document store, one document per session and kind.
const (
	bomKeyPrefix       = "snapshot:bom:"
	timesheetKeyPrefix = "snapshot:manhours:"
)

// SnapshotRepository is the persistence transport for session-keyed
// snapshots. Saves are best-effort from the caller's point of view: the
// in-memory stores stay authoritative whatever this returns.
type SnapshotRepository interface {
	SaveBOM(ctx context.Context, snap model.BOMSnapshot) error
	LoadBOM(ctx context.Context, sessionID string) (*model.BOMSnapshot, error)
	SaveTimesheet(ctx context.Context, snap model.TimesheetSnapshot) error
	LoadTimesheet(ctx context.Context, sessionID string) (*model.TimesheetSnapshot, error)
}

type snapshotRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSnapshotRepository stores snapshots as JSON documents in Redis.
// A non-zero ttl expires abandoned anonymous sessions.
func NewSnapshotRepository(rdb *redis.Client, ttl time.Duration) SnapshotRepository {
	return &snapshotRepo{rdb: rdb, ttl: ttl}
}

func (r *snapshotRepo) SaveBOM(ctx context.Context, snap model.BOMSnapshot) error {
	return r.save(ctx, bomKeyPrefix+snap.SessionID, snap)
}

func (r *snapshotRepo) LoadBOM(ctx context.Context, sessionID string) (*model.BOMSnapshot, error) {
	var snap model.BOMSnapshot
	if err := r.load(ctx, bomKeyPrefix+sessionID, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *snapshotRepo) SaveTimesheet(ctx context.Context, snap model.TimesheetSnapshot) error {
	return r.save(ctx, timesheetKeyPrefix+snap.SessionID, snap)
}

func (r *snapshotRepo) LoadTimesheet(ctx context.Context, sessionID string) (*model.TimesheetSnapshot, error) {
	var snap model.TimesheetSnapshot
	if err := r.load(ctx, timesheetKeyPrefix+sessionID, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *snapshotRepo) save(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", key, err)
	}
	if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("store snapshot %s: %w", key, err)
	}
	return nil
}

func (r *snapshotRepo) load(ctx context.Context, key string, dest any) error {
	data, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrSnapshotNotFound
	}
	if err != nil {
		return fmt.Errorf("fetch snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return nil
}
