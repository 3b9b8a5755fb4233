package bom

import (
	"time"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// Snapshot captures a deep copy of the whole tree for the persistence
// transport, stamped with the owning session id. The store does not wait
// for, retry, or roll back on the transport's behalf — in-memory state
// stays authoritative whatever happens to the snapshot.
func (s *Store) Snapshot(sessionID string) model.BOMSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.BOMSnapshot{
		SessionID:  sessionID,
		Categories: cloneCategories(s.categories),
		SavedAt:    time.Now().UTC(),
	}
}

// Restore replaces the tree with the snapshot's contents. Used when a
// session's store is first materialized from the document store.
func (s *Store) Restore(snap model.BOMSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = cloneCategories(snap.Categories)
}
