package repositories

import (
	"sync"

	"github.com/google/uuid"
	"github.com/yigit/allizzwell/internal/app/models"
)

// Command mutates a private copy of the snapshot. Returning an error discards the copy.
type Command func(next *models.Snapshot) error

// SnapshotStore holds the current dashboard snapshot.
// Readers get an immutable snapshot; writers go through Apply, which commits a new version.
type SnapshotStore struct {
	mu      sync.RWMutex
	current *models.Snapshot
	history int
}

// NewSnapshotStore creates a store seeded with initial. The seed is copied.
func NewSnapshotStore(initial *models.Snapshot) *SnapshotStore {
	if initial == nil {
		initial = &models.Snapshot{}
	}
	first := initial.Clone()
	first.Version = uuid.New()
	return &SnapshotStore{current: first}
}

// Current returns the latest committed snapshot. Callers must not modify it.
func (s *SnapshotStore) Current() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Commits returns how many commands have been committed since the store was created
func (s *SnapshotStore) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history
}

// Apply runs cmd against a copy of the current snapshot and, when it succeeds,
// commits the copy under a fresh version
func (s *SnapshotStore) Apply(cmd Command) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if err := cmd(next); err != nil {
		return s.current, err
	}

	next.Version = uuid.New()
	s.current = next
	s.history++
	return next, nil
}
