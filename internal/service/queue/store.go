package queue

import (
	"sync"

	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/pkg/versionguard"
)

// Store holds the current queue snapshot. State changes only by whole
// replacement, never in place, so a caller holding a previous snapshot
// always sees a consistent list. Out-of-order async completions are
// rejected by the version guard (last request wins).
type Store struct {
	mu    sync.RWMutex
	guard versionguard.Guard
	items []model.AttendanceItem
}

func NewStore() *Store {
	return &Store{}
}

// Items returns the current snapshot.
func (s *Store) Items() []model.AttendanceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

func (s *Store) begin() versionguard.Token {
	return s.guard.Begin()
}

// commit replaces the snapshot if token is still current and reports
// whether the result was accepted.
func (s *Store) commit(token versionguard.Token, items []model.AttendanceItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.Current(token) {
		return false
	}
	s.items = items
	return true
}
