package store

import (
	"sync"

	"pressbox-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of games in memory.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]domain.Game
	order []string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domain.Game),
	}
}

// ListGames returns a copy of the current games in insertion order.
func (s *MemoryStore) ListGames() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.games[id])
	}
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SetGames replaces the existing games with a new snapshot.
// Order is preserved so the poller's ranking survives round-trips.
func (s *MemoryStore) SetGames(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domain.Game, len(games))
	s.order = make([]string, 0, len(games))
	for _, g := range games {
		if _, ok := s.games[g.ID]; !ok {
			s.order = append(s.order, g.ID)
		}
		s.games[g.ID] = g
	}
}
