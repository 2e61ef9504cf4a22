package store

import (
	"testing"

	"pressbox-service/internal/domain"
)

func TestSetGamesPreservesOrder(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domain.Game{{ID: "live"}, {ID: "scheduled"}, {ID: "final"}})

	games := s.ListGames()
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	for i, want := range []string{"live", "scheduled", "final"} {
		if games[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, games[i].ID)
		}
	}
}

func TestSetGamesReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domain.Game{{ID: "old"}})
	s.SetGames([]domain.Game{{ID: "new"}})

	if _, ok := s.GetGame("old"); ok {
		t.Fatal("expected old game dropped on replace")
	}
	g, ok := s.GetGame("new")
	if !ok || g.ID != "new" {
		t.Fatalf("expected new game present, got %+v ok=%v", g, ok)
	}
}

func TestGetGameMissing(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.GetGame("nope"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestSetGamesDuplicateIDsKeepLast(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domain.Game{
		{ID: "g1", HomeScore: 0},
		{ID: "g1", HomeScore: 7},
	})

	games := s.ListGames()
	if len(games) != 1 {
		t.Fatalf("expected duplicate collapsed, got %d", len(games))
	}
	if games[0].HomeScore != 7 {
		t.Fatalf("expected the later entry kept, got %+v", games[0])
	}
}
