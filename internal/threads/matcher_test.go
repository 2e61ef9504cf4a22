package threads

import (
	"testing"

	"pressbox-service/internal/domain"
)

func matchGame() domain.Game {
	return domain.Game{
		ID:       "nfl-401",
		Sport:    domain.SportNFL,
		HomeTeam: domain.Team{Name: "New England Patriots", Abbreviation: "NE"},
		AwayTeam: domain.Team{Name: "New York Jets", Abbreviation: "NYJ"},
	}
}

func TestMatchesGamePermissive(t *testing.T) {
	game := matchGame()

	cases := []struct {
		name string
		post domain.Post
		want bool
	}{
		{"full home name", domain.Post{Title: "Game Thread: New England Patriots at MetLife"}, true},
		{"single name word", domain.Post{Title: "Patriots game thread"}, true},
		{"abbreviation only", domain.Post{Title: "NE @ NYJ game thread"}, true},
		{"away side only", domain.Post{Title: "Jets gameday discussion"}, true},
		{"selftext mention", domain.Post{Title: "Week 5 thread", Selftext: "Patriots kickoff at 1pm"}, true},
		{"neither team", domain.Post{Title: "Game Thread: Bills at Dolphins"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesGame(tc.post, game, RequireEitherTeam); got != tc.want {
				t.Fatalf("MatchesGame(%q) = %v, want %v", tc.post.Title, got, tc.want)
			}
		})
	}
}

func TestMatchesGameSymmetricUnderSideSwap(t *testing.T) {
	game := matchGame()
	swapped := game
	swapped.HomeTeam, swapped.AwayTeam = game.AwayTeam, game.HomeTeam

	posts := []domain.Post{
		{Title: "Game Thread: Patriots at Jets"},
		{Title: "Patriots game thread"},
		{Title: "Jets gameday discussion"},
		{Title: "GDT: NE @ NYJ"},
		{Title: "Game Thread: Bills at Dolphins"},
	}
	for _, policy := range []MatchPolicy{RequireEitherTeam, RequireBothTeams} {
		for _, post := range posts {
			got := MatchesGame(post, game, policy)
			if swappedGot := MatchesGame(post, swapped, policy); swappedGot != got {
				t.Fatalf("MatchesGame(%q, policy %v) = %v, but %v with home and away swapped", post.Title, policy, got, swappedGot)
			}
		}
	}
}

func TestMatchesGameStrict(t *testing.T) {
	game := matchGame()

	cases := []struct {
		name string
		post domain.Post
		want bool
	}{
		{"both mascots", domain.Post{Title: "Game Thread: Patriots at Jets"}, true},
		{"both abbreviations", domain.Post{Title: "GDT: NE @ NYJ"}, true},
		{"mixed forms", domain.Post{Title: "Game Thread: Patriots @ NYJ"}, true},
		{"home side only", domain.Post{Title: "Patriots game thread"}, false},
		{"away side only", domain.Post{Title: "Jets game thread"}, false},
		// "New York" alone is shared with the Giants; the strict policy
		// must not accept a city word as a team reference.
		{"city word only", domain.Post{Title: "Game Thread: New England at New York"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesGame(tc.post, game, RequireBothTeams); got != tc.want {
				t.Fatalf("MatchesGame(%q) = %v, want %v", tc.post.Title, got, tc.want)
			}
		})
	}
}
