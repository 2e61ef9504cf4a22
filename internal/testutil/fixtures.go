package testutil

import "pressbox-service/internal/domain"

// SampleGame returns a minimal NFL game fixture with the provided id.
func SampleGame(id string) domain.Game {
	return domain.Game{
		ID:        id,
		Sport:     domain.SportNFL,
		HomeTeam:  domain.Team{ID: "home", Name: "New England Patriots", Abbreviation: "NE"},
		AwayTeam:  domain.Team{ID: "away", Name: "New York Jets", Abbreviation: "NYJ"},
		Status:    domain.StatusScheduled,
		StartTime: "2025-10-12T17:00Z",
	}
}

// SamplePost returns a game-thread-looking post fixture.
func SamplePost(id, subreddit, title string) domain.Post {
	return domain.Post{
		ID:          id,
		Title:       title,
		Author:      "mod-bot",
		Subreddit:   subreddit,
		Permalink:   "/r/" + subreddit + "/comments/" + id,
		CreatedUTC:  1_760_000_000,
		NumComments: 100,
	}
}

// SampleTodayResponse builds a TodayResponse with a single sample game and date.
func SampleTodayResponse(date string, id string) domain.TodayResponse {
	return domain.TodayResponse{
		Date:  date,
		Games: []domain.Game{SampleGame(id)},
	}
}
