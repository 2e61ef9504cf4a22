package scoreboard

import (
	"context"
	"errors"
	"sort"

	"pressbox-service/internal/domain"
)

// Provider defines how upstream scoreboard data is fetched and normalized.
type Provider interface {
	FetchGames(ctx context.Context, sport domain.Sport) ([]domain.Game, error)
}

var statusRank = map[domain.GameStatus]int{
	domain.StatusInProgress: 0,
	domain.StatusScheduled:  1,
	domain.StatusFinal:      2,
}

// AllGames fetches every supported sport concurrently and merges the results:
// live games first, then scheduled, then finals, ordered by start time within
// each group. A failing sport degrades to zero games for that sport; the
// joined error is returned so callers can track upstream health.
func AllGames(ctx context.Context, p Provider) ([]domain.Game, error) {
	sports := []domain.Sport{domain.SportNFL, domain.SportNBA}
	results := make([][]domain.Game, len(sports))
	errs := make([]error, len(sports))

	type indexed struct {
		i     int
		games []domain.Game
		err   error
	}
	ch := make(chan indexed, len(sports))
	for i, sport := range sports {
		go func(i int, sport domain.Sport) {
			games, err := p.FetchGames(ctx, sport)
			ch <- indexed{i: i, games: games, err: err}
		}(i, sport)
	}
	for range sports {
		r := <-ch
		results[r.i], errs[r.i] = r.games, r.err
	}

	var all []domain.Game
	for i, games := range results {
		if errs[i] != nil {
			continue
		}
		all = append(all, games...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if statusRank[all[i].Status] != statusRank[all[j].Status] {
			return statusRank[all[i].Status] < statusRank[all[j].Status]
		}
		return all[i].StartTime < all[j].StartTime
	})
	return all, errors.Join(errs...)
}
