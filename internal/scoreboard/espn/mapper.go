package espn

import (
	"fmt"
	"strconv"

	"pressbox-service/internal/domain"
)

// mapEvent converts one ESPN event into the canonical game shape.
// Events without both a home and an away competitor are rejected: matching
// threads against an incomplete game is meaningless, so the contract
// violation surfaces instead of being papered over.
func mapEvent(ev event, sport domain.Sport) (domain.Game, error) {
	if len(ev.Competitions) == 0 {
		return domain.Game{}, fmt.Errorf("espn: event %s has no competitions", ev.ID)
	}
	comp := ev.Competitions[0]

	var home, away *competitor
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return domain.Game{}, fmt.Errorf("espn: event %s missing home or away competitor", ev.ID)
	}

	game := domain.Game{
		ID:           ev.ID,
		Sport:        sport,
		HomeTeam:     mapTeam(*home),
		AwayTeam:     mapTeam(*away),
		HomeScore:    parseScore(home.Score),
		AwayScore:    parseScore(away.Score),
		Status:       mapStatus(ev.Status.Type.State),
		StartTime:    ev.Date,
		Period:       ev.Status.Period,
		Clock:        ev.Status.DisplayClock,
		StatusDetail: ev.Status.Type.ShortDetail,
	}
	if comp.Venue != nil {
		game.Venue = comp.Venue.FullName
	}
	if comp.Situation != nil {
		game.Situation = mapSituation(*comp.Situation)
	}
	game.Leaders = mapLeaders(*home, *away)

	return game, nil
}

func mapTeam(c competitor) domain.Team {
	t := domain.Team{
		ID:           c.Team.ID,
		Name:         c.Team.Name,
		Abbreviation: c.Team.Abbreviation,
		Logo:         c.Team.Logo,
		Color:        c.Team.Color,
	}
	for _, r := range c.Records {
		if r.Type == "total" || t.Record == "" {
			t.Record = r.Summary
		}
	}
	return t
}

func mapStatus(state string) domain.GameStatus {
	switch state {
	case "in":
		return domain.StatusInProgress
	case "post":
		return domain.StatusFinal
	default:
		return domain.StatusScheduled
	}
}

func mapSituation(s situation) *domain.Situation {
	out := &domain.Situation{
		Possession:       s.Possession,
		DownDistanceText: s.DownDistanceText,
		IsRedZone:        s.IsRedZone,
		HomeTimeouts:     s.HomeTimeouts,
		AwayTimeouts:     s.AwayTimeouts,
	}
	if s.LastPlay != nil {
		out.LastPlay = s.LastPlay.Text
		if p := s.LastPlay.Probability; p != nil {
			out.HomeWinPct = p.HomeWinPercentage
			out.AwayWinPct = p.AwayWinPercentage
		}
	}
	return out
}

func mapLeaders(home, away competitor) []domain.Leader {
	var leaders []domain.Leader
	for _, c := range []competitor{home, away} {
		for _, cat := range c.Leaders {
			if len(cat.Leaders) == 0 {
				continue
			}
			// One headline leader per category is enough for the UI.
			entry := cat.Leaders[0]
			leaders = append(leaders, domain.Leader{
				TeamID:   c.Team.ID,
				Player:   entry.Athlete.DisplayName,
				Stat:     entry.DisplayValue,
				Position: entry.Athlete.Position.Abbreviation,
			})
		}
	}
	return leaders
}

func parseScore(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
