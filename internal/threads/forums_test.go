package threads

import (
	"testing"

	"pressbox-service/internal/domain"
)

func TestDirectoryTargetsMainFirst(t *testing.T) {
	dir := NewDirectory()
	game := domain.Game{
		Sport:    domain.SportNFL,
		HomeTeam: domain.Team{Abbreviation: "NE"},
		AwayTeam: domain.Team{Abbreviation: "NYJ"},
	}

	targets := dir.Targets(game)
	if len(targets) != 3 {
		t.Fatalf("expected 3 targets, got %d: %+v", len(targets), targets)
	}
	if targets[0].Subreddit != "nfl" || !targets[0].Main {
		t.Fatalf("expected league forum first, got %+v", targets[0])
	}
	if targets[1].Subreddit != "Patriots" || targets[1].Main {
		t.Fatalf("expected home forum second, got %+v", targets[1])
	}
	if targets[2].Subreddit != "nyjets" {
		t.Fatalf("expected away forum third, got %+v", targets[2])
	}
}

func TestDirectoryTargetsSkipsUnmappedTeams(t *testing.T) {
	dir := NewDirectory()
	game := domain.Game{
		Sport:    domain.SportNBA,
		HomeTeam: domain.Team{Abbreviation: "GS"},
		AwayTeam: domain.Team{Abbreviation: "XXX"},
	}

	targets := dir.Targets(game)
	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d: %+v", len(targets), targets)
	}
	if targets[0].Subreddit != "nba" {
		t.Fatalf("expected nba forum first, got %+v", targets[0])
	}
	if targets[1].Subreddit != "warriors" {
		t.Fatalf("expected warriors forum, got %+v", targets[1])
	}
}

func TestDirectoryTargetsUnknownSport(t *testing.T) {
	dir := NewDirectory()
	game := domain.Game{Sport: domain.Sport("mlb")}

	if targets := dir.Targets(game); len(targets) != 0 {
		t.Fatalf("expected no targets for unknown sport, got %+v", targets)
	}
}

func TestTeamForumIsCaseInsensitive(t *testing.T) {
	dir := NewDirectory()

	sub, ok := dir.TeamForum(domain.SportNFL, "ne")
	if !ok || sub != "Patriots" {
		t.Fatalf("TeamForum(ne) = %q, %v", sub, ok)
	}
}
