package threads

import (
	"strings"

	"pressbox-service/internal/domain"
)

// Target is one forum to search for a game's threads.
type Target struct {
	Subreddit string
	Main      bool
}

// Directory maps sports and team abbreviations to their subreddits.
// It is immutable after construction; swapping league rosters (team
// relocations, new forums) means constructing a new Directory.
type Directory struct {
	main  map[domain.Sport]string
	teams map[domain.Sport]map[string]string
}

// NewDirectory returns the default NFL/NBA forum directory.
func NewDirectory() *Directory {
	return &Directory{
		main: map[domain.Sport]string{
			domain.SportNFL: "nfl",
			domain.SportNBA: "nba",
		},
		teams: map[domain.Sport]map[string]string{
			domain.SportNFL: nflTeamSubreddits,
			domain.SportNBA: nbaTeamSubreddits,
		},
	}
}

// MainForum returns the league-wide subreddit for a sport.
func (d *Directory) MainForum(sport domain.Sport) string {
	return d.main[sport]
}

// TeamForum returns the subreddit for a team abbreviation, if one is mapped.
func (d *Directory) TeamForum(sport domain.Sport, abbreviation string) (string, bool) {
	table, ok := d.teams[sport]
	if !ok {
		return "", false
	}
	sub, ok := table[strings.ToUpper(abbreviation)]
	return sub, ok
}

// Targets resolves the forums to search for a game: the league forum first,
// then the home and away team forums when mapped. The fixed order keeps the
// downstream merge deterministic.
func (d *Directory) Targets(game domain.Game) []Target {
	var targets []Target
	if main := d.MainForum(game.Sport); main != "" {
		targets = append(targets, Target{Subreddit: main, Main: true})
	}
	seen := map[string]bool{}
	for _, team := range []domain.Team{game.HomeTeam, game.AwayTeam} {
		sub, ok := d.TeamForum(game.Sport, team.Abbreviation)
		if !ok || seen[sub] {
			continue
		}
		seen[sub] = true
		targets = append(targets, Target{Subreddit: sub})
	}
	return targets
}

// Team subreddits keyed by the scoreboard provider's abbreviations.

var nflTeamSubreddits = map[string]string{
	"ARI": "AZCardinals",
	"ATL": "falcons",
	"BAL": "ravens",
	"BUF": "buffalobills",
	"CAR": "panthers",
	"CHI": "CHIBears",
	"CIN": "bengals",
	"CLE": "Browns",
	"DAL": "cowboys",
	"DEN": "DenverBroncos",
	"DET": "detroitlions",
	"GB":  "GreenBayPackers",
	"HOU": "Texans",
	"IND": "Colts",
	"JAX": "Jaguars",
	"KC":  "KansasCityChiefs",
	"LAC": "Chargers",
	"LAR": "LosAngelesRams",
	"LV":  "raiders",
	"MIA": "miamidolphins",
	"MIN": "minnesotavikings",
	"NE":  "Patriots",
	"NO":  "Saints",
	"NYG": "NYGiants",
	"NYJ": "nyjets",
	"PHI": "eagles",
	"PIT": "steelers",
	"SEA": "Seahawks",
	"SF":  "49ers",
	"TB":  "buccaneers",
	"TEN": "Tennesseetitans",
	"WSH": "Commanders",
}

var nbaTeamSubreddits = map[string]string{
	"ATL":  "AtlantaHawks",
	"BKN":  "GoNets",
	"BOS":  "bostonceltics",
	"CHA":  "CharlotteHornets",
	"CHI":  "chicagobulls",
	"CLE":  "clevelandcavs",
	"DAL":  "Mavericks",
	"DEN":  "denvernuggets",
	"DET":  "DetroitPistons",
	"GS":   "warriors",
	"HOU":  "rockets",
	"IND":  "pacers",
	"LAC":  "LAClippers",
	"LAL":  "lakers",
	"MEM":  "memphisgrizzlies",
	"MIA":  "heat",
	"MIL":  "MkeBucks",
	"MIN":  "timberwolves",
	"NO":   "NOLAPelicans",
	"NY":   "NYKnicks",
	"OKC":  "Thunder",
	"ORL":  "OrlandoMagic",
	"PHI":  "sixers",
	"PHX":  "suns",
	"POR":  "ripcity",
	"SA":   "NBASpurs",
	"SAC":  "kings",
	"TOR":  "torontoraptors",
	"UTAH": "utahjazz",
	"WSH":  "washingtonwizards",
}
