package espn

import "pressbox-service/internal/domain"

const defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// scoreboardPaths maps each sport to its scoreboard resource under the base URL.
var scoreboardPaths = map[domain.Sport]string{
	domain.SportNFL: "/football/nfl/scoreboard",
	domain.SportNBA: "/basketball/nba/scoreboard",
}
