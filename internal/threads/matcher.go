package threads

import (
	"strings"

	"pressbox-service/internal/domain"
)

// MatchPolicy selects how aggressively a post must reference the game's
// teams to count as a match. Callers pick per forum breadth: strict for
// league-wide forums where many games are discussed at once, permissive only
// for forums already scoped to one of the two teams.
type MatchPolicy int

const (
	// RequireEitherTeam accepts a post that mentions either side.
	RequireEitherTeam MatchPolicy = iota
	// RequireBothTeams demands both sides, using only each team's
	// distinguishing token (last word of the name) and abbreviation.
	RequireBothTeams
)

// MatchesGame reports whether a post is about this specific game.
// Precondition: both teams carry a name or abbreviation; the pipeline
// validates the game before calling.
func MatchesGame(post domain.Post, game domain.Game, policy MatchPolicy) bool {
	haystack := strings.ToLower(post.Title + " " + post.Selftext)

	var home, away bool
	switch policy {
	case RequireBothTeams:
		home = anyTermPresent(haystack, strictTerms(game.HomeTeam))
		away = anyTermPresent(haystack, strictTerms(game.AwayTeam))
		return home && away
	default:
		home = anyTermPresent(haystack, permissiveTerms(game.HomeTeam))
		away = anyTermPresent(haystack, permissiveTerms(game.AwayTeam))
		return home || away
	}
}

// permissiveTerms covers the abbreviation, the full display name, and each
// individual word of the name.
func permissiveTerms(team domain.Team) []string {
	name := strings.ToLower(team.Name)
	terms := []string{strings.ToLower(team.Abbreviation), name}
	terms = append(terms, strings.Fields(name)...)
	return nonEmpty(terms)
}

// strictTerms keeps only the distinguishing mascot/city token (the last word
// of the display name) and the abbreviation.
func strictTerms(team domain.Team) []string {
	terms := []string{strings.ToLower(team.Abbreviation)}
	words := strings.Fields(strings.ToLower(team.Name))
	if len(words) > 0 {
		terms = append(terms, words[len(words)-1])
	}
	return nonEmpty(terms)
}

func anyTermPresent(haystack string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

func nonEmpty(terms []string) []string {
	out := terms[:0]
	for _, t := range terms {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
