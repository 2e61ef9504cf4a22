package threads

import (
	"regexp"
	"strings"

	"pressbox-service/internal/domain"
)

// gameThreadMarkers are the phrases that identify a game-thread style post.
// Substring matching is deliberately permissive so decorated titles like
// "🏈 GAME THREAD: Patriots @ Jets" still qualify.
var gameThreadMarkers = []string{
	"game thread",
	"gamethread",
	"game day thread",
	"gdt",
	"match thread",
	"post game thread",
	"postgame thread",
}

// IsGameThreadPost reports whether a post looks like a game thread, judged by
// its title or its moderator-assigned flair. Case-insensitive, no stemming.
func IsGameThreadPost(post domain.Post) bool {
	title := strings.ToLower(post.Title)
	flair := strings.ToLower(post.LinkFlair)

	for _, marker := range gameThreadMarkers {
		if strings.Contains(title, marker) || strings.Contains(flair, marker) {
			return true
		}
	}
	return false
}

var (
	// Win-loss records like "(14-3)" and bare scores like "88-85". Live
	// recaps repost the same thread with an updated score or record every
	// few minutes; these are exactly the volatile parts to strip.
	recordPattern = regexp.MustCompile(`\(\d+-\d+\)`)
	scorePattern  = regexp.MustCompile(`\d+-\d+`)
	punctPattern  = regexp.MustCompile(`[^a-z0-9\s]`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// normalizeTitle reduces a title to its stable content: lowercase, records
// and scores stripped, punctuation removed, whitespace collapsed.
func normalizeTitle(title string) string {
	t := strings.ToLower(title)
	t = recordPattern.ReplaceAllString(t, " ")
	t = scorePattern.ReplaceAllString(t, " ")
	t = punctPattern.ReplaceAllString(t, " ")
	t = spacePattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

const similarityThreshold = 0.7

// SimilarTitles reports whether two titles describe the same thread once the
// volatile parts (scores, records) are stripped. Exact or containment matches
// are similar; otherwise word overlap relative to the smaller title decides.
func SimilarTitles(a, b string) bool {
	na, nb := normalizeTitle(a), normalizeTitle(b)
	if na == nb {
		return true
	}
	if na == "" || nb == "" {
		return false
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	wordsA := titleWords(na)
	wordsB := titleWords(nb)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	shared := 0
	for word := range wordsA {
		if wordsB[word] {
			shared++
		}
	}
	min := len(wordsA)
	if len(wordsB) < min {
		min = len(wordsB)
	}
	return float64(shared)/float64(min) > similarityThreshold
}

func titleWords(normalized string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(normalized) {
		if len(word) > 2 {
			words[word] = true
		}
	}
	return words
}
