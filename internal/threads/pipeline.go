package threads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"pressbox-service/internal/domain"
	"pressbox-service/internal/logging"
	"pressbox-service/internal/metrics"
	"pressbox-service/internal/reddit"
	"pressbox-service/internal/timeutil"
)

// ErrInvalidGame flags a game record that cannot be matched against:
// a side without a name and abbreviation is an upstream contract violation,
// not something to paper over.
var ErrInvalidGame = errors.New("threads: game is missing team identity")

// Finder orchestrates thread discovery for one game: fan-out search across
// the relevant forums, classification, matching, dedup, and ranking.
// Stateless across invocations; safe for concurrent use.
type Finder struct {
	searcher reddit.Searcher
	forums   *Directory
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewFinder constructs a Finder over the given searcher and forum directory.
func NewFinder(searcher reddit.Searcher, forums *Directory, logger *slog.Logger, recorder *metrics.Recorder) *Finder {
	if forums == nil {
		forums = NewDirectory()
	}
	return &Finder{
		searcher: searcher,
		forums:   forums,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Find returns the ranked, deduplicated game threads for a game.
// An empty result is a normal outcome (thread not posted yet); forum-level
// search failures degrade silently per the searcher contract.
func (f *Finder) Find(ctx context.Context, game domain.Game) ([]domain.GameThread, error) {
	if err := validateGame(game); err != nil {
		return nil, err
	}

	start := time.Now()
	targets := f.forums.Targets(game)
	query := buildQuery(game)
	since := timeutil.StartOfDay(f.now())

	// Fan-out: one search per forum, failures isolated per forum. Everything
	// after the join is synchronous, pure computation.
	results := make([][]domain.Post, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target Target) {
			defer wg.Done()
			posts, err := f.searcher.Search(ctx, target.Subreddit, query, since)
			if err != nil {
				// Searcher contract is error-free; belt and braces.
				posts = nil
			}
			results[i] = posts
		}(i, target)
	}
	wg.Wait()

	threads := f.collect(game, targets, results)
	threads = rank(threads)
	threads = dedupe(threads)

	f.metrics.RecordAggregation(time.Since(start), len(threads))
	logging.Info(f.logger, "aggregated game threads",
		logging.FieldGameID, game.ID,
		logging.FieldCount, len(threads),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return threads, nil
}

// collect runs classification and matching over each forum's results in the
// fixed target order, suppressing duplicate post ids.
func (f *Finder) collect(game domain.Game, targets []Target, results [][]domain.Post) []domain.GameThread {
	threads := make([]domain.GameThread, 0)
	seenIDs := make(map[string]bool)

	for i, target := range targets {
		policy := RequireEitherTeam
		if target.Main {
			// A league-wide forum discusses many games at once; false
			// positives are costly there.
			policy = RequireBothTeams
		}
		for _, post := range results[i] {
			if seenIDs[post.ID] {
				continue
			}
			if !IsGameThreadPost(post) || !MatchesGame(post, game, policy) {
				continue
			}
			seenIDs[post.ID] = true
			threads = append(threads, domain.GameThread{
				Post:         post,
				Subreddit:    target.Subreddit,
				IsMainThread: target.Main,
			})
		}
	}
	return threads
}

// rank orders threads main-forum first, then by comment count. Main-forum
// threads are the canonical discussion locus and anchor the top of the list
// even when a team forum's thread is busier.
func rank(threads []domain.GameThread) []domain.GameThread {
	sort.SliceStable(threads, func(i, j int) bool {
		if threads[i].IsMainThread != threads[j].IsMainThread {
			return threads[i].IsMainThread
		}
		return threads[i].Post.NumComments > threads[j].Post.NumComments
	})
	return threads
}

// dedupe drops a thread when a higher-ranked thread from the same forum has
// a near-identical title. The main forum is exempt: it legitimately hosts
// multiple distinct coverage threads for one game.
func dedupe(threads []domain.GameThread) []domain.GameThread {
	kept := make([]domain.GameThread, 0, len(threads))
	for _, candidate := range threads {
		if candidate.IsMainThread {
			kept = append(kept, candidate)
			continue
		}
		duplicate := false
		for _, existing := range kept {
			if existing.Subreddit != candidate.Subreddit || existing.IsMainThread {
				continue
			}
			if SimilarTitles(existing.Post.Title, candidate.Post.Title) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, candidate)
		}
	}
	return kept
}

// buildQuery biases the search toward game-thread posts naming either side.
func buildQuery(game domain.Game) string {
	homeName := lastWord(game.HomeTeam.Name)
	awayName := lastWord(game.AwayTeam.Name)
	return fmt.Sprintf(`(%s OR %s OR "%s" OR "%s") AND (game thread OR gamethread)`,
		game.HomeTeam.Abbreviation, game.AwayTeam.Abbreviation, homeName, awayName)
}

func lastWord(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return name
	}
	return words[len(words)-1]
}

func validateGame(game domain.Game) error {
	for _, team := range []domain.Team{game.HomeTeam, game.AwayTeam} {
		if team.Name == "" && team.Abbreviation == "" {
			return ErrInvalidGame
		}
	}
	return nil
}
