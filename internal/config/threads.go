package config

import "time"

const (
	envThreadsCacheTTL = "THREADS_CACHE_TTL"
	envSearchLimit     = "SEARCH_RESULT_LIMIT"

	// Thread rosters stabilize quickly after kickoff, so a few minutes is safe.
	defaultThreadsCacheTTL = 5 * Duration(time.Minute)
	defaultSearchLimit     = 25
)

// ThreadsConfig controls the thread discovery pipeline and its result cache.
type ThreadsConfig struct {
	CacheTTL    Duration
	SearchLimit int
}

func loadThreads() ThreadsConfig {
	return ThreadsConfig{
		CacheTTL:    durationEnvOrDefault(envThreadsCacheTTL, defaultThreadsCacheTTL),
		SearchLimit: intEnvOrDefault(envSearchLimit, defaultSearchLimit),
	}
}
