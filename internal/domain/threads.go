package domain

// Post is a submission as returned by the forum search backend.
// Immutable once fetched.
type Post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
	CreatedUTC  float64 `json:"created_utc"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	LinkFlair   string  `json:"link_flair_text,omitempty"`
	Stickied    bool    `json:"stickied,omitempty"`
}

// GameThread wraps a matched post with its source forum and provenance.
// Created fresh per aggregation run; never mutated after construction.
type GameThread struct {
	Post         Post   `json:"post"`
	Subreddit    string `json:"subreddit"`
	IsMainThread bool   `json:"isMainThread"`
}

// ThreadsResponse is the payload returned by /games/{id}/threads.
type ThreadsResponse struct {
	GameID  string       `json:"gameId"`
	Threads []GameThread `json:"threads"`
}

// Comment is a single comment on a thread, read-only.
type Comment struct {
	ID         string  `json:"id"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	CreatedUTC float64 `json:"created_utc"`
	Score      int     `json:"score"`
	Stickied   bool    `json:"stickied,omitempty"`
}
