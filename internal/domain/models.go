package domain

import "context"

// Post is a submission as fetched from Reddit, before it has been ledgered.
type Post struct {
	RedditID   string // base36 id, e.g. "1abc2d"
	Subreddit  string
	Title      string
	Author     string
	URL        string
	Score      int
	CreatedUTC float64
}

// ShortLink returns the redd.it form of the post's permalink.
func (p Post) ShortLink() string {
	return "https://redd.it/" + p.RedditID
}

// Record is a ledgered post: immutable once created, written to the
// spreadsheet exactly once.
type Record struct {
	ID        int64
	Subreddit string
	Title     string
	ShortLink string
}

// Collector defines the interface for data fetching
type Collector interface {
	FetchNewPosts(ctx context.Context, subreddit string, limit int) ([]Post, error)
}
