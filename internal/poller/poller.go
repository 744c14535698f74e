// Package poller runs the poll/buffer/flush cycle.
package poller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mhollis/redditlog/internal/domain"
	"github.com/mhollis/redditlog/internal/storage"
)

// Poller observes new posts and feeds them to the ledger. Everything runs on
// the calling goroutine; the ledger and the seen-set have exactly one user.
type Poller struct {
	collector  domain.Collector
	ledger     *storage.Ledger
	subreddits []string
	limit      int
	log        *slog.Logger
	out        io.Writer
	seen       map[string]struct{}
}

// New builds a poller. The duplicate filter is seeded from the ledger's
// persisted rows, so a post logged in a previous run is never logged again.
func New(c domain.Collector, l *storage.Ledger, subreddits []string, limit int, log *slog.Logger, out io.Writer) *Poller {
	return &Poller{
		collector:  c,
		ledger:     l,
		subreddits: subreddits,
		limit:      limit,
		log:        log,
		out:        out,
		seen:       l.ShortLinks(),
	}
}

// PollOnce fetches the newest posts of every watched subreddit and buffers
// the ones not seen before, printing one console line per post. Fetch errors
// are logged and skipped; the next interval will try again. Returns how many
// new posts were observed.
func (p *Poller) PollOnce(ctx context.Context) int {
	var added int
	for _, sub := range p.subreddits {
		posts, err := p.collector.FetchNewPosts(ctx, sub, p.limit)
		if err != nil {
			p.log.Error("fetch failed", "subreddit", sub, "err", err)
			continue
		}
		// Listings come newest first; walk backwards so IDs follow post age.
		for i := len(posts) - 1; i >= 0; i-- {
			post := posts[i]
			link := post.ShortLink()
			if _, ok := p.seen[link]; ok {
				continue
			}
			p.seen[link] = struct{}{}
			rec := p.ledger.Record(post)
			fmt.Fprintf(p.out, "[%d] r/%s: %s (%s)\n", rec.ID, rec.Subreddit, rec.Title, rec.ShortLink)
			added++
		}
	}
	return added
}

// Run polls on pollEvery and flushes on flushEvery until ctx is cancelled,
// then flushes one final time. The error of that last flush is returned;
// anything still buffered at that point is lost with the process.
func (p *Poller) Run(ctx context.Context, pollEvery, flushEvery time.Duration) error {
	poll := time.NewTicker(pollEvery)
	defer poll.Stop()
	flush := time.NewTicker(flushEvery)
	defer flush.Stop()

	p.PollOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("shutting down, flushing buffered posts", "pending", p.ledger.Pending())
			return p.flushPending()
		case <-poll.C:
			p.PollOnce(ctx)
		case <-flush.C:
			p.flushPending()
		}
	}
}

func (p *Poller) flushPending() error {
	n := p.ledger.Pending()
	if n == 0 {
		return nil
	}
	if err := p.ledger.Flush(); err != nil {
		p.log.Error("flush failed, records retained", "pending", n, "err", err)
		return err
	}
	p.log.Info("flushed", "records", n)
	return nil
}
