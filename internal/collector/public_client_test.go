package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const listingBody = `{
	"data": {
		"children": [
			{"data": {"id": "bbb222", "title": "Second", "subreddit": "golang",
				"author": "bob", "url": "https://example.com/2", "score": 10, "created_utc": 1700000100}},
			{"data": {"id": "aaa111", "title": "First", "subreddit": "golang",
				"author": "alice", "url": "https://example.com/1", "score": 5, "created_utc": 1700000000}}
		]
	}
}`

func newTestPublicClient(t *testing.T, handler http.HandlerFunc) *PublicClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	pc, err := NewPublicClient("redditlog test agent")
	require.NoError(t, err)
	pc.baseURL = srv.URL
	pc.limiter = rate.NewLimiter(rate.Inf, 1)
	return pc
}

func TestPublicClientFetchNewPosts(t *testing.T) {
	var gotPath, gotAgent string
	pc := newTestPublicClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(listingBody))
	})

	posts, err := pc.FetchNewPosts(context.Background(), "golang", 25)
	require.NoError(t, err)

	assert.Equal(t, "/r/golang/new.json?limit=25", gotPath)
	assert.Equal(t, "redditlog test agent", gotAgent)

	require.Len(t, posts, 2)
	assert.Equal(t, "bbb222", posts[0].RedditID)
	assert.Equal(t, "Second", posts[0].Title)
	assert.Equal(t, "golang", posts[0].Subreddit)
	assert.Equal(t, "bob", posts[0].Author)
	assert.Equal(t, 10, posts[0].Score)
	assert.Equal(t, float64(1700000100), posts[0].CreatedUTC)
	assert.Equal(t, "https://redd.it/bbb222", posts[0].ShortLink())
	assert.Equal(t, "aaa111", posts[1].RedditID)
}

func TestPublicClientRejectsBadStatus(t *testing.T) {
	pc := newTestPublicClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := pc.FetchNewPosts(context.Background(), "golang", 25)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestPublicClientRejectsBadJSON(t *testing.T) {
	pc := newTestPublicClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>blocked</html>"))
	})

	_, err := pc.FetchNewPosts(context.Background(), "golang", 25)
	assert.Error(t, err)
}

func TestMockClientGeneratesPosts(t *testing.T) {
	mc := NewMockClient()

	posts, err := mc.FetchNewPosts(context.Background(), "golang", 5)
	require.NoError(t, err)
	require.Len(t, posts, 5)

	ids := make(map[string]struct{})
	for _, p := range posts {
		assert.Equal(t, "golang", p.Subreddit)
		ids[p.RedditID] = struct{}{}
	}
	assert.Len(t, ids, 5, "mock ids should be unique")
}
