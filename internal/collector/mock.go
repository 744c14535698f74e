package collector

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mhollis/redditlog/internal/domain"
)

// MockClient implements domain.Collector but returns fake data
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) FetchNewPosts(ctx context.Context, sub string, limit int) ([]domain.Post, error) {
	// Simulate network latency
	time.Sleep(200 * time.Millisecond)

	now := time.Now().Unix()
	var posts []domain.Post
	for i := 0; i < limit; i++ {
		posts = append(posts, domain.Post{
			RedditID:   fmt.Sprintf("mock%s%d_%d", sub, now, i),
			Subreddit:  sub,
			Title:      fmt.Sprintf("[%s] Simulated post #%d", sub, i),
			Author:     "simulated_user",
			URL:        "http://localhost/mock-url",
			Score:      rand.Intn(500),
			CreatedUTC: float64(now),
		})
	}
	return posts, nil
}
