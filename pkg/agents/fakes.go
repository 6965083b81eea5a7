package agents

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// StaticFetcher serves a fixed post set. It backs tests and local
// deployments without Reddit credentials.
type StaticFetcher struct {
	Posts []Post
	Err   error
}

// FetchPosts returns the configured posts, scoped to the requested
// subreddit when one is given and capped at limit.
func (f *StaticFetcher) FetchPosts(_ context.Context, _, subreddit string, limit int) ([]Post, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	out := make([]Post, 0, len(f.Posts))
	for _, post := range f.Posts {
		if subreddit != "" && !strings.EqualFold(post.Subreddit, subreddit) {
			continue
		}
		out = append(out, post)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// TruncatingSummarizer is the built-in extractive summarizer: the first
// sentences of the text up to the length budget, cut on a word
// boundary. It doubles as the test fake.
type TruncatingSummarizer struct{}

// Summarize implements Summarizer.
func (TruncatingSummarizer) Summarize(_ context.Context, text string, maxLen int) (string, error) {
	text = strings.TrimSpace(strings.Join(strings.Fields(text), " "))
	if maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen {
		return text, nil
	}

	runes := []rune(text)
	cut := maxLen
	for cut > 0 && !isBreakable(runes[cut-1]) {
		cut--
	}
	if cut == 0 {
		cut = maxLen
	}
	return strings.TrimSpace(string(runes[:cut])) + "...", nil
}

func isBreakable(r rune) bool {
	return r == ' ' || r == '.' || r == ',' || r == ';' || r == ':'
}

// SamplePosts builds n distinct posts for tests.
func SamplePosts(n int, subreddit string) []Post {
	posts := make([]Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, Post{
			ID:        fmt.Sprintf("t3_%s%04d", subreddit, i),
			Title:     fmt.Sprintf("Post %d about golang concurrency", i),
			Body:      fmt.Sprintf("Discussion %d of goroutines and channels in golang.", i),
			Author:    fmt.Sprintf("user%d", i),
			Subreddit: subreddit,
			URL:       fmt.Sprintf("https://reddit.example/r/%s/%d", subreddit, i),
			Score:     10 + i,
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}
	return posts
}
