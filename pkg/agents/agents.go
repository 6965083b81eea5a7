// Package agents implements the pipeline worker agents (retrieval,
// filter, summarize) on top of the shared runtime. External
// collaborators (the Reddit API, scoring and summarisation models) sit
// behind small interfaces so deployments can swap implementations.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Post is one Reddit post flowing through the pipeline.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	Subreddit   string    `json:"subreddit"`
	URL         string    `json:"url"`
	Score       int       `json:"score"`
	NumComments int       `json:"num_comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScoredPost is a post that passed relevance filtering.
type ScoredPost struct {
	Post
	RelevanceScore float64  `json:"relevance_score"`
	MatchedTopics  []string `json:"matched_topics"`
}

// Summary is one summarised content item.
type Summary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Summary string `json:"summary"`
}

// PostFetcher retrieves posts from the content source.
type PostFetcher interface {
	FetchPosts(ctx context.Context, topic, subreddit string, limit int) ([]Post, error)
}

// RelevanceScorer scores a piece of text against the monitored topics.
// It returns the blended score in [0, 1] and the topics that matched.
type RelevanceScorer interface {
	Score(ctx context.Context, text string, topics []string) (float64, []string, error)
}

// Summarizer condenses a piece of text to at most maxLen characters.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLen int) (string, error)
}

// decodeParam re-marshals a generic skill parameter into a typed value.
func decodeParam[T any](params map[string]any, key string) (T, error) {
	var out T
	raw, ok := params[key]
	if !ok || raw == nil {
		return out, fmt.Errorf("missing required parameter: %s", key)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return out, fmt.Errorf("invalid parameter %s: %w", key, err)
	}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return out, fmt.Errorf("invalid parameter %s: %w", key, err)
	}
	return out, nil
}

// intParam reads an optional integer parameter; JSON numbers arrive as
// float64.
func intParam(params map[string]any, key string, fallback int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}

func stringParam(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}
