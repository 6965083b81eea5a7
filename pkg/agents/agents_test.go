package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/taskstore"
	"github.com/redscout/redscout/test/util"
)

func TestRetrieval_FetchPostsByTopic(t *testing.T) {
	fetcher := &StaticFetcher{Posts: SamplePosts(5, "golang")}
	agent := NewRetrieval(fetcher)

	resp, err := agent.Skills()["fetch_posts_by_topic"](context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{"topic": "golang", "subreddit": "golang", "limit": float64(3)},
	})
	require.NoError(t, err)

	assert.Equal(t, a2a.StatusSuccess, resp.Status)
	assert.Equal(t, 3, resp.Result["total_posts"])
	posts := resp.Result["posts"].([]Post)
	assert.Len(t, posts, 3)
}

func TestRetrieval_MissingTopic(t *testing.T) {
	agent := NewRetrieval(&StaticFetcher{})

	_, err := agent.Skills()["fetch_posts_by_topic"](context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{"subreddit": "golang"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required parameter: topic")
}

func TestRetrieval_FetcherErrorPropagates(t *testing.T) {
	agent := NewRetrieval(&StaticFetcher{Err: errors.New("reddit API rate limit exceeded")})

	_, err := agent.Skills()["fetch_posts_by_topic"](context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{"topic": "golang"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestFilter_ScoresAndThresholds(t *testing.T) {
	agent := NewFilter(NewBlendedScorer(0.7, 0.3), nil, 0.7)

	posts := []Post{
		{ID: "p1", Title: "golang concurrency deep dive", Body: "goroutines and channels"},
		{ID: "p2", Title: "cooking pasta", Body: "boil water"},
	}
	resp, err := agent.Skills()["batch_filter_posts"](context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{
			"posts":  posts,
			"topics": []string{"golang concurrency"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, a2a.StatusSuccess, resp.Status)
	assert.Equal(t, 2, resp.Result["processed"])
	assert.Equal(t, 1, resp.Result["relevant"])
	assert.Equal(t, []string{"p1"}, resp.Result["relevant_ids"])

	relevant := resp.Result["relevant_posts"].([]ScoredPost)
	require.Len(t, relevant, 1)
	assert.Equal(t, "p1", relevant[0].ID)
	assert.GreaterOrEqual(t, relevant[0].RelevanceScore, 0.7)
	assert.Equal(t, []string{"golang concurrency"}, relevant[0].MatchedTopics)
}

func TestFilter_MissingTopics(t *testing.T) {
	agent := NewFilter(NewBlendedScorer(0.7, 0.3), nil, 0.7)

	_, err := agent.Skills()["batch_filter_posts"](context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{"posts": []Post{{ID: "p1"}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topics")
}

func TestFilter_DeduplicatesAcrossInvocations(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	store := taskstore.New(entClient)
	agent := NewFilter(NewBlendedScorer(0.7, 0.3), store, 0.7)

	params := map[string]any{
		"posts": []Post{
			{ID: "p1", Title: "golang concurrency deep dive", Body: "goroutines"},
		},
		"topics":      []string{"golang concurrency"},
		"workflow_id": "wf-1",
	}

	first, err := agent.Skills()["batch_filter_posts"](context.Background(), a2a.SkillRequest{Parameters: params})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Result["relevant"])
	assert.Equal(t, 0, first.Result["duplicates_skipped"])

	// The same post re-scanned in a later cycle is skipped, not re-scored.
	second, err := agent.Skills()["batch_filter_posts"](context.Background(), a2a.SkillRequest{Parameters: params})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Result["relevant"])
	assert.Equal(t, 1, second.Result["duplicates_skipped"])
}

func TestSummarize_BoundsSummaryLength(t *testing.T) {
	agent := NewSummarize(TruncatingSummarizer{})

	items := []Post{
		{ID: "p1", Title: "golang concurrency", Body: "A very long discussion of goroutines, channels, select statements, and the memory model that goes on for quite a while."},
	}
	resp, err := agent.Skills()["summarizeContent"](context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{"items": items, "max_length": float64(40)},
	})
	require.NoError(t, err)

	assert.Equal(t, a2a.StatusSuccess, resp.Status)
	stats := resp.Result["stats"].(map[string]any)
	assert.Equal(t, 1, stats["summaries_created"])
	assert.Equal(t, 1, stats["items"])

	summaries := resp.Result["summaries"].([]Summary)
	require.Len(t, summaries, 1)
	assert.Equal(t, "p1", summaries[0].ID)
	assert.LessOrEqual(t, len(summaries[0].Summary), 44)
	assert.Equal(t, summaries[0].Summary, resp.Result["summary_text"])
}

func TestSummarize_EmptyItems(t *testing.T) {
	agent := NewSummarize(TruncatingSummarizer{})

	_, err := agent.Skills()["summarizeContent"](context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{"items": []Post{}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items")
}

func TestSummarize_SummarizerErrorPropagates(t *testing.T) {
	agent := NewSummarize(failingSummarizer{})

	_, err := agent.Skills()["summarizeContent"](context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{"items": []Post{{ID: "p1", Title: "x"}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p1")
}

type failingSummarizer struct{}

func (failingSummarizer) Summarize(context.Context, string, int) (string, error) {
	return "", errors.New("model unavailable")
}
