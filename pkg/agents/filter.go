package agents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redscout/redscout/ent/contentdedup"
	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/canonical"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/runtime"
	"github.com/redscout/redscout/pkg/taskstore"
	"github.com/redscout/redscout/pkg/version"
)

// Filter scores posts against the monitored topics and drops content
// already seen in earlier cycles.
type Filter struct {
	scorer    RelevanceScorer
	store     *taskstore.Store // nil disables dedup
	threshold float64
}

// NewFilter builds the filter agent. The threshold is the minimum
// blended relevance score a post must reach to pass.
func NewFilter(scorer RelevanceScorer, store *taskstore.Store, threshold float64) *Filter {
	return &Filter{scorer: scorer, store: store, threshold: threshold}
}

func (a *Filter) Type() config.AgentType { return config.AgentFilter }

func (a *Filter) Card(baseURL string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:        "Relevance Filter Agent",
		Description: "Scores posts against monitored topics and deduplicates previously seen content",
		Version:     version.Release,
		URL:         baseURL,
		Provider:    a2a.Provider{Organization: "redscout"},
		Skills: []a2a.Skill{{
			ID:          "batch_filter_posts",
			Name:        "Batch Filter Posts",
			Description: "Filters a batch of posts by relevance score and content dedup",
			Tags:        []string{"filter", "relevance", "dedup"},
			InputModes:  []string{"application/json"},
			OutputModes: []string{"application/json"},
		}},
	}
}

func (a *Filter) Skills() map[string]runtime.SkillHandler {
	return map[string]runtime.SkillHandler{
		"batch_filter_posts": a.batchFilterPosts,
	}
}

func (a *Filter) batchFilterPosts(ctx context.Context, req a2a.SkillRequest) (*a2a.SkillResponse, error) {
	posts, err := decodeParam[[]Post](req.Parameters, "posts")
	if err != nil {
		return nil, err
	}
	topics, err := decodeParam[[]string](req.Parameters, "topics")
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, errors.New("missing required parameter: topics")
	}
	workflowID := stringParam(req.Parameters, "workflow_id")

	relevant := make([]ScoredPost, 0, len(posts))
	duplicates := 0

	for _, post := range posts {
		seen, dedupID, err := a.registerPost(ctx, post, workflowID)
		if err != nil {
			return nil, err
		}
		if seen {
			duplicates++
			continue
		}

		score, matchedTopics, err := a.scorer.Score(ctx, post.Title+" "+post.Body, topics)
		if err != nil {
			return nil, fmt.Errorf("failed to score post %s: %w", post.ID, err)
		}
		if score >= a.threshold {
			relevant = append(relevant, ScoredPost{
				Post:           post,
				RelevanceScore: score,
				MatchedTopics:  matchedTopics,
			})
		}

		if dedupID != "" {
			if err := a.store.MarkContentProcessed(ctx, dedupID); err != nil {
				slog.Warn("Failed to mark content processed", "content_id", dedupID, "error", err)
			}
		}
	}

	relevantIDs := make([]string, 0, len(relevant))
	for _, sp := range relevant {
		relevantIDs = append(relevantIDs, sp.ID)
	}

	return &a2a.SkillResponse{
		Status: a2a.StatusSuccess,
		Result: map[string]any{
			"processed":          len(posts),
			"relevant":           len(relevant),
			"relevant_ids":       relevantIDs,
			"relevant_posts":     relevant,
			"duplicates_skipped": duplicates,
		},
	}, nil
}

// registerPost records the post in the dedup table. A post counts as
// seen when the same (type, external id) pair was registered before.
func (a *Filter) registerPost(ctx context.Context, post Post, workflowID string) (seen bool, dedupID string, err error) {
	if a.store == nil {
		return false, "", nil
	}

	hash, err := canonical.Hash(map[string]any{"title": post.Title, "body": post.Body})
	if err != nil {
		return false, "", fmt.Errorf("failed to hash post %s: %w", post.ID, err)
	}

	row, err := a.store.RegisterContent(ctx, taskstore.RegisterContentInput{
		ContentType: contentdedup.ContentTypePost,
		ExternalID:  post.ID,
		ContentHash: hash,
		SourceAgent: string(config.AgentFilter),
		WorkflowID:  workflowID,
		Metadata:    map[string]any{"subreddit": post.Subreddit},
	})
	if err != nil {
		if errors.Is(err, taskstore.ErrDuplicateContent) {
			return true, "", nil
		}
		return false, "", err
	}
	return false, row.ID, nil
}
