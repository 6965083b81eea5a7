package agents

import (
	"context"
	"errors"
	"fmt"

	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/runtime"
	"github.com/redscout/redscout/pkg/version"
)

const defaultPostLimit = 25

// Retrieval fetches Reddit posts for a topic and subreddit.
type Retrieval struct {
	fetcher PostFetcher
}

// NewRetrieval builds the retrieval agent.
func NewRetrieval(fetcher PostFetcher) *Retrieval {
	return &Retrieval{fetcher: fetcher}
}

func (a *Retrieval) Type() config.AgentType { return config.AgentRetrieval }

func (a *Retrieval) Card(baseURL string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:        "Reddit Retrieval Agent",
		Description: "Fetches recent posts from Reddit for monitored topics",
		Version:     version.Release,
		URL:         baseURL,
		Provider:    a2a.Provider{Organization: "redscout"},
		Skills: []a2a.Skill{{
			ID:          "fetch_posts_by_topic",
			Name:        "Fetch Posts By Topic",
			Description: "Retrieves recent posts for a topic, optionally scoped to a subreddit",
			Tags:        []string{"reddit", "retrieval"},
			InputModes:  []string{"application/json"},
			OutputModes: []string{"application/json"},
		}},
	}
}

func (a *Retrieval) Skills() map[string]runtime.SkillHandler {
	return map[string]runtime.SkillHandler{
		"fetch_posts_by_topic": a.fetchPostsByTopic,
	}
}

func (a *Retrieval) fetchPostsByTopic(ctx context.Context, req a2a.SkillRequest) (*a2a.SkillResponse, error) {
	topic := stringParam(req.Parameters, "topic")
	if topic == "" {
		return nil, errors.New("missing required parameter: topic")
	}
	subreddit := stringParam(req.Parameters, "subreddit")
	limit := intParam(req.Parameters, "limit", defaultPostLimit)

	posts, err := a.fetcher.FetchPosts(ctx, topic, subreddit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	return &a2a.SkillResponse{
		Status: a2a.StatusSuccess,
		Result: map[string]any{
			"topic":       topic,
			"subreddit":   subreddit,
			"total_posts": len(posts),
			"posts":       posts,
		},
	}, nil
}
