package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/runtime"
	"github.com/redscout/redscout/pkg/version"
)

const defaultSummaryLength = 500

// Summarize condenses relevant posts into alert-ready summaries.
type Summarize struct {
	summarizer Summarizer
}

// NewSummarize builds the summarize agent.
func NewSummarize(summarizer Summarizer) *Summarize {
	return &Summarize{summarizer: summarizer}
}

func (a *Summarize) Type() config.AgentType { return config.AgentSummarize }

func (a *Summarize) Card(baseURL string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:        "Content Summarize Agent",
		Description: "Condenses relevant posts into short summaries",
		Version:     version.Release,
		URL:         baseURL,
		Provider:    a2a.Provider{Organization: "redscout"},
		Skills: []a2a.Skill{{
			ID:          "summarizeContent",
			Name:        "Summarize Content",
			Description: "Produces a bounded-length summary for each content item",
			Tags:        []string{"summarize"},
			InputModes:  []string{"application/json"},
			OutputModes: []string{"application/json"},
		}},
	}
}

func (a *Summarize) Skills() map[string]runtime.SkillHandler {
	return map[string]runtime.SkillHandler{
		"summarizeContent": a.summarizeContent,
	}
}

func (a *Summarize) summarizeContent(ctx context.Context, req a2a.SkillRequest) (*a2a.SkillResponse, error) {
	items, err := decodeParam[[]Post](req.Parameters, "items")
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("missing required parameter: items")
	}
	maxLength := intParam(req.Parameters, "max_length", defaultSummaryLength)

	summaries := make([]Summary, 0, len(items))
	var digest strings.Builder
	for _, item := range items {
		text := item.Title
		if item.Body != "" {
			text += "\n\n" + item.Body
		}

		summary, err := a.summarizer.Summarize(ctx, text, maxLength)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize item %s: %w", item.ID, err)
		}
		summaries = append(summaries, Summary{
			ID:      item.ID,
			Title:   item.Title,
			URL:     item.URL,
			Summary: summary,
		})

		if digest.Len() > 0 {
			digest.WriteString("\n\n")
		}
		digest.WriteString(summary)
	}

	return &a2a.SkillResponse{
		Status: a2a.StatusSuccess,
		Result: map[string]any{
			"summary_text": digest.String(),
			"summaries":    summaries,
			"stats": map[string]any{
				"items":              len(items),
				"summaries_created":  len(summaries),
				"max_summary_length": maxLength,
			},
		},
	}, nil
}
