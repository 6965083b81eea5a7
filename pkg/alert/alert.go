// Package alert implements the alert agent: it batches summarised
// findings and delivers them over Slack and email with per-delivery
// retries and duplicate-batch suppression.
package alert

import (
	"context"

	"github.com/slack-go/slack"
)

// Channel names accepted in a batch.
const (
	ChannelSlack = "slack"
	ChannelEmail = "email"
)

// Item is one alert-worthy finding inside a batch.
type Item struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	URL            string   `json:"url,omitempty"`
	Subreddit      string   `json:"subreddit,omitempty"`
	RelevanceScore float64  `json:"relevance_score,omitempty"`
	MatchedTopics  []string `json:"matched_topics,omitempty"`
}

// Batch is the sendBatch skill payload.
type Batch struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary,omitempty"`
	Items      []Item   `json:"items"`
	Channels   []string `json:"channels,omitempty"`
	Priority   string   `json:"priority,omitempty"`
	WorkflowID string   `json:"workflow_id,omitempty"`
}

// SlackSender posts one webhook message. The indirection keeps delivery
// logic testable without a live webhook.
type SlackSender interface {
	SendWebhook(ctx context.Context, message *slack.WebhookMessage) error
}

// EmailSender delivers one message to one recipient.
type EmailSender interface {
	Send(ctx context.Context, recipient, subject, textBody, htmlBody string) error
}

// Priority ranks stored on batch rows; lower is more urgent.
var priorityRanks = map[string]int{
	"critical": 1,
	"high":     2,
	"medium":   5,
	"low":      8,
}

func priorityRank(priority string) int {
	if rank, ok := priorityRanks[priority]; ok {
		return rank
	}
	return priorityRanks["medium"]
}
