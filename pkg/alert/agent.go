package alert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/slack-go/slack"
	"github.com/wneessen/go-mail"

	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/breaker"
	"github.com/redscout/redscout/pkg/canonical"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/runtime"
	"github.com/redscout/redscout/pkg/taskstore"
	"github.com/redscout/redscout/pkg/version"
)

// retryDelays is the backoff schedule between delivery retries.
var retryDelays = []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}

// Agent delivers alert batches. It implements the runtime Agent
// interface with the single sendBatch skill.
type Agent struct {
	cfg   *config.AlertConfig
	store *taskstore.Store // nil disables batch/delivery rows
	slack SlackSender
	email EmailSender

	mu   sync.Mutex
	seen map[string]struct{}

	// sleep is replaceable in tests
	sleep func(time.Duration)
}

// New builds the alert agent. Nil senders fall back to the configured
// transports; a channel without a sender fails its deliveries instead
// of failing the whole batch.
func New(cfg *config.AlertConfig, store *taskstore.Store, slackSender SlackSender, emailSender EmailSender) *Agent {
	if slackSender == nil && cfg.SlackWebhookURL != "" {
		slackSender = &WebhookSlackSender{URL: cfg.SlackWebhookURL}
	}
	if emailSender == nil && cfg.SMTPHost != "" {
		emailSender = NewSMTPEmailSender(cfg)
	}
	return &Agent{
		cfg:   cfg,
		store: store,
		slack: slackSender,
		email: emailSender,
		seen:  make(map[string]struct{}),
		sleep: time.Sleep,
	}
}

func (a *Agent) Type() config.AgentType { return config.AgentAlert }

func (a *Agent) Card(baseURL string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:        "Alert Dispatch Agent",
		Description: "Delivers summarised findings over Slack and email",
		Version:     version.Release,
		URL:         baseURL,
		Provider:    a2a.Provider{Organization: "redscout"},
		Skills: []a2a.Skill{{
			ID:          "sendBatch",
			Name:        "Send Alert Batch",
			Description: "Delivers one batch of alert items to the configured channels",
			Tags:        []string{"alert", "slack", "email"},
			InputModes:  []string{"application/json"},
			OutputModes: []string{"application/json"},
		}},
	}
}

func (a *Agent) Skills() map[string]runtime.SkillHandler {
	return map[string]runtime.SkillHandler{
		"sendBatch": a.sendBatch,
	}
}

// deliveryResult is the per-delivery outcome reported in the skill
// response.
type deliveryResult struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient,omitempty"`
	Status    string `json:"status"`
	Attempts  int    `json:"attempts"`
	Error     string `json:"error,omitempty"`
}

func (a *Agent) sendBatch(ctx context.Context, req a2a.SkillRequest) (*a2a.SkillResponse, error) {
	batch, err := decodeBatch(req.Parameters)
	if err != nil {
		return nil, err
	}

	// An empty batch is a handled error: nothing is delivered and no
	// rows are written.
	if len(batch.Items) == 0 {
		return &a2a.SkillResponse{Status: a2a.StatusError, Error: "empty_batch"}, nil
	}

	channels := batch.Channels
	if len(channels) == 0 {
		channels = a.defaultChannels()
	}
	if len(channels) == 0 {
		return nil, errors.New("no alert channels configured")
	}

	batchHash, err := canonical.Hash(map[string]any{
		"title":    batch.Title,
		"summary":  batch.Summary,
		"items":    batch.Items,
		"channels": channels,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to hash batch: %w", err)
	}
	if a.alreadySent(batchHash) {
		return &a2a.SkillResponse{
			Status: a2a.StatusSkipped,
			Result: map[string]any{"reason": "duplicate_batch", "dedup_hash": batchHash},
		}, nil
	}

	batchID := ""
	if a.store != nil {
		row, err := a.store.CreateAlertBatch(ctx, taskstore.CreateAlertBatchInput{
			Title:      batch.Title,
			Summary:    batch.Summary,
			TotalItems: len(batch.Items),
			Priority:   priorityRank(batch.Priority),
			Channels:   channels,
		})
		if err != nil {
			return nil, err
		}
		batchID = row.ID
	}

	var results []deliveryResult
	for _, channel := range channels {
		switch channel {
		case ChannelSlack:
			results = append(results, a.deliverSlack(ctx, batchID, batchHash, batch))
		case ChannelEmail:
			results = append(results, a.deliverEmail(ctx, batchID, batchHash, batch)...)
		default:
			results = append(results, deliveryResult{
				Channel: channel,
				Status:  "failed",
				Error:   fmt.Sprintf("unknown channel: %s", channel),
			})
		}
	}

	sent, failed, attempts, lastError := tally(results)
	if a.store != nil && batchID != "" {
		if err := a.store.FinalizeAlertBatch(ctx, batchID, sent > 0, attempts, lastError); err != nil {
			slog.Warn("Failed to finalize alert batch", "batch_id", batchID, "error", err)
		}
	}

	if sent == 0 {
		return &a2a.SkillResponse{
			Status: a2a.StatusError,
			Error:  "all deliveries failed: " + lastError,
			Result: map[string]any{
				"batch_id":              batchID,
				"batches_sent":          0,
				"successful_deliveries": 0,
				"failed_deliveries":     failed,
				"deliveries":            results,
			},
		}, nil
	}

	a.markSent(batchHash)

	status := "success"
	if failed > 0 {
		status = "partial_success"
	}
	// batches_sent counts the batch, not its deliveries; one batch over
	// Slack plus N email recipients is still one alert.
	return &a2a.SkillResponse{
		Status: a2a.StatusSuccess,
		Result: map[string]any{
			"batch_id":              batchID,
			"status":                status,
			"batches_sent":          1,
			"successful_deliveries": sent,
			"failed_deliveries":     failed,
			"dedup_hash":            batchHash,
			"deliveries":            results,
		},
	}, nil
}

func (a *Agent) deliverSlack(ctx context.Context, batchID, batchHash string, batch Batch) deliveryResult {
	result := deliveryResult{Channel: ChannelSlack, Status: "failed"}
	deliveryID := a.recordDelivery(ctx, batchID, batchHash, ChannelSlack, "")

	if a.slack == nil {
		result.Error = "slack webhook not configured"
		a.finishDelivery(ctx, deliveryID, result, 0)
		return result
	}

	message := renderSlackMessage(batch)
	start := time.Now()
	attempts, err := a.withRetry(ctx, func(ctx context.Context) error {
		return a.slack.SendWebhook(ctx, message)
	})

	result.Attempts = attempts
	if err != nil {
		result.Error = err.Error()
	} else {
		result.Status = "sent"
	}
	a.finishDelivery(ctx, deliveryID, result, time.Since(start))
	return result
}

func (a *Agent) deliverEmail(ctx context.Context, batchID, batchHash string, batch Batch) []deliveryResult {
	if a.email == nil || len(a.cfg.EmailRecipients) == 0 {
		result := deliveryResult{Channel: ChannelEmail, Status: "failed", Error: "email not configured"}
		deliveryID := a.recordDelivery(ctx, batchID, batchHash, ChannelEmail, "")
		a.finishDelivery(ctx, deliveryID, result, 0)
		return []deliveryResult{result}
	}

	subject, textBody, htmlBody := renderEmail(batch)

	results := make([]deliveryResult, 0, len(a.cfg.EmailRecipients))
	for _, recipient := range a.cfg.EmailRecipients {
		result := deliveryResult{Channel: ChannelEmail, Recipient: recipient, Status: "failed"}
		deliveryID := a.recordDelivery(ctx, batchID, batchHash, ChannelEmail, recipient)

		start := time.Now()
		attempts, err := a.withRetry(ctx, func(ctx context.Context) error {
			return a.email.Send(ctx, recipient, subject, textBody, htmlBody)
		})

		result.Attempts = attempts
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Status = "sent"
		}
		a.finishDelivery(ctx, deliveryID, result, time.Since(start))
		results = append(results, result)
	}
	return results
}

// withRetry runs send with up to three retries on transient failures.
// Permanent errors (4xx class) stop immediately.
func (a *Agent) withRetry(ctx context.Context, send func(context.Context) error) (int, error) {
	var err error
	for attempt := 0; ; attempt++ {
		err = send(ctx)
		if err == nil || isPermanentDeliveryError(err) || ctx.Err() != nil {
			return attempt + 1, err
		}
		if attempt >= len(retryDelays) {
			return attempt + 1, err
		}
		a.sleep(retryDelays[attempt])
	}
}

// isPermanentDeliveryError classifies transport errors the way the
// circuit breaker does: 4xx responses (except 408/425/429) and
// non-temporary SMTP failures never succeed on retry.
func isPermanentDeliveryError(err error) bool {
	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		return !breaker.IsFailureStatus(statusErr.Code)
	}
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) {
		return !sendErr.IsTemp()
	}
	return false
}

func (a *Agent) recordDelivery(ctx context.Context, batchID, batchHash, channel, recipient string) string {
	if a.store == nil || batchID == "" {
		return ""
	}

	dedupHash, err := canonical.Hash(map[string]any{
		"batch":     batchHash,
		"channel":   channel,
		"recipient": recipient,
	})
	if err != nil {
		dedupHash = ""
	}

	row, err := a.store.CreateAlertDelivery(ctx, batchID, channel, recipient, dedupHash)
	if err != nil {
		slog.Warn("Failed to record alert delivery", "batch_id", batchID, "channel", channel, "error", err)
		return ""
	}
	return row.ID
}

func (a *Agent) finishDelivery(ctx context.Context, deliveryID string, result deliveryResult, took time.Duration) {
	if a.store == nil || deliveryID == "" {
		return
	}

	var err error
	if result.Status == "sent" {
		err = a.store.MarkDeliverySent(ctx, deliveryID, result.Attempts-1, took)
	} else {
		retries := result.Attempts - 1
		if retries < 0 {
			retries = 0
		}
		err = a.store.MarkDeliveryFailed(ctx, deliveryID, result.Error, retries)
	}
	if err != nil {
		slog.Warn("Failed to update alert delivery", "delivery_id", deliveryID, "error", err)
	}
}

func (a *Agent) defaultChannels() []string {
	var channels []string
	if a.slack != nil {
		channels = append(channels, ChannelSlack)
	}
	if a.email != nil && len(a.cfg.EmailRecipients) > 0 {
		channels = append(channels, ChannelEmail)
	}
	return channels
}

func (a *Agent) alreadySent(hash string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.seen[hash]
	return ok
}

func (a *Agent) markSent(hash string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seen[hash] = struct{}{}
}

func tally(results []deliveryResult) (sent, failed, attempts int, lastError string) {
	for _, r := range results {
		attempts += r.Attempts
		if r.Status == "sent" {
			sent++
		} else {
			failed++
			if r.Error != "" {
				lastError = r.Error
			}
		}
	}
	return sent, failed, attempts, lastError
}

func decodeBatch(params map[string]any) (Batch, error) {
	var batch Batch
	raw, err := json.Marshal(params)
	if err != nil {
		return batch, fmt.Errorf("invalid batch parameters: %w", err)
	}
	if err := json.Unmarshal(raw, &batch); err != nil {
		return batch, fmt.Errorf("invalid batch parameters: %w", err)
	}
	return batch, nil
}
