package alert

import (
	"context"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redscout/redscout/ent/alertbatch"
	"github.com/redscout/redscout/ent/alertdelivery"
	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/taskstore"
	"github.com/redscout/redscout/test/util"
)

type fakeSlack struct {
	calls int
	errs  []error
	got   *slack.WebhookMessage
}

func (f *fakeSlack) SendWebhook(_ context.Context, message *slack.WebhookMessage) error {
	f.calls++
	f.got = message
	if f.calls <= len(f.errs) {
		return f.errs[f.calls-1]
	}
	return nil
}

type fakeEmail struct {
	calls      int
	errs       []error
	recipients []string
}

func (f *fakeEmail) Send(_ context.Context, recipient, _, _, _ string) error {
	f.calls++
	f.recipients = append(f.recipients, recipient)
	if f.calls <= len(f.errs) {
		return f.errs[f.calls-1]
	}
	return nil
}

func newTestAgent(t *testing.T, cfg *config.AlertConfig, store *taskstore.Store, slackSender SlackSender, emailSender EmailSender) (*Agent, *[]time.Duration) {
	t.Helper()

	agent := New(cfg, store, slackSender, emailSender)
	slept := &[]time.Duration{}
	agent.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return agent, slept
}

func sampleParams(channels ...string) map[string]any {
	return map[string]any{
		"title":    "redscout findings",
		"summary":  "2 relevant posts",
		"priority": "high",
		"channels": channels,
		"items": []map[string]any{
			{"id": "p1", "title": "golang concurrency", "summary": "goroutines", "url": "https://reddit.example/p1"},
			{"id": "p2", "title": "kubernetes operators", "summary": "CRDs"},
		},
	}
}

func TestSendBatch_EmptyBatchIsHandledError(t *testing.T) {
	slackSender := &fakeSlack{}
	agent, _ := newTestAgent(t, &config.AlertConfig{}, nil, slackSender, nil)

	resp, err := agent.sendBatch(context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{"title": "empty", "channels": []string{"slack"}, "items": []any{}},
	})
	require.NoError(t, err)

	assert.Equal(t, a2a.StatusError, resp.Status)
	assert.Equal(t, "empty_batch", resp.Error)
	assert.Zero(t, slackSender.calls, "nothing is delivered for an empty batch")
}

func TestSendBatch_DuplicateBatchSkipped(t *testing.T) {
	slackSender := &fakeSlack{}
	agent, _ := newTestAgent(t, &config.AlertConfig{}, nil, slackSender, nil)

	first, err := agent.sendBatch(context.Background(), a2a.SkillRequest{Parameters: sampleParams("slack")})
	require.NoError(t, err)
	require.Equal(t, a2a.StatusSuccess, first.Status)
	require.Equal(t, 1, slackSender.calls)

	second, err := agent.sendBatch(context.Background(), a2a.SkillRequest{Parameters: sampleParams("slack")})
	require.NoError(t, err)
	assert.Equal(t, a2a.StatusSkipped, second.Status)
	assert.Equal(t, "duplicate_batch", second.Result["reason"])
	assert.Equal(t, 1, slackSender.calls, "a duplicate batch is never re-delivered")
}

func TestSendBatch_RetriesTransientSlackFailure(t *testing.T) {
	slackSender := &fakeSlack{errs: []error{
		slack.StatusCodeError{Code: 500, Status: "500 Internal Server Error"},
		slack.StatusCodeError{Code: 503, Status: "503 Service Unavailable"},
	}}
	agent, slept := newTestAgent(t, &config.AlertConfig{}, nil, slackSender, nil)

	resp, err := agent.sendBatch(context.Background(), a2a.SkillRequest{Parameters: sampleParams("slack")})
	require.NoError(t, err)

	assert.Equal(t, a2a.StatusSuccess, resp.Status)
	assert.Equal(t, 3, slackSender.calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *slept)
}

func TestSendBatch_NoRetryOnClientError(t *testing.T) {
	slackSender := &fakeSlack{errs: []error{
		slack.StatusCodeError{Code: 400, Status: "400 Bad Request"},
	}}
	agent, slept := newTestAgent(t, &config.AlertConfig{}, nil, slackSender, nil)

	resp, err := agent.sendBatch(context.Background(), a2a.SkillRequest{Parameters: sampleParams("slack")})
	require.NoError(t, err)

	assert.Equal(t, a2a.StatusError, resp.Status)
	assert.Contains(t, resp.Error, "all deliveries failed")
	assert.Equal(t, 1, slackSender.calls, "client errors are not retried")
	assert.Empty(t, *slept)

	// The failed batch is not registered as sent, so a retry of the
	// same batch attempts delivery again instead of being skipped.
	retry, err := agent.sendBatch(context.Background(), a2a.SkillRequest{Parameters: sampleParams("slack")})
	require.NoError(t, err)
	assert.Equal(t, a2a.StatusSuccess, retry.Status)
	assert.Equal(t, 2, slackSender.calls)
}

func TestSendBatch_PartialDelivery(t *testing.T) {
	slackSender := &fakeSlack{errs: []error{
		slack.StatusCodeError{Code: 404, Status: "404 Not Found"},
	}}
	emailSender := &fakeEmail{}
	cfg := &config.AlertConfig{EmailRecipients: []string{"oncall@example.com", "team@example.com"}}
	agent, _ := newTestAgent(t, cfg, nil, slackSender, emailSender)

	resp, err := agent.sendBatch(context.Background(), a2a.SkillRequest{Parameters: sampleParams("slack", "email")})
	require.NoError(t, err)

	assert.Equal(t, a2a.StatusSuccess, resp.Status)
	assert.Equal(t, "partial_success", resp.Result["status"])
	assert.Equal(t, 1, resp.Result["batches_sent"], "one batch regardless of delivery count")
	assert.Equal(t, 2, resp.Result["successful_deliveries"])
	assert.Equal(t, 1, resp.Result["failed_deliveries"])
	assert.Equal(t, []string{"oncall@example.com", "team@example.com"}, emailSender.recipients)
}

func TestSendBatch_SlackRendering(t *testing.T) {
	slackSender := &fakeSlack{}
	agent, _ := newTestAgent(t, &config.AlertConfig{}, nil, slackSender, nil)

	params := sampleParams("slack")
	params["priority"] = "critical"
	_, err := agent.sendBatch(context.Background(), a2a.SkillRequest{Parameters: params})
	require.NoError(t, err)

	msg := slackSender.got
	require.NotNil(t, msg)
	assert.Contains(t, msg.Text, "redscout findings")
	assert.Contains(t, msg.Text, "2 items")
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "danger", msg.Attachments[0].Color)
	require.Len(t, msg.Attachments[0].Fields, 2)
	assert.Equal(t, "golang concurrency", msg.Attachments[0].Fields[0].Title)
	assert.Contains(t, msg.Attachments[0].Fields[0].Value, "https://reddit.example/p1")
}

func TestSendBatch_UnknownChannelFailsDelivery(t *testing.T) {
	slackSender := &fakeSlack{}
	agent, _ := newTestAgent(t, &config.AlertConfig{}, nil, slackSender, nil)

	resp, err := agent.sendBatch(context.Background(), a2a.SkillRequest{
		Parameters: map[string]any{
			"title":    "findings",
			"channels": []string{"slack", "pager"},
			"items":    []map[string]any{{"id": "p1", "title": "x"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, a2a.StatusSuccess, resp.Status)
	assert.Equal(t, "partial_success", resp.Result["status"])
}

func TestSendBatch_PersistsBatchAndDeliveryRows(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	store := taskstore.New(entClient)
	ctx := context.Background()

	slackSender := &fakeSlack{}
	emailSender := &fakeEmail{errs: []error{
		slack.StatusCodeError{Code: 400, Status: "400 Bad Request"},
	}}
	cfg := &config.AlertConfig{EmailRecipients: []string{"oncall@example.com"}}
	agent, _ := newTestAgent(t, cfg, store, slackSender, emailSender)

	resp, err := agent.sendBatch(ctx, a2a.SkillRequest{Parameters: sampleParams("slack", "email")})
	require.NoError(t, err)
	require.Equal(t, a2a.StatusSuccess, resp.Status)

	batchID := resp.Result["batch_id"].(string)
	require.NotEmpty(t, batchID)

	batch, err := entClient.AlertBatch.Get(ctx, batchID)
	require.NoError(t, err)
	assert.Equal(t, alertbatch.StatusSent, batch.Status)
	assert.Equal(t, 2, batch.TotalItems)
	assert.NotNil(t, batch.SentAt)

	deliveries, err := store.BatchDeliveries(ctx, batchID)
	require.NoError(t, err)
	require.Len(t, deliveries, 2)

	byChannel := map[string]*struct {
		status    alertdelivery.Status
		recipient string
	}{}
	for _, d := range deliveries {
		byChannel[d.Channel] = &struct {
			status    alertdelivery.Status
			recipient string
		}{d.Status, d.Recipient}
	}
	require.Contains(t, byChannel, ChannelSlack)
	require.Contains(t, byChannel, ChannelEmail)
	assert.Equal(t, alertdelivery.StatusSent, byChannel[ChannelSlack].status)
	assert.Equal(t, alertdelivery.StatusFailed, byChannel[ChannelEmail].status)
	assert.Equal(t, "oncall@example.com", byChannel[ChannelEmail].recipient)
}
