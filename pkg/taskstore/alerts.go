package taskstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/alertbatch"
	"github.com/redscout/redscout/ent/alertdelivery"
)

// CreateAlertBatchInput carries the arguments for CreateAlertBatch.
type CreateAlertBatchInput struct {
	Title      string
	Summary    string
	TotalItems int
	Priority   int
	Channels   []string
}

// CreateAlertBatch records a new batch in pending state.
func (s *Store) CreateAlertBatch(ctx context.Context, in CreateAlertBatchInput) (*ent.AlertBatch, error) {
	create := s.client.AlertBatch.Create().
		SetID(uuid.NewString()).
		SetTitle(in.Title).
		SetTotalItems(in.TotalItems).
		SetPriority(in.Priority).
		SetChannels(in.Channels)
	if in.Summary != "" {
		create = create.SetSummary(in.Summary)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert batch: %w", err)
	}
	return row, nil
}

// CreateAlertDelivery records one pending (batch, channel, recipient)
// delivery.
func (s *Store) CreateAlertDelivery(ctx context.Context, batchID, channel, recipient, dedupHash string) (*ent.AlertDelivery, error) {
	create := s.client.AlertDelivery.Create().
		SetID(uuid.NewString()).
		SetAlertBatchID(batchID).
		SetChannel(channel).
		SetRecipient(recipient)
	if dedupHash != "" {
		create = create.SetDedupHash(dedupHash)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert delivery: %w", err)
	}
	return row, nil
}

// MarkDeliverySent transitions a delivery to sent.
func (s *Store) MarkDeliverySent(ctx context.Context, deliveryID string, retryCount int, took time.Duration) error {
	err := s.client.AlertDelivery.UpdateOneID(deliveryID).
		SetStatus(alertdelivery.StatusSent).
		SetSentAt(time.Now()).
		SetRetryCount(retryCount).
		SetDeliveryTimeMs(int(took.Milliseconds())).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark delivery %s sent: %w", deliveryID, err)
	}
	return nil
}

// MarkDeliveryFailed transitions a delivery to failed with its last error.
func (s *Store) MarkDeliveryFailed(ctx context.Context, deliveryID, errorMessage string, retryCount int) error {
	err := s.client.AlertDelivery.UpdateOneID(deliveryID).
		SetStatus(alertdelivery.StatusFailed).
		SetErrorMessage(errorMessage).
		SetRetryCount(retryCount).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark delivery %s failed: %w", deliveryID, err)
	}
	return nil
}

// FinalizeAlertBatch records the aggregate outcome. A batch with at
// least one delivered channel counts as sent.
func (s *Store) FinalizeAlertBatch(ctx context.Context, batchID string, sent bool, attempts int, lastError string) error {
	update := s.client.AlertBatch.UpdateOneID(batchID).
		SetDeliveryAttempts(attempts)
	if sent {
		update = update.SetStatus(alertbatch.StatusSent).SetSentAt(time.Now())
	} else {
		update = update.SetStatus(alertbatch.StatusFailed)
	}
	if lastError != "" {
		update = update.SetLastError(lastError)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to finalize alert batch %s: %w", batchID, err)
	}
	return nil
}

// BatchDeliveries lists the deliveries of one batch.
func (s *Store) BatchDeliveries(ctx context.Context, batchID string) ([]*ent.AlertDelivery, error) {
	rows, err := s.client.AlertDelivery.Query().
		Where(alertdelivery.AlertBatchIDEQ(batchID)).
		Order(ent.Asc(alertdelivery.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries for batch %s: %w", batchID, err)
	}
	return rows, nil
}
