package taskstore

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/predicate"
	"github.com/redscout/redscout/ent/task"
)

// ScanWindow tunes ScanForFailedTasks.
type ScanWindow struct {
	// MaxAge bounds how far back the scan looks.
	MaxAge time.Duration

	// StuckRunningAfter marks running tasks as candidates.
	StuckRunningAfter time.Duration

	// StalePendingAfter marks pending tasks as candidates.
	StalePendingAfter time.Duration
}

// ScanForFailedTasks returns recovery candidates created within MaxAge:
// failed tasks, running tasks started longer than StuckRunningAfter ago,
// and pending tasks older than StalePendingAfter.
func (s *Store) ScanForFailedTasks(ctx context.Context, w ScanWindow) ([]*ent.Task, error) {
	now := time.Now()
	tasks, err := s.client.Task.Query().
		Where(
			task.CreatedAtGTE(now.Add(-w.MaxAge)),
			task.Or(
				task.StatusEQ(task.StatusFailed),
				task.And(
					task.StatusEQ(task.StatusRunning),
					task.StartedAtLT(now.Add(-w.StuckRunningAfter)),
				),
				task.And(
					task.StatusEQ(task.StatusPending),
					task.CreatedAtLT(now.Add(-w.StalePendingAfter)),
				),
			),
		).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for failed tasks: %w", err)
	}
	return tasks, nil
}

// TasksDueForRetry returns failed tasks with retries remaining whose
// next_retry_at has passed.
func (s *Store) TasksDueForRetry(ctx context.Context) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusFailed),
			task.NextRetryAtNotNil(),
			task.NextRetryAtLTE(time.Now()),
			retriesRemaining(),
		).
		Order(ent.Asc(task.FieldNextRetryAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks due for retry: %w", err)
	}
	return tasks, nil
}

// retriesRemaining matches rows where retry_count < max_retries. Ent has
// no cross-column predicate, so this drops to SQL.
func retriesRemaining() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		s.Where(sql.ColumnsLT(s.C(task.FieldRetryCount), s.C(task.FieldMaxRetries)))
	})
}
