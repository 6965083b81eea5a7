package taskstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redscout/redscout/ent/task"
)

// Leases are the distributed mutual-exclusion primitive: a writer takes a
// task's lease before mutating it, and contention resolves to whichever
// writer wins the conditional UPDATE. Every operation here is a single
// atomic statement; no in-process locking is involved.

// AcquireLease claims the task's lease for ttl. It succeeds when the task
// holds no lease or the current lease has expired.
func (s *Store) AcquireLease(ctx context.Context, taskID, token string, ttl time.Duration) (bool, error) {
	now := time.Now()
	n, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.Or(
				task.LockTokenIsNil(),
				task.LockExpiresAtLTE(now),
			),
		).
		SetLockToken(token).
		SetLockExpiresAt(now.Add(ttl)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to acquire lease on task %s: %w", taskID, err)
	}
	return n == 1, nil
}

// RenewLease extends a held lease. It fails when the token no longer
// matches, meaning the lease was swept or taken over.
func (s *Store) RenewLease(ctx context.Context, taskID, token string, ttl time.Duration) (bool, error) {
	n, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.LockTokenEQ(token),
		).
		SetLockExpiresAt(time.Now().Add(ttl)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to renew lease on task %s: %w", taskID, err)
	}
	return n == 1, nil
}

// ReleaseLease clears the lease only when the stored token matches.
func (s *Store) ReleaseLease(ctx context.Context, taskID, token string) (bool, error) {
	n, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.LockTokenEQ(token),
		).
		ClearLockToken().
		ClearLockExpiresAt().
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to release lease on task %s: %w", taskID, err)
	}
	return n == 1, nil
}

// SweepExpiredLeases clears every lease whose expiry has passed and
// returns the number of rows cleared. Safe to run from every daemon
// instance concurrently.
func (s *Store) SweepExpiredLeases(ctx context.Context) (int, error) {
	n, err := s.client.Task.Update().
		Where(
			task.LockTokenNotNil(),
			task.LockExpiresAtLT(time.Now()),
		).
		ClearLockToken().
		ClearLockExpiresAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired leases: %w", err)
	}
	return n, nil
}
