package taskstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redscout/redscout/ent/contentdedup"
	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/ent/taskrecovery"
	"github.com/redscout/redscout/test/util"
)

func setupStore(t *testing.T) *Store {
	entClient, _ := util.SetupTestDatabase(t)
	return New(entClient)
}

func baseInput() CreateTaskInput {
	return CreateTaskInput{
		AgentType:  "retrieval",
		SkillName:  "fetch_posts_by_topic",
		Parameters: map[string]any{"topic": "golang", "subreddit": "programming", "limit": 25},
		WorkflowID: "wf-1",
	}
}

func TestCreateIdempotentTask_ReturnsExisting(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first, isNew, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, task.StatusPending, first.Status)

	// Same parameters with different key order hash identically.
	in := baseInput()
	in.Parameters = map[string]any{"limit": 25, "subreddit": "programming", "topic": "golang"}
	second, isNew, err := store.CreateIdempotentTask(ctx, in)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, first.ID, second.ID)
}

func TestCreateIdempotentTask_FailedTaskAllowsNewAttempt(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first, _, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)
	require.NoError(t, store.MarkFailed(ctx, first.ID, "transport error", false))

	second, isNew, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateIdempotentTask_DifferentWorkflowsAreIndependent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first, _, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)

	in := baseInput()
	in.WorkflowID = "wf-2"
	second, isNew, err := store.CreateIdempotentTask(ctx, in)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateIdempotentTask_ConcurrentCreatorsConverge(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	const creators = 8
	var wg sync.WaitGroup
	ids := make([]string, creators)
	newFlags := make([]bool, creators)
	errs := make([]error, creators)

	for i := 0; i < creators; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, isNew, err := store.CreateIdempotentTask(ctx, baseInput())
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = created.ID
			newFlags[i] = isNew
		}(i)
	}
	wg.Wait()

	newCount := 0
	for i := 0; i < creators; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
		if newFlags[i] {
			newCount++
		}
	}
	assert.Equal(t, 1, newCount)
}

func TestAcquireLease_ExactlyOneWinner(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, _, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)

	const contenders = 10
	var wg sync.WaitGroup
	wins := make([]bool, contenders)
	errs := make([]error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wins[i], errs[i] = store.AcquireLease(ctx, created.ID, fmt.Sprintf("token-%d", i), time.Minute)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < contenders; i++ {
		require.NoError(t, errs[i])
		if wins[i] {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestLease_ExpiredLeaseCanBeTakenOver(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, _, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)

	ok, err := store.AcquireLease(ctx, created.ID, "token-a", -time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// The first lease is already expired, so a second holder wins.
	ok, err = store.AcquireLease(ctx, created.ID, "token-b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// The old holder can no longer release.
	released, err := store.ReleaseLease(ctx, created.ID, "token-a")
	require.NoError(t, err)
	assert.False(t, released)

	released, err = store.ReleaseLease(ctx, created.ID, "token-b")
	require.NoError(t, err)
	assert.True(t, released)
}

func TestSweepExpiredLeases_Idempotent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for i, wf := range []string{"wf-a", "wf-b"} {
		in := baseInput()
		in.WorkflowID = wf
		created, _, err := store.CreateIdempotentTask(ctx, in)
		require.NoError(t, err)
		ok, err := store.AcquireLease(ctx, created.ID, "token", -time.Duration(i+1)*time.Second)
		require.NoError(t, err)
		require.True(t, ok)
	}

	swept, err := store.SweepExpiredLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, swept)

	swept, err = store.SweepExpiredLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, swept)
}

func TestMarkCompleted_StoresResultAndHash(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, _, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)
	require.NoError(t, store.MarkRunning(ctx, created.ID))

	result := map[string]any{"total_posts": 3, "post_ids": []any{"a", "b", "c"}}
	require.NoError(t, store.MarkCompleted(ctx, created.ID, result))

	loaded, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, loaded.Status)
	assert.NotNil(t, loaded.CompletedAt)
	require.NotNil(t, loaded.ResultHash)
	assert.Len(t, *loaded.ResultHash, 64)
}

func TestMarkFailed_SchedulesRetryWhenRetriable(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, _, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)
	require.NoError(t, store.MarkFailed(ctx, created.ID, "connection refused", true))

	loaded, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, loaded.Status)
	assert.NotNil(t, loaded.NextRetryAt)

	// Terminal failure does not schedule a retry.
	in := baseInput()
	in.WorkflowID = "wf-terminal"
	terminal, _, err := store.CreateIdempotentTask(ctx, in)
	require.NoError(t, err)
	require.NoError(t, store.MarkFailed(ctx, terminal.ID, "invalid parameters", false))

	loaded, err = store.GetTask(ctx, terminal.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.NextRetryAt)
}

func TestResetForRetry_ClearsExecutionState(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, _, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)
	require.NoError(t, store.MarkRunning(ctx, created.ID))
	require.NoError(t, store.MarkFailed(ctx, created.ID, "boom", true))

	reset, err := store.ResetForRetry(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, reset.Status)
	assert.Equal(t, 1, reset.RetryCount)
	assert.Nil(t, reset.StartedAt)
	assert.Nil(t, reset.CompletedAt)
	assert.Nil(t, reset.ErrorMessage)
	assert.Nil(t, reset.LockToken)
	assert.NotNil(t, reset.NextRetryAt)
}

func TestScanForFailedTasks_Windows(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	window := ScanWindow{
		MaxAge:            24 * time.Hour,
		StuckRunningAfter: time.Hour,
		StalePendingAfter: 30 * time.Minute,
	}

	// A failed task is always a candidate.
	failed, _, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)
	require.NoError(t, store.MarkFailed(ctx, failed.ID, "boom", true))

	// A running task with an old started_at is stuck.
	in := baseInput()
	in.WorkflowID = "wf-stuck"
	stuck, _, err := store.CreateIdempotentTask(ctx, in)
	require.NoError(t, err)
	require.NoError(t, store.client.Task.UpdateOneID(stuck.ID).
		SetStatus(task.StatusRunning).
		SetStartedAt(time.Now().Add(-2*time.Hour)).
		Exec(ctx))

	// A fresh running task is not.
	in.WorkflowID = "wf-fresh"
	fresh, _, err := store.CreateIdempotentTask(ctx, in)
	require.NoError(t, err)
	require.NoError(t, store.MarkRunning(ctx, fresh.ID))

	candidates, err := store.ScanForFailedTasks(ctx, window)
	require.NoError(t, err)

	ids := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		ids[c.ID] = true
	}
	assert.True(t, ids[failed.ID])
	assert.True(t, ids[stuck.ID])
	assert.False(t, ids[fresh.ID])
}

func TestRegisterContent_Duplicate(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	in := RegisterContentInput{
		ContentType: contentdedup.ContentTypePost,
		ExternalID:  "t3_abc123",
		ContentHash: "deadbeef",
		SourceAgent: "filter",
		WorkflowID:  "wf-1",
	}

	row, err := store.RegisterContent(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, contentdedup.ProcessingStatusNew, row.ProcessingStatus)

	in.ContentHash = "deadbeef2"
	_, err = store.RegisterContent(ctx, in)
	assert.ErrorIs(t, err, ErrDuplicateContent)
}

func TestCreateRecovery_OneActivePerTask(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, _, err := store.CreateIdempotentTask(ctx, baseInput())
	require.NoError(t, err)

	rec, err := store.CreateRecovery(ctx, created.ID, taskrecovery.RecoveryStrategyRetry, "stuck", nil)
	require.NoError(t, err)

	_, err = store.CreateRecovery(ctx, created.ID, taskrecovery.RecoveryStrategyRetry, "stuck again", nil)
	assert.ErrorIs(t, err, ErrRecoveryExists)

	// After the first recovery reaches a terminal state, a new one is allowed.
	require.NoError(t, store.MarkRecoveryCompleted(ctx, rec.ID))
	_, err = store.CreateRecovery(ctx, created.ID, taskrecovery.RecoveryStrategyRetry, "third time", nil)
	require.NoError(t, err)
}

func TestBackoff_Schedule(t *testing.T) {
	assert.Equal(t, time.Minute, Backoff(0))
	assert.Equal(t, 2*time.Minute, Backoff(1))
	assert.Equal(t, 4*time.Minute, Backoff(2))
	assert.Equal(t, 8*time.Minute, Backoff(3))
	assert.Equal(t, 60*time.Minute, Backoff(6))
	assert.Equal(t, 60*time.Minute, Backoff(20))
}
