package recovery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/agentstate"
	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/ent/taskrecovery"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/taskstore"
	"github.com/redscout/redscout/test/util"
)

func testConfig() *config.RecoveryConfig {
	return &config.RecoveryConfig{
		CheckInterval:           time.Minute,
		MaxTaskAge:              24 * time.Hour,
		StuckRunningAfter:       time.Hour,
		StalePendingAfter:       time.Millisecond,
		CrashedRunningAfter:     2 * time.Hour,
		LeaseTTL:                time.Minute,
		RecoveryRetentionAge:    7 * 24 * time.Hour,
		AgentStalenessThreshold: 10 * time.Minute,
	}
}

func newTestDaemon(t *testing.T) (*Daemon, *taskstore.Store, *ent.Client) {
	entClient, _ := util.SetupTestDatabase(t)
	store := taskstore.New(entClient)
	return New(testConfig(), store), store, entClient
}

func createTask(t *testing.T, store *taskstore.Store, skill string) *ent.Task {
	t.Helper()
	created, isNew, err := store.CreateIdempotentTask(context.Background(), taskstore.CreateTaskInput{
		AgentType:  "retrieval",
		SkillName:  skill,
		Parameters: map[string]any{"topic": skill},
	})
	require.NoError(t, err)
	require.True(t, isNew)
	return created
}

func recoveryFor(t *testing.T, entClient *ent.Client, taskID string) *ent.TaskRecovery {
	t.Helper()
	rec, err := entClient.TaskRecovery.Query().
		Where(taskrecovery.OriginalTaskIDEQ(taskID)).
		Only(context.Background())
	require.NoError(t, err)
	return rec
}

func TestRunOnce_RetriesRipeFailedTask(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "fetch_posts_by_topic")
	require.NoError(t, store.MarkRunning(ctx, created.ID))
	require.NoError(t, store.MarkFailed(ctx, created.ID, "upstream 503", true))
	// Backoff elapsed.
	require.NoError(t, entClient.Task.UpdateOneID(created.ID).
		SetNextRetryAt(time.Now().Add(-time.Minute)).Exec(ctx))

	stats, err := daemon.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Planned)
	assert.Equal(t, 1, stats.Executed)

	rec := recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStrategyRetry, rec.RecoveryStrategy)
	assert.Equal(t, taskrecovery.RecoveryStatusCompleted, rec.RecoveryStatus)

	reset, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, reset.Status)
	assert.Equal(t, 1, reset.RetryCount)
	assert.Nil(t, reset.LockToken)
	assert.Nil(t, reset.ErrorMessage)
}

func TestRunOnce_FailedTaskInsideBackoffIsLeftAlone(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "fetch_posts_by_topic")
	require.NoError(t, store.MarkFailed(ctx, created.ID, "upstream 503", true))

	stats, err := daemon.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Planned)

	n, err := entClient.TaskRecovery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	unchanged, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, unchanged.Status)
}

func TestRunOnce_PermanentFailureRollsBack(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "sendBatch")
	require.NoError(t, store.MarkFailed(ctx, created.ID, "400 Bad Request", false))

	stats, err := daemon.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Executed)

	rec := recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStrategyRollback, rec.RecoveryStrategy)
	assert.Equal(t, taskrecovery.RecoveryStatusCompleted, rec.RecoveryStatus)

	rolled, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, rolled.Status)
	assert.Nil(t, rolled.NextRetryAt)
	assert.Nil(t, rolled.LockToken)

	// The task stays failed inside the scan window, but the completed
	// rollback settles it for good.
	again, err := daemon.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Planned)

	count, err := entClient.TaskRecovery.Query().
		Where(taskrecovery.OriginalTaskIDEQ(created.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunOnce_ExhaustedRetriesRollBack(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "batch_filter_posts")
	require.NoError(t, store.MarkFailed(ctx, created.ID, "upstream 503", true))
	require.NoError(t, entClient.Task.UpdateOneID(created.ID).
		SetRetryCount(3).
		SetNextRetryAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	_, err := daemon.RunOnce(ctx)
	require.NoError(t, err)

	rec := recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStrategyRollback, rec.RecoveryStrategy)
	assert.Equal(t, "retries exhausted", *rec.FailureReason)
}

func TestRunOnce_CheckpointResumesFromPartialResult(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "fetch_posts_by_topic")
	require.NoError(t, store.MarkFailed(ctx, created.ID, "timeout after page 2", true))
	require.NoError(t, entClient.Task.UpdateOneID(created.ID).
		SetResultData(map[string]any{"last_page": 2.0}).
		SetNextRetryAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	_, err := daemon.RunOnce(ctx)
	require.NoError(t, err)

	rec := recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStrategyCheckpoint, rec.RecoveryStrategy)
	assert.Equal(t, taskrecovery.RecoveryStatusCompleted, rec.RecoveryStatus)

	resumed, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, resumed.Status)
	assert.Equal(t, 2.0, resumed.Parameters["last_page"])
	assert.Equal(t, true, resumed.Parameters["_checkpoint_recovery"])
	assert.Equal(t, "fetch_posts_by_topic", resumed.Parameters["topic"], "original parameters survive the merge")
}

func TestRunOnce_CrashedRunningTaskRetries(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "summarizeContent")
	require.NoError(t, store.MarkRunning(ctx, created.ID))
	require.NoError(t, entClient.Task.UpdateOneID(created.ID).
		SetStartedAt(time.Now().Add(-3 * time.Hour)).Exec(ctx))

	_, err := daemon.RunOnce(ctx)
	require.NoError(t, err)

	rec := recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStrategyRetry, rec.RecoveryStrategy)
	assert.Equal(t, "worker presumed crashed", *rec.FailureReason)

	reset, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, reset.Status)
}

func TestRunOnce_RecentRunningTaskIsManual(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "summarizeContent")
	require.NoError(t, store.MarkRunning(ctx, created.ID))
	// Stuck by the scan's definition but not yet presumed crashed.
	require.NoError(t, entClient.Task.UpdateOneID(created.ID).
		SetStartedAt(time.Now().Add(-90 * time.Minute)).Exec(ctx))

	_, err := daemon.RunOnce(ctx)
	require.NoError(t, err)

	rec := recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStrategyManual, rec.RecoveryStrategy)
	assert.Equal(t, taskrecovery.RecoveryStatusRecovering, rec.RecoveryStatus, "manual recoveries stay open for the operator")

	still, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, still.Status)

	// The open manual recovery blocks re-planning on later cycles.
	_, err = daemon.RunOnce(ctx)
	require.NoError(t, err)
	n, err := entClient.TaskRecovery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunOnce_StalePendingTaskRetries(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "fetch_posts_by_topic")
	time.Sleep(10 * time.Millisecond)

	_, err := daemon.RunOnce(ctx)
	require.NoError(t, err)

	rec := recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStrategyRetry, rec.RecoveryStrategy)
	assert.Equal(t, "task never started", *rec.FailureReason)
}

func TestRunOnce_CancelledWorkflowSkipsTask(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	wf, err := store.CreateWorkflow(ctx, taskstore.CreateWorkflowInput{WorkflowType: "monitoring"})
	require.NoError(t, err)
	created, _, err := store.CreateIdempotentTask(ctx, taskstore.CreateTaskInput{
		AgentType:  "alert",
		SkillName:  "sendBatch",
		Parameters: map[string]any{"title": "x"},
		WorkflowID: wf.ID,
	})
	require.NoError(t, err)
	require.NoError(t, store.MarkFailed(ctx, created.ID, "upstream 503", true))
	require.NoError(t, entClient.Task.UpdateOneID(created.ID).
		SetNextRetryAt(time.Now().Add(-time.Minute)).Exec(ctx))
	require.NoError(t, store.CancelWorkflow(ctx, wf.ID))

	_, err = daemon.RunOnce(ctx)
	require.NoError(t, err)

	rec := recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStrategySkip, rec.RecoveryStrategy)

	skipped, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, skipped.Status)
}

func TestRunOnce_SweepsExpiredLeases(t *testing.T) {
	daemon, store, _ := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "fetch_posts_by_topic")
	require.NoError(t, store.MarkRunning(ctx, created.ID))
	acquired, err := store.AcquireLease(ctx, created.ID, "dead-worker", -time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	stats, err := daemon.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.LeasesSwept)

	swept, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, swept.LockToken)
}

func TestRunOnce_LeasedTaskDefersRecovery(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "fetch_posts_by_topic")
	require.NoError(t, store.MarkFailed(ctx, created.ID, "upstream 503", true))
	require.NoError(t, entClient.Task.UpdateOneID(created.ID).
		SetNextRetryAt(time.Now().Add(-time.Minute)).Exec(ctx))
	acquired, err := store.AcquireLease(ctx, created.ID, "other-worker", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	stats, err := daemon.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Planned)

	rec := recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStatusPending, rec.RecoveryStatus, "contended recoveries wait for a later cycle")

	unchanged, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, unchanged.Status)

	// Lease released: the deferred recovery executes on the next cycle.
	released, err := store.ReleaseLease(ctx, created.ID, "other-worker")
	require.NoError(t, err)
	require.True(t, released)

	_, err = daemon.RunOnce(ctx)
	require.NoError(t, err)

	rec = recoveryFor(t, entClient, created.ID)
	assert.Equal(t, taskrecovery.RecoveryStatusCompleted, rec.RecoveryStatus)
	retried, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, retried.Status)
}

func TestRunOnce_MarksStaleAgentsOffline(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertAgentHeartbeat(ctx, taskstore.HeartbeatInput{
		AgentID:   "retrieval-abc123",
		AgentType: "retrieval",
		Status:    agentstate.StatusIdle,
	}))
	require.NoError(t, entClient.AgentState.UpdateOneID("retrieval-abc123").
		SetHeartbeatAt(time.Now().Add(-time.Hour)).Exec(ctx))

	stats, err := daemon.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.AgentsOffline)

	state, err := entClient.AgentState.Get(ctx, "retrieval-abc123")
	require.NoError(t, err)
	assert.Equal(t, agentstate.StatusOffline, state.Status)
}

func TestRunOnce_PurgesOldTerminalRecoveries(t *testing.T) {
	daemon, store, entClient := newTestDaemon(t)
	ctx := context.Background()

	created := createTask(t, store, "sendBatch")
	require.NoError(t, store.MarkFailed(ctx, created.ID, "400 Bad Request", false))

	_, err := daemon.RunOnce(ctx)
	require.NoError(t, err)
	rec := recoveryFor(t, entClient, created.ID)
	require.Equal(t, taskrecovery.RecoveryStatusCompleted, rec.RecoveryStatus)

	daemon.cfg.RecoveryRetentionAge = time.Millisecond
	time.Sleep(10 * time.Millisecond)

	stats, err := daemon.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.RecoveriesPurged)

	n, err := entClient.TaskRecovery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBackoffSchedule(t *testing.T) {
	assert.Equal(t, time.Minute, taskstore.Backoff(0))
	assert.Equal(t, 2*time.Minute, taskstore.Backoff(1))
	assert.Equal(t, 32*time.Minute, taskstore.Backoff(5))
	assert.Equal(t, 60*time.Minute, taskstore.Backoff(6))
	assert.Equal(t, 60*time.Minute, taskstore.Backoff(20))
}
