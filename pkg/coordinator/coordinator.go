// Package coordinator drives the four-stage monitoring pipeline:
// retrieve, filter, summarise, alert. Every stage runs as a durable
// task with idempotent creation, a lease for the duration of the call,
// and retry classification for the recovery daemon. A completed stage
// task short-circuits re-execution, which is what makes failed
// workflows resumable.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/registry"
	"github.com/redscout/redscout/pkg/taskstore"
)

// Pipeline stage names, in execution order.
const (
	StageRetrieve  = "retrieve"
	StageFilter    = "filter"
	StageSummarize = "summarize"
	StageAlert     = "alert"
)

const summaryMaxLength = 500

// Coordinator orchestrates monitoring cycles.
type Coordinator struct {
	cfg    *config.Config
	store  *taskstore.Store
	reg    *registry.Registry // nil falls back to configured agent URLs
	client *a2a.Client
}

// New builds a Coordinator.
func New(cfg *config.Config, store *taskstore.Store, reg *registry.Registry, client *a2a.Client) *Coordinator {
	return &Coordinator{cfg: cfg, store: store, reg: reg, client: client}
}

// CycleResult is the outcome of one monitoring cycle.
type CycleResult struct {
	WorkflowID   string `json:"workflow_id"`
	Status       string `json:"status"`
	Stage        string `json:"stage,omitempty"`
	Error        string `json:"error,omitempty"`
	ShortCircuit string `json:"short_circuit,omitempty"`

	PostsProcessed   int `json:"posts_processed"`
	RelevantItems    int `json:"relevant_items"`
	SummariesCreated int `json:"summaries_created"`
	AlertsSent       int `json:"alerts_sent"`
}

// RunMonitoringCycle creates a workflow and runs the full pipeline.
// Empty topics or subreddits fall back to the configured defaults.
func (c *Coordinator) RunMonitoringCycle(ctx context.Context, topics, subreddits []string) (*CycleResult, error) {
	if len(topics) == 0 {
		topics = c.cfg.Workflow.Topics
	}
	if len(subreddits) == 0 {
		subreddits = c.cfg.Workflow.Subreddits
	}
	if len(topics) == 0 || len(subreddits) == 0 {
		return nil, errors.New("no topics or subreddits configured")
	}

	wf, err := c.store.CreateWorkflow(ctx, taskstore.CreateWorkflowInput{
		WorkflowType: "monitoring",
		Config:       map[string]any{"topics": topics, "subreddits": subreddits},
		Schedule:     c.cfg.Workflow.Schedule,
	})
	if err != nil {
		return nil, err
	}

	return c.runPipeline(ctx, wf.ID, topics, subreddits)
}

// RecoverFailedWorkflow re-runs a workflow's pipeline. Stages that
// completed in the failed run are reused via idempotent task lookup;
// only the failed stage onwards executes again.
func (c *Coordinator) RecoverFailedWorkflow(ctx context.Context, workflowID string) (*CycleResult, error) {
	wf, err := c.store.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	topics := stringsFrom(wf.Config, "topics")
	subreddits := stringsFrom(wf.Config, "subreddits")
	if len(topics) == 0 {
		topics = c.cfg.Workflow.Topics
	}
	if len(subreddits) == 0 {
		subreddits = c.cfg.Workflow.Subreddits
	}

	slog.Info("Recovering workflow", "workflow_id", workflowID, "topics", len(topics))
	return c.runPipeline(ctx, workflowID, topics, subreddits)
}

func (c *Coordinator) runPipeline(ctx context.Context, workflowID string, topics, subreddits []string) (*CycleResult, error) {
	result := &CycleResult{WorkflowID: workflowID, Status: "success"}

	if err := c.store.MarkWorkflowRunning(ctx, workflowID); err != nil {
		return nil, err
	}
	correlationID := uuid.NewString()

	// Stage 1: retrieve, fanned out per topic x subreddit.
	posts, err := c.retrieveStage(ctx, workflowID, correlationID, topics, subreddits)
	if err != nil {
		return c.failPipeline(ctx, result, StageRetrieve, err)
	}
	result.PostsProcessed = len(posts)
	if len(posts) == 0 {
		result.ShortCircuit = "no_posts"
		return result, c.completeWorkflow(ctx, result)
	}

	// Stage 2: filter.
	filterOut, err := c.runStageTask(ctx, workflowID, correlationID, config.AgentFilter, "batch_filter_posts",
		map[string]any{"posts": posts, "topics": topics, "workflow_id": workflowID},
		c.cfg.Workflow.FilterTimeout)
	if err != nil {
		return c.failPipeline(ctx, result, StageFilter, err)
	}
	relevant := sliceField(filterOut, "relevant_posts")
	result.RelevantItems = len(relevant)
	if len(relevant) == 0 {
		result.ShortCircuit = "no_relevant_posts"
		return result, c.completeWorkflow(ctx, result)
	}

	// Stage 3: summarise.
	summarizeOut, err := c.runStageTask(ctx, workflowID, correlationID, config.AgentSummarize, "summarizeContent",
		map[string]any{"items": relevant, "max_length": summaryMaxLength, "workflow_id": workflowID},
		c.cfg.Workflow.SummarizeTimeout)
	if err != nil {
		return c.failPipeline(ctx, result, StageSummarize, err)
	}
	summaries := sliceField(summarizeOut, "summaries")
	result.SummariesCreated = len(summaries)

	// Stage 4: alert.
	alertParams := map[string]any{
		"title":       fmt.Sprintf("Reddit monitoring: %d relevant posts", len(relevant)),
		"summary":     fmt.Sprintf("Found %d relevant posts across %d subreddits", len(relevant), len(subreddits)),
		"items":       summaries,
		"workflow_id": workflowID,
	}
	if c.cfg.Alert != nil && len(c.cfg.Alert.Channels) > 0 {
		alertParams["channels"] = c.cfg.Alert.Channels
	}
	alertOut, err := c.runStageTask(ctx, workflowID, correlationID, config.AgentAlert, "sendBatch",
		alertParams, c.cfg.Workflow.AlertTimeout)
	if err != nil {
		return c.failPipeline(ctx, result, StageAlert, err)
	}
	// Count dispatched batches, not individual channel deliveries.
	result.AlertsSent = intField(alertOut, "batches_sent")

	if err := c.completeWorkflow(ctx, result); err != nil {
		return result, err
	}
	slog.Info("Monitoring cycle completed",
		"workflow_id", workflowID,
		"posts", result.PostsProcessed,
		"relevant", result.RelevantItems,
		"summaries", result.SummariesCreated,
		"alerts_sent", result.AlertsSent)
	return result, nil
}

// retrieveStage fans one retrieval task out per topic x subreddit pair
// with bounded parallelism and merges the fetched posts.
func (c *Coordinator) retrieveStage(ctx context.Context, workflowID, correlationID string, topics, subreddits []string) ([]any, error) {
	g, gctx := errgroup.WithContext(ctx)
	workers := c.cfg.Workflow.FanOutWorkers
	if workers <= 0 {
		workers = 1
	}
	g.SetLimit(workers)

	var mu sync.Mutex
	var posts []any

	for _, topic := range topics {
		for _, subreddit := range subreddits {
			topic, subreddit := topic, subreddit
			g.Go(func() error {
				out, err := c.runStageTask(gctx, workflowID, correlationID, config.AgentRetrieval, "fetch_posts_by_topic",
					map[string]any{
						"topic":       topic,
						"subreddit":   subreddit,
						"limit":       c.cfg.Workflow.PostLimit,
						"workflow_id": workflowID,
					},
					c.cfg.Workflow.RetrieveTimeout)
				if err != nil {
					return err
				}
				mu.Lock()
				posts = append(posts, sliceField(out, "posts")...)
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return posts, nil
}

// runStageTask executes one stage call as a durable task: idempotent
// creation with completed-result reuse, a lease held for the call, and
// failure classification for the retry machinery.
func (c *Coordinator) runStageTask(ctx context.Context, workflowID, correlationID string, agentType config.AgentType, skill string, params map[string]any, timeout time.Duration) (map[string]any, error) {
	t, _, err := c.store.CreateIdempotentTask(ctx, taskstore.CreateTaskInput{
		AgentType:     string(agentType),
		SkillName:     skill,
		Parameters:    params,
		WorkflowID:    workflowID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	if t.Status == task.StatusCompleted {
		slog.Info("Reusing completed stage task", "task_id", t.ID, "skill", skill)
		return t.ResultData, nil
	}

	token := uuid.NewString()
	acquired, err := c.store.AcquireLease(ctx, t.ID, token, c.cfg.Workflow.LeaseTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("task %s is leased by another worker", t.ID)
	}

	if err := c.store.MarkRunning(ctx, t.ID); err != nil {
		c.releaseLease(t.ID, token)
		return nil, err
	}

	url, err := c.agentURL(ctx, agentType)
	if err != nil {
		c.markStageFailed(t.ID, err.Error(), true)
		c.releaseLease(t.ID, token)
		return nil, err
	}

	stageCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	resp, err := c.client.InvokeSkill(stageCtx, string(agentType), url, skill, params,
		a2a.RequestContext{CorrelationID: correlationID})
	if err != nil {
		retriable := true
		var invokeErr *a2a.InvokeError
		if errors.As(err, &invokeErr) {
			retriable = invokeErr.Retriable
		}
		c.markStageFailed(t.ID, err.Error(), retriable)
		c.releaseLease(t.ID, token)
		return nil, fmt.Errorf("%s/%s: %w", agentType, skill, err)
	}

	if err := c.store.MarkCompleted(ctx, t.ID, resp.Result); err != nil {
		c.releaseLease(t.ID, token)
		return nil, err
	}
	c.releaseLease(t.ID, token)
	return resp.Result, nil
}

func (c *Coordinator) failPipeline(ctx context.Context, result *CycleResult, stage string, err error) (*CycleResult, error) {
	result.Stage = stage
	result.Error = err.Error()

	// Post-cancellation bookkeeping runs on a fresh context.
	dbCtx, cancel := writeContext(ctx)
	defer cancel()

	if ctx.Err() != nil {
		result.Status = "cancelled"
		if cancelErr := c.store.CancelWorkflow(dbCtx, result.WorkflowID); cancelErr != nil {
			slog.Error("Failed to cancel workflow", "workflow_id", result.WorkflowID, "error", cancelErr)
		}
		return result, fmt.Errorf("monitoring cycle cancelled during stage %s: %w", stage, ctx.Err())
	}

	result.Status = "error"
	if failErr := c.store.FailWorkflow(dbCtx, result.WorkflowID, fmt.Sprintf("%s: %v", stage, err)); failErr != nil {
		slog.Error("Failed to mark workflow failed", "workflow_id", result.WorkflowID, "error", failErr)
	}
	return result, fmt.Errorf("stage %s failed: %w", stage, err)
}

func (c *Coordinator) completeWorkflow(ctx context.Context, result *CycleResult) error {
	return c.store.CompleteWorkflow(ctx, result.WorkflowID, taskstore.WorkflowCounters{
		PostsProcessed:   result.PostsProcessed,
		RelevantItems:    result.RelevantItems,
		SummariesCreated: result.SummariesCreated,
		AlertsSent:       result.AlertsSent,
	})
}

// agentURL prefers a live registry entry, falling back to the static
// configuration.
func (c *Coordinator) agentURL(ctx context.Context, agentType config.AgentType) (string, error) {
	if c.reg != nil {
		entry, err := c.reg.Lookup(ctx, string(agentType))
		if err == nil {
			return entry.URL, nil
		}
		if !errors.Is(err, registry.ErrAgentNotRegistered) {
			slog.Warn("Registry lookup failed", "agent_type", agentType, "error", err)
		}
	}
	return c.cfg.A2A.URLFor(agentType)
}

func (c *Coordinator) markStageFailed(taskID, message string, retriable bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.store.MarkFailed(ctx, taskID, message, retriable); err != nil {
		slog.Error("Failed to mark task failed", "task_id", taskID, "error", err)
	}
}

func (c *Coordinator) releaseLease(taskID, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := c.store.ReleaseLease(ctx, taskID, token); err != nil {
		slog.Error("Failed to release lease", "task_id", taskID, "error", err)
	}
}

// writeContext returns ctx while it is alive, or a bounded fresh
// context once it has been cancelled.
func writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx.Err() == nil {
		return ctx, func() {}
	}
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func sliceField(result map[string]any, key string) []any {
	if result == nil {
		return nil
	}
	values, _ := result[key].([]any)
	return values
}

func intField(result map[string]any, key string) int {
	if result == nil {
		return 0
	}
	switch v := result[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func stringsFrom(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	raw, _ := m[key].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
