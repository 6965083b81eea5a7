package coordinator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/ent/workflow"
	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/breaker"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/taskstore"
	"github.com/redscout/redscout/test/util"
)

// stubServer is a minimal agent: a skill table over httptest.
type stubServer struct {
	srv *httptest.Server

	mu       sync.Mutex
	calls    map[string]int
	handlers map[string]func(req a2a.SkillRequest) (*a2a.SkillResponse, int)
}

func newStubServer(t *testing.T) *stubServer {
	s := &stubServer{
		calls:    make(map[string]int),
		handlers: make(map[string]func(req a2a.SkillRequest) (*a2a.SkillResponse, int)),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		skill := strings.TrimPrefix(r.URL.Path, "/skills/")
		var req a2a.SkillRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		s.mu.Lock()
		s.calls[skill]++
		handler := s.handlers[skill]
		s.mu.Unlock()

		if handler == nil {
			http.Error(w, "unknown skill", http.StatusNotFound)
			return
		}
		resp, code := handler(req)
		if code != http.StatusOK {
			http.Error(w, "stub failure", code)
			return
		}
		resp.Timestamp = time.Now().Format(time.RFC3339)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *stubServer) setHandler(skill string, handler func(req a2a.SkillRequest) (*a2a.SkillResponse, int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[skill] = handler
}

func (s *stubServer) callCount(skill string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[skill]
}

type harness struct {
	coord     *Coordinator
	entClient *ent.Client
	store     *taskstore.Store

	retrieval *stubServer
	filter    *stubServer
	summarize *stubServer
	alert     *stubServer
}

func newHarness(t *testing.T) *harness {
	entClient, _ := util.SetupTestDatabase(t)
	store := taskstore.New(entClient)

	h := &harness{
		entClient: entClient,
		store:     store,
		retrieval: newStubServer(t),
		filter:    newStubServer(t),
		summarize: newStubServer(t),
		alert:     newStubServer(t),
	}

	cfg := &config.Config{
		A2A: &config.A2AConfig{
			APIKey: "test-key",
			AgentURLs: map[config.AgentType]string{
				config.AgentRetrieval: h.retrieval.srv.URL,
				config.AgentFilter:    h.filter.srv.URL,
				config.AgentSummarize: h.summarize.srv.URL,
				config.AgentAlert:     h.alert.srv.URL,
			},
			RequestTimeout: 5 * time.Second,
		},
		Workflow: &config.WorkflowConfig{
			Topics:           []string{"golang"},
			Subreddits:       []string{"golang", "programming"},
			PostLimit:        5,
			FanOutWorkers:    2,
			RetrieveTimeout:  5 * time.Second,
			FilterTimeout:    5 * time.Second,
			SummarizeTimeout: 5 * time.Second,
			AlertTimeout:     5 * time.Second,
			LeaseTTL:         time.Minute,
		},
		Alert: &config.AlertConfig{
			Channels: []string{"slack", "email"},
		},
	}

	breakers := breaker.NewRegistry(breaker.Config{FailureThreshold: 5, RecoveryTimeout: time.Minute})
	client := a2a.NewClient("test-key", 5*time.Second, breakers)
	h.coord = New(cfg, store, nil, client)

	h.retrieval.setHandler("fetch_posts_by_topic", func(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
		topic, _ := req.Parameters["topic"].(string)
		subreddit, _ := req.Parameters["subreddit"].(string)
		posts := []map[string]any{
			{"id": "t3_" + subreddit + "_1", "title": topic + " deep dive", "body": "all about " + topic, "subreddit": subreddit},
			{"id": "t3_" + subreddit + "_2", "title": topic + " news", "body": "more " + topic, "subreddit": subreddit},
		}
		return &a2a.SkillResponse{
			Status: a2a.StatusSuccess,
			Result: map[string]any{"posts": posts, "total_posts": len(posts)},
		}, http.StatusOK
	})

	h.filter.setHandler("batch_filter_posts", func(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
		posts, _ := req.Parameters["posts"].([]any)
		relevant := make([]any, 0, len(posts))
		for _, p := range posts {
			post, _ := p.(map[string]any)
			post["relevance_score"] = 0.9
			relevant = append(relevant, post)
		}
		ids := make([]any, 0, len(relevant))
		for _, p := range relevant {
			post, _ := p.(map[string]any)
			ids = append(ids, post["id"])
		}
		return &a2a.SkillResponse{
			Status: a2a.StatusSuccess,
			Result: map[string]any{"processed": len(posts), "relevant": len(relevant), "relevant_ids": ids, "relevant_posts": relevant},
		}, http.StatusOK
	})

	h.summarize.setHandler("summarizeContent", func(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
		items, _ := req.Parameters["items"].([]any)
		summaries := make([]any, 0, len(items))
		for _, it := range items {
			item, _ := it.(map[string]any)
			summaries = append(summaries, map[string]any{
				"id":      item["id"],
				"title":   item["title"],
				"summary": "short version",
			})
		}
		return &a2a.SkillResponse{
			Status: a2a.StatusSuccess,
			Result: map[string]any{
				"summary_text": "short version",
				"summaries":    summaries,
				"stats":        map[string]any{"items": len(items), "summaries_created": len(summaries)},
			},
		}, http.StatusOK
	})

	h.alert.setHandler("sendBatch", sendBatchStub)

	return h
}

// sendBatchStub mirrors the alert agent's response for one batch
// delivered to Slack plus two email recipients.
func sendBatchStub(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
	return &a2a.SkillResponse{
		Status: a2a.StatusSuccess,
		Result: map[string]any{
			"batch_id":              "batch-1",
			"status":                "success",
			"batches_sent":          1,
			"successful_deliveries": 3,
			"failed_deliveries":     0,
		},
	}, http.StatusOK
}

func (h *harness) taskBySkill(t *testing.T, workflowID, skill string) *ent.Task {
	t.Helper()
	found, err := h.entClient.Task.Query().
		Where(task.WorkflowIDEQ(workflowID), task.SkillNameEQ(skill)).
		First(context.Background())
	require.NoError(t, err)
	return found
}

func TestRunMonitoringCycle_HappyPath(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	result, err := h.coord.RunMonitoringCycle(ctx, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, 4, result.PostsProcessed, "1 topic x 2 subreddits x 2 posts")
	assert.Equal(t, 4, result.RelevantItems)
	assert.Equal(t, 4, result.SummariesCreated)
	assert.Equal(t, 1, result.AlertsSent)

	assert.Equal(t, 2, h.retrieval.callCount("fetch_posts_by_topic"))
	assert.Equal(t, 1, h.filter.callCount("batch_filter_posts"))
	assert.Equal(t, 1, h.summarize.callCount("summarizeContent"))
	assert.Equal(t, 1, h.alert.callCount("sendBatch"))

	wf, err := h.entClient.Workflow.Get(ctx, result.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusCompleted, wf.Status)
	assert.Equal(t, 4, wf.PostsProcessed)
	assert.Equal(t, 1, wf.AlertsSent)
	assert.Equal(t, 1, wf.RunCount)

	tasks, err := h.store.WorkflowTasks(ctx, result.WorkflowID)
	require.NoError(t, err)
	require.Len(t, tasks, 5, "2 retrieval + filter + summarize + alert")
	for _, tk := range tasks {
		assert.Equal(t, task.StatusCompleted, tk.Status)
		assert.Nil(t, tk.LockToken, "no lease survives the cycle")
	}
}

func TestRunMonitoringCycle_AlertsCountBatchesNotDeliveries(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	var gotChannels []any
	h.alert.setHandler("sendBatch", func(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
		gotChannels, _ = req.Parameters["channels"].([]any)
		// One batch fanned out to Slack plus three email recipients.
		return &a2a.SkillResponse{
			Status: a2a.StatusSuccess,
			Result: map[string]any{
				"batch_id":              "batch-1",
				"status":                "partial_success",
				"batches_sent":          1,
				"successful_deliveries": 4,
				"failed_deliveries":     1,
			},
		}, http.StatusOK
	})

	result, err := h.coord.RunMonitoringCycle(ctx, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.AlertsSent, "delivery fan-out must not inflate the batch count")
	assert.Equal(t, []any{"slack", "email"}, gotChannels, "configured channels are passed through")

	wf, err := h.entClient.Workflow.Get(ctx, result.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, 1, wf.AlertsSent)
}

func TestRunMonitoringCycle_ZeroPostsShortCircuits(t *testing.T) {
	h := newHarness(t)
	h.retrieval.setHandler("fetch_posts_by_topic", func(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
		return &a2a.SkillResponse{
			Status: a2a.StatusSuccess,
			Result: map[string]any{"posts": []any{}, "total_posts": 0},
		}, http.StatusOK
	})

	result, err := h.coord.RunMonitoringCycle(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "no_posts", result.ShortCircuit)
	assert.Zero(t, result.PostsProcessed)
	assert.Zero(t, h.filter.callCount("batch_filter_posts"), "filter never runs without posts")

	wf, err := h.entClient.Workflow.Get(context.Background(), result.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusCompleted, wf.Status)
}

func TestRunMonitoringCycle_ZeroRelevantShortCircuits(t *testing.T) {
	h := newHarness(t)
	h.filter.setHandler("batch_filter_posts", func(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
		posts, _ := req.Parameters["posts"].([]any)
		return &a2a.SkillResponse{
			Status: a2a.StatusSuccess,
			Result: map[string]any{"processed": len(posts), "relevant": 0, "relevant_ids": []any{}, "relevant_posts": []any{}},
		}, http.StatusOK
	})

	result, err := h.coord.RunMonitoringCycle(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "no_relevant_posts", result.ShortCircuit)
	assert.Equal(t, 4, result.PostsProcessed)
	assert.Zero(t, result.RelevantItems)
	assert.Zero(t, h.summarize.callCount("summarizeContent"))
}

func TestRunMonitoringCycle_StageFailureSurfaces(t *testing.T) {
	h := newHarness(t)
	h.filter.setHandler("batch_filter_posts", func(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
		return nil, http.StatusInternalServerError
	})

	result, err := h.coord.RunMonitoringCycle(context.Background(), nil, nil)
	require.Error(t, err)

	assert.Equal(t, "error", result.Status)
	assert.Equal(t, StageFilter, result.Stage)
	assert.NotEmpty(t, result.Error)

	wf, wfErr := h.entClient.Workflow.Get(context.Background(), result.WorkflowID)
	require.NoError(t, wfErr)
	assert.Equal(t, workflow.StatusFailed, wf.Status)
	assert.Equal(t, 1, wf.ErrorCount)

	filterTask := h.taskBySkill(t, result.WorkflowID, "batch_filter_posts")
	assert.Equal(t, task.StatusFailed, filterTask.Status)
	assert.NotNil(t, filterTask.NextRetryAt, "5xx failures are retriable")
	assert.Nil(t, filterTask.LockToken)
}

func TestRecoverFailedWorkflow_ResumesFromFailedStage(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.alert.setHandler("sendBatch", func(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
		return nil, http.StatusServiceUnavailable
	})

	result, err := h.coord.RunMonitoringCycle(ctx, nil, nil)
	require.Error(t, err)
	require.Equal(t, StageAlert, result.Stage)

	// Transient outage over: recovery re-runs the pipeline but reuses
	// the completed retrieval, filter, and summarize results.
	h.alert.setHandler("sendBatch", sendBatchStub)

	recovered, err := h.coord.RecoverFailedWorkflow(ctx, result.WorkflowID)
	require.NoError(t, err)

	assert.Equal(t, "success", recovered.Status)
	assert.Equal(t, result.WorkflowID, recovered.WorkflowID)
	assert.Equal(t, 4, recovered.PostsProcessed)
	assert.Equal(t, 1, recovered.AlertsSent)

	assert.Equal(t, 2, h.retrieval.callCount("fetch_posts_by_topic"), "completed stages are not re-invoked")
	assert.Equal(t, 1, h.filter.callCount("batch_filter_posts"))
	assert.Equal(t, 1, h.summarize.callCount("summarizeContent"))
	assert.Equal(t, 2, h.alert.callCount("sendBatch"))

	wf, err := h.entClient.Workflow.Get(ctx, result.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusCompleted, wf.Status)
	assert.Equal(t, 2, wf.RunCount)
}

func TestRunMonitoringCycle_CancellationMidSummarize(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	var entered sync.Once
	h.summarize.setHandler("summarizeContent", func(req a2a.SkillRequest) (*a2a.SkillResponse, int) {
		entered.Do(cancel)
		time.Sleep(300 * time.Millisecond)
		return &a2a.SkillResponse{
			Status: a2a.StatusSuccess,
			Result: map[string]any{"summary_text": "", "summaries": []any{}},
		}, http.StatusOK
	})

	result, err := h.coord.RunMonitoringCycle(ctx, nil, nil)
	require.Error(t, err)

	assert.Equal(t, "cancelled", result.Status)
	assert.Equal(t, StageSummarize, result.Stage)

	bg := context.Background()
	wf, err := h.entClient.Workflow.Get(bg, result.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusCancelled, wf.Status)

	tasks, err := h.store.WorkflowTasks(bg, result.WorkflowID)
	require.NoError(t, err)
	for _, tk := range tasks {
		assert.Nil(t, tk.LockToken, "cancellation releases every lease")
		assert.NotEqual(t, task.StatusRunning, tk.Status)
	}
	summarizeTask := h.taskBySkill(t, result.WorkflowID, "summarizeContent")
	assert.Equal(t, task.StatusFailed, summarizeTask.Status)
}
