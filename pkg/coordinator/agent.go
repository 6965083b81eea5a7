package coordinator

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/runtime"
	"github.com/redscout/redscout/pkg/version"
)

// The coordinator is itself an agent: peers (and operators) trigger
// cycles and recoveries through the same skill surface the workers use.

func (c *Coordinator) Type() config.AgentType { return config.AgentCoordinator }

func (c *Coordinator) Card(baseURL string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:        "Monitoring Coordinator Agent",
		Description: "Orchestrates the retrieve, filter, summarise, alert pipeline",
		Version:     version.Release,
		URL:         baseURL,
		Provider:    a2a.Provider{Organization: "redscout"},
		Skills: []a2a.Skill{
			{
				ID:          "run_monitoring_cycle",
				Name:        "Run Monitoring Cycle",
				Description: "Runs one full monitoring cycle over the configured or given topics",
				Tags:        []string{"orchestration"},
				InputModes:  []string{"application/json"},
				OutputModes: []string{"application/json"},
			},
			{
				ID:          "recover_workflow",
				Name:        "Recover Workflow",
				Description: "Resumes a failed workflow from its first incomplete stage",
				Tags:        []string{"orchestration", "recovery"},
				InputModes:  []string{"application/json"},
				OutputModes: []string{"application/json"},
			},
		},
	}
}

func (c *Coordinator) Skills() map[string]runtime.SkillHandler {
	return map[string]runtime.SkillHandler{
		"run_monitoring_cycle": c.runCycleSkill,
		"recover_workflow":     c.recoverWorkflowSkill,
	}
}

func (c *Coordinator) runCycleSkill(ctx context.Context, req a2a.SkillRequest) (*a2a.SkillResponse, error) {
	topics := stringSliceParam(req.Parameters, "topics")
	subreddits := stringSliceParam(req.Parameters, "subreddits")

	result, err := c.RunMonitoringCycle(ctx, topics, subreddits)
	return cycleResponse(result, err)
}

func (c *Coordinator) recoverWorkflowSkill(ctx context.Context, req a2a.SkillRequest) (*a2a.SkillResponse, error) {
	workflowID, _ := req.Parameters["workflow_id"].(string)
	if workflowID == "" {
		return nil, errors.New("missing required parameter: workflow_id")
	}

	result, err := c.RecoverFailedWorkflow(ctx, workflowID)
	return cycleResponse(result, err)
}

func cycleResponse(result *CycleResult, err error) (*a2a.SkillResponse, error) {
	if err != nil {
		if result == nil {
			return nil, err
		}
		return &a2a.SkillResponse{
			Status: a2a.StatusError,
			Error:  err.Error(),
			Result: resultMap(result),
		}, nil
	}
	return &a2a.SkillResponse{Status: a2a.StatusSuccess, Result: resultMap(result)}, nil
}

func resultMap(result *CycleResult) map[string]any {
	raw, err := json.Marshal(result)
	if err != nil {
		return map[string]any{"workflow_id": result.WorkflowID, "status": result.Status}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"workflow_id": result.WorkflowID, "status": result.Status}
	}
	return out
}

func stringSliceParam(params map[string]any, key string) []string {
	switch v := params[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
