package runtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/database"
	"github.com/redscout/redscout/pkg/version"
)

// handleHealth reports liveness. Unauthenticated so orchestrators and
// load balancers can probe it. When a database is attached its pool
// state is included, and an unreachable database turns the probe 503.
func (s *Server) handleHealth(c *gin.Context) {
	payload := gin.H{
		"status":         "healthy",
		"agent_type":     s.agent.Type(),
		"agent_id":       s.agentID,
		"version":        version.Full(),
		"uptime_seconds": int(time.Since(s.startedAt).Seconds()),
	}

	code := http.StatusOK
	if s.db != nil {
		pool, err := database.CheckPool(c.Request.Context(), s.db)
		payload["database"] = pool
		if err != nil {
			payload["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, payload)
}

// handleAgentCard serves the agent's self-description.
func (s *Server) handleAgentCard(c *gin.Context) {
	c.JSON(http.StatusOK, s.agent.Card(s.baseURL))
}

// discoveredAgent is one entry in the /discover response.
type discoveredAgent struct {
	AgentType   string    `json:"agent_type"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	URL         string    `json:"url"`
	HeartbeatAt time.Time `json:"heartbeat_at"`
}

// handleDiscover lists every live agent from the registry.
func (s *Server) handleDiscover(c *gin.Context) {
	agents := []discoveredAgent{}

	if s.registry != nil {
		entries, err := s.registry.Discover(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "registry unavailable"})
			return
		}
		for _, e := range entries {
			agents = append(agents, discoveredAgent{
				AgentType:   e.AgentType,
				Name:        e.Name,
				Version:     e.Version,
				URL:         e.URL,
				HeartbeatAt: e.HeartbeatAt,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"agents": agents, "count": len(agents)})
}

// handleSkill dispatches POST /skills/:name to the agent's skill table.
func (s *Server) handleSkill(c *gin.Context) {
	name := c.Param("name")
	handler, ok := s.agent.Skills()[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown skill: %s", name)})
		return
	}

	var req a2a.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid skill request: %v", err)})
		return
	}

	c.JSON(http.StatusOK, s.executeSkill(c.Request.Context(), handler, req))
}

// handleRPC implements the JSON-RPC message/send surface over the same
// skill table. Protocol errors are JSON-RPC error objects on HTTP 200.
func (s *Server) handleRPC(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusOK, rpcErrorResponse(nil, a2a.RPCCodeInternalError, "failed to read request"))
		return
	}

	var req a2a.RPCRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		c.JSON(http.StatusOK, rpcErrorResponse(nil, a2a.RPCCodeParseError, "parse error"))
		return
	}
	if req.JSONRPC != "2.0" {
		c.JSON(http.StatusOK, rpcErrorResponse(req.ID, a2a.RPCCodeInvalidRequest, "jsonrpc must be \"2.0\""))
		return
	}
	if req.Method != "message/send" {
		c.JSON(http.StatusOK, rpcErrorResponse(req.ID, a2a.RPCCodeMethodNotFound, fmt.Sprintf("unknown method: %s", req.Method)))
		return
	}

	skillName, params, err := extractSkillCall(req.Params)
	if err != nil {
		c.JSON(http.StatusOK, rpcErrorResponse(req.ID, a2a.RPCCodeInvalidParams, err.Error()))
		return
	}
	handler, ok := s.agent.Skills()[skillName]
	if !ok {
		c.JSON(http.StatusOK, rpcErrorResponse(req.ID, a2a.RPCCodeInvalidParams, fmt.Sprintf("unknown skill: %s", skillName)))
		return
	}

	resp := s.executeSkill(c.Request.Context(), handler, a2a.SkillRequest{
		Parameters: params,
		Context: a2a.RequestContext{
			CorrelationID: req.Params.Message.ContextID,
			Timestamp:     time.Now().Format(time.RFC3339),
		},
	})

	taskID := req.Params.Message.MessageID
	if taskID == "" {
		taskID = uuid.NewString()
	}

	result := &a2a.RPCTaskResult{
		Kind:   "task",
		ID:     taskID,
		Status: a2a.RPCTaskStatus{State: a2a.TaskStateCompleted},
		Output: resp.Result,
	}
	if resp.Status == a2a.StatusError {
		result.Status.State = a2a.TaskStateFailed
		result.Error = resp.Error
	}

	c.JSON(http.StatusOK, a2a.RPCResponse{JSONRPC: "2.0", ID: req.ID, Result: result})
}

// extractSkillCall resolves the target skill from the request metadata,
// falling back to a JSON payload in the first text part.
func extractSkillCall(p a2a.RPCParams) (string, map[string]any, error) {
	if p.Metadata != nil {
		if skill, ok := p.Metadata["skill"].(string); ok && skill != "" {
			params, _ := p.Metadata["parameters"].(map[string]any)
			return skill, params, nil
		}
	}

	for _, part := range p.Message.Parts {
		if part.Kind != "text" || part.Text == "" {
			continue
		}
		var call struct {
			Skill      string         `json:"skill"`
			Parameters map[string]any `json:"parameters"`
		}
		if err := json.Unmarshal([]byte(part.Text), &call); err == nil && call.Skill != "" {
			return call.Skill, call.Parameters, nil
		}
	}

	return "", nil, errors.New("no skill named in metadata or message parts")
}

func rpcErrorResponse(id json.RawMessage, code int, message string) a2a.RPCResponse {
	return a2a.RPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &a2a.RPCError{Code: code, Message: message},
	}
}
