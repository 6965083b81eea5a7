// Package a2a defines the agent-to-agent protocol: Agent Cards, skill
// invocation payloads, and the JSON-RPC message/send envelope, plus an
// HTTP client guarded by per-endpoint circuit breakers.
package a2a

import "encoding/json"

// AgentCard is the self-description served at /.well-known/agent.json.
type AgentCard struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Version      string       `json:"version"`
	URL          string       `json:"url"`
	Provider     Provider     `json:"provider"`
	Capabilities Capabilities `json:"capabilities"`
	Skills       []Skill      `json:"skills"`
}

// Provider identifies the organisation behind an agent.
type Provider struct {
	Organization string `json:"organization"`
	URL          string `json:"url,omitempty"`
}

// Capabilities advertises protocol-level features.
type Capabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

// Skill describes one operation an agent exposes.
type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	InputModes  []string `json:"inputModes"`
	OutputModes []string `json:"outputModes"`
	Examples    []string `json:"examples,omitempty"`
}

// RequestContext rides along with every skill invocation.
type RequestContext struct {
	CorrelationID string `json:"correlation_id"`
	Timestamp     string `json:"timestamp"`
	TestMode      bool   `json:"test_mode,omitempty"`
}

// SkillRequest is the body of POST /skills/{name}.
type SkillRequest struct {
	Parameters map[string]any `json:"parameters"`
	Context    RequestContext `json:"context"`
}

// Skill response statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// SkillResponse is the body every skill invocation returns, including
// handled errors (HTTP 200 with status "error").
type SkillResponse struct {
	Status    string         `json:"status"`
	Result    map[string]any `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	Timestamp string         `json:"timestamp"`
}

// JSON-RPC 2.0 envelope for the /a2a endpoint.

// RPCRequest is a JSON-RPC request carrying a message/send call.
type RPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  RPCParams       `json:"params"`
	ID      json.RawMessage `json:"id"`
}

// RPCParams holds the message and optional routing metadata.
type RPCParams struct {
	Message  RPCMessage     `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// RPCMessage is an A2A protocol message.
type RPCMessage struct {
	Role      string    `json:"role"`
	Parts     []RPCPart `json:"parts"`
	MessageID string    `json:"messageId"`
	ContextID string    `json:"contextId,omitempty"`
}

// RPCPart is one part of a message. Only text parts are used.
type RPCPart struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// RPCResponse is a JSON-RPC response.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  *RPCTaskResult  `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCTaskResult is the result payload of a message/send call.
type RPCTaskResult struct {
	Kind   string         `json:"kind"`
	ID     string         `json:"id"`
	Status RPCTaskStatus  `json:"status"`
	Output map[string]any `json:"output,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// RPCTaskStatus wraps the task state.
type RPCTaskStatus struct {
	State string `json:"state"`
}

// JSON-RPC task states.
const (
	TaskStateCompleted = "completed"
	TaskStateFailed    = "failed"
)

// RPCError is a JSON-RPC error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON-RPC error codes.
const (
	RPCCodeParseError     = -32700
	RPCCodeInvalidRequest = -32600
	RPCCodeMethodNotFound = -32601
	RPCCodeInvalidParams  = -32602
	RPCCodeInternalError  = -32603
)
