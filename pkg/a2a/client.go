package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redscout/redscout/pkg/breaker"
)

// maxResponseBytes bounds how much of a skill response is read.
const maxResponseBytes = 10 << 20

// InvokeError is a failed skill invocation. Retriable tells the caller
// whether scheduling a retry can help.
type InvokeError struct {
	Message     string
	StatusCode  int
	Retriable   bool
	CircuitOpen bool
}

func (e *InvokeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("skill invocation failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("skill invocation failed: %s", e.Message)
}

// Client invokes skills on remote agents. Every call runs through the
// circuit breaker keyed on the target agent and endpoint.
type Client struct {
	httpClient *http.Client
	apiKey     string
	timeout    time.Duration
	breakers   *breaker.Registry
}

// NewClient builds a Client. The apiKey is sent as the bearer token on
// every request. timeout backstops calls whose context carries no
// deadline; a caller-supplied deadline always wins, so per-stage
// budgets above the default are honoured.
func NewClient(apiKey string, timeout time.Duration, breakers *breaker.Registry) *Client {
	return &Client{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		timeout:    timeout,
		breakers:   breakers,
	}
}

// invokeOutcome carries non-breaker-countable results out of the
// breaker callback: policy rejections and permanent upstream errors are
// successes for the breaker but errors for the caller.
type invokeOutcome struct {
	resp *SkillResponse
	err  error
}

// InvokeSkill calls POST {agentURL}/skills/{skill} and interprets the
// response. The returned error, when non-nil, is an *InvokeError (or
// wraps breaker.ErrCircuitOpen) whose Retriable flag drives the
// caller's retry bookkeeping.
func (c *Client) InvokeSkill(ctx context.Context, agentType, agentURL, skill string, params map[string]any, reqCtx RequestContext) (*SkillResponse, error) {
	if reqCtx.Timestamp == "" {
		reqCtx.Timestamp = time.Now().Format(time.RFC3339)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(SkillRequest{Parameters: params, Context: reqCtx})
	if err != nil {
		return nil, fmt.Errorf("failed to encode skill request: %w", err)
	}

	url := strings.TrimSuffix(agentURL, "/") + "/skills/" + skill
	key := agentType + ":/skills/" + skill

	result, callErr := c.breakers.Call(key, func() (any, error) {
		return c.doInvoke(ctx, url, body)
	})
	if callErr != nil {
		if errors.Is(callErr, breaker.ErrCircuitOpen) {
			return nil, &InvokeError{
				Message:     callErr.Error(),
				Retriable:   true,
				CircuitOpen: true,
			}
		}
		var invokeErr *InvokeError
		if errors.As(callErr, &invokeErr) {
			return nil, invokeErr
		}
		return nil, &InvokeError{Message: callErr.Error(), Retriable: true}
	}

	outcome := result.(invokeOutcome)
	return outcome.resp, outcome.err
}

// doInvoke performs one HTTP exchange. It returns an error only for
// faults the breaker should count; everything else comes back as an
// invokeOutcome.
func (c *Client) doInvoke(ctx context.Context, url string, body []byte) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return invokeOutcome{err: &InvokeError{Message: err.Error()}}, nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if breaker.IsFailureError(err) {
			return nil, &InvokeError{Message: err.Error(), Retriable: true}
		}
		// Caller-initiated cancellation: not the target's fault.
		return invokeOutcome{err: &InvokeError{Message: err.Error()}}, nil
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &InvokeError{Message: fmt.Sprintf("failed to read response: %v", err), Retriable: true}
	}

	if breaker.IsFailureStatus(resp.StatusCode) {
		return nil, &InvokeError{
			Message:    truncate(string(payload), 256),
			StatusCode: resp.StatusCode,
			Retriable:  true,
		}
	}

	if resp.StatusCode != http.StatusOK {
		// Policy rejection (auth, validation). A success for the breaker,
		// a permanent error for the caller.
		return invokeOutcome{err: &InvokeError{
			Message:    truncate(string(payload), 256),
			StatusCode: resp.StatusCode,
		}}, nil
	}

	var sr SkillResponse
	if err := json.Unmarshal(payload, &sr); err != nil {
		return nil, &InvokeError{
			Message:   fmt.Sprintf("malformed skill response: %v", err),
			Retriable: true,
		}
	}

	if sr.Status == StatusError {
		if IsRetriableErrorMessage(sr.Error) {
			// Retriable upstream errors count against the breaker like
			// transport faults.
			return nil, &InvokeError{Message: sr.Error, Retriable: true}
		}
		return invokeOutcome{resp: &sr, err: &InvokeError{Message: sr.Error}}, nil
	}

	return invokeOutcome{resp: &sr}, nil
}

// retriableMarkers are substrings that mark an upstream skill error as
// temporary.
var retriableMarkers = []string{
	"timeout",
	"timed out",
	"temporar",
	"unavailable",
	"connection",
	"rate limit",
	"too many requests",
	"retriable",
	"retry",
}

// IsRetriableErrorMessage classifies an upstream error string. Unknown
// errors are treated as permanent: bad parameters and missing config
// never fix themselves.
func IsRetriableErrorMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range retriableMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
