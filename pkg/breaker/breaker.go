// Package breaker wraps outbound agent calls in per-endpoint circuit
// breakers so one dead agent cannot hold every caller on timeouts.
package breaker

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned while a breaker rejects calls fast.
var ErrCircuitOpen = errors.New("circuit breaker open")

// Config tunes every breaker in the registry.
type Config struct {
	// FailureThreshold is the number of failures within the rolling
	// window that trips the breaker.
	FailureThreshold int

	// RecoveryTimeout is how long the breaker stays open before allowing
	// a half-open probe.
	RecoveryTimeout time.Duration
}

// Registry holds one breaker per call target, keyed "agent:endpoint".
// Breakers are created lazily on first use.
type Registry struct {
	cfg Config

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewRegistry creates an empty breaker registry.
func NewRegistry(cfg Config) *Registry {
	return &Registry{
		cfg:      cfg,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Call runs fn through the breaker for key. While the breaker is open
// the call fails fast with ErrCircuitOpen and fn is never invoked.
//
// fn must return an error only for faults the breaker should count:
// network errors, timeouts, and 5xx responses. Client-visible policy
// results (most 4xx) must be returned as values, not errors.
func (r *Registry) Call(key string, fn func() (any, error)) (any, error) {
	result, err := r.breaker(key).Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s", ErrCircuitOpen, key)
		}
		return nil, err
	}
	return result, nil
}

// breaker returns the breaker for key, creating it on first use.
func (r *Registry) breaker(key string) *gobreaker.CircuitBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cb, ok := r.breakers[key]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: key,

		// Single half-open probe
		MaxRequests: 1,

		// Rolling failure window while closed
		Interval: r.cfg.RecoveryTimeout,

		Timeout: r.cfg.RecoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.TotalFailures >= uint32(r.cfg.FailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	})
	r.breakers[key] = cb
	return cb
}

// BreakerStatus is a point-in-time view of one breaker.
type BreakerStatus struct {
	State        string `json:"state"`
	Requests     uint32 `json:"requests"`
	Failures     uint32 `json:"failures"`
	ConsecFails  uint32 `json:"consecutive_failures"`
	TotalSuccess uint32 `json:"total_successes"`
}

// Status reports every known breaker.
func (r *Registry) Status() map[string]BreakerStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]BreakerStatus, len(r.breakers))
	for key, cb := range r.breakers {
		counts := cb.Counts()
		out[key] = BreakerStatus{
			State:        cb.State().String(),
			Requests:     counts.Requests,
			Failures:     counts.TotalFailures,
			ConsecFails:  counts.ConsecutiveFailures,
			TotalSuccess: counts.TotalSuccesses,
		}
	}
	return out
}

// ResetAll discards every breaker. The next call to any key starts from
// a fresh closed breaker.
func (r *Registry) ResetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.breakers = make(map[string]*gobreaker.CircuitBreaker)
}
