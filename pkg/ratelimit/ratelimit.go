// Package ratelimit implements a per-client-IP sliding-window limiter
// with burst, per-minute and per-hour windows. Loopback and private
// ranges are whitelisted so intra-cluster agent traffic is never
// throttled.
package ratelimit

import (
	"fmt"
	"net"
	"sync"
	"time"
)

const burstWindow = 10 * time.Second

// Config holds the window limits and the whitelist.
type Config struct {
	BurstLimit        int // requests in the last 10 s
	RequestsPerMinute int
	RequestsPerHour   int
	WhitelistCIDRs    []string
}

// Decision is the outcome of one Allow check.
type Decision struct {
	Allowed bool

	// Window names the violated window when not allowed ("burst",
	// "minute", "hour").
	Window string

	// RetryAfter is how long until the violated window frees a slot.
	RetryAfter time.Duration

	// Limit and Remaining describe the tightest window for the
	// X-RateLimit-* response headers.
	Limit     int
	Remaining int
}

// Limiter tracks request timestamps per client IP.
type Limiter struct {
	cfg       Config
	whitelist []*net.IPNet

	mu      sync.Mutex
	clients map[string][]time.Time

	// now is replaceable in tests
	now func() time.Time
}

// New builds a Limiter. Malformed whitelist entries are rejected so a
// typo cannot silently open or close the limiter.
func New(cfg Config) (*Limiter, error) {
	whitelist := make([]*net.IPNet, 0, len(cfg.WhitelistCIDRs))
	for _, cidr := range cfg.WhitelistCIDRs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid whitelist CIDR %q: %w", cidr, err)
		}
		whitelist = append(whitelist, ipNet)
	}
	return &Limiter{
		cfg:       cfg,
		whitelist: whitelist,
		clients:   make(map[string][]time.Time),
		now:       time.Now,
	}, nil
}

// Allow records a request from clientIP and decides whether it passes.
func (l *Limiter) Allow(clientIP string) Decision {
	if l.isWhitelisted(clientIP) {
		return Decision{Allowed: true, Limit: l.cfg.BurstLimit, Remaining: l.cfg.BurstLimit}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	history := pruneBefore(l.clients[clientIP], now.Add(-time.Hour))

	type window struct {
		name  string
		span  time.Duration
		limit int
	}
	windows := []window{
		{"burst", burstWindow, l.cfg.BurstLimit},
		{"minute", time.Minute, l.cfg.RequestsPerMinute},
		{"hour", time.Hour, l.cfg.RequestsPerHour},
	}

	decision := Decision{Allowed: true, Limit: l.cfg.BurstLimit, Remaining: l.cfg.BurstLimit}
	for _, w := range windows {
		inWindow, oldest := countSince(history, now.Add(-w.span))
		remaining := w.limit - inWindow
		if decision.Allowed && remaining-1 < decision.Remaining {
			decision.Limit = w.limit
			decision.Remaining = remaining - 1
		}
		if inWindow >= w.limit {
			retryAfter := oldest.Add(w.span).Sub(now)
			if retryAfter < 0 {
				retryAfter = 0
			}
			l.clients[clientIP] = history
			return Decision{
				Allowed:    false,
				Window:     w.name,
				RetryAfter: retryAfter,
				Limit:      w.limit,
				Remaining:  0,
			}
		}
	}

	l.clients[clientIP] = append(history, now)
	if decision.Remaining < 0 {
		decision.Remaining = 0
	}
	return decision
}

// isWhitelisted reports whether the IP falls in any whitelisted range.
// Unparseable addresses are not whitelisted.
func (l *Limiter) isWhitelisted(clientIP string) bool {
	ip := net.ParseIP(clientIP)
	if ip == nil {
		return false
	}
	for _, ipNet := range l.whitelist {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

// pruneBefore drops timestamps older than cutoff. History is
// append-only, so the slice stays sorted.
func pruneBefore(history []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(history) && history[i].Before(cutoff) {
		i++
	}
	return history[i:]
}

// countSince returns the number of timestamps at or after cutoff and
// the oldest of them.
func countSince(history []time.Time, cutoff time.Time) (int, time.Time) {
	for i, ts := range history {
		if !ts.Before(cutoff) {
			return len(history) - i, ts
		}
	}
	return 0, time.Time{}
}
