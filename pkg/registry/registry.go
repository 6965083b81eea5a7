// Package registry implements the Redis-backed service registry agents
// use to find each other. Each agent publishes a hash under agent:{type}
// with a TTL; a stopped refresh loop lets the key expire, so dead agents
// drop out of discovery on their own.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "agent:"

// ErrAgentNotRegistered is returned by Lookup when no live entry exists
// for the requested agent type.
var ErrAgentNotRegistered = errors.New("agent not registered")

// Entry is one published agent record.
type Entry struct {
	AgentType   string    `json:"agent_type"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	URL         string    `json:"url"`
	Card        string    `json:"card,omitempty"`
	HeartbeatAt time.Time `json:"heartbeat_at"`
}

// Registry publishes and discovers agent entries.
type Registry struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Registry from a Redis URL. The entry TTL is twice the
// heartbeat interval, so one missed refresh never drops a live agent.
func New(redisURL string, heartbeatInterval time.Duration) (*Registry, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return &Registry{
		client: redis.NewClient(opts),
		ttl:    2 * heartbeatInterval,
	}, nil
}

// NewWithClient wraps an existing Redis client (useful for testing).
func NewWithClient(client *redis.Client, heartbeatInterval time.Duration) *Registry {
	return &Registry{client: client, ttl: 2 * heartbeatInterval}
}

// Close releases the underlying Redis connection.
func (r *Registry) Close() error {
	return r.client.Close()
}

// Ping verifies the Redis connection.
func (r *Registry) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// Register publishes the agent's entry, replacing any previous one.
// Heartbeat is an alias: both write the full hash and reset the TTL, so
// a registry lost to a Redis restart heals on the next refresh.
func (r *Registry) Register(ctx context.Context, entry Entry) error {
	key := keyPrefix + entry.AgentType

	fields := map[string]any{
		"url":          entry.URL,
		"name":         entry.Name,
		"version":      entry.Version,
		"heartbeat_at": time.Now().Format(time.RFC3339Nano),
	}
	if entry.Card != "" {
		fields["card"] = entry.Card
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to register agent %s: %w", entry.AgentType, err)
	}
	return nil
}

// Heartbeat refreshes the agent's entry and its TTL.
func (r *Registry) Heartbeat(ctx context.Context, entry Entry) error {
	return r.Register(ctx, entry)
}

// Deregister removes the agent's entry. Called on graceful shutdown;
// a crash simply lets the TTL expire.
func (r *Registry) Deregister(ctx context.Context, agentType string) error {
	if err := r.client.Del(ctx, keyPrefix+agentType).Err(); err != nil {
		return fmt.Errorf("failed to deregister agent %s: %w", agentType, err)
	}
	return nil
}

// Lookup returns the live entry for an agent type.
func (r *Registry) Lookup(ctx context.Context, agentType string) (*Entry, error) {
	fields, err := r.client.HGetAll(ctx, keyPrefix+agentType).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to lookup agent %s: %w", agentType, err)
	}
	if len(fields) == 0 {
		return nil, ErrAgentNotRegistered
	}
	return entryFromHash(agentType, fields), nil
}

// Discover returns every live agent entry.
func (r *Registry) Discover(ctx context.Context) ([]Entry, error) {
	var (
		entries []Entry
		cursor  uint64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan registry keys: %w", err)
		}

		for _, key := range keys {
			fields, err := r.client.HGetAll(ctx, key).Result()
			if err != nil {
				return nil, fmt.Errorf("failed to read registry key %s: %w", key, err)
			}
			// Entry expired between SCAN and HGETALL
			if len(fields) == 0 {
				continue
			}
			entries = append(entries, *entryFromHash(strings.TrimPrefix(key, keyPrefix), fields))
		}

		cursor = next
		if cursor == 0 {
			return entries, nil
		}
	}
}

// entryFromHash rebuilds an Entry from the stored hash fields.
func entryFromHash(agentType string, fields map[string]string) *Entry {
	entry := &Entry{
		AgentType: agentType,
		Name:      fields["name"],
		Version:   fields["version"],
		URL:       fields["url"],
		Card:      fields["card"],
	}
	if raw := fields["heartbeat_at"]; raw != "" {
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			slog.Warn("Malformed heartbeat timestamp in registry",
				"agent_type", agentType, "value", raw)
		} else {
			entry.HeartbeatAt = ts
		}
	}
	return entry
}
