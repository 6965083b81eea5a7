package registry

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRegistry(t *testing.T) (*Registry, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client, 30*time.Second), mr
}

func TestRegisterAndLookup(t *testing.T) {
	reg, _ := setupRegistry(t)
	ctx := context.Background()

	err := reg.Register(ctx, Entry{
		AgentType: "retrieval",
		Name:      "Reddit Retrieval Agent",
		Version:   "1.0.0",
		URL:       "http://localhost:8001",
		Card:      `{"name":"Reddit Retrieval Agent"}`,
	})
	require.NoError(t, err)

	entry, err := reg.Lookup(ctx, "retrieval")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8001", entry.URL)
	assert.Equal(t, "Reddit Retrieval Agent", entry.Name)
	assert.Equal(t, "1.0.0", entry.Version)
	assert.Contains(t, entry.Card, "Retrieval")
	assert.False(t, entry.HeartbeatAt.IsZero())
}

func TestLookup_NotRegistered(t *testing.T) {
	reg, _ := setupRegistry(t)

	_, err := reg.Lookup(context.Background(), "alert")
	assert.ErrorIs(t, err, ErrAgentNotRegistered)
}

func TestHeartbeat_RefreshesTTL(t *testing.T) {
	reg, mr := setupRegistry(t)
	ctx := context.Background()

	entry := Entry{AgentType: "filter", Name: "Filter Agent", URL: "http://localhost:8002"}
	require.NoError(t, reg.Register(ctx, entry))

	// Let most of the 60s TTL elapse, then heartbeat; another near-full
	// TTL must pass without the entry expiring.
	mr.FastForward(45 * time.Second)
	require.NoError(t, reg.Heartbeat(ctx, entry))

	mr.FastForward(45 * time.Second)
	found, err := reg.Lookup(ctx, "filter")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8002", found.URL)
}

func TestEntry_ExpiresWithoutHeartbeat(t *testing.T) {
	reg, mr := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, Entry{AgentType: "summarize", URL: "http://localhost:8003"}))

	// TTL is twice the 30s heartbeat interval.
	mr.FastForward(61 * time.Second)

	_, err := reg.Lookup(ctx, "summarize")
	assert.ErrorIs(t, err, ErrAgentNotRegistered)
}

func TestDeregister(t *testing.T) {
	reg, _ := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, Entry{AgentType: "alert", URL: "http://localhost:8004"}))
	require.NoError(t, reg.Deregister(ctx, "alert"))

	_, err := reg.Lookup(ctx, "alert")
	assert.ErrorIs(t, err, ErrAgentNotRegistered)
}

func TestDiscover_ListsAllLiveAgents(t *testing.T) {
	reg, _ := setupRegistry(t)
	ctx := context.Background()

	for _, at := range []string{"coordinator", "retrieval", "filter"} {
		require.NoError(t, reg.Register(ctx, Entry{AgentType: at, URL: "http://localhost/" + at}))
	}

	entries, err := reg.Discover(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	types := make(map[string]bool, len(entries))
	for _, e := range entries {
		types[e.AgentType] = true
	}
	assert.True(t, types["coordinator"])
	assert.True(t, types["retrieval"])
	assert.True(t, types["filter"])
}

func TestDiscover_EmptyRegistry(t *testing.T) {
	reg, _ := setupRegistry(t)

	entries, err := reg.Discover(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHeartbeat_RecreatesMissingEntry(t *testing.T) {
	reg, mr := setupRegistry(t)
	ctx := context.Background()

	entry := Entry{AgentType: "retrieval", URL: "http://localhost:8001"}
	require.NoError(t, reg.Register(ctx, entry))

	// Simulate a Redis flush (restart without persistence).
	mr.FlushAll()

	require.NoError(t, reg.Heartbeat(ctx, entry))
	found, err := reg.Lookup(ctx, "retrieval")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8001", found.URL)
}
