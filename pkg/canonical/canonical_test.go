package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_KeyOrderIndependent(t *testing.T) {
	a, err := Hash(map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)
	b, err := Hash(map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHash_NestedMaps(t *testing.T) {
	a, err := Hash(map[string]any{
		"outer": map[string]any{"x": []any{1, 2, 3}, "y": "z"},
		"topic": "Claude Code",
	})
	require.NoError(t, err)
	b, err := Hash(map[string]any{
		"topic": "Claude Code",
		"outer": map[string]any{"y": "z", "x": []any{1, 2, 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHash_StructAndMapEquivalent(t *testing.T) {
	type params struct {
		Topic     string `json:"topic"`
		Subreddit string `json:"subreddit"`
		Limit     int    `json:"limit"`
	}

	fromStruct, err := Hash(params{Topic: "golang", Subreddit: "programming", Limit: 25})
	require.NoError(t, err)
	fromMap, err := Hash(map[string]any{
		"limit":     25,
		"subreddit": "programming",
		"topic":     "golang",
	})
	require.NoError(t, err)

	assert.Equal(t, fromStruct, fromMap)
}

func TestHash_DistinguishesValues(t *testing.T) {
	a, err := Hash(map[string]any{"topic": "golang"})
	require.NoError(t, err)
	b, err := Hash(map[string]any{"topic": "rust"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHash_NilAndEmpty(t *testing.T) {
	empty, err := Hash(map[string]any{})
	require.NoError(t, err)
	assert.Len(t, empty, 64)

	null, err := Hash(nil)
	require.NoError(t, err)
	assert.Len(t, null, 64)
	assert.NotEqual(t, empty, null)
}
