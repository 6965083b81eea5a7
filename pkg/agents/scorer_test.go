package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendedScorer_FullMatch(t *testing.T) {
	scorer := NewBlendedScorer(0.7, 0.3)

	score, matched, err := scorer.Score(context.Background(),
		"Deep dive into golang concurrency with goroutines",
		[]string{"golang concurrency"})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, score, 0.001)
	assert.Equal(t, []string{"golang concurrency"}, matched)
}

func TestBlendedScorer_NoMatch(t *testing.T) {
	scorer := NewBlendedScorer(0.7, 0.3)

	score, matched, err := scorer.Score(context.Background(),
		"Cooking pasta for beginners",
		[]string{"golang concurrency", "kubernetes operators"})
	require.NoError(t, err)

	assert.Zero(t, score)
	assert.Empty(t, matched)
}

func TestBlendedScorer_PartialOverlapScoresBelowFullMatch(t *testing.T) {
	scorer := NewBlendedScorer(0.7, 0.3)

	// "golang" appears but "concurrency" does not: no topic matches
	// exactly, only the overlap component contributes.
	score, matched, err := scorer.Score(context.Background(),
		"Why I like golang for servers",
		[]string{"golang concurrency"})
	require.NoError(t, err)

	assert.Empty(t, matched)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 0.7)
}

func TestBlendedScorer_MatchedSubsetOfTopics(t *testing.T) {
	scorer := NewBlendedScorer(0.7, 0.3)

	score, matched, err := scorer.Score(context.Background(),
		"Kubernetes operators explained",
		[]string{"kubernetes operators", "golang concurrency"})
	require.NoError(t, err)

	assert.Equal(t, []string{"kubernetes operators"}, matched)
	// Half the topics matched exactly, half the vocabulary is covered.
	assert.InDelta(t, 0.7*0.5+0.3*0.5, score, 0.001)
}

func TestBlendedScorer_CaseAndPunctuationInsensitive(t *testing.T) {
	scorer := NewBlendedScorer(0.7, 0.3)

	score, matched, err := scorer.Score(context.Background(),
		"GOLANG, Concurrency!", []string{"golang concurrency"})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, score, 0.001)
	assert.Len(t, matched, 1)
}

func TestBlendedScorer_NoTopics(t *testing.T) {
	scorer := NewBlendedScorer(0.7, 0.3)

	score, matched, err := scorer.Score(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Empty(t, matched)
}

func TestTruncatingSummarizer(t *testing.T) {
	s := TruncatingSummarizer{}

	t.Run("short text unchanged", func(t *testing.T) {
		out, err := s.Summarize(context.Background(), "A short post.", 100)
		require.NoError(t, err)
		assert.Equal(t, "A short post.", out)
	})

	t.Run("long text cut on word boundary", func(t *testing.T) {
		out, err := s.Summarize(context.Background(),
			"one two three four five six seven eight nine ten", 20)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(out), 24)
		assert.True(t, len(out) > 0)
		assert.Contains(t, out, "...")
	})

	t.Run("whitespace collapsed", func(t *testing.T) {
		out, err := s.Summarize(context.Background(), "a\n\n b\t c", 100)
		require.NoError(t, err)
		assert.Equal(t, "a b c", out)
	})
}
