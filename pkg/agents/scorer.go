package agents

import (
	"context"
	"strings"
	"unicode"
)

// BlendedScorer combines an exact keyword component with a lexical
// overlap component. The keyword component is the fraction of topics
// whose words all appear in the text; the overlap component measures
// how much of the combined topic vocabulary the text covers, a cheap
// stand-in for semantic similarity that keeps the agent dependency-free.
// Weights are configurable and must sum to 1.
type BlendedScorer struct {
	KeywordWeight  float64
	SemanticWeight float64
}

// NewBlendedScorer builds a scorer with the configured weights.
func NewBlendedScorer(keywordWeight, semanticWeight float64) *BlendedScorer {
	return &BlendedScorer{KeywordWeight: keywordWeight, SemanticWeight: semanticWeight}
}

// Score implements RelevanceScorer.
func (s *BlendedScorer) Score(_ context.Context, text string, topics []string) (float64, []string, error) {
	if len(topics) == 0 {
		return 0, nil, nil
	}

	textTokens := tokenSet(text)

	matched := make([]string, 0, len(topics))
	vocabulary := make(map[string]struct{})

	for _, topic := range topics {
		topicTokens := tokenize(topic)
		if len(topicTokens) == 0 {
			continue
		}

		allPresent := true
		for _, token := range topicTokens {
			vocabulary[token] = struct{}{}
			if _, ok := textTokens[token]; !ok {
				allPresent = false
			}
		}
		if allPresent {
			matched = append(matched, topic)
		}
	}
	if len(vocabulary) == 0 {
		return 0, nil, nil
	}

	covered := 0
	for token := range vocabulary {
		if _, ok := textTokens[token]; ok {
			covered++
		}
	}

	keywordScore := float64(len(matched)) / float64(len(topics))
	overlapScore := float64(covered) / float64(len(vocabulary))

	score := keywordScore*s.KeywordWeight + overlapScore*s.SemanticWeight
	return score, matched, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range tokenize(text) {
		set[token] = struct{}{}
	}
	return set
}
