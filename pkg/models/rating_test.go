package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenTotals_MergeIsAssociativeWithIdentity(t *testing.T) {
	a := TokenTotals{LLMCalls: 3, CallsWithUsage: 2, PromptTokens: 600, CompletionTokens: 60, TotalTokens: 660}
	b := TokenTotals{LLMCalls: 1, CallsWithUsage: 1, PromptTokens: 200, CompletionTokens: 20, TotalTokens: 220}
	c := TokenTotals{LLMCalls: 4, CallsWithUsage: 0}

	assert.Equal(t, a.Merge(b).Merge(c), a.Merge(b.Merge(c)))

	zero := TokenTotals{}
	assert.Equal(t, a, a.Merge(zero))
	assert.Equal(t, a, zero.Merge(a))
}

func TestTokenTotals_MergeAgreesWithAdd(t *testing.T) {
	usages := []TokenUsage{
		{Model: "judge", PromptTokens: 300, CompletionTokens: 30, TotalTokens: 330, UsageAvailable: true},
		{Model: "judge"},
		{Model: "judge", PromptTokens: 100, CompletionTokens: 10, TotalTokens: 110, UsageAvailable: true},
	}

	// Folding all calls into one total must equal merging per-call totals.
	var folded TokenTotals
	merged := TokenTotals{}
	for _, u := range usages {
		folded = folded.Add(u)
		merged = merged.Merge(TokenTotals{}.Add(u))
	}
	assert.Equal(t, folded, merged)
	assert.Equal(t, 3, folded.LLMCalls)
	assert.Equal(t, 2, folded.CallsWithUsage)
	assert.Equal(t, 440, folded.TotalTokens)
}

func TestEffortRating_WeightedEffortBounds(t *testing.T) {
	assert.InDelta(t, 10.0, EffortRating{EffortScore: 10, Complexity: 10, Novelty: 10}.WeightedEffort(), 1e-9)
	assert.InDelta(t, 0.55, EffortRating{EffortScore: 1, Complexity: 1, Novelty: 1}.WeightedEffort(), 1e-9)
	assert.Zero(t, EffortRating{}.WeightedEffort())
}
