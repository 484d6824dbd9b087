package models

// ChunkLabel classifies what kind of work a chunk represents.
type ChunkLabel string

// Chunk labels assigned by the effort rater.
const (
	LabelFeature  ChunkLabel = "FEATURE"
	LabelBugFix   ChunkLabel = "BUG_FIX"
	LabelTest     ChunkLabel = "TEST"
	LabelRefactor ChunkLabel = "REFACTOR"
	LabelTrivial  ChunkLabel = "TRIVIAL"
)

// ValidLabel reports whether l is one of the known chunk labels.
func ValidLabel(l ChunkLabel) bool {
	switch l {
	case LabelFeature, LabelBugFix, LabelTest, LabelRefactor, LabelTrivial:
		return true
	}
	return false
}

// EffortRating is the LLM judge's assessment of one chunk.
// EffortScore, Complexity, and Novelty are in [1,10]; Confidence in [0,1].
type EffortRating struct {
	EffortScore  int        `json:"effort_score"`
	Complexity   int        `json:"complexity"`
	Novelty      int        `json:"novelty"`
	Label        ChunkLabel `json:"label"`
	Confidence   float64    `json:"confidence"`
	Reasoning    string     `json:"reasoning"`
	IsError      bool       `json:"is_error"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

// WeightedEffort re-weights the effort score by complexity and novelty:
// effort × (0.5 + 0.3·complexity/10 + 0.2·novelty/10), bounded to [0,10].
func (r EffortRating) WeightedEffort() float64 {
	w := float64(r.EffortScore) * (0.5 + 0.3*float64(r.Complexity)/10 + 0.2*float64(r.Novelty)/10)
	if w < 0 {
		return 0
	}
	if w > 10 {
		return 10
	}
	return w
}

// DisabledRating is returned when the AI rater is switched off; a neutral
// mid-scale rating with zero confidence so downstream scoring still works.
func DisabledRating() EffortRating {
	return EffortRating{
		EffortScore: 5,
		Complexity:  5,
		Novelty:     5,
		Label:       LabelTrivial,
		Confidence:  0.0,
		Reasoning:   "AI disabled",
	}
}

// TrivialRating is the fallback for unparseable model responses.
func TrivialRating(reason string) EffortRating {
	return EffortRating{
		EffortScore: 1,
		Complexity:  1,
		Novelty:     1,
		Label:       LabelTrivial,
		Confidence:  0.0,
		Reasoning:   reason,
	}
}

// ErrorRating marks a chunk whose rating call failed in transport or
// timed out. The team's analysis continues around it.
func ErrorRating(message string) EffortRating {
	return EffortRating{
		EffortScore:  1,
		Complexity:   1,
		Novelty:      1,
		Label:        LabelTrivial,
		Confidence:   0.0,
		Reasoning:    "rating failed",
		IsError:      true,
		ErrorMessage: message,
	}
}

// TokenUsage is the token accounting of a single LLM call.
type TokenUsage struct {
	Model            string `json:"model"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	UsageAvailable   bool   `json:"usage_available"`
}

// UnavailableUsage records a call whose usage metadata was absent.
func UnavailableUsage(model string) TokenUsage {
	return TokenUsage{Model: model}
}

// TokenTotals accumulates token usage across calls. It forms a monoid
// under Merge with the zero value as identity.
type TokenTotals struct {
	LLMCalls         int `json:"llm_calls"`
	CallsWithUsage   int `json:"calls_with_usage"`
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add folds one call's usage into the totals.
func (t TokenTotals) Add(u TokenUsage) TokenTotals {
	t.LLMCalls++
	if u.UsageAvailable {
		t.CallsWithUsage++
		t.PromptTokens += u.PromptTokens
		t.CompletionTokens += u.CompletionTokens
		t.TotalTokens += u.TotalTokens
	}
	return t
}

// Merge combines two totals. Associative; the zero value is the identity.
func (t TokenTotals) Merge(other TokenTotals) TokenTotals {
	return TokenTotals{
		LLMCalls:         t.LLMCalls + other.LLMCalls,
		CallsWithUsage:   t.CallsWithUsage + other.CallsWithUsage,
		PromptTokens:     t.PromptTokens + other.PromptTokens,
		CompletionTokens: t.CompletionTokens + other.CompletionTokens,
		TotalTokens:      t.TotalTokens + other.TotalTokens,
	}
}
