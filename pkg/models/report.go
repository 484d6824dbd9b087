package models

import "time"

// Flag marks a condition on a team's report that warrants manual review.
type Flag string

// Report flags.
const (
	FlagLateWorkConcentration Flag = "LATE_WORK_CONCENTRATION"
	FlagSoloContributor       Flag = "SOLO_CONTRIBUTOR"
	FlagUnevenDistribution    Flag = "UNEVEN_DISTRIBUTION"
	FlagHighTrivialRatio      Flag = "HIGH_TRIVIAL_RATIO"
	FlagLowConfidenceRatings  Flag = "LOW_CONFIDENCE_RATINGS"
	FlagAnalysisError         Flag = "ANALYSIS_ERROR"
)

// PenaltyKind identifies a CQI penalty rule.
type PenaltyKind string

// Penalty kinds.
const (
	PenaltySoloDevelopment PenaltyKind = "SOLO_DEVELOPMENT"
	PenaltySevereImbalance PenaltyKind = "SEVERE_IMBALANCE"
	PenaltyHighTrivial     PenaltyKind = "HIGH_TRIVIAL"
	PenaltyLowConfidence   PenaltyKind = "LOW_CONFIDENCE"
	PenaltyLateWork        PenaltyKind = "LATE_WORK"
)

// Penalty is one fired penalty rule: a multiplier in (0,1] applied to the
// base score, with the reason it fired.
type Penalty struct {
	Kind       PenaltyKind `json:"kind"`
	Multiplier float64     `json:"multiplier"`
	Reason     string      `json:"reason"`
}

// ComponentScores holds the individual CQI components, each in [0,100].
// PairProgramming is nil when the component is not applicable (team size
// other than two, or no scheduled sessions found).
type ComponentScores struct {
	EffortBalance   float64  `json:"effort_balance"`
	LocBalance      float64  `json:"loc_balance"`
	TemporalSpread  float64  `json:"temporal_spread"`
	OwnershipSpread float64  `json:"ownership_spread"`
	PairProgramming *float64 `json:"pair_programming,omitempty"`
}

// ComponentWeights holds the weights of the four primary components plus
// the optional pair-programming weight.
type ComponentWeights struct {
	Effort          float64 `json:"effort"`
	Loc             float64 `json:"loc"`
	Temporal        float64 `json:"temporal"`
	Ownership       float64 `json:"ownership"`
	PairProgramming float64 `json:"pair_programming"`
}

// FilterSummary counts what the pre-filter did with a team's chunks.
type FilterSummary struct {
	TotalChunks    int            `json:"total_chunks"`
	Analyzed       int            `json:"analyzed"`
	Filtered       int            `json:"filtered"`
	CountsByReason map[string]int `json:"counts_by_reason,omitempty"`
}

// CQIResult is the calculator's output: the final score, its components,
// and the penalty trail that produced it.
type CQIResult struct {
	CQI               float64          `json:"cqi"`
	Components        ComponentScores  `json:"components"`
	Weights           ComponentWeights `json:"weights"`
	Penalties         []Penalty        `json:"penalties"`
	BaseScore         float64          `json:"base_score"`
	PenaltyMultiplier float64          `json:"penalty_multiplier"`
	Reason            string           `json:"reason,omitempty"`
	FilterSummary     *FilterSummary   `json:"filter_summary,omitempty"`
}

// AuthorDetail aggregates one author's contribution.
type AuthorDetail struct {
	AuthorID     int64   `json:"author_id"`
	Email        string  `json:"email"`
	ChunkCount   int     `json:"chunk_count"`
	LinesChanged int     `json:"lines_changed"`
	TotalEffort  float64 `json:"total_effort"`
	EffortShare  float64 `json:"effort_share"`
}

// AnalysisMetadata captures run-level details attached to a report.
type AnalysisMetadata struct {
	AnalyzedAt    time.Time     `json:"analyzed_at"`
	Duration      time.Duration `json:"duration"`
	CommitCount   int           `json:"commit_count"`
	ChunkCount    int           `json:"chunk_count"`
	RatedChunks   int           `json:"rated_chunks"`
	ErrorRatings  int           `json:"error_ratings"`
	TokenTotals   TokenTotals   `json:"token_totals"`
	RaterDisabled bool          `json:"rater_disabled"`
}

// FairnessReport is the complete analysis outcome for one team.
type FairnessReport struct {
	TeamID               int64             `json:"team_id"`
	TeamName             string            `json:"team_name"`
	BalanceScore         float64           `json:"balance_score"`
	EffortByAuthor       map[int64]float64 `json:"effort_by_author"`
	EffortShareByAuthor  map[int64]float64 `json:"effort_share_by_author"`
	Flags                []Flag            `json:"flags"`
	RequiresManualReview bool              `json:"requires_manual_review"`
	AuthorDetails        []AuthorDetail    `json:"author_details"`
	Metadata             AnalysisMetadata  `json:"metadata"`
	AnalyzedChunks       []AnalyzedChunk   `json:"analyzed_chunks"`
	CQIResult            *CQIResult        `json:"cqi_result"`
}

// HasFlag reports whether the report carries the given flag.
func (r *FairnessReport) HasFlag(f Flag) bool {
	for _, have := range r.Flags {
		if have == f {
			return true
		}
	}
	return false
}
