package models

import "time"

// Member is a registered student on a team.
type Member struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Team is one participation of a programming exercise: the student pair
// (or group) plus their repository.
type Team struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	RepositoryURI string   `json:"repository_uri"`
	Members       []Member `json:"members"`
}

// AnalysisStage labels the orchestrator-visible step a team is currently in.
type AnalysisStage string

// Per-team pipeline stages, in execution order.
const (
	StageDownloading  AnalysisStage = "DOWNLOADING"
	StageGitAnalyzing AnalysisStage = "GIT_ANALYZING"
	StageAIAnalyzing  AnalysisStage = "AI_ANALYZING"
	StageDone         AnalysisStage = "DONE"
)

// TeamResult is the streamed per-team outcome: the report trimmed to what
// the live client renders.
type TeamResult struct {
	TeamID       int64            `json:"team_id"`
	TeamName     string           `json:"team_name"`
	CQI          *float64         `json:"cqi,omitempty"`
	BalanceScore float64          `json:"balance_score"`
	Flags        []Flag           `json:"flags"`
	IsSuspicious bool             `json:"is_suspicious"`
	Components   *ComponentScores `json:"components,omitempty"`
	AnalyzedAt   time.Time        `json:"analyzed_at"`
	Error        string           `json:"error,omitempty"`
}
