package events

import (
	"time"

	"github.com/fairlens/fairlens/pkg/models"
)

// StartPayload announces that an analysis run has begun.
type StartPayload struct {
	Type       string `json:"type"` // always TypeStart
	ExerciseID int64  `json:"exercise_id"`
	Total      int    `json:"total"`     // teams in this run
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// UpdatePayload carries one finished team's result. Reports are emitted
// whole; clients never see a partially-filled team.
type UpdatePayload struct {
	Type       string            `json:"type"` // always TypeUpdate
	ExerciseID int64             `json:"exercise_id"`
	Processed  int               `json:"processed"`
	Total      int               `json:"total"`
	Data       models.TeamResult `json:"data"`
	Timestamp  string            `json:"timestamp"`
}

// DonePayload terminates a successful run. Tokens sums the LLM usage of
// every team rated in this run.
type DonePayload struct {
	Type       string             `json:"type"` // always TypeDone
	ExerciseID int64              `json:"exercise_id"`
	Processed  int                `json:"processed"`
	Tokens     models.TokenTotals `json:"tokens"`
	Timestamp  string             `json:"timestamp"`
}

// ErrorPayload terminates a failed run.
type ErrorPayload struct {
	Type       string `json:"type"` // always TypeError
	ExerciseID int64  `json:"exercise_id"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// AlreadyRunningPayload is sent once to a subscriber that attached while
// a run was in flight; live progress follows on the same stream. It is
// never broadcast or persisted.
type AlreadyRunningPayload struct {
	Type       string `json:"type"` // always TypeAlreadyRunning
	ExerciseID int64  `json:"exercise_id"`
	Processed  int    `json:"processed"`
	Total      int    `json:"total"`
	Timestamp  string `json:"timestamp"`
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
