// Package state persists the per-exercise analysis run state. The
// database row is the single source of truth: API handlers, the
// orchestrator, and cancellation all go through it, so a restarted
// process picks up exactly where the previous one stopped.
package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fairlens/fairlens/ent"
	"github.com/fairlens/fairlens/ent/analysisstatus"
	"github.com/fairlens/fairlens/pkg/models"
)

// ErrAlreadyRunning is returned by StartAnalysis when the exercise is
// already being analyzed.
var ErrAlreadyRunning = errors.New("analysis already running")

// RunState is the externally visible run state of an exercise.
type RunState string

// Run states.
const (
	StateIdle    RunState = "IDLE"
	StateRunning RunState = "RUNNING"
	StatePaused  RunState = "PAUSED"
	StateDone    RunState = "DONE"
	StateError   RunState = "ERROR"
)

// Status is a snapshot of one exercise's run state.
type Status struct {
	ExerciseID      int64      `json:"exercise_id"`
	State           RunState   `json:"state"`
	TotalTeams      int        `json:"total_teams"`
	ProcessedTeams  int        `json:"processed_teams"`
	CurrentTeamName string     `json:"current_team_name,omitempty"`
	CurrentStage    string     `json:"current_stage,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	LastUpdatedAt   time.Time  `json:"last_updated_at"`
	ErrorMessage    string     `json:"error_message,omitempty"`
}

// Service drives the analysis state machine on top of the status table.
// All transitions are guarded conditional updates so two processes can
// never both believe they own a run.
type Service struct {
	client *ent.Client
}

// NewService creates a new state Service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// StartAnalysis transitions the exercise into RUNNING. A PAUSED run is
// resumed with its progress counters intact and resumed=true; IDLE,
// DONE, and ERROR start a fresh run. RUNNING returns ErrAlreadyRunning.
func (s *Service) StartAnalysis(ctx context.Context, exerciseID int64, totalTeams int) (resumed bool, err error) {
	row, err := s.client.AnalysisStatus.Query().
		Where(analysisstatus.ExerciseIDEQ(exerciseID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = s.client.AnalysisStatus.Create().
			SetExerciseID(exerciseID).
			SetState(analysisstatus.StateRunning).
			SetTotalTeams(totalTeams).
			SetStartedAt(time.Now()).
			Save(ctx)
		if ent.IsConstraintError(err) {
			// Lost the race against a concurrent start.
			return false, ErrAlreadyRunning
		}
		if err != nil {
			return false, fmt.Errorf("creating analysis status: %w", err)
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying analysis status: %w", err)
	}

	switch row.State {
	case analysisstatus.StateRunning:
		return false, ErrAlreadyRunning

	case analysisstatus.StatePaused:
		n, err := s.client.AnalysisStatus.Update().
			Where(
				analysisstatus.ExerciseIDEQ(exerciseID),
				analysisstatus.StateEQ(analysisstatus.StatePaused),
			).
			SetState(analysisstatus.StateRunning).
			SetTotalTeams(totalTeams).
			ClearErrorMessage().
			Save(ctx)
		if err != nil {
			return false, fmt.Errorf("resuming analysis: %w", err)
		}
		if n == 0 {
			return false, ErrAlreadyRunning
		}
		return true, nil

	default:
		n, err := s.client.AnalysisStatus.Update().
			Where(
				analysisstatus.ExerciseIDEQ(exerciseID),
				analysisstatus.StateNEQ(analysisstatus.StateRunning),
			).
			SetState(analysisstatus.StateRunning).
			SetTotalTeams(totalTeams).
			SetProcessedTeams(0).
			SetStartedAt(time.Now()).
			ClearCurrentTeamName().
			ClearCurrentStage().
			ClearErrorMessage().
			Save(ctx)
		if err != nil {
			return false, fmt.Errorf("starting analysis: %w", err)
		}
		if n == 0 {
			return false, ErrAlreadyRunning
		}
		return false, nil
	}
}

// SetTotalTeams records the size of the team set once it is known. The
// count arrives after StartAnalysis because the platform fetch happens
// inside the reserved run.
func (s *Service) SetTotalTeams(ctx context.Context, exerciseID int64, total int) error {
	_, err := s.client.AnalysisStatus.Update().
		Where(
			analysisstatus.ExerciseIDEQ(exerciseID),
			analysisstatus.StateEQ(analysisstatus.StateRunning),
		).
		SetTotalTeams(total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("recording team total: %w", err)
	}
	return nil
}

// UpdateProgress records the processed count and the team currently in
// flight. It only applies while the run is RUNNING; a progress report
// arriving after a cancel is silently dropped.
func (s *Service) UpdateProgress(ctx context.Context, exerciseID int64, processed int, teamName string, stage models.AnalysisStage) error {
	_, err := s.client.AnalysisStatus.Update().
		Where(
			analysisstatus.ExerciseIDEQ(exerciseID),
			analysisstatus.StateEQ(analysisstatus.StateRunning),
		).
		SetProcessedTeams(processed).
		SetCurrentTeamName(teamName).
		SetCurrentStage(string(stage)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("updating progress: %w", err)
	}
	return nil
}

// CancelAnalysis moves a RUNNING exercise to PAUSED, preserving progress
// so a later start resumes. Cancelling a non-running exercise is a no-op.
func (s *Service) CancelAnalysis(ctx context.Context, exerciseID int64) error {
	_, err := s.client.AnalysisStatus.Update().
		Where(
			analysisstatus.ExerciseIDEQ(exerciseID),
			analysisstatus.StateEQ(analysisstatus.StateRunning),
		).
		SetState(analysisstatus.StatePaused).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancelling analysis: %w", err)
	}
	return nil
}

// CompleteAnalysis moves a RUNNING exercise to DONE.
func (s *Service) CompleteAnalysis(ctx context.Context, exerciseID int64) error {
	_, err := s.client.AnalysisStatus.Update().
		Where(
			analysisstatus.ExerciseIDEQ(exerciseID),
			analysisstatus.StateEQ(analysisstatus.StateRunning),
		).
		SetState(analysisstatus.StateDone).
		ClearCurrentTeamName().
		ClearCurrentStage().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("completing analysis: %w", err)
	}
	return nil
}

// FailAnalysis moves a RUNNING exercise to ERROR with the cause.
func (s *Service) FailAnalysis(ctx context.Context, exerciseID int64, message string) error {
	_, err := s.client.AnalysisStatus.Update().
		Where(
			analysisstatus.ExerciseIDEQ(exerciseID),
			analysisstatus.StateEQ(analysisstatus.StateRunning),
		).
		SetState(analysisstatus.StateError).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failing analysis: %w", err)
	}
	return nil
}

// Reset returns the exercise to IDLE with zeroed counters.
func (s *Service) Reset(ctx context.Context, exerciseID int64) error {
	_, err := s.client.AnalysisStatus.Update().
		Where(analysisstatus.ExerciseIDEQ(exerciseID)).
		SetState(analysisstatus.StateIdle).
		SetTotalTeams(0).
		SetProcessedTeams(0).
		ClearCurrentTeamName().
		ClearCurrentStage().
		ClearStartedAt().
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("resetting analysis status: %w", err)
	}
	return nil
}

// Get returns the exercise's status snapshot. An exercise that was never
// analyzed reports IDLE.
func (s *Service) Get(ctx context.Context, exerciseID int64) (*Status, error) {
	row, err := s.client.AnalysisStatus.Query().
		Where(analysisstatus.ExerciseIDEQ(exerciseID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &Status{ExerciseID: exerciseID, State: StateIdle}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying analysis status: %w", err)
	}
	return toStatus(row), nil
}

// IsRunning reports whether the exercise is currently RUNNING. Workers
// poll this between pipeline stages to observe cancellation.
func (s *Service) IsRunning(ctx context.Context, exerciseID int64) (bool, error) {
	n, err := s.client.AnalysisStatus.Query().
		Where(
			analysisstatus.ExerciseIDEQ(exerciseID),
			analysisstatus.StateEQ(analysisstatus.StateRunning),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("querying analysis status: %w", err)
	}
	return n > 0, nil
}

// PromoteRunningToPaused demotes every RUNNING exercise to PAUSED. Called
// once at process startup: a run marked RUNNING at that point was
// orphaned by a crash, and PAUSED lets the next start resume it.
func (s *Service) PromoteRunningToPaused(ctx context.Context) (int, error) {
	n, err := s.client.AnalysisStatus.Update().
		Where(analysisstatus.StateEQ(analysisstatus.StateRunning)).
		SetState(analysisstatus.StatePaused).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("promoting orphaned runs: %w", err)
	}
	return n, nil
}

func toStatus(row *ent.AnalysisStatus) *Status {
	status := &Status{
		ExerciseID:     row.ExerciseID,
		State:          RunState(strings.ToUpper(string(row.State))),
		TotalTeams:     row.TotalTeams,
		ProcessedTeams: row.ProcessedTeams,
		StartedAt:      row.StartedAt,
		LastUpdatedAt:  row.LastUpdatedAt,
	}
	if row.CurrentTeamName != nil {
		status.CurrentTeamName = *row.CurrentTeamName
	}
	if row.CurrentStage != nil {
		status.CurrentStage = *row.CurrentStage
	}
	if row.ErrorMessage != nil {
		status.ErrorMessage = *row.ErrorMessage
	}
	return status
}
