// Package orchestrator drives the full analysis run for one exercise: a
// worker pool fans the team list out over the per-team pipeline, streams
// progress through the event pipeline, and keeps the persisted run state
// authoritative so a restarted process resumes instead of repeating work.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/fairlens/fairlens/pkg/attendance"
	"github.com/fairlens/fairlens/pkg/cqi"
	"github.com/fairlens/fairlens/pkg/fairness"
	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/pkg/platform"
	"github.com/fairlens/fairlens/pkg/state"
)

// ErrAlreadyRunning mirrors the state machine's conflict sentinel at the
// orchestrator surface.
var ErrAlreadyRunning = state.ErrAlreadyRunning

// PlatformAPI is the upstream exercise platform. Satisfied by
// platform.Client.
type PlatformAPI interface {
	Participations(ctx context.Context, creds platform.Credentials, exerciseID int64) ([]platform.Participation, error)
	VCSAccessLog(ctx context.Context, creds platform.Credentials, participationID int64) ([]platform.AccessLogEntry, error)
	TutorialSessions(ctx context.Context, creds platform.Credentials, courseID int64) ([]time.Time, error)
	SubmissionDeadline(ctx context.Context, creds platform.Credentials, exerciseID int64) (time.Time, error)
}

// TeamAnalyzer runs the per-team pipeline. Satisfied by fairness.Service.
type TeamAnalyzer interface {
	Analyze(ctx context.Context, req fairness.Request) (*models.FairnessReport, error)
}

// TeamStore persists team registrations and finished reports. Satisfied
// by services.TeamService.
type TeamStore interface {
	RegisterTeams(ctx context.Context, exerciseID int64, teams []models.Team) error
	SaveReport(ctx context.Context, exerciseID int64, team models.Team, report *models.FairnessReport) error
	AnalyzedTeamIDs(ctx context.Context, exerciseID int64) (map[int64]bool, error)
}

// RunState is the analysis state machine. Satisfied by state.Service.
type RunState interface {
	StartAnalysis(ctx context.Context, exerciseID int64, totalTeams int) (resumed bool, err error)
	SetTotalTeams(ctx context.Context, exerciseID int64, total int) error
	UpdateProgress(ctx context.Context, exerciseID int64, processed int, teamName string, stage models.AnalysisStage) error
	CompleteAnalysis(ctx context.Context, exerciseID int64) error
	FailAnalysis(ctx context.Context, exerciseID int64, message string) error
	IsRunning(ctx context.Context, exerciseID int64) (bool, error)
}

// EventSink streams run progress. Satisfied by events.Publisher.
type EventSink interface {
	PublishStart(ctx context.Context, exerciseID int64, total int) error
	PublishUpdate(ctx context.Context, exerciseID int64, processed, total int, result models.TeamResult) error
	PublishDone(ctx context.Context, exerciseID int64, processed int, tokens models.TokenTotals) error
	PublishError(ctx context.Context, exerciseID int64, message string) error
}

// EventJanitor clears a previous run's stored events before a fresh
// start. Satisfied by services.EventService.
type EventJanitor interface {
	CleanupExerciseEvents(ctx context.Context, exerciseID int64) (int, error)
}

// EmailMappings persists access-log email mappings. Satisfied by
// services.EmailMappingService.
type EmailMappings interface {
	Upsert(ctx context.Context, exerciseID int64, gitEmail string, studentID int64, studentName string) error
}

// Deps wires the orchestrator's collaborators.
type Deps struct {
	Platform   PlatformAPI
	Analyzer   TeamAnalyzer
	Teams      TeamStore
	State      RunState
	Events     EventSink
	Janitor    EventJanitor
	Mappings   EmailMappings
	Attendance *attendance.Store
	Workers    int
}

// Orchestrator runs exercise-wide analyses. One instance serves all
// exercises; per-run state lives in the database.
type Orchestrator struct {
	platform   PlatformAPI
	analyzer   TeamAnalyzer
	teams      TeamStore
	state      RunState
	events     EventSink
	janitor    EventJanitor
	mappings   EmailMappings
	attendance *attendance.Store
	workers    int
}

// New creates an Orchestrator. Workers defaults to 4.
func New(d Deps) *Orchestrator {
	workers := d.Workers
	if workers < 1 {
		workers = 4
	}
	if d.Attendance == nil {
		d.Attendance = attendance.NewStore()
	}
	return &Orchestrator{
		platform:   d.Platform,
		analyzer:   d.Analyzer,
		teams:      d.Teams,
		state:      d.State,
		events:     d.Events,
		janitor:    d.Janitor,
		mappings:   d.Mappings,
		attendance: d.Attendance,
		workers:    workers,
	}
}

// Options address one run.
type Options struct {
	ExerciseID int64
	CourseID   int64
	Creds      platform.Credentials
}

// Run executes the analysis for an exercise. It returns ErrAlreadyRunning
// when a run is in flight, and otherwise blocks until the run finishes,
// fails, or is cancelled. Cancellation via the state machine pauses the
// run without a terminal event; ctx cancellation is treated the same way.
func (o *Orchestrator) Run(ctx context.Context, opts Options) error {
	teams, total, done, err := o.prepare(ctx, opts)
	if err != nil {
		return err
	}

	if err := o.events.PublishStart(ctx, opts.ExerciseID, total); err != nil {
		slog.Warn("Failed to publish START event", "exercise_id", opts.ExerciseID, "error", err)
	}

	deadline, err := o.platform.SubmissionDeadline(ctx, opts.Creds, opts.ExerciseID)
	if err != nil {
		slog.Warn("Failed to fetch submission deadline, using commit span",
			"exercise_id", opts.ExerciseID, "error", err)
		deadline = time.Time{}
	}

	sessions, err := o.platform.TutorialSessions(ctx, opts.Creds, opts.CourseID)
	if err != nil {
		slog.Warn("Failed to fetch tutorial sessions, pair component unavailable",
			"course_id", opts.CourseID, "error", err)
	}

	processed, tokens := o.fanOut(ctx, opts, teams, total, done, deadline, sessions)

	running, err := o.state.IsRunning(ctx, opts.ExerciseID)
	if err != nil {
		return fmt.Errorf("checking final run state: %w", err)
	}
	if !running {
		// Cancelled mid-run; the state row is already PAUSED and the
		// next start resumes. No terminal event.
		slog.Info("Analysis run paused", "exercise_id", opts.ExerciseID, "processed", processed)
		return nil
	}

	if err := o.state.CompleteAnalysis(ctx, opts.ExerciseID); err != nil {
		return fmt.Errorf("completing analysis: %w", err)
	}
	if err := o.events.PublishDone(ctx, opts.ExerciseID, processed, tokens); err != nil {
		slog.Warn("Failed to publish DONE event", "exercise_id", opts.ExerciseID, "error", err)
	}
	slog.Info("Analysis run complete",
		"exercise_id", opts.ExerciseID,
		"teams", processed,
		"llm_calls", tokens.LLMCalls,
		"total_tokens", tokens.TotalTokens)
	return nil
}

// prepare transitions the state machine, fetches the team set, and
// applies resume filtering. It returns the teams still to analyze, the
// full team count, and the number already done from a previous run.
// Failures after the state transition move the run to ERROR and emit a
// terminal event.
func (o *Orchestrator) prepare(ctx context.Context, opts Options) ([]analysisTeam, int, int, error) {
	resumed, err := o.state.StartAnalysis(ctx, opts.ExerciseID, 0)
	if err != nil {
		return nil, 0, 0, err
	}

	if !resumed {
		if _, err := o.janitor.CleanupExerciseEvents(ctx, opts.ExerciseID); err != nil {
			slog.Warn("Failed to clean up previous run's events",
				"exercise_id", opts.ExerciseID, "error", err)
		}
	}

	participations, err := o.platform.Participations(ctx, opts.Creds, opts.ExerciseID)
	if err != nil {
		return nil, 0, 0, o.fail(ctx, opts.ExerciseID, fmt.Errorf("fetching participations: %w", err))
	}

	var all []models.Team
	var candidates []analysisTeam
	for _, p := range participations {
		if p.Team.RepositoryURI == "" {
			continue
		}
		all = append(all, p.Team)
		candidates = append(candidates, analysisTeam{participationID: p.ID, team: p.Team})
	}
	total := len(candidates)

	if err := o.teams.RegisterTeams(ctx, opts.ExerciseID, all); err != nil {
		return nil, 0, 0, o.fail(ctx, opts.ExerciseID, fmt.Errorf("registering teams: %w", err))
	}

	done := 0
	if resumed {
		analyzed, err := o.teams.AnalyzedTeamIDs(ctx, opts.ExerciseID)
		if err != nil {
			return nil, 0, 0, o.fail(ctx, opts.ExerciseID, fmt.Errorf("loading resume state: %w", err))
		}
		remaining := candidates[:0]
		for _, c := range candidates {
			if !analyzed[c.team.ID] {
				remaining = append(remaining, c)
			}
		}
		done = total - len(remaining)
		slog.Info("Resuming analysis run",
			"exercise_id", opts.ExerciseID,
			"teams_total", total,
			"teams_remaining", len(remaining))
		candidates = remaining
	}

	if err := o.state.SetTotalTeams(ctx, opts.ExerciseID, total); err != nil {
		slog.Warn("Failed to record team total", "exercise_id", opts.ExerciseID, "error", err)
	}
	if err := o.state.UpdateProgress(ctx, opts.ExerciseID, done, "", ""); err != nil {
		slog.Warn("Failed to record initial progress", "exercise_id", opts.ExerciseID, "error", err)
	}
	return candidates, total, done, nil
}

type analysisTeam struct {
	participationID int64
	team            models.Team
}

// fanOut runs the worker pool over the team list and returns the number
// of teams processed in this run plus the merged token totals of every
// team rated in it.
func (o *Orchestrator) fanOut(ctx context.Context, opts Options, teams []analysisTeam, total, done int, deadline time.Time, sessions []time.Time) (int, models.TokenTotals) {
	work := make(chan analysisTeam)
	processed := done
	var tokens models.TokenTotals
	var mu sync.Mutex
	var wg sync.WaitGroup

	record := o.attendance.Get(opts.CourseID)
	processedSoFar := func() int {
		mu.Lock()
		defer mu.Unlock()
		return processed
	}

	for i := 0; i < o.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			log := slog.With("exercise_id", opts.ExerciseID, "worker", worker)
			for at := range work {
				if !o.shouldContinue(ctx, opts.ExerciseID, log) {
					continue // drain
				}
				report := o.analyzeTeam(ctx, opts, at, deadline, sessions, record, processedSoFar, log)

				mu.Lock()
				processed++
				done := processed
				tokens = tokens.Merge(report.Metadata.TokenTotals)
				mu.Unlock()

				o.finishTeam(ctx, opts.ExerciseID, at.team, report, done, total, log)
			}
		}(i)
	}

	for _, at := range teams {
		work <- at
	}
	close(work)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	return processed, tokens
}

// shouldContinue polls the state machine; a PAUSED or missing row stops
// new work while in-flight teams finish.
func (o *Orchestrator) shouldContinue(ctx context.Context, exerciseID int64, log *slog.Logger) bool {
	if ctx.Err() != nil {
		return false
	}
	running, err := o.state.IsRunning(ctx, exerciseID)
	if err != nil {
		log.Warn("Failed to poll run state, stopping worker", "error", err)
		return false
	}
	return running
}

// analyzeTeam runs one team's pipeline. Errors and panics become a
// zero-scored error report; the run always continues.
func (o *Orchestrator) analyzeTeam(ctx context.Context, opts Options, at analysisTeam, deadline time.Time, sessions []time.Time, record attendance.Record, processedSoFar func() int, log *slog.Logger) (report *models.FairnessReport) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Recovered panic during team analysis",
				"team", at.team.Name, "panic", r, "stack", string(debug.Stack()))
			report = fairness.ErrorReport(at.team, fmt.Errorf("internal error: %v", r))
		}
	}()

	authorsBySHA := o.resolveAuthors(ctx, opts, at, log)

	req := fairness.Request{
		Team:         at.team,
		AuthorsBySHA: authorsBySHA,
		ProjectEnd:   deadline,
		OnStage: func(stage models.AnalysisStage) {
			if err := o.state.UpdateProgress(ctx, opts.ExerciseID, processedSoFar(), at.team.Name, stage); err != nil {
				log.Warn("Failed to record stage progress", "team", at.team.Name, "error", err)
			}
		},
	}

	// Paired sessions are only the dates the attendance sheet puts both
	// students in the room. The tutorial schedule alone says nothing
	// about who showed up, so without a record the pair component stays
	// unavailable; the schedule only sizes the attendance ratio.
	if record != nil {
		normalized := cqi.NormalizeTeamName(at.team.Name)
		if attended, ok := record[normalized]; ok {
			req.PairedSessions = attended
			req.Attendance = &cqi.Attendance{
				SessionsAttended: len(attended),
				SessionsTotal:    len(sessions),
			}
		}
	}

	result, err := o.analyzer.Analyze(ctx, req)
	if err != nil {
		log.Warn("Team analysis failed", "team", at.team.Name, "error", err)
		return fairness.ErrorReport(at.team, err)
	}
	return result
}

// resolveAuthors fetches the team's VCS access log and persists the
// email mappings. A missing log is not fatal; the loader then keeps nil
// author IDs and authorship falls back to commit emails.
func (o *Orchestrator) resolveAuthors(ctx context.Context, opts Options, at analysisTeam, log *slog.Logger) map[string]int64 {
	entries, err := o.platform.VCSAccessLog(ctx, opts.Creds, at.participationID)
	if err != nil {
		log.Warn("Failed to fetch VCS access log", "team", at.team.Name, "error", err)
		return nil
	}

	for _, e := range entries {
		if e.Email == "" {
			continue
		}
		if err := o.mappings.Upsert(ctx, opts.ExerciseID, e.Email, e.UserID, e.UserName); err != nil {
			log.Warn("Failed to persist email mapping", "email", e.Email, "error", err)
		}
	}
	return platform.AuthorsBySHA(entries)
}

// finishTeam persists the report and emits the UPDATE event.
func (o *Orchestrator) finishTeam(ctx context.Context, exerciseID int64, team models.Team, report *models.FairnessReport, processed, total int, log *slog.Logger) {
	if err := o.teams.SaveReport(ctx, exerciseID, team, report); err != nil {
		log.Error("Failed to persist team report", "team", team.Name, "error", err)
	}

	if err := o.state.UpdateProgress(ctx, exerciseID, processed, team.Name, models.StageDone); err != nil {
		log.Warn("Failed to record progress", "team", team.Name, "error", err)
	}

	if err := o.events.PublishUpdate(ctx, exerciseID, processed, total, toTeamResult(team, report)); err != nil {
		log.Warn("Failed to publish UPDATE event", "team", team.Name, "error", err)
	}
}

func toTeamResult(team models.Team, report *models.FairnessReport) models.TeamResult {
	result := models.TeamResult{
		TeamID:       team.ID,
		TeamName:     team.Name,
		BalanceScore: report.BalanceScore,
		Flags:        report.Flags,
		IsSuspicious: report.RequiresManualReview,
		AnalyzedAt:   time.Now(),
	}
	if report.CQIResult != nil {
		if !report.HasFlag(models.FlagAnalysisError) {
			cqiValue := report.CQIResult.CQI
			result.CQI = &cqiValue
			result.Components = &report.CQIResult.Components
		} else {
			result.Error = report.CQIResult.Reason
		}
	}
	return result
}

// fail moves the run to ERROR and emits the terminal event, preserving
// the original cause.
func (o *Orchestrator) fail(ctx context.Context, exerciseID int64, cause error) error {
	if err := o.state.FailAnalysis(ctx, exerciseID, cause.Error()); err != nil {
		slog.Error("Failed to record run failure", "exercise_id", exerciseID, "error", err)
	}
	if err := o.events.PublishError(ctx, exerciseID, cause.Error()); err != nil {
		slog.Warn("Failed to publish ERROR event", "exercise_id", exerciseID, "error", err)
	}
	return cause
}

// IsConflict reports whether err is the already-running conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyRunning)
}
