package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairlens/fairlens/pkg/attendance"
	"github.com/fairlens/fairlens/pkg/fairness"
	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/pkg/platform"
	"github.com/fairlens/fairlens/pkg/state"
)

type fakePlatform struct {
	participations []platform.Participation
	partErr        error
	accessLog      map[int64][]platform.AccessLogEntry
	sessions       []time.Time
	deadline       time.Time
}

func (f *fakePlatform) Participations(_ context.Context, _ platform.Credentials, _ int64) ([]platform.Participation, error) {
	return f.participations, f.partErr
}

func (f *fakePlatform) VCSAccessLog(_ context.Context, _ platform.Credentials, id int64) ([]platform.AccessLogEntry, error) {
	return f.accessLog[id], nil
}

func (f *fakePlatform) TutorialSessions(_ context.Context, _ platform.Credentials, _ int64) ([]time.Time, error) {
	return f.sessions, nil
}

func (f *fakePlatform) SubmissionDeadline(_ context.Context, _ platform.Credentials, _ int64) (time.Time, error) {
	return f.deadline, nil
}

type fakeAnalyzer struct {
	mu        sync.Mutex
	analyzed  []string
	failFor   map[string]error
	panicFor  map[string]bool
	tokensFor map[string]models.TokenTotals
	requests  map[string]fairness.Request
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req fairness.Request) (*models.FairnessReport, error) {
	f.mu.Lock()
	f.analyzed = append(f.analyzed, req.Team.Name)
	if f.requests == nil {
		f.requests = make(map[string]fairness.Request)
	}
	f.requests[req.Team.Name] = req
	f.mu.Unlock()

	if f.panicFor[req.Team.Name] {
		panic("analyzer blew up")
	}
	if err := f.failFor[req.Team.Name]; err != nil {
		return nil, err
	}
	cqiValue := 75.0
	return &models.FairnessReport{
		TeamID:   req.Team.ID,
		TeamName: req.Team.Name,
		CQIResult: &models.CQIResult{
			CQI:               cqiValue,
			BaseScore:         cqiValue,
			PenaltyMultiplier: 1.0,
		},
		Metadata: models.AnalysisMetadata{TokenTotals: f.tokensFor[req.Team.Name]},
	}, nil
}

type fakeTeamStore struct {
	mu       sync.Mutex
	saved    map[string]*models.FairnessReport
	analyzed map[int64]bool
}

func (f *fakeTeamStore) RegisterTeams(_ context.Context, _ int64, _ []models.Team) error { return nil }

func (f *fakeTeamStore) SaveReport(_ context.Context, _ int64, team models.Team, report *models.FairnessReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saved == nil {
		f.saved = make(map[string]*models.FairnessReport)
	}
	f.saved[team.Name] = report
	return nil
}

func (f *fakeTeamStore) AnalyzedTeamIDs(_ context.Context, _ int64) (map[int64]bool, error) {
	if f.analyzed == nil {
		return map[int64]bool{}, nil
	}
	return f.analyzed, nil
}

// fakeState mimics the state machine transitions in memory.
type fakeState struct {
	mu       sync.Mutex
	running  bool
	paused   bool
	resumed  bool
	failed   string
	complete bool

	// cancelAfter pauses the run once this many teams finished.
	cancelAfter int
	processed   int
}

func (f *fakeState) StartAnalysis(_ context.Context, _ int64, _ int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return false, state.ErrAlreadyRunning
	}
	f.running = true
	return f.resumed, nil
}

func (f *fakeState) SetTotalTeams(_ context.Context, _ int64, _ int) error { return nil }

func (f *fakeState) UpdateProgress(_ context.Context, _ int64, processed int, _ string, stage models.AnalysisStage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processed = processed
	if stage == models.StageDone && f.cancelAfter > 0 && processed >= f.cancelAfter {
		f.running = false
		f.paused = true
	}
	return nil
}

func (f *fakeState) CompleteAnalysis(_ context.Context, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = false
	f.complete = true
	return nil
}

func (f *fakeState) FailAnalysis(_ context.Context, _ int64, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = false
	f.failed = msg
	return nil
}

func (f *fakeState) IsRunning(_ context.Context, _ int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running, nil
}

type fakeSink struct {
	mu      sync.Mutex
	started []int
	updates []models.TeamResult
	done    []int
	tokens  models.TokenTotals
	errs    []string
}

func (f *fakeSink) PublishStart(_ context.Context, _ int64, total int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, total)
	return nil
}

func (f *fakeSink) PublishUpdate(_ context.Context, _ int64, _, _ int, result models.TeamResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, result)
	return nil
}

func (f *fakeSink) PublishDone(_ context.Context, _ int64, processed int, tokens models.TokenTotals) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.done = append(f.done, processed)
	f.tokens = tokens
	return nil
}

func (f *fakeSink) PublishError(_ context.Context, _ int64, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, msg)
	return nil
}

type fakeJanitor struct {
	mu      sync.Mutex
	cleaned int
}

func (f *fakeJanitor) CleanupExerciseEvents(_ context.Context, _ int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned++
	return 0, nil
}

type fakeMappings struct {
	mu     sync.Mutex
	emails map[string]int64
}

func (f *fakeMappings) Upsert(_ context.Context, _ int64, email string, studentID int64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.emails == nil {
		f.emails = make(map[string]int64)
	}
	f.emails[email] = studentID
	return nil
}

func participation(id, teamID int64, name string) platform.Participation {
	return platform.Participation{
		ID: id,
		Team: models.Team{
			ID:            teamID,
			Name:          name,
			RepositoryURI: "https://vcs.example.edu/" + name + ".git",
			Members: []models.Member{
				{ID: teamID * 10, Name: "A", Email: name + "-a@example.edu"},
				{ID: teamID*10 + 1, Name: "B", Email: name + "-b@example.edu"},
			},
		},
	}
}

type fixture struct {
	platform *fakePlatform
	analyzer *fakeAnalyzer
	teams    *fakeTeamStore
	state    *fakeState
	sink     *fakeSink
	janitor  *fakeJanitor
	mappings *fakeMappings
	store    *attendance.Store
}

func newFixture(parts ...platform.Participation) *fixture {
	return &fixture{
		platform: &fakePlatform{
			participations: parts,
			deadline:       time.Date(2026, 4, 26, 23, 59, 0, 0, time.UTC),
		},
		analyzer: &fakeAnalyzer{},
		teams:    &fakeTeamStore{},
		state:    &fakeState{},
		sink:     &fakeSink{},
		janitor:  &fakeJanitor{},
		mappings: &fakeMappings{},
		store:    attendance.NewStore(),
	}
}

func (f *fixture) orchestrator(workers int) *Orchestrator {
	return New(Deps{
		Platform:   f.platform,
		Analyzer:   f.analyzer,
		Teams:      f.teams,
		State:      f.state,
		Events:     f.sink,
		Janitor:    f.janitor,
		Mappings:   f.mappings,
		Attendance: f.store,
		Workers:    workers,
	})
}

func TestRun_HappyPath(t *testing.T) {
	f := newFixture(
		participation(7001, 1, "team-alpha"),
		participation(7002, 2, "team-beta"),
		participation(7003, 3, "team-gamma"),
	)

	err := f.orchestrator(2).Run(context.Background(), Options{ExerciseID: 42, CourseID: 9})
	require.NoError(t, err)

	assert.True(t, f.state.complete)
	assert.Equal(t, []int{3}, f.sink.started)
	assert.Len(t, f.sink.updates, 3)
	assert.Equal(t, []int{3}, f.sink.done)
	assert.Len(t, f.teams.saved, 3)
	assert.Equal(t, 1, f.janitor.cleaned, "fresh start clears old events")
}

func TestRun_ConflictWhileRunning(t *testing.T) {
	f := newFixture(participation(7001, 1, "team-alpha"))
	f.state.running = true

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42})
	assert.True(t, IsConflict(err))
	assert.Empty(t, f.sink.started, "no events for a rejected start")
}

func TestRun_TeamWithoutRepositorySkipped(t *testing.T) {
	noRepo := participation(7002, 2, "team-beta")
	noRepo.Team.RepositoryURI = ""
	f := newFixture(participation(7001, 1, "team-alpha"), noRepo)

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, f.sink.started)
	assert.Equal(t, []string{"team-alpha"}, f.analyzer.analyzed)
}

func TestRun_AnalyzerFailureYieldsErrorReport(t *testing.T) {
	f := newFixture(participation(7001, 1, "team-alpha"), participation(7002, 2, "team-beta"))
	f.analyzer.failFor = map[string]error{"team-alpha": errors.New("clone failed")}

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42})
	require.NoError(t, err, "one team failing never fails the run")

	report := f.teams.saved["team-alpha"]
	require.NotNil(t, report)
	assert.True(t, report.HasFlag(models.FlagAnalysisError))
	assert.Contains(t, report.CQIResult.Reason, "clone failed")

	assert.True(t, f.state.complete)
	assert.Len(t, f.sink.updates, 2)

	var errored int
	for _, u := range f.sink.updates {
		if u.Error != "" {
			errored++
			assert.Nil(t, u.CQI)
		}
	}
	assert.Equal(t, 1, errored)
}

func TestRun_PanicRecovered(t *testing.T) {
	f := newFixture(participation(7001, 1, "team-alpha"))
	f.analyzer.panicFor = map[string]bool{"team-alpha": true}

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42})
	require.NoError(t, err)

	report := f.teams.saved["team-alpha"]
	require.NotNil(t, report)
	assert.True(t, report.HasFlag(models.FlagAnalysisError))
	assert.True(t, f.state.complete)
}

func TestRun_PlatformFailureFailsRun(t *testing.T) {
	f := newFixture()
	f.platform.partErr = errors.New("platform unreachable")

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42})
	require.Error(t, err)

	assert.Contains(t, f.state.failed, "platform unreachable")
	require.Len(t, f.sink.errs, 1)
	assert.Contains(t, f.sink.errs[0], "platform unreachable")
	assert.Empty(t, f.sink.done)
}

func TestRun_CancelPausesWithoutDone(t *testing.T) {
	f := newFixture(
		participation(7001, 1, "team-alpha"),
		participation(7002, 2, "team-beta"),
		participation(7003, 3, "team-gamma"),
	)
	f.state.cancelAfter = 1

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42})
	require.NoError(t, err)

	assert.True(t, f.state.paused)
	assert.False(t, f.state.complete)
	assert.Empty(t, f.sink.done, "a cancelled run emits no DONE")
	assert.Less(t, len(f.analyzer.analyzed), 3, "remaining teams are drained, not analyzed")
}

func TestRun_ResumeSkipsAnalyzedTeams(t *testing.T) {
	f := newFixture(
		participation(7001, 1, "team-alpha"),
		participation(7002, 2, "team-beta"),
	)
	f.state.resumed = true
	f.teams.analyzed = map[int64]bool{1: true}

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42})
	require.NoError(t, err)

	assert.Equal(t, []string{"team-beta"}, f.analyzer.analyzed)
	assert.Equal(t, 0, f.janitor.cleaned, "resume keeps the event history")
	assert.Equal(t, []int{2}, f.sink.started, "total covers the whole team set")
	assert.Equal(t, []int{2}, f.sink.done, "processed includes previously finished teams")
}

func TestRun_DoneCarriesMergedTokenTotals(t *testing.T) {
	f := newFixture(
		participation(7001, 1, "team-alpha"),
		participation(7002, 2, "team-beta"),
	)
	f.analyzer.tokensFor = map[string]models.TokenTotals{
		"team-alpha": {LLMCalls: 3, CallsWithUsage: 3, PromptTokens: 900, CompletionTokens: 90, TotalTokens: 990},
		"team-beta":  {LLMCalls: 2, CallsWithUsage: 1, PromptTokens: 400, CompletionTokens: 40, TotalTokens: 440},
	}

	err := f.orchestrator(2).Run(context.Background(), Options{ExerciseID: 42})
	require.NoError(t, err)

	assert.Equal(t, models.TokenTotals{
		LLMCalls:         5,
		CallsWithUsage:   4,
		PromptTokens:     1300,
		CompletionTokens: 130,
		TotalTokens:      1430,
	}, f.sink.tokens)
}

func TestRun_AccessLogFeedsAuthorsAndMappings(t *testing.T) {
	f := newFixture(participation(7001, 1, "team-alpha"))
	f.platform.accessLog = map[int64][]platform.AccessLogEntry{
		7001: {
			{UserID: 10, UserName: "Alice", Email: "alice@example.edu", CommitHash: "aaa111", Action: platform.ActionPush},
		},
	}

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42})
	require.NoError(t, err)

	req := f.analyzer.requests["team-alpha"]
	assert.Equal(t, map[string]int64{"aaa111": 10}, req.AuthorsBySHA)
	assert.Equal(t, map[string]int64{"alice@example.edu": 10}, f.mappings.emails)
	assert.Equal(t, f.platform.deadline, req.ProjectEnd)
}

func TestRun_AttendanceDrivesPairedSessions(t *testing.T) {
	f := newFixture(participation(7001, 1, "Team Alpha"))
	session1 := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	session2 := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	f.platform.sessions = []time.Time{session1, session2}
	f.store.Put(9, attendance.Record{"team alpha": {session2}})

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42, CourseID: 9})
	require.NoError(t, err)

	req := f.analyzer.requests["Team Alpha"]
	assert.Equal(t, []time.Time{session2}, req.PairedSessions)
	require.NotNil(t, req.Attendance)
	assert.Equal(t, 1, req.Attendance.SessionsAttended)
	assert.Equal(t, 2, req.Attendance.SessionsTotal)
}

func TestRun_ScheduleAloneYieldsNoPairedSessions(t *testing.T) {
	f := newFixture(participation(7001, 1, "Team Alpha"))
	f.platform.sessions = []time.Time{
		time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC),
	}

	err := f.orchestrator(1).Run(context.Background(), Options{ExerciseID: 42, CourseID: 9})
	require.NoError(t, err)

	// The schedule says when tutorials happened, not who attended; with
	// no attendance record the pair component gets no session dates.
	req := f.analyzer.requests["Team Alpha"]
	assert.Empty(t, req.PairedSessions)
	assert.Nil(t, req.Attendance)
}
