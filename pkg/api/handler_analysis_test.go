package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairlens/fairlens/pkg/attendance"
	"github.com/fairlens/fairlens/pkg/config"
	"github.com/fairlens/fairlens/pkg/events"
	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/pkg/orchestrator"
	"github.com/fairlens/fairlens/pkg/services"
	"github.com/fairlens/fairlens/pkg/state"
)

type fakeRunner struct {
	mu   sync.Mutex
	runs []orchestrator.Options
	ran  chan struct{}
	err  error
}

func (f *fakeRunner) Run(_ context.Context, opts orchestrator.Options) error {
	f.mu.Lock()
	f.runs = append(f.runs, opts)
	f.mu.Unlock()
	if f.ran != nil {
		close(f.ran)
	}
	return f.err
}

type fakeStatus struct {
	mu        sync.Mutex
	status    *state.Status
	cancelled []int64
}

func (f *fakeStatus) Get(_ context.Context, exerciseID int64) (*state.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != nil {
		return f.status, nil
	}
	return &state.Status{ExerciseID: exerciseID, State: state.StateIdle}, nil
}

func (f *fakeStatus) CancelAnalysis(_ context.Context, exerciseID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, exerciseID)
	if f.status != nil && f.status.State == state.StateRunning {
		f.status.State = state.StatePaused
	}
	return nil
}

type fakeResults struct {
	results []models.TeamResult
}

func (f *fakeResults) ListResults(_ context.Context, _ int64) ([]models.TeamResult, error) {
	return f.results, nil
}

func (f *fakeResults) GetResult(_ context.Context, _, teamID int64) (*models.TeamResult, error) {
	for i := range f.results {
		if f.results[i].TeamID == teamID {
			return &f.results[i], nil
		}
	}
	return nil, services.ErrNotFound
}

type serverFixture struct {
	runner  *fakeRunner
	status  *fakeStatus
	results *fakeResults
	server  *Server
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	f := &serverFixture{
		runner:  &fakeRunner{},
		status:  &fakeStatus{},
		results: &fakeResults{},
	}
	cfg := config.DefaultConfig()
	cfg.Platform.BaseURL = "https://platform.example.edu"
	f.server = NewServer(Deps{
		Runner:     f.runner,
		Status:     f.status,
		Results:    f.results,
		Events:     events.NewSubscriberManager(nil),
		Attendance: attendance.NewStore(),
		Config:     cfg,
	})
	return f
}

func (f *serverFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestStatusHandler(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/status/42", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status state.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, int64(42), status.ExerciseID)
	assert.Equal(t, state.StateIdle, status.State)
}

func TestStatusHandler_InvalidID(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/status/bogus", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelHandler(t *testing.T) {
	f := newServerFixture(t)
	f.status.status = &state.Status{ExerciseID: 42, State: state.StateRunning, ProcessedTeams: 3, TotalTeams: 10}

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/analysis/42/cancel", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []int64{42}, f.status.cancelled)

	var status state.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, state.StatePaused, status.State)
	assert.Equal(t, 3, status.ProcessedTeams, "progress survives cancellation")
}

func TestCancelHandler_Idempotent(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/analysis/42/cancel", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(httptest.NewRequest(http.MethodPost, "/api/v1/analysis/42/cancel", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTeamsHandler(t *testing.T) {
	f := newServerFixture(t)
	cqi := 81.5
	f.results.results = []models.TeamResult{
		{TeamID: 1, TeamName: "team-alpha", CQI: &cqi},
		{TeamID: 2, TeamName: "team-beta", Error: "clone failed"},
	}

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/42/teams", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var results []models.TeamResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "team-alpha", results[0].TeamName)
	assert.Equal(t, "clone failed", results[1].Error)
}

func TestGetTeamHandler_NotFound(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/42/teams/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	f := newServerFixture(t)

	for _, path := range []string{"/health", "/api/v1/healthz"} {
		rec := f.do(httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
	}
}

func TestSecurityHeaders(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/status/42", nil))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
