package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairlens/fairlens/pkg/events"
	"github.com/fairlens/fairlens/pkg/state"
)

// syncRecorder is a concurrency-safe ResponseWriter that signals each
// write, so the test can sequence broadcasts against the SSE loop.
type syncRecorder struct {
	mu     sync.Mutex
	header http.Header
	body   bytes.Buffer
	code   int
	wrote  chan struct{}
}

func newSyncRecorder() *syncRecorder {
	return &syncRecorder{header: make(http.Header), wrote: make(chan struct{}, 16)}
}

func (r *syncRecorder) Header() http.Header { return r.header }

func (r *syncRecorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	n, err := r.body.Write(b)
	r.mu.Unlock()
	select {
	case r.wrote <- struct{}{}:
	default:
	}
	return n, err
}

func (r *syncRecorder) WriteHeader(code int) {
	r.mu.Lock()
	r.code = code
	r.mu.Unlock()
}

func (r *syncRecorder) Flush() {}

func (r *syncRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.String()
}

func (r *syncRecorder) waitWrite(t *testing.T) {
	t.Helper()
	select {
	case <-r.wrote:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for SSE write")
	}
}

func TestStreamHandler_JoinsRunningAnalysis(t *testing.T) {
	f := newServerFixture(t)
	f.status.status = &state.Status{ExerciseID: 42, State: state.StateRunning, ProcessedTeams: 2, TotalTeams: 5}

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/stream?exerciseId=42", nil).WithContext(ctx)
	rec := newSyncRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.server.Handler().ServeHTTP(rec, req)
	}()

	rec.waitWrite(t) // ALREADY_RUNNING notice

	f.server.events.Broadcast(events.ExerciseChannel(42), []byte(`{"type":"UPDATE","processed":3}`))
	rec.waitWrite(t)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not return after disconnect")
	}

	body := rec.String()
	assert.Contains(t, body, `"type":"ALREADY_RUNNING"`)
	assert.Contains(t, body, `"processed":3`)
	assert.Equal(t, 0, f.server.events.SubscriberCount(events.ExerciseChannel(42)))
	assert.Empty(t, f.runner.runs, "joining a running analysis starts nothing")
}

func TestStreamHandler_StartsIdleAnalysis(t *testing.T) {
	f := newServerFixture(t)
	f.runner.ran = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/stream?exerciseId=42&courseId=9", nil).WithContext(ctx)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "token-123"})
	rec := newSyncRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.server.Handler().ServeHTTP(rec, req)
	}()

	select {
	case <-f.runner.ran:
	case <-time.After(5 * time.Second):
		t.Fatal("run was not started")
	}

	cancel()
	<-done

	require.Len(t, f.runner.runs, 1)
	opts := f.runner.runs[0]
	assert.Equal(t, int64(42), opts.ExerciseID)
	assert.Equal(t, int64(9), opts.CourseID)
	assert.Equal(t, "token-123", opts.Creds.JWTToken)
	assert.Equal(t, "https://platform.example.edu", opts.Creds.BaseURL)
}

func TestStreamHandler_MissingCookie(t *testing.T) {
	f := newServerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/stream?exerciseId=42", nil)
	rec := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, f.runner.runs)
}

func TestStreamHandler_RequiresExerciseID(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/stream", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStreamHandler_DoneRunReplaysWithoutStarting(t *testing.T) {
	f := newServerFixture(t)
	f.status.status = &state.Status{ExerciseID: 42, State: state.StateDone, ProcessedTeams: 5, TotalTeams: 5}

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/stream?exerciseId=42", nil).WithContext(ctx)
	rec := newSyncRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.server.Handler().ServeHTTP(rec, req)
	}()

	// Give the handler a moment to subscribe, then disconnect.
	require.Eventually(t, func() bool {
		return f.server.events.SubscriberCount(events.ExerciseChannel(42)) == 1
	}, 5*time.Second, 10*time.Millisecond)
	cancel()
	<-done

	assert.Empty(t, f.runner.runs, "a finished run is not restarted by attaching")
	assert.False(t, strings.Contains(rec.String(), "ALREADY_RUNNING"))
}
