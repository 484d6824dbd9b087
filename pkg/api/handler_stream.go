package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/fairlens/fairlens/pkg/events"
	"github.com/fairlens/fairlens/pkg/orchestrator"
	"github.com/fairlens/fairlens/pkg/platform"
	"github.com/fairlens/fairlens/pkg/state"
)

// streamHandler handles GET /api/v1/analysis/stream.
//
// The stream is the single entry point for analysis: attaching to an
// IDLE or PAUSED exercise starts (or resumes) the run in the
// background, attaching to a RUNNING one joins it with an
// ALREADY_RUNNING notice, and a DONE or ERROR exercise replays its
// stored events. Disconnecting never cancels the run; clients
// reconnect with ?sinceId= to resume from their last seen event.
func (s *Server) streamHandler(c *echo.Context) error {
	exerciseID, err := queryInt64(c, "exerciseId", true)
	if err != nil {
		return err
	}
	courseID, err := queryInt64(c, "courseId", false)
	if err != nil {
		return err
	}
	sinceID, err := queryInt64(c, "sinceId", false)
	if err != nil {
		return err
	}

	status, err := s.status.Get(c.Request().Context(), exerciseID)
	if err != nil {
		return mapServiceError(err)
	}

	var creds platform.Credentials
	startRun := status.State == state.StateIdle || status.State == state.StatePaused
	if startRun {
		// Credentials are validated before the stream opens so auth
		// failures surface as proper HTTP errors.
		creds, err = s.creds.Credentials(c)
		if err != nil {
			return err
		}
	}

	// Subscribe before starting the run; catch-up plus LISTEN means no
	// event can fall between the two.
	sub, err := s.events.Subscribe(c.Request().Context(), events.ExerciseChannel(exerciseID), sinceID)
	if err != nil {
		slog.Error("Event subscription failed", "exercise_id", exerciseID, "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "event stream unavailable")
	}
	defer s.events.Unsubscribe(sub)

	w := c.Response()
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if status.State == state.StateRunning {
		notice, _ := json.Marshal(events.AlreadyRunningPayload{
			Type:       events.TypeAlreadyRunning,
			ExerciseID: exerciseID,
			Processed:  status.ProcessedTeams,
			Total:      status.TotalTeams,
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		})
		if err := writeSSE(w, notice); err != nil {
			return nil
		}
	}

	if startRun {
		go s.runAnalysis(exerciseID, courseID, creds)
	}

	reqDone := c.Request().Context().Done()
	for {
		select {
		case msg, ok := <-sub.C:
			if !ok {
				// Dropped as a slow consumer; the client reconnects
				// with sinceId and catches up.
				return nil
			}
			if err := writeSSE(w, msg); err != nil {
				return nil
			}
		case <-reqDone:
			return nil
		}
	}
}

// runAnalysis executes the run detached from the request; a closed SSE
// stream must never abort an analysis.
func (s *Server) runAnalysis(exerciseID, courseID int64, creds platform.Credentials) {
	err := s.runner.Run(context.Background(), orchestrator.Options{
		ExerciseID: exerciseID,
		CourseID:   courseID,
		Creds:      creds,
	})
	if err != nil && !orchestrator.IsConflict(err) {
		slog.Error("Analysis run failed", "exercise_id", exerciseID, "error", err)
	}
}

func writeSSE(w http.ResponseWriter, payload []byte) error {
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}

// queryInt64 parses an int64 query parameter. Missing optional
// parameters return 0.
func queryInt64(c *echo.Context, name string, required bool) (int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		if required {
			return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is required")
		}
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return n, nil
}
