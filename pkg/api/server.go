// Package api exposes the HTTP surface: the SSE analysis stream, run
// status and cancellation, team results, attendance uploads, and health.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/fairlens/fairlens/pkg/attendance"
	"github.com/fairlens/fairlens/pkg/config"
	"github.com/fairlens/fairlens/pkg/database"
	"github.com/fairlens/fairlens/pkg/events"
	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/pkg/orchestrator"
	"github.com/fairlens/fairlens/pkg/state"
)

// AnalysisRunner starts and blocks on one analysis run. Satisfied by
// orchestrator.Orchestrator.
type AnalysisRunner interface {
	Run(ctx context.Context, opts orchestrator.Options) error
}

// RunStatus reads and cancels the per-exercise run state. Satisfied by
// state.Service.
type RunStatus interface {
	Get(ctx context.Context, exerciseID int64) (*state.Status, error)
	CancelAnalysis(ctx context.Context, exerciseID int64) error
}

// TeamResults reads persisted analysis results. Satisfied by
// services.TeamService.
type TeamResults interface {
	ListResults(ctx context.Context, exerciseID int64) ([]models.TeamResult, error)
	GetResult(ctx context.Context, exerciseID, teamID int64) (*models.TeamResult, error)
}

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	runner     AnalysisRunner
	status     RunStatus
	results    TeamResults
	events     *events.SubscriberManager
	attendance *attendance.Store
	dbClient   *database.Client
	creds      CredentialService

	sessionsToKeep int
}

// Deps wires the server's collaborators.
type Deps struct {
	Runner     AnalysisRunner
	Status     RunStatus
	Results    TeamResults
	Events     *events.SubscriberManager
	Attendance *attendance.Store
	DB         *database.Client
	Config     *config.Config

	// Creds overrides the default cookie-based credential extraction.
	Creds CredentialService
}

// NewServer creates the API server and registers all routes.
func NewServer(d Deps) *Server {
	s := &Server{
		echo:       echo.New(),
		runner:     d.Runner,
		status:     d.Status,
		results:    d.Results,
		events:     d.Events,
		attendance: d.Attendance,
		dbClient:   d.DB,
	}
	s.creds = d.Creds
	if d.Config != nil {
		s.sessionsToKeep = d.Config.Attendance.SessionsToKeep
		if s.creds == nil {
			s.creds = cookieCredentials{baseURL: d.Config.Platform.BaseURL}
		}
	}
	if s.creds == nil {
		s.creds = cookieCredentials{}
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")
	v1.GET("/healthz", s.healthHandler)
	v1.GET("/analysis/stream", s.streamHandler)
	v1.GET("/analysis/status/:exerciseId", s.statusHandler)
	v1.POST("/analysis/:exerciseId/cancel", s.cancelHandler)
	v1.GET("/analysis/:exerciseId/teams", s.listTeamsHandler)
	v1.GET("/analysis/:exerciseId/teams/:teamId", s.getTeamHandler)
	v1.POST("/attendance/:courseId", s.uploadAttendanceHandler)
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving on addr and blocks until shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests. SSE streams end when their
// clients disconnect or the shutdown context expires; the analysis run
// itself is owned by the orchestrator, not by any request.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
