package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// statusHandler handles GET /api/v1/analysis/status/:exerciseId. An
// exercise that was never analyzed reports IDLE.
func (s *Server) statusHandler(c *echo.Context) error {
	exerciseID, err := paramInt64(c, "exerciseId")
	if err != nil {
		return err
	}

	status, err := s.status.Get(c.Request().Context(), exerciseID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// cancelHandler handles POST /api/v1/analysis/:exerciseId/cancel.
// Cancelling pauses the run; in-flight teams finish and a later stream
// attach resumes from the persisted progress. Cancelling a non-running
// exercise is a no-op.
func (s *Server) cancelHandler(c *echo.Context) error {
	exerciseID, err := paramInt64(c, "exerciseId")
	if err != nil {
		return err
	}

	if err := s.status.CancelAnalysis(c.Request().Context(), exerciseID); err != nil {
		return mapServiceError(err)
	}

	status, err := s.status.Get(c.Request().Context(), exerciseID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// listTeamsHandler handles GET /api/v1/analysis/:exerciseId/teams.
func (s *Server) listTeamsHandler(c *echo.Context) error {
	exerciseID, err := paramInt64(c, "exerciseId")
	if err != nil {
		return err
	}

	results, err := s.results.ListResults(c.Request().Context(), exerciseID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, results)
}

// getTeamHandler handles GET /api/v1/analysis/:exerciseId/teams/:teamId.
func (s *Server) getTeamHandler(c *echo.Context) error {
	exerciseID, err := paramInt64(c, "exerciseId")
	if err != nil {
		return err
	}
	teamID, err := paramInt64(c, "teamId")
	if err != nil {
		return err
	}

	result, err := s.results.GetResult(c.Request().Context(), exerciseID, teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func paramInt64(c *echo.Context, name string) (int64, error) {
	v := c.Param(name)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return n, nil
}
