package api

import (
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/fairlens/fairlens/pkg/attendance"
)

// maxAttendanceUpload caps workbook uploads at 10 MiB.
const maxAttendanceUpload = 10 << 20

// uploadAttendanceHandler handles POST /api/v1/attendance/:courseId.
// The multipart "file" field carries the xlsx workbook; a successful
// upload replaces the course's previous attendance record.
func (s *Server) uploadAttendanceHandler(c *echo.Context) error {
	courseID, err := paramInt64(c, "courseId")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field 'file' is required")
	}
	if fileHeader.Size > maxAttendanceUpload {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "attendance workbook too large")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer f.Close()

	cfg := attendance.DefaultConfig()
	if s.sessionsToKeep > 0 {
		cfg.SessionsToKeep = s.sessionsToKeep
	}

	record, err := attendance.Parse(f, cfg)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "parsing attendance workbook: "+err.Error())
	}

	s.attendance.Put(courseID, record)
	slog.Info("Attendance uploaded", "course_id", courseID, "teams", len(record))

	return c.JSON(http.StatusOK, &AttendanceUploadResponse{
		CourseID: courseID,
		Teams:    len(record),
	})
}
