package api

import "github.com/fairlens/fairlens/pkg/database"

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Checks   map[string]HealthCheck `json:"checks"`
	Database *database.PoolHealth   `json:"database,omitempty"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// AttendanceUploadResponse is the POST /attendance/:courseId body.
type AttendanceUploadResponse struct {
	CourseID int64 `json:"course_id"`
	Teams    int   `json:"teams"`
}
