// Package platform is the REST client for the upstream exercise
// platform: team participations, VCS access logs, tutorial session
// schedules, and submission deadlines.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
)

// Credentials address one platform instance for one request. The JWT
// arrives from the caller's cookie jar and is forwarded unchanged.
type Credentials struct {
	BaseURL  string
	JWTToken string
}

// ExternalAPIError is a non-2xx response from the platform.
type ExternalAPIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("platform request %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Participation is one team's registration for an exercise. The
// participation ID addresses the VCS access log; the embedded team is
// what the pipeline analyzes.
type Participation struct {
	ID   int64       `json:"id"`
	Team models.Team `json:"team"`
}

// AccessLogEntry is one write or push action from a participation's VCS
// access log.
type AccessLogEntry struct {
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name"`
	Email      string `json:"email"`
	CommitHash string `json:"commit_hash"`
	Action     string `json:"action"`
}

// Actions that map a commit to its author. Read/clone actions carry no
// authorship information.
const (
	ActionWrite = "WRITE"
	ActionPush  = "PUSH"
)

// Client talks to the exercise platform. Base URL and JWT are
// per-request; a single client serves every platform instance.
type Client struct {
	http *http.Client
}

// NewClient creates a platform client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Participations fetches all team participations of an exercise.
func (c *Client) Participations(ctx context.Context, creds Credentials, exerciseID int64) ([]Participation, error) {
	endpoint := fmt.Sprintf("/api/exercises/%d/participations", exerciseID)

	var dtos []participationDTO
	if err := c.get(ctx, creds, endpoint, &dtos); err != nil {
		return nil, err
	}

	participations := make([]Participation, 0, len(dtos))
	for _, dto := range dtos {
		members := make([]models.Member, len(dto.Team.Students))
		for i, s := range dto.Team.Students {
			members[i] = models.Member{ID: s.ID, Name: s.Name, Email: s.Email}
		}
		participations = append(participations, Participation{
			ID: dto.ID,
			Team: models.Team{
				ID:            dto.Team.ID,
				Name:          dto.Team.Name,
				RepositoryURI: dto.RepositoryURI,
				Members:       members,
			},
		})
	}
	return participations, nil
}

// VCSAccessLog fetches one participation's repository access log,
// filtered to write and push actions.
func (c *Client) VCSAccessLog(ctx context.Context, creds Credentials, participationID int64) ([]AccessLogEntry, error) {
	endpoint := fmt.Sprintf("/api/participations/%d/vcs-access-log", participationID)

	var dtos []accessLogDTO
	if err := c.get(ctx, creds, endpoint, &dtos); err != nil {
		return nil, err
	}

	entries := make([]AccessLogEntry, 0, len(dtos))
	for _, dto := range dtos {
		action := strings.ToUpper(dto.RepositoryActionType)
		if action != ActionWrite && action != ActionPush {
			continue
		}
		entries = append(entries, AccessLogEntry{
			UserID:     dto.User.ID,
			UserName:   dto.User.Name,
			Email:      dto.User.Email,
			CommitHash: dto.CommitHash,
			Action:     action,
		})
	}
	return entries, nil
}

// TutorialSessions fetches the scheduled tutorial session dates of a
// course, sorted ascending.
func (c *Client) TutorialSessions(ctx context.Context, creds Credentials, courseID int64) ([]time.Time, error) {
	endpoint := fmt.Sprintf("/api/courses/%d/tutorial-sessions", courseID)

	var dtos []tutorialSessionDTO
	if err := c.get(ctx, creds, endpoint, &dtos); err != nil {
		return nil, err
	}

	sessions := make([]time.Time, 0, len(dtos))
	for _, dto := range dtos {
		sessions = append(sessions, dto.Start)
	}
	return sessions, nil
}

// SubmissionDeadline fetches the exercise due date. A zero time means
// the exercise has no deadline.
func (c *Client) SubmissionDeadline(ctx context.Context, creds Credentials, exerciseID int64) (time.Time, error) {
	endpoint := fmt.Sprintf("/api/exercises/%d", exerciseID)

	var dto exerciseDTO
	if err := c.get(ctx, creds, endpoint, &dto); err != nil {
		return time.Time{}, err
	}
	return dto.DueDate, nil
}

// AuthorsBySHA folds access log entries into the commit-sha to
// author-ID map the git loader consumes.
func AuthorsBySHA(entries []AccessLogEntry) map[string]int64 {
	authors := make(map[string]int64, len(entries))
	for _, e := range entries {
		if e.CommitHash == "" {
			continue
		}
		authors[e.CommitHash] = e.UserID
	}
	return authors
}

func (c *Client) get(ctx context.Context, creds Credentials, endpoint string, target any) error {
	url := strings.TrimRight(creds.BaseURL, "/") + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building platform request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if creds.JWTToken != "" {
		req.AddCookie(&http.Cookie{Name: "jwt", Value: creds.JWTToken})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("platform request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &ExternalAPIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding platform response from %s: %w", endpoint, err)
	}
	return nil
}

type participationDTO struct {
	ID            int64   `json:"id"`
	RepositoryURI string  `json:"repositoryUri"`
	Team          teamDTO `json:"team"`
}

type teamDTO struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Students []studentDTO `json:"students"`
}

type studentDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type accessLogDTO struct {
	User                 studentDTO `json:"user"`
	CommitHash           string     `json:"commitHash"`
	RepositoryActionType string     `json:"repositoryActionType"`
}

type tutorialSessionDTO struct {
	Start time.Time `json:"start"`
}

type exerciseDTO struct {
	DueDate time.Time `json:"dueDate"`
}
