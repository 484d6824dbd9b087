package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) (*Client, Credentials) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(5 * time.Second), Credentials{BaseURL: srv.URL, JWTToken: "test-jwt"}
}

func TestClient_Participations(t *testing.T) {
	client, creds := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/exercises/42/participations", r.URL.Path)

		cookie, err := r.Cookie("jwt")
		require.NoError(t, err)
		assert.Equal(t, "test-jwt", cookie.Value)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": 7001,
				"repositoryUri": "https://vcs.example.edu/e42/team-alpha.git",
				"team": {
					"id": 501,
					"name": "team-alpha",
					"students": [
						{"id": 10, "name": "Alice", "email": "alice@example.edu"},
						{"id": 11, "name": "Bob", "email": "bob@example.edu"}
					]
				}
			}
		]`))
	})

	participations, err := client.Participations(context.Background(), creds, 42)
	require.NoError(t, err)
	require.Len(t, participations, 1)

	p := participations[0]
	assert.Equal(t, int64(7001), p.ID)
	assert.Equal(t, int64(501), p.Team.ID)
	assert.Equal(t, "team-alpha", p.Team.Name)
	assert.Equal(t, "https://vcs.example.edu/e42/team-alpha.git", p.Team.RepositoryURI)
	require.Len(t, p.Team.Members, 2)
	assert.Equal(t, "alice@example.edu", p.Team.Members[0].Email)
}

func TestClient_VCSAccessLogFiltersActions(t *testing.T) {
	client, creds := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/participations/7001/vcs-access-log", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"user": {"id": 10, "name": "Alice", "email": "alice@example.edu"}, "commitHash": "aaa111", "repositoryActionType": "WRITE"},
			{"user": {"id": 11, "name": "Bob", "email": "bob@example.edu"}, "commitHash": "bbb222", "repositoryActionType": "push"},
			{"user": {"id": 12, "name": "Tutor", "email": "tutor@example.edu"}, "commitHash": "", "repositoryActionType": "CLONE"},
			{"user": {"id": 12, "name": "Tutor", "email": "tutor@example.edu"}, "commitHash": "ccc333", "repositoryActionType": "READ"}
		]`))
	})

	entries, err := client.VCSAccessLog(context.Background(), creds, 7001)
	require.NoError(t, err)
	require.Len(t, entries, 2, "read and clone actions are dropped")
	assert.Equal(t, "aaa111", entries[0].CommitHash)
	assert.Equal(t, ActionPush, entries[1].Action, "action casing is normalized")

	authors := AuthorsBySHA(entries)
	assert.Equal(t, map[string]int64{"aaa111": 10, "bbb222": 11}, authors)
}

func TestClient_TutorialSessions(t *testing.T) {
	client, creds := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/9/tutorial-sessions", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"start": "2026-03-05T10:00:00Z"},
			{"start": "2026-03-12T10:00:00Z"}
		]`))
	})

	sessions, err := client.TutorialSessions(context.Background(), creds, 9)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC), sessions[0])
}

func TestClient_SubmissionDeadline(t *testing.T) {
	client, creds := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/exercises/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dueDate": "2026-04-26T23:59:00Z"}`))
	})

	deadline, err := client.SubmissionDeadline(context.Background(), creds, 42)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 26, 23, 59, 0, 0, time.UTC), deadline)
}

func TestClient_NonOKStatus(t *testing.T) {
	client, creds := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "access denied", http.StatusForbidden)
	})

	_, err := client.Participations(context.Background(), creds, 42)
	require.Error(t, err)

	var apiErr *ExternalAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "/api/exercises/42/participations", apiErr.Endpoint)
	assert.Contains(t, apiErr.Body, "access denied")
}

func TestClient_MalformedResponse(t *testing.T) {
	client, creds := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.Participations(context.Background(), creds, 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding platform response")
}
