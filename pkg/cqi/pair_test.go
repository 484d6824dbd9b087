package cqi

import (
	"testing"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairTeam() models.Team {
	return models.Team{
		ID:   7,
		Name: "Team Rocket",
		Members: []models.Member{
			{ID: 1, Name: "Ada", Email: "ada@uni.example"},
			{ID: 2, Name: "Grace", Email: "grace@uni.example"},
		},
	}
}

func chunkAt(authorID int64, ts time.Time) models.Chunk {
	return models.Chunk{SHA: ts.Format(time.RFC3339), AuthorID: &authorID, Timestamp: ts}
}

func TestPairProgramming_NotApplicable(t *testing.T) {
	team := pairTeam()
	team.Members = append(team.Members, models.Member{ID: 3, Email: "x@uni.example"})

	res := PairProgramming(team, []time.Time{time.Now()}, nil)
	assert.Equal(t, PairNotApplicable, res.Status)
	assert.Nil(t, res.Score)
}

func TestPairProgramming_NotFound(t *testing.T) {
	res := PairProgramming(pairTeam(), nil, nil)
	assert.Equal(t, PairNotFound, res.Status)
	assert.Nil(t, res.Score)
}

func TestPairProgramming_CoverageByCalendarDate(t *testing.T) {
	day1 := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)
	day3 := time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC)

	chunks := []models.Chunk{
		// Both committed on day 1, different times of day.
		chunkAt(1, day1.Add(2*time.Hour)),
		chunkAt(2, day1.Add(8*time.Hour)),
		// Only one member on day 2.
		chunkAt(1, day2),
		// Nothing on day 3.
	}

	res := PairProgramming(pairTeam(), []time.Time{day1, day2, day3}, chunks)
	require.Equal(t, PairFound, res.Status)
	require.NotNil(t, res.Score)
	assert.Equal(t, 1, res.Covered)
	assert.Equal(t, 3, res.Total)
	assert.InDelta(t, 100.0/3, *res.Score, 1e-9)
}

func TestPairProgramming_TimezoneNormalizedToUTC(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	session := time.Date(2026, 3, 2, 0, 30, 0, 0, berlin) // 2026-03-01 in UTC

	chunks := []models.Chunk{
		chunkAt(1, time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)),
		chunkAt(2, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
	}

	res := PairProgramming(pairTeam(), []time.Time{session}, chunks)
	require.Equal(t, PairFound, res.Status)
	assert.Equal(t, 1, res.Covered)
}

func TestPairProgramming_EmailFallback(t *testing.T) {
	// A commit without a resolved author ID still counts via its email,
	// case-insensitively and with stray whitespace.
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	chunks := []models.Chunk{
		{SHA: "a", AuthorEmail: " ADA@uni.example ", Timestamp: day},
		chunkAt(2, day),
	}

	res := PairProgramming(pairTeam(), []time.Time{day}, chunks)
	require.Equal(t, PairFound, res.Status)
	assert.Equal(t, 1, res.Covered)
}

func TestPairProgramming_ZeroCoverageStillFound(t *testing.T) {
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	res := PairProgramming(pairTeam(), []time.Time{day}, []models.Chunk{chunkAt(1, day)})
	require.Equal(t, PairFound, res.Status)
	require.NotNil(t, res.Score)
	assert.Zero(t, *res.Score)
}

func TestNormalizeTeamName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Team Rocket", "team rocket"},
		{"  Team\u00a0Rocket  ", "team rocket"},
		{"TEAM   ROCKET", "team rocket"},
		{"Team\u00a0Rocket", "team rocket"},
		{"Gruppe 04", "gruppe 04"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTeamName(tt.in))
	}
}
