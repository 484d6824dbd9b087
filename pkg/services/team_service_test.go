package services

import (
	"context"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/test/util"
)

func testTeam(id int64, name string) models.Team {
	return models.Team{
		ID:            id,
		Name:          name,
		RepositoryURI: "https://vcs.example.edu/exercise/" + name + ".git",
		Members: []models.Member{
			{ID: id * 10, Name: "Alice", Email: "alice@example.edu"},
			{ID: id*10 + 1, Name: "Bob", Email: "bob@example.edu"},
		},
	}
}

func testReport(team models.Team, cqi float64) *models.FairnessReport {
	return &models.FairnessReport{
		TeamID:               team.ID,
		TeamName:             team.Name,
		BalanceScore:         82.5,
		Flags:                []models.Flag{models.FlagUnevenDistribution},
		RequiresManualReview: true,
		Metadata: models.AnalysisMetadata{
			AnalyzedAt:  time.Now(),
			CommitCount: 2,
			ChunkCount:  2,
			TokenTotals: models.TokenTotals{LLMCalls: 2, TotalTokens: 500},
		},
		AnalyzedChunks: []models.AnalyzedChunk{
			{
				Chunk: models.Chunk{
					SHA:         "aaa111",
					TotalChunks: 1,
					AuthorID:    &team.Members[0].ID,
					AuthorEmail: team.Members[0].Email,
					Message:     "implement parser",
					Timestamp:   time.Now().Add(-48 * time.Hour),
					LinesAdded:  120,
				},
				Rating: models.EffortRating{EffortScore: 7, Complexity: 6, Novelty: 5, Label: models.LabelFeature, Confidence: 0.9},
				Usage:  models.TokenUsage{Model: "test-model", TotalTokens: 250, UsageAvailable: true},
			},
			{
				Chunk: models.Chunk{
					SHA:         "bbb222",
					TotalChunks: 1,
					AuthorID:    &team.Members[1].ID,
					AuthorEmail: team.Members[1].Email,
					Message:     "fix typo",
					Timestamp:   time.Now().Add(-24 * time.Hour),
					LinesAdded:  2,
				},
				Rating: models.EffortRating{EffortScore: 1, Complexity: 1, Novelty: 1, Label: models.LabelTrivial, Confidence: 0.95},
				Usage:  models.TokenUsage{Model: "test-model", TotalTokens: 250, UsageAvailable: true},
			},
		},
		CQIResult: &models.CQIResult{
			CQI:               cqi,
			BaseScore:         cqi,
			PenaltyMultiplier: 1.0,
			Components:        models.ComponentScores{EffortBalance: 82.5, LocBalance: 60, TemporalSpread: 50, OwnershipSpread: 75},
		},
	}
}

func TestTeamService_RegisterTeams(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTeamService(client)
	ctx := context.Background()

	teams := []models.Team{testTeam(1, "team-alpha"), testTeam(2, "team-beta")}
	require.NoError(t, svc.RegisterTeams(ctx, 100, teams))

	results, err := svc.ListResults(ctx, 100)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "team-alpha", results[0].TeamName)
	assert.Nil(t, results[0].CQI, "unanalyzed team has no score")

	// Re-registering with a changed name updates in place.
	teams[0].Name = "team-alpha-renamed"
	require.NoError(t, svc.RegisterTeams(ctx, 100, teams))

	results, err = svc.ListResults(ctx, 100)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "team-alpha-renamed", results[0].TeamName)
}

func TestTeamService_SaveReport(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTeamService(client)
	ctx := context.Background()

	team := testTeam(1, "team-alpha")
	require.NoError(t, svc.RegisterTeams(ctx, 100, []models.Team{team}))
	require.NoError(t, svc.SaveReport(ctx, 100, team, testReport(team, 74.2)))

	result, err := svc.GetResult(ctx, 100, team.ID)
	require.NoError(t, err)
	require.NotNil(t, result.CQI)
	assert.InDelta(t, 74.2, *result.CQI, 0.001)
	assert.True(t, result.IsSuspicious)
	assert.Contains(t, result.Flags, models.FlagUnevenDistribution)
	require.NotNil(t, result.Components)
	assert.InDelta(t, 82.5, result.Components.EffortBalance, 0.001)

	chunks, err := client.AnalyzedChunk.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, chunks, 2)
}

func TestTeamService_SaveReportReplacesPreviousRun(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTeamService(client)
	ctx := context.Background()

	team := testTeam(1, "team-alpha")
	require.NoError(t, svc.SaveReport(ctx, 100, team, testReport(team, 60.0)))
	require.NoError(t, svc.SaveReport(ctx, 100, team, testReport(team, 81.0)))

	result, err := svc.GetResult(ctx, 100, team.ID)
	require.NoError(t, err)
	require.NotNil(t, result.CQI)
	assert.InDelta(t, 81.0, *result.CQI, 0.001)

	// Chunks from the first run must be gone.
	chunks, err := client.AnalyzedChunk.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, chunks, 2)

	rows, err := client.TeamParticipation.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestTeamService_SaveReportWithoutPriorRegistration(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTeamService(client)
	ctx := context.Background()

	team := testTeam(3, "team-gamma")
	require.NoError(t, svc.SaveReport(ctx, 200, team, testReport(team, 55.0)))

	result, err := svc.GetResult(ctx, 200, team.ID)
	require.NoError(t, err)
	require.NotNil(t, result.CQI)
	assert.InDelta(t, 55.0, *result.CQI, 0.001)
}

func TestTeamService_AnalyzedTeamIDs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTeamService(client)
	ctx := context.Background()

	teamA := testTeam(1, "team-alpha")
	teamB := testTeam(2, "team-beta")
	require.NoError(t, svc.RegisterTeams(ctx, 100, []models.Team{teamA, teamB}))
	require.NoError(t, svc.SaveReport(ctx, 100, teamA, testReport(teamA, 70.0)))

	analyzed, err := svc.AnalyzedTeamIDs(ctx, 100)
	require.NoError(t, err)
	assert.True(t, analyzed[teamA.ID])
	assert.False(t, analyzed[teamB.ID], "team without a score is not analyzed")
}

func TestTeamService_GetResultNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTeamService(client)

	_, err := svc.GetResult(context.Background(), 100, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_ResultsScopedToExercise(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTeamService(client)
	ctx := context.Background()

	require.NoError(t, svc.RegisterTeams(ctx, 100, []models.Team{testTeam(1, "team-alpha")}))
	require.NoError(t, svc.RegisterTeams(ctx, 200, []models.Team{testTeam(1, "team-alpha")}))

	results, err := svc.ListResults(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
