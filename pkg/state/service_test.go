package state

import (
	"context"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/test/util"
)

func TestStateService_FreshStart(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	resumed, err := svc.StartAnalysis(ctx, 100, 12)
	require.NoError(t, err)
	assert.False(t, resumed)

	status, err := svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, status.State)
	assert.Equal(t, 12, status.TotalTeams)
	assert.Equal(t, 0, status.ProcessedTeams)
	assert.NotNil(t, status.StartedAt)
}

func TestStateService_StartWhileRunningConflicts(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, err := svc.StartAnalysis(ctx, 100, 12)
	require.NoError(t, err)

	_, err = svc.StartAnalysis(ctx, 100, 12)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestStateService_CancelThenResumeKeepsProgress(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, err := svc.StartAnalysis(ctx, 100, 12)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateProgress(ctx, 100, 5, "team-echo", models.StageAIAnalyzing))
	require.NoError(t, svc.CancelAnalysis(ctx, 100))

	status, err := svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StatePaused, status.State)
	assert.Equal(t, 5, status.ProcessedTeams)

	resumed, err := svc.StartAnalysis(ctx, 100, 12)
	require.NoError(t, err)
	assert.True(t, resumed)

	status, err = svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, status.State)
	assert.Equal(t, 5, status.ProcessedTeams, "resume keeps the processed count")
}

func TestStateService_CancelIsIdempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, err := svc.StartAnalysis(ctx, 100, 3)
	require.NoError(t, err)
	require.NoError(t, svc.CancelAnalysis(ctx, 100))
	require.NoError(t, svc.CancelAnalysis(ctx, 100))

	status, err := svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StatePaused, status.State)
}

func TestStateService_ProgressAfterCancelDropped(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, err := svc.StartAnalysis(ctx, 100, 3)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateProgress(ctx, 100, 1, "team-alpha", models.StageDownloading))
	require.NoError(t, svc.CancelAnalysis(ctx, 100))

	// A worker finishing after the cancel must not overwrite the pause.
	require.NoError(t, svc.UpdateProgress(ctx, 100, 2, "team-beta", models.StageDone))

	status, err := svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StatePaused, status.State)
	assert.Equal(t, 1, status.ProcessedTeams)
}

func TestStateService_CompleteAndRestartFresh(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, err := svc.StartAnalysis(ctx, 100, 2)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateProgress(ctx, 100, 2, "team-beta", models.StageDone))
	require.NoError(t, svc.CompleteAnalysis(ctx, 100))

	status, err := svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StateDone, status.State)
	assert.Empty(t, status.CurrentTeamName)

	// A new start from DONE resets the counters.
	resumed, err := svc.StartAnalysis(ctx, 100, 4)
	require.NoError(t, err)
	assert.False(t, resumed)

	status, err = svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, status.State)
	assert.Equal(t, 4, status.TotalTeams)
	assert.Equal(t, 0, status.ProcessedTeams)
}

func TestStateService_FailRecordsMessage(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, err := svc.StartAnalysis(ctx, 100, 2)
	require.NoError(t, err)
	require.NoError(t, svc.FailAnalysis(ctx, 100, "platform unreachable"))

	status, err := svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StateError, status.State)
	assert.Equal(t, "platform unreachable", status.ErrorMessage)

	// ERROR starts fresh and clears the message.
	_, err = svc.StartAnalysis(ctx, 100, 2)
	require.NoError(t, err)

	status, err = svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, status.State)
	assert.Empty(t, status.ErrorMessage)
}

func TestStateService_UnknownExerciseIsIdle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)

	status, err := svc.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, status.State)

	running, err := svc.IsRunning(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, running)
}

func TestStateService_PromoteRunningToPaused(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, err := svc.StartAnalysis(ctx, 100, 2)
	require.NoError(t, err)
	_, err = svc.StartAnalysis(ctx, 200, 5)
	require.NoError(t, err)
	require.NoError(t, svc.CompleteAnalysis(ctx, 200))

	n, err := svc.PromoteRunningToPaused(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	status, err := svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, StatePaused, status.State)

	status, err = svc.Get(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, StateDone, status.State, "finished run untouched")
}
