package services

import (
	"context"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairlens/fairlens/ent"
	"github.com/fairlens/fairlens/test/util"
)

func storeEvent(t *testing.T, client *ent.Client, exerciseID int64, channel string, payload map[string]any, createdAt time.Time) int64 {
	t.Helper()
	row, err := client.Event.Create().
		SetExerciseID(exerciseID).
		SetChannel(channel).
		SetPayload(payload).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return int64(row.ID)
}

func TestEventService_EventsSince(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEventService(client)
	ctx := context.Background()

	now := time.Now()
	first := storeEvent(t, client, 100, "exercise:100", map[string]any{"type": "START"}, now)
	storeEvent(t, client, 100, "exercise:100", map[string]any{"type": "UPDATE", "processed": float64(1)}, now)
	storeEvent(t, client, 200, "exercise:200", map[string]any{"type": "START"}, now)

	t.Run("from the beginning", func(t *testing.T) {
		events, err := svc.EventsSince(ctx, "exercise:100", 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "START", events[0].Payload["type"])
		assert.Equal(t, "UPDATE", events[1].Payload["type"])
		assert.Less(t, events[0].ID, events[1].ID, "oldest first")
	})

	t.Run("after a known id", func(t *testing.T) {
		events, err := svc.EventsSince(ctx, "exercise:100", first, 100)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "UPDATE", events[0].Payload["type"])
	})

	t.Run("respects limit", func(t *testing.T) {
		events, err := svc.EventsSince(ctx, "exercise:100", 0, 1)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("other channel invisible", func(t *testing.T) {
		events, err := svc.EventsSince(ctx, "exercise:300", 0, 100)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_CleanupExerciseEvents(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEventService(client)
	ctx := context.Background()

	now := time.Now()
	storeEvent(t, client, 100, "exercise:100", map[string]any{"type": "START"}, now)
	storeEvent(t, client, 100, "exercise:100", map[string]any{"type": "DONE"}, now)
	storeEvent(t, client, 200, "exercise:200", map[string]any{"type": "START"}, now)

	count, err := svc.CleanupExerciseEvents(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	remaining, err := svc.EventsSince(ctx, "exercise:200", 0, 100)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "other exercise untouched")
}

func TestEventService_CleanupOldEvents(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEventService(client)
	ctx := context.Background()

	storeEvent(t, client, 100, "exercise:100", map[string]any{"type": "START"}, time.Now().Add(-10*24*time.Hour))
	storeEvent(t, client, 100, "exercise:100", map[string]any{"type": "DONE"}, time.Now())

	count, err := svc.CleanupOldEvents(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := svc.EventsSince(ctx, "exercise:100", 0, 100)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "DONE", remaining[0].Payload["type"])
}
