package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/pkg/services"
	"github.com/fairlens/fairlens/test/util"
)

// receive waits for one message on the subscriber with a deadline so a
// lost NOTIFY fails the test instead of hanging it.
func receive(t *testing.T, sub *Subscriber) map[string]any {
	t.Helper()
	select {
	case raw, ok := <-sub.C:
		require.True(t, ok, "subscriber dropped")
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		return m
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestEventPipeline_PublishToSubscriber(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	manager := NewSubscriberManager(NewEventServiceAdapter(services.NewEventService(client)))

	// NOTIFY channels are global, not schema-scoped, so the listener can
	// use the base connection while the publisher writes into the test
	// schema.
	listener := NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	manager.SetListener(listener)

	const exerciseID = 314159
	sub, err := manager.Subscribe(ctx, ExerciseChannel(exerciseID), 0)
	require.NoError(t, err)
	t.Cleanup(func() { manager.Unsubscribe(sub) })

	pub := NewPublisher(db)
	require.NoError(t, pub.PublishStart(ctx, exerciseID, 2))

	cqi := 72.0
	require.NoError(t, pub.PublishUpdate(ctx, exerciseID, 1, 2, models.TeamResult{
		TeamID:   1,
		TeamName: "team-alpha",
		CQI:      &cqi,
	}))
	require.NoError(t, pub.PublishDone(ctx, exerciseID, 2, models.TokenTotals{}))

	start := receive(t, sub)
	assert.Equal(t, TypeStart, start["type"])
	assert.Equal(t, float64(2), start["total"])
	assert.NotZero(t, start["db_event_id"], "live events carry their stored id")

	update := receive(t, sub)
	assert.Equal(t, TypeUpdate, update["type"])
	data, ok := update["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "team-alpha", data["team_name"])

	done := receive(t, sub)
	assert.Equal(t, TypeDone, done["type"])
	assert.Equal(t, float64(2), done["processed"])
}

func TestEventPipeline_LateSubscriberCatchesUp(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	manager := NewSubscriberManager(NewEventServiceAdapter(services.NewEventService(client)))
	listener := NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	manager.SetListener(listener)

	const exerciseID = 271828
	pub := NewPublisher(db)
	require.NoError(t, pub.PublishStart(ctx, exerciseID, 2))
	require.NoError(t, pub.PublishUpdate(ctx, exerciseID, 1, 2, models.TeamResult{TeamName: "team-alpha"}))

	// Attach after two events already happened.
	sub, err := manager.Subscribe(ctx, ExerciseChannel(exerciseID), 0)
	require.NoError(t, err)
	t.Cleanup(func() { manager.Unsubscribe(sub) })

	start := receive(t, sub)
	assert.Equal(t, TypeStart, start["type"])
	update := receive(t, sub)
	assert.Equal(t, TypeUpdate, update["type"])

	// Live events continue on the same stream after replay.
	require.NoError(t, pub.PublishDone(ctx, exerciseID, 2, models.TokenTotals{}))
	done := receive(t, sub)
	assert.Equal(t, TypeDone, done["type"])
}

func TestEventPipeline_UnlistenAfterLastSubscriber(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	manager := NewSubscriberManager(NewEventServiceAdapter(services.NewEventService(client)))
	listener := NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	manager.SetListener(listener)

	const exerciseID = 161803
	sub, err := manager.Subscribe(ctx, ExerciseChannel(exerciseID), 0)
	require.NoError(t, err)
	manager.Unsubscribe(sub)

	// Events published with nobody attached are persisted but reach no
	// subscriber; a fresh attach replays them from the table.
	pub := NewPublisher(db)
	require.NoError(t, pub.PublishStart(ctx, exerciseID, 1))

	sub2, err := manager.Subscribe(ctx, ExerciseChannel(exerciseID), 0)
	require.NoError(t, err)
	t.Cleanup(func() { manager.Unsubscribe(sub2) })

	start := receive(t, sub2)
	assert.Equal(t, TypeStart, start["type"])
}
