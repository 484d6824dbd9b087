package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatchup struct {
	events []CatchupEvent
	err    error
	calls  []int64
}

func (f *fakeCatchup) EventsSince(_ context.Context, _ string, sinceID int64, limit int) ([]CatchupEvent, error) {
	f.calls = append(f.calls, sinceID)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.events) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

func TestSubscriberManager_BroadcastReachesAllSubscribers(t *testing.T) {
	m := NewSubscriberManager(nil)
	channel := ExerciseChannel(42)

	sub1, err := m.Subscribe(context.Background(), channel, 0)
	require.NoError(t, err)
	sub2, err := m.Subscribe(context.Background(), channel, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, m.SubscriberCount(channel))

	m.Broadcast(channel, []byte(`{"type":"START"}`))

	assert.Equal(t, `{"type":"START"}`, string(<-sub1.C))
	assert.Equal(t, `{"type":"START"}`, string(<-sub2.C))
}

func TestSubscriberManager_BroadcastScopedToChannel(t *testing.T) {
	m := NewSubscriberManager(nil)

	sub42, err := m.Subscribe(context.Background(), ExerciseChannel(42), 0)
	require.NoError(t, err)
	sub43, err := m.Subscribe(context.Background(), ExerciseChannel(43), 0)
	require.NoError(t, err)

	m.Broadcast(ExerciseChannel(42), []byte(`{"n":1}`))

	assert.Len(t, sub42.C, 1)
	assert.Len(t, sub43.C, 0)
}

func TestSubscriberManager_UnsubscribeClosesChannel(t *testing.T) {
	m := NewSubscriberManager(nil)
	channel := ExerciseChannel(42)

	sub, err := m.Subscribe(context.Background(), channel, 0)
	require.NoError(t, err)
	m.Unsubscribe(sub)

	_, open := <-sub.C
	assert.False(t, open)
	assert.Equal(t, 0, m.SubscriberCount(channel))

	// Unsubscribing twice must not panic on the closed channel.
	m.Unsubscribe(sub)
}

func TestSubscriberManager_SlowSubscriberDropped(t *testing.T) {
	m := NewSubscriberManager(nil)
	channel := ExerciseChannel(42)

	sub, err := m.Subscribe(context.Background(), channel, 0)
	require.NoError(t, err)

	for i := 0; i < subscriberBuffer+1; i++ {
		m.Broadcast(channel, []byte(fmt.Sprintf(`{"n":%d}`, i)))
	}

	assert.Equal(t, 0, m.SubscriberCount(channel), "a full queue drops the subscriber")

	// The queue still holds the messages delivered before the drop, then
	// the closed channel reports the disconnect.
	for i := 0; i < subscriberBuffer; i++ {
		_, open := <-sub.C
		require.True(t, open)
	}
	_, open := <-sub.C
	assert.False(t, open)
}

func TestSubscriberManager_CatchupReplayedBeforeLiveEvents(t *testing.T) {
	catchup := &fakeCatchup{events: []CatchupEvent{
		{ID: 10, Payload: map[string]any{"type": TypeStart, "total": float64(3)}},
		{ID: 11, Payload: map[string]any{"type": TypeUpdate, "processed": float64(1)}},
	}}
	m := NewSubscriberManager(catchup)

	sub, err := m.Subscribe(context.Background(), ExerciseChannel(42), 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, catchup.calls)

	var first map[string]any
	require.NoError(t, json.Unmarshal(<-sub.C, &first))
	assert.Equal(t, TypeStart, first["type"])
	assert.Equal(t, float64(10), first["db_event_id"], "stored events gain their id on replay")

	var second map[string]any
	require.NoError(t, json.Unmarshal(<-sub.C, &second))
	assert.Equal(t, float64(11), second["db_event_id"])

	m.Broadcast(ExerciseChannel(42), []byte(`{"type":"DONE"}`))
	assert.Equal(t, `{"type":"DONE"}`, string(<-sub.C))
}

func TestSubscriberManager_CatchupOverflowSignalled(t *testing.T) {
	var stored []CatchupEvent
	for i := 0; i < catchupLimit+10; i++ {
		stored = append(stored, CatchupEvent{ID: int64(i + 1), Payload: map[string]any{"type": TypeUpdate}})
	}
	m := NewSubscriberManager(&fakeCatchup{events: stored})

	sub, err := m.Subscribe(context.Background(), ExerciseChannel(42), 0)
	require.NoError(t, err)

	for i := 0; i < catchupLimit; i++ {
		<-sub.C
	}
	var marker map[string]any
	require.NoError(t, json.Unmarshal(<-sub.C, &marker))
	assert.Equal(t, "catchup.overflow", marker["type"])
	assert.Equal(t, true, marker["has_more"])
}

func TestSubscriberManager_CatchupFailureStillSubscribes(t *testing.T) {
	m := NewSubscriberManager(&fakeCatchup{err: fmt.Errorf("query failed")})

	sub, err := m.Subscribe(context.Background(), ExerciseChannel(42), 0)
	require.NoError(t, err, "catch-up failure degrades to live-only")

	m.Broadcast(ExerciseChannel(42), []byte(`{"type":"START"}`))
	assert.Len(t, sub.C, 1)
}

func TestExerciseChannel(t *testing.T) {
	assert.Equal(t, "exercise:42", ExerciseChannel(42))
}
