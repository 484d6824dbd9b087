package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/pkg/services"
	"github.com/fairlens/fairlens/test/util"
)

func TestPublisher_PersistsEvents(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	pub := NewPublisher(db)
	es := services.NewEventService(client)

	require.NoError(t, pub.PublishStart(ctx, 42, 3))

	cqi := 81.5
	require.NoError(t, pub.PublishUpdate(ctx, 42, 1, 3, models.TeamResult{
		TeamID:   7,
		TeamName: "team-alpha",
		CQI:      &cqi,
	}))
	require.NoError(t, pub.PublishDone(ctx, 42, 3, models.TokenTotals{LLMCalls: 6, TotalTokens: 1200}))

	stored, err := es.EventsSince(ctx, ExerciseChannel(42), 0, 10)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	assert.Equal(t, TypeStart, stored[0].Payload["type"])
	assert.Equal(t, float64(3), stored[0].Payload["total"])

	assert.Equal(t, TypeUpdate, stored[1].Payload["type"])
	data, ok := stored[1].Payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "team-alpha", data["team_name"])
	assert.Equal(t, 81.5, data["cqi"])

	assert.Equal(t, TypeDone, stored[2].Payload["type"])
	assert.NotEmpty(t, stored[2].Payload["timestamp"])
	tokens, ok := stored[2].Payload["tokens"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(6), tokens["llm_calls"])
	assert.Equal(t, float64(1200), tokens["total_tokens"])
}

func TestPublisher_ErrorEventScopedToExercise(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	pub := NewPublisher(db)
	es := services.NewEventService(client)

	require.NoError(t, pub.PublishError(ctx, 42, "platform unreachable"))
	require.NoError(t, pub.PublishStart(ctx, 99, 1))

	stored, err := es.EventsSince(ctx, ExerciseChannel(42), 0, 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, TypeError, stored[0].Payload["type"])
	assert.Equal(t, "platform unreachable", stored[0].Payload["message"])
}

func TestInjectEventID(t *testing.T) {
	payload, err := json.Marshal(StartPayload{Type: TypeStart, ExerciseID: 42, Total: 3})
	require.NoError(t, err)

	out, err := injectEventID(payload, 17)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(17), m["db_event_id"])
	assert.Equal(t, TypeStart, m["type"])
	assert.Equal(t, float64(3), m["total"])
}

func TestInjectEventID_TruncatesOversizedPayload(t *testing.T) {
	big := map[string]any{
		"type":        TypeUpdate,
		"exercise_id": float64(42),
		"blob":        strings.Repeat("x", notifyLimit),
	}
	payload, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := injectEventID(payload, 17)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), notifyLimit)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, float64(17), m["db_event_id"])
	assert.Equal(t, TypeUpdate, m["type"])
	assert.Equal(t, float64(42), m["exercise_id"])
	assert.NotContains(t, m, "blob", "the envelope carries routing fields only")
}
