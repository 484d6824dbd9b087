package services

import (
	"context"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairlens/fairlens/test/util"
)

func TestEmailMappingService_UpsertAndLookup(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEmailMappingService(client)
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, 100, "alice@example.edu", 10, "Alice"))
	require.NoError(t, svc.Upsert(ctx, 100, "  Bob@Example.edu ", 11, "Bob"))

	mappings, err := svc.MappingsFor(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"alice@example.edu": 10,
		"bob@example.edu":   11,
	}, mappings)
}

func TestEmailMappingService_UpsertUpdatesInPlace(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEmailMappingService(client)
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, 100, "alice@example.edu", 10, "Alice"))
	require.NoError(t, svc.Upsert(ctx, 100, "alice@example.edu", 12, "Alice Smith"))

	mappings, err := svc.MappingsFor(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"alice@example.edu": 12}, mappings)

	rows, err := client.EmailMapping.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestEmailMappingService_ScopedToExercise(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEmailMappingService(client)
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, 100, "alice@example.edu", 10, "Alice"))
	require.NoError(t, svc.Upsert(ctx, 200, "alice@example.edu", 99, "Alice"))

	mappings, err := svc.MappingsFor(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"alice@example.edu": 10}, mappings)
}

func TestEmailMappingService_RejectsEmptyEmail(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEmailMappingService(client)

	err := svc.Upsert(context.Background(), 100, "   ", 10, "Nobody")
	assert.True(t, IsValidationError(err))
}
