package database

import (
	"context"
	"os"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/test/util"
)

func newTestClient(t *testing.T) *Client {
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpen, 0)
	assert.GreaterOrEqual(t, health.Open, health.InUse)
}

func TestFlagContainmentQuery(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	drv := entsql.OpenDB(dialect.Postgres, client.DB())
	require.NoError(t, CreateGINIndexes(ctx, drv))

	_, err := client.TeamParticipation.Create().
		SetExerciseID(100).
		SetTeamID(1).
		SetTeamName("team-alpha").
		SetRepositoryURI("https://vcs.example.edu/team-alpha.git").
		SetFlags([]string{string(models.FlagSoloContributor)}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.TeamParticipation.Create().
		SetExerciseID(100).
		SetTeamID(2).
		SetTeamName("team-beta").
		SetRepositoryURI("https://vcs.example.edu/team-beta.git").
		SetFlags([]string{string(models.FlagLateWorkConcentration)}).
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT team_name FROM team_participations WHERE flags @> $1`,
		`["SOLO_CONTRIBUTOR"]`,
	)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"team-alpha"}, names)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	for _, key := range envKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "fairlens", cfg.User)
		assert.Equal(t, "fairlens", cfg.Database)
		assert.Equal(t, 10, cfg.MaxOpenConns)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "production")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "production", cfg.Database)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "not_a_number")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfig_ConnString(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "fairlens",
		Password: "secret",
		Database: "fairlens",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=fairlens password=secret dbname=fairlens sslmode=disable",
		cfg.ConnString())
}
