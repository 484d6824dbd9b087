package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates JSONB GIN indexes for PostgreSQL. These
// support containment queries on event payloads and team flags that Ent
// schema indexes cannot express.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for event payload containment queries (e.g. by type)
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_payload_gin
		ON events USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create events payload GIN index: %w", err)
	}

	// GIN index for flag filtering on team participations
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_team_participations_flags_gin
		ON team_participations USING gin(flags jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create team flags GIN index: %w", err)
	}

	return nil
}
