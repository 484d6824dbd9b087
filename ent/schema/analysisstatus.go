package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisStatus holds the schema definition for the AnalysisStatus entity.
// One row per exercise; the single source of truth for run state.
type AnalysisStatus struct {
	ent.Schema
}

// Fields of the AnalysisStatus.
func (AnalysisStatus) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("exercise_id").
			Unique().
			Immutable(),
		field.Enum("state").
			Values("idle", "running", "paused", "done", "error").
			Default("idle"),
		field.Int("total_teams").
			Default(0),
		field.Int("processed_teams").
			Default(0),
		field.String("current_team_name").
			Optional().
			Nillable(),
		field.String("current_stage").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("last_updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Text("error_message").
			Optional().
			Nillable(),
	}
}

// Indexes of the AnalysisStatus.
func (AnalysisStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
	}
}
