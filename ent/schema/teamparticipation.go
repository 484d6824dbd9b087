package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/fairlens/fairlens/pkg/models"
)

// TeamParticipation holds the schema definition for the TeamParticipation
// entity: one team's persisted analysis outcome for one exercise.
type TeamParticipation struct {
	ent.Schema
}

// Fields of the TeamParticipation.
func (TeamParticipation) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("exercise_id").
			Immutable(),
		field.Int64("team_id").
			Immutable(),
		field.String("team_name"),
		field.String("repository_uri"),
		field.JSON("members", []models.Member{}).
			Optional(),
		field.Float("cqi").
			Optional().
			Nillable().
			Comment("Null until the team has been fully analyzed"),
		field.Bool("is_suspicious").
			Default(false),
		field.Float("balance_score").
			Optional().
			Nillable(),
		field.JSON("components", &models.ComponentScores{}).
			Optional(),
		field.JSON("flags", []string{}).
			Optional(),
		field.JSON("penalties", []models.Penalty{}).
			Optional(),
		field.JSON("token_totals", &models.TokenTotals{}).
			Optional(),
		field.Time("analyzed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the TeamParticipation.
func (TeamParticipation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chunks", AnalyzedChunk.Type),
	}
}

// Indexes of the TeamParticipation.
func (TeamParticipation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise_id", "team_id").
			Unique(),
		index.Fields("exercise_id"),
	}
}
