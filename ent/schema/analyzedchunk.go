package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalyzedChunk holds the schema definition for the AnalyzedChunk entity:
// one rated chunk of the latest successful run of its team.
type AnalyzedChunk struct {
	ent.Schema
}

// Fields of the AnalyzedChunk.
func (AnalyzedChunk) Fields() []ent.Field {
	return []ent.Field{
		field.Int("participation_id"),
		field.String("sha").
			Immutable(),
		field.Int("chunk_index").
			Default(0),
		field.Int("total_chunks").
			Default(1),
		field.Int64("author_id").
			Optional().
			Nillable(),
		field.String("author_email"),
		field.Text("message"),
		field.Time("committed_at"),
		field.Int("lines_added").
			Default(0),
		field.Int("lines_deleted").
			Default(0),
		field.Bool("is_bundled").
			Default(false),
		field.JSON("bundled_shas", []string{}).
			Optional(),
		field.Int("effort_score"),
		field.Int("complexity"),
		field.Int("novelty"),
		field.String("label"),
		field.Float("confidence"),
		field.Text("reasoning").
			Optional(),
		field.Bool("is_error").
			Default(false),
		field.Bool("is_external_contributor").
			Default(false),
		field.String("model").
			Optional(),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Bool("usage_available").
			Default(false),
	}
}

// Edges of the AnalyzedChunk.
func (AnalyzedChunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("participation", TeamParticipation.Type).
			Ref("chunks").
			Field("participation_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AnalyzedChunk.
func (AnalyzedChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sha"),
		index.Fields("participation_id"),
	}
}
