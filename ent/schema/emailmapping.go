package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EmailMapping holds the schema definition for the EmailMapping entity:
// a manual git-email to student resolution for one exercise.
type EmailMapping struct {
	ent.Schema
}

// Fields of the EmailMapping.
func (EmailMapping) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("exercise_id").
			Immutable(),
		field.String("git_email").
			Immutable(),
		field.Int64("student_id"),
		field.String("student_name"),
	}
}

// Indexes of the EmailMapping.
func (EmailMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise_id", "git_email").
			Unique(),
	}
}
