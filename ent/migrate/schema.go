// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisStatusColumns holds the columns for the "analysis_status" table.
	AnalysisStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exercise_id", Type: field.TypeInt64, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"idle", "running", "paused", "done", "error"}, Default: "idle"},
		{Name: "total_teams", Type: field.TypeInt, Default: 0},
		{Name: "processed_teams", Type: field.TypeInt, Default: 0},
		{Name: "current_team_name", Type: field.TypeString, Nullable: true},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_updated_at", Type: field.TypeTime},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AnalysisStatusTable holds the schema information for the "analysis_status" table.
	AnalysisStatusTable = &schema.Table{
		Name:       "analysis_status",
		Columns:    AnalysisStatusColumns,
		PrimaryKey: []*schema.Column{AnalysisStatusColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisstatus_state",
				Unique:  false,
				Columns: []*schema.Column{AnalysisStatusColumns[2]},
			},
		},
	}
	// AnalyzedChunksColumns holds the columns for the "analyzed_chunks" table.
	AnalyzedChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sha", Type: field.TypeString},
		{Name: "chunk_index", Type: field.TypeInt, Default: 0},
		{Name: "total_chunks", Type: field.TypeInt, Default: 1},
		{Name: "author_id", Type: field.TypeInt64, Nullable: true},
		{Name: "author_email", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "committed_at", Type: field.TypeTime},
		{Name: "lines_added", Type: field.TypeInt, Default: 0},
		{Name: "lines_deleted", Type: field.TypeInt, Default: 0},
		{Name: "is_bundled", Type: field.TypeBool, Default: false},
		{Name: "bundled_shas", Type: field.TypeJSON, Nullable: true},
		{Name: "effort_score", Type: field.TypeInt},
		{Name: "complexity", Type: field.TypeInt},
		{Name: "novelty", Type: field.TypeInt},
		{Name: "label", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_error", Type: field.TypeBool, Default: false},
		{Name: "is_external_contributor", Type: field.TypeBool, Default: false},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "usage_available", Type: field.TypeBool, Default: false},
		{Name: "participation_id", Type: field.TypeInt},
	}
	// AnalyzedChunksTable holds the schema information for the "analyzed_chunks" table.
	AnalyzedChunksTable = &schema.Table{
		Name:       "analyzed_chunks",
		Columns:    AnalyzedChunksColumns,
		PrimaryKey: []*schema.Column{AnalyzedChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyzed_chunks_team_participations_chunks",
				Columns:    []*schema.Column{AnalyzedChunksColumns[25]},
				RefColumns: []*schema.Column{TeamParticipationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analyzedchunk_sha",
				Unique:  false,
				Columns: []*schema.Column{AnalyzedChunksColumns[1]},
			},
			{
				Name:    "analyzedchunk_participation_id",
				Unique:  false,
				Columns: []*schema.Column{AnalyzedChunksColumns[25]},
			},
		},
	}
	// EmailMappingsColumns holds the columns for the "email_mappings" table.
	EmailMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exercise_id", Type: field.TypeInt64},
		{Name: "git_email", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeInt64},
		{Name: "student_name", Type: field.TypeString},
	}
	// EmailMappingsTable holds the schema information for the "email_mappings" table.
	EmailMappingsTable = &schema.Table{
		Name:       "email_mappings",
		Columns:    EmailMappingsColumns,
		PrimaryKey: []*schema.Column{EmailMappingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emailmapping_exercise_id_git_email",
				Unique:  true,
				Columns: []*schema.Column{EmailMappingsColumns[1], EmailMappingsColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exercise_id", Type: field.TypeInt64},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[4]},
			},
			{
				Name:    "event_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
		},
	}
	// TeamParticipationsColumns holds the columns for the "team_participations" table.
	TeamParticipationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exercise_id", Type: field.TypeInt64},
		{Name: "team_id", Type: field.TypeInt64},
		{Name: "team_name", Type: field.TypeString},
		{Name: "repository_uri", Type: field.TypeString},
		{Name: "members", Type: field.TypeJSON, Nullable: true},
		{Name: "cqi", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_suspicious", Type: field.TypeBool, Default: false},
		{Name: "balance_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "components", Type: field.TypeJSON, Nullable: true},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "penalties", Type: field.TypeJSON, Nullable: true},
		{Name: "token_totals", Type: field.TypeJSON, Nullable: true},
		{Name: "analyzed_at", Type: field.TypeTime, Nullable: true},
	}
	// TeamParticipationsTable holds the schema information for the "team_participations" table.
	TeamParticipationsTable = &schema.Table{
		Name:       "team_participations",
		Columns:    TeamParticipationsColumns,
		PrimaryKey: []*schema.Column{TeamParticipationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "teamparticipation_exercise_id_team_id",
				Unique:  true,
				Columns: []*schema.Column{TeamParticipationsColumns[1], TeamParticipationsColumns[2]},
			},
			{
				Name:    "teamparticipation_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{TeamParticipationsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisStatusTable,
		AnalyzedChunksTable,
		EmailMappingsTable,
		EventsTable,
		TeamParticipationsTable,
	}
)

func init() {
	AnalyzedChunksTable.ForeignKeys[0].RefTable = TeamParticipationsTable
}
