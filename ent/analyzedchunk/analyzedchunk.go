// Code generated by ent, DO NOT EDIT.

package analyzedchunk

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analyzedchunk type in the database.
	Label = "analyzed_chunk"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldParticipationID holds the string denoting the participation_id field in the database.
	FieldParticipationID = "participation_id"
	// FieldSha holds the string denoting the sha field in the database.
	FieldSha = "sha"
	// FieldChunkIndex holds the string denoting the chunk_index field in the database.
	FieldChunkIndex = "chunk_index"
	// FieldTotalChunks holds the string denoting the total_chunks field in the database.
	FieldTotalChunks = "total_chunks"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldAuthorEmail holds the string denoting the author_email field in the database.
	FieldAuthorEmail = "author_email"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldCommittedAt holds the string denoting the committed_at field in the database.
	FieldCommittedAt = "committed_at"
	// FieldLinesAdded holds the string denoting the lines_added field in the database.
	FieldLinesAdded = "lines_added"
	// FieldLinesDeleted holds the string denoting the lines_deleted field in the database.
	FieldLinesDeleted = "lines_deleted"
	// FieldIsBundled holds the string denoting the is_bundled field in the database.
	FieldIsBundled = "is_bundled"
	// FieldBundledShas holds the string denoting the bundled_shas field in the database.
	FieldBundledShas = "bundled_shas"
	// FieldEffortScore holds the string denoting the effort_score field in the database.
	FieldEffortScore = "effort_score"
	// FieldComplexity holds the string denoting the complexity field in the database.
	FieldComplexity = "complexity"
	// FieldNovelty holds the string denoting the novelty field in the database.
	FieldNovelty = "novelty"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldIsError holds the string denoting the is_error field in the database.
	FieldIsError = "is_error"
	// FieldIsExternalContributor holds the string denoting the is_external_contributor field in the database.
	FieldIsExternalContributor = "is_external_contributor"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldPromptTokens holds the string denoting the prompt_tokens field in the database.
	FieldPromptTokens = "prompt_tokens"
	// FieldCompletionTokens holds the string denoting the completion_tokens field in the database.
	FieldCompletionTokens = "completion_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldUsageAvailable holds the string denoting the usage_available field in the database.
	FieldUsageAvailable = "usage_available"
	// EdgeParticipation holds the string denoting the participation edge name in mutations.
	EdgeParticipation = "participation"
	// Table holds the table name of the analyzedchunk in the database.
	Table = "analyzed_chunks"
	// ParticipationTable is the table that holds the participation relation/edge.
	ParticipationTable = "analyzed_chunks"
	// ParticipationInverseTable is the table name for the TeamParticipation entity.
	// It exists in this package in order to avoid circular dependency with the "teamparticipation" package.
	ParticipationInverseTable = "team_participations"
	// ParticipationColumn is the table column denoting the participation relation/edge.
	ParticipationColumn = "participation_id"
)

// Columns holds all SQL columns for analyzedchunk fields.
var Columns = []string{
	FieldID,
	FieldParticipationID,
	FieldSha,
	FieldChunkIndex,
	FieldTotalChunks,
	FieldAuthorID,
	FieldAuthorEmail,
	FieldMessage,
	FieldCommittedAt,
	FieldLinesAdded,
	FieldLinesDeleted,
	FieldIsBundled,
	FieldBundledShas,
	FieldEffortScore,
	FieldComplexity,
	FieldNovelty,
	FieldLabel,
	FieldConfidence,
	FieldReasoning,
	FieldIsError,
	FieldIsExternalContributor,
	FieldModel,
	FieldPromptTokens,
	FieldCompletionTokens,
	FieldTotalTokens,
	FieldUsageAvailable,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultChunkIndex holds the default value on creation for the "chunk_index" field.
	DefaultChunkIndex int
	// DefaultTotalChunks holds the default value on creation for the "total_chunks" field.
	DefaultTotalChunks int
	// DefaultLinesAdded holds the default value on creation for the "lines_added" field.
	DefaultLinesAdded int
	// DefaultLinesDeleted holds the default value on creation for the "lines_deleted" field.
	DefaultLinesDeleted int
	// DefaultIsBundled holds the default value on creation for the "is_bundled" field.
	DefaultIsBundled bool
	// DefaultIsError holds the default value on creation for the "is_error" field.
	DefaultIsError bool
	// DefaultIsExternalContributor holds the default value on creation for the "is_external_contributor" field.
	DefaultIsExternalContributor bool
	// DefaultPromptTokens holds the default value on creation for the "prompt_tokens" field.
	DefaultPromptTokens int
	// DefaultCompletionTokens holds the default value on creation for the "completion_tokens" field.
	DefaultCompletionTokens int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// DefaultUsageAvailable holds the default value on creation for the "usage_available" field.
	DefaultUsageAvailable bool
)

// OrderOption defines the ordering options for the AnalyzedChunk queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParticipationID orders the results by the participation_id field.
func ByParticipationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipationID, opts...).ToFunc()
}

// BySha orders the results by the sha field.
func BySha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSha, opts...).ToFunc()
}

// ByChunkIndex orders the results by the chunk_index field.
func ByChunkIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkIndex, opts...).ToFunc()
}

// ByTotalChunks orders the results by the total_chunks field.
func ByTotalChunks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalChunks, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByAuthorEmail orders the results by the author_email field.
func ByAuthorEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorEmail, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByCommittedAt orders the results by the committed_at field.
func ByCommittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommittedAt, opts...).ToFunc()
}

// ByLinesAdded orders the results by the lines_added field.
func ByLinesAdded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinesAdded, opts...).ToFunc()
}

// ByLinesDeleted orders the results by the lines_deleted field.
func ByLinesDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinesDeleted, opts...).ToFunc()
}

// ByIsBundled orders the results by the is_bundled field.
func ByIsBundled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBundled, opts...).ToFunc()
}

// ByEffortScore orders the results by the effort_score field.
func ByEffortScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffortScore, opts...).ToFunc()
}

// ByComplexity orders the results by the complexity field.
func ByComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexity, opts...).ToFunc()
}

// ByNovelty orders the results by the novelty field.
func ByNovelty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNovelty, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByIsError orders the results by the is_error field.
func ByIsError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsError, opts...).ToFunc()
}

// ByIsExternalContributor orders the results by the is_external_contributor field.
func ByIsExternalContributor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsExternalContributor, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByPromptTokens orders the results by the prompt_tokens field.
func ByPromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokens, opts...).ToFunc()
}

// ByCompletionTokens orders the results by the completion_tokens field.
func ByCompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByUsageAvailable orders the results by the usage_available field.
func ByUsageAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsageAvailable, opts...).ToFunc()
}

// ByParticipationField orders the results by participation field.
func ByParticipationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipationStep(), sql.OrderByField(field, opts...))
	}
}
func newParticipationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParticipationTable, ParticipationColumn),
	)
}
