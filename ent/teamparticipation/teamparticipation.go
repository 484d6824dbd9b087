// Code generated by ent, DO NOT EDIT.

package teamparticipation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the teamparticipation type in the database.
	Label = "team_participation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExerciseID holds the string denoting the exercise_id field in the database.
	FieldExerciseID = "exercise_id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldTeamName holds the string denoting the team_name field in the database.
	FieldTeamName = "team_name"
	// FieldRepositoryURI holds the string denoting the repository_uri field in the database.
	FieldRepositoryURI = "repository_uri"
	// FieldMembers holds the string denoting the members field in the database.
	FieldMembers = "members"
	// FieldCqi holds the string denoting the cqi field in the database.
	FieldCqi = "cqi"
	// FieldIsSuspicious holds the string denoting the is_suspicious field in the database.
	FieldIsSuspicious = "is_suspicious"
	// FieldBalanceScore holds the string denoting the balance_score field in the database.
	FieldBalanceScore = "balance_score"
	// FieldComponents holds the string denoting the components field in the database.
	FieldComponents = "components"
	// FieldFlags holds the string denoting the flags field in the database.
	FieldFlags = "flags"
	// FieldPenalties holds the string denoting the penalties field in the database.
	FieldPenalties = "penalties"
	// FieldTokenTotals holds the string denoting the token_totals field in the database.
	FieldTokenTotals = "token_totals"
	// FieldAnalyzedAt holds the string denoting the analyzed_at field in the database.
	FieldAnalyzedAt = "analyzed_at"
	// EdgeChunks holds the string denoting the chunks edge name in mutations.
	EdgeChunks = "chunks"
	// Table holds the table name of the teamparticipation in the database.
	Table = "team_participations"
	// ChunksTable is the table that holds the chunks relation/edge.
	ChunksTable = "analyzed_chunks"
	// ChunksInverseTable is the table name for the AnalyzedChunk entity.
	// It exists in this package in order to avoid circular dependency with the "analyzedchunk" package.
	ChunksInverseTable = "analyzed_chunks"
	// ChunksColumn is the table column denoting the chunks relation/edge.
	ChunksColumn = "participation_id"
)

// Columns holds all SQL columns for teamparticipation fields.
var Columns = []string{
	FieldID,
	FieldExerciseID,
	FieldTeamID,
	FieldTeamName,
	FieldRepositoryURI,
	FieldMembers,
	FieldCqi,
	FieldIsSuspicious,
	FieldBalanceScore,
	FieldComponents,
	FieldFlags,
	FieldPenalties,
	FieldTokenTotals,
	FieldAnalyzedAt,
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
	// DefaultIsSuspicious holds the default value on creation for the "is_suspicious" field.
	DefaultIsSuspicious bool
)

// OrderOption defines the ordering options for the TeamParticipation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExerciseID orders the results by the exercise_id field.
func ByExerciseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByTeamName orders the results by the team_name field.
func ByTeamName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamName, opts...).ToFunc()
}

// ByRepositoryURI orders the results by the repository_uri field.
func ByRepositoryURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepositoryURI, opts...).ToFunc()
}

// ByCqi orders the results by the cqi field.
func ByCqi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCqi, opts...).ToFunc()
}

// ByIsSuspicious orders the results by the is_suspicious field.
func ByIsSuspicious(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSuspicious, opts...).ToFunc()
}

// ByBalanceScore orders the results by the balance_score field.
func ByBalanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBalanceScore, opts...).ToFunc()
}

// ByAnalyzedAt orders the results by the analyzed_at field.
func ByAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyzedAt, opts...).ToFunc()
}

// ByChunksCount orders the results by chunks count.
func ByChunksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChunksStep(), opts...)
	}
}

// ByChunks orders the results by chunks terms.
func ByChunks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChunksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChunksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChunksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChunksTable, ChunksColumn),
	)
}
