// Code generated by ent, DO NOT EDIT.

package analysisstatus

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisstatus type in the database.
	Label = "analysis_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExerciseID holds the string denoting the exercise_id field in the database.
	FieldExerciseID = "exercise_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldTotalTeams holds the string denoting the total_teams field in the database.
	FieldTotalTeams = "total_teams"
	// FieldProcessedTeams holds the string denoting the processed_teams field in the database.
	FieldProcessedTeams = "processed_teams"
	// FieldCurrentTeamName holds the string denoting the current_team_name field in the database.
	FieldCurrentTeamName = "current_team_name"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastUpdatedAt holds the string denoting the last_updated_at field in the database.
	FieldLastUpdatedAt = "last_updated_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the analysisstatus in the database.
	Table = "analysis_status"
)

// Columns holds all SQL columns for analysisstatus fields.
var Columns = []string{
	FieldID,
	FieldExerciseID,
	FieldState,
	FieldTotalTeams,
	FieldProcessedTeams,
	FieldCurrentTeamName,
	FieldCurrentStage,
	FieldStartedAt,
	FieldLastUpdatedAt,
	FieldErrorMessage,
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
	// DefaultTotalTeams holds the default value on creation for the "total_teams" field.
	DefaultTotalTeams int
	// DefaultProcessedTeams holds the default value on creation for the "processed_teams" field.
	DefaultProcessedTeams int
	// DefaultLastUpdatedAt holds the default value on creation for the "last_updated_at" field.
	DefaultLastUpdatedAt func() time.Time
	// UpdateDefaultLastUpdatedAt holds the default value on update for the "last_updated_at" field.
	UpdateDefaultLastUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateIdle is the default value of the State enum.
const DefaultState = StateIdle

// State values.
const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateDone    State = "done"
	StateError   State = "error"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateIdle, StateRunning, StatePaused, StateDone, StateError:
		return nil
	default:
		return fmt.Errorf("analysisstatus: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the AnalysisStatus queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExerciseID orders the results by the exercise_id field.
func ByExerciseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByTotalTeams orders the results by the total_teams field.
func ByTotalTeams(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTeams, opts...).ToFunc()
}

// ByProcessedTeams orders the results by the processed_teams field.
func ByProcessedTeams(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedTeams, opts...).ToFunc()
}

// ByCurrentTeamName orders the results by the current_team_name field.
func ByCurrentTeamName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentTeamName, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastUpdatedAt orders the results by the last_updated_at field.
func ByLastUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdatedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
