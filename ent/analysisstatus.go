// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fairlens/fairlens/ent/analysisstatus"
)

// AnalysisStatus is the model entity for the AnalysisStatus schema.
type AnalysisStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExerciseID holds the value of the "exercise_id" field.
	ExerciseID int64 `json:"exercise_id,omitempty"`
	// State holds the value of the "state" field.
	State analysisstatus.State `json:"state,omitempty"`
	// TotalTeams holds the value of the "total_teams" field.
	TotalTeams int `json:"total_teams,omitempty"`
	// ProcessedTeams holds the value of the "processed_teams" field.
	ProcessedTeams int `json:"processed_teams,omitempty"`
	// CurrentTeamName holds the value of the "current_team_name" field.
	CurrentTeamName *string `json:"current_team_name,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage *string `json:"current_stage,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// LastUpdatedAt holds the value of the "last_updated_at" field.
	LastUpdatedAt time.Time `json:"last_updated_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisstatus.FieldID, analysisstatus.FieldExerciseID, analysisstatus.FieldTotalTeams, analysisstatus.FieldProcessedTeams:
			values[i] = new(sql.NullInt64)
		case analysisstatus.FieldState, analysisstatus.FieldCurrentTeamName, analysisstatus.FieldCurrentStage, analysisstatus.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case analysisstatus.FieldStartedAt, analysisstatus.FieldLastUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisStatus fields.
func (_m *AnalysisStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisstatus.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisstatus.FieldExerciseID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_id", values[i])
			} else if value.Valid {
				_m.ExerciseID = value.Int64
			}
		case analysisstatus.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = analysisstatus.State(value.String)
			}
		case analysisstatus.FieldTotalTeams:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_teams", values[i])
			} else if value.Valid {
				_m.TotalTeams = int(value.Int64)
			}
		case analysisstatus.FieldProcessedTeams:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_teams", values[i])
			} else if value.Valid {
				_m.ProcessedTeams = int(value.Int64)
			}
		case analysisstatus.FieldCurrentTeamName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_team_name", values[i])
			} else if value.Valid {
				_m.CurrentTeamName = new(string)
				*_m.CurrentTeamName = value.String
			}
		case analysisstatus.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = new(string)
				*_m.CurrentStage = value.String
			}
		case analysisstatus.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case analysisstatus.FieldLastUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated_at", values[i])
			} else if value.Valid {
				_m.LastUpdatedAt = value.Time
			}
		case analysisstatus.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisStatus.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisStatus.
// Note that you need to call AnalysisStatus.Unwrap() before calling this method if this AnalysisStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisStatus) Update() *AnalysisStatusUpdateOne {
	return NewAnalysisStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisStatus) Unwrap() *AnalysisStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisStatus) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exercise_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExerciseID))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("total_teams=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTeams))
	builder.WriteString(", ")
	builder.WriteString("processed_teams=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedTeams))
	builder.WriteString(", ")
	if v := _m.CurrentTeamName; v != nil {
		builder.WriteString("current_team_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentStage; v != nil {
		builder.WriteString("current_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_updated_at=")
	builder.WriteString(_m.LastUpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisStatusSlice is a parsable slice of AnalysisStatus.
type AnalysisStatusSlice []*AnalysisStatus
