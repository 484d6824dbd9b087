// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fairlens/fairlens/ent/emailmapping"
)

// EmailMapping is the model entity for the EmailMapping schema.
type EmailMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExerciseID holds the value of the "exercise_id" field.
	ExerciseID int64 `json:"exercise_id,omitempty"`
	// GitEmail holds the value of the "git_email" field.
	GitEmail string `json:"git_email,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID int64 `json:"student_id,omitempty"`
	// StudentName holds the value of the "student_name" field.
	StudentName  string `json:"student_name,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailmapping.FieldID, emailmapping.FieldExerciseID, emailmapping.FieldStudentID:
			values[i] = new(sql.NullInt64)
		case emailmapping.FieldGitEmail, emailmapping.FieldStudentName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailMapping fields.
func (_m *EmailMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailmapping.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case emailmapping.FieldExerciseID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_id", values[i])
			} else if value.Valid {
				_m.ExerciseID = value.Int64
			}
		case emailmapping.FieldGitEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field git_email", values[i])
			} else if value.Valid {
				_m.GitEmail = value.String
			}
		case emailmapping.FieldStudentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.Int64
			}
		case emailmapping.FieldStudentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_name", values[i])
			} else if value.Valid {
				_m.StudentName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmailMapping.
// This includes values selected through modifiers, order, etc.
func (_m *EmailMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EmailMapping.
// Note that you need to call EmailMapping.Unwrap() before calling this method if this EmailMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailMapping) Update() *EmailMappingUpdateOne {
	return NewEmailMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailMapping) Unwrap() *EmailMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailMapping) String() string {
	var builder strings.Builder
	builder.WriteString("EmailMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exercise_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExerciseID))
	builder.WriteString(", ")
	builder.WriteString("git_email=")
	builder.WriteString(_m.GitEmail)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("student_name=")
	builder.WriteString(_m.StudentName)
	builder.WriteByte(')')
	return builder.String()
}

// EmailMappings is a parsable slice of EmailMapping.
type EmailMappings []*EmailMapping
