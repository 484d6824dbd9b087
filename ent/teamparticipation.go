// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fairlens/fairlens/ent/teamparticipation"
	"github.com/fairlens/fairlens/pkg/models"
)

// TeamParticipation is the model entity for the TeamParticipation schema.
type TeamParticipation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExerciseID holds the value of the "exercise_id" field.
	ExerciseID int64 `json:"exercise_id,omitempty"`
	// TeamID holds the value of the "team_id" field.
	TeamID int64 `json:"team_id,omitempty"`
	// TeamName holds the value of the "team_name" field.
	TeamName string `json:"team_name,omitempty"`
	// RepositoryURI holds the value of the "repository_uri" field.
	RepositoryURI string `json:"repository_uri,omitempty"`
	// Members holds the value of the "members" field.
	Members []models.Member `json:"members,omitempty"`
	// Null until the team has been fully analyzed
	Cqi *float64 `json:"cqi,omitempty"`
	// IsSuspicious holds the value of the "is_suspicious" field.
	IsSuspicious bool `json:"is_suspicious,omitempty"`
	// BalanceScore holds the value of the "balance_score" field.
	BalanceScore *float64 `json:"balance_score,omitempty"`
	// Components holds the value of the "components" field.
	Components *models.ComponentScores `json:"components,omitempty"`
	// Flags holds the value of the "flags" field.
	Flags []string `json:"flags,omitempty"`
	// Penalties holds the value of the "penalties" field.
	Penalties []models.Penalty `json:"penalties,omitempty"`
	// TokenTotals holds the value of the "token_totals" field.
	TokenTotals *models.TokenTotals `json:"token_totals,omitempty"`
	// AnalyzedAt holds the value of the "analyzed_at" field.
	AnalyzedAt *time.Time `json:"analyzed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TeamParticipationQuery when eager-loading is set.
	Edges        TeamParticipationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TeamParticipationEdges holds the relations/edges for other nodes in the graph.
type TeamParticipationEdges struct {
	// Chunks holds the value of the chunks edge.
	Chunks []*AnalyzedChunk `json:"chunks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChunksOrErr returns the Chunks value or an error if the edge
// was not loaded in eager-loading.
func (e TeamParticipationEdges) ChunksOrErr() ([]*AnalyzedChunk, error) {
	if e.loadedTypes[0] {
		return e.Chunks, nil
	}
	return nil, &NotLoadedError{edge: "chunks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TeamParticipation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case teamparticipation.FieldMembers, teamparticipation.FieldComponents, teamparticipation.FieldFlags, teamparticipation.FieldPenalties, teamparticipation.FieldTokenTotals:
			values[i] = new([]byte)
		case teamparticipation.FieldIsSuspicious:
			values[i] = new(sql.NullBool)
		case teamparticipation.FieldCqi, teamparticipation.FieldBalanceScore:
			values[i] = new(sql.NullFloat64)
		case teamparticipation.FieldID, teamparticipation.FieldExerciseID, teamparticipation.FieldTeamID:
			values[i] = new(sql.NullInt64)
		case teamparticipation.FieldTeamName, teamparticipation.FieldRepositoryURI:
			values[i] = new(sql.NullString)
		case teamparticipation.FieldAnalyzedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TeamParticipation fields.
func (_m *TeamParticipation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case teamparticipation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case teamparticipation.FieldExerciseID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_id", values[i])
			} else if value.Valid {
				_m.ExerciseID = value.Int64
			}
		case teamparticipation.FieldTeamID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = value.Int64
			}
		case teamparticipation.FieldTeamName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_name", values[i])
			} else if value.Valid {
				_m.TeamName = value.String
			}
		case teamparticipation.FieldRepositoryURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repository_uri", values[i])
			} else if value.Valid {
				_m.RepositoryURI = value.String
			}
		case teamparticipation.FieldMembers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field members", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Members); err != nil {
					return fmt.Errorf("unmarshal field members: %w", err)
				}
			}
		case teamparticipation.FieldCqi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cqi", values[i])
			} else if value.Valid {
				_m.Cqi = new(float64)
				*_m.Cqi = value.Float64
			}
		case teamparticipation.FieldIsSuspicious:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_suspicious", values[i])
			} else if value.Valid {
				_m.IsSuspicious = value.Bool
			}
		case teamparticipation.FieldBalanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field balance_score", values[i])
			} else if value.Valid {
				_m.BalanceScore = new(float64)
				*_m.BalanceScore = value.Float64
			}
		case teamparticipation.FieldComponents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field components", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Components); err != nil {
					return fmt.Errorf("unmarshal field components: %w", err)
				}
			}
		case teamparticipation.FieldFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Flags); err != nil {
					return fmt.Errorf("unmarshal field flags: %w", err)
				}
			}
		case teamparticipation.FieldPenalties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field penalties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Penalties); err != nil {
					return fmt.Errorf("unmarshal field penalties: %w", err)
				}
			}
		case teamparticipation.FieldTokenTotals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field token_totals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TokenTotals); err != nil {
					return fmt.Errorf("unmarshal field token_totals: %w", err)
				}
			}
		case teamparticipation.FieldAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analyzed_at", values[i])
			} else if value.Valid {
				_m.AnalyzedAt = new(time.Time)
				*_m.AnalyzedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TeamParticipation.
// This includes values selected through modifiers, order, etc.
func (_m *TeamParticipation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChunks queries the "chunks" edge of the TeamParticipation entity.
func (_m *TeamParticipation) QueryChunks() *AnalyzedChunkQuery {
	return NewTeamParticipationClient(_m.config).QueryChunks(_m)
}

// Update returns a builder for updating this TeamParticipation.
// Note that you need to call TeamParticipation.Unwrap() before calling this method if this TeamParticipation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TeamParticipation) Update() *TeamParticipationUpdateOne {
	return NewTeamParticipationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TeamParticipation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TeamParticipation) Unwrap() *TeamParticipation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TeamParticipation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TeamParticipation) String() string {
	var builder strings.Builder
	builder.WriteString("TeamParticipation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exercise_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExerciseID))
	builder.WriteString(", ")
	builder.WriteString("team_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeamID))
	builder.WriteString(", ")
	builder.WriteString("team_name=")
	builder.WriteString(_m.TeamName)
	builder.WriteString(", ")
	builder.WriteString("repository_uri=")
	builder.WriteString(_m.RepositoryURI)
	builder.WriteString(", ")
	builder.WriteString("members=")
	builder.WriteString(fmt.Sprintf("%v", _m.Members))
	builder.WriteString(", ")
	if v := _m.Cqi; v != nil {
		builder.WriteString("cqi=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_suspicious=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSuspicious))
	builder.WriteString(", ")
	if v := _m.BalanceScore; v != nil {
		builder.WriteString("balance_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("components=")
	builder.WriteString(fmt.Sprintf("%v", _m.Components))
	builder.WriteString(", ")
	builder.WriteString("flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flags))
	builder.WriteString(", ")
	builder.WriteString("penalties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Penalties))
	builder.WriteString(", ")
	builder.WriteString("token_totals=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenTotals))
	builder.WriteString(", ")
	if v := _m.AnalyzedAt; v != nil {
		builder.WriteString("analyzed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TeamParticipations is a parsable slice of TeamParticipation.
type TeamParticipations []*TeamParticipation
