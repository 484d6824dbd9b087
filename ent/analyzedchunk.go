// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fairlens/fairlens/ent/analyzedchunk"
	"github.com/fairlens/fairlens/ent/teamparticipation"
)

// AnalyzedChunk is the model entity for the AnalyzedChunk schema.
type AnalyzedChunk struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ParticipationID holds the value of the "participation_id" field.
	ParticipationID int `json:"participation_id,omitempty"`
	// Sha holds the value of the "sha" field.
	Sha string `json:"sha,omitempty"`
	// ChunkIndex holds the value of the "chunk_index" field.
	ChunkIndex int `json:"chunk_index,omitempty"`
	// TotalChunks holds the value of the "total_chunks" field.
	TotalChunks int `json:"total_chunks,omitempty"`
	// AuthorID holds the value of the "author_id" field.
	AuthorID *int64 `json:"author_id,omitempty"`
	// AuthorEmail holds the value of the "author_email" field.
	AuthorEmail string `json:"author_email,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// CommittedAt holds the value of the "committed_at" field.
	CommittedAt time.Time `json:"committed_at,omitempty"`
	// LinesAdded holds the value of the "lines_added" field.
	LinesAdded int `json:"lines_added,omitempty"`
	// LinesDeleted holds the value of the "lines_deleted" field.
	LinesDeleted int `json:"lines_deleted,omitempty"`
	// IsBundled holds the value of the "is_bundled" field.
	IsBundled bool `json:"is_bundled,omitempty"`
	// BundledShas holds the value of the "bundled_shas" field.
	BundledShas []string `json:"bundled_shas,omitempty"`
	// EffortScore holds the value of the "effort_score" field.
	EffortScore int `json:"effort_score,omitempty"`
	// Complexity holds the value of the "complexity" field.
	Complexity int `json:"complexity,omitempty"`
	// Novelty holds the value of the "novelty" field.
	Novelty int `json:"novelty,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// IsError holds the value of the "is_error" field.
	IsError bool `json:"is_error,omitempty"`
	// IsExternalContributor holds the value of the "is_external_contributor" field.
	IsExternalContributor bool `json:"is_external_contributor,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens int `json:"completion_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// UsageAvailable holds the value of the "usage_available" field.
	UsageAvailable bool `json:"usage_available,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalyzedChunkQuery when eager-loading is set.
	Edges        AnalyzedChunkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalyzedChunkEdges holds the relations/edges for other nodes in the graph.
type AnalyzedChunkEdges struct {
	// Participation holds the value of the participation edge.
	Participation *TeamParticipation `json:"participation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ParticipationOrErr returns the Participation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalyzedChunkEdges) ParticipationOrErr() (*TeamParticipation, error) {
	if e.Participation != nil {
		return e.Participation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: teamparticipation.Label}
	}
	return nil, &NotLoadedError{edge: "participation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalyzedChunk) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analyzedchunk.FieldBundledShas:
			values[i] = new([]byte)
		case analyzedchunk.FieldIsBundled, analyzedchunk.FieldIsError, analyzedchunk.FieldIsExternalContributor, analyzedchunk.FieldUsageAvailable:
			values[i] = new(sql.NullBool)
		case analyzedchunk.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case analyzedchunk.FieldID, analyzedchunk.FieldParticipationID, analyzedchunk.FieldChunkIndex, analyzedchunk.FieldTotalChunks, analyzedchunk.FieldAuthorID, analyzedchunk.FieldLinesAdded, analyzedchunk.FieldLinesDeleted, analyzedchunk.FieldEffortScore, analyzedchunk.FieldComplexity, analyzedchunk.FieldNovelty, analyzedchunk.FieldPromptTokens, analyzedchunk.FieldCompletionTokens, analyzedchunk.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case analyzedchunk.FieldSha, analyzedchunk.FieldAuthorEmail, analyzedchunk.FieldMessage, analyzedchunk.FieldLabel, analyzedchunk.FieldReasoning, analyzedchunk.FieldModel:
			values[i] = new(sql.NullString)
		case analyzedchunk.FieldCommittedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalyzedChunk fields.
func (_m *AnalyzedChunk) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analyzedchunk.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analyzedchunk.FieldParticipationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field participation_id", values[i])
			} else if value.Valid {
				_m.ParticipationID = int(value.Int64)
			}
		case analyzedchunk.FieldSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sha", values[i])
			} else if value.Valid {
				_m.Sha = value.String
			}
		case analyzedchunk.FieldChunkIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_index", values[i])
			} else if value.Valid {
				_m.ChunkIndex = int(value.Int64)
			}
		case analyzedchunk.FieldTotalChunks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_chunks", values[i])
			} else if value.Valid {
				_m.TotalChunks = int(value.Int64)
			}
		case analyzedchunk.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				_m.AuthorID = new(int64)
				*_m.AuthorID = value.Int64
			}
		case analyzedchunk.FieldAuthorEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_email", values[i])
			} else if value.Valid {
				_m.AuthorEmail = value.String
			}
		case analyzedchunk.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case analyzedchunk.FieldCommittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field committed_at", values[i])
			} else if value.Valid {
				_m.CommittedAt = value.Time
			}
		case analyzedchunk.FieldLinesAdded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lines_added", values[i])
			} else if value.Valid {
				_m.LinesAdded = int(value.Int64)
			}
		case analyzedchunk.FieldLinesDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lines_deleted", values[i])
			} else if value.Valid {
				_m.LinesDeleted = int(value.Int64)
			}
		case analyzedchunk.FieldIsBundled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_bundled", values[i])
			} else if value.Valid {
				_m.IsBundled = value.Bool
			}
		case analyzedchunk.FieldBundledShas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bundled_shas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BundledShas); err != nil {
					return fmt.Errorf("unmarshal field bundled_shas: %w", err)
				}
			}
		case analyzedchunk.FieldEffortScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field effort_score", values[i])
			} else if value.Valid {
				_m.EffortScore = int(value.Int64)
			}
		case analyzedchunk.FieldComplexity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field complexity", values[i])
			} else if value.Valid {
				_m.Complexity = int(value.Int64)
			}
		case analyzedchunk.FieldNovelty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field novelty", values[i])
			} else if value.Valid {
				_m.Novelty = int(value.Int64)
			}
		case analyzedchunk.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case analyzedchunk.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case analyzedchunk.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case analyzedchunk.FieldIsError:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_error", values[i])
			} else if value.Valid {
				_m.IsError = value.Bool
			}
		case analyzedchunk.FieldIsExternalContributor:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_external_contributor", values[i])
			} else if value.Valid {
				_m.IsExternalContributor = value.Bool
			}
		case analyzedchunk.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case analyzedchunk.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = int(value.Int64)
			}
		case analyzedchunk.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = int(value.Int64)
			}
		case analyzedchunk.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case analyzedchunk.FieldUsageAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field usage_available", values[i])
			} else if value.Valid {
				_m.UsageAvailable = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalyzedChunk.
// This includes values selected through modifiers, order, etc.
func (_m *AnalyzedChunk) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParticipation queries the "participation" edge of the AnalyzedChunk entity.
func (_m *AnalyzedChunk) QueryParticipation() *TeamParticipationQuery {
	return NewAnalyzedChunkClient(_m.config).QueryParticipation(_m)
}

// Update returns a builder for updating this AnalyzedChunk.
// Note that you need to call AnalyzedChunk.Unwrap() before calling this method if this AnalyzedChunk
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalyzedChunk) Update() *AnalyzedChunkUpdateOne {
	return NewAnalyzedChunkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalyzedChunk entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalyzedChunk) Unwrap() *AnalyzedChunk {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalyzedChunk is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalyzedChunk) String() string {
	var builder strings.Builder
	builder.WriteString("AnalyzedChunk(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("participation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipationID))
	builder.WriteString(", ")
	builder.WriteString("sha=")
	builder.WriteString(_m.Sha)
	builder.WriteString(", ")
	builder.WriteString("chunk_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkIndex))
	builder.WriteString(", ")
	builder.WriteString("total_chunks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalChunks))
	builder.WriteString(", ")
	if v := _m.AuthorID; v != nil {
		builder.WriteString("author_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("author_email=")
	builder.WriteString(_m.AuthorEmail)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("committed_at=")
	builder.WriteString(_m.CommittedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lines_added=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinesAdded))
	builder.WriteString(", ")
	builder.WriteString("lines_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinesDeleted))
	builder.WriteString(", ")
	builder.WriteString("is_bundled=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBundled))
	builder.WriteString(", ")
	builder.WriteString("bundled_shas=")
	builder.WriteString(fmt.Sprintf("%v", _m.BundledShas))
	builder.WriteString(", ")
	builder.WriteString("effort_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EffortScore))
	builder.WriteString(", ")
	builder.WriteString("complexity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Complexity))
	builder.WriteString(", ")
	builder.WriteString("novelty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Novelty))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("is_error=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsError))
	builder.WriteString(", ")
	builder.WriteString("is_external_contributor=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsExternalContributor))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTokens))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("usage_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageAvailable))
	builder.WriteByte(')')
	return builder.String()
}

// AnalyzedChunks is a parsable slice of AnalyzedChunk.
type AnalyzedChunks []*AnalyzedChunk
