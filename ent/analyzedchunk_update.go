// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fairlens/fairlens/ent/analyzedchunk"
	"github.com/fairlens/fairlens/ent/predicate"
	"github.com/fairlens/fairlens/ent/teamparticipation"
)

// AnalyzedChunkUpdate is the builder for updating AnalyzedChunk entities.
type AnalyzedChunkUpdate struct {
	config
	hooks    []Hook
	mutation *AnalyzedChunkMutation
}

// Where appends a list predicates to the AnalyzedChunkUpdate builder.
func (_u *AnalyzedChunkUpdate) Where(ps ...predicate.AnalyzedChunk) *AnalyzedChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipationID sets the "participation_id" field.
func (_u *AnalyzedChunkUpdate) SetParticipationID(v int) *AnalyzedChunkUpdate {
	_u.mutation.SetParticipationID(v)
	return _u
}

// SetNillableParticipationID sets the "participation_id" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableParticipationID(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetParticipationID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *AnalyzedChunkUpdate) SetChunkIndex(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableChunkIndex(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *AnalyzedChunkUpdate) AddChunkIndex(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *AnalyzedChunkUpdate) SetTotalChunks(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableTotalChunks(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *AnalyzedChunkUpdate) AddTotalChunks(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *AnalyzedChunkUpdate) SetAuthorID(v int64) *AnalyzedChunkUpdate {
	_u.mutation.ResetAuthorID()
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableAuthorID(v *int64) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// AddAuthorID adds value to the "author_id" field.
func (_u *AnalyzedChunkUpdate) AddAuthorID(v int64) *AnalyzedChunkUpdate {
	_u.mutation.AddAuthorID(v)
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *AnalyzedChunkUpdate) ClearAuthorID() *AnalyzedChunkUpdate {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetAuthorEmail sets the "author_email" field.
func (_u *AnalyzedChunkUpdate) SetAuthorEmail(v string) *AnalyzedChunkUpdate {
	_u.mutation.SetAuthorEmail(v)
	return _u
}

// SetNillableAuthorEmail sets the "author_email" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableAuthorEmail(v *string) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetAuthorEmail(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AnalyzedChunkUpdate) SetMessage(v string) *AnalyzedChunkUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableMessage(v *string) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetCommittedAt sets the "committed_at" field.
func (_u *AnalyzedChunkUpdate) SetCommittedAt(v time.Time) *AnalyzedChunkUpdate {
	_u.mutation.SetCommittedAt(v)
	return _u
}

// SetNillableCommittedAt sets the "committed_at" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableCommittedAt(v *time.Time) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetCommittedAt(*v)
	}
	return _u
}

// SetLinesAdded sets the "lines_added" field.
func (_u *AnalyzedChunkUpdate) SetLinesAdded(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetLinesAdded()
	_u.mutation.SetLinesAdded(v)
	return _u
}

// SetNillableLinesAdded sets the "lines_added" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableLinesAdded(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetLinesAdded(*v)
	}
	return _u
}

// AddLinesAdded adds value to the "lines_added" field.
func (_u *AnalyzedChunkUpdate) AddLinesAdded(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddLinesAdded(v)
	return _u
}

// SetLinesDeleted sets the "lines_deleted" field.
func (_u *AnalyzedChunkUpdate) SetLinesDeleted(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetLinesDeleted()
	_u.mutation.SetLinesDeleted(v)
	return _u
}

// SetNillableLinesDeleted sets the "lines_deleted" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableLinesDeleted(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetLinesDeleted(*v)
	}
	return _u
}

// AddLinesDeleted adds value to the "lines_deleted" field.
func (_u *AnalyzedChunkUpdate) AddLinesDeleted(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddLinesDeleted(v)
	return _u
}

// SetIsBundled sets the "is_bundled" field.
func (_u *AnalyzedChunkUpdate) SetIsBundled(v bool) *AnalyzedChunkUpdate {
	_u.mutation.SetIsBundled(v)
	return _u
}

// SetNillableIsBundled sets the "is_bundled" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableIsBundled(v *bool) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetIsBundled(*v)
	}
	return _u
}

// SetBundledShas sets the "bundled_shas" field.
func (_u *AnalyzedChunkUpdate) SetBundledShas(v []string) *AnalyzedChunkUpdate {
	_u.mutation.SetBundledShas(v)
	return _u
}

// AppendBundledShas appends value to the "bundled_shas" field.
func (_u *AnalyzedChunkUpdate) AppendBundledShas(v []string) *AnalyzedChunkUpdate {
	_u.mutation.AppendBundledShas(v)
	return _u
}

// ClearBundledShas clears the value of the "bundled_shas" field.
func (_u *AnalyzedChunkUpdate) ClearBundledShas() *AnalyzedChunkUpdate {
	_u.mutation.ClearBundledShas()
	return _u
}

// SetEffortScore sets the "effort_score" field.
func (_u *AnalyzedChunkUpdate) SetEffortScore(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetEffortScore()
	_u.mutation.SetEffortScore(v)
	return _u
}

// SetNillableEffortScore sets the "effort_score" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableEffortScore(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetEffortScore(*v)
	}
	return _u
}

// AddEffortScore adds value to the "effort_score" field.
func (_u *AnalyzedChunkUpdate) AddEffortScore(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddEffortScore(v)
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *AnalyzedChunkUpdate) SetComplexity(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableComplexity(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *AnalyzedChunkUpdate) AddComplexity(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddComplexity(v)
	return _u
}

// SetNovelty sets the "novelty" field.
func (_u *AnalyzedChunkUpdate) SetNovelty(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetNovelty()
	_u.mutation.SetNovelty(v)
	return _u
}

// SetNillableNovelty sets the "novelty" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableNovelty(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetNovelty(*v)
	}
	return _u
}

// AddNovelty adds value to the "novelty" field.
func (_u *AnalyzedChunkUpdate) AddNovelty(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddNovelty(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *AnalyzedChunkUpdate) SetLabel(v string) *AnalyzedChunkUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableLabel(v *string) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalyzedChunkUpdate) SetConfidence(v float64) *AnalyzedChunkUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableConfidence(v *float64) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalyzedChunkUpdate) AddConfidence(v float64) *AnalyzedChunkUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AnalyzedChunkUpdate) SetReasoning(v string) *AnalyzedChunkUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableReasoning(v *string) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *AnalyzedChunkUpdate) ClearReasoning() *AnalyzedChunkUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *AnalyzedChunkUpdate) SetIsError(v bool) *AnalyzedChunkUpdate {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableIsError(v *bool) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetIsExternalContributor sets the "is_external_contributor" field.
func (_u *AnalyzedChunkUpdate) SetIsExternalContributor(v bool) *AnalyzedChunkUpdate {
	_u.mutation.SetIsExternalContributor(v)
	return _u
}

// SetNillableIsExternalContributor sets the "is_external_contributor" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableIsExternalContributor(v *bool) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetIsExternalContributor(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AnalyzedChunkUpdate) SetModel(v string) *AnalyzedChunkUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableModel(v *string) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AnalyzedChunkUpdate) ClearModel() *AnalyzedChunkUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *AnalyzedChunkUpdate) SetPromptTokens(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillablePromptTokens(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *AnalyzedChunkUpdate) AddPromptTokens(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *AnalyzedChunkUpdate) SetCompletionTokens(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableCompletionTokens(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *AnalyzedChunkUpdate) AddCompletionTokens(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *AnalyzedChunkUpdate) SetTotalTokens(v int) *AnalyzedChunkUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableTotalTokens(v *int) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *AnalyzedChunkUpdate) AddTotalTokens(v int) *AnalyzedChunkUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetUsageAvailable sets the "usage_available" field.
func (_u *AnalyzedChunkUpdate) SetUsageAvailable(v bool) *AnalyzedChunkUpdate {
	_u.mutation.SetUsageAvailable(v)
	return _u
}

// SetNillableUsageAvailable sets the "usage_available" field if the given value is not nil.
func (_u *AnalyzedChunkUpdate) SetNillableUsageAvailable(v *bool) *AnalyzedChunkUpdate {
	if v != nil {
		_u.SetUsageAvailable(*v)
	}
	return _u
}

// SetParticipation sets the "participation" edge to the TeamParticipation entity.
func (_u *AnalyzedChunkUpdate) SetParticipation(v *TeamParticipation) *AnalyzedChunkUpdate {
	return _u.SetParticipationID(v.ID)
}

// Mutation returns the AnalyzedChunkMutation object of the builder.
func (_u *AnalyzedChunkUpdate) Mutation() *AnalyzedChunkMutation {
	return _u.mutation
}

// ClearParticipation clears the "participation" edge to the TeamParticipation entity.
func (_u *AnalyzedChunkUpdate) ClearParticipation() *AnalyzedChunkUpdate {
	_u.mutation.ClearParticipation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalyzedChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyzedChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalyzedChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyzedChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyzedChunkUpdate) check() error {
	if _u.mutation.ParticipationCleared() && len(_u.mutation.ParticipationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalyzedChunk.participation"`)
	}
	return nil
}

func (_u *AnalyzedChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyzedchunk.Table, analyzedchunk.Columns, sqlgraph.NewFieldSpec(analyzedchunk.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(analyzedchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(analyzedchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(analyzedchunk.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(analyzedchunk.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(analyzedchunk.FieldAuthorID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAuthorID(); ok {
		_spec.AddField(analyzedchunk.FieldAuthorID, field.TypeInt64, value)
	}
	if _u.mutation.AuthorIDCleared() {
		_spec.ClearField(analyzedchunk.FieldAuthorID, field.TypeInt64)
	}
	if value, ok := _u.mutation.AuthorEmail(); ok {
		_spec.SetField(analyzedchunk.FieldAuthorEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(analyzedchunk.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommittedAt(); ok {
		_spec.SetField(analyzedchunk.FieldCommittedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LinesAdded(); ok {
		_spec.SetField(analyzedchunk.FieldLinesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinesAdded(); ok {
		_spec.AddField(analyzedchunk.FieldLinesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LinesDeleted(); ok {
		_spec.SetField(analyzedchunk.FieldLinesDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinesDeleted(); ok {
		_spec.AddField(analyzedchunk.FieldLinesDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsBundled(); ok {
		_spec.SetField(analyzedchunk.FieldIsBundled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BundledShas(); ok {
		_spec.SetField(analyzedchunk.FieldBundledShas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBundledShas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analyzedchunk.FieldBundledShas, value)
		})
	}
	if _u.mutation.BundledShasCleared() {
		_spec.ClearField(analyzedchunk.FieldBundledShas, field.TypeJSON)
	}
	if value, ok := _u.mutation.EffortScore(); ok {
		_spec.SetField(analyzedchunk.FieldEffortScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEffortScore(); ok {
		_spec.AddField(analyzedchunk.FieldEffortScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(analyzedchunk.FieldComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(analyzedchunk.FieldComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Novelty(); ok {
		_spec.SetField(analyzedchunk.FieldNovelty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNovelty(); ok {
		_spec.AddField(analyzedchunk.FieldNovelty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(analyzedchunk.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analyzedchunk.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analyzedchunk.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(analyzedchunk.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(analyzedchunk.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(analyzedchunk.FieldIsError, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsExternalContributor(); ok {
		_spec.SetField(analyzedchunk.FieldIsExternalContributor, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(analyzedchunk.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(analyzedchunk.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(analyzedchunk.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(analyzedchunk.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(analyzedchunk.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(analyzedchunk.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(analyzedchunk.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(analyzedchunk.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsageAvailable(); ok {
		_spec.SetField(analyzedchunk.FieldUsageAvailable, field.TypeBool, value)
	}
	if _u.mutation.ParticipationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analyzedchunk.ParticipationTable,
			Columns: []string{analyzedchunk.ParticipationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teamparticipation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analyzedchunk.ParticipationTable,
			Columns: []string{analyzedchunk.ParticipationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teamparticipation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyzedchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalyzedChunkUpdateOne is the builder for updating a single AnalyzedChunk entity.
type AnalyzedChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalyzedChunkMutation
}

// SetParticipationID sets the "participation_id" field.
func (_u *AnalyzedChunkUpdateOne) SetParticipationID(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.SetParticipationID(v)
	return _u
}

// SetNillableParticipationID sets the "participation_id" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableParticipationID(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetParticipationID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *AnalyzedChunkUpdateOne) SetChunkIndex(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableChunkIndex(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *AnalyzedChunkUpdateOne) AddChunkIndex(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *AnalyzedChunkUpdateOne) SetTotalChunks(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableTotalChunks(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *AnalyzedChunkUpdateOne) AddTotalChunks(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *AnalyzedChunkUpdateOne) SetAuthorID(v int64) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetAuthorID()
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableAuthorID(v *int64) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// AddAuthorID adds value to the "author_id" field.
func (_u *AnalyzedChunkUpdateOne) AddAuthorID(v int64) *AnalyzedChunkUpdateOne {
	_u.mutation.AddAuthorID(v)
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *AnalyzedChunkUpdateOne) ClearAuthorID() *AnalyzedChunkUpdateOne {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetAuthorEmail sets the "author_email" field.
func (_u *AnalyzedChunkUpdateOne) SetAuthorEmail(v string) *AnalyzedChunkUpdateOne {
	_u.mutation.SetAuthorEmail(v)
	return _u
}

// SetNillableAuthorEmail sets the "author_email" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableAuthorEmail(v *string) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetAuthorEmail(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AnalyzedChunkUpdateOne) SetMessage(v string) *AnalyzedChunkUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableMessage(v *string) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetCommittedAt sets the "committed_at" field.
func (_u *AnalyzedChunkUpdateOne) SetCommittedAt(v time.Time) *AnalyzedChunkUpdateOne {
	_u.mutation.SetCommittedAt(v)
	return _u
}

// SetNillableCommittedAt sets the "committed_at" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableCommittedAt(v *time.Time) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetCommittedAt(*v)
	}
	return _u
}

// SetLinesAdded sets the "lines_added" field.
func (_u *AnalyzedChunkUpdateOne) SetLinesAdded(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetLinesAdded()
	_u.mutation.SetLinesAdded(v)
	return _u
}

// SetNillableLinesAdded sets the "lines_added" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableLinesAdded(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetLinesAdded(*v)
	}
	return _u
}

// AddLinesAdded adds value to the "lines_added" field.
func (_u *AnalyzedChunkUpdateOne) AddLinesAdded(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddLinesAdded(v)
	return _u
}

// SetLinesDeleted sets the "lines_deleted" field.
func (_u *AnalyzedChunkUpdateOne) SetLinesDeleted(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetLinesDeleted()
	_u.mutation.SetLinesDeleted(v)
	return _u
}

// SetNillableLinesDeleted sets the "lines_deleted" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableLinesDeleted(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetLinesDeleted(*v)
	}
	return _u
}

// AddLinesDeleted adds value to the "lines_deleted" field.
func (_u *AnalyzedChunkUpdateOne) AddLinesDeleted(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddLinesDeleted(v)
	return _u
}

// SetIsBundled sets the "is_bundled" field.
func (_u *AnalyzedChunkUpdateOne) SetIsBundled(v bool) *AnalyzedChunkUpdateOne {
	_u.mutation.SetIsBundled(v)
	return _u
}

// SetNillableIsBundled sets the "is_bundled" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableIsBundled(v *bool) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetIsBundled(*v)
	}
	return _u
}

// SetBundledShas sets the "bundled_shas" field.
func (_u *AnalyzedChunkUpdateOne) SetBundledShas(v []string) *AnalyzedChunkUpdateOne {
	_u.mutation.SetBundledShas(v)
	return _u
}

// AppendBundledShas appends value to the "bundled_shas" field.
func (_u *AnalyzedChunkUpdateOne) AppendBundledShas(v []string) *AnalyzedChunkUpdateOne {
	_u.mutation.AppendBundledShas(v)
	return _u
}

// ClearBundledShas clears the value of the "bundled_shas" field.
func (_u *AnalyzedChunkUpdateOne) ClearBundledShas() *AnalyzedChunkUpdateOne {
	_u.mutation.ClearBundledShas()
	return _u
}

// SetEffortScore sets the "effort_score" field.
func (_u *AnalyzedChunkUpdateOne) SetEffortScore(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetEffortScore()
	_u.mutation.SetEffortScore(v)
	return _u
}

// SetNillableEffortScore sets the "effort_score" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableEffortScore(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetEffortScore(*v)
	}
	return _u
}

// AddEffortScore adds value to the "effort_score" field.
func (_u *AnalyzedChunkUpdateOne) AddEffortScore(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddEffortScore(v)
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *AnalyzedChunkUpdateOne) SetComplexity(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableComplexity(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *AnalyzedChunkUpdateOne) AddComplexity(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddComplexity(v)
	return _u
}

// SetNovelty sets the "novelty" field.
func (_u *AnalyzedChunkUpdateOne) SetNovelty(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetNovelty()
	_u.mutation.SetNovelty(v)
	return _u
}

// SetNillableNovelty sets the "novelty" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableNovelty(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetNovelty(*v)
	}
	return _u
}

// AddNovelty adds value to the "novelty" field.
func (_u *AnalyzedChunkUpdateOne) AddNovelty(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddNovelty(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *AnalyzedChunkUpdateOne) SetLabel(v string) *AnalyzedChunkUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableLabel(v *string) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalyzedChunkUpdateOne) SetConfidence(v float64) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableConfidence(v *float64) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalyzedChunkUpdateOne) AddConfidence(v float64) *AnalyzedChunkUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AnalyzedChunkUpdateOne) SetReasoning(v string) *AnalyzedChunkUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableReasoning(v *string) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *AnalyzedChunkUpdateOne) ClearReasoning() *AnalyzedChunkUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *AnalyzedChunkUpdateOne) SetIsError(v bool) *AnalyzedChunkUpdateOne {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableIsError(v *bool) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetIsExternalContributor sets the "is_external_contributor" field.
func (_u *AnalyzedChunkUpdateOne) SetIsExternalContributor(v bool) *AnalyzedChunkUpdateOne {
	_u.mutation.SetIsExternalContributor(v)
	return _u
}

// SetNillableIsExternalContributor sets the "is_external_contributor" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableIsExternalContributor(v *bool) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetIsExternalContributor(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AnalyzedChunkUpdateOne) SetModel(v string) *AnalyzedChunkUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableModel(v *string) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AnalyzedChunkUpdateOne) ClearModel() *AnalyzedChunkUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *AnalyzedChunkUpdateOne) SetPromptTokens(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillablePromptTokens(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *AnalyzedChunkUpdateOne) AddPromptTokens(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *AnalyzedChunkUpdateOne) SetCompletionTokens(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableCompletionTokens(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *AnalyzedChunkUpdateOne) AddCompletionTokens(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *AnalyzedChunkUpdateOne) SetTotalTokens(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableTotalTokens(v *int) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *AnalyzedChunkUpdateOne) AddTotalTokens(v int) *AnalyzedChunkUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetUsageAvailable sets the "usage_available" field.
func (_u *AnalyzedChunkUpdateOne) SetUsageAvailable(v bool) *AnalyzedChunkUpdateOne {
	_u.mutation.SetUsageAvailable(v)
	return _u
}

// SetNillableUsageAvailable sets the "usage_available" field if the given value is not nil.
func (_u *AnalyzedChunkUpdateOne) SetNillableUsageAvailable(v *bool) *AnalyzedChunkUpdateOne {
	if v != nil {
		_u.SetUsageAvailable(*v)
	}
	return _u
}

// SetParticipation sets the "participation" edge to the TeamParticipation entity.
func (_u *AnalyzedChunkUpdateOne) SetParticipation(v *TeamParticipation) *AnalyzedChunkUpdateOne {
	return _u.SetParticipationID(v.ID)
}

// Mutation returns the AnalyzedChunkMutation object of the builder.
func (_u *AnalyzedChunkUpdateOne) Mutation() *AnalyzedChunkMutation {
	return _u.mutation
}

// ClearParticipation clears the "participation" edge to the TeamParticipation entity.
func (_u *AnalyzedChunkUpdateOne) ClearParticipation() *AnalyzedChunkUpdateOne {
	_u.mutation.ClearParticipation()
	return _u
}

// Where appends a list predicates to the AnalyzedChunkUpdate builder.
func (_u *AnalyzedChunkUpdateOne) Where(ps ...predicate.AnalyzedChunk) *AnalyzedChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalyzedChunkUpdateOne) Select(field string, fields ...string) *AnalyzedChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalyzedChunk entity.
func (_u *AnalyzedChunkUpdateOne) Save(ctx context.Context) (*AnalyzedChunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyzedChunkUpdateOne) SaveX(ctx context.Context) *AnalyzedChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalyzedChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyzedChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyzedChunkUpdateOne) check() error {
	if _u.mutation.ParticipationCleared() && len(_u.mutation.ParticipationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalyzedChunk.participation"`)
	}
	return nil
}

func (_u *AnalyzedChunkUpdateOne) sqlSave(ctx context.Context) (_node *AnalyzedChunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyzedchunk.Table, analyzedchunk.Columns, sqlgraph.NewFieldSpec(analyzedchunk.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalyzedChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analyzedchunk.FieldID)
		for _, f := range fields {
			if !analyzedchunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analyzedchunk.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(analyzedchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(analyzedchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(analyzedchunk.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(analyzedchunk.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(analyzedchunk.FieldAuthorID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAuthorID(); ok {
		_spec.AddField(analyzedchunk.FieldAuthorID, field.TypeInt64, value)
	}
	if _u.mutation.AuthorIDCleared() {
		_spec.ClearField(analyzedchunk.FieldAuthorID, field.TypeInt64)
	}
	if value, ok := _u.mutation.AuthorEmail(); ok {
		_spec.SetField(analyzedchunk.FieldAuthorEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(analyzedchunk.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommittedAt(); ok {
		_spec.SetField(analyzedchunk.FieldCommittedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LinesAdded(); ok {
		_spec.SetField(analyzedchunk.FieldLinesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinesAdded(); ok {
		_spec.AddField(analyzedchunk.FieldLinesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LinesDeleted(); ok {
		_spec.SetField(analyzedchunk.FieldLinesDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinesDeleted(); ok {
		_spec.AddField(analyzedchunk.FieldLinesDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsBundled(); ok {
		_spec.SetField(analyzedchunk.FieldIsBundled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BundledShas(); ok {
		_spec.SetField(analyzedchunk.FieldBundledShas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBundledShas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analyzedchunk.FieldBundledShas, value)
		})
	}
	if _u.mutation.BundledShasCleared() {
		_spec.ClearField(analyzedchunk.FieldBundledShas, field.TypeJSON)
	}
	if value, ok := _u.mutation.EffortScore(); ok {
		_spec.SetField(analyzedchunk.FieldEffortScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEffortScore(); ok {
		_spec.AddField(analyzedchunk.FieldEffortScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(analyzedchunk.FieldComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(analyzedchunk.FieldComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Novelty(); ok {
		_spec.SetField(analyzedchunk.FieldNovelty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNovelty(); ok {
		_spec.AddField(analyzedchunk.FieldNovelty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(analyzedchunk.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analyzedchunk.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analyzedchunk.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(analyzedchunk.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(analyzedchunk.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(analyzedchunk.FieldIsError, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsExternalContributor(); ok {
		_spec.SetField(analyzedchunk.FieldIsExternalContributor, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(analyzedchunk.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(analyzedchunk.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(analyzedchunk.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(analyzedchunk.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(analyzedchunk.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(analyzedchunk.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(analyzedchunk.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(analyzedchunk.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsageAvailable(); ok {
		_spec.SetField(analyzedchunk.FieldUsageAvailable, field.TypeBool, value)
	}
	if _u.mutation.ParticipationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analyzedchunk.ParticipationTable,
			Columns: []string{analyzedchunk.ParticipationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teamparticipation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analyzedchunk.ParticipationTable,
			Columns: []string{analyzedchunk.ParticipationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teamparticipation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalyzedChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyzedchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
