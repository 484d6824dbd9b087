// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairlens/fairlens/ent/analyzedchunk"
	"github.com/fairlens/fairlens/ent/teamparticipation"
)

// AnalyzedChunkCreate is the builder for creating a AnalyzedChunk entity.
type AnalyzedChunkCreate struct {
	config
	mutation *AnalyzedChunkMutation
	hooks    []Hook
}

// SetParticipationID sets the "participation_id" field.
func (_c *AnalyzedChunkCreate) SetParticipationID(v int) *AnalyzedChunkCreate {
	_c.mutation.SetParticipationID(v)
	return _c
}

// SetSha sets the "sha" field.
func (_c *AnalyzedChunkCreate) SetSha(v string) *AnalyzedChunkCreate {
	_c.mutation.SetSha(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *AnalyzedChunkCreate) SetChunkIndex(v int) *AnalyzedChunkCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableChunkIndex(v *int) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetChunkIndex(*v)
	}
	return _c
}

// SetTotalChunks sets the "total_chunks" field.
func (_c *AnalyzedChunkCreate) SetTotalChunks(v int) *AnalyzedChunkCreate {
	_c.mutation.SetTotalChunks(v)
	return _c
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableTotalChunks(v *int) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetTotalChunks(*v)
	}
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *AnalyzedChunkCreate) SetAuthorID(v int64) *AnalyzedChunkCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableAuthorID(v *int64) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetAuthorID(*v)
	}
	return _c
}

// SetAuthorEmail sets the "author_email" field.
func (_c *AnalyzedChunkCreate) SetAuthorEmail(v string) *AnalyzedChunkCreate {
	_c.mutation.SetAuthorEmail(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *AnalyzedChunkCreate) SetMessage(v string) *AnalyzedChunkCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetCommittedAt sets the "committed_at" field.
func (_c *AnalyzedChunkCreate) SetCommittedAt(v time.Time) *AnalyzedChunkCreate {
	_c.mutation.SetCommittedAt(v)
	return _c
}

// SetLinesAdded sets the "lines_added" field.
func (_c *AnalyzedChunkCreate) SetLinesAdded(v int) *AnalyzedChunkCreate {
	_c.mutation.SetLinesAdded(v)
	return _c
}

// SetNillableLinesAdded sets the "lines_added" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableLinesAdded(v *int) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetLinesAdded(*v)
	}
	return _c
}

// SetLinesDeleted sets the "lines_deleted" field.
func (_c *AnalyzedChunkCreate) SetLinesDeleted(v int) *AnalyzedChunkCreate {
	_c.mutation.SetLinesDeleted(v)
	return _c
}

// SetNillableLinesDeleted sets the "lines_deleted" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableLinesDeleted(v *int) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetLinesDeleted(*v)
	}
	return _c
}

// SetIsBundled sets the "is_bundled" field.
func (_c *AnalyzedChunkCreate) SetIsBundled(v bool) *AnalyzedChunkCreate {
	_c.mutation.SetIsBundled(v)
	return _c
}

// SetNillableIsBundled sets the "is_bundled" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableIsBundled(v *bool) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetIsBundled(*v)
	}
	return _c
}

// SetBundledShas sets the "bundled_shas" field.
func (_c *AnalyzedChunkCreate) SetBundledShas(v []string) *AnalyzedChunkCreate {
	_c.mutation.SetBundledShas(v)
	return _c
}

// SetEffortScore sets the "effort_score" field.
func (_c *AnalyzedChunkCreate) SetEffortScore(v int) *AnalyzedChunkCreate {
	_c.mutation.SetEffortScore(v)
	return _c
}

// SetComplexity sets the "complexity" field.
func (_c *AnalyzedChunkCreate) SetComplexity(v int) *AnalyzedChunkCreate {
	_c.mutation.SetComplexity(v)
	return _c
}

// SetNovelty sets the "novelty" field.
func (_c *AnalyzedChunkCreate) SetNovelty(v int) *AnalyzedChunkCreate {
	_c.mutation.SetNovelty(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *AnalyzedChunkCreate) SetLabel(v string) *AnalyzedChunkCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AnalyzedChunkCreate) SetConfidence(v float64) *AnalyzedChunkCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *AnalyzedChunkCreate) SetReasoning(v string) *AnalyzedChunkCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableReasoning(v *string) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetIsError sets the "is_error" field.
func (_c *AnalyzedChunkCreate) SetIsError(v bool) *AnalyzedChunkCreate {
	_c.mutation.SetIsError(v)
	return _c
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableIsError(v *bool) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetIsError(*v)
	}
	return _c
}

// SetIsExternalContributor sets the "is_external_contributor" field.
func (_c *AnalyzedChunkCreate) SetIsExternalContributor(v bool) *AnalyzedChunkCreate {
	_c.mutation.SetIsExternalContributor(v)
	return _c
}

// SetNillableIsExternalContributor sets the "is_external_contributor" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableIsExternalContributor(v *bool) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetIsExternalContributor(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *AnalyzedChunkCreate) SetModel(v string) *AnalyzedChunkCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableModel(v *string) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *AnalyzedChunkCreate) SetPromptTokens(v int) *AnalyzedChunkCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillablePromptTokens(v *int) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *AnalyzedChunkCreate) SetCompletionTokens(v int) *AnalyzedChunkCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableCompletionTokens(v *int) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *AnalyzedChunkCreate) SetTotalTokens(v int) *AnalyzedChunkCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableTotalTokens(v *int) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetUsageAvailable sets the "usage_available" field.
func (_c *AnalyzedChunkCreate) SetUsageAvailable(v bool) *AnalyzedChunkCreate {
	_c.mutation.SetUsageAvailable(v)
	return _c
}

// SetNillableUsageAvailable sets the "usage_available" field if the given value is not nil.
func (_c *AnalyzedChunkCreate) SetNillableUsageAvailable(v *bool) *AnalyzedChunkCreate {
	if v != nil {
		_c.SetUsageAvailable(*v)
	}
	return _c
}

// SetParticipation sets the "participation" edge to the TeamParticipation entity.
func (_c *AnalyzedChunkCreate) SetParticipation(v *TeamParticipation) *AnalyzedChunkCreate {
	return _c.SetParticipationID(v.ID)
}

// Mutation returns the AnalyzedChunkMutation object of the builder.
func (_c *AnalyzedChunkCreate) Mutation() *AnalyzedChunkMutation {
	return _c.mutation
}

// Save creates the AnalyzedChunk in the database.
func (_c *AnalyzedChunkCreate) Save(ctx context.Context) (*AnalyzedChunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalyzedChunkCreate) SaveX(ctx context.Context) *AnalyzedChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyzedChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyzedChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalyzedChunkCreate) defaults() {
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		v := analyzedchunk.DefaultChunkIndex
		_c.mutation.SetChunkIndex(v)
	}
	if _, ok := _c.mutation.TotalChunks(); !ok {
		v := analyzedchunk.DefaultTotalChunks
		_c.mutation.SetTotalChunks(v)
	}
	if _, ok := _c.mutation.LinesAdded(); !ok {
		v := analyzedchunk.DefaultLinesAdded
		_c.mutation.SetLinesAdded(v)
	}
	if _, ok := _c.mutation.LinesDeleted(); !ok {
		v := analyzedchunk.DefaultLinesDeleted
		_c.mutation.SetLinesDeleted(v)
	}
	if _, ok := _c.mutation.IsBundled(); !ok {
		v := analyzedchunk.DefaultIsBundled
		_c.mutation.SetIsBundled(v)
	}
	if _, ok := _c.mutation.IsError(); !ok {
		v := analyzedchunk.DefaultIsError
		_c.mutation.SetIsError(v)
	}
	if _, ok := _c.mutation.IsExternalContributor(); !ok {
		v := analyzedchunk.DefaultIsExternalContributor
		_c.mutation.SetIsExternalContributor(v)
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := analyzedchunk.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := analyzedchunk.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := analyzedchunk.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.UsageAvailable(); !ok {
		v := analyzedchunk.DefaultUsageAvailable
		_c.mutation.SetUsageAvailable(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalyzedChunkCreate) check() error {
	if _, ok := _c.mutation.ParticipationID(); !ok {
		return &ValidationError{Name: "participation_id", err: errors.New(`ent: missing required field "AnalyzedChunk.participation_id"`)}
	}
	if _, ok := _c.mutation.Sha(); !ok {
		return &ValidationError{Name: "sha", err: errors.New(`ent: missing required field "AnalyzedChunk.sha"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "AnalyzedChunk.chunk_index"`)}
	}
	if _, ok := _c.mutation.TotalChunks(); !ok {
		return &ValidationError{Name: "total_chunks", err: errors.New(`ent: missing required field "AnalyzedChunk.total_chunks"`)}
	}
	if _, ok := _c.mutation.AuthorEmail(); !ok {
		return &ValidationError{Name: "author_email", err: errors.New(`ent: missing required field "AnalyzedChunk.author_email"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "AnalyzedChunk.message"`)}
	}
	if _, ok := _c.mutation.CommittedAt(); !ok {
		return &ValidationError{Name: "committed_at", err: errors.New(`ent: missing required field "AnalyzedChunk.committed_at"`)}
	}
	if _, ok := _c.mutation.LinesAdded(); !ok {
		return &ValidationError{Name: "lines_added", err: errors.New(`ent: missing required field "AnalyzedChunk.lines_added"`)}
	}
	if _, ok := _c.mutation.LinesDeleted(); !ok {
		return &ValidationError{Name: "lines_deleted", err: errors.New(`ent: missing required field "AnalyzedChunk.lines_deleted"`)}
	}
	if _, ok := _c.mutation.IsBundled(); !ok {
		return &ValidationError{Name: "is_bundled", err: errors.New(`ent: missing required field "AnalyzedChunk.is_bundled"`)}
	}
	if _, ok := _c.mutation.EffortScore(); !ok {
		return &ValidationError{Name: "effort_score", err: errors.New(`ent: missing required field "AnalyzedChunk.effort_score"`)}
	}
	if _, ok := _c.mutation.Complexity(); !ok {
		return &ValidationError{Name: "complexity", err: errors.New(`ent: missing required field "AnalyzedChunk.complexity"`)}
	}
	if _, ok := _c.mutation.Novelty(); !ok {
		return &ValidationError{Name: "novelty", err: errors.New(`ent: missing required field "AnalyzedChunk.novelty"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "AnalyzedChunk.label"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AnalyzedChunk.confidence"`)}
	}
	if _, ok := _c.mutation.IsError(); !ok {
		return &ValidationError{Name: "is_error", err: errors.New(`ent: missing required field "AnalyzedChunk.is_error"`)}
	}
	if _, ok := _c.mutation.IsExternalContributor(); !ok {
		return &ValidationError{Name: "is_external_contributor", err: errors.New(`ent: missing required field "AnalyzedChunk.is_external_contributor"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "AnalyzedChunk.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "AnalyzedChunk.completion_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "AnalyzedChunk.total_tokens"`)}
	}
	if _, ok := _c.mutation.UsageAvailable(); !ok {
		return &ValidationError{Name: "usage_available", err: errors.New(`ent: missing required field "AnalyzedChunk.usage_available"`)}
	}
	if len(_c.mutation.ParticipationIDs()) == 0 {
		return &ValidationError{Name: "participation", err: errors.New(`ent: missing required edge "AnalyzedChunk.participation"`)}
	}
	return nil
}

func (_c *AnalyzedChunkCreate) sqlSave(ctx context.Context) (*AnalyzedChunk, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalyzedChunkCreate) createSpec() (*AnalyzedChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalyzedChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analyzedchunk.Table, sqlgraph.NewFieldSpec(analyzedchunk.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sha(); ok {
		_spec.SetField(analyzedchunk.FieldSha, field.TypeString, value)
		_node.Sha = value
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(analyzedchunk.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.TotalChunks(); ok {
		_spec.SetField(analyzedchunk.FieldTotalChunks, field.TypeInt, value)
		_node.TotalChunks = value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(analyzedchunk.FieldAuthorID, field.TypeInt64, value)
		_node.AuthorID = &value
	}
	if value, ok := _c.mutation.AuthorEmail(); ok {
		_spec.SetField(analyzedchunk.FieldAuthorEmail, field.TypeString, value)
		_node.AuthorEmail = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(analyzedchunk.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.CommittedAt(); ok {
		_spec.SetField(analyzedchunk.FieldCommittedAt, field.TypeTime, value)
		_node.CommittedAt = value
	}
	if value, ok := _c.mutation.LinesAdded(); ok {
		_spec.SetField(analyzedchunk.FieldLinesAdded, field.TypeInt, value)
		_node.LinesAdded = value
	}
	if value, ok := _c.mutation.LinesDeleted(); ok {
		_spec.SetField(analyzedchunk.FieldLinesDeleted, field.TypeInt, value)
		_node.LinesDeleted = value
	}
	if value, ok := _c.mutation.IsBundled(); ok {
		_spec.SetField(analyzedchunk.FieldIsBundled, field.TypeBool, value)
		_node.IsBundled = value
	}
	if value, ok := _c.mutation.BundledShas(); ok {
		_spec.SetField(analyzedchunk.FieldBundledShas, field.TypeJSON, value)
		_node.BundledShas = value
	}
	if value, ok := _c.mutation.EffortScore(); ok {
		_spec.SetField(analyzedchunk.FieldEffortScore, field.TypeInt, value)
		_node.EffortScore = value
	}
	if value, ok := _c.mutation.Complexity(); ok {
		_spec.SetField(analyzedchunk.FieldComplexity, field.TypeInt, value)
		_node.Complexity = value
	}
	if value, ok := _c.mutation.Novelty(); ok {
		_spec.SetField(analyzedchunk.FieldNovelty, field.TypeInt, value)
		_node.Novelty = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(analyzedchunk.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(analyzedchunk.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(analyzedchunk.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.IsError(); ok {
		_spec.SetField(analyzedchunk.FieldIsError, field.TypeBool, value)
		_node.IsError = value
	}
	if value, ok := _c.mutation.IsExternalContributor(); ok {
		_spec.SetField(analyzedchunk.FieldIsExternalContributor, field.TypeBool, value)
		_node.IsExternalContributor = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(analyzedchunk.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(analyzedchunk.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(analyzedchunk.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(analyzedchunk.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.UsageAvailable(); ok {
		_spec.SetField(analyzedchunk.FieldUsageAvailable, field.TypeBool, value)
		_node.UsageAvailable = value
	}
	if nodes := _c.mutation.ParticipationIDs(); len(nodes) > 0 {
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
		_node.ParticipationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalyzedChunkCreateBulk is the builder for creating many AnalyzedChunk entities in bulk.
type AnalyzedChunkCreateBulk struct {
	config
	err      error
	builders []*AnalyzedChunkCreate
}

// Save creates the AnalyzedChunk entities in the database.
func (_c *AnalyzedChunkCreateBulk) Save(ctx context.Context) ([]*AnalyzedChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalyzedChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalyzedChunkMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalyzedChunkCreateBulk) SaveX(ctx context.Context) []*AnalyzedChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyzedChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyzedChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
