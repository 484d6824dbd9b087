// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairlens/fairlens/ent/analyzedchunk"
	"github.com/fairlens/fairlens/ent/predicate"
)

// AnalyzedChunkDelete is the builder for deleting a AnalyzedChunk entity.
type AnalyzedChunkDelete struct {
	config
	hooks    []Hook
	mutation *AnalyzedChunkMutation
}

// Where appends a list predicates to the AnalyzedChunkDelete builder.
func (_d *AnalyzedChunkDelete) Where(ps ...predicate.AnalyzedChunk) *AnalyzedChunkDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalyzedChunkDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyzedChunkDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalyzedChunkDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analyzedchunk.Table, sqlgraph.NewFieldSpec(analyzedchunk.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalyzedChunkDeleteOne is the builder for deleting a single AnalyzedChunk entity.
type AnalyzedChunkDeleteOne struct {
	_d *AnalyzedChunkDelete
}

// Where appends a list predicates to the AnalyzedChunkDelete builder.
func (_d *AnalyzedChunkDeleteOne) Where(ps ...predicate.AnalyzedChunk) *AnalyzedChunkDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalyzedChunkDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analyzedchunk.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyzedChunkDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
