// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairlens/fairlens/ent/predicate"
	"github.com/fairlens/fairlens/ent/teamparticipation"
)

// TeamParticipationDelete is the builder for deleting a TeamParticipation entity.
type TeamParticipationDelete struct {
	config
	hooks    []Hook
	mutation *TeamParticipationMutation
}

// Where appends a list predicates to the TeamParticipationDelete builder.
func (_d *TeamParticipationDelete) Where(ps ...predicate.TeamParticipation) *TeamParticipationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TeamParticipationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TeamParticipationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TeamParticipationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(teamparticipation.Table, sqlgraph.NewFieldSpec(teamparticipation.FieldID, field.TypeInt))
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

// TeamParticipationDeleteOne is the builder for deleting a single TeamParticipation entity.
type TeamParticipationDeleteOne struct {
	_d *TeamParticipationDelete
}

// Where appends a list predicates to the TeamParticipationDelete builder.
func (_d *TeamParticipationDeleteOne) Where(ps ...predicate.TeamParticipation) *TeamParticipationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TeamParticipationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{teamparticipation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TeamParticipationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
