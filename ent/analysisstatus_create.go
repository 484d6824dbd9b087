// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairlens/fairlens/ent/analysisstatus"
)

// AnalysisStatusCreate is the builder for creating a AnalysisStatus entity.
type AnalysisStatusCreate struct {
	config
	mutation *AnalysisStatusMutation
	hooks    []Hook
}

// SetExerciseID sets the "exercise_id" field.
func (_c *AnalysisStatusCreate) SetExerciseID(v int64) *AnalysisStatusCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *AnalysisStatusCreate) SetState(v analysisstatus.State) *AnalysisStatusCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *AnalysisStatusCreate) SetNillableState(v *analysisstatus.State) *AnalysisStatusCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetTotalTeams sets the "total_teams" field.
func (_c *AnalysisStatusCreate) SetTotalTeams(v int) *AnalysisStatusCreate {
	_c.mutation.SetTotalTeams(v)
	return _c
}

// SetNillableTotalTeams sets the "total_teams" field if the given value is not nil.
func (_c *AnalysisStatusCreate) SetNillableTotalTeams(v *int) *AnalysisStatusCreate {
	if v != nil {
		_c.SetTotalTeams(*v)
	}
	return _c
}

// SetProcessedTeams sets the "processed_teams" field.
func (_c *AnalysisStatusCreate) SetProcessedTeams(v int) *AnalysisStatusCreate {
	_c.mutation.SetProcessedTeams(v)
	return _c
}

// SetNillableProcessedTeams sets the "processed_teams" field if the given value is not nil.
func (_c *AnalysisStatusCreate) SetNillableProcessedTeams(v *int) *AnalysisStatusCreate {
	if v != nil {
		_c.SetProcessedTeams(*v)
	}
	return _c
}

// SetCurrentTeamName sets the "current_team_name" field.
func (_c *AnalysisStatusCreate) SetCurrentTeamName(v string) *AnalysisStatusCreate {
	_c.mutation.SetCurrentTeamName(v)
	return _c
}

// SetNillableCurrentTeamName sets the "current_team_name" field if the given value is not nil.
func (_c *AnalysisStatusCreate) SetNillableCurrentTeamName(v *string) *AnalysisStatusCreate {
	if v != nil {
		_c.SetCurrentTeamName(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *AnalysisStatusCreate) SetCurrentStage(v string) *AnalysisStatusCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *AnalysisStatusCreate) SetNillableCurrentStage(v *string) *AnalysisStatusCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnalysisStatusCreate) SetStartedAt(v time.Time) *AnalysisStatusCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AnalysisStatusCreate) SetNillableStartedAt(v *time.Time) *AnalysisStatusCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_c *AnalysisStatusCreate) SetLastUpdatedAt(v time.Time) *AnalysisStatusCreate {
	_c.mutation.SetLastUpdatedAt(v)
	return _c
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_c *AnalysisStatusCreate) SetNillableLastUpdatedAt(v *time.Time) *AnalysisStatusCreate {
	if v != nil {
		_c.SetLastUpdatedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisStatusCreate) SetErrorMessage(v string) *AnalysisStatusCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisStatusCreate) SetNillableErrorMessage(v *string) *AnalysisStatusCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the AnalysisStatusMutation object of the builder.
func (_c *AnalysisStatusCreate) Mutation() *AnalysisStatusMutation {
	return _c.mutation
}

// Save creates the AnalysisStatus in the database.
func (_c *AnalysisStatusCreate) Save(ctx context.Context) (*AnalysisStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisStatusCreate) SaveX(ctx context.Context) *AnalysisStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisStatusCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := analysisstatus.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.TotalTeams(); !ok {
		v := analysisstatus.DefaultTotalTeams
		_c.mutation.SetTotalTeams(v)
	}
	if _, ok := _c.mutation.ProcessedTeams(); !ok {
		v := analysisstatus.DefaultProcessedTeams
		_c.mutation.SetProcessedTeams(v)
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		v := analysisstatus.DefaultLastUpdatedAt()
		_c.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisStatusCreate) check() error {
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "AnalysisStatus.exercise_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "AnalysisStatus.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := analysisstatus.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AnalysisStatus.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalTeams(); !ok {
		return &ValidationError{Name: "total_teams", err: errors.New(`ent: missing required field "AnalysisStatus.total_teams"`)}
	}
	if _, ok := _c.mutation.ProcessedTeams(); !ok {
		return &ValidationError{Name: "processed_teams", err: errors.New(`ent: missing required field "AnalysisStatus.processed_teams"`)}
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		return &ValidationError{Name: "last_updated_at", err: errors.New(`ent: missing required field "AnalysisStatus.last_updated_at"`)}
	}
	return nil
}

func (_c *AnalysisStatusCreate) sqlSave(ctx context.Context) (*AnalysisStatus, error) {
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

func (_c *AnalysisStatusCreate) createSpec() (*AnalysisStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisstatus.Table, sqlgraph.NewFieldSpec(analysisstatus.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(analysisstatus.FieldExerciseID, field.TypeInt64, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(analysisstatus.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.TotalTeams(); ok {
		_spec.SetField(analysisstatus.FieldTotalTeams, field.TypeInt, value)
		_node.TotalTeams = value
	}
	if value, ok := _c.mutation.ProcessedTeams(); ok {
		_spec.SetField(analysisstatus.FieldProcessedTeams, field.TypeInt, value)
		_node.ProcessedTeams = value
	}
	if value, ok := _c.mutation.CurrentTeamName(); ok {
		_spec.SetField(analysisstatus.FieldCurrentTeamName, field.TypeString, value)
		_node.CurrentTeamName = &value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(analysisstatus.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(analysisstatus.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.LastUpdatedAt(); ok {
		_spec.SetField(analysisstatus.FieldLastUpdatedAt, field.TypeTime, value)
		_node.LastUpdatedAt = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisstatus.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	return _node, _spec
}

// AnalysisStatusCreateBulk is the builder for creating many AnalysisStatus entities in bulk.
type AnalysisStatusCreateBulk struct {
	config
	err      error
	builders []*AnalysisStatusCreate
}

// Save creates the AnalysisStatus entities in the database.
func (_c *AnalysisStatusCreateBulk) Save(ctx context.Context) ([]*AnalysisStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisStatusMutation)
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
func (_c *AnalysisStatusCreateBulk) SaveX(ctx context.Context) []*AnalysisStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
