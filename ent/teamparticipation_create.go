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
	"github.com/fairlens/fairlens/pkg/models"
)

// TeamParticipationCreate is the builder for creating a TeamParticipation entity.
type TeamParticipationCreate struct {
	config
	mutation *TeamParticipationMutation
	hooks    []Hook
}

// SetExerciseID sets the "exercise_id" field.
func (_c *TeamParticipationCreate) SetExerciseID(v int64) *TeamParticipationCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *TeamParticipationCreate) SetTeamID(v int64) *TeamParticipationCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetTeamName sets the "team_name" field.
func (_c *TeamParticipationCreate) SetTeamName(v string) *TeamParticipationCreate {
	_c.mutation.SetTeamName(v)
	return _c
}

// SetRepositoryURI sets the "repository_uri" field.
func (_c *TeamParticipationCreate) SetRepositoryURI(v string) *TeamParticipationCreate {
	_c.mutation.SetRepositoryURI(v)
	return _c
}

// SetMembers sets the "members" field.
func (_c *TeamParticipationCreate) SetMembers(v []models.Member) *TeamParticipationCreate {
	_c.mutation.SetMembers(v)
	return _c
}

// SetCqi sets the "cqi" field.
func (_c *TeamParticipationCreate) SetCqi(v float64) *TeamParticipationCreate {
	_c.mutation.SetCqi(v)
	return _c
}

// SetNillableCqi sets the "cqi" field if the given value is not nil.
func (_c *TeamParticipationCreate) SetNillableCqi(v *float64) *TeamParticipationCreate {
	if v != nil {
		_c.SetCqi(*v)
	}
	return _c
}

// SetIsSuspicious sets the "is_suspicious" field.
func (_c *TeamParticipationCreate) SetIsSuspicious(v bool) *TeamParticipationCreate {
	_c.mutation.SetIsSuspicious(v)
	return _c
}

// SetNillableIsSuspicious sets the "is_suspicious" field if the given value is not nil.
func (_c *TeamParticipationCreate) SetNillableIsSuspicious(v *bool) *TeamParticipationCreate {
	if v != nil {
		_c.SetIsSuspicious(*v)
	}
	return _c
}

// SetBalanceScore sets the "balance_score" field.
func (_c *TeamParticipationCreate) SetBalanceScore(v float64) *TeamParticipationCreate {
	_c.mutation.SetBalanceScore(v)
	return _c
}

// SetNillableBalanceScore sets the "balance_score" field if the given value is not nil.
func (_c *TeamParticipationCreate) SetNillableBalanceScore(v *float64) *TeamParticipationCreate {
	if v != nil {
		_c.SetBalanceScore(*v)
	}
	return _c
}

// SetComponents sets the "components" field.
func (_c *TeamParticipationCreate) SetComponents(v *models.ComponentScores) *TeamParticipationCreate {
	_c.mutation.SetComponents(v)
	return _c
}

// SetFlags sets the "flags" field.
func (_c *TeamParticipationCreate) SetFlags(v []string) *TeamParticipationCreate {
	_c.mutation.SetFlags(v)
	return _c
}

// SetPenalties sets the "penalties" field.
func (_c *TeamParticipationCreate) SetPenalties(v []models.Penalty) *TeamParticipationCreate {
	_c.mutation.SetPenalties(v)
	return _c
}

// SetTokenTotals sets the "token_totals" field.
func (_c *TeamParticipationCreate) SetTokenTotals(v *models.TokenTotals) *TeamParticipationCreate {
	_c.mutation.SetTokenTotals(v)
	return _c
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_c *TeamParticipationCreate) SetAnalyzedAt(v time.Time) *TeamParticipationCreate {
	_c.mutation.SetAnalyzedAt(v)
	return _c
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_c *TeamParticipationCreate) SetNillableAnalyzedAt(v *time.Time) *TeamParticipationCreate {
	if v != nil {
		_c.SetAnalyzedAt(*v)
	}
	return _c
}

// AddChunkIDs adds the "chunks" edge to the AnalyzedChunk entity by IDs.
func (_c *TeamParticipationCreate) AddChunkIDs(ids ...int) *TeamParticipationCreate {
	_c.mutation.AddChunkIDs(ids...)
	return _c
}

// AddChunks adds the "chunks" edges to the AnalyzedChunk entity.
func (_c *TeamParticipationCreate) AddChunks(v ...*AnalyzedChunk) *TeamParticipationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkIDs(ids...)
}

// Mutation returns the TeamParticipationMutation object of the builder.
func (_c *TeamParticipationCreate) Mutation() *TeamParticipationMutation {
	return _c.mutation
}

// Save creates the TeamParticipation in the database.
func (_c *TeamParticipationCreate) Save(ctx context.Context) (*TeamParticipation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TeamParticipationCreate) SaveX(ctx context.Context) *TeamParticipation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TeamParticipationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TeamParticipationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TeamParticipationCreate) defaults() {
	if _, ok := _c.mutation.IsSuspicious(); !ok {
		v := teamparticipation.DefaultIsSuspicious
		_c.mutation.SetIsSuspicious(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TeamParticipationCreate) check() error {
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "TeamParticipation.exercise_id"`)}
	}
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "TeamParticipation.team_id"`)}
	}
	if _, ok := _c.mutation.TeamName(); !ok {
		return &ValidationError{Name: "team_name", err: errors.New(`ent: missing required field "TeamParticipation.team_name"`)}
	}
	if _, ok := _c.mutation.RepositoryURI(); !ok {
		return &ValidationError{Name: "repository_uri", err: errors.New(`ent: missing required field "TeamParticipation.repository_uri"`)}
	}
	if _, ok := _c.mutation.IsSuspicious(); !ok {
		return &ValidationError{Name: "is_suspicious", err: errors.New(`ent: missing required field "TeamParticipation.is_suspicious"`)}
	}
	return nil
}

func (_c *TeamParticipationCreate) sqlSave(ctx context.Context) (*TeamParticipation, error) {
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

func (_c *TeamParticipationCreate) createSpec() (*TeamParticipation, *sqlgraph.CreateSpec) {
	var (
		_node = &TeamParticipation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(teamparticipation.Table, sqlgraph.NewFieldSpec(teamparticipation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(teamparticipation.FieldExerciseID, field.TypeInt64, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(teamparticipation.FieldTeamID, field.TypeInt64, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.TeamName(); ok {
		_spec.SetField(teamparticipation.FieldTeamName, field.TypeString, value)
		_node.TeamName = value
	}
	if value, ok := _c.mutation.RepositoryURI(); ok {
		_spec.SetField(teamparticipation.FieldRepositoryURI, field.TypeString, value)
		_node.RepositoryURI = value
	}
	if value, ok := _c.mutation.Members(); ok {
		_spec.SetField(teamparticipation.FieldMembers, field.TypeJSON, value)
		_node.Members = value
	}
	if value, ok := _c.mutation.Cqi(); ok {
		_spec.SetField(teamparticipation.FieldCqi, field.TypeFloat64, value)
		_node.Cqi = &value
	}
	if value, ok := _c.mutation.IsSuspicious(); ok {
		_spec.SetField(teamparticipation.FieldIsSuspicious, field.TypeBool, value)
		_node.IsSuspicious = value
	}
	if value, ok := _c.mutation.BalanceScore(); ok {
		_spec.SetField(teamparticipation.FieldBalanceScore, field.TypeFloat64, value)
		_node.BalanceScore = &value
	}
	if value, ok := _c.mutation.Components(); ok {
		_spec.SetField(teamparticipation.FieldComponents, field.TypeJSON, value)
		_node.Components = value
	}
	if value, ok := _c.mutation.Flags(); ok {
		_spec.SetField(teamparticipation.FieldFlags, field.TypeJSON, value)
		_node.Flags = value
	}
	if value, ok := _c.mutation.Penalties(); ok {
		_spec.SetField(teamparticipation.FieldPenalties, field.TypeJSON, value)
		_node.Penalties = value
	}
	if value, ok := _c.mutation.TokenTotals(); ok {
		_spec.SetField(teamparticipation.FieldTokenTotals, field.TypeJSON, value)
		_node.TokenTotals = value
	}
	if value, ok := _c.mutation.AnalyzedAt(); ok {
		_spec.SetField(teamparticipation.FieldAnalyzedAt, field.TypeTime, value)
		_node.AnalyzedAt = &value
	}
	if nodes := _c.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   teamparticipation.ChunksTable,
			Columns: []string{teamparticipation.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyzedchunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TeamParticipationCreateBulk is the builder for creating many TeamParticipation entities in bulk.
type TeamParticipationCreateBulk struct {
	config
	err      error
	builders []*TeamParticipationCreate
}

// Save creates the TeamParticipation entities in the database.
func (_c *TeamParticipationCreateBulk) Save(ctx context.Context) ([]*TeamParticipation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TeamParticipation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TeamParticipationMutation)
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
func (_c *TeamParticipationCreateBulk) SaveX(ctx context.Context) []*TeamParticipation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TeamParticipationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TeamParticipationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
