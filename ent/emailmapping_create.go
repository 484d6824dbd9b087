// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairlens/fairlens/ent/emailmapping"
)

// EmailMappingCreate is the builder for creating a EmailMapping entity.
type EmailMappingCreate struct {
	config
	mutation *EmailMappingMutation
	hooks    []Hook
}

// SetExerciseID sets the "exercise_id" field.
func (_c *EmailMappingCreate) SetExerciseID(v int64) *EmailMappingCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetGitEmail sets the "git_email" field.
func (_c *EmailMappingCreate) SetGitEmail(v string) *EmailMappingCreate {
	_c.mutation.SetGitEmail(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *EmailMappingCreate) SetStudentID(v int64) *EmailMappingCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *EmailMappingCreate) SetStudentName(v string) *EmailMappingCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// Mutation returns the EmailMappingMutation object of the builder.
func (_c *EmailMappingCreate) Mutation() *EmailMappingMutation {
	return _c.mutation
}

// Save creates the EmailMapping in the database.
func (_c *EmailMappingCreate) Save(ctx context.Context) (*EmailMapping, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailMappingCreate) SaveX(ctx context.Context) *EmailMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailMappingCreate) check() error {
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "EmailMapping.exercise_id"`)}
	}
	if _, ok := _c.mutation.GitEmail(); !ok {
		return &ValidationError{Name: "git_email", err: errors.New(`ent: missing required field "EmailMapping.git_email"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "EmailMapping.student_id"`)}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "EmailMapping.student_name"`)}
	}
	return nil
}

func (_c *EmailMappingCreate) sqlSave(ctx context.Context) (*EmailMapping, error) {
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

func (_c *EmailMappingCreate) createSpec() (*EmailMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailmapping.Table, sqlgraph.NewFieldSpec(emailmapping.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(emailmapping.FieldExerciseID, field.TypeInt64, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.GitEmail(); ok {
		_spec.SetField(emailmapping.FieldGitEmail, field.TypeString, value)
		_node.GitEmail = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(emailmapping.FieldStudentID, field.TypeInt64, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(emailmapping.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	return _node, _spec
}

// EmailMappingCreateBulk is the builder for creating many EmailMapping entities in bulk.
type EmailMappingCreateBulk struct {
	config
	err      error
	builders []*EmailMappingCreate
}

// Save creates the EmailMapping entities in the database.
func (_c *EmailMappingCreateBulk) Save(ctx context.Context) ([]*EmailMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailMappingMutation)
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
func (_c *EmailMappingCreateBulk) SaveX(ctx context.Context) []*EmailMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
