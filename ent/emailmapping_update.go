// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairlens/fairlens/ent/emailmapping"
	"github.com/fairlens/fairlens/ent/predicate"
)

// EmailMappingUpdate is the builder for updating EmailMapping entities.
type EmailMappingUpdate struct {
	config
	hooks    []Hook
	mutation *EmailMappingMutation
}

// Where appends a list predicates to the EmailMappingUpdate builder.
func (_u *EmailMappingUpdate) Where(ps ...predicate.EmailMapping) *EmailMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *EmailMappingUpdate) SetStudentID(v int64) *EmailMappingUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *EmailMappingUpdate) SetNillableStudentID(v *int64) *EmailMappingUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *EmailMappingUpdate) AddStudentID(v int64) *EmailMappingUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *EmailMappingUpdate) SetStudentName(v string) *EmailMappingUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *EmailMappingUpdate) SetNillableStudentName(v *string) *EmailMappingUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// Mutation returns the EmailMappingMutation object of the builder.
func (_u *EmailMappingUpdate) Mutation() *EmailMappingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailMappingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmailMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(emailmapping.Table, emailmapping.Columns, sqlgraph.NewFieldSpec(emailmapping.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(emailmapping.FieldStudentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(emailmapping.FieldStudentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(emailmapping.FieldStudentName, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailMappingUpdateOne is the builder for updating a single EmailMapping entity.
type EmailMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailMappingMutation
}

// SetStudentID sets the "student_id" field.
func (_u *EmailMappingUpdateOne) SetStudentID(v int64) *EmailMappingUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *EmailMappingUpdateOne) SetNillableStudentID(v *int64) *EmailMappingUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *EmailMappingUpdateOne) AddStudentID(v int64) *EmailMappingUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *EmailMappingUpdateOne) SetStudentName(v string) *EmailMappingUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *EmailMappingUpdateOne) SetNillableStudentName(v *string) *EmailMappingUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// Mutation returns the EmailMappingMutation object of the builder.
func (_u *EmailMappingUpdateOne) Mutation() *EmailMappingMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmailMappingUpdate builder.
func (_u *EmailMappingUpdateOne) Where(ps ...predicate.EmailMapping) *EmailMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailMappingUpdateOne) Select(field string, fields ...string) *EmailMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailMapping entity.
func (_u *EmailMappingUpdateOne) Save(ctx context.Context) (*EmailMapping, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailMappingUpdateOne) SaveX(ctx context.Context) *EmailMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmailMappingUpdateOne) sqlSave(ctx context.Context) (_node *EmailMapping, err error) {
	_spec := sqlgraph.NewUpdateSpec(emailmapping.Table, emailmapping.Columns, sqlgraph.NewFieldSpec(emailmapping.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailmapping.FieldID)
		for _, f := range fields {
			if !emailmapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailmapping.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(emailmapping.FieldStudentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(emailmapping.FieldStudentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(emailmapping.FieldStudentName, field.TypeString, value)
	}
	_node = &EmailMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
