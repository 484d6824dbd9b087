// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairlens/fairlens/ent/analysisstatus"
	"github.com/fairlens/fairlens/ent/predicate"
)

// AnalysisStatusUpdate is the builder for updating AnalysisStatus entities.
type AnalysisStatusUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisStatusMutation
}

// Where appends a list predicates to the AnalysisStatusUpdate builder.
func (_u *AnalysisStatusUpdate) Where(ps ...predicate.AnalysisStatus) *AnalysisStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *AnalysisStatusUpdate) SetState(v analysisstatus.State) *AnalysisStatusUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AnalysisStatusUpdate) SetNillableState(v *analysisstatus.State) *AnalysisStatusUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTotalTeams sets the "total_teams" field.
func (_u *AnalysisStatusUpdate) SetTotalTeams(v int) *AnalysisStatusUpdate {
	_u.mutation.ResetTotalTeams()
	_u.mutation.SetTotalTeams(v)
	return _u
}

// SetNillableTotalTeams sets the "total_teams" field if the given value is not nil.
func (_u *AnalysisStatusUpdate) SetNillableTotalTeams(v *int) *AnalysisStatusUpdate {
	if v != nil {
		_u.SetTotalTeams(*v)
	}
	return _u
}

// AddTotalTeams adds value to the "total_teams" field.
func (_u *AnalysisStatusUpdate) AddTotalTeams(v int) *AnalysisStatusUpdate {
	_u.mutation.AddTotalTeams(v)
	return _u
}

// SetProcessedTeams sets the "processed_teams" field.
func (_u *AnalysisStatusUpdate) SetProcessedTeams(v int) *AnalysisStatusUpdate {
	_u.mutation.ResetProcessedTeams()
	_u.mutation.SetProcessedTeams(v)
	return _u
}

// SetNillableProcessedTeams sets the "processed_teams" field if the given value is not nil.
func (_u *AnalysisStatusUpdate) SetNillableProcessedTeams(v *int) *AnalysisStatusUpdate {
	if v != nil {
		_u.SetProcessedTeams(*v)
	}
	return _u
}

// AddProcessedTeams adds value to the "processed_teams" field.
func (_u *AnalysisStatusUpdate) AddProcessedTeams(v int) *AnalysisStatusUpdate {
	_u.mutation.AddProcessedTeams(v)
	return _u
}

// SetCurrentTeamName sets the "current_team_name" field.
func (_u *AnalysisStatusUpdate) SetCurrentTeamName(v string) *AnalysisStatusUpdate {
	_u.mutation.SetCurrentTeamName(v)
	return _u
}

// SetNillableCurrentTeamName sets the "current_team_name" field if the given value is not nil.
func (_u *AnalysisStatusUpdate) SetNillableCurrentTeamName(v *string) *AnalysisStatusUpdate {
	if v != nil {
		_u.SetCurrentTeamName(*v)
	}
	return _u
}

// ClearCurrentTeamName clears the value of the "current_team_name" field.
func (_u *AnalysisStatusUpdate) ClearCurrentTeamName() *AnalysisStatusUpdate {
	_u.mutation.ClearCurrentTeamName()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *AnalysisStatusUpdate) SetCurrentStage(v string) *AnalysisStatusUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *AnalysisStatusUpdate) SetNillableCurrentStage(v *string) *AnalysisStatusUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *AnalysisStatusUpdate) ClearCurrentStage() *AnalysisStatusUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisStatusUpdate) SetStartedAt(v time.Time) *AnalysisStatusUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisStatusUpdate) SetNillableStartedAt(v *time.Time) *AnalysisStatusUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisStatusUpdate) ClearStartedAt() *AnalysisStatusUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *AnalysisStatusUpdate) SetLastUpdatedAt(v time.Time) *AnalysisStatusUpdate {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisStatusUpdate) SetErrorMessage(v string) *AnalysisStatusUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisStatusUpdate) SetNillableErrorMessage(v *string) *AnalysisStatusUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisStatusUpdate) ClearErrorMessage() *AnalysisStatusUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AnalysisStatusMutation object of the builder.
func (_u *AnalysisStatusUpdate) Mutation() *AnalysisStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisStatusUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := analysisstatus.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisStatusUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := analysisstatus.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AnalysisStatus.state": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisstatus.Table, analysisstatus.Columns, sqlgraph.NewFieldSpec(analysisstatus.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(analysisstatus.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalTeams(); ok {
		_spec.SetField(analysisstatus.FieldTotalTeams, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTeams(); ok {
		_spec.AddField(analysisstatus.FieldTotalTeams, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedTeams(); ok {
		_spec.SetField(analysisstatus.FieldProcessedTeams, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedTeams(); ok {
		_spec.AddField(analysisstatus.FieldProcessedTeams, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentTeamName(); ok {
		_spec.SetField(analysisstatus.FieldCurrentTeamName, field.TypeString, value)
	}
	if _u.mutation.CurrentTeamNameCleared() {
		_spec.ClearField(analysisstatus.FieldCurrentTeamName, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(analysisstatus.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(analysisstatus.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisstatus.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysisstatus.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(analysisstatus.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisstatus.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisstatus.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisStatusUpdateOne is the builder for updating a single AnalysisStatus entity.
type AnalysisStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisStatusMutation
}

// SetState sets the "state" field.
func (_u *AnalysisStatusUpdateOne) SetState(v analysisstatus.State) *AnalysisStatusUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AnalysisStatusUpdateOne) SetNillableState(v *analysisstatus.State) *AnalysisStatusUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTotalTeams sets the "total_teams" field.
func (_u *AnalysisStatusUpdateOne) SetTotalTeams(v int) *AnalysisStatusUpdateOne {
	_u.mutation.ResetTotalTeams()
	_u.mutation.SetTotalTeams(v)
	return _u
}

// SetNillableTotalTeams sets the "total_teams" field if the given value is not nil.
func (_u *AnalysisStatusUpdateOne) SetNillableTotalTeams(v *int) *AnalysisStatusUpdateOne {
	if v != nil {
		_u.SetTotalTeams(*v)
	}
	return _u
}

// AddTotalTeams adds value to the "total_teams" field.
func (_u *AnalysisStatusUpdateOne) AddTotalTeams(v int) *AnalysisStatusUpdateOne {
	_u.mutation.AddTotalTeams(v)
	return _u
}

// SetProcessedTeams sets the "processed_teams" field.
func (_u *AnalysisStatusUpdateOne) SetProcessedTeams(v int) *AnalysisStatusUpdateOne {
	_u.mutation.ResetProcessedTeams()
	_u.mutation.SetProcessedTeams(v)
	return _u
}

// SetNillableProcessedTeams sets the "processed_teams" field if the given value is not nil.
func (_u *AnalysisStatusUpdateOne) SetNillableProcessedTeams(v *int) *AnalysisStatusUpdateOne {
	if v != nil {
		_u.SetProcessedTeams(*v)
	}
	return _u
}

// AddProcessedTeams adds value to the "processed_teams" field.
func (_u *AnalysisStatusUpdateOne) AddProcessedTeams(v int) *AnalysisStatusUpdateOne {
	_u.mutation.AddProcessedTeams(v)
	return _u
}

// SetCurrentTeamName sets the "current_team_name" field.
func (_u *AnalysisStatusUpdateOne) SetCurrentTeamName(v string) *AnalysisStatusUpdateOne {
	_u.mutation.SetCurrentTeamName(v)
	return _u
}

// SetNillableCurrentTeamName sets the "current_team_name" field if the given value is not nil.
func (_u *AnalysisStatusUpdateOne) SetNillableCurrentTeamName(v *string) *AnalysisStatusUpdateOne {
	if v != nil {
		_u.SetCurrentTeamName(*v)
	}
	return _u
}

// ClearCurrentTeamName clears the value of the "current_team_name" field.
func (_u *AnalysisStatusUpdateOne) ClearCurrentTeamName() *AnalysisStatusUpdateOne {
	_u.mutation.ClearCurrentTeamName()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *AnalysisStatusUpdateOne) SetCurrentStage(v string) *AnalysisStatusUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *AnalysisStatusUpdateOne) SetNillableCurrentStage(v *string) *AnalysisStatusUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *AnalysisStatusUpdateOne) ClearCurrentStage() *AnalysisStatusUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisStatusUpdateOne) SetStartedAt(v time.Time) *AnalysisStatusUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisStatusUpdateOne) SetNillableStartedAt(v *time.Time) *AnalysisStatusUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisStatusUpdateOne) ClearStartedAt() *AnalysisStatusUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *AnalysisStatusUpdateOne) SetLastUpdatedAt(v time.Time) *AnalysisStatusUpdateOne {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisStatusUpdateOne) SetErrorMessage(v string) *AnalysisStatusUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisStatusUpdateOne) SetNillableErrorMessage(v *string) *AnalysisStatusUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisStatusUpdateOne) ClearErrorMessage() *AnalysisStatusUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AnalysisStatusMutation object of the builder.
func (_u *AnalysisStatusUpdateOne) Mutation() *AnalysisStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisStatusUpdate builder.
func (_u *AnalysisStatusUpdateOne) Where(ps ...predicate.AnalysisStatus) *AnalysisStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisStatusUpdateOne) Select(field string, fields ...string) *AnalysisStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisStatus entity.
func (_u *AnalysisStatusUpdateOne) Save(ctx context.Context) (*AnalysisStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisStatusUpdateOne) SaveX(ctx context.Context) *AnalysisStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := analysisstatus.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisStatusUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := analysisstatus.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AnalysisStatus.state": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisStatusUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisStatus, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisstatus.Table, analysisstatus.Columns, sqlgraph.NewFieldSpec(analysisstatus.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisstatus.FieldID)
		for _, f := range fields {
			if !analysisstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisstatus.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(analysisstatus.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalTeams(); ok {
		_spec.SetField(analysisstatus.FieldTotalTeams, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTeams(); ok {
		_spec.AddField(analysisstatus.FieldTotalTeams, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedTeams(); ok {
		_spec.SetField(analysisstatus.FieldProcessedTeams, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedTeams(); ok {
		_spec.AddField(analysisstatus.FieldProcessedTeams, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentTeamName(); ok {
		_spec.SetField(analysisstatus.FieldCurrentTeamName, field.TypeString, value)
	}
	if _u.mutation.CurrentTeamNameCleared() {
		_spec.ClearField(analysisstatus.FieldCurrentTeamName, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(analysisstatus.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(analysisstatus.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisstatus.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysisstatus.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(analysisstatus.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisstatus.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisstatus.FieldErrorMessage, field.TypeString)
	}
	_node = &AnalysisStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
