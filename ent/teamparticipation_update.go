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
	"github.com/fairlens/fairlens/pkg/models"
)

// TeamParticipationUpdate is the builder for updating TeamParticipation entities.
type TeamParticipationUpdate struct {
	config
	hooks    []Hook
	mutation *TeamParticipationMutation
}

// Where appends a list predicates to the TeamParticipationUpdate builder.
func (_u *TeamParticipationUpdate) Where(ps ...predicate.TeamParticipation) *TeamParticipationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTeamName sets the "team_name" field.
func (_u *TeamParticipationUpdate) SetTeamName(v string) *TeamParticipationUpdate {
	_u.mutation.SetTeamName(v)
	return _u
}

// SetNillableTeamName sets the "team_name" field if the given value is not nil.
func (_u *TeamParticipationUpdate) SetNillableTeamName(v *string) *TeamParticipationUpdate {
	if v != nil {
		_u.SetTeamName(*v)
	}
	return _u
}

// SetRepositoryURI sets the "repository_uri" field.
func (_u *TeamParticipationUpdate) SetRepositoryURI(v string) *TeamParticipationUpdate {
	_u.mutation.SetRepositoryURI(v)
	return _u
}

// SetNillableRepositoryURI sets the "repository_uri" field if the given value is not nil.
func (_u *TeamParticipationUpdate) SetNillableRepositoryURI(v *string) *TeamParticipationUpdate {
	if v != nil {
		_u.SetRepositoryURI(*v)
	}
	return _u
}

// SetMembers sets the "members" field.
func (_u *TeamParticipationUpdate) SetMembers(v []models.Member) *TeamParticipationUpdate {
	_u.mutation.SetMembers(v)
	return _u
}

// AppendMembers appends value to the "members" field.
func (_u *TeamParticipationUpdate) AppendMembers(v []models.Member) *TeamParticipationUpdate {
	_u.mutation.AppendMembers(v)
	return _u
}

// ClearMembers clears the value of the "members" field.
func (_u *TeamParticipationUpdate) ClearMembers() *TeamParticipationUpdate {
	_u.mutation.ClearMembers()
	return _u
}

// SetCqi sets the "cqi" field.
func (_u *TeamParticipationUpdate) SetCqi(v float64) *TeamParticipationUpdate {
	_u.mutation.ResetCqi()
	_u.mutation.SetCqi(v)
	return _u
}

// SetNillableCqi sets the "cqi" field if the given value is not nil.
func (_u *TeamParticipationUpdate) SetNillableCqi(v *float64) *TeamParticipationUpdate {
	if v != nil {
		_u.SetCqi(*v)
	}
	return _u
}

// AddCqi adds value to the "cqi" field.
func (_u *TeamParticipationUpdate) AddCqi(v float64) *TeamParticipationUpdate {
	_u.mutation.AddCqi(v)
	return _u
}

// ClearCqi clears the value of the "cqi" field.
func (_u *TeamParticipationUpdate) ClearCqi() *TeamParticipationUpdate {
	_u.mutation.ClearCqi()
	return _u
}

// SetIsSuspicious sets the "is_suspicious" field.
func (_u *TeamParticipationUpdate) SetIsSuspicious(v bool) *TeamParticipationUpdate {
	_u.mutation.SetIsSuspicious(v)
	return _u
}

// SetNillableIsSuspicious sets the "is_suspicious" field if the given value is not nil.
func (_u *TeamParticipationUpdate) SetNillableIsSuspicious(v *bool) *TeamParticipationUpdate {
	if v != nil {
		_u.SetIsSuspicious(*v)
	}
	return _u
}

// SetBalanceScore sets the "balance_score" field.
func (_u *TeamParticipationUpdate) SetBalanceScore(v float64) *TeamParticipationUpdate {
	_u.mutation.ResetBalanceScore()
	_u.mutation.SetBalanceScore(v)
	return _u
}

// SetNillableBalanceScore sets the "balance_score" field if the given value is not nil.
func (_u *TeamParticipationUpdate) SetNillableBalanceScore(v *float64) *TeamParticipationUpdate {
	if v != nil {
		_u.SetBalanceScore(*v)
	}
	return _u
}

// AddBalanceScore adds value to the "balance_score" field.
func (_u *TeamParticipationUpdate) AddBalanceScore(v float64) *TeamParticipationUpdate {
	_u.mutation.AddBalanceScore(v)
	return _u
}

// ClearBalanceScore clears the value of the "balance_score" field.
func (_u *TeamParticipationUpdate) ClearBalanceScore() *TeamParticipationUpdate {
	_u.mutation.ClearBalanceScore()
	return _u
}

// SetComponents sets the "components" field.
func (_u *TeamParticipationUpdate) SetComponents(v *models.ComponentScores) *TeamParticipationUpdate {
	_u.mutation.SetComponents(v)
	return _u
}

// ClearComponents clears the value of the "components" field.
func (_u *TeamParticipationUpdate) ClearComponents() *TeamParticipationUpdate {
	_u.mutation.ClearComponents()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *TeamParticipationUpdate) SetFlags(v []string) *TeamParticipationUpdate {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *TeamParticipationUpdate) AppendFlags(v []string) *TeamParticipationUpdate {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *TeamParticipationUpdate) ClearFlags() *TeamParticipationUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// SetPenalties sets the "penalties" field.
func (_u *TeamParticipationUpdate) SetPenalties(v []models.Penalty) *TeamParticipationUpdate {
	_u.mutation.SetPenalties(v)
	return _u
}

// AppendPenalties appends value to the "penalties" field.
func (_u *TeamParticipationUpdate) AppendPenalties(v []models.Penalty) *TeamParticipationUpdate {
	_u.mutation.AppendPenalties(v)
	return _u
}

// ClearPenalties clears the value of the "penalties" field.
func (_u *TeamParticipationUpdate) ClearPenalties() *TeamParticipationUpdate {
	_u.mutation.ClearPenalties()
	return _u
}

// SetTokenTotals sets the "token_totals" field.
func (_u *TeamParticipationUpdate) SetTokenTotals(v *models.TokenTotals) *TeamParticipationUpdate {
	_u.mutation.SetTokenTotals(v)
	return _u
}

// ClearTokenTotals clears the value of the "token_totals" field.
func (_u *TeamParticipationUpdate) ClearTokenTotals() *TeamParticipationUpdate {
	_u.mutation.ClearTokenTotals()
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *TeamParticipationUpdate) SetAnalyzedAt(v time.Time) *TeamParticipationUpdate {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *TeamParticipationUpdate) SetNillableAnalyzedAt(v *time.Time) *TeamParticipationUpdate {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (_u *TeamParticipationUpdate) ClearAnalyzedAt() *TeamParticipationUpdate {
	_u.mutation.ClearAnalyzedAt()
	return _u
}

// AddChunkIDs adds the "chunks" edge to the AnalyzedChunk entity by IDs.
func (_u *TeamParticipationUpdate) AddChunkIDs(ids ...int) *TeamParticipationUpdate {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the AnalyzedChunk entity.
func (_u *TeamParticipationUpdate) AddChunks(v ...*AnalyzedChunk) *TeamParticipationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the TeamParticipationMutation object of the builder.
func (_u *TeamParticipationUpdate) Mutation() *TeamParticipationMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the AnalyzedChunk entity.
func (_u *TeamParticipationUpdate) ClearChunks() *TeamParticipationUpdate {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to AnalyzedChunk entities by IDs.
func (_u *TeamParticipationUpdate) RemoveChunkIDs(ids ...int) *TeamParticipationUpdate {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to AnalyzedChunk entities.
func (_u *TeamParticipationUpdate) RemoveChunks(v ...*AnalyzedChunk) *TeamParticipationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TeamParticipationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeamParticipationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TeamParticipationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeamParticipationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TeamParticipationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(teamparticipation.Table, teamparticipation.Columns, sqlgraph.NewFieldSpec(teamparticipation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TeamName(); ok {
		_spec.SetField(teamparticipation.FieldTeamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepositoryURI(); ok {
		_spec.SetField(teamparticipation.FieldRepositoryURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Members(); ok {
		_spec.SetField(teamparticipation.FieldMembers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMembers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, teamparticipation.FieldMembers, value)
		})
	}
	if _u.mutation.MembersCleared() {
		_spec.ClearField(teamparticipation.FieldMembers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cqi(); ok {
		_spec.SetField(teamparticipation.FieldCqi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCqi(); ok {
		_spec.AddField(teamparticipation.FieldCqi, field.TypeFloat64, value)
	}
	if _u.mutation.CqiCleared() {
		_spec.ClearField(teamparticipation.FieldCqi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsSuspicious(); ok {
		_spec.SetField(teamparticipation.FieldIsSuspicious, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BalanceScore(); ok {
		_spec.SetField(teamparticipation.FieldBalanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBalanceScore(); ok {
		_spec.AddField(teamparticipation.FieldBalanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.BalanceScoreCleared() {
		_spec.ClearField(teamparticipation.FieldBalanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Components(); ok {
		_spec.SetField(teamparticipation.FieldComponents, field.TypeJSON, value)
	}
	if _u.mutation.ComponentsCleared() {
		_spec.ClearField(teamparticipation.FieldComponents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(teamparticipation.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, teamparticipation.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(teamparticipation.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Penalties(); ok {
		_spec.SetField(teamparticipation.FieldPenalties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPenalties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, teamparticipation.FieldPenalties, value)
		})
	}
	if _u.mutation.PenaltiesCleared() {
		_spec.ClearField(teamparticipation.FieldPenalties, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokenTotals(); ok {
		_spec.SetField(teamparticipation.FieldTokenTotals, field.TypeJSON, value)
	}
	if _u.mutation.TokenTotalsCleared() {
		_spec.ClearField(teamparticipation.FieldTokenTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(teamparticipation.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalyzedAtCleared() {
		_spec.ClearField(teamparticipation.FieldAnalyzedAt, field.TypeTime)
	}
	if _u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{teamparticipation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TeamParticipationUpdateOne is the builder for updating a single TeamParticipation entity.
type TeamParticipationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TeamParticipationMutation
}

// SetTeamName sets the "team_name" field.
func (_u *TeamParticipationUpdateOne) SetTeamName(v string) *TeamParticipationUpdateOne {
	_u.mutation.SetTeamName(v)
	return _u
}

// SetNillableTeamName sets the "team_name" field if the given value is not nil.
func (_u *TeamParticipationUpdateOne) SetNillableTeamName(v *string) *TeamParticipationUpdateOne {
	if v != nil {
		_u.SetTeamName(*v)
	}
	return _u
}

// SetRepositoryURI sets the "repository_uri" field.
func (_u *TeamParticipationUpdateOne) SetRepositoryURI(v string) *TeamParticipationUpdateOne {
	_u.mutation.SetRepositoryURI(v)
	return _u
}

// SetNillableRepositoryURI sets the "repository_uri" field if the given value is not nil.
func (_u *TeamParticipationUpdateOne) SetNillableRepositoryURI(v *string) *TeamParticipationUpdateOne {
	if v != nil {
		_u.SetRepositoryURI(*v)
	}
	return _u
}

// SetMembers sets the "members" field.
func (_u *TeamParticipationUpdateOne) SetMembers(v []models.Member) *TeamParticipationUpdateOne {
	_u.mutation.SetMembers(v)
	return _u
}

// AppendMembers appends value to the "members" field.
func (_u *TeamParticipationUpdateOne) AppendMembers(v []models.Member) *TeamParticipationUpdateOne {
	_u.mutation.AppendMembers(v)
	return _u
}

// ClearMembers clears the value of the "members" field.
func (_u *TeamParticipationUpdateOne) ClearMembers() *TeamParticipationUpdateOne {
	_u.mutation.ClearMembers()
	return _u
}

// SetCqi sets the "cqi" field.
func (_u *TeamParticipationUpdateOne) SetCqi(v float64) *TeamParticipationUpdateOne {
	_u.mutation.ResetCqi()
	_u.mutation.SetCqi(v)
	return _u
}

// SetNillableCqi sets the "cqi" field if the given value is not nil.
func (_u *TeamParticipationUpdateOne) SetNillableCqi(v *float64) *TeamParticipationUpdateOne {
	if v != nil {
		_u.SetCqi(*v)
	}
	return _u
}

// AddCqi adds value to the "cqi" field.
func (_u *TeamParticipationUpdateOne) AddCqi(v float64) *TeamParticipationUpdateOne {
	_u.mutation.AddCqi(v)
	return _u
}

// ClearCqi clears the value of the "cqi" field.
func (_u *TeamParticipationUpdateOne) ClearCqi() *TeamParticipationUpdateOne {
	_u.mutation.ClearCqi()
	return _u
}

// SetIsSuspicious sets the "is_suspicious" field.
func (_u *TeamParticipationUpdateOne) SetIsSuspicious(v bool) *TeamParticipationUpdateOne {
	_u.mutation.SetIsSuspicious(v)
	return _u
}

// SetNillableIsSuspicious sets the "is_suspicious" field if the given value is not nil.
func (_u *TeamParticipationUpdateOne) SetNillableIsSuspicious(v *bool) *TeamParticipationUpdateOne {
	if v != nil {
		_u.SetIsSuspicious(*v)
	}
	return _u
}

// SetBalanceScore sets the "balance_score" field.
func (_u *TeamParticipationUpdateOne) SetBalanceScore(v float64) *TeamParticipationUpdateOne {
	_u.mutation.ResetBalanceScore()
	_u.mutation.SetBalanceScore(v)
	return _u
}

// SetNillableBalanceScore sets the "balance_score" field if the given value is not nil.
func (_u *TeamParticipationUpdateOne) SetNillableBalanceScore(v *float64) *TeamParticipationUpdateOne {
	if v != nil {
		_u.SetBalanceScore(*v)
	}
	return _u
}

// AddBalanceScore adds value to the "balance_score" field.
func (_u *TeamParticipationUpdateOne) AddBalanceScore(v float64) *TeamParticipationUpdateOne {
	_u.mutation.AddBalanceScore(v)
	return _u
}

// ClearBalanceScore clears the value of the "balance_score" field.
func (_u *TeamParticipationUpdateOne) ClearBalanceScore() *TeamParticipationUpdateOne {
	_u.mutation.ClearBalanceScore()
	return _u
}

// SetComponents sets the "components" field.
func (_u *TeamParticipationUpdateOne) SetComponents(v *models.ComponentScores) *TeamParticipationUpdateOne {
	_u.mutation.SetComponents(v)
	return _u
}

// ClearComponents clears the value of the "components" field.
func (_u *TeamParticipationUpdateOne) ClearComponents() *TeamParticipationUpdateOne {
	_u.mutation.ClearComponents()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *TeamParticipationUpdateOne) SetFlags(v []string) *TeamParticipationUpdateOne {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *TeamParticipationUpdateOne) AppendFlags(v []string) *TeamParticipationUpdateOne {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *TeamParticipationUpdateOne) ClearFlags() *TeamParticipationUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// SetPenalties sets the "penalties" field.
func (_u *TeamParticipationUpdateOne) SetPenalties(v []models.Penalty) *TeamParticipationUpdateOne {
	_u.mutation.SetPenalties(v)
	return _u
}

// AppendPenalties appends value to the "penalties" field.
func (_u *TeamParticipationUpdateOne) AppendPenalties(v []models.Penalty) *TeamParticipationUpdateOne {
	_u.mutation.AppendPenalties(v)
	return _u
}

// ClearPenalties clears the value of the "penalties" field.
func (_u *TeamParticipationUpdateOne) ClearPenalties() *TeamParticipationUpdateOne {
	_u.mutation.ClearPenalties()
	return _u
}

// SetTokenTotals sets the "token_totals" field.
func (_u *TeamParticipationUpdateOne) SetTokenTotals(v *models.TokenTotals) *TeamParticipationUpdateOne {
	_u.mutation.SetTokenTotals(v)
	return _u
}

// ClearTokenTotals clears the value of the "token_totals" field.
func (_u *TeamParticipationUpdateOne) ClearTokenTotals() *TeamParticipationUpdateOne {
	_u.mutation.ClearTokenTotals()
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *TeamParticipationUpdateOne) SetAnalyzedAt(v time.Time) *TeamParticipationUpdateOne {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *TeamParticipationUpdateOne) SetNillableAnalyzedAt(v *time.Time) *TeamParticipationUpdateOne {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (_u *TeamParticipationUpdateOne) ClearAnalyzedAt() *TeamParticipationUpdateOne {
	_u.mutation.ClearAnalyzedAt()
	return _u
}

// AddChunkIDs adds the "chunks" edge to the AnalyzedChunk entity by IDs.
func (_u *TeamParticipationUpdateOne) AddChunkIDs(ids ...int) *TeamParticipationUpdateOne {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the AnalyzedChunk entity.
func (_u *TeamParticipationUpdateOne) AddChunks(v ...*AnalyzedChunk) *TeamParticipationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the TeamParticipationMutation object of the builder.
func (_u *TeamParticipationUpdateOne) Mutation() *TeamParticipationMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the AnalyzedChunk entity.
func (_u *TeamParticipationUpdateOne) ClearChunks() *TeamParticipationUpdateOne {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to AnalyzedChunk entities by IDs.
func (_u *TeamParticipationUpdateOne) RemoveChunkIDs(ids ...int) *TeamParticipationUpdateOne {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to AnalyzedChunk entities.
func (_u *TeamParticipationUpdateOne) RemoveChunks(v ...*AnalyzedChunk) *TeamParticipationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Where appends a list predicates to the TeamParticipationUpdate builder.
func (_u *TeamParticipationUpdateOne) Where(ps ...predicate.TeamParticipation) *TeamParticipationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TeamParticipationUpdateOne) Select(field string, fields ...string) *TeamParticipationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TeamParticipation entity.
func (_u *TeamParticipationUpdateOne) Save(ctx context.Context) (*TeamParticipation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeamParticipationUpdateOne) SaveX(ctx context.Context) *TeamParticipation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TeamParticipationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeamParticipationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TeamParticipationUpdateOne) sqlSave(ctx context.Context) (_node *TeamParticipation, err error) {
	_spec := sqlgraph.NewUpdateSpec(teamparticipation.Table, teamparticipation.Columns, sqlgraph.NewFieldSpec(teamparticipation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TeamParticipation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, teamparticipation.FieldID)
		for _, f := range fields {
			if !teamparticipation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != teamparticipation.FieldID {
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
	if value, ok := _u.mutation.TeamName(); ok {
		_spec.SetField(teamparticipation.FieldTeamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepositoryURI(); ok {
		_spec.SetField(teamparticipation.FieldRepositoryURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Members(); ok {
		_spec.SetField(teamparticipation.FieldMembers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMembers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, teamparticipation.FieldMembers, value)
		})
	}
	if _u.mutation.MembersCleared() {
		_spec.ClearField(teamparticipation.FieldMembers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cqi(); ok {
		_spec.SetField(teamparticipation.FieldCqi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCqi(); ok {
		_spec.AddField(teamparticipation.FieldCqi, field.TypeFloat64, value)
	}
	if _u.mutation.CqiCleared() {
		_spec.ClearField(teamparticipation.FieldCqi, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsSuspicious(); ok {
		_spec.SetField(teamparticipation.FieldIsSuspicious, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BalanceScore(); ok {
		_spec.SetField(teamparticipation.FieldBalanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBalanceScore(); ok {
		_spec.AddField(teamparticipation.FieldBalanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.BalanceScoreCleared() {
		_spec.ClearField(teamparticipation.FieldBalanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Components(); ok {
		_spec.SetField(teamparticipation.FieldComponents, field.TypeJSON, value)
	}
	if _u.mutation.ComponentsCleared() {
		_spec.ClearField(teamparticipation.FieldComponents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(teamparticipation.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, teamparticipation.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(teamparticipation.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Penalties(); ok {
		_spec.SetField(teamparticipation.FieldPenalties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPenalties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, teamparticipation.FieldPenalties, value)
		})
	}
	if _u.mutation.PenaltiesCleared() {
		_spec.ClearField(teamparticipation.FieldPenalties, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokenTotals(); ok {
		_spec.SetField(teamparticipation.FieldTokenTotals, field.TypeJSON, value)
	}
	if _u.mutation.TokenTotalsCleared() {
		_spec.ClearField(teamparticipation.FieldTokenTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(teamparticipation.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalyzedAtCleared() {
		_spec.ClearField(teamparticipation.FieldAnalyzedAt, field.TypeTime)
	}
	if _u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TeamParticipation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{teamparticipation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
