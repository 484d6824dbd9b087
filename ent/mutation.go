// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fairlens/fairlens/ent/analysisstatus"
	"github.com/fairlens/fairlens/ent/analyzedchunk"
	"github.com/fairlens/fairlens/ent/emailmapping"
	"github.com/fairlens/fairlens/ent/event"
	"github.com/fairlens/fairlens/ent/predicate"
	"github.com/fairlens/fairlens/ent/teamparticipation"
	"github.com/fairlens/fairlens/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisStatus    = "AnalysisStatus"
	TypeAnalyzedChunk     = "AnalyzedChunk"
	TypeEmailMapping      = "EmailMapping"
	TypeEvent             = "Event"
	TypeTeamParticipation = "TeamParticipation"
)

// AnalysisStatusMutation represents an operation that mutates the AnalysisStatus nodes in the graph.
type AnalysisStatusMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	exercise_id        *int64
	addexercise_id     *int64
	state              *analysisstatus.State
	total_teams        *int
	addtotal_teams     *int
	processed_teams    *int
	addprocessed_teams *int
	current_team_name  *string
	current_stage      *string
	started_at         *time.Time
	last_updated_at    *time.Time
	error_message      *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AnalysisStatus, error)
	predicates         []predicate.AnalysisStatus
}

var _ ent.Mutation = (*AnalysisStatusMutation)(nil)

// analysisstatusOption allows management of the mutation configuration using functional options.
type analysisstatusOption func(*AnalysisStatusMutation)

// newAnalysisStatusMutation creates new mutation for the AnalysisStatus entity.
func newAnalysisStatusMutation(c config, op Op, opts ...analysisstatusOption) *AnalysisStatusMutation {
	m := &AnalysisStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisStatusID sets the ID field of the mutation.
func withAnalysisStatusID(id int) analysisstatusOption {
	return func(m *AnalysisStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisStatus
		)
		m.oldValue = func(ctx context.Context) (*AnalysisStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisStatus sets the old AnalysisStatus of the mutation.
func withAnalysisStatus(node *AnalysisStatus) analysisstatusOption {
	return func(m *AnalysisStatusMutation) {
		m.oldValue = func(context.Context) (*AnalysisStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisStatusMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisStatusMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExerciseID sets the "exercise_id" field.
func (m *AnalysisStatusMutation) SetExerciseID(i int64) {
	m.exercise_id = &i
	m.addexercise_id = nil
}

// ExerciseID returns the value of the "exercise_id" field in the mutation.
func (m *AnalysisStatusMutation) ExerciseID() (r int64, exists bool) {
	v := m.exercise_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseID returns the old "exercise_id" field's value of the AnalysisStatus entity.
// If the AnalysisStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisStatusMutation) OldExerciseID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseID: %w", err)
	}
	return oldValue.ExerciseID, nil
}

// AddExerciseID adds i to the "exercise_id" field.
func (m *AnalysisStatusMutation) AddExerciseID(i int64) {
	if m.addexercise_id != nil {
		*m.addexercise_id += i
	} else {
		m.addexercise_id = &i
	}
}

// AddedExerciseID returns the value that was added to the "exercise_id" field in this mutation.
func (m *AnalysisStatusMutation) AddedExerciseID() (r int64, exists bool) {
	v := m.addexercise_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetExerciseID resets all changes to the "exercise_id" field.
func (m *AnalysisStatusMutation) ResetExerciseID() {
	m.exercise_id = nil
	m.addexercise_id = nil
}

// SetState sets the "state" field.
func (m *AnalysisStatusMutation) SetState(a analysisstatus.State) {
	m.state = &a
}

// State returns the value of the "state" field in the mutation.
func (m *AnalysisStatusMutation) State() (r analysisstatus.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the AnalysisStatus entity.
// If the AnalysisStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisStatusMutation) OldState(ctx context.Context) (v analysisstatus.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *AnalysisStatusMutation) ResetState() {
	m.state = nil
}

// SetTotalTeams sets the "total_teams" field.
func (m *AnalysisStatusMutation) SetTotalTeams(i int) {
	m.total_teams = &i
	m.addtotal_teams = nil
}

// TotalTeams returns the value of the "total_teams" field in the mutation.
func (m *AnalysisStatusMutation) TotalTeams() (r int, exists bool) {
	v := m.total_teams
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTeams returns the old "total_teams" field's value of the AnalysisStatus entity.
// If the AnalysisStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisStatusMutation) OldTotalTeams(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTeams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTeams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTeams: %w", err)
	}
	return oldValue.TotalTeams, nil
}

// AddTotalTeams adds i to the "total_teams" field.
func (m *AnalysisStatusMutation) AddTotalTeams(i int) {
	if m.addtotal_teams != nil {
		*m.addtotal_teams += i
	} else {
		m.addtotal_teams = &i
	}
}

// AddedTotalTeams returns the value that was added to the "total_teams" field in this mutation.
func (m *AnalysisStatusMutation) AddedTotalTeams() (r int, exists bool) {
	v := m.addtotal_teams
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTeams resets all changes to the "total_teams" field.
func (m *AnalysisStatusMutation) ResetTotalTeams() {
	m.total_teams = nil
	m.addtotal_teams = nil
}

// SetProcessedTeams sets the "processed_teams" field.
func (m *AnalysisStatusMutation) SetProcessedTeams(i int) {
	m.processed_teams = &i
	m.addprocessed_teams = nil
}

// ProcessedTeams returns the value of the "processed_teams" field in the mutation.
func (m *AnalysisStatusMutation) ProcessedTeams() (r int, exists bool) {
	v := m.processed_teams
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedTeams returns the old "processed_teams" field's value of the AnalysisStatus entity.
// If the AnalysisStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisStatusMutation) OldProcessedTeams(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedTeams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedTeams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedTeams: %w", err)
	}
	return oldValue.ProcessedTeams, nil
}

// AddProcessedTeams adds i to the "processed_teams" field.
func (m *AnalysisStatusMutation) AddProcessedTeams(i int) {
	if m.addprocessed_teams != nil {
		*m.addprocessed_teams += i
	} else {
		m.addprocessed_teams = &i
	}
}

// AddedProcessedTeams returns the value that was added to the "processed_teams" field in this mutation.
func (m *AnalysisStatusMutation) AddedProcessedTeams() (r int, exists bool) {
	v := m.addprocessed_teams
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedTeams resets all changes to the "processed_teams" field.
func (m *AnalysisStatusMutation) ResetProcessedTeams() {
	m.processed_teams = nil
	m.addprocessed_teams = nil
}

// SetCurrentTeamName sets the "current_team_name" field.
func (m *AnalysisStatusMutation) SetCurrentTeamName(s string) {
	m.current_team_name = &s
}

// CurrentTeamName returns the value of the "current_team_name" field in the mutation.
func (m *AnalysisStatusMutation) CurrentTeamName() (r string, exists bool) {
	v := m.current_team_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTeamName returns the old "current_team_name" field's value of the AnalysisStatus entity.
// If the AnalysisStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisStatusMutation) OldCurrentTeamName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTeamName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTeamName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTeamName: %w", err)
	}
	return oldValue.CurrentTeamName, nil
}

// ClearCurrentTeamName clears the value of the "current_team_name" field.
func (m *AnalysisStatusMutation) ClearCurrentTeamName() {
	m.current_team_name = nil
	m.clearedFields[analysisstatus.FieldCurrentTeamName] = struct{}{}
}

// CurrentTeamNameCleared returns if the "current_team_name" field was cleared in this mutation.
func (m *AnalysisStatusMutation) CurrentTeamNameCleared() bool {
	_, ok := m.clearedFields[analysisstatus.FieldCurrentTeamName]
	return ok
}

// ResetCurrentTeamName resets all changes to the "current_team_name" field.
func (m *AnalysisStatusMutation) ResetCurrentTeamName() {
	m.current_team_name = nil
	delete(m.clearedFields, analysisstatus.FieldCurrentTeamName)
}

// SetCurrentStage sets the "current_stage" field.
func (m *AnalysisStatusMutation) SetCurrentStage(s string) {
	m.current_stage = &s
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *AnalysisStatusMutation) CurrentStage() (r string, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the AnalysisStatus entity.
// If the AnalysisStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisStatusMutation) OldCurrentStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *AnalysisStatusMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.clearedFields[analysisstatus.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *AnalysisStatusMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[analysisstatus.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *AnalysisStatusMutation) ResetCurrentStage() {
	m.current_stage = nil
	delete(m.clearedFields, analysisstatus.FieldCurrentStage)
}

// SetStartedAt sets the "started_at" field.
func (m *AnalysisStatusMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AnalysisStatusMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AnalysisStatus entity.
// If the AnalysisStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisStatusMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AnalysisStatusMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[analysisstatus.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AnalysisStatusMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[analysisstatus.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AnalysisStatusMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, analysisstatus.FieldStartedAt)
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (m *AnalysisStatusMutation) SetLastUpdatedAt(t time.Time) {
	m.last_updated_at = &t
}

// LastUpdatedAt returns the value of the "last_updated_at" field in the mutation.
func (m *AnalysisStatusMutation) LastUpdatedAt() (r time.Time, exists bool) {
	v := m.last_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdatedAt returns the old "last_updated_at" field's value of the AnalysisStatus entity.
// If the AnalysisStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisStatusMutation) OldLastUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdatedAt: %w", err)
	}
	return oldValue.LastUpdatedAt, nil
}

// ResetLastUpdatedAt resets all changes to the "last_updated_at" field.
func (m *AnalysisStatusMutation) ResetLastUpdatedAt() {
	m.last_updated_at = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisStatusMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisStatusMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisStatus entity.
// If the AnalysisStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisStatusMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisStatusMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysisstatus.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisStatusMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysisstatus.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisStatusMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysisstatus.FieldErrorMessage)
}

// Where appends a list predicates to the AnalysisStatusMutation builder.
func (m *AnalysisStatusMutation) Where(ps ...predicate.AnalysisStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisStatus).
func (m *AnalysisStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisStatusMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.exercise_id != nil {
		fields = append(fields, analysisstatus.FieldExerciseID)
	}
	if m.state != nil {
		fields = append(fields, analysisstatus.FieldState)
	}
	if m.total_teams != nil {
		fields = append(fields, analysisstatus.FieldTotalTeams)
	}
	if m.processed_teams != nil {
		fields = append(fields, analysisstatus.FieldProcessedTeams)
	}
	if m.current_team_name != nil {
		fields = append(fields, analysisstatus.FieldCurrentTeamName)
	}
	if m.current_stage != nil {
		fields = append(fields, analysisstatus.FieldCurrentStage)
	}
	if m.started_at != nil {
		fields = append(fields, analysisstatus.FieldStartedAt)
	}
	if m.last_updated_at != nil {
		fields = append(fields, analysisstatus.FieldLastUpdatedAt)
	}
	if m.error_message != nil {
		fields = append(fields, analysisstatus.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisstatus.FieldExerciseID:
		return m.ExerciseID()
	case analysisstatus.FieldState:
		return m.State()
	case analysisstatus.FieldTotalTeams:
		return m.TotalTeams()
	case analysisstatus.FieldProcessedTeams:
		return m.ProcessedTeams()
	case analysisstatus.FieldCurrentTeamName:
		return m.CurrentTeamName()
	case analysisstatus.FieldCurrentStage:
		return m.CurrentStage()
	case analysisstatus.FieldStartedAt:
		return m.StartedAt()
	case analysisstatus.FieldLastUpdatedAt:
		return m.LastUpdatedAt()
	case analysisstatus.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisstatus.FieldExerciseID:
		return m.OldExerciseID(ctx)
	case analysisstatus.FieldState:
		return m.OldState(ctx)
	case analysisstatus.FieldTotalTeams:
		return m.OldTotalTeams(ctx)
	case analysisstatus.FieldProcessedTeams:
		return m.OldProcessedTeams(ctx)
	case analysisstatus.FieldCurrentTeamName:
		return m.OldCurrentTeamName(ctx)
	case analysisstatus.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case analysisstatus.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case analysisstatus.FieldLastUpdatedAt:
		return m.OldLastUpdatedAt(ctx)
	case analysisstatus.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisstatus.FieldExerciseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseID(v)
		return nil
	case analysisstatus.FieldState:
		v, ok := value.(analysisstatus.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case analysisstatus.FieldTotalTeams:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTeams(v)
		return nil
	case analysisstatus.FieldProcessedTeams:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedTeams(v)
		return nil
	case analysisstatus.FieldCurrentTeamName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTeamName(v)
		return nil
	case analysisstatus.FieldCurrentStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case analysisstatus.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case analysisstatus.FieldLastUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdatedAt(v)
		return nil
	case analysisstatus.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisStatusMutation) AddedFields() []string {
	var fields []string
	if m.addexercise_id != nil {
		fields = append(fields, analysisstatus.FieldExerciseID)
	}
	if m.addtotal_teams != nil {
		fields = append(fields, analysisstatus.FieldTotalTeams)
	}
	if m.addprocessed_teams != nil {
		fields = append(fields, analysisstatus.FieldProcessedTeams)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisStatusMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisstatus.FieldExerciseID:
		return m.AddedExerciseID()
	case analysisstatus.FieldTotalTeams:
		return m.AddedTotalTeams()
	case analysisstatus.FieldProcessedTeams:
		return m.AddedProcessedTeams()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisstatus.FieldExerciseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExerciseID(v)
		return nil
	case analysisstatus.FieldTotalTeams:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTeams(v)
		return nil
	case analysisstatus.FieldProcessedTeams:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedTeams(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisStatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisstatus.FieldCurrentTeamName) {
		fields = append(fields, analysisstatus.FieldCurrentTeamName)
	}
	if m.FieldCleared(analysisstatus.FieldCurrentStage) {
		fields = append(fields, analysisstatus.FieldCurrentStage)
	}
	if m.FieldCleared(analysisstatus.FieldStartedAt) {
		fields = append(fields, analysisstatus.FieldStartedAt)
	}
	if m.FieldCleared(analysisstatus.FieldErrorMessage) {
		fields = append(fields, analysisstatus.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisStatusMutation) ClearField(name string) error {
	switch name {
	case analysisstatus.FieldCurrentTeamName:
		m.ClearCurrentTeamName()
		return nil
	case analysisstatus.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case analysisstatus.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case analysisstatus.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AnalysisStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisStatusMutation) ResetField(name string) error {
	switch name {
	case analysisstatus.FieldExerciseID:
		m.ResetExerciseID()
		return nil
	case analysisstatus.FieldState:
		m.ResetState()
		return nil
	case analysisstatus.FieldTotalTeams:
		m.ResetTotalTeams()
		return nil
	case analysisstatus.FieldProcessedTeams:
		m.ResetProcessedTeams()
		return nil
	case analysisstatus.FieldCurrentTeamName:
		m.ResetCurrentTeamName()
		return nil
	case analysisstatus.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case analysisstatus.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case analysisstatus.FieldLastUpdatedAt:
		m.ResetLastUpdatedAt()
		return nil
	case analysisstatus.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AnalysisStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisStatusMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisStatusMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisStatusMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalysisStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisStatusMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalysisStatus edge %s", name)
}

// AnalyzedChunkMutation represents an operation that mutates the AnalyzedChunk nodes in the graph.
type AnalyzedChunkMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sha                     *string
	chunk_index             *int
	addchunk_index          *int
	total_chunks            *int
	addtotal_chunks         *int
	author_id               *int64
	addauthor_id            *int64
	author_email            *string
	message                 *string
	committed_at            *time.Time
	lines_added             *int
	addlines_added          *int
	lines_deleted           *int
	addlines_deleted        *int
	is_bundled              *bool
	bundled_shas            *[]string
	appendbundled_shas      []string
	effort_score            *int
	addeffort_score         *int
	complexity              *int
	addcomplexity           *int
	novelty                 *int
	addnovelty              *int
	label                   *string
	confidence              *float64
	addconfidence           *float64
	reasoning               *string
	is_error                *bool
	is_external_contributor *bool
	model                   *string
	prompt_tokens           *int
	addprompt_tokens        *int
	completion_tokens       *int
	addcompletion_tokens    *int
	total_tokens            *int
	addtotal_tokens         *int
	usage_available         *bool
	clearedFields           map[string]struct{}
	participation           *int
	clearedparticipation    bool
	done                    bool
	oldValue                func(context.Context) (*AnalyzedChunk, error)
	predicates              []predicate.AnalyzedChunk
}

var _ ent.Mutation = (*AnalyzedChunkMutation)(nil)

// analyzedchunkOption allows management of the mutation configuration using functional options.
type analyzedchunkOption func(*AnalyzedChunkMutation)

// newAnalyzedChunkMutation creates new mutation for the AnalyzedChunk entity.
func newAnalyzedChunkMutation(c config, op Op, opts ...analyzedchunkOption) *AnalyzedChunkMutation {
	m := &AnalyzedChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalyzedChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalyzedChunkID sets the ID field of the mutation.
func withAnalyzedChunkID(id int) analyzedchunkOption {
	return func(m *AnalyzedChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalyzedChunk
		)
		m.oldValue = func(ctx context.Context) (*AnalyzedChunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalyzedChunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalyzedChunk sets the old AnalyzedChunk of the mutation.
func withAnalyzedChunk(node *AnalyzedChunk) analyzedchunkOption {
	return func(m *AnalyzedChunkMutation) {
		m.oldValue = func(context.Context) (*AnalyzedChunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalyzedChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalyzedChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalyzedChunkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalyzedChunkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalyzedChunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParticipationID sets the "participation_id" field.
func (m *AnalyzedChunkMutation) SetParticipationID(i int) {
	m.participation = &i
}

// ParticipationID returns the value of the "participation_id" field in the mutation.
func (m *AnalyzedChunkMutation) ParticipationID() (r int, exists bool) {
	v := m.participation
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipationID returns the old "participation_id" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldParticipationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipationID: %w", err)
	}
	return oldValue.ParticipationID, nil
}

// ResetParticipationID resets all changes to the "participation_id" field.
func (m *AnalyzedChunkMutation) ResetParticipationID() {
	m.participation = nil
}

// SetSha sets the "sha" field.
func (m *AnalyzedChunkMutation) SetSha(s string) {
	m.sha = &s
}

// Sha returns the value of the "sha" field in the mutation.
func (m *AnalyzedChunkMutation) Sha() (r string, exists bool) {
	v := m.sha
	if v == nil {
		return
	}
	return *v, true
}

// OldSha returns the old "sha" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldSha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSha: %w", err)
	}
	return oldValue.Sha, nil
}

// ResetSha resets all changes to the "sha" field.
func (m *AnalyzedChunkMutation) ResetSha() {
	m.sha = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *AnalyzedChunkMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *AnalyzedChunkMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *AnalyzedChunkMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *AnalyzedChunkMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *AnalyzedChunkMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetTotalChunks sets the "total_chunks" field.
func (m *AnalyzedChunkMutation) SetTotalChunks(i int) {
	m.total_chunks = &i
	m.addtotal_chunks = nil
}

// TotalChunks returns the value of the "total_chunks" field in the mutation.
func (m *AnalyzedChunkMutation) TotalChunks() (r int, exists bool) {
	v := m.total_chunks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChunks returns the old "total_chunks" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldTotalChunks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChunks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChunks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChunks: %w", err)
	}
	return oldValue.TotalChunks, nil
}

// AddTotalChunks adds i to the "total_chunks" field.
func (m *AnalyzedChunkMutation) AddTotalChunks(i int) {
	if m.addtotal_chunks != nil {
		*m.addtotal_chunks += i
	} else {
		m.addtotal_chunks = &i
	}
}

// AddedTotalChunks returns the value that was added to the "total_chunks" field in this mutation.
func (m *AnalyzedChunkMutation) AddedTotalChunks() (r int, exists bool) {
	v := m.addtotal_chunks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChunks resets all changes to the "total_chunks" field.
func (m *AnalyzedChunkMutation) ResetTotalChunks() {
	m.total_chunks = nil
	m.addtotal_chunks = nil
}

// SetAuthorID sets the "author_id" field.
func (m *AnalyzedChunkMutation) SetAuthorID(i int64) {
	m.author_id = &i
	m.addauthor_id = nil
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *AnalyzedChunkMutation) AuthorID() (r int64, exists bool) {
	v := m.author_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldAuthorID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// AddAuthorID adds i to the "author_id" field.
func (m *AnalyzedChunkMutation) AddAuthorID(i int64) {
	if m.addauthor_id != nil {
		*m.addauthor_id += i
	} else {
		m.addauthor_id = &i
	}
}

// AddedAuthorID returns the value that was added to the "author_id" field in this mutation.
func (m *AnalyzedChunkMutation) AddedAuthorID() (r int64, exists bool) {
	v := m.addauthor_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearAuthorID clears the value of the "author_id" field.
func (m *AnalyzedChunkMutation) ClearAuthorID() {
	m.author_id = nil
	m.addauthor_id = nil
	m.clearedFields[analyzedchunk.FieldAuthorID] = struct{}{}
}

// AuthorIDCleared returns if the "author_id" field was cleared in this mutation.
func (m *AnalyzedChunkMutation) AuthorIDCleared() bool {
	_, ok := m.clearedFields[analyzedchunk.FieldAuthorID]
	return ok
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *AnalyzedChunkMutation) ResetAuthorID() {
	m.author_id = nil
	m.addauthor_id = nil
	delete(m.clearedFields, analyzedchunk.FieldAuthorID)
}

// SetAuthorEmail sets the "author_email" field.
func (m *AnalyzedChunkMutation) SetAuthorEmail(s string) {
	m.author_email = &s
}

// AuthorEmail returns the value of the "author_email" field in the mutation.
func (m *AnalyzedChunkMutation) AuthorEmail() (r string, exists bool) {
	v := m.author_email
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorEmail returns the old "author_email" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldAuthorEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorEmail: %w", err)
	}
	return oldValue.AuthorEmail, nil
}

// ResetAuthorEmail resets all changes to the "author_email" field.
func (m *AnalyzedChunkMutation) ResetAuthorEmail() {
	m.author_email = nil
}

// SetMessage sets the "message" field.
func (m *AnalyzedChunkMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AnalyzedChunkMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *AnalyzedChunkMutation) ResetMessage() {
	m.message = nil
}

// SetCommittedAt sets the "committed_at" field.
func (m *AnalyzedChunkMutation) SetCommittedAt(t time.Time) {
	m.committed_at = &t
}

// CommittedAt returns the value of the "committed_at" field in the mutation.
func (m *AnalyzedChunkMutation) CommittedAt() (r time.Time, exists bool) {
	v := m.committed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedAt returns the old "committed_at" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldCommittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedAt: %w", err)
	}
	return oldValue.CommittedAt, nil
}

// ResetCommittedAt resets all changes to the "committed_at" field.
func (m *AnalyzedChunkMutation) ResetCommittedAt() {
	m.committed_at = nil
}

// SetLinesAdded sets the "lines_added" field.
func (m *AnalyzedChunkMutation) SetLinesAdded(i int) {
	m.lines_added = &i
	m.addlines_added = nil
}

// LinesAdded returns the value of the "lines_added" field in the mutation.
func (m *AnalyzedChunkMutation) LinesAdded() (r int, exists bool) {
	v := m.lines_added
	if v == nil {
		return
	}
	return *v, true
}

// OldLinesAdded returns the old "lines_added" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldLinesAdded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinesAdded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinesAdded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinesAdded: %w", err)
	}
	return oldValue.LinesAdded, nil
}

// AddLinesAdded adds i to the "lines_added" field.
func (m *AnalyzedChunkMutation) AddLinesAdded(i int) {
	if m.addlines_added != nil {
		*m.addlines_added += i
	} else {
		m.addlines_added = &i
	}
}

// AddedLinesAdded returns the value that was added to the "lines_added" field in this mutation.
func (m *AnalyzedChunkMutation) AddedLinesAdded() (r int, exists bool) {
	v := m.addlines_added
	if v == nil {
		return
	}
	return *v, true
}

// ResetLinesAdded resets all changes to the "lines_added" field.
func (m *AnalyzedChunkMutation) ResetLinesAdded() {
	m.lines_added = nil
	m.addlines_added = nil
}

// SetLinesDeleted sets the "lines_deleted" field.
func (m *AnalyzedChunkMutation) SetLinesDeleted(i int) {
	m.lines_deleted = &i
	m.addlines_deleted = nil
}

// LinesDeleted returns the value of the "lines_deleted" field in the mutation.
func (m *AnalyzedChunkMutation) LinesDeleted() (r int, exists bool) {
	v := m.lines_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldLinesDeleted returns the old "lines_deleted" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldLinesDeleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinesDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinesDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinesDeleted: %w", err)
	}
	return oldValue.LinesDeleted, nil
}

// AddLinesDeleted adds i to the "lines_deleted" field.
func (m *AnalyzedChunkMutation) AddLinesDeleted(i int) {
	if m.addlines_deleted != nil {
		*m.addlines_deleted += i
	} else {
		m.addlines_deleted = &i
	}
}

// AddedLinesDeleted returns the value that was added to the "lines_deleted" field in this mutation.
func (m *AnalyzedChunkMutation) AddedLinesDeleted() (r int, exists bool) {
	v := m.addlines_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetLinesDeleted resets all changes to the "lines_deleted" field.
func (m *AnalyzedChunkMutation) ResetLinesDeleted() {
	m.lines_deleted = nil
	m.addlines_deleted = nil
}

// SetIsBundled sets the "is_bundled" field.
func (m *AnalyzedChunkMutation) SetIsBundled(b bool) {
	m.is_bundled = &b
}

// IsBundled returns the value of the "is_bundled" field in the mutation.
func (m *AnalyzedChunkMutation) IsBundled() (r bool, exists bool) {
	v := m.is_bundled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBundled returns the old "is_bundled" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldIsBundled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBundled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBundled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBundled: %w", err)
	}
	return oldValue.IsBundled, nil
}

// ResetIsBundled resets all changes to the "is_bundled" field.
func (m *AnalyzedChunkMutation) ResetIsBundled() {
	m.is_bundled = nil
}

// SetBundledShas sets the "bundled_shas" field.
func (m *AnalyzedChunkMutation) SetBundledShas(s []string) {
	m.bundled_shas = &s
	m.appendbundled_shas = nil
}

// BundledShas returns the value of the "bundled_shas" field in the mutation.
func (m *AnalyzedChunkMutation) BundledShas() (r []string, exists bool) {
	v := m.bundled_shas
	if v == nil {
		return
	}
	return *v, true
}

// OldBundledShas returns the old "bundled_shas" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldBundledShas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBundledShas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBundledShas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBundledShas: %w", err)
	}
	return oldValue.BundledShas, nil
}

// AppendBundledShas adds s to the "bundled_shas" field.
func (m *AnalyzedChunkMutation) AppendBundledShas(s []string) {
	m.appendbundled_shas = append(m.appendbundled_shas, s...)
}

// AppendedBundledShas returns the list of values that were appended to the "bundled_shas" field in this mutation.
func (m *AnalyzedChunkMutation) AppendedBundledShas() ([]string, bool) {
	if len(m.appendbundled_shas) == 0 {
		return nil, false
	}
	return m.appendbundled_shas, true
}

// ClearBundledShas clears the value of the "bundled_shas" field.
func (m *AnalyzedChunkMutation) ClearBundledShas() {
	m.bundled_shas = nil
	m.appendbundled_shas = nil
	m.clearedFields[analyzedchunk.FieldBundledShas] = struct{}{}
}

// BundledShasCleared returns if the "bundled_shas" field was cleared in this mutation.
func (m *AnalyzedChunkMutation) BundledShasCleared() bool {
	_, ok := m.clearedFields[analyzedchunk.FieldBundledShas]
	return ok
}

// ResetBundledShas resets all changes to the "bundled_shas" field.
func (m *AnalyzedChunkMutation) ResetBundledShas() {
	m.bundled_shas = nil
	m.appendbundled_shas = nil
	delete(m.clearedFields, analyzedchunk.FieldBundledShas)
}

// SetEffortScore sets the "effort_score" field.
func (m *AnalyzedChunkMutation) SetEffortScore(i int) {
	m.effort_score = &i
	m.addeffort_score = nil
}

// EffortScore returns the value of the "effort_score" field in the mutation.
func (m *AnalyzedChunkMutation) EffortScore() (r int, exists bool) {
	v := m.effort_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEffortScore returns the old "effort_score" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldEffortScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffortScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffortScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffortScore: %w", err)
	}
	return oldValue.EffortScore, nil
}

// AddEffortScore adds i to the "effort_score" field.
func (m *AnalyzedChunkMutation) AddEffortScore(i int) {
	if m.addeffort_score != nil {
		*m.addeffort_score += i
	} else {
		m.addeffort_score = &i
	}
}

// AddedEffortScore returns the value that was added to the "effort_score" field in this mutation.
func (m *AnalyzedChunkMutation) AddedEffortScore() (r int, exists bool) {
	v := m.addeffort_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEffortScore resets all changes to the "effort_score" field.
func (m *AnalyzedChunkMutation) ResetEffortScore() {
	m.effort_score = nil
	m.addeffort_score = nil
}

// SetComplexity sets the "complexity" field.
func (m *AnalyzedChunkMutation) SetComplexity(i int) {
	m.complexity = &i
	m.addcomplexity = nil
}

// Complexity returns the value of the "complexity" field in the mutation.
func (m *AnalyzedChunkMutation) Complexity() (r int, exists bool) {
	v := m.complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexity returns the old "complexity" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldComplexity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexity: %w", err)
	}
	return oldValue.Complexity, nil
}

// AddComplexity adds i to the "complexity" field.
func (m *AnalyzedChunkMutation) AddComplexity(i int) {
	if m.addcomplexity != nil {
		*m.addcomplexity += i
	} else {
		m.addcomplexity = &i
	}
}

// AddedComplexity returns the value that was added to the "complexity" field in this mutation.
func (m *AnalyzedChunkMutation) AddedComplexity() (r int, exists bool) {
	v := m.addcomplexity
	if v == nil {
		return
	}
	return *v, true
}

// ResetComplexity resets all changes to the "complexity" field.
func (m *AnalyzedChunkMutation) ResetComplexity() {
	m.complexity = nil
	m.addcomplexity = nil
}

// SetNovelty sets the "novelty" field.
func (m *AnalyzedChunkMutation) SetNovelty(i int) {
	m.novelty = &i
	m.addnovelty = nil
}

// Novelty returns the value of the "novelty" field in the mutation.
func (m *AnalyzedChunkMutation) Novelty() (r int, exists bool) {
	v := m.novelty
	if v == nil {
		return
	}
	return *v, true
}

// OldNovelty returns the old "novelty" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldNovelty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNovelty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNovelty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNovelty: %w", err)
	}
	return oldValue.Novelty, nil
}

// AddNovelty adds i to the "novelty" field.
func (m *AnalyzedChunkMutation) AddNovelty(i int) {
	if m.addnovelty != nil {
		*m.addnovelty += i
	} else {
		m.addnovelty = &i
	}
}

// AddedNovelty returns the value that was added to the "novelty" field in this mutation.
func (m *AnalyzedChunkMutation) AddedNovelty() (r int, exists bool) {
	v := m.addnovelty
	if v == nil {
		return
	}
	return *v, true
}

// ResetNovelty resets all changes to the "novelty" field.
func (m *AnalyzedChunkMutation) ResetNovelty() {
	m.novelty = nil
	m.addnovelty = nil
}

// SetLabel sets the "label" field.
func (m *AnalyzedChunkMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *AnalyzedChunkMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *AnalyzedChunkMutation) ResetLabel() {
	m.label = nil
}

// SetConfidence sets the "confidence" field.
func (m *AnalyzedChunkMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnalyzedChunkMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AnalyzedChunkMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnalyzedChunkMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnalyzedChunkMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetReasoning sets the "reasoning" field.
func (m *AnalyzedChunkMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *AnalyzedChunkMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *AnalyzedChunkMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[analyzedchunk.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *AnalyzedChunkMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[analyzedchunk.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *AnalyzedChunkMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, analyzedchunk.FieldReasoning)
}

// SetIsError sets the "is_error" field.
func (m *AnalyzedChunkMutation) SetIsError(b bool) {
	m.is_error = &b
}

// IsError returns the value of the "is_error" field in the mutation.
func (m *AnalyzedChunkMutation) IsError() (r bool, exists bool) {
	v := m.is_error
	if v == nil {
		return
	}
	return *v, true
}

// OldIsError returns the old "is_error" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldIsError(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsError: %w", err)
	}
	return oldValue.IsError, nil
}

// ResetIsError resets all changes to the "is_error" field.
func (m *AnalyzedChunkMutation) ResetIsError() {
	m.is_error = nil
}

// SetIsExternalContributor sets the "is_external_contributor" field.
func (m *AnalyzedChunkMutation) SetIsExternalContributor(b bool) {
	m.is_external_contributor = &b
}

// IsExternalContributor returns the value of the "is_external_contributor" field in the mutation.
func (m *AnalyzedChunkMutation) IsExternalContributor() (r bool, exists bool) {
	v := m.is_external_contributor
	if v == nil {
		return
	}
	return *v, true
}

// OldIsExternalContributor returns the old "is_external_contributor" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldIsExternalContributor(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsExternalContributor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsExternalContributor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsExternalContributor: %w", err)
	}
	return oldValue.IsExternalContributor, nil
}

// ResetIsExternalContributor resets all changes to the "is_external_contributor" field.
func (m *AnalyzedChunkMutation) ResetIsExternalContributor() {
	m.is_external_contributor = nil
}

// SetModel sets the "model" field.
func (m *AnalyzedChunkMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AnalyzedChunkMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AnalyzedChunkMutation) ClearModel() {
	m.model = nil
	m.clearedFields[analyzedchunk.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AnalyzedChunkMutation) ModelCleared() bool {
	_, ok := m.clearedFields[analyzedchunk.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AnalyzedChunkMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, analyzedchunk.FieldModel)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *AnalyzedChunkMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *AnalyzedChunkMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *AnalyzedChunkMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *AnalyzedChunkMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *AnalyzedChunkMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *AnalyzedChunkMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *AnalyzedChunkMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *AnalyzedChunkMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *AnalyzedChunkMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *AnalyzedChunkMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *AnalyzedChunkMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *AnalyzedChunkMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *AnalyzedChunkMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *AnalyzedChunkMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *AnalyzedChunkMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetUsageAvailable sets the "usage_available" field.
func (m *AnalyzedChunkMutation) SetUsageAvailable(b bool) {
	m.usage_available = &b
}

// UsageAvailable returns the value of the "usage_available" field in the mutation.
func (m *AnalyzedChunkMutation) UsageAvailable() (r bool, exists bool) {
	v := m.usage_available
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageAvailable returns the old "usage_available" field's value of the AnalyzedChunk entity.
// If the AnalyzedChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyzedChunkMutation) OldUsageAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageAvailable: %w", err)
	}
	return oldValue.UsageAvailable, nil
}

// ResetUsageAvailable resets all changes to the "usage_available" field.
func (m *AnalyzedChunkMutation) ResetUsageAvailable() {
	m.usage_available = nil
}

// ClearParticipation clears the "participation" edge to the TeamParticipation entity.
func (m *AnalyzedChunkMutation) ClearParticipation() {
	m.clearedparticipation = true
	m.clearedFields[analyzedchunk.FieldParticipationID] = struct{}{}
}

// ParticipationCleared reports if the "participation" edge to the TeamParticipation entity was cleared.
func (m *AnalyzedChunkMutation) ParticipationCleared() bool {
	return m.clearedparticipation
}

// ParticipationIDs returns the "participation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipationID instead. It exists only for internal usage by the builders.
func (m *AnalyzedChunkMutation) ParticipationIDs() (ids []int) {
	if id := m.participation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipation resets all changes to the "participation" edge.
func (m *AnalyzedChunkMutation) ResetParticipation() {
	m.participation = nil
	m.clearedparticipation = false
}

// Where appends a list predicates to the AnalyzedChunkMutation builder.
func (m *AnalyzedChunkMutation) Where(ps ...predicate.AnalyzedChunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalyzedChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalyzedChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalyzedChunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalyzedChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalyzedChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalyzedChunk).
func (m *AnalyzedChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalyzedChunkMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.participation != nil {
		fields = append(fields, analyzedchunk.FieldParticipationID)
	}
	if m.sha != nil {
		fields = append(fields, analyzedchunk.FieldSha)
	}
	if m.chunk_index != nil {
		fields = append(fields, analyzedchunk.FieldChunkIndex)
	}
	if m.total_chunks != nil {
		fields = append(fields, analyzedchunk.FieldTotalChunks)
	}
	if m.author_id != nil {
		fields = append(fields, analyzedchunk.FieldAuthorID)
	}
	if m.author_email != nil {
		fields = append(fields, analyzedchunk.FieldAuthorEmail)
	}
	if m.message != nil {
		fields = append(fields, analyzedchunk.FieldMessage)
	}
	if m.committed_at != nil {
		fields = append(fields, analyzedchunk.FieldCommittedAt)
	}
	if m.lines_added != nil {
		fields = append(fields, analyzedchunk.FieldLinesAdded)
	}
	if m.lines_deleted != nil {
		fields = append(fields, analyzedchunk.FieldLinesDeleted)
	}
	if m.is_bundled != nil {
		fields = append(fields, analyzedchunk.FieldIsBundled)
	}
	if m.bundled_shas != nil {
		fields = append(fields, analyzedchunk.FieldBundledShas)
	}
	if m.effort_score != nil {
		fields = append(fields, analyzedchunk.FieldEffortScore)
	}
	if m.complexity != nil {
		fields = append(fields, analyzedchunk.FieldComplexity)
	}
	if m.novelty != nil {
		fields = append(fields, analyzedchunk.FieldNovelty)
	}
	if m.label != nil {
		fields = append(fields, analyzedchunk.FieldLabel)
	}
	if m.confidence != nil {
		fields = append(fields, analyzedchunk.FieldConfidence)
	}
	if m.reasoning != nil {
		fields = append(fields, analyzedchunk.FieldReasoning)
	}
	if m.is_error != nil {
		fields = append(fields, analyzedchunk.FieldIsError)
	}
	if m.is_external_contributor != nil {
		fields = append(fields, analyzedchunk.FieldIsExternalContributor)
	}
	if m.model != nil {
		fields = append(fields, analyzedchunk.FieldModel)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, analyzedchunk.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, analyzedchunk.FieldCompletionTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, analyzedchunk.FieldTotalTokens)
	}
	if m.usage_available != nil {
		fields = append(fields, analyzedchunk.FieldUsageAvailable)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalyzedChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analyzedchunk.FieldParticipationID:
		return m.ParticipationID()
	case analyzedchunk.FieldSha:
		return m.Sha()
	case analyzedchunk.FieldChunkIndex:
		return m.ChunkIndex()
	case analyzedchunk.FieldTotalChunks:
		return m.TotalChunks()
	case analyzedchunk.FieldAuthorID:
		return m.AuthorID()
	case analyzedchunk.FieldAuthorEmail:
		return m.AuthorEmail()
	case analyzedchunk.FieldMessage:
		return m.Message()
	case analyzedchunk.FieldCommittedAt:
		return m.CommittedAt()
	case analyzedchunk.FieldLinesAdded:
		return m.LinesAdded()
	case analyzedchunk.FieldLinesDeleted:
		return m.LinesDeleted()
	case analyzedchunk.FieldIsBundled:
		return m.IsBundled()
	case analyzedchunk.FieldBundledShas:
		return m.BundledShas()
	case analyzedchunk.FieldEffortScore:
		return m.EffortScore()
	case analyzedchunk.FieldComplexity:
		return m.Complexity()
	case analyzedchunk.FieldNovelty:
		return m.Novelty()
	case analyzedchunk.FieldLabel:
		return m.Label()
	case analyzedchunk.FieldConfidence:
		return m.Confidence()
	case analyzedchunk.FieldReasoning:
		return m.Reasoning()
	case analyzedchunk.FieldIsError:
		return m.IsError()
	case analyzedchunk.FieldIsExternalContributor:
		return m.IsExternalContributor()
	case analyzedchunk.FieldModel:
		return m.Model()
	case analyzedchunk.FieldPromptTokens:
		return m.PromptTokens()
	case analyzedchunk.FieldCompletionTokens:
		return m.CompletionTokens()
	case analyzedchunk.FieldTotalTokens:
		return m.TotalTokens()
	case analyzedchunk.FieldUsageAvailable:
		return m.UsageAvailable()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalyzedChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analyzedchunk.FieldParticipationID:
		return m.OldParticipationID(ctx)
	case analyzedchunk.FieldSha:
		return m.OldSha(ctx)
	case analyzedchunk.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case analyzedchunk.FieldTotalChunks:
		return m.OldTotalChunks(ctx)
	case analyzedchunk.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case analyzedchunk.FieldAuthorEmail:
		return m.OldAuthorEmail(ctx)
	case analyzedchunk.FieldMessage:
		return m.OldMessage(ctx)
	case analyzedchunk.FieldCommittedAt:
		return m.OldCommittedAt(ctx)
	case analyzedchunk.FieldLinesAdded:
		return m.OldLinesAdded(ctx)
	case analyzedchunk.FieldLinesDeleted:
		return m.OldLinesDeleted(ctx)
	case analyzedchunk.FieldIsBundled:
		return m.OldIsBundled(ctx)
	case analyzedchunk.FieldBundledShas:
		return m.OldBundledShas(ctx)
	case analyzedchunk.FieldEffortScore:
		return m.OldEffortScore(ctx)
	case analyzedchunk.FieldComplexity:
		return m.OldComplexity(ctx)
	case analyzedchunk.FieldNovelty:
		return m.OldNovelty(ctx)
	case analyzedchunk.FieldLabel:
		return m.OldLabel(ctx)
	case analyzedchunk.FieldConfidence:
		return m.OldConfidence(ctx)
	case analyzedchunk.FieldReasoning:
		return m.OldReasoning(ctx)
	case analyzedchunk.FieldIsError:
		return m.OldIsError(ctx)
	case analyzedchunk.FieldIsExternalContributor:
		return m.OldIsExternalContributor(ctx)
	case analyzedchunk.FieldModel:
		return m.OldModel(ctx)
	case analyzedchunk.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case analyzedchunk.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case analyzedchunk.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case analyzedchunk.FieldUsageAvailable:
		return m.OldUsageAvailable(ctx)
	}
	return nil, fmt.Errorf("unknown AnalyzedChunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyzedChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analyzedchunk.FieldParticipationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipationID(v)
		return nil
	case analyzedchunk.FieldSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSha(v)
		return nil
	case analyzedchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case analyzedchunk.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChunks(v)
		return nil
	case analyzedchunk.FieldAuthorID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case analyzedchunk.FieldAuthorEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorEmail(v)
		return nil
	case analyzedchunk.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case analyzedchunk.FieldCommittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedAt(v)
		return nil
	case analyzedchunk.FieldLinesAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinesAdded(v)
		return nil
	case analyzedchunk.FieldLinesDeleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinesDeleted(v)
		return nil
	case analyzedchunk.FieldIsBundled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBundled(v)
		return nil
	case analyzedchunk.FieldBundledShas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBundledShas(v)
		return nil
	case analyzedchunk.FieldEffortScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffortScore(v)
		return nil
	case analyzedchunk.FieldComplexity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexity(v)
		return nil
	case analyzedchunk.FieldNovelty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNovelty(v)
		return nil
	case analyzedchunk.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case analyzedchunk.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case analyzedchunk.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case analyzedchunk.FieldIsError:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsError(v)
		return nil
	case analyzedchunk.FieldIsExternalContributor:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsExternalContributor(v)
		return nil
	case analyzedchunk.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case analyzedchunk.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case analyzedchunk.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case analyzedchunk.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case analyzedchunk.FieldUsageAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageAvailable(v)
		return nil
	}
	return fmt.Errorf("unknown AnalyzedChunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalyzedChunkMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, analyzedchunk.FieldChunkIndex)
	}
	if m.addtotal_chunks != nil {
		fields = append(fields, analyzedchunk.FieldTotalChunks)
	}
	if m.addauthor_id != nil {
		fields = append(fields, analyzedchunk.FieldAuthorID)
	}
	if m.addlines_added != nil {
		fields = append(fields, analyzedchunk.FieldLinesAdded)
	}
	if m.addlines_deleted != nil {
		fields = append(fields, analyzedchunk.FieldLinesDeleted)
	}
	if m.addeffort_score != nil {
		fields = append(fields, analyzedchunk.FieldEffortScore)
	}
	if m.addcomplexity != nil {
		fields = append(fields, analyzedchunk.FieldComplexity)
	}
	if m.addnovelty != nil {
		fields = append(fields, analyzedchunk.FieldNovelty)
	}
	if m.addconfidence != nil {
		fields = append(fields, analyzedchunk.FieldConfidence)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, analyzedchunk.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, analyzedchunk.FieldCompletionTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, analyzedchunk.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalyzedChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analyzedchunk.FieldChunkIndex:
		return m.AddedChunkIndex()
	case analyzedchunk.FieldTotalChunks:
		return m.AddedTotalChunks()
	case analyzedchunk.FieldAuthorID:
		return m.AddedAuthorID()
	case analyzedchunk.FieldLinesAdded:
		return m.AddedLinesAdded()
	case analyzedchunk.FieldLinesDeleted:
		return m.AddedLinesDeleted()
	case analyzedchunk.FieldEffortScore:
		return m.AddedEffortScore()
	case analyzedchunk.FieldComplexity:
		return m.AddedComplexity()
	case analyzedchunk.FieldNovelty:
		return m.AddedNovelty()
	case analyzedchunk.FieldConfidence:
		return m.AddedConfidence()
	case analyzedchunk.FieldPromptTokens:
		return m.AddedPromptTokens()
	case analyzedchunk.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case analyzedchunk.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyzedChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analyzedchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case analyzedchunk.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChunks(v)
		return nil
	case analyzedchunk.FieldAuthorID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAuthorID(v)
		return nil
	case analyzedchunk.FieldLinesAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLinesAdded(v)
		return nil
	case analyzedchunk.FieldLinesDeleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLinesDeleted(v)
		return nil
	case analyzedchunk.FieldEffortScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEffortScore(v)
		return nil
	case analyzedchunk.FieldComplexity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComplexity(v)
		return nil
	case analyzedchunk.FieldNovelty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNovelty(v)
		return nil
	case analyzedchunk.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case analyzedchunk.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case analyzedchunk.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case analyzedchunk.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown AnalyzedChunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalyzedChunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analyzedchunk.FieldAuthorID) {
		fields = append(fields, analyzedchunk.FieldAuthorID)
	}
	if m.FieldCleared(analyzedchunk.FieldBundledShas) {
		fields = append(fields, analyzedchunk.FieldBundledShas)
	}
	if m.FieldCleared(analyzedchunk.FieldReasoning) {
		fields = append(fields, analyzedchunk.FieldReasoning)
	}
	if m.FieldCleared(analyzedchunk.FieldModel) {
		fields = append(fields, analyzedchunk.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalyzedChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalyzedChunkMutation) ClearField(name string) error {
	switch name {
	case analyzedchunk.FieldAuthorID:
		m.ClearAuthorID()
		return nil
	case analyzedchunk.FieldBundledShas:
		m.ClearBundledShas()
		return nil
	case analyzedchunk.FieldReasoning:
		m.ClearReasoning()
		return nil
	case analyzedchunk.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown AnalyzedChunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalyzedChunkMutation) ResetField(name string) error {
	switch name {
	case analyzedchunk.FieldParticipationID:
		m.ResetParticipationID()
		return nil
	case analyzedchunk.FieldSha:
		m.ResetSha()
		return nil
	case analyzedchunk.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case analyzedchunk.FieldTotalChunks:
		m.ResetTotalChunks()
		return nil
	case analyzedchunk.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case analyzedchunk.FieldAuthorEmail:
		m.ResetAuthorEmail()
		return nil
	case analyzedchunk.FieldMessage:
		m.ResetMessage()
		return nil
	case analyzedchunk.FieldCommittedAt:
		m.ResetCommittedAt()
		return nil
	case analyzedchunk.FieldLinesAdded:
		m.ResetLinesAdded()
		return nil
	case analyzedchunk.FieldLinesDeleted:
		m.ResetLinesDeleted()
		return nil
	case analyzedchunk.FieldIsBundled:
		m.ResetIsBundled()
		return nil
	case analyzedchunk.FieldBundledShas:
		m.ResetBundledShas()
		return nil
	case analyzedchunk.FieldEffortScore:
		m.ResetEffortScore()
		return nil
	case analyzedchunk.FieldComplexity:
		m.ResetComplexity()
		return nil
	case analyzedchunk.FieldNovelty:
		m.ResetNovelty()
		return nil
	case analyzedchunk.FieldLabel:
		m.ResetLabel()
		return nil
	case analyzedchunk.FieldConfidence:
		m.ResetConfidence()
		return nil
	case analyzedchunk.FieldReasoning:
		m.ResetReasoning()
		return nil
	case analyzedchunk.FieldIsError:
		m.ResetIsError()
		return nil
	case analyzedchunk.FieldIsExternalContributor:
		m.ResetIsExternalContributor()
		return nil
	case analyzedchunk.FieldModel:
		m.ResetModel()
		return nil
	case analyzedchunk.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case analyzedchunk.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case analyzedchunk.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case analyzedchunk.FieldUsageAvailable:
		m.ResetUsageAvailable()
		return nil
	}
	return fmt.Errorf("unknown AnalyzedChunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalyzedChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.participation != nil {
		edges = append(edges, analyzedchunk.EdgeParticipation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalyzedChunkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analyzedchunk.EdgeParticipation:
		if id := m.participation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalyzedChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalyzedChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalyzedChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedparticipation {
		edges = append(edges, analyzedchunk.EdgeParticipation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalyzedChunkMutation) EdgeCleared(name string) bool {
	switch name {
	case analyzedchunk.EdgeParticipation:
		return m.clearedparticipation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalyzedChunkMutation) ClearEdge(name string) error {
	switch name {
	case analyzedchunk.EdgeParticipation:
		m.ClearParticipation()
		return nil
	}
	return fmt.Errorf("unknown AnalyzedChunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalyzedChunkMutation) ResetEdge(name string) error {
	switch name {
	case analyzedchunk.EdgeParticipation:
		m.ResetParticipation()
		return nil
	}
	return fmt.Errorf("unknown AnalyzedChunk edge %s", name)
}

// EmailMappingMutation represents an operation that mutates the EmailMapping nodes in the graph.
type EmailMappingMutation struct {
	config
	op             Op
	typ            string
	id             *int
	exercise_id    *int64
	addexercise_id *int64
	git_email      *string
	student_id     *int64
	addstudent_id  *int64
	student_name   *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*EmailMapping, error)
	predicates     []predicate.EmailMapping
}

var _ ent.Mutation = (*EmailMappingMutation)(nil)

// emailmappingOption allows management of the mutation configuration using functional options.
type emailmappingOption func(*EmailMappingMutation)

// newEmailMappingMutation creates new mutation for the EmailMapping entity.
func newEmailMappingMutation(c config, op Op, opts ...emailmappingOption) *EmailMappingMutation {
	m := &EmailMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailMappingID sets the ID field of the mutation.
func withEmailMappingID(id int) emailmappingOption {
	return func(m *EmailMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailMapping
		)
		m.oldValue = func(ctx context.Context) (*EmailMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailMapping sets the old EmailMapping of the mutation.
func withEmailMapping(node *EmailMapping) emailmappingOption {
	return func(m *EmailMappingMutation) {
		m.oldValue = func(context.Context) (*EmailMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailMappingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailMappingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExerciseID sets the "exercise_id" field.
func (m *EmailMappingMutation) SetExerciseID(i int64) {
	m.exercise_id = &i
	m.addexercise_id = nil
}

// ExerciseID returns the value of the "exercise_id" field in the mutation.
func (m *EmailMappingMutation) ExerciseID() (r int64, exists bool) {
	v := m.exercise_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseID returns the old "exercise_id" field's value of the EmailMapping entity.
// If the EmailMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMappingMutation) OldExerciseID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseID: %w", err)
	}
	return oldValue.ExerciseID, nil
}

// AddExerciseID adds i to the "exercise_id" field.
func (m *EmailMappingMutation) AddExerciseID(i int64) {
	if m.addexercise_id != nil {
		*m.addexercise_id += i
	} else {
		m.addexercise_id = &i
	}
}

// AddedExerciseID returns the value that was added to the "exercise_id" field in this mutation.
func (m *EmailMappingMutation) AddedExerciseID() (r int64, exists bool) {
	v := m.addexercise_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetExerciseID resets all changes to the "exercise_id" field.
func (m *EmailMappingMutation) ResetExerciseID() {
	m.exercise_id = nil
	m.addexercise_id = nil
}

// SetGitEmail sets the "git_email" field.
func (m *EmailMappingMutation) SetGitEmail(s string) {
	m.git_email = &s
}

// GitEmail returns the value of the "git_email" field in the mutation.
func (m *EmailMappingMutation) GitEmail() (r string, exists bool) {
	v := m.git_email
	if v == nil {
		return
	}
	return *v, true
}

// OldGitEmail returns the old "git_email" field's value of the EmailMapping entity.
// If the EmailMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMappingMutation) OldGitEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGitEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGitEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGitEmail: %w", err)
	}
	return oldValue.GitEmail, nil
}

// ResetGitEmail resets all changes to the "git_email" field.
func (m *EmailMappingMutation) ResetGitEmail() {
	m.git_email = nil
}

// SetStudentID sets the "student_id" field.
func (m *EmailMappingMutation) SetStudentID(i int64) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *EmailMappingMutation) StudentID() (r int64, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the EmailMapping entity.
// If the EmailMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMappingMutation) OldStudentID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *EmailMappingMutation) AddStudentID(i int64) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *EmailMappingMutation) AddedStudentID() (r int64, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *EmailMappingMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetStudentName sets the "student_name" field.
func (m *EmailMappingMutation) SetStudentName(s string) {
	m.student_name = &s
}

// StudentName returns the value of the "student_name" field in the mutation.
func (m *EmailMappingMutation) StudentName() (r string, exists bool) {
	v := m.student_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentName returns the old "student_name" field's value of the EmailMapping entity.
// If the EmailMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMappingMutation) OldStudentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentName: %w", err)
	}
	return oldValue.StudentName, nil
}

// ResetStudentName resets all changes to the "student_name" field.
func (m *EmailMappingMutation) ResetStudentName() {
	m.student_name = nil
}

// Where appends a list predicates to the EmailMappingMutation builder.
func (m *EmailMappingMutation) Where(ps ...predicate.EmailMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailMapping).
func (m *EmailMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailMappingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.exercise_id != nil {
		fields = append(fields, emailmapping.FieldExerciseID)
	}
	if m.git_email != nil {
		fields = append(fields, emailmapping.FieldGitEmail)
	}
	if m.student_id != nil {
		fields = append(fields, emailmapping.FieldStudentID)
	}
	if m.student_name != nil {
		fields = append(fields, emailmapping.FieldStudentName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailmapping.FieldExerciseID:
		return m.ExerciseID()
	case emailmapping.FieldGitEmail:
		return m.GitEmail()
	case emailmapping.FieldStudentID:
		return m.StudentID()
	case emailmapping.FieldStudentName:
		return m.StudentName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailmapping.FieldExerciseID:
		return m.OldExerciseID(ctx)
	case emailmapping.FieldGitEmail:
		return m.OldGitEmail(ctx)
	case emailmapping.FieldStudentID:
		return m.OldStudentID(ctx)
	case emailmapping.FieldStudentName:
		return m.OldStudentName(ctx)
	}
	return nil, fmt.Errorf("unknown EmailMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailmapping.FieldExerciseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseID(v)
		return nil
	case emailmapping.FieldGitEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGitEmail(v)
		return nil
	case emailmapping.FieldStudentID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case emailmapping.FieldStudentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentName(v)
		return nil
	}
	return fmt.Errorf("unknown EmailMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailMappingMutation) AddedFields() []string {
	var fields []string
	if m.addexercise_id != nil {
		fields = append(fields, emailmapping.FieldExerciseID)
	}
	if m.addstudent_id != nil {
		fields = append(fields, emailmapping.FieldStudentID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailMappingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case emailmapping.FieldExerciseID:
		return m.AddedExerciseID()
	case emailmapping.FieldStudentID:
		return m.AddedStudentID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case emailmapping.FieldExerciseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExerciseID(v)
		return nil
	case emailmapping.FieldStudentID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	}
	return fmt.Errorf("unknown EmailMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailMappingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailMappingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EmailMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailMappingMutation) ResetField(name string) error {
	switch name {
	case emailmapping.FieldExerciseID:
		m.ResetExerciseID()
		return nil
	case emailmapping.FieldGitEmail:
		m.ResetGitEmail()
		return nil
	case emailmapping.FieldStudentID:
		m.ResetStudentID()
		return nil
	case emailmapping.FieldStudentName:
		m.ResetStudentName()
		return nil
	}
	return fmt.Errorf("unknown EmailMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailMappingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailMappingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailMappingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmailMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailMappingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmailMapping edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	exercise_id    *int64
	addexercise_id *int64
	channel        *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExerciseID sets the "exercise_id" field.
func (m *EventMutation) SetExerciseID(i int64) {
	m.exercise_id = &i
	m.addexercise_id = nil
}

// ExerciseID returns the value of the "exercise_id" field in the mutation.
func (m *EventMutation) ExerciseID() (r int64, exists bool) {
	v := m.exercise_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseID returns the old "exercise_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldExerciseID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseID: %w", err)
	}
	return oldValue.ExerciseID, nil
}

// AddExerciseID adds i to the "exercise_id" field.
func (m *EventMutation) AddExerciseID(i int64) {
	if m.addexercise_id != nil {
		*m.addexercise_id += i
	} else {
		m.addexercise_id = &i
	}
}

// AddedExerciseID returns the value that was added to the "exercise_id" field in this mutation.
func (m *EventMutation) AddedExerciseID() (r int64, exists bool) {
	v := m.addexercise_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetExerciseID resets all changes to the "exercise_id" field.
func (m *EventMutation) ResetExerciseID() {
	m.exercise_id = nil
	m.addexercise_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.exercise_id != nil {
		fields = append(fields, event.FieldExerciseID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldExerciseID:
		return m.ExerciseID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldExerciseID:
		return m.OldExerciseID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldExerciseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addexercise_id != nil {
		fields = append(fields, event.FieldExerciseID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldExerciseID:
		return m.AddedExerciseID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldExerciseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExerciseID(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldExerciseID:
		m.ResetExerciseID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// TeamParticipationMutation represents an operation that mutates the TeamParticipation nodes in the graph.
type TeamParticipationMutation struct {
	config
	op               Op
	typ              string
	id               *int
	exercise_id      *int64
	addexercise_id   *int64
	team_id          *int64
	addteam_id       *int64
	team_name        *string
	repository_uri   *string
	members          *[]models.Member
	appendmembers    []models.Member
	cqi              *float64
	addcqi           *float64
	is_suspicious    *bool
	balance_score    *float64
	addbalance_score *float64
	components       **models.ComponentScores
	flags            *[]string
	appendflags      []string
	penalties        *[]models.Penalty
	appendpenalties  []models.Penalty
	token_totals     **models.TokenTotals
	analyzed_at      *time.Time
	clearedFields    map[string]struct{}
	chunks           map[int]struct{}
	removedchunks    map[int]struct{}
	clearedchunks    bool
	done             bool
	oldValue         func(context.Context) (*TeamParticipation, error)
	predicates       []predicate.TeamParticipation
}

var _ ent.Mutation = (*TeamParticipationMutation)(nil)

// teamparticipationOption allows management of the mutation configuration using functional options.
type teamparticipationOption func(*TeamParticipationMutation)

// newTeamParticipationMutation creates new mutation for the TeamParticipation entity.
func newTeamParticipationMutation(c config, op Op, opts ...teamparticipationOption) *TeamParticipationMutation {
	m := &TeamParticipationMutation{
		config:        c,
		op:            op,
		typ:           TypeTeamParticipation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamParticipationID sets the ID field of the mutation.
func withTeamParticipationID(id int) teamparticipationOption {
	return func(m *TeamParticipationMutation) {
		var (
			err   error
			once  sync.Once
			value *TeamParticipation
		)
		m.oldValue = func(ctx context.Context) (*TeamParticipation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TeamParticipation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeamParticipation sets the old TeamParticipation of the mutation.
func withTeamParticipation(node *TeamParticipation) teamparticipationOption {
	return func(m *TeamParticipationMutation) {
		m.oldValue = func(context.Context) (*TeamParticipation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamParticipationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamParticipationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamParticipationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamParticipationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TeamParticipation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExerciseID sets the "exercise_id" field.
func (m *TeamParticipationMutation) SetExerciseID(i int64) {
	m.exercise_id = &i
	m.addexercise_id = nil
}

// ExerciseID returns the value of the "exercise_id" field in the mutation.
func (m *TeamParticipationMutation) ExerciseID() (r int64, exists bool) {
	v := m.exercise_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseID returns the old "exercise_id" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldExerciseID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseID: %w", err)
	}
	return oldValue.ExerciseID, nil
}

// AddExerciseID adds i to the "exercise_id" field.
func (m *TeamParticipationMutation) AddExerciseID(i int64) {
	if m.addexercise_id != nil {
		*m.addexercise_id += i
	} else {
		m.addexercise_id = &i
	}
}

// AddedExerciseID returns the value that was added to the "exercise_id" field in this mutation.
func (m *TeamParticipationMutation) AddedExerciseID() (r int64, exists bool) {
	v := m.addexercise_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetExerciseID resets all changes to the "exercise_id" field.
func (m *TeamParticipationMutation) ResetExerciseID() {
	m.exercise_id = nil
	m.addexercise_id = nil
}

// SetTeamID sets the "team_id" field.
func (m *TeamParticipationMutation) SetTeamID(i int64) {
	m.team_id = &i
	m.addteam_id = nil
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *TeamParticipationMutation) TeamID() (r int64, exists bool) {
	v := m.team_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldTeamID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// AddTeamID adds i to the "team_id" field.
func (m *TeamParticipationMutation) AddTeamID(i int64) {
	if m.addteam_id != nil {
		*m.addteam_id += i
	} else {
		m.addteam_id = &i
	}
}

// AddedTeamID returns the value that was added to the "team_id" field in this mutation.
func (m *TeamParticipationMutation) AddedTeamID() (r int64, exists bool) {
	v := m.addteam_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *TeamParticipationMutation) ResetTeamID() {
	m.team_id = nil
	m.addteam_id = nil
}

// SetTeamName sets the "team_name" field.
func (m *TeamParticipationMutation) SetTeamName(s string) {
	m.team_name = &s
}

// TeamName returns the value of the "team_name" field in the mutation.
func (m *TeamParticipationMutation) TeamName() (r string, exists bool) {
	v := m.team_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamName returns the old "team_name" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldTeamName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamName: %w", err)
	}
	return oldValue.TeamName, nil
}

// ResetTeamName resets all changes to the "team_name" field.
func (m *TeamParticipationMutation) ResetTeamName() {
	m.team_name = nil
}

// SetRepositoryURI sets the "repository_uri" field.
func (m *TeamParticipationMutation) SetRepositoryURI(s string) {
	m.repository_uri = &s
}

// RepositoryURI returns the value of the "repository_uri" field in the mutation.
func (m *TeamParticipationMutation) RepositoryURI() (r string, exists bool) {
	v := m.repository_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryURI returns the old "repository_uri" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldRepositoryURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryURI: %w", err)
	}
	return oldValue.RepositoryURI, nil
}

// ResetRepositoryURI resets all changes to the "repository_uri" field.
func (m *TeamParticipationMutation) ResetRepositoryURI() {
	m.repository_uri = nil
}

// SetMembers sets the "members" field.
func (m *TeamParticipationMutation) SetMembers(value []models.Member) {
	m.members = &value
	m.appendmembers = nil
}

// Members returns the value of the "members" field in the mutation.
func (m *TeamParticipationMutation) Members() (r []models.Member, exists bool) {
	v := m.members
	if v == nil {
		return
	}
	return *v, true
}

// OldMembers returns the old "members" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldMembers(ctx context.Context) (v []models.Member, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMembers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMembers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMembers: %w", err)
	}
	return oldValue.Members, nil
}

// AppendMembers adds value to the "members" field.
func (m *TeamParticipationMutation) AppendMembers(value []models.Member) {
	m.appendmembers = append(m.appendmembers, value...)
}

// AppendedMembers returns the list of values that were appended to the "members" field in this mutation.
func (m *TeamParticipationMutation) AppendedMembers() ([]models.Member, bool) {
	if len(m.appendmembers) == 0 {
		return nil, false
	}
	return m.appendmembers, true
}

// ClearMembers clears the value of the "members" field.
func (m *TeamParticipationMutation) ClearMembers() {
	m.members = nil
	m.appendmembers = nil
	m.clearedFields[teamparticipation.FieldMembers] = struct{}{}
}

// MembersCleared returns if the "members" field was cleared in this mutation.
func (m *TeamParticipationMutation) MembersCleared() bool {
	_, ok := m.clearedFields[teamparticipation.FieldMembers]
	return ok
}

// ResetMembers resets all changes to the "members" field.
func (m *TeamParticipationMutation) ResetMembers() {
	m.members = nil
	m.appendmembers = nil
	delete(m.clearedFields, teamparticipation.FieldMembers)
}

// SetCqi sets the "cqi" field.
func (m *TeamParticipationMutation) SetCqi(f float64) {
	m.cqi = &f
	m.addcqi = nil
}

// Cqi returns the value of the "cqi" field in the mutation.
func (m *TeamParticipationMutation) Cqi() (r float64, exists bool) {
	v := m.cqi
	if v == nil {
		return
	}
	return *v, true
}

// OldCqi returns the old "cqi" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldCqi(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCqi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCqi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCqi: %w", err)
	}
	return oldValue.Cqi, nil
}

// AddCqi adds f to the "cqi" field.
func (m *TeamParticipationMutation) AddCqi(f float64) {
	if m.addcqi != nil {
		*m.addcqi += f
	} else {
		m.addcqi = &f
	}
}

// AddedCqi returns the value that was added to the "cqi" field in this mutation.
func (m *TeamParticipationMutation) AddedCqi() (r float64, exists bool) {
	v := m.addcqi
	if v == nil {
		return
	}
	return *v, true
}

// ClearCqi clears the value of the "cqi" field.
func (m *TeamParticipationMutation) ClearCqi() {
	m.cqi = nil
	m.addcqi = nil
	m.clearedFields[teamparticipation.FieldCqi] = struct{}{}
}

// CqiCleared returns if the "cqi" field was cleared in this mutation.
func (m *TeamParticipationMutation) CqiCleared() bool {
	_, ok := m.clearedFields[teamparticipation.FieldCqi]
	return ok
}

// ResetCqi resets all changes to the "cqi" field.
func (m *TeamParticipationMutation) ResetCqi() {
	m.cqi = nil
	m.addcqi = nil
	delete(m.clearedFields, teamparticipation.FieldCqi)
}

// SetIsSuspicious sets the "is_suspicious" field.
func (m *TeamParticipationMutation) SetIsSuspicious(b bool) {
	m.is_suspicious = &b
}

// IsSuspicious returns the value of the "is_suspicious" field in the mutation.
func (m *TeamParticipationMutation) IsSuspicious() (r bool, exists bool) {
	v := m.is_suspicious
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuspicious returns the old "is_suspicious" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldIsSuspicious(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuspicious is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuspicious requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuspicious: %w", err)
	}
	return oldValue.IsSuspicious, nil
}

// ResetIsSuspicious resets all changes to the "is_suspicious" field.
func (m *TeamParticipationMutation) ResetIsSuspicious() {
	m.is_suspicious = nil
}

// SetBalanceScore sets the "balance_score" field.
func (m *TeamParticipationMutation) SetBalanceScore(f float64) {
	m.balance_score = &f
	m.addbalance_score = nil
}

// BalanceScore returns the value of the "balance_score" field in the mutation.
func (m *TeamParticipationMutation) BalanceScore() (r float64, exists bool) {
	v := m.balance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceScore returns the old "balance_score" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldBalanceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceScore: %w", err)
	}
	return oldValue.BalanceScore, nil
}

// AddBalanceScore adds f to the "balance_score" field.
func (m *TeamParticipationMutation) AddBalanceScore(f float64) {
	if m.addbalance_score != nil {
		*m.addbalance_score += f
	} else {
		m.addbalance_score = &f
	}
}

// AddedBalanceScore returns the value that was added to the "balance_score" field in this mutation.
func (m *TeamParticipationMutation) AddedBalanceScore() (r float64, exists bool) {
	v := m.addbalance_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearBalanceScore clears the value of the "balance_score" field.
func (m *TeamParticipationMutation) ClearBalanceScore() {
	m.balance_score = nil
	m.addbalance_score = nil
	m.clearedFields[teamparticipation.FieldBalanceScore] = struct{}{}
}

// BalanceScoreCleared returns if the "balance_score" field was cleared in this mutation.
func (m *TeamParticipationMutation) BalanceScoreCleared() bool {
	_, ok := m.clearedFields[teamparticipation.FieldBalanceScore]
	return ok
}

// ResetBalanceScore resets all changes to the "balance_score" field.
func (m *TeamParticipationMutation) ResetBalanceScore() {
	m.balance_score = nil
	m.addbalance_score = nil
	delete(m.clearedFields, teamparticipation.FieldBalanceScore)
}

// SetComponents sets the "components" field.
func (m *TeamParticipationMutation) SetComponents(ms *models.ComponentScores) {
	m.components = &ms
}

// Components returns the value of the "components" field in the mutation.
func (m *TeamParticipationMutation) Components() (r *models.ComponentScores, exists bool) {
	v := m.components
	if v == nil {
		return
	}
	return *v, true
}

// OldComponents returns the old "components" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldComponents(ctx context.Context) (v *models.ComponentScores, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponents: %w", err)
	}
	return oldValue.Components, nil
}

// ClearComponents clears the value of the "components" field.
func (m *TeamParticipationMutation) ClearComponents() {
	m.components = nil
	m.clearedFields[teamparticipation.FieldComponents] = struct{}{}
}

// ComponentsCleared returns if the "components" field was cleared in this mutation.
func (m *TeamParticipationMutation) ComponentsCleared() bool {
	_, ok := m.clearedFields[teamparticipation.FieldComponents]
	return ok
}

// ResetComponents resets all changes to the "components" field.
func (m *TeamParticipationMutation) ResetComponents() {
	m.components = nil
	delete(m.clearedFields, teamparticipation.FieldComponents)
}

// SetFlags sets the "flags" field.
func (m *TeamParticipationMutation) SetFlags(s []string) {
	m.flags = &s
	m.appendflags = nil
}

// Flags returns the value of the "flags" field in the mutation.
func (m *TeamParticipationMutation) Flags() (r []string, exists bool) {
	v := m.flags
	if v == nil {
		return
	}
	return *v, true
}

// OldFlags returns the old "flags" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldFlags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlags: %w", err)
	}
	return oldValue.Flags, nil
}

// AppendFlags adds s to the "flags" field.
func (m *TeamParticipationMutation) AppendFlags(s []string) {
	m.appendflags = append(m.appendflags, s...)
}

// AppendedFlags returns the list of values that were appended to the "flags" field in this mutation.
func (m *TeamParticipationMutation) AppendedFlags() ([]string, bool) {
	if len(m.appendflags) == 0 {
		return nil, false
	}
	return m.appendflags, true
}

// ClearFlags clears the value of the "flags" field.
func (m *TeamParticipationMutation) ClearFlags() {
	m.flags = nil
	m.appendflags = nil
	m.clearedFields[teamparticipation.FieldFlags] = struct{}{}
}

// FlagsCleared returns if the "flags" field was cleared in this mutation.
func (m *TeamParticipationMutation) FlagsCleared() bool {
	_, ok := m.clearedFields[teamparticipation.FieldFlags]
	return ok
}

// ResetFlags resets all changes to the "flags" field.
func (m *TeamParticipationMutation) ResetFlags() {
	m.flags = nil
	m.appendflags = nil
	delete(m.clearedFields, teamparticipation.FieldFlags)
}

// SetPenalties sets the "penalties" field.
func (m *TeamParticipationMutation) SetPenalties(value []models.Penalty) {
	m.penalties = &value
	m.appendpenalties = nil
}

// Penalties returns the value of the "penalties" field in the mutation.
func (m *TeamParticipationMutation) Penalties() (r []models.Penalty, exists bool) {
	v := m.penalties
	if v == nil {
		return
	}
	return *v, true
}

// OldPenalties returns the old "penalties" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldPenalties(ctx context.Context) (v []models.Penalty, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPenalties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPenalties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPenalties: %w", err)
	}
	return oldValue.Penalties, nil
}

// AppendPenalties adds value to the "penalties" field.
func (m *TeamParticipationMutation) AppendPenalties(value []models.Penalty) {
	m.appendpenalties = append(m.appendpenalties, value...)
}

// AppendedPenalties returns the list of values that were appended to the "penalties" field in this mutation.
func (m *TeamParticipationMutation) AppendedPenalties() ([]models.Penalty, bool) {
	if len(m.appendpenalties) == 0 {
		return nil, false
	}
	return m.appendpenalties, true
}

// ClearPenalties clears the value of the "penalties" field.
func (m *TeamParticipationMutation) ClearPenalties() {
	m.penalties = nil
	m.appendpenalties = nil
	m.clearedFields[teamparticipation.FieldPenalties] = struct{}{}
}

// PenaltiesCleared returns if the "penalties" field was cleared in this mutation.
func (m *TeamParticipationMutation) PenaltiesCleared() bool {
	_, ok := m.clearedFields[teamparticipation.FieldPenalties]
	return ok
}

// ResetPenalties resets all changes to the "penalties" field.
func (m *TeamParticipationMutation) ResetPenalties() {
	m.penalties = nil
	m.appendpenalties = nil
	delete(m.clearedFields, teamparticipation.FieldPenalties)
}

// SetTokenTotals sets the "token_totals" field.
func (m *TeamParticipationMutation) SetTokenTotals(mt *models.TokenTotals) {
	m.token_totals = &mt
}

// TokenTotals returns the value of the "token_totals" field in the mutation.
func (m *TeamParticipationMutation) TokenTotals() (r *models.TokenTotals, exists bool) {
	v := m.token_totals
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenTotals returns the old "token_totals" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldTokenTotals(ctx context.Context) (v *models.TokenTotals, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenTotals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenTotals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenTotals: %w", err)
	}
	return oldValue.TokenTotals, nil
}

// ClearTokenTotals clears the value of the "token_totals" field.
func (m *TeamParticipationMutation) ClearTokenTotals() {
	m.token_totals = nil
	m.clearedFields[teamparticipation.FieldTokenTotals] = struct{}{}
}

// TokenTotalsCleared returns if the "token_totals" field was cleared in this mutation.
func (m *TeamParticipationMutation) TokenTotalsCleared() bool {
	_, ok := m.clearedFields[teamparticipation.FieldTokenTotals]
	return ok
}

// ResetTokenTotals resets all changes to the "token_totals" field.
func (m *TeamParticipationMutation) ResetTokenTotals() {
	m.token_totals = nil
	delete(m.clearedFields, teamparticipation.FieldTokenTotals)
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (m *TeamParticipationMutation) SetAnalyzedAt(t time.Time) {
	m.analyzed_at = &t
}

// AnalyzedAt returns the value of the "analyzed_at" field in the mutation.
func (m *TeamParticipationMutation) AnalyzedAt() (r time.Time, exists bool) {
	v := m.analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzedAt returns the old "analyzed_at" field's value of the TeamParticipation entity.
// If the TeamParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamParticipationMutation) OldAnalyzedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzedAt: %w", err)
	}
	return oldValue.AnalyzedAt, nil
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (m *TeamParticipationMutation) ClearAnalyzedAt() {
	m.analyzed_at = nil
	m.clearedFields[teamparticipation.FieldAnalyzedAt] = struct{}{}
}

// AnalyzedAtCleared returns if the "analyzed_at" field was cleared in this mutation.
func (m *TeamParticipationMutation) AnalyzedAtCleared() bool {
	_, ok := m.clearedFields[teamparticipation.FieldAnalyzedAt]
	return ok
}

// ResetAnalyzedAt resets all changes to the "analyzed_at" field.
func (m *TeamParticipationMutation) ResetAnalyzedAt() {
	m.analyzed_at = nil
	delete(m.clearedFields, teamparticipation.FieldAnalyzedAt)
}

// AddChunkIDs adds the "chunks" edge to the AnalyzedChunk entity by ids.
func (m *TeamParticipationMutation) AddChunkIDs(ids ...int) {
	if m.chunks == nil {
		m.chunks = make(map[int]struct{})
	}
	for i := range ids {
		m.chunks[ids[i]] = struct{}{}
	}
}

// ClearChunks clears the "chunks" edge to the AnalyzedChunk entity.
func (m *TeamParticipationMutation) ClearChunks() {
	m.clearedchunks = true
}

// ChunksCleared reports if the "chunks" edge to the AnalyzedChunk entity was cleared.
func (m *TeamParticipationMutation) ChunksCleared() bool {
	return m.clearedchunks
}

// RemoveChunkIDs removes the "chunks" edge to the AnalyzedChunk entity by IDs.
func (m *TeamParticipationMutation) RemoveChunkIDs(ids ...int) {
	if m.removedchunks == nil {
		m.removedchunks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chunks, ids[i])
		m.removedchunks[ids[i]] = struct{}{}
	}
}

// RemovedChunks returns the removed IDs of the "chunks" edge to the AnalyzedChunk entity.
func (m *TeamParticipationMutation) RemovedChunksIDs() (ids []int) {
	for id := range m.removedchunks {
		ids = append(ids, id)
	}
	return
}

// ChunksIDs returns the "chunks" edge IDs in the mutation.
func (m *TeamParticipationMutation) ChunksIDs() (ids []int) {
	for id := range m.chunks {
		ids = append(ids, id)
	}
	return
}

// ResetChunks resets all changes to the "chunks" edge.
func (m *TeamParticipationMutation) ResetChunks() {
	m.chunks = nil
	m.clearedchunks = false
	m.removedchunks = nil
}

// Where appends a list predicates to the TeamParticipationMutation builder.
func (m *TeamParticipationMutation) Where(ps ...predicate.TeamParticipation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamParticipationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamParticipationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TeamParticipation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamParticipationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamParticipationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TeamParticipation).
func (m *TeamParticipationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamParticipationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.exercise_id != nil {
		fields = append(fields, teamparticipation.FieldExerciseID)
	}
	if m.team_id != nil {
		fields = append(fields, teamparticipation.FieldTeamID)
	}
	if m.team_name != nil {
		fields = append(fields, teamparticipation.FieldTeamName)
	}
	if m.repository_uri != nil {
		fields = append(fields, teamparticipation.FieldRepositoryURI)
	}
	if m.members != nil {
		fields = append(fields, teamparticipation.FieldMembers)
	}
	if m.cqi != nil {
		fields = append(fields, teamparticipation.FieldCqi)
	}
	if m.is_suspicious != nil {
		fields = append(fields, teamparticipation.FieldIsSuspicious)
	}
	if m.balance_score != nil {
		fields = append(fields, teamparticipation.FieldBalanceScore)
	}
	if m.components != nil {
		fields = append(fields, teamparticipation.FieldComponents)
	}
	if m.flags != nil {
		fields = append(fields, teamparticipation.FieldFlags)
	}
	if m.penalties != nil {
		fields = append(fields, teamparticipation.FieldPenalties)
	}
	if m.token_totals != nil {
		fields = append(fields, teamparticipation.FieldTokenTotals)
	}
	if m.analyzed_at != nil {
		fields = append(fields, teamparticipation.FieldAnalyzedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamParticipationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case teamparticipation.FieldExerciseID:
		return m.ExerciseID()
	case teamparticipation.FieldTeamID:
		return m.TeamID()
	case teamparticipation.FieldTeamName:
		return m.TeamName()
	case teamparticipation.FieldRepositoryURI:
		return m.RepositoryURI()
	case teamparticipation.FieldMembers:
		return m.Members()
	case teamparticipation.FieldCqi:
		return m.Cqi()
	case teamparticipation.FieldIsSuspicious:
		return m.IsSuspicious()
	case teamparticipation.FieldBalanceScore:
		return m.BalanceScore()
	case teamparticipation.FieldComponents:
		return m.Components()
	case teamparticipation.FieldFlags:
		return m.Flags()
	case teamparticipation.FieldPenalties:
		return m.Penalties()
	case teamparticipation.FieldTokenTotals:
		return m.TokenTotals()
	case teamparticipation.FieldAnalyzedAt:
		return m.AnalyzedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamParticipationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case teamparticipation.FieldExerciseID:
		return m.OldExerciseID(ctx)
	case teamparticipation.FieldTeamID:
		return m.OldTeamID(ctx)
	case teamparticipation.FieldTeamName:
		return m.OldTeamName(ctx)
	case teamparticipation.FieldRepositoryURI:
		return m.OldRepositoryURI(ctx)
	case teamparticipation.FieldMembers:
		return m.OldMembers(ctx)
	case teamparticipation.FieldCqi:
		return m.OldCqi(ctx)
	case teamparticipation.FieldIsSuspicious:
		return m.OldIsSuspicious(ctx)
	case teamparticipation.FieldBalanceScore:
		return m.OldBalanceScore(ctx)
	case teamparticipation.FieldComponents:
		return m.OldComponents(ctx)
	case teamparticipation.FieldFlags:
		return m.OldFlags(ctx)
	case teamparticipation.FieldPenalties:
		return m.OldPenalties(ctx)
	case teamparticipation.FieldTokenTotals:
		return m.OldTokenTotals(ctx)
	case teamparticipation.FieldAnalyzedAt:
		return m.OldAnalyzedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TeamParticipation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamParticipationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case teamparticipation.FieldExerciseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseID(v)
		return nil
	case teamparticipation.FieldTeamID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case teamparticipation.FieldTeamName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamName(v)
		return nil
	case teamparticipation.FieldRepositoryURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryURI(v)
		return nil
	case teamparticipation.FieldMembers:
		v, ok := value.([]models.Member)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMembers(v)
		return nil
	case teamparticipation.FieldCqi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCqi(v)
		return nil
	case teamparticipation.FieldIsSuspicious:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuspicious(v)
		return nil
	case teamparticipation.FieldBalanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceScore(v)
		return nil
	case teamparticipation.FieldComponents:
		v, ok := value.(*models.ComponentScores)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponents(v)
		return nil
	case teamparticipation.FieldFlags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlags(v)
		return nil
	case teamparticipation.FieldPenalties:
		v, ok := value.([]models.Penalty)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPenalties(v)
		return nil
	case teamparticipation.FieldTokenTotals:
		v, ok := value.(*models.TokenTotals)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenTotals(v)
		return nil
	case teamparticipation.FieldAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TeamParticipation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamParticipationMutation) AddedFields() []string {
	var fields []string
	if m.addexercise_id != nil {
		fields = append(fields, teamparticipation.FieldExerciseID)
	}
	if m.addteam_id != nil {
		fields = append(fields, teamparticipation.FieldTeamID)
	}
	if m.addcqi != nil {
		fields = append(fields, teamparticipation.FieldCqi)
	}
	if m.addbalance_score != nil {
		fields = append(fields, teamparticipation.FieldBalanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamParticipationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case teamparticipation.FieldExerciseID:
		return m.AddedExerciseID()
	case teamparticipation.FieldTeamID:
		return m.AddedTeamID()
	case teamparticipation.FieldCqi:
		return m.AddedCqi()
	case teamparticipation.FieldBalanceScore:
		return m.AddedBalanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamParticipationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case teamparticipation.FieldExerciseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExerciseID(v)
		return nil
	case teamparticipation.FieldTeamID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTeamID(v)
		return nil
	case teamparticipation.FieldCqi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCqi(v)
		return nil
	case teamparticipation.FieldBalanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown TeamParticipation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamParticipationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(teamparticipation.FieldMembers) {
		fields = append(fields, teamparticipation.FieldMembers)
	}
	if m.FieldCleared(teamparticipation.FieldCqi) {
		fields = append(fields, teamparticipation.FieldCqi)
	}
	if m.FieldCleared(teamparticipation.FieldBalanceScore) {
		fields = append(fields, teamparticipation.FieldBalanceScore)
	}
	if m.FieldCleared(teamparticipation.FieldComponents) {
		fields = append(fields, teamparticipation.FieldComponents)
	}
	if m.FieldCleared(teamparticipation.FieldFlags) {
		fields = append(fields, teamparticipation.FieldFlags)
	}
	if m.FieldCleared(teamparticipation.FieldPenalties) {
		fields = append(fields, teamparticipation.FieldPenalties)
	}
	if m.FieldCleared(teamparticipation.FieldTokenTotals) {
		fields = append(fields, teamparticipation.FieldTokenTotals)
	}
	if m.FieldCleared(teamparticipation.FieldAnalyzedAt) {
		fields = append(fields, teamparticipation.FieldAnalyzedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamParticipationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamParticipationMutation) ClearField(name string) error {
	switch name {
	case teamparticipation.FieldMembers:
		m.ClearMembers()
		return nil
	case teamparticipation.FieldCqi:
		m.ClearCqi()
		return nil
	case teamparticipation.FieldBalanceScore:
		m.ClearBalanceScore()
		return nil
	case teamparticipation.FieldComponents:
		m.ClearComponents()
		return nil
	case teamparticipation.FieldFlags:
		m.ClearFlags()
		return nil
	case teamparticipation.FieldPenalties:
		m.ClearPenalties()
		return nil
	case teamparticipation.FieldTokenTotals:
		m.ClearTokenTotals()
		return nil
	case teamparticipation.FieldAnalyzedAt:
		m.ClearAnalyzedAt()
		return nil
	}
	return fmt.Errorf("unknown TeamParticipation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamParticipationMutation) ResetField(name string) error {
	switch name {
	case teamparticipation.FieldExerciseID:
		m.ResetExerciseID()
		return nil
	case teamparticipation.FieldTeamID:
		m.ResetTeamID()
		return nil
	case teamparticipation.FieldTeamName:
		m.ResetTeamName()
		return nil
	case teamparticipation.FieldRepositoryURI:
		m.ResetRepositoryURI()
		return nil
	case teamparticipation.FieldMembers:
		m.ResetMembers()
		return nil
	case teamparticipation.FieldCqi:
		m.ResetCqi()
		return nil
	case teamparticipation.FieldIsSuspicious:
		m.ResetIsSuspicious()
		return nil
	case teamparticipation.FieldBalanceScore:
		m.ResetBalanceScore()
		return nil
	case teamparticipation.FieldComponents:
		m.ResetComponents()
		return nil
	case teamparticipation.FieldFlags:
		m.ResetFlags()
		return nil
	case teamparticipation.FieldPenalties:
		m.ResetPenalties()
		return nil
	case teamparticipation.FieldTokenTotals:
		m.ResetTokenTotals()
		return nil
	case teamparticipation.FieldAnalyzedAt:
		m.ResetAnalyzedAt()
		return nil
	}
	return fmt.Errorf("unknown TeamParticipation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamParticipationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chunks != nil {
		edges = append(edges, teamparticipation.EdgeChunks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamParticipationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case teamparticipation.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.chunks))
		for id := range m.chunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamParticipationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedchunks != nil {
		edges = append(edges, teamparticipation.EdgeChunks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamParticipationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case teamparticipation.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.removedchunks))
		for id := range m.removedchunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamParticipationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchunks {
		edges = append(edges, teamparticipation.EdgeChunks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamParticipationMutation) EdgeCleared(name string) bool {
	switch name {
	case teamparticipation.EdgeChunks:
		return m.clearedchunks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamParticipationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TeamParticipation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamParticipationMutation) ResetEdge(name string) error {
	switch name {
	case teamparticipation.EdgeChunks:
		m.ResetChunks()
		return nil
	}
	return fmt.Errorf("unknown TeamParticipation edge %s", name)
}
