// Code generated by ent, DO NOT EDIT.

package analysisstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fairlens/fairlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLTE(FieldID, id))
}

// ExerciseID applies equality check predicate on the "exercise_id" field. It's identical to ExerciseIDEQ.
func ExerciseID(v int64) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldExerciseID, v))
}

// TotalTeams applies equality check predicate on the "total_teams" field. It's identical to TotalTeamsEQ.
func TotalTeams(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldTotalTeams, v))
}

// ProcessedTeams applies equality check predicate on the "processed_teams" field. It's identical to ProcessedTeamsEQ.
func ProcessedTeams(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldProcessedTeams, v))
}

// CurrentTeamName applies equality check predicate on the "current_team_name" field. It's identical to CurrentTeamNameEQ.
func CurrentTeamName(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldCurrentTeamName, v))
}

// CurrentStage applies equality check predicate on the "current_stage" field. It's identical to CurrentStageEQ.
func CurrentStage(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldCurrentStage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldStartedAt, v))
}

// LastUpdatedAt applies equality check predicate on the "last_updated_at" field. It's identical to LastUpdatedAtEQ.
func LastUpdatedAt(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldErrorMessage, v))
}

// ExerciseIDEQ applies the EQ predicate on the "exercise_id" field.
func ExerciseIDEQ(v int64) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldExerciseID, v))
}

// ExerciseIDNEQ applies the NEQ predicate on the "exercise_id" field.
func ExerciseIDNEQ(v int64) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldExerciseID, v))
}

// ExerciseIDIn applies the In predicate on the "exercise_id" field.
func ExerciseIDIn(vs ...int64) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldExerciseID, vs...))
}

// ExerciseIDNotIn applies the NotIn predicate on the "exercise_id" field.
func ExerciseIDNotIn(vs ...int64) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldExerciseID, vs...))
}

// ExerciseIDGT applies the GT predicate on the "exercise_id" field.
func ExerciseIDGT(v int64) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGT(FieldExerciseID, v))
}

// ExerciseIDGTE applies the GTE predicate on the "exercise_id" field.
func ExerciseIDGTE(v int64) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGTE(FieldExerciseID, v))
}

// ExerciseIDLT applies the LT predicate on the "exercise_id" field.
func ExerciseIDLT(v int64) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLT(FieldExerciseID, v))
}

// ExerciseIDLTE applies the LTE predicate on the "exercise_id" field.
func ExerciseIDLTE(v int64) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLTE(FieldExerciseID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldState, vs...))
}

// TotalTeamsEQ applies the EQ predicate on the "total_teams" field.
func TotalTeamsEQ(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldTotalTeams, v))
}

// TotalTeamsNEQ applies the NEQ predicate on the "total_teams" field.
func TotalTeamsNEQ(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldTotalTeams, v))
}

// TotalTeamsIn applies the In predicate on the "total_teams" field.
func TotalTeamsIn(vs ...int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldTotalTeams, vs...))
}

// TotalTeamsNotIn applies the NotIn predicate on the "total_teams" field.
func TotalTeamsNotIn(vs ...int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldTotalTeams, vs...))
}

// TotalTeamsGT applies the GT predicate on the "total_teams" field.
func TotalTeamsGT(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGT(FieldTotalTeams, v))
}

// TotalTeamsGTE applies the GTE predicate on the "total_teams" field.
func TotalTeamsGTE(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGTE(FieldTotalTeams, v))
}

// TotalTeamsLT applies the LT predicate on the "total_teams" field.
func TotalTeamsLT(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLT(FieldTotalTeams, v))
}

// TotalTeamsLTE applies the LTE predicate on the "total_teams" field.
func TotalTeamsLTE(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLTE(FieldTotalTeams, v))
}

// ProcessedTeamsEQ applies the EQ predicate on the "processed_teams" field.
func ProcessedTeamsEQ(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldProcessedTeams, v))
}

// ProcessedTeamsNEQ applies the NEQ predicate on the "processed_teams" field.
func ProcessedTeamsNEQ(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldProcessedTeams, v))
}

// ProcessedTeamsIn applies the In predicate on the "processed_teams" field.
func ProcessedTeamsIn(vs ...int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldProcessedTeams, vs...))
}

// ProcessedTeamsNotIn applies the NotIn predicate on the "processed_teams" field.
func ProcessedTeamsNotIn(vs ...int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldProcessedTeams, vs...))
}

// ProcessedTeamsGT applies the GT predicate on the "processed_teams" field.
func ProcessedTeamsGT(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGT(FieldProcessedTeams, v))
}

// ProcessedTeamsGTE applies the GTE predicate on the "processed_teams" field.
func ProcessedTeamsGTE(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGTE(FieldProcessedTeams, v))
}

// ProcessedTeamsLT applies the LT predicate on the "processed_teams" field.
func ProcessedTeamsLT(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLT(FieldProcessedTeams, v))
}

// ProcessedTeamsLTE applies the LTE predicate on the "processed_teams" field.
func ProcessedTeamsLTE(v int) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLTE(FieldProcessedTeams, v))
}

// CurrentTeamNameEQ applies the EQ predicate on the "current_team_name" field.
func CurrentTeamNameEQ(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldCurrentTeamName, v))
}

// CurrentTeamNameNEQ applies the NEQ predicate on the "current_team_name" field.
func CurrentTeamNameNEQ(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldCurrentTeamName, v))
}

// CurrentTeamNameIn applies the In predicate on the "current_team_name" field.
func CurrentTeamNameIn(vs ...string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldCurrentTeamName, vs...))
}

// CurrentTeamNameNotIn applies the NotIn predicate on the "current_team_name" field.
func CurrentTeamNameNotIn(vs ...string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldCurrentTeamName, vs...))
}

// CurrentTeamNameGT applies the GT predicate on the "current_team_name" field.
func CurrentTeamNameGT(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGT(FieldCurrentTeamName, v))
}

// CurrentTeamNameGTE applies the GTE predicate on the "current_team_name" field.
func CurrentTeamNameGTE(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGTE(FieldCurrentTeamName, v))
}

// CurrentTeamNameLT applies the LT predicate on the "current_team_name" field.
func CurrentTeamNameLT(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLT(FieldCurrentTeamName, v))
}

// CurrentTeamNameLTE applies the LTE predicate on the "current_team_name" field.
func CurrentTeamNameLTE(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLTE(FieldCurrentTeamName, v))
}

// CurrentTeamNameContains applies the Contains predicate on the "current_team_name" field.
func CurrentTeamNameContains(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldContains(FieldCurrentTeamName, v))
}

// CurrentTeamNameHasPrefix applies the HasPrefix predicate on the "current_team_name" field.
func CurrentTeamNameHasPrefix(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldHasPrefix(FieldCurrentTeamName, v))
}

// CurrentTeamNameHasSuffix applies the HasSuffix predicate on the "current_team_name" field.
func CurrentTeamNameHasSuffix(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldHasSuffix(FieldCurrentTeamName, v))
}

// CurrentTeamNameIsNil applies the IsNil predicate on the "current_team_name" field.
func CurrentTeamNameIsNil() predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIsNull(FieldCurrentTeamName))
}

// CurrentTeamNameNotNil applies the NotNil predicate on the "current_team_name" field.
func CurrentTeamNameNotNil() predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotNull(FieldCurrentTeamName))
}

// CurrentTeamNameEqualFold applies the EqualFold predicate on the "current_team_name" field.
func CurrentTeamNameEqualFold(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEqualFold(FieldCurrentTeamName, v))
}

// CurrentTeamNameContainsFold applies the ContainsFold predicate on the "current_team_name" field.
func CurrentTeamNameContainsFold(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldContainsFold(FieldCurrentTeamName, v))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// CurrentStageGT applies the GT predicate on the "current_stage" field.
func CurrentStageGT(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGT(FieldCurrentStage, v))
}

// CurrentStageGTE applies the GTE predicate on the "current_stage" field.
func CurrentStageGTE(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGTE(FieldCurrentStage, v))
}

// CurrentStageLT applies the LT predicate on the "current_stage" field.
func CurrentStageLT(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLT(FieldCurrentStage, v))
}

// CurrentStageLTE applies the LTE predicate on the "current_stage" field.
func CurrentStageLTE(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLTE(FieldCurrentStage, v))
}

// CurrentStageContains applies the Contains predicate on the "current_stage" field.
func CurrentStageContains(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldContains(FieldCurrentStage, v))
}

// CurrentStageHasPrefix applies the HasPrefix predicate on the "current_stage" field.
func CurrentStageHasPrefix(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldHasPrefix(FieldCurrentStage, v))
}

// CurrentStageHasSuffix applies the HasSuffix predicate on the "current_stage" field.
func CurrentStageHasSuffix(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldHasSuffix(FieldCurrentStage, v))
}

// CurrentStageIsNil applies the IsNil predicate on the "current_stage" field.
func CurrentStageIsNil() predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIsNull(FieldCurrentStage))
}

// CurrentStageNotNil applies the NotNil predicate on the "current_stage" field.
func CurrentStageNotNil() predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotNull(FieldCurrentStage))
}

// CurrentStageEqualFold applies the EqualFold predicate on the "current_stage" field.
func CurrentStageEqualFold(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEqualFold(FieldCurrentStage, v))
}

// CurrentStageContainsFold applies the ContainsFold predicate on the "current_stage" field.
func CurrentStageContainsFold(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldContainsFold(FieldCurrentStage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotNull(FieldStartedAt))
}

// LastUpdatedAtEQ applies the EQ predicate on the "last_updated_at" field.
func LastUpdatedAtEQ(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtNEQ applies the NEQ predicate on the "last_updated_at" field.
func LastUpdatedAtNEQ(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtIn applies the In predicate on the "last_updated_at" field.
func LastUpdatedAtIn(vs ...time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtNotIn applies the NotIn predicate on the "last_updated_at" field.
func LastUpdatedAtNotIn(vs ...time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtGT applies the GT predicate on the "last_updated_at" field.
func LastUpdatedAtGT(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtGTE applies the GTE predicate on the "last_updated_at" field.
func LastUpdatedAtGTE(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGTE(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLT applies the LT predicate on the "last_updated_at" field.
func LastUpdatedAtLT(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLTE applies the LTE predicate on the "last_updated_at" field.
func LastUpdatedAtLTE(v time.Time) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLTE(FieldLastUpdatedAt, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisStatus) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisStatus) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisStatus) predicate.AnalysisStatus {
	return predicate.AnalysisStatus(sql.NotPredicates(p))
}
