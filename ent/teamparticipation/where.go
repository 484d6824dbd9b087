// Code generated by ent, DO NOT EDIT.

package teamparticipation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fairlens/fairlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLTE(FieldID, id))
}

// ExerciseID applies equality check predicate on the "exercise_id" field. It's identical to ExerciseIDEQ.
func ExerciseID(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldExerciseID, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldTeamID, v))
}

// TeamName applies equality check predicate on the "team_name" field. It's identical to TeamNameEQ.
func TeamName(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldTeamName, v))
}

// RepositoryURI applies equality check predicate on the "repository_uri" field. It's identical to RepositoryURIEQ.
func RepositoryURI(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldRepositoryURI, v))
}

// Cqi applies equality check predicate on the "cqi" field. It's identical to CqiEQ.
func Cqi(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldCqi, v))
}

// IsSuspicious applies equality check predicate on the "is_suspicious" field. It's identical to IsSuspiciousEQ.
func IsSuspicious(v bool) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldIsSuspicious, v))
}

// BalanceScore applies equality check predicate on the "balance_score" field. It's identical to BalanceScoreEQ.
func BalanceScore(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldBalanceScore, v))
}

// AnalyzedAt applies equality check predicate on the "analyzed_at" field. It's identical to AnalyzedAtEQ.
func AnalyzedAt(v time.Time) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldAnalyzedAt, v))
}

// ExerciseIDEQ applies the EQ predicate on the "exercise_id" field.
func ExerciseIDEQ(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldExerciseID, v))
}

// ExerciseIDNEQ applies the NEQ predicate on the "exercise_id" field.
func ExerciseIDNEQ(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNEQ(FieldExerciseID, v))
}

// ExerciseIDIn applies the In predicate on the "exercise_id" field.
func ExerciseIDIn(vs ...int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIn(FieldExerciseID, vs...))
}

// ExerciseIDNotIn applies the NotIn predicate on the "exercise_id" field.
func ExerciseIDNotIn(vs ...int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotIn(FieldExerciseID, vs...))
}

// ExerciseIDGT applies the GT predicate on the "exercise_id" field.
func ExerciseIDGT(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGT(FieldExerciseID, v))
}

// ExerciseIDGTE applies the GTE predicate on the "exercise_id" field.
func ExerciseIDGTE(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGTE(FieldExerciseID, v))
}

// ExerciseIDLT applies the LT predicate on the "exercise_id" field.
func ExerciseIDLT(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLT(FieldExerciseID, v))
}

// ExerciseIDLTE applies the LTE predicate on the "exercise_id" field.
func ExerciseIDLTE(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLTE(FieldExerciseID, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v int64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLTE(FieldTeamID, v))
}

// TeamNameEQ applies the EQ predicate on the "team_name" field.
func TeamNameEQ(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldTeamName, v))
}

// TeamNameNEQ applies the NEQ predicate on the "team_name" field.
func TeamNameNEQ(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNEQ(FieldTeamName, v))
}

// TeamNameIn applies the In predicate on the "team_name" field.
func TeamNameIn(vs ...string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIn(FieldTeamName, vs...))
}

// TeamNameNotIn applies the NotIn predicate on the "team_name" field.
func TeamNameNotIn(vs ...string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotIn(FieldTeamName, vs...))
}

// TeamNameGT applies the GT predicate on the "team_name" field.
func TeamNameGT(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGT(FieldTeamName, v))
}

// TeamNameGTE applies the GTE predicate on the "team_name" field.
func TeamNameGTE(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGTE(FieldTeamName, v))
}

// TeamNameLT applies the LT predicate on the "team_name" field.
func TeamNameLT(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLT(FieldTeamName, v))
}

// TeamNameLTE applies the LTE predicate on the "team_name" field.
func TeamNameLTE(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLTE(FieldTeamName, v))
}

// TeamNameContains applies the Contains predicate on the "team_name" field.
func TeamNameContains(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldContains(FieldTeamName, v))
}

// TeamNameHasPrefix applies the HasPrefix predicate on the "team_name" field.
func TeamNameHasPrefix(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldHasPrefix(FieldTeamName, v))
}

// TeamNameHasSuffix applies the HasSuffix predicate on the "team_name" field.
func TeamNameHasSuffix(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldHasSuffix(FieldTeamName, v))
}

// TeamNameEqualFold applies the EqualFold predicate on the "team_name" field.
func TeamNameEqualFold(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEqualFold(FieldTeamName, v))
}

// TeamNameContainsFold applies the ContainsFold predicate on the "team_name" field.
func TeamNameContainsFold(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldContainsFold(FieldTeamName, v))
}

// RepositoryURIEQ applies the EQ predicate on the "repository_uri" field.
func RepositoryURIEQ(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldRepositoryURI, v))
}

// RepositoryURINEQ applies the NEQ predicate on the "repository_uri" field.
func RepositoryURINEQ(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNEQ(FieldRepositoryURI, v))
}

// RepositoryURIIn applies the In predicate on the "repository_uri" field.
func RepositoryURIIn(vs ...string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIn(FieldRepositoryURI, vs...))
}

// RepositoryURINotIn applies the NotIn predicate on the "repository_uri" field.
func RepositoryURINotIn(vs ...string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotIn(FieldRepositoryURI, vs...))
}

// RepositoryURIGT applies the GT predicate on the "repository_uri" field.
func RepositoryURIGT(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGT(FieldRepositoryURI, v))
}

// RepositoryURIGTE applies the GTE predicate on the "repository_uri" field.
func RepositoryURIGTE(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGTE(FieldRepositoryURI, v))
}

// RepositoryURILT applies the LT predicate on the "repository_uri" field.
func RepositoryURILT(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLT(FieldRepositoryURI, v))
}

// RepositoryURILTE applies the LTE predicate on the "repository_uri" field.
func RepositoryURILTE(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLTE(FieldRepositoryURI, v))
}

// RepositoryURIContains applies the Contains predicate on the "repository_uri" field.
func RepositoryURIContains(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldContains(FieldRepositoryURI, v))
}

// RepositoryURIHasPrefix applies the HasPrefix predicate on the "repository_uri" field.
func RepositoryURIHasPrefix(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldHasPrefix(FieldRepositoryURI, v))
}

// RepositoryURIHasSuffix applies the HasSuffix predicate on the "repository_uri" field.
func RepositoryURIHasSuffix(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldHasSuffix(FieldRepositoryURI, v))
}

// RepositoryURIEqualFold applies the EqualFold predicate on the "repository_uri" field.
func RepositoryURIEqualFold(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEqualFold(FieldRepositoryURI, v))
}

// RepositoryURIContainsFold applies the ContainsFold predicate on the "repository_uri" field.
func RepositoryURIContainsFold(v string) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldContainsFold(FieldRepositoryURI, v))
}

// MembersIsNil applies the IsNil predicate on the "members" field.
func MembersIsNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIsNull(FieldMembers))
}

// MembersNotNil applies the NotNil predicate on the "members" field.
func MembersNotNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotNull(FieldMembers))
}

// CqiEQ applies the EQ predicate on the "cqi" field.
func CqiEQ(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldCqi, v))
}

// CqiNEQ applies the NEQ predicate on the "cqi" field.
func CqiNEQ(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNEQ(FieldCqi, v))
}

// CqiIn applies the In predicate on the "cqi" field.
func CqiIn(vs ...float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIn(FieldCqi, vs...))
}

// CqiNotIn applies the NotIn predicate on the "cqi" field.
func CqiNotIn(vs ...float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotIn(FieldCqi, vs...))
}

// CqiGT applies the GT predicate on the "cqi" field.
func CqiGT(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGT(FieldCqi, v))
}

// CqiGTE applies the GTE predicate on the "cqi" field.
func CqiGTE(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGTE(FieldCqi, v))
}

// CqiLT applies the LT predicate on the "cqi" field.
func CqiLT(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLT(FieldCqi, v))
}

// CqiLTE applies the LTE predicate on the "cqi" field.
func CqiLTE(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLTE(FieldCqi, v))
}

// CqiIsNil applies the IsNil predicate on the "cqi" field.
func CqiIsNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIsNull(FieldCqi))
}

// CqiNotNil applies the NotNil predicate on the "cqi" field.
func CqiNotNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotNull(FieldCqi))
}

// IsSuspiciousEQ applies the EQ predicate on the "is_suspicious" field.
func IsSuspiciousEQ(v bool) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldIsSuspicious, v))
}

// IsSuspiciousNEQ applies the NEQ predicate on the "is_suspicious" field.
func IsSuspiciousNEQ(v bool) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNEQ(FieldIsSuspicious, v))
}

// BalanceScoreEQ applies the EQ predicate on the "balance_score" field.
func BalanceScoreEQ(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldBalanceScore, v))
}

// BalanceScoreNEQ applies the NEQ predicate on the "balance_score" field.
func BalanceScoreNEQ(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNEQ(FieldBalanceScore, v))
}

// BalanceScoreIn applies the In predicate on the "balance_score" field.
func BalanceScoreIn(vs ...float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIn(FieldBalanceScore, vs...))
}

// BalanceScoreNotIn applies the NotIn predicate on the "balance_score" field.
func BalanceScoreNotIn(vs ...float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotIn(FieldBalanceScore, vs...))
}

// BalanceScoreGT applies the GT predicate on the "balance_score" field.
func BalanceScoreGT(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGT(FieldBalanceScore, v))
}

// BalanceScoreGTE applies the GTE predicate on the "balance_score" field.
func BalanceScoreGTE(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGTE(FieldBalanceScore, v))
}

// BalanceScoreLT applies the LT predicate on the "balance_score" field.
func BalanceScoreLT(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLT(FieldBalanceScore, v))
}

// BalanceScoreLTE applies the LTE predicate on the "balance_score" field.
func BalanceScoreLTE(v float64) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLTE(FieldBalanceScore, v))
}

// BalanceScoreIsNil applies the IsNil predicate on the "balance_score" field.
func BalanceScoreIsNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIsNull(FieldBalanceScore))
}

// BalanceScoreNotNil applies the NotNil predicate on the "balance_score" field.
func BalanceScoreNotNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotNull(FieldBalanceScore))
}

// ComponentsIsNil applies the IsNil predicate on the "components" field.
func ComponentsIsNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIsNull(FieldComponents))
}

// ComponentsNotNil applies the NotNil predicate on the "components" field.
func ComponentsNotNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotNull(FieldComponents))
}

// FlagsIsNil applies the IsNil predicate on the "flags" field.
func FlagsIsNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIsNull(FieldFlags))
}

// FlagsNotNil applies the NotNil predicate on the "flags" field.
func FlagsNotNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotNull(FieldFlags))
}

// PenaltiesIsNil applies the IsNil predicate on the "penalties" field.
func PenaltiesIsNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIsNull(FieldPenalties))
}

// PenaltiesNotNil applies the NotNil predicate on the "penalties" field.
func PenaltiesNotNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotNull(FieldPenalties))
}

// TokenTotalsIsNil applies the IsNil predicate on the "token_totals" field.
func TokenTotalsIsNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIsNull(FieldTokenTotals))
}

// TokenTotalsNotNil applies the NotNil predicate on the "token_totals" field.
func TokenTotalsNotNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotNull(FieldTokenTotals))
}

// AnalyzedAtEQ applies the EQ predicate on the "analyzed_at" field.
func AnalyzedAtEQ(v time.Time) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtNEQ applies the NEQ predicate on the "analyzed_at" field.
func AnalyzedAtNEQ(v time.Time) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtIn applies the In predicate on the "analyzed_at" field.
func AnalyzedAtIn(vs ...time.Time) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtNotIn applies the NotIn predicate on the "analyzed_at" field.
func AnalyzedAtNotIn(vs ...time.Time) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtGT applies the GT predicate on the "analyzed_at" field.
func AnalyzedAtGT(v time.Time) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGT(FieldAnalyzedAt, v))
}

// AnalyzedAtGTE applies the GTE predicate on the "analyzed_at" field.
func AnalyzedAtGTE(v time.Time) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldGTE(FieldAnalyzedAt, v))
}

// AnalyzedAtLT applies the LT predicate on the "analyzed_at" field.
func AnalyzedAtLT(v time.Time) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLT(FieldAnalyzedAt, v))
}

// AnalyzedAtLTE applies the LTE predicate on the "analyzed_at" field.
func AnalyzedAtLTE(v time.Time) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldLTE(FieldAnalyzedAt, v))
}

// AnalyzedAtIsNil applies the IsNil predicate on the "analyzed_at" field.
func AnalyzedAtIsNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldIsNull(FieldAnalyzedAt))
}

// AnalyzedAtNotNil applies the NotNil predicate on the "analyzed_at" field.
func AnalyzedAtNotNil() predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.FieldNotNull(FieldAnalyzedAt))
}

// HasChunks applies the HasEdge predicate on the "chunks" edge.
func HasChunks() predicate.TeamParticipation {
	return predicate.TeamParticipation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChunksTable, ChunksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunksWith applies the HasEdge predicate on the "chunks" edge with a given conditions (other predicates).
func HasChunksWith(preds ...predicate.AnalyzedChunk) predicate.TeamParticipation {
	return predicate.TeamParticipation(func(s *sql.Selector) {
		step := newChunksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TeamParticipation) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TeamParticipation) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TeamParticipation) predicate.TeamParticipation {
	return predicate.TeamParticipation(sql.NotPredicates(p))
}
