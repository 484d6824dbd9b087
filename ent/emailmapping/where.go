// Code generated by ent, DO NOT EDIT.

package emailmapping

import (
	"entgo.io/ent/dialect/sql"
	"github.com/fairlens/fairlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLTE(FieldID, id))
}

// ExerciseID applies equality check predicate on the "exercise_id" field. It's identical to ExerciseIDEQ.
func ExerciseID(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldExerciseID, v))
}

// GitEmail applies equality check predicate on the "git_email" field. It's identical to GitEmailEQ.
func GitEmail(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldGitEmail, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldStudentID, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldStudentName, v))
}

// ExerciseIDEQ applies the EQ predicate on the "exercise_id" field.
func ExerciseIDEQ(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldExerciseID, v))
}

// ExerciseIDNEQ applies the NEQ predicate on the "exercise_id" field.
func ExerciseIDNEQ(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNEQ(FieldExerciseID, v))
}

// ExerciseIDIn applies the In predicate on the "exercise_id" field.
func ExerciseIDIn(vs ...int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldIn(FieldExerciseID, vs...))
}

// ExerciseIDNotIn applies the NotIn predicate on the "exercise_id" field.
func ExerciseIDNotIn(vs ...int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNotIn(FieldExerciseID, vs...))
}

// ExerciseIDGT applies the GT predicate on the "exercise_id" field.
func ExerciseIDGT(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGT(FieldExerciseID, v))
}

// ExerciseIDGTE applies the GTE predicate on the "exercise_id" field.
func ExerciseIDGTE(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGTE(FieldExerciseID, v))
}

// ExerciseIDLT applies the LT predicate on the "exercise_id" field.
func ExerciseIDLT(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLT(FieldExerciseID, v))
}

// ExerciseIDLTE applies the LTE predicate on the "exercise_id" field.
func ExerciseIDLTE(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLTE(FieldExerciseID, v))
}

// GitEmailEQ applies the EQ predicate on the "git_email" field.
func GitEmailEQ(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldGitEmail, v))
}

// GitEmailNEQ applies the NEQ predicate on the "git_email" field.
func GitEmailNEQ(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNEQ(FieldGitEmail, v))
}

// GitEmailIn applies the In predicate on the "git_email" field.
func GitEmailIn(vs ...string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldIn(FieldGitEmail, vs...))
}

// GitEmailNotIn applies the NotIn predicate on the "git_email" field.
func GitEmailNotIn(vs ...string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNotIn(FieldGitEmail, vs...))
}

// GitEmailGT applies the GT predicate on the "git_email" field.
func GitEmailGT(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGT(FieldGitEmail, v))
}

// GitEmailGTE applies the GTE predicate on the "git_email" field.
func GitEmailGTE(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGTE(FieldGitEmail, v))
}

// GitEmailLT applies the LT predicate on the "git_email" field.
func GitEmailLT(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLT(FieldGitEmail, v))
}

// GitEmailLTE applies the LTE predicate on the "git_email" field.
func GitEmailLTE(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLTE(FieldGitEmail, v))
}

// GitEmailContains applies the Contains predicate on the "git_email" field.
func GitEmailContains(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldContains(FieldGitEmail, v))
}

// GitEmailHasPrefix applies the HasPrefix predicate on the "git_email" field.
func GitEmailHasPrefix(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldHasPrefix(FieldGitEmail, v))
}

// GitEmailHasSuffix applies the HasSuffix predicate on the "git_email" field.
func GitEmailHasSuffix(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldHasSuffix(FieldGitEmail, v))
}

// GitEmailEqualFold applies the EqualFold predicate on the "git_email" field.
func GitEmailEqualFold(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEqualFold(FieldGitEmail, v))
}

// GitEmailContainsFold applies the ContainsFold predicate on the "git_email" field.
func GitEmailContainsFold(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldContainsFold(FieldGitEmail, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int64) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLTE(FieldStudentID, v))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.EmailMapping {
	return predicate.EmailMapping(sql.FieldContainsFold(FieldStudentName, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailMapping) predicate.EmailMapping {
	return predicate.EmailMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailMapping) predicate.EmailMapping {
	return predicate.EmailMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailMapping) predicate.EmailMapping {
	return predicate.EmailMapping(sql.NotPredicates(p))
}
