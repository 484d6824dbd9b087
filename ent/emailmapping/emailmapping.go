// Code generated by ent, DO NOT EDIT.

package emailmapping

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the emailmapping type in the database.
	Label = "email_mapping"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExerciseID holds the string denoting the exercise_id field in the database.
	FieldExerciseID = "exercise_id"
	// FieldGitEmail holds the string denoting the git_email field in the database.
	FieldGitEmail = "git_email"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldStudentName holds the string denoting the student_name field in the database.
	FieldStudentName = "student_name"
	// Table holds the table name of the emailmapping in the database.
	Table = "email_mappings"
)

// Columns holds all SQL columns for emailmapping fields.
var Columns = []string{
	FieldID,
	FieldExerciseID,
	FieldGitEmail,
	FieldStudentID,
	FieldStudentName,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the EmailMapping queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExerciseID orders the results by the exercise_id field.
func ByExerciseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseID, opts...).ToFunc()
}

// ByGitEmail orders the results by the git_email field.
func ByGitEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGitEmail, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByStudentName orders the results by the student_name field.
func ByStudentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentName, opts...).ToFunc()
}
