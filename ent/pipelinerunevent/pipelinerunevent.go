// Code generated by ent, DO NOT EDIT.

package pipelinerunevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pipelinerunevent type in the database.
	Label = "pipeline_run_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldProblemCount holds the string denoting the problem_count field in the database.
	FieldProblemCount = "problem_count"
	// FieldIncludeAnswers holds the string denoting the include_answers field in the database.
	FieldIncludeAnswers = "include_answers"
	// FieldIterations holds the string denoting the iterations field in the database.
	FieldIterations = "iterations"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldDegraded holds the string denoting the degraded field in the database.
	FieldDegraded = "degraded"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// Table holds the table name of the pipelinerunevent in the database.
	Table = "pipeline_run_events"
)

// Columns holds all SQL columns for pipelinerunevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldProblemCount,
	FieldIncludeAnswers,
	FieldIterations,
	FieldFinalScore,
	FieldPassed,
	FieldDegraded,
	FieldDurationMs,
	FieldMessage,
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

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultIterations holds the default value on creation for the "iterations" field.
	DefaultIterations int
	// DefaultFinalScore holds the default value on creation for the "final_score" field.
	DefaultFinalScore float64
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
	// DefaultMessage holds the default value on creation for the "message" field.
	DefaultMessage string
)

// OrderOption defines the ordering options for the PipelineRunEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByProblemCount orders the results by the problem_count field.
func ByProblemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemCount, opts...).ToFunc()
}

// ByIncludeAnswers orders the results by the include_answers field.
func ByIncludeAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncludeAnswers, opts...).ToFunc()
}

// ByIterations orders the results by the iterations field.
func ByIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterations, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByDegraded orders the results by the degraded field.
func ByDegraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDegraded, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}
