// Code generated by ent, DO NOT EDIT.

package pipelinerunevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/itemforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldRunID, v))
}

// ProblemCount applies equality check predicate on the "problem_count" field. It's identical to ProblemCountEQ.
func ProblemCount(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldProblemCount, v))
}

// IncludeAnswers applies equality check predicate on the "include_answers" field. It's identical to IncludeAnswersEQ.
func IncludeAnswers(v bool) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldIncludeAnswers, v))
}

// Iterations applies equality check predicate on the "iterations" field. It's identical to IterationsEQ.
func Iterations(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldIterations, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v float64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldFinalScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldPassed, v))
}

// Degraded applies equality check predicate on the "degraded" field. It's identical to DegradedEQ.
func Degraded(v bool) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldDegraded, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldDurationMs, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContainsFold(FieldRunID, v))
}

// ProblemCountEQ applies the EQ predicate on the "problem_count" field.
func ProblemCountEQ(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldProblemCount, v))
}

// ProblemCountNEQ applies the NEQ predicate on the "problem_count" field.
func ProblemCountNEQ(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldProblemCount, v))
}

// ProblemCountIn applies the In predicate on the "problem_count" field.
func ProblemCountIn(vs ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldProblemCount, vs...))
}

// ProblemCountNotIn applies the NotIn predicate on the "problem_count" field.
func ProblemCountNotIn(vs ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldProblemCount, vs...))
}

// ProblemCountGT applies the GT predicate on the "problem_count" field.
func ProblemCountGT(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldProblemCount, v))
}

// ProblemCountGTE applies the GTE predicate on the "problem_count" field.
func ProblemCountGTE(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldProblemCount, v))
}

// ProblemCountLT applies the LT predicate on the "problem_count" field.
func ProblemCountLT(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldProblemCount, v))
}

// ProblemCountLTE applies the LTE predicate on the "problem_count" field.
func ProblemCountLTE(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldProblemCount, v))
}

// IncludeAnswersEQ applies the EQ predicate on the "include_answers" field.
func IncludeAnswersEQ(v bool) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldIncludeAnswers, v))
}

// IncludeAnswersNEQ applies the NEQ predicate on the "include_answers" field.
func IncludeAnswersNEQ(v bool) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldIncludeAnswers, v))
}

// IterationsEQ applies the EQ predicate on the "iterations" field.
func IterationsEQ(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldIterations, v))
}

// IterationsNEQ applies the NEQ predicate on the "iterations" field.
func IterationsNEQ(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldIterations, v))
}

// IterationsIn applies the In predicate on the "iterations" field.
func IterationsIn(vs ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldIterations, vs...))
}

// IterationsNotIn applies the NotIn predicate on the "iterations" field.
func IterationsNotIn(vs ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldIterations, vs...))
}

// IterationsGT applies the GT predicate on the "iterations" field.
func IterationsGT(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldIterations, v))
}

// IterationsGTE applies the GTE predicate on the "iterations" field.
func IterationsGTE(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldIterations, v))
}

// IterationsLT applies the LT predicate on the "iterations" field.
func IterationsLT(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldIterations, v))
}

// IterationsLTE applies the LTE predicate on the "iterations" field.
func IterationsLTE(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldIterations, v))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v float64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v float64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...float64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...float64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v float64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v float64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v float64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v float64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldFinalScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldPassed, v))
}

// DegradedEQ applies the EQ predicate on the "degraded" field.
func DegradedEQ(v bool) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldDegraded, v))
}

// DegradedNEQ applies the NEQ predicate on the "degraded" field.
func DegradedNEQ(v bool) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldDegraded, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldDurationMs, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContainsFold(FieldMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineRunEvent) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineRunEvent) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineRunEvent) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.NotPredicates(p))
}
