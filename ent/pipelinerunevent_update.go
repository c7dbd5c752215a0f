// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/itemforge/ent/pipelinerunevent"
	"github.com/abhisek/itemforge/ent/predicate"
)

// PipelineRunEventUpdate is the builder for updating PipelineRunEvent entities.
type PipelineRunEventUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunEventMutation
}

// Where appends a list predicates to the PipelineRunEventUpdate builder.
func (_u *PipelineRunEventUpdate) Where(ps ...predicate.PipelineRunEvent) *PipelineRunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *PipelineRunEventUpdate) SetRunID(v string) *PipelineRunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableRunID(v *string) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetProblemCount sets the "problem_count" field.
func (_u *PipelineRunEventUpdate) SetProblemCount(v int) *PipelineRunEventUpdate {
	_u.mutation.ResetProblemCount()
	_u.mutation.SetProblemCount(v)
	return _u
}

// SetNillableProblemCount sets the "problem_count" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableProblemCount(v *int) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetProblemCount(*v)
	}
	return _u
}

// AddProblemCount adds value to the "problem_count" field.
func (_u *PipelineRunEventUpdate) AddProblemCount(v int) *PipelineRunEventUpdate {
	_u.mutation.AddProblemCount(v)
	return _u
}

// SetIncludeAnswers sets the "include_answers" field.
func (_u *PipelineRunEventUpdate) SetIncludeAnswers(v bool) *PipelineRunEventUpdate {
	_u.mutation.SetIncludeAnswers(v)
	return _u
}

// SetNillableIncludeAnswers sets the "include_answers" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableIncludeAnswers(v *bool) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetIncludeAnswers(*v)
	}
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *PipelineRunEventUpdate) SetIterations(v int) *PipelineRunEventUpdate {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableIterations(v *int) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *PipelineRunEventUpdate) AddIterations(v int) *PipelineRunEventUpdate {
	_u.mutation.AddIterations(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *PipelineRunEventUpdate) SetFinalScore(v float64) *PipelineRunEventUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableFinalScore(v *float64) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *PipelineRunEventUpdate) AddFinalScore(v float64) *PipelineRunEventUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *PipelineRunEventUpdate) SetPassed(v bool) *PipelineRunEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillablePassed(v *bool) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *PipelineRunEventUpdate) SetDegraded(v bool) *PipelineRunEventUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableDegraded(v *bool) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PipelineRunEventUpdate) SetDurationMs(v int64) *PipelineRunEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableDurationMs(v *int64) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PipelineRunEventUpdate) AddDurationMs(v int64) *PipelineRunEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *PipelineRunEventUpdate) SetMessage(v string) *PipelineRunEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableMessage(v *string) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// Mutation returns the PipelineRunEventMutation object of the builder.
func (_u *PipelineRunEventUpdate) Mutation() *PipelineRunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PipelineRunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pipelinerunevent.Table, pipelinerunevent.Columns, sqlgraph.NewFieldSpec(pipelinerunevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(pipelinerunevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemCount(); ok {
		_spec.SetField(pipelinerunevent.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemCount(); ok {
		_spec.AddField(pipelinerunevent.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncludeAnswers(); ok {
		_spec.SetField(pipelinerunevent.FieldIncludeAnswers, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(pipelinerunevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(pipelinerunevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(pipelinerunevent.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(pipelinerunevent.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(pipelinerunevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(pipelinerunevent.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(pipelinerunevent.FieldMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunEventUpdateOne is the builder for updating a single PipelineRunEvent entity.
type PipelineRunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *PipelineRunEventUpdateOne) SetRunID(v string) *PipelineRunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableRunID(v *string) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetProblemCount sets the "problem_count" field.
func (_u *PipelineRunEventUpdateOne) SetProblemCount(v int) *PipelineRunEventUpdateOne {
	_u.mutation.ResetProblemCount()
	_u.mutation.SetProblemCount(v)
	return _u
}

// SetNillableProblemCount sets the "problem_count" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableProblemCount(v *int) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetProblemCount(*v)
	}
	return _u
}

// AddProblemCount adds value to the "problem_count" field.
func (_u *PipelineRunEventUpdateOne) AddProblemCount(v int) *PipelineRunEventUpdateOne {
	_u.mutation.AddProblemCount(v)
	return _u
}

// SetIncludeAnswers sets the "include_answers" field.
func (_u *PipelineRunEventUpdateOne) SetIncludeAnswers(v bool) *PipelineRunEventUpdateOne {
	_u.mutation.SetIncludeAnswers(v)
	return _u
}

// SetNillableIncludeAnswers sets the "include_answers" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableIncludeAnswers(v *bool) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetIncludeAnswers(*v)
	}
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *PipelineRunEventUpdateOne) SetIterations(v int) *PipelineRunEventUpdateOne {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableIterations(v *int) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *PipelineRunEventUpdateOne) AddIterations(v int) *PipelineRunEventUpdateOne {
	_u.mutation.AddIterations(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *PipelineRunEventUpdateOne) SetFinalScore(v float64) *PipelineRunEventUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableFinalScore(v *float64) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *PipelineRunEventUpdateOne) AddFinalScore(v float64) *PipelineRunEventUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *PipelineRunEventUpdateOne) SetPassed(v bool) *PipelineRunEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillablePassed(v *bool) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *PipelineRunEventUpdateOne) SetDegraded(v bool) *PipelineRunEventUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableDegraded(v *bool) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PipelineRunEventUpdateOne) SetDurationMs(v int64) *PipelineRunEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableDurationMs(v *int64) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PipelineRunEventUpdateOne) AddDurationMs(v int64) *PipelineRunEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *PipelineRunEventUpdateOne) SetMessage(v string) *PipelineRunEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableMessage(v *string) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// Mutation returns the PipelineRunEventMutation object of the builder.
func (_u *PipelineRunEventUpdateOne) Mutation() *PipelineRunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineRunEventUpdate builder.
func (_u *PipelineRunEventUpdateOne) Where(ps ...predicate.PipelineRunEvent) *PipelineRunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunEventUpdateOne) Select(field string, fields ...string) *PipelineRunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRunEvent entity.
func (_u *PipelineRunEventUpdateOne) Save(ctx context.Context) (*PipelineRunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunEventUpdateOne) SaveX(ctx context.Context) *PipelineRunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PipelineRunEventUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRunEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(pipelinerunevent.Table, pipelinerunevent.Columns, sqlgraph.NewFieldSpec(pipelinerunevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerunevent.FieldID)
		for _, f := range fields {
			if !pipelinerunevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerunevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(pipelinerunevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemCount(); ok {
		_spec.SetField(pipelinerunevent.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemCount(); ok {
		_spec.AddField(pipelinerunevent.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncludeAnswers(); ok {
		_spec.SetField(pipelinerunevent.FieldIncludeAnswers, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(pipelinerunevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(pipelinerunevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(pipelinerunevent.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(pipelinerunevent.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(pipelinerunevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(pipelinerunevent.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(pipelinerunevent.FieldMessage, field.TypeString, value)
	}
	_node = &PipelineRunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
