// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/itemforge/ent/pipelinerunevent"
)

// PipelineRunEventCreate is the builder for creating a PipelineRunEvent entity.
type PipelineRunEventCreate struct {
	config
	mutation *PipelineRunEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PipelineRunEventCreate) SetSequence(v int64) *PipelineRunEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PipelineRunEventCreate) SetTimestamp(v time.Time) *PipelineRunEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableTimestamp(v *time.Time) *PipelineRunEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *PipelineRunEventCreate) SetRunID(v string) *PipelineRunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetProblemCount sets the "problem_count" field.
func (_c *PipelineRunEventCreate) SetProblemCount(v int) *PipelineRunEventCreate {
	_c.mutation.SetProblemCount(v)
	return _c
}

// SetIncludeAnswers sets the "include_answers" field.
func (_c *PipelineRunEventCreate) SetIncludeAnswers(v bool) *PipelineRunEventCreate {
	_c.mutation.SetIncludeAnswers(v)
	return _c
}

// SetIterations sets the "iterations" field.
func (_c *PipelineRunEventCreate) SetIterations(v int) *PipelineRunEventCreate {
	_c.mutation.SetIterations(v)
	return _c
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableIterations(v *int) *PipelineRunEventCreate {
	if v != nil {
		_c.SetIterations(*v)
	}
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *PipelineRunEventCreate) SetFinalScore(v float64) *PipelineRunEventCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableFinalScore(v *float64) *PipelineRunEventCreate {
	if v != nil {
		_c.SetFinalScore(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *PipelineRunEventCreate) SetPassed(v bool) *PipelineRunEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetDegraded sets the "degraded" field.
func (_c *PipelineRunEventCreate) SetDegraded(v bool) *PipelineRunEventCreate {
	_c.mutation.SetDegraded(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *PipelineRunEventCreate) SetDurationMs(v int64) *PipelineRunEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableDurationMs(v *int64) *PipelineRunEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *PipelineRunEventCreate) SetMessage(v string) *PipelineRunEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableMessage(v *string) *PipelineRunEventCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// Mutation returns the PipelineRunEventMutation object of the builder.
func (_c *PipelineRunEventCreate) Mutation() *PipelineRunEventMutation {
	return _c.mutation
}

// Save creates the PipelineRunEvent in the database.
func (_c *PipelineRunEventCreate) Save(ctx context.Context) (*PipelineRunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunEventCreate) SaveX(ctx context.Context) *PipelineRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pipelinerunevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Iterations(); !ok {
		v := pipelinerunevent.DefaultIterations
		_c.mutation.SetIterations(v)
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		v := pipelinerunevent.DefaultFinalScore
		_c.mutation.SetFinalScore(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := pipelinerunevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Message(); !ok {
		v := pipelinerunevent.DefaultMessage
		_c.mutation.SetMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PipelineRunEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PipelineRunEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "PipelineRunEvent.run_id"`)}
	}
	if _, ok := _c.mutation.ProblemCount(); !ok {
		return &ValidationError{Name: "problem_count", err: errors.New(`ent: missing required field "PipelineRunEvent.problem_count"`)}
	}
	if _, ok := _c.mutation.IncludeAnswers(); !ok {
		return &ValidationError{Name: "include_answers", err: errors.New(`ent: missing required field "PipelineRunEvent.include_answers"`)}
	}
	if _, ok := _c.mutation.Iterations(); !ok {
		return &ValidationError{Name: "iterations", err: errors.New(`ent: missing required field "PipelineRunEvent.iterations"`)}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "PipelineRunEvent.final_score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "PipelineRunEvent.passed"`)}
	}
	if _, ok := _c.mutation.Degraded(); !ok {
		return &ValidationError{Name: "degraded", err: errors.New(`ent: missing required field "PipelineRunEvent.degraded"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "PipelineRunEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "PipelineRunEvent.message"`)}
	}
	return nil
}

func (_c *PipelineRunEventCreate) sqlSave(ctx context.Context) (*PipelineRunEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunEventCreate) createSpec() (*PipelineRunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerunevent.Table, sqlgraph.NewFieldSpec(pipelinerunevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pipelinerunevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pipelinerunevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(pipelinerunevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ProblemCount(); ok {
		_spec.SetField(pipelinerunevent.FieldProblemCount, field.TypeInt, value)
		_node.ProblemCount = value
	}
	if value, ok := _c.mutation.IncludeAnswers(); ok {
		_spec.SetField(pipelinerunevent.FieldIncludeAnswers, field.TypeBool, value)
		_node.IncludeAnswers = value
	}
	if value, ok := _c.mutation.Iterations(); ok {
		_spec.SetField(pipelinerunevent.FieldIterations, field.TypeInt, value)
		_node.Iterations = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(pipelinerunevent.FieldFinalScore, field.TypeFloat64, value)
		_node.FinalScore = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(pipelinerunevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Degraded(); ok {
		_spec.SetField(pipelinerunevent.FieldDegraded, field.TypeBool, value)
		_node.Degraded = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(pipelinerunevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	return _node, _spec
}

// PipelineRunEventCreateBulk is the builder for creating many PipelineRunEvent entities in bulk.
type PipelineRunEventCreateBulk struct {
	config
	err      error
	builders []*PipelineRunEventCreate
}

// Save creates the PipelineRunEvent entities in the database.
func (_c *PipelineRunEventCreateBulk) Save(ctx context.Context) ([]*PipelineRunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PipelineRunEventCreateBulk) SaveX(ctx context.Context) []*PipelineRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
