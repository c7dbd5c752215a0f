// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/itemforge/ent/pipelinerunevent"
)

// PipelineRunEvent is the model entity for the PipelineRunEvent schema.
type PipelineRunEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the pipeline run
	RunID string `json:"run_id,omitempty"`
	// Resolved problem count for the run
	ProblemCount int `json:"problem_count,omitempty"`
	// Resolved answer policy for the run
	IncludeAnswers bool `json:"include_answers,omitempty"`
	// Evaluate/refine iterations executed
	Iterations int `json:"iterations,omitempty"`
	// Overall score of the last evaluation
	FinalScore float64 `json:"final_score,omitempty"`
	// Whether the last evaluation passed
	Passed bool `json:"passed,omitempty"`
	// Whether the run returned a degraded placeholder
	Degraded bool `json:"degraded,omitempty"`
	// Wall-clock duration of the whole run
	DurationMs int64 `json:"duration_ms,omitempty"`
	// Human-readable run outcome
	Message      string `json:"message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineRunEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinerunevent.FieldIncludeAnswers, pipelinerunevent.FieldPassed, pipelinerunevent.FieldDegraded:
			values[i] = new(sql.NullBool)
		case pipelinerunevent.FieldFinalScore:
			values[i] = new(sql.NullFloat64)
		case pipelinerunevent.FieldID, pipelinerunevent.FieldSequence, pipelinerunevent.FieldProblemCount, pipelinerunevent.FieldIterations, pipelinerunevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case pipelinerunevent.FieldRunID, pipelinerunevent.FieldMessage:
			values[i] = new(sql.NullString)
		case pipelinerunevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineRunEvent fields.
func (_m *PipelineRunEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinerunevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pipelinerunevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case pipelinerunevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case pipelinerunevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case pipelinerunevent.FieldProblemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field problem_count", values[i])
			} else if value.Valid {
				_m.ProblemCount = int(value.Int64)
			}
		case pipelinerunevent.FieldIncludeAnswers:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field include_answers", values[i])
			} else if value.Valid {
				_m.IncludeAnswers = value.Bool
			}
		case pipelinerunevent.FieldIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iterations", values[i])
			} else if value.Valid {
				_m.Iterations = int(value.Int64)
			}
		case pipelinerunevent.FieldFinalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_score", values[i])
			} else if value.Valid {
				_m.FinalScore = value.Float64
			}
		case pipelinerunevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case pipelinerunevent.FieldDegraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field degraded", values[i])
			} else if value.Valid {
				_m.Degraded = value.Bool
			}
		case pipelinerunevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case pipelinerunevent.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineRunEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineRunEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineRunEvent.
// Note that you need to call PipelineRunEvent.Unwrap() before calling this method if this PipelineRunEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineRunEvent) Update() *PipelineRunEventUpdateOne {
	return NewPipelineRunEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineRunEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineRunEvent) Unwrap() *PipelineRunEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineRunEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineRunEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineRunEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("problem_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemCount))
	builder.WriteString(", ")
	builder.WriteString("include_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncludeAnswers))
	builder.WriteString(", ")
	builder.WriteString("iterations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iterations))
	builder.WriteString(", ")
	builder.WriteString("final_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalScore))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("degraded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Degraded))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteByte(')')
	return builder.String()
}

// PipelineRunEvents is a parsable slice of PipelineRunEvent.
type PipelineRunEvents []*PipelineRunEvent
