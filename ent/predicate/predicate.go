// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// OracleRequestEvent is the predicate function for oraclerequestevent builders.
type OracleRequestEvent func(*sql.Selector)

// PipelineRunEvent is the predicate function for pipelinerunevent builders.
type PipelineRunEvent func(*sql.Selector)
