// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OracleRequestEventsColumns holds the columns for the "oracle_request_events" table.
	OracleRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// OracleRequestEventsTable holds the schema information for the "oracle_request_events" table.
	OracleRequestEventsTable = &schema.Table{
		Name:       "oracle_request_events",
		Columns:    OracleRequestEventsColumns,
		PrimaryKey: []*schema.Column{OracleRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oraclerequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[1]},
			},
			{
				Name:    "oraclerequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[2]},
			},
			{
				Name:    "oraclerequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[3]},
			},
			{
				Name:    "oraclerequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[5]},
			},
			{
				Name:    "oraclerequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[9]},
			},
		},
	}
	// PipelineRunEventsColumns holds the columns for the "pipeline_run_events" table.
	PipelineRunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "problem_count", Type: field.TypeInt},
		{Name: "include_answers", Type: field.TypeBool},
		{Name: "iterations", Type: field.TypeInt, Default: 0},
		{Name: "final_score", Type: field.TypeFloat64, Default: 0},
		{Name: "passed", Type: field.TypeBool},
		{Name: "degraded", Type: field.TypeBool},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "message", Type: field.TypeString, Default: ""},
	}
	// PipelineRunEventsTable holds the schema information for the "pipeline_run_events" table.
	PipelineRunEventsTable = &schema.Table{
		Name:       "pipeline_run_events",
		Columns:    PipelineRunEventsColumns,
		PrimaryKey: []*schema.Column{PipelineRunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerunevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunEventsColumns[1]},
			},
			{
				Name:    "pipelinerunevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunEventsColumns[2]},
			},
			{
				Name:    "pipelinerunevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunEventsColumns[3]},
			},
			{
				Name:    "pipelinerunevent_degraded",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OracleRequestEventsTable,
		PipelineRunEventsTable,
	}
)

func init() {
}
