package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter oracle events by purpose ("" = all)
}

// OracleRequestEventData captures one oracle API call.
type OracleRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// OracleRequestEvent is a stored oracle call record.
type OracleRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	OracleRequestEventData
}

// PipelineRunEventData captures the outcome of one pipeline run.
type PipelineRunEventData struct {
	RunID          string
	ProblemCount   int
	IncludeAnswers bool
	Iterations     int
	FinalScore     float64
	Passed         bool
	Degraded       bool
	DurationMs     int64
	Message        string
}

// EventRepo provides append and query access to the event trail.
type EventRepo interface {
	// AppendOracleRequest records one oracle API call.
	AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error

	// AppendPipelineRun records the outcome of one pipeline run.
	AppendPipelineRun(ctx context.Context, data PipelineRunEventData) error

	// QueryOracleEvents returns oracle call records, newest first.
	QueryOracleEvents(ctx context.Context, opts QueryOpts) ([]OracleRequestEvent, error)

	// GetOracleEvent returns one oracle call record by ID, or nil.
	GetOracleEvent(ctx context.Context, id int) (*OracleRequestEvent, error)
}
