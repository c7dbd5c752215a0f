// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/itemforge/ent/oraclerequestevent"
	"github.com/abhisek/itemforge/ent/pipelinerunevent"
	"github.com/abhisek/itemforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	oraclerequesteventMixin := schema.OracleRequestEvent{}.Mixin()
	oraclerequesteventMixinFields0 := oraclerequesteventMixin[0].Fields()
	_ = oraclerequesteventMixinFields0
	oraclerequesteventFields := schema.OracleRequestEvent{}.Fields()
	_ = oraclerequesteventFields
	// oraclerequesteventDescTimestamp is the schema descriptor for timestamp field.
	oraclerequesteventDescTimestamp := oraclerequesteventMixinFields0[1].Descriptor()
	// oraclerequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	oraclerequestevent.DefaultTimestamp = oraclerequesteventDescTimestamp.Default.(func() time.Time)
	// oraclerequesteventDescInputTokens is the schema descriptor for input_tokens field.
	oraclerequesteventDescInputTokens := oraclerequesteventFields[3].Descriptor()
	// oraclerequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	oraclerequestevent.DefaultInputTokens = oraclerequesteventDescInputTokens.Default.(int)
	// oraclerequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	oraclerequesteventDescOutputTokens := oraclerequesteventFields[4].Descriptor()
	// oraclerequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	oraclerequestevent.DefaultOutputTokens = oraclerequesteventDescOutputTokens.Default.(int)
	// oraclerequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	oraclerequesteventDescLatencyMs := oraclerequesteventFields[5].Descriptor()
	// oraclerequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	oraclerequestevent.DefaultLatencyMs = oraclerequesteventDescLatencyMs.Default.(int64)
	// oraclerequesteventDescErrorMessage is the schema descriptor for error_message field.
	oraclerequesteventDescErrorMessage := oraclerequesteventFields[7].Descriptor()
	// oraclerequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	oraclerequestevent.DefaultErrorMessage = oraclerequesteventDescErrorMessage.Default.(string)
	// oraclerequesteventDescRequestBody is the schema descriptor for request_body field.
	oraclerequesteventDescRequestBody := oraclerequesteventFields[8].Descriptor()
	// oraclerequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	oraclerequestevent.DefaultRequestBody = oraclerequesteventDescRequestBody.Default.(string)
	// oraclerequesteventDescResponseBody is the schema descriptor for response_body field.
	oraclerequesteventDescResponseBody := oraclerequesteventFields[9].Descriptor()
	// oraclerequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	oraclerequestevent.DefaultResponseBody = oraclerequesteventDescResponseBody.Default.(string)
	pipelineruneventMixin := schema.PipelineRunEvent{}.Mixin()
	pipelineruneventMixinFields0 := pipelineruneventMixin[0].Fields()
	_ = pipelineruneventMixinFields0
	pipelineruneventFields := schema.PipelineRunEvent{}.Fields()
	_ = pipelineruneventFields
	// pipelineruneventDescTimestamp is the schema descriptor for timestamp field.
	pipelineruneventDescTimestamp := pipelineruneventMixinFields0[1].Descriptor()
	// pipelinerunevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pipelinerunevent.DefaultTimestamp = pipelineruneventDescTimestamp.Default.(func() time.Time)
	// pipelineruneventDescIterations is the schema descriptor for iterations field.
	pipelineruneventDescIterations := pipelineruneventFields[3].Descriptor()
	// pipelinerunevent.DefaultIterations holds the default value on creation for the iterations field.
	pipelinerunevent.DefaultIterations = pipelineruneventDescIterations.Default.(int)
	// pipelineruneventDescFinalScore is the schema descriptor for final_score field.
	pipelineruneventDescFinalScore := pipelineruneventFields[4].Descriptor()
	// pipelinerunevent.DefaultFinalScore holds the default value on creation for the final_score field.
	pipelinerunevent.DefaultFinalScore = pipelineruneventDescFinalScore.Default.(float64)
	// pipelineruneventDescDurationMs is the schema descriptor for duration_ms field.
	pipelineruneventDescDurationMs := pipelineruneventFields[7].Descriptor()
	// pipelinerunevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	pipelinerunevent.DefaultDurationMs = pipelineruneventDescDurationMs.Default.(int64)
	// pipelineruneventDescMessage is the schema descriptor for message field.
	pipelineruneventDescMessage := pipelineruneventFields[8].Descriptor()
	// pipelinerunevent.DefaultMessage holds the default value on creation for the message field.
	pipelinerunevent.DefaultMessage = pipelineruneventDescMessage.Default.(string)
}
