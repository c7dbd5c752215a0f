package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
)

// purposeProvider serves a canned response per oracle purpose, so the
// concurrent classifier fan-out cannot scramble a FIFO queue. Purposes
// without a canned response fail, forcing that stage onto its fallback.
type purposeProvider struct {
	responses map[string]json.RawMessage
}

func (p *purposeProvider) Generate(ctx context.Context, _ oracle.Request) (*oracle.Response, error) {
	raw, ok := p.responses[oracle.PurposeFrom(ctx)]
	if !ok {
		return nil, &oracle.ErrProviderUnavailable{}
	}
	return &oracle.Response{Content: raw, Model: "test", StopReason: "end"}, nil
}

func (p *purposeProvider) ModelID() string { return "test" }

func testRequest() request.CreationRequest {
	return request.CreationRequest{
		People:     "classmates",
		Situation:  "school exam review",
		Formats:    []string{"true/false"},
		Topics:     []string{"history"},
		Difficulty: "easy",
	}
}

func TestRun_DegradedWhenGenerationAlwaysFails(t *testing.T) {
	// Empty mock: every oracle call fails. The generator produces the
	// zero-block placeholder, validation raises, and the run degrades.
	o := New(oracle.NewMockProvider(), nil)

	result := o.Run(context.Background(), testRequest(), Options{MaxIterations: 1})

	assert.True(t, result.Metadata.Degraded)
	assert.Empty(t, result.ItemSet.Blocks)
	assert.Equal(t, "history 문제집", result.ItemSet.Title)
	assert.NotEmpty(t, result.Message)

	// Exactly one evaluation ran: maxIterations=1 accepts the failing
	// draft without a refinement pass.
	assert.Equal(t, 1, result.Metadata.Iterations)
	require.Len(t, result.Metadata.Evaluations, 1)
	assert.False(t, result.Metadata.Evaluations[0].Pass)
	assert.Empty(t, result.Metadata.Refinements)
}

func TestRun_NilProviderNeverPanics(t *testing.T) {
	o := New(nil, nil)

	result := o.Run(context.Background(), request.CreationRequest{}, Options{})

	assert.True(t, result.Metadata.Degraded)
	assert.Equal(t, "문제집", result.ItemSet.Title)
	assert.NotEmpty(t, result.Metadata.RunID)
}

func TestRun_HappyPath(t *testing.T) {
	strategyJSON, _ := json.Marshal(map[string]any{
		"summary":      "History true/false drill",
		"primary_goal": "recall",
		"content_type": "quiz",
		"format_plan": []map[string]any{
			{"label": "true/false", "weight": 1, "item_type": "ox"},
		},
		"topic_plan":     []map[string]any{{"label": "history", "weight": 1}},
		"difficulty":     map[string]any{"user_difficulty": "easy", "normalized": "easy"},
		"suggested_tags": []string{"history"},
	})
	draftJSON, _ := json.Marshal(map[string]any{
		"title":       "History drill",
		"description": "Two statements",
		"tags":        []string{"history"},
		"blocks": []map[string]any{
			{
				"type": "ox", "question": "The Roman Empire fell in 476 AD.",
				"content": map[string]any{}, "answer": map[string]any{"value": true}, "order": 0,
			},
			{
				"type": "ox", "question": "The Great Wall is in Japan.",
				"content": map[string]any{}, "answer": map[string]any{"value": false}, "order": 1,
			},
		},
	})
	evalJSON, _ := json.Marshal(map[string]any{
		"overall_score": 9.5,
		"pass":          true,
		"issues":        []map[string]any{},
		"topic_coverage": []map[string]any{
			{"label": "history", "meets_expectation": true},
		},
	})

	provider := &purposeProvider{responses: map[string]json.RawMessage{
		"strategy":   strategyJSON,
		"draft-gen":  draftJSON,
		"draft-eval": evalJSON,
	}}
	o := New(provider, nil)

	n := 2
	answers := true
	result := o.Run(context.Background(), testRequest(), Options{
		ProblemCount:   &n,
		IncludeAnswers: &answers,
	})

	require.False(t, result.Metadata.Degraded, "message: %s", result.Message)
	require.Len(t, result.ItemSet.Blocks, 2)
	for i, b := range result.ItemSet.Blocks {
		assert.Equal(t, i, b.Order)
		assert.NotNil(t, b.Answer, "block %d", i)
	}
	assert.Equal(t, "History drill", result.ItemSet.Title)
	assert.Contains(t, result.ItemSet.Tags, "history")

	assert.Equal(t, 1, result.Metadata.Iterations)
	require.Len(t, result.Metadata.Evaluations, 1)
	assert.True(t, result.Metadata.Evaluations[0].Pass)
	assert.NotEmpty(t, result.Metadata.Timings)

	// Classifiers all fell back but still produced labels.
	assert.NotEmpty(t, result.Metadata.Classifications.Tags.Tags)
	assert.NotEmpty(t, result.Metadata.Classifications.AgeBand.Primary)
}

func TestRun_AnswersStrippedWhenExcluded(t *testing.T) {
	strategyJSON, _ := json.Marshal(map[string]any{
		"summary":        "drill",
		"primary_goal":   "recall",
		"content_type":   "quiz",
		"format_plan":    []map[string]any{{"label": "true/false", "weight": 1, "item_type": "ox"}},
		"topic_plan":     []map[string]any{{"label": "history", "weight": 1}},
		"difficulty":     map[string]any{"user_difficulty": "easy", "normalized": "easy"},
		"suggested_tags": []string{"history"},
	})
	// The draft wrongly includes an answer; the finalizer must strip it.
	draftJSON, _ := json.Marshal(map[string]any{
		"title":       "Drill",
		"description": "One statement",
		"tags":        []string{"history"},
		"blocks": []map[string]any{
			{
				"type": "ox", "question": "Napoleon was French.",
				"content": map[string]any{}, "answer": map[string]any{"value": true}, "order": 0,
			},
		},
	})
	evalJSON, _ := json.Marshal(map[string]any{
		"overall_score": 9.5, "pass": true, "issues": []map[string]any{},
	})

	provider := &purposeProvider{responses: map[string]json.RawMessage{
		"strategy": strategyJSON, "draft-gen": draftJSON, "draft-eval": evalJSON,
	}}
	o := New(provider, nil)

	n := 1
	answers := false
	result := o.Run(context.Background(), testRequest(), Options{
		ProblemCount:   &n,
		IncludeAnswers: &answers,
	})

	require.False(t, result.Metadata.Degraded, "message: %s", result.Message)
	require.Len(t, result.ItemSet.Blocks, 1)
	assert.Nil(t, result.ItemSet.Blocks[0].Answer)
}

func TestOptions_Normalized(t *testing.T) {
	big, small := 500, -3
	th := 25.0
	opts := Options{
		ProblemCount:   &big,
		MaxIterations:  9,
		ScoreThreshold: &th,
	}.normalized()

	assert.Equal(t, 50, *opts.ProblemCount)
	assert.Equal(t, 3, opts.MaxIterations)
	assert.Equal(t, 10.0, *opts.ScoreThreshold)

	opts = Options{ProblemCount: &small, MaxIterations: -1}.normalized()
	assert.Equal(t, 1, *opts.ProblemCount)
	assert.Equal(t, 1, opts.MaxIterations)
	assert.Equal(t, 9.0, *opts.ScoreThreshold)

	opts = Options{}.normalized()
	assert.Equal(t, DefaultMaxIterations, opts.MaxIterations)
}
