package strategy

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/abhisek/itemforge/internal/classify"
	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
)

func TestPlan_FallbackOnOracleFailure(t *testing.T) {
	// Empty mock: every call fails, forcing the heuristic plan.
	provider := oracle.NewMockProvider()
	p := New(provider, DefaultConfig())

	req := request.CreationRequest{
		Formats:    []string{"multiple-choice", "true/false"},
		Topics:     []string{"history"},
		Situation:  "school exam",
		Difficulty: "easy",
	}

	strat := p.Plan(context.Background(), req, nil, nil)

	if strat.Provenance != classify.ProvenanceHeuristic {
		t.Fatalf("got provenance %q, want heuristic", strat.Provenance)
	}
	if len(strat.FormatPlan) != 2 {
		t.Fatalf("got %d format buckets, want 2", len(strat.FormatPlan))
	}
	for i, item := range strat.FormatPlan {
		if math.Abs(item.Weight-0.5) > 1e-3 {
			t.Errorf("bucket %d weight: got %f, want 0.5", i, item.Weight)
		}
	}

	var sum int
	for _, item := range strat.FormatPlan {
		sum += item.TargetCount
	}
	if sum != DefaultProblemCount {
		t.Errorf("targets sum to %d, want %d", sum, DefaultProblemCount)
	}

	if strat.Difficulty.Normalized != "easy" {
		t.Errorf("got difficulty %q, want easy", strat.Difficulty.Normalized)
	}
	if len(strat.SuggestedTags) == 0 {
		t.Error("fallback strategy must carry at least one tag")
	}
}

func TestPlan_OracleCountIsDiscarded(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"summary":                   "A short history quiz",
		"primary_goal":              "test recall",
		"content_type":              "quiz",
		"recommended_problem_count": 42,
		"include_answers":           false,
		"format_plan": []map[string]any{
			{"label": "multiple-choice", "weight": 1, "item_type": "mcq", "rationale": "requested"},
		},
		"topic_plan": []map[string]any{
			{"label": "history", "weight": 1},
		},
		"difficulty":     map[string]any{"user_difficulty": "easy", "normalized": "easy"},
		"suggested_tags": []string{"history"},
	})
	provider := oracle.NewMockProvider(oracle.MockResponse{Content: raw})
	p := New(provider, DefaultConfig())

	n := 5
	answers := true
	strat := p.Plan(context.Background(), request.CreationRequest{
		Formats: []string{"multiple-choice"},
		Topics:  []string{"history"},
	}, &n, &answers)

	if strat.Provenance != classify.ProvenanceOracle {
		t.Fatalf("got provenance %q, want oracle", strat.Provenance)
	}
	if strat.RecommendedProblemCount != 5 {
		t.Errorf("got count %d, want the resolved 5, not the oracle's 42", strat.RecommendedProblemCount)
	}
	if !strat.IncludeAnswers {
		t.Error("resolved answer policy must override the oracle's")
	}

	var sum int
	for _, item := range strat.FormatPlan {
		sum += item.TargetCount
	}
	if sum != 5 {
		t.Errorf("targets sum to %d, want 5", sum)
	}
}

func TestPlan_OracleEmptyPlansBackfilled(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"summary":        "quiz",
		"primary_goal":   "fun",
		"content_type":   "quiz",
		"format_plan":    []map[string]any{},
		"topic_plan":     []map[string]any{},
		"difficulty":     map[string]any{"user_difficulty": "", "normalized": "weird"},
		"suggested_tags": []string{},
	})
	provider := oracle.NewMockProvider(oracle.MockResponse{Content: raw})
	p := New(provider, DefaultConfig())

	strat := p.Plan(context.Background(), request.CreationRequest{
		Formats: []string{"ranking"},
		Topics:  []string{"music"},
	}, nil, nil)

	if len(strat.FormatPlan) == 0 {
		t.Error("empty oracle format plan must be backfilled from the request")
	}
	if len(strat.TopicPlan) == 0 {
		t.Error("empty oracle topic plan must be backfilled from the request")
	}
	if strat.Difficulty.Normalized != "easy" && strat.Difficulty.Normalized != "medium" && strat.Difficulty.Normalized != "hard" {
		t.Errorf("got difficulty %q, want a normalized value", strat.Difficulty.Normalized)
	}
	if len(strat.SuggestedTags) == 0 {
		t.Error("empty oracle tags must be synthesized from the request")
	}
}
