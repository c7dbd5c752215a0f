package draft

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/abhisek/itemforge/internal/classify"
	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/strategy"
)

func evalStrategy(n int, answers bool) strategy.Strategy {
	return strategy.Strategy{
		RecommendedProblemCount: n,
		IncludeAnswers:          answers,
		ContentType:             "quiz",
		FormatPlan: []strategy.PlanItem{
			{Label: "multiple-choice", ItemType: itemset.TypeMCQ, Weight: 1, TargetCount: n},
		},
		TopicPlan:     []strategy.PlanItem{{Label: "history", Weight: 1}},
		Difficulty:    strategy.Difficulty{Normalized: "medium"},
		SuggestedTags: []string{"history"},
	}
}

func TestEvaluate_FallbackScoreFormula(t *testing.T) {
	// Engineered to produce exactly 2 HIGH + 1 MEDIUM deterministic
	// issues: block count (HIGH), unwanted answer (HIGH), blank question
	// (MEDIUM). Score = 9 - 2*2 - 1 = 4.0.
	strat := evalStrategy(2, false)
	d := itemset.Draft{Blocks: []itemset.Item{{
		Type:    itemset.TypeMCQ,
		Content: itemset.MCQContent{},
		Answer:  itemset.MCQAnswer{ChoiceIDs: []string{"a"}},
	}}}

	e := NewEvaluator(oracle.NewMockProvider(), DefaultEvaluatorConfig())
	eval := e.Evaluate(context.Background(), request.CreationRequest{}, strat, d, 9)

	if math.Abs(eval.OverallScore-4.0) > 1e-9 {
		t.Errorf("got score %f, want 4.0", eval.OverallScore)
	}
	if eval.Pass {
		t.Error("high issues must fail the fallback evaluation")
	}
	if eval.Provenance != classify.ProvenanceHeuristic {
		t.Errorf("got provenance %q, want heuristic", eval.Provenance)
	}
}

func TestEvaluate_FallbackScoreClampedAtThree(t *testing.T) {
	strat := evalStrategy(10, true)
	// Zero-block draft: block count HIGH, ten missing answers are not
	// counted (no blocks), but format coverage misses by 10 > tol 1.
	d := itemset.Draft{}

	e := NewEvaluator(oracle.NewMockProvider(), DefaultEvaluatorConfig())
	eval := e.Evaluate(context.Background(), request.CreationRequest{}, strat, d, 9)

	if eval.OverallScore < 3 || eval.OverallScore > 9.5 {
		t.Errorf("score %f outside [3, 9.5]", eval.OverallScore)
	}
}

func TestEvaluate_FallbackTopicCoverageConservative(t *testing.T) {
	strat := evalStrategy(1, false)
	d := itemset.Draft{Blocks: []itemset.Item{{
		Type:     itemset.TypeMCQ,
		Question: "q",
		Content:  itemset.MCQContent{},
	}}}

	e := NewEvaluator(oracle.NewMockProvider(), DefaultEvaluatorConfig())
	eval := e.Evaluate(context.Background(), request.CreationRequest{}, strat, d, 9)

	if len(eval.TopicCoverage) != 1 {
		t.Fatalf("got %d topic coverage entries, want 1", len(eval.TopicCoverage))
	}
	if eval.TopicCoverage[0].MeetsExpectation {
		t.Error("fallback topic coverage must never claim expectations are met")
	}
}

func TestEvaluate_CleanDraftPassesFallback(t *testing.T) {
	strat := evalStrategy(1, false)
	d := itemset.Draft{Blocks: []itemset.Item{{
		Type:     itemset.TypeMCQ,
		Question: "q",
		Content:  itemset.MCQContent{},
	}}}

	e := NewEvaluator(oracle.NewMockProvider(), DefaultEvaluatorConfig())
	eval := e.Evaluate(context.Background(), request.CreationRequest{}, strat, d, 9)

	if len(eval.Issues) != 0 {
		t.Fatalf("unexpected issues: %+v", eval.Issues)
	}
	if !eval.Pass {
		t.Error("issue-free fallback evaluation must pass")
	}
	if math.Abs(eval.OverallScore-9.0) > 1e-9 {
		t.Errorf("got score %f, want 9.0", eval.OverallScore)
	}
}

func TestEvaluate_OracleMergeDedupsAndAppends(t *testing.T) {
	strat := evalStrategy(2, false)
	// One deterministic HIGH issue: block count mismatch.
	d := itemset.Draft{Blocks: []itemset.Item{{
		Type:     itemset.TypeMCQ,
		Question: "q",
		Content:  itemset.MCQContent{},
	}}}

	raw, _ := json.Marshal(map[string]any{
		"overall_score": 9.5,
		"pass":          true,
		"issues": []map[string]any{
			// Exact duplicate of the deterministic finding.
			{"severity": "high", "message": "draft has 1 blocks, target is 2"},
			{"severity": "low", "message": "question 0 could be clearer"},
		},
		"topic_coverage": []map[string]any{
			{"label": "history", "meets_expectation": true},
		},
	})
	e := NewEvaluator(oracle.NewMockProvider(oracle.MockResponse{Content: raw}), DefaultEvaluatorConfig())
	eval := e.Evaluate(context.Background(), request.CreationRequest{}, strat, d, 9)

	if eval.Provenance != classify.ProvenanceOracle {
		t.Fatalf("got provenance %q, want oracle", eval.Provenance)
	}
	if len(eval.Issues) != 2 {
		t.Errorf("got %d issues, want 2 (duplicate deterministic finding folded in)", len(eval.Issues))
	}
	if !eval.Pass {
		t.Error("score 9.5 over threshold 9 with oracle pass=true must pass")
	}
	if len(eval.TopicCoverage) != 1 || !eval.TopicCoverage[0].MeetsExpectation {
		t.Errorf("oracle topic coverage lost: %+v", eval.TopicCoverage)
	}
	if len(eval.FormatCoverage) != 1 {
		t.Errorf("format coverage must be backfilled deterministically, got %+v", eval.FormatCoverage)
	}
}

func TestEvaluate_OraclePassFalseOverridesScore(t *testing.T) {
	strat := evalStrategy(1, false)
	d := itemset.Draft{Blocks: []itemset.Item{{
		Type:     itemset.TypeMCQ,
		Question: "q",
		Content:  itemset.MCQContent{},
	}}}

	raw, _ := json.Marshal(map[string]any{
		"overall_score": 9.8,
		"pass":          false,
		"issues":        []map[string]any{},
	})
	e := NewEvaluator(oracle.NewMockProvider(oracle.MockResponse{Content: raw}), DefaultEvaluatorConfig())
	eval := e.Evaluate(context.Background(), request.CreationRequest{}, strat, d, 9)

	if eval.Pass {
		t.Error("oracle pass=false must fail the draft regardless of score")
	}
}

func TestFormatTolerance(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{1, 1}, {9, 1}, {10, 1}, {20, 2}, {50, 5},
	}
	for _, tt := range tests {
		if got := formatTolerance(tt.n); got != tt.want {
			t.Errorf("formatTolerance(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
