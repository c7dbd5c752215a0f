package compose

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/strategy"
)

func composeStrategy() strategy.Strategy {
	return strategy.Strategy{
		Summary:                 "Movie trivia night",
		PrimaryGoal:             "entertain",
		RecommendedProblemCount: 10,
		FormatPlan: []strategy.PlanItem{
			{Label: "multiple-choice", ItemType: itemset.TypeMCQ, Weight: 0.6, TargetCount: 6},
			{Label: "true/false", ItemType: itemset.TypeOX, Weight: 0.4, TargetCount: 4},
		},
		TopicPlan:     []strategy.PlanItem{{Label: "movies", Weight: 1}},
		Difficulty:    strategy.Difficulty{Normalized: "easy"},
		Constraints:   []string{"no spoilers for recent releases"},
		SuggestedTags: []string{"movies", "trivia"},
	}
}

func TestCompose_DeterministicRender(t *testing.T) {
	c := New(nil, Config{Polish: false})

	req := request.CreationRequest{
		People:   "friends",
		Platform: "kakao",
		Topics:   []string{"movies"},
	}
	pkg := c.Compose(context.Background(), req, composeStrategy(), 10, false)

	for _, want := range []string{
		"exactly 10 quiz items",
		"multiple-choice — 60% (6 items)",
		"true/false — 40% (4 items)",
		"no spoilers for recent releases",
		"movies, trivia",
		"Do not include answers",
	} {
		if !strings.Contains(pkg.Instruction, want) {
			t.Errorf("instruction missing %q", want)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(pkg.Instruction), jsonOnlyDirective) {
		t.Error("instruction must end with the JSON-only directive")
	}
	if pkg.Polished {
		t.Error("no polish pass ran")
	}
}

func TestCompose_PolishFailureKeepsDeterministicText(t *testing.T) {
	// Empty mock: the polish call fails.
	c := New(oracle.NewMockProvider(), DefaultConfig())

	pkg := c.Compose(context.Background(), request.CreationRequest{}, composeStrategy(), 10, true)

	if pkg.Polished {
		t.Error("failed polish must not be marked polished")
	}
	if !strings.Contains(pkg.Instruction, jsonOnlyDirective) {
		t.Error("instruction lost the JSON-only directive")
	}
	if !strings.Contains(pkg.Instruction, "Every item must carry its answer.") {
		t.Error("answer policy line missing")
	}
}

func TestCompose_PolishKeepsDirective(t *testing.T) {
	raw := []byte(`{"polished":"A nicer instruction without the closing line."}`)
	c := New(oracle.NewMockProvider(oracle.MockResponse{Content: raw}), DefaultConfig())

	pkg := c.Compose(context.Background(), request.CreationRequest{}, composeStrategy(), 10, false)

	if !pkg.Polished {
		t.Error("successful polish must be marked")
	}
	if !strings.Contains(pkg.Instruction, jsonOnlyDirective) {
		t.Error("the JSON-only directive must be re-appended after polish")
	}
}
