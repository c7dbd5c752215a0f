package classify

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/itemforge/internal/oracle"
)

func TestClassify_TotalWithFailingOracle(t *testing.T) {
	// Empty mock: every oracle call fails.
	unit := NewAgeBandUnit(oracle.NewMockProvider())

	inputs := []string{"", "   ", "quiz for my coworkers", "초등학교 3학년"}
	for _, input := range inputs {
		res := unit.Classify(context.Background(), input)
		if res.Primary == "" {
			t.Errorf("input %q: primary label is empty", input)
		}
		if res.Provenance != ProvenanceHeuristic {
			t.Errorf("input %q: got provenance %q, want heuristic", input, res.Provenance)
		}
	}
}

func TestClassify_TotalWithNilProvider(t *testing.T) {
	unit := NewAgeBandUnit(nil)
	res := unit.Classify(context.Background(), "anything")
	if res.Primary == "" {
		t.Error("primary label is empty")
	}
}

func TestClassify_KeywordFallbackFirstMatchWins(t *testing.T) {
	unit := NewAgeBandUnit(oracle.NewMockProvider())
	res := unit.Classify(context.Background(), "a quiz for high school seniors")
	if res.Primary != AgeHighSchool {
		t.Errorf("got %q, want %q", res.Primary, AgeHighSchool)
	}
}

func TestClassify_FallbackDefault(t *testing.T) {
	unit := NewAgeBandUnit(oracle.NewMockProvider())
	res := unit.Classify(context.Background(), "nothing age related here")
	if res.Primary != AgeAdult {
		t.Errorf("got %q, want default %q", res.Primary, AgeAdult)
	}
}

func TestClassify_OracleLabelOutsideVocabularyCoerced(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"primary":    "space-alien",
		"secondary":  []string{"college", "not-a-band"},
		"rationale":  "made up",
		"confidence": 0.9,
	})
	unit := NewAgeBandUnit(oracle.NewMockProvider(oracle.MockResponse{Content: raw}))

	res := unit.Classify(context.Background(), "whatever")
	if res.Primary != AgeAdult {
		t.Errorf("got %q, want coerced default %q", res.Primary, AgeAdult)
	}
	for _, s := range res.Secondary {
		if s != AgeCollege {
			t.Errorf("invalid secondary label %q survived", s)
		}
	}
}

func TestClassify_OraclePrimaryAccepted(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"primary":    "middle-school",
		"confidence": 0.8,
	})
	unit := NewAgeBandUnit(oracle.NewMockProvider(oracle.MockResponse{Content: raw}))

	res := unit.Classify(context.Background(), "8th graders")
	if res.Primary != AgeMiddleSchool {
		t.Errorf("got %q, want %q", res.Primary, AgeMiddleSchool)
	}
	if res.Provenance != ProvenanceOracle {
		t.Errorf("got provenance %q, want oracle", res.Provenance)
	}
}

func TestDifficultyClassify_FallbackAccuracyMidpoint(t *testing.T) {
	unit := NewDifficultyUnit(oracle.NewMockProvider())
	res := unit.Classify(context.Background(), "very easy warm-up")
	if res.ExpectedAccuracy <= 0 || res.ExpectedAccuracy > 1 {
		t.Errorf("expected accuracy out of range: %f", res.ExpectedAccuracy)
	}
	if res.Provenance != ProvenanceHeuristic {
		t.Errorf("got provenance %q, want heuristic", res.Provenance)
	}
}

func TestTopicClassify_InvalidSubtopicCoerced(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"parent":     "science",
		"subtopic":   "quantum-gardening",
		"rationale":  "",
		"confidence": 0.7,
	})
	unit := NewTopicUnit(oracle.NewMockProvider(oracle.MockResponse{Content: raw}))

	res := unit.Classify(context.Background(), "physics quiz")
	if res.Parent != TopicScience {
		t.Errorf("got parent %q, want science", res.Parent)
	}
	valid := false
	for _, sub := range topicTaxonomy[TopicScience] {
		if res.Subtopic == sub {
			valid = true
		}
	}
	if !valid {
		t.Errorf("subtopic %q is not in the science taxonomy", res.Subtopic)
	}
}
