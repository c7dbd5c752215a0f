package strategy

import (
	"testing"

	"github.com/abhisek/itemforge/internal/request"
)

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"easy", "easy"},
		{"Very Easy", "easy"},
		{"beginner friendly", "easy"},
		{"쉬움", "easy"},
		{"hard", "hard"},
		{"expert level", "hard"},
		{"어려움", "hard"},
		{"medium", "medium"},
		{"medium-hard", "hard"},
		{"normal", "medium"},
		{"", "medium"},
		{"no idea", "medium"},
	}
	for _, tt := range tests {
		if got := NormalizeDifficulty(tt.in); got != tt.want {
			t.Errorf("NormalizeDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveProblemCount(t *testing.T) {
	if got := ResolveProblemCount(nil); got != DefaultProblemCount {
		t.Errorf("nil count: got %d, want %d", got, DefaultProblemCount)
	}

	n := 25
	if got := ResolveProblemCount(&n); got != 25 {
		t.Errorf("explicit count: got %d, want 25", got)
	}

	invalid := 0
	if got := ResolveProblemCount(&invalid); got != DefaultProblemCount {
		t.Errorf("invalid count: got %d, want %d", got, DefaultProblemCount)
	}
}

func TestResolveIncludeAnswers_ExplicitWins(t *testing.T) {
	no := false
	req := request.CreationRequest{Situation: "school exam prep"}
	if ResolveIncludeAnswers(&no, req) {
		t.Error("explicit false should win over education context")
	}
}

func TestResolveIncludeAnswers_EducationContext(t *testing.T) {
	req := request.CreationRequest{Situation: "university exam review"}
	if !ResolveIncludeAnswers(nil, req) {
		t.Error("education context should default to including answers")
	}

	party := request.CreationRequest{Situation: "birthday party"}
	if ResolveIncludeAnswers(nil, party) {
		t.Error("non-education context should default to excluding answers")
	}
}
