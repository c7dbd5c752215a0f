package strategy

import (
	"strings"

	"github.com/abhisek/itemforge/internal/request"
)

// DefaultProblemCount is used when the caller does not specify a count.
const DefaultProblemCount = 10

// answerableFormats are format descriptions that imply a correct answer
// exists. Matching is by lowercase substring.
var answerableFormats = []string{
	"free-response", "free response", "short answer", "essay",
	"multiple-choice", "multiple choice", "mcq",
	"true/false", "true or false", "ox",
	"ranking", "matching",
	"주관식", "객관식",
}

// educationTokens mark a study/education situation, which also implies
// answers are wanted.
var educationTokens = []string{
	"study", "learn", "school", "class", "lesson", "exam", "test",
	"교육", "학습", "공부", "수업", "시험",
}

// ResolveProblemCount picks the problem count before any oracle call. The
// resolved value is the single source of truth downstream; whatever count
// the oracle suggests is discarded.
func ResolveProblemCount(explicit *int) int {
	if explicit != nil && *explicit >= 1 {
		return *explicit
	}
	return DefaultProblemCount
}

// ResolveIncludeAnswers picks the answer policy before any oracle call:
// the explicit value if given, else true iff a requested format is
// answerable or the situation text carries an education token.
func ResolveIncludeAnswers(explicit *bool, req request.CreationRequest) bool {
	if explicit != nil {
		return *explicit
	}

	for _, f := range req.Formats {
		lowered := strings.ToLower(f)
		for _, a := range answerableFormats {
			if strings.Contains(lowered, a) {
				return true
			}
		}
	}

	situation := strings.ToLower(req.Situation)
	for _, tok := range educationTokens {
		if strings.Contains(situation, tok) {
			return true
		}
	}

	return false
}

var easyVariants = []string{"easy", "simple", "beginner", "쉬움", "쉬운", "쉽"}
var hardVariants = []string{"hard", "difficult", "challeng", "advanced", "expert", "어려"}

// NormalizeDifficulty maps free-text difficulty to easy/medium/hard by
// substring: an easy variant wins first, then a hard variant, else medium.
// The literal "medium" never counts as hard.
func NormalizeDifficulty(text string) string {
	lowered := strings.ToLower(text)

	for _, v := range easyVariants {
		if strings.Contains(lowered, v) {
			return "easy"
		}
	}
	if lowered != "medium" {
		for _, v := range hardVariants {
			if strings.Contains(lowered, v) {
				return "hard"
			}
		}
	}
	return "medium"
}
