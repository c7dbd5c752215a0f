package strategy

import (
	"fmt"
	"strings"

	"github.com/abhisek/itemforge/internal/classify"
	"github.com/abhisek/itemforge/internal/request"
)

// Fallback builds a fully deterministic strategy when the oracle is
// unavailable: one equal-weight bucket per requested format/topic,
// substring-normalized difficulty, and tags synthesized from the
// request's own fields.
func Fallback(req request.CreationRequest, problemCount int, includeAnswers bool) Strategy {
	strat := Strategy{
		Summary: fmt.Sprintf("%s item set covering %s",
			capitalize(NormalizeDifficulty(req.Difficulty)),
			strings.Join(req.Topics, ", ")),
		PrimaryGoal:             "Cover the requested topics in the requested formats",
		ContentType:             "quiz",
		RecommendedProblemCount: problemCount,
		IncludeAnswers:          includeAnswers,
		FormatPlan:              fallbackFormatPlan(req),
		TopicPlan:               fallbackTopicPlan(req),
		Difficulty: Difficulty{
			UserDifficulty: req.Difficulty,
			Normalized:     NormalizeDifficulty(req.Difficulty),
		},
		SuggestedTags: classify.SynthesizeTags(req),
		Provenance:    classify.ProvenanceHeuristic,
	}

	strat.FormatPlan = AllocateTargets(NormalizeWeights(strat.FormatPlan), problemCount)
	strat.TopicPlan = NormalizeWeights(strat.TopicPlan)

	return strat
}

// fallbackFormatPlan builds one equal-weight bucket per requested format.
func fallbackFormatPlan(req request.CreationRequest) []PlanItem {
	formats := req.Formats
	if len(formats) == 0 {
		formats = []string{"multiple-choice"}
	}

	out := make([]PlanItem, len(formats))
	for i, f := range formats {
		out[i] = PlanItem{
			Label:     f,
			Weight:    1,
			ItemType:  guessItemType(f),
			Rationale: "requested format",
		}
	}
	return out
}

// fallbackTopicPlan builds one equal-weight bucket per requested topic.
func fallbackTopicPlan(req request.CreationRequest) []PlanItem {
	topics := req.Topics
	if len(topics) == 0 {
		topics = []string{"general"}
	}

	out := make([]PlanItem, len(topics))
	for i, t := range topics {
		out[i] = PlanItem{
			Label:     t,
			Weight:    1,
			Rationale: "requested topic",
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
