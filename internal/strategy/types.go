// Package strategy derives the weighted generation plan that steers item
// set generation: format and topic allocations, difficulty, answer policy
// and tags. The plan is computed once per run.
package strategy

import (
	"github.com/abhisek/itemforge/internal/classify"
	"github.com/abhisek/itemforge/internal/itemset"
)

// PlanItem is one labeled allocation bucket.
type PlanItem struct {
	Label string `json:"label"`

	// Weight is the normalized share in [0,1]. After NormalizeWeights the
	// weights of a plan sum to 1 (to 4 decimals).
	Weight float64 `json:"weight"`

	// TargetCount is the integer item budget for this bucket. Set by
	// AllocateTargets for format plans; zero for topic plans.
	TargetCount int `json:"targetCount,omitempty"`

	// ItemType is the item type this bucket maps to, when known.
	ItemType itemset.Type `json:"itemType,omitempty"`

	Rationale string `json:"rationale,omitempty"`
}

// Difficulty pairs the requester's free-text difficulty with its
// normalized form.
type Difficulty struct {
	UserDifficulty string `json:"userDifficulty"`

	// Normalized is one of "easy", "medium", "hard".
	Normalized string `json:"normalized"`
}

// Strategy is the generation plan for one run.
//
// Invariants: FormatPlan and TopicPlan are non-empty; format weights sum
// to 1 (to 4 decimals); format target counts sum to
// RecommendedProblemCount exactly; SuggestedTags is non-empty.
type Strategy struct {
	Summary                 string     `json:"summary"`
	PrimaryGoal             string     `json:"primaryGoal"`
	ContentType             string     `json:"contentType"`
	RecommendedProblemCount int        `json:"recommendedProblemCount"`
	IncludeAnswers          bool       `json:"includeAnswers"`
	FormatPlan              []PlanItem `json:"formatPlan"`
	TopicPlan               []PlanItem `json:"topicPlan"`
	Difficulty              Difficulty `json:"difficulty"`
	Constraints             []string   `json:"constraints,omitempty"`
	Opportunities           []string   `json:"opportunities,omitempty"`
	SuggestedTags           []string   `json:"suggestedTags"`

	// Provenance records whether the oracle or the heuristic fallback
	// produced this plan.
	Provenance classify.Provenance `json:"provenance"`
}
