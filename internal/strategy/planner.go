package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/itemforge/internal/classify"
	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
)

// Config controls the planner's oracle calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended planner defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// Planner derives a GenerationStrategy from a creation request.
type Planner struct {
	provider oracle.Provider
	cfg      Config
}

// New creates a Planner. provider may be nil; planning then always uses
// the heuristic fallback.
func New(provider oracle.Provider, cfg Config) *Planner {
	return &Planner{provider: provider, cfg: cfg}
}

const planSystem = `You are a quiz planning assistant. Given a creation request, produce a weighted generation plan.

Rules:
- One format_plan bucket per distinct item format the set should contain.
- One topic_plan bucket per topic the set should cover.
- Weights are relative shares; they will be renormalized, so rough proportions are fine.
- Constraints are hard requirements implied by the request; opportunities are ways to make the set better.
- Suggested tags are short search terms, no # prefix.`

// strategyOutput is the raw oracle response before post-processing.
type strategyOutput struct {
	Summary                 string `json:"summary"`
	PrimaryGoal             string `json:"primary_goal"`
	ContentType             string `json:"content_type"`
	RecommendedProblemCount int    `json:"recommended_problem_count"`
	IncludeAnswers          bool   `json:"include_answers"`
	FormatPlan              []struct {
		Label     string  `json:"label"`
		Weight    float64 `json:"weight"`
		ItemType  string  `json:"item_type"`
		Rationale string  `json:"rationale"`
	} `json:"format_plan"`
	TopicPlan []struct {
		Label     string  `json:"label"`
		Weight    float64 `json:"weight"`
		ItemType  string  `json:"item_type"`
		Rationale string  `json:"rationale"`
	} `json:"topic_plan"`
	Difficulty struct {
		UserDifficulty string `json:"user_difficulty"`
		Normalized     string `json:"normalized"`
	} `json:"difficulty"`
	Constraints   []string `json:"constraints"`
	Opportunities []string `json:"opportunities"`
	SuggestedTags []string `json:"suggested_tags"`
}

// Plan derives the strategy. problemCount and includeAnswers are resolved
// deterministically before the oracle call and re-imposed on its output:
// the oracle's own guesses for those two fields are always discarded.
// Plan is total; oracle failure yields the heuristic fallback plan.
func (p *Planner) Plan(ctx context.Context, req request.CreationRequest, problemCount *int, includeAnswers *bool) Strategy {
	n := ResolveProblemCount(problemCount)
	answers := ResolveIncludeAnswers(includeAnswers, req)

	if p.provider != nil {
		if strat, err := p.planOracle(ctx, req, n, answers); err == nil {
			return strat
		}
	}
	return Fallback(req, n, answers)
}

func (p *Planner) planOracle(ctx context.Context, req request.CreationRequest, n int, answers bool) (Strategy, error) {
	ctx = oracle.WithPurpose(ctx, "strategy")

	resp, err := p.provider.Generate(ctx, oracle.Request{
		System: planSystem,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: renderRequest(req, n, answers)},
		},
		Schema:      StrategySchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return Strategy{}, err
	}

	var raw strategyOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Strategy{}, fmt.Errorf("parse strategy response: %w", err)
	}

	strat := Strategy{
		Summary:     raw.Summary,
		PrimaryGoal: raw.PrimaryGoal,
		ContentType: raw.ContentType,
		// The resolved values win; raw.RecommendedProblemCount and
		// raw.IncludeAnswers are discarded here.
		RecommendedProblemCount: n,
		IncludeAnswers:          answers,
		Constraints:             raw.Constraints,
		Opportunities:           raw.Opportunities,
		Provenance:              classify.ProvenanceOracle,
	}

	for _, f := range raw.FormatPlan {
		strat.FormatPlan = append(strat.FormatPlan, PlanItem{
			Label:     f.Label,
			Weight:    f.Weight,
			ItemType:  coerceItemType(f.ItemType, f.Label),
			Rationale: f.Rationale,
		})
	}
	for _, t := range raw.TopicPlan {
		strat.TopicPlan = append(strat.TopicPlan, PlanItem{
			Label:     t.Label,
			Weight:    t.Weight,
			Rationale: t.Rationale,
		})
	}

	// Oracle output can be structurally valid yet empty; backfill from
	// the request before the math runs.
	if len(strat.FormatPlan) == 0 {
		strat.FormatPlan = fallbackFormatPlan(req)
	}
	if len(strat.TopicPlan) == 0 {
		strat.TopicPlan = fallbackTopicPlan(req)
	}

	strat.FormatPlan = AllocateTargets(NormalizeWeights(strat.FormatPlan), n)
	strat.TopicPlan = NormalizeWeights(strat.TopicPlan)

	strat.Difficulty = Difficulty{
		UserDifficulty: req.Difficulty,
		Normalized:     coerceNormalizedDifficulty(raw.Difficulty.Normalized, req.Difficulty),
	}

	strat.SuggestedTags = classify.SanitizeTags(raw.SuggestedTags)
	if len(strat.SuggestedTags) == 0 {
		strat.SuggestedTags = classify.SynthesizeTags(req)
	}

	return strat, nil
}

// renderRequest formats the creation request for the planning prompt.
func renderRequest(req request.CreationRequest, n int, answers bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Participants: %s\n", req.People)
	fmt.Fprintf(&b, "Situation: %s\n", req.Situation)
	fmt.Fprintf(&b, "Requested formats: %s\n", strings.Join(req.Formats, ", "))
	fmt.Fprintf(&b, "Platform: %s\n", req.Platform)
	fmt.Fprintf(&b, "Age group: %s\n", req.AgeGroup)
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(req.Topics, ", "))
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	if req.Description != "" {
		fmt.Fprintf(&b, "Notes: %s\n", req.Description)
	}
	for k, v := range req.Extra {
		fmt.Fprintf(&b, "%s: %s\n", k, v)
	}
	fmt.Fprintf(&b, "\nThe set will contain exactly %d items. Answers included: %t.\n", n, answers)

	return b.String()
}

// coerceNormalizedDifficulty keeps a valid oracle value and otherwise
// re-derives from the user's text.
func coerceNormalizedDifficulty(v, userText string) string {
	switch v {
	case "easy", "medium", "hard":
		return v
	}
	return NormalizeDifficulty(userText)
}

// coerceItemType validates the oracle's item type, guessing from the
// label when invalid or absent.
func coerceItemType(v, label string) itemset.Type {
	t := itemset.Type(v)
	if itemset.ValidType(t) {
		return t
	}
	return guessItemType(label)
}

// guessItemType maps a free-text format label to an item type.
func guessItemType(label string) itemset.Type {
	lowered := strings.ToLower(label)
	switch {
	case strings.Contains(lowered, "choice") || strings.Contains(lowered, "mcq") || strings.Contains(lowered, "객관식"):
		return itemset.TypeMCQ
	case strings.Contains(lowered, "true") || strings.Contains(lowered, "ox") || strings.Contains(lowered, "o/x"):
		return itemset.TypeOX
	case strings.Contains(lowered, "rank") || strings.Contains(lowered, "order") || strings.Contains(lowered, "순서"):
		return itemset.TypeRanking
	case strings.Contains(lowered, "match") || strings.Contains(lowered, "pair") || strings.Contains(lowered, "짝"):
		return itemset.TypeMatching
	default:
		return itemset.TypeDefault
	}
}
