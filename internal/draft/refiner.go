package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/strategy"
)

// RefinerConfig controls the refinement call.
type RefinerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultRefinerConfig returns recommended refinement defaults.
func DefaultRefinerConfig() RefinerConfig {
	return RefinerConfig{
		MaxTokens:   8192,
		Temperature: 0.4,
	}
}

// Refiner applies targeted edits to a draft based on an evaluation.
type Refiner struct {
	provider oracle.Provider
	cfg      RefinerConfig
}

// NewRefiner creates a Refiner. provider may be nil; refinement is then a
// no-op.
func NewRefiner(provider oracle.Provider, cfg RefinerConfig) *Refiner {
	return &Refiner{provider: provider, cfg: cfg}
}

const refineSystem = `You are a quiz editor. Apply the smallest edits that fix the reported issues. Do not regenerate the set: keep every block that has no issue byte-for-byte, keep the block count, keep the answer policy, keep the ordering. List each edit you made.`

// Refine produces a new draft snapshot with the evaluation's issues
// addressed. The input draft is never mutated. On oracle failure the input
// comes back unchanged with a note, so the loop can keep going.
func (r *Refiner) Refine(ctx context.Context, req request.CreationRequest, strat strategy.Strategy, d itemset.Draft, eval Evaluation, iteration int) (itemset.Draft, []string, []string) {
	if r.provider == nil {
		return d.Clone(), nil, []string{"refinement skipped: no oracle provider configured"}
	}

	ctx = oracle.WithPurpose(ctx, "draft-refine")

	resp, err := r.provider.Generate(ctx, oracle.Request{
		System: refineSystem,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: renderRefinementInput(req, strat, d, eval, iteration)},
		},
		Schema:      refinementSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	})
	if err != nil {
		return d.Clone(), nil, []string{fmt.Sprintf("refinement %d failed: %v; draft kept unchanged", iteration, err)}
	}

	var raw struct {
		Draft          itemset.Draft `json:"draft"`
		AppliedChanges []string      `json:"applied_changes"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return d.Clone(), nil, []string{fmt.Sprintf("refinement %d response did not decode: %v; draft kept unchanged", iteration, err)}
	}

	for i := range raw.Draft.Blocks {
		if raw.Draft.Blocks[i].ID == "" {
			raw.Draft.Blocks[i].ID = uuid.NewString()
		}
	}

	return raw.Draft, raw.AppliedChanges, nil
}

func renderRefinementInput(req request.CreationRequest, strat strategy.Strategy, d itemset.Draft, eval Evaluation, iteration int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Refinement pass %d for a %s set about %s.\n", iteration, strat.Difficulty.Normalized, strings.Join(req.Topics, ", "))
	fmt.Fprintf(&b, "The set must keep exactly %d blocks", strat.RecommendedProblemCount)
	if strat.IncludeAnswers {
		b.WriteString(", each with its answer.\n\n")
	} else {
		b.WriteString(", none with an answer.\n\n")
	}

	fmt.Fprintf(&b, "Current score: %.1f (threshold %.1f).\n", eval.OverallScore, eval.Threshold)

	if len(eval.Issues) > 0 {
		b.WriteString("\nIssues to fix:\n")
		for _, issue := range eval.Issues {
			fmt.Fprintf(&b, "- [%s] %s\n", issue.Severity, issue.Message)
		}
	}
	if len(eval.Suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, s := range eval.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	data, err := json.Marshal(d)
	if err != nil {
		data = []byte("{}")
	}
	b.WriteString("\nCurrent draft:\n")
	b.Write(data)

	return b.String()
}
