package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/itemforge/internal/compose"
	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/strategy"
)

// GeneratorConfig controls the draft generation call.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGeneratorConfig returns recommended generation defaults. Item
// sets are the largest oracle output in a run, so the token ceiling is
// generous.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}

// Generator produces the initial item set draft.
type Generator struct {
	provider oracle.Provider
	cfg      GeneratorConfig
}

// NewGenerator creates a Generator. provider may be nil; generation then
// always yields the degraded placeholder.
func NewGenerator(provider oracle.Provider, cfg GeneratorConfig) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate submits the instruction package and decodes the draft. It never
// fails: on oracle failure or nonconforming output it returns a zero-block
// placeholder derived from the strategy, with a note explaining why, and
// the pipeline carries on. Downstream stages detect the empty draft.
func (g *Generator) Generate(ctx context.Context, pkg compose.Package, strat strategy.Strategy) (itemset.Draft, []string) {
	if g.provider == nil {
		return placeholder(strat), []string{"draft generation skipped: no oracle provider configured"}
	}

	ctx = oracle.WithPurpose(ctx, "draft-gen")

	resp, err := g.provider.Generate(ctx, oracle.Request{
		System: pkg.System,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: pkg.Instruction},
		},
		Schema:      DraftSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return placeholder(strat), []string{fmt.Sprintf("draft generation failed: %v; continuing with an empty draft", err)}
	}

	var d itemset.Draft
	if err := json.Unmarshal(resp.Content, &d); err != nil {
		return placeholder(strat), []string{fmt.Sprintf("draft response did not decode: %v; continuing with an empty draft", err)}
	}

	for i := range d.Blocks {
		if d.Blocks[i].ID == "" {
			d.Blocks[i].ID = uuid.NewString()
		}
	}

	return d, nil
}

// placeholder is the degraded zero-block draft. Its title and tags come
// from the strategy so the finalizer still has something to present.
func placeholder(strat strategy.Strategy) itemset.Draft {
	title := strings.TrimSpace(strat.Summary)
	if title == "" {
		title = "Generated item set"
	}
	return itemset.Draft{
		Title:       title,
		Description: strat.PrimaryGoal,
		Tags:        append([]string(nil), strat.SuggestedTags...),
		Blocks:      []itemset.Item{},
	}
}
