// Package compose turns a creation request and its strategy into the
// instruction text handed to the draft generator. The render is fully
// deterministic; an optional oracle pass may rephrase it, but a polish
// failure keeps the deterministic text, so composition never blocks a run.
package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/strategy"
)

// Package is the assembled generation instruction.
type Package struct {
	// System is the system prompt for the draft generation call.
	System string `json:"system"`

	// Instruction is the user-turn text. Always ends with the JSON-only
	// directive regardless of polish.
	Instruction string `json:"instruction"`

	// Polished reports whether the oracle rephrasing pass succeeded.
	Polished bool `json:"polished"`

	ProblemCount   int  `json:"problemCount"`
	IncludeAnswers bool `json:"includeAnswers"`
}

// Config controls the optional polish call.
type Config struct {
	Polish      bool
	MaxTokens   int
	Temperature float64
}

// DefaultConfig enables polish with modest size limits.
func DefaultConfig() Config {
	return Config{
		Polish:      true,
		MaxTokens:   2048,
		Temperature: 0.3,
	}
}

// Composer renders generation instructions.
type Composer struct {
	provider oracle.Provider
	cfg      Config
}

// New creates a Composer. provider may be nil; composition is then purely
// deterministic.
func New(provider oracle.Provider, cfg Config) *Composer {
	return &Composer{provider: provider, cfg: cfg}
}

const generateSystem = `You are a quiz item writer. You produce complete, well-formed item sets as JSON conforming exactly to the requested schema. Every item must be answerable from its own text.`

const polishSystem = `You rewrite quiz generation instructions to read naturally while preserving every requirement, number, and constraint exactly. Never drop the closing JSON-only directive.`

// jsonOnlyDirective closes every instruction, polished or not.
const jsonOnlyDirective = "Respond with JSON only. No prose."

// Compose builds the instruction package for one run.
func (c *Composer) Compose(ctx context.Context, req request.CreationRequest, strat strategy.Strategy, problemCount int, includeAnswers bool) Package {
	text := render(req, strat, problemCount, includeAnswers)

	pkg := Package{
		System:         generateSystem,
		Instruction:    text,
		ProblemCount:   problemCount,
		IncludeAnswers: includeAnswers,
	}

	if c.cfg.Polish && c.provider != nil {
		if polished, err := c.polish(ctx, text); err == nil && polished != "" {
			pkg.Instruction = polished
			pkg.Polished = true
		}
	}

	if !strings.Contains(pkg.Instruction, jsonOnlyDirective) {
		pkg.Instruction = strings.TrimRight(pkg.Instruction, "\n") + "\n\n" + jsonOnlyDirective
	}

	return pkg
}

var polishSchema = &oracle.Schema{
	Name:        "polished_instruction",
	Description: "Rephrased generation instruction",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"polished": map[string]any{
				"type":        "string",
				"description": "The full rewritten instruction text",
			},
		},
		"required":             []string{"polished"},
		"additionalProperties": false,
	},
}

func (c *Composer) polish(ctx context.Context, text string) (string, error) {
	ctx = oracle.WithPurpose(ctx, "compose-polish")

	resp, err := c.provider.Generate(ctx, oracle.Request{
		System: polishSystem,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: "Rewrite the following instruction:\n\n" + text},
		},
		Schema:      polishSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Polished string `json:"polished"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse polish response: %w", err)
	}
	return strings.TrimSpace(out.Polished), nil
}

// render produces the deterministic instruction text.
func render(req request.CreationRequest, strat strategy.Strategy, problemCount int, includeAnswers bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a set of exactly %d quiz items.\n\n", problemCount)

	if strat.Summary != "" {
		fmt.Fprintf(&b, "Goal: %s\n", strat.Summary)
	}
	if strat.PrimaryGoal != "" {
		fmt.Fprintf(&b, "Primary goal: %s\n", strat.PrimaryGoal)
	}
	fmt.Fprintf(&b, "Difficulty: %s\n\n", strat.Difficulty.Normalized)

	b.WriteString("Format distribution:\n")
	for _, item := range strat.FormatPlan {
		b.WriteString(planLine(item, true))
	}
	b.WriteString("\nTopic distribution:\n")
	for _, item := range strat.TopicPlan {
		b.WriteString(planLine(item, false))
	}
	b.WriteString("\n")

	writeAudienceNotes(&b, req)

	if len(strat.Constraints) > 0 {
		b.WriteString("Constraints:\n")
		for _, c := range strat.Constraints {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		b.WriteString("\n")
	}
	if len(strat.Opportunities) > 0 {
		b.WriteString("Opportunities to make the set better:\n")
		for _, o := range strat.Opportunities {
			fmt.Fprintf(&b, "- %s\n", o)
		}
		b.WriteString("\n")
	}

	if len(strat.SuggestedTags) > 0 {
		fmt.Fprintf(&b, "Tag the set with: %s\n\n", strings.Join(strat.SuggestedTags, ", "))
	}

	if includeAnswers {
		b.WriteString("Every item must carry its answer.\n")
	} else {
		b.WriteString("Do not include answers on any item.\n")
	}

	b.WriteString("\nEach item's content and answer payloads must match its type field. Example of a multiple-choice item:\n\n")
	b.WriteString(workedExample(includeAnswers))
	b.WriteString("\n\n")
	b.WriteString(jsonOnlyDirective)

	return b.String()
}

// planLine renders one allocation bucket, e.g. "history — 38% (4 items)".
func planLine(item strategy.PlanItem, withCount bool) string {
	pct := int(item.Weight*100 + 0.5)
	if withCount {
		noun := "items"
		if item.TargetCount == 1 {
			noun = "item"
		}
		return fmt.Sprintf("- %s — %d%% (%d %s)\n", item.Label, pct, item.TargetCount, noun)
	}
	return fmt.Sprintf("- %s — %d%%\n", item.Label, pct)
}

func writeAudienceNotes(b *strings.Builder, req request.CreationRequest) {
	var notes []string
	if req.People != "" {
		notes = append(notes, fmt.Sprintf("Participants: %s.", req.People))
	}
	if req.Situation != "" {
		notes = append(notes, fmt.Sprintf("Occasion: %s.", req.Situation))
	}
	if req.Platform != "" {
		notes = append(notes, fmt.Sprintf("Platform: %s; keep item length suited to it.", req.Platform))
	}
	if req.AgeGroup != "" {
		notes = append(notes, fmt.Sprintf("Audience age group: %s; match tone and vocabulary.", req.AgeGroup))
	}
	if req.Description != "" {
		notes = append(notes, fmt.Sprintf("Additional direction: %s", req.Description))
	}
	if len(notes) == 0 {
		return
	}
	b.WriteString("Audience:\n")
	for _, n := range notes {
		fmt.Fprintf(b, "- %s\n", n)
	}
	b.WriteString("\n")
}

func workedExample(includeAnswers bool) string {
	example := map[string]any{
		"type":     "mcq",
		"question": "Which planet is known as the Red Planet?",
		"content": map[string]any{
			"choices": []map[string]any{
				{"id": "a", "text": "Venus"},
				{"id": "b", "text": "Mars"},
				{"id": "c", "text": "Jupiter"},
			},
		},
		"order": 0,
	}
	if includeAnswers {
		example["answer"] = map[string]any{"choiceIds": []string{"b"}}
	}
	data, _ := json.MarshalIndent(example, "", "  ")
	return string(data)
}
