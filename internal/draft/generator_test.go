package draft

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/itemforge/internal/compose"
	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/strategy"
)

func TestGenerate_PlaceholderOnOracleFailure(t *testing.T) {
	g := NewGenerator(oracle.NewMockProvider(), DefaultGeneratorConfig())

	strat := strategy.Strategy{
		Summary:       "World history quiz",
		PrimaryGoal:   "recall",
		SuggestedTags: []string{"history"},
	}
	d, notes := g.Generate(context.Background(), compose.Package{Instruction: "go"}, strat)

	if len(d.Blocks) != 0 {
		t.Errorf("placeholder must have zero blocks, got %d", len(d.Blocks))
	}
	if d.Title != "World history quiz" {
		t.Errorf("got title %q, want the strategy summary", d.Title)
	}
	if len(d.Tags) != 1 || d.Tags[0] != "history" {
		t.Errorf("got tags %v, want the strategy tags", d.Tags)
	}
	if len(notes) == 0 || !strings.Contains(notes[0], "draft generation failed") {
		t.Errorf("failure must be noted, got %v", notes)
	}
}

func TestGenerate_DecodesDraftAndAssignsIDs(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"title":       "Quiz",
		"description": "desc",
		"tags":        []string{"t"},
		"blocks": []map[string]any{
			{
				"type":     "ox",
				"question": "The sky is blue.",
				"content":  map[string]any{},
				"order":    0,
			},
		},
	})
	g := NewGenerator(oracle.NewMockProvider(oracle.MockResponse{Content: raw}), DefaultGeneratorConfig())

	d, notes := g.Generate(context.Background(), compose.Package{Instruction: "go"}, strategy.Strategy{})

	if notes != nil {
		t.Fatalf("unexpected notes: %v", notes)
	}
	if len(d.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(d.Blocks))
	}
	if d.Blocks[0].ID == "" {
		t.Error("missing block IDs must be assigned")
	}
}

func TestGenerate_NonconformingOutputDegrades(t *testing.T) {
	raw := json.RawMessage(`{"title":"Quiz","description":"d","tags":[],"blocks":[{"type":"hologram","question":"?","content":{},"order":0}]}`)
	g := NewGenerator(oracle.NewMockProvider(oracle.MockResponse{Content: raw}), DefaultGeneratorConfig())

	d, notes := g.Generate(context.Background(), compose.Package{Instruction: "go"}, strategy.Strategy{Summary: "s"})

	if len(d.Blocks) != 0 {
		t.Errorf("nonconforming output must degrade to the placeholder, got %d blocks", len(d.Blocks))
	}
	if len(notes) == 0 {
		t.Error("degradation must be noted")
	}
}
