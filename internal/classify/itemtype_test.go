package classify

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/oracle"
)

func TestRecommend_FallbackNeverEmpty(t *testing.T) {
	unit := NewItemTypeUnit(oracle.NewMockProvider())

	res := unit.Recommend(context.Background(), "no keyword hits here at all", 3)
	if len(res.Ranked) == 0 {
		t.Fatal("fallback recommendation is empty")
	}
	if res.Ranked[0].Type != itemset.TypeMCQ {
		t.Errorf("got first type %q, want mcq", res.Ranked[0].Type)
	}
}

func TestRecommend_WeightsNormalized(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"ranked": []map[string]any{
			{"type": "mcq", "weight": 3},
			{"type": "ox", "weight": 1},
		},
	})
	unit := NewItemTypeUnit(oracle.NewMockProvider(oracle.MockResponse{Content: raw}))

	res := unit.Recommend(context.Background(), "quiz", 3)
	var sum float64
	for _, r := range res.Ranked {
		sum += r.Weight
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Errorf("weights sum to %f, want 1", sum)
	}
	if math.Abs(res.Ranked[0].Weight-0.75) > 1e-3 {
		t.Errorf("got first weight %f, want 0.75", res.Ranked[0].Weight)
	}
}

func TestRecommend_InvalidTypesDropped(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"ranked": []map[string]any{
			{"type": "hologram", "weight": 5},
			{"type": "mcq", "weight": 1},
			{"type": "mcq", "weight": 1},
		},
	})
	unit := NewItemTypeUnit(oracle.NewMockProvider(oracle.MockResponse{Content: raw}))

	res := unit.Recommend(context.Background(), "quiz", 3)
	if len(res.Ranked) != 1 {
		t.Fatalf("got %d ranked types, want 1 after drop and dedup", len(res.Ranked))
	}
	if res.Ranked[0].Type != itemset.TypeMCQ {
		t.Errorf("got %q, want mcq", res.Ranked[0].Type)
	}
}

func TestRecommend_MaxRespected(t *testing.T) {
	unit := NewItemTypeUnit(oracle.NewMockProvider())
	res := unit.Recommend(context.Background(), "anything", 2)
	if len(res.Ranked) > 2 {
		t.Errorf("got %d ranked types, want at most 2", len(res.Ranked))
	}
}
