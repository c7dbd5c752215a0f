package strategy

import (
	"math"
	"testing"
)

func weightsOf(items []PlanItem) []float64 {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = item.Weight
	}
	return out
}

func TestNormalizeWeights_Proportions(t *testing.T) {
	items := NormalizeWeights([]PlanItem{
		{Label: "a", Weight: 3},
		{Label: "b", Weight: 1},
	})
	want := []float64{0.75, 0.25}
	for i, w := range weightsOf(items) {
		if math.Abs(w-want[i]) > 1e-3 {
			t.Errorf("weight %d: got %f, want %f", i, w, want[i])
		}
	}
}

func TestNormalizeWeights_SumIsOne(t *testing.T) {
	items := NormalizeWeights([]PlanItem{
		{Weight: 0.17}, {Weight: 2.9}, {Weight: 0.001}, {Weight: 7},
	})
	var sum float64
	for _, w := range weightsOf(items) {
		sum += w
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Errorf("weights sum to %f, want 1", sum)
	}
}

func TestNormalizeWeights_ZeroSumBecomesEqual(t *testing.T) {
	items := NormalizeWeights([]PlanItem{
		{Label: "a"}, {Label: "b"}, {Label: "c"}, {Label: "d"},
	})
	for i, w := range weightsOf(items) {
		if math.Abs(w-0.25) > 1e-3 {
			t.Errorf("weight %d: got %f, want 0.25", i, w)
		}
	}
}

func TestNormalizeWeights_EmptyUnchanged(t *testing.T) {
	if got := NormalizeWeights(nil); len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
}

func TestAllocateTargets_ExactSum(t *testing.T) {
	items := AllocateTargets([]PlanItem{
		{Label: "mcq", Weight: 0.6},
		{Label: "ox", Weight: 0.4},
	}, 10)
	if items[0].TargetCount != 6 || items[1].TargetCount != 4 {
		t.Errorf("got targets [%d, %d], want [6, 4]", items[0].TargetCount, items[1].TargetCount)
	}
}

func TestAllocateTargets_LastAbsorbsRemainder(t *testing.T) {
	items := AllocateTargets([]PlanItem{
		{Weight: 0.33}, {Weight: 0.33}, {Weight: 0.34},
	}, 10)
	var sum int
	for _, item := range items {
		sum += item.TargetCount
	}
	if sum != 10 {
		t.Errorf("targets sum to %d, want 10", sum)
	}
}

func TestAllocateTargets_MinimumOnePerBucket(t *testing.T) {
	items := AllocateTargets([]PlanItem{
		{Weight: 0.98}, {Weight: 0.01}, {Weight: 0.01},
	}, 10)
	if items[0].TargetCount < 1 || items[1].TargetCount < 1 {
		t.Errorf("non-last buckets must get at least 1, got [%d, %d]", items[0].TargetCount, items[1].TargetCount)
	}
}

func TestAllocateTargets_LastFlooredAtZero(t *testing.T) {
	// More buckets than items: each non-last bucket is forced to 1, which
	// exhausts the budget before the last bucket.
	items := AllocateTargets([]PlanItem{
		{Weight: 0.25}, {Weight: 0.25}, {Weight: 0.25}, {Weight: 0.25},
	}, 2)
	last := items[len(items)-1]
	if last.TargetCount < 0 {
		t.Errorf("last bucket went negative: %d", last.TargetCount)
	}
}
