package strategy

import "math"

// NormalizeWeights rescales a plan's weights to sum to 1, rounded to 4
// decimals. An empty list is returned unchanged; an all-zero list gets
// equal weights. This guarantees a usable distribution no matter what the
// oracle produced.
func NormalizeWeights(items []PlanItem) []PlanItem {
	if len(items) == 0 {
		return items
	}

	var sum float64
	for _, it := range items {
		sum += it.Weight
	}

	out := make([]PlanItem, len(items))
	for i, it := range items {
		if sum == 0 {
			it.Weight = round4(1 / float64(len(items)))
		} else {
			it.Weight = round4(it.Weight / sum)
		}
		out[i] = it
	}
	return out
}

// AllocateTargets assigns integer target counts for normalized weights so
// that the counts sum to total exactly. Every bucket except the last gets
// max(1, round(total*weight)); the last bucket absorbs the remainder.
// Absorbing all rounding error in one bucket is a deliberate tie-break,
// not an approximation.
//
// When total is smaller than the number of buckets the remainder can go
// negative; the last bucket is floored at 0 and the min-1 buckets before
// it are left alone, so the sum can overshoot in that degenerate case.
// The finalizer's hard truncation makes the overshoot harmless.
func AllocateTargets(items []PlanItem, total int) []PlanItem {
	if len(items) == 0 {
		return items
	}

	out := make([]PlanItem, len(items))
	remaining := total

	for i, it := range items {
		if i == len(items)-1 {
			if remaining < 0 {
				remaining = 0
			}
			it.TargetCount = remaining
		} else {
			n := int(math.Round(float64(total) * it.Weight))
			if n < 1 {
				n = 1
			}
			it.TargetCount = n
			remaining -= n
		}
		out[i] = it
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
