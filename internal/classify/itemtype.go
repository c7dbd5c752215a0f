package classify

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/oracle"
)

// RankedType is one recommended item type with a normalized weight.
type RankedType struct {
	Type   itemset.Type
	Weight float64
}

// ItemTypeResult is a ranked item-type recommendation.
type ItemTypeResult struct {
	Ranked     []RankedType
	Rationale  string
	Provenance Provenance
}

const itemTypeSystem = `You recommend item formats for a quiz request, ranked best first.
Valid formats: default (free response), mcq (multiple choice), ranking (put in order), ox (true/false), matching (pair up).
Give each recommended format a relative weight; weights need not sum to one.`

// ItemTypeUnit recommends a ranked list of item types with normalized
// weights.
type ItemTypeUnit struct {
	provider oracle.Provider
	keywords []KeywordRule[itemset.Type]
}

// NewItemTypeUnit builds the item-type recommender.
func NewItemTypeUnit(provider oracle.Provider) *ItemTypeUnit {
	return &ItemTypeUnit{
		provider: provider,
		keywords: []KeywordRule[itemset.Type]{
			{Label: itemset.TypeMCQ, Keywords: []string{"multiple choice", "choice", "mcq", "객관식", "선택"}},
			{Label: itemset.TypeOX, Keywords: []string{"true/false", "true or false", "ox", "o/x", "참 거짓"}},
			{Label: itemset.TypeRanking, Keywords: []string{"rank", "order", "sort", "순서", "순위"}},
			{Label: itemset.TypeMatching, Keywords: []string{"match", "pair", "connect", "짝", "연결"}},
			{Label: itemset.TypeDefault, Keywords: []string{"free response", "short answer", "essay", "write", "주관식", "서술"}},
		},
	}
}

type itemTypeOutput struct {
	Ranked []struct {
		Type   string  `json:"type"`
		Weight float64 `json:"weight"`
	} `json:"ranked"`
	Rationale string `json:"rationale"`
}

// Recommend is total. The ranked list always has between 1 and max
// entries, only valid types, and weights normalized to sum to 1.
func (u *ItemTypeUnit) Recommend(ctx context.Context, input string, max int) ItemTypeResult {
	if max < 1 {
		max = 1
	}

	if u.provider != nil {
		if res, err := u.recommendOracle(ctx, input, max); err == nil {
			return res
		}
	}
	return u.fallback(input, max)
}

func (u *ItemTypeUnit) recommendOracle(ctx context.Context, input string, max int) (ItemTypeResult, error) {
	ctx = oracle.WithPurpose(ctx, "classify-item-type")

	resp, err := u.provider.Generate(ctx, oracle.Request{
		System: itemTypeSystem,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: input},
		},
		Schema:    itemTypeSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return ItemTypeResult{}, err
	}

	var raw itemTypeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return ItemTypeResult{}, err
	}

	seen := map[itemset.Type]bool{}
	var ranked []RankedType
	for _, r := range raw.Ranked {
		t := itemset.Type(r.Type)
		if !itemset.ValidType(t) || seen[t] {
			continue
		}
		seen[t] = true
		w := r.Weight
		if w < 0 {
			w = 0
		}
		ranked = append(ranked, RankedType{Type: t, Weight: w})
		if len(ranked) >= max {
			break
		}
	}
	if len(ranked) == 0 {
		ranked = []RankedType{{Type: itemset.TypeMCQ, Weight: 1}}
	}

	return ItemTypeResult{
		Ranked:     normalizeRanked(ranked),
		Rationale:  raw.Rationale,
		Provenance: ProvenanceOracle,
	}, nil
}

func (u *ItemTypeUnit) fallback(input string, max int) ItemTypeResult {
	lowered := strings.ToLower(input)

	seen := map[itemset.Type]bool{}
	var ranked []RankedType
	for _, rule := range u.keywords {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) && !seen[rule.Label] {
				seen[rule.Label] = true
				ranked = append(ranked, RankedType{Type: rule.Label, Weight: 1})
				break
			}
		}
		if len(ranked) >= max {
			break
		}
	}

	// Broadly usable defaults when nothing matched.
	if len(ranked) == 0 {
		for _, t := range []itemset.Type{itemset.TypeMCQ, itemset.TypeOX, itemset.TypeDefault} {
			ranked = append(ranked, RankedType{Type: t, Weight: 1})
			if len(ranked) >= max {
				break
			}
		}
	}

	return ItemTypeResult{
		Ranked:     normalizeRanked(ranked),
		Rationale:  "keyword-based recommendation",
		Provenance: ProvenanceHeuristic,
	}
}

// normalizeRanked rescales weights to sum to 1, assigning equal weights if
// the sum is zero.
func normalizeRanked(ranked []RankedType) []RankedType {
	var sum float64
	for _, r := range ranked {
		sum += r.Weight
	}

	out := make([]RankedType, len(ranked))
	for i, r := range ranked {
		if sum == 0 {
			r.Weight = 1 / float64(len(ranked))
		} else {
			r.Weight = r.Weight / sum
		}
		out[i] = r
	}
	return out
}

var itemTypeSchema = &oracle.Schema{
	Name:        "item-type-recommendation",
	Description: "Ranked item format recommendation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ranked": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"default", "mcq", "ranking", "ox", "matching"},
						},
						"weight": map[string]any{
							"type":    "number",
							"minimum": 0.0,
						},
					},
					"required":             []any{"type", "weight"},
					"additionalProperties": false,
				},
			},
			"rationale": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"ranked", "rationale"},
		"additionalProperties": false,
	},
}
