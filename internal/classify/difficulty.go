package classify

import (
	"context"
	"encoding/json"

	"github.com/abhisek/itemforge/internal/oracle"
)

// DifficultyLevel is one of five ordered levels.
type DifficultyLevel string

const (
	DifficultyVeryEasy DifficultyLevel = "very-easy"
	DifficultyEasy     DifficultyLevel = "easy"
	DifficultyMedium   DifficultyLevel = "medium"
	DifficultyHard     DifficultyLevel = "hard"
	DifficultyExpert   DifficultyLevel = "expert"
)

// DifficultyLevels lists the levels from easiest to hardest.
var DifficultyLevels = []DifficultyLevel{
	DifficultyVeryEasy,
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyExpert,
}

// accuracyRange is the plausible expected-accuracy band per level. Oracle
// estimates outside the band are clamped into it.
var accuracyRanges = map[DifficultyLevel][2]float64{
	DifficultyVeryEasy: {0.85, 1.0},
	DifficultyEasy:     {0.70, 0.90},
	DifficultyMedium:   {0.50, 0.75},
	DifficultyHard:     {0.30, 0.55},
	DifficultyExpert:   {0.10, 0.40},
}

// DifficultyResult is a difficulty judgment with a clamped
// expected-accuracy estimate.
type DifficultyResult struct {
	Level            DifficultyLevel
	ExpectedAccuracy float64
	Rationale        string
	Provenance       Provenance
}

const difficultySystem = `You map a free-text difficulty description for a quiz to one of five ordered levels.
Also estimate the fraction of the target audience expected to answer correctly (0.0-1.0).
Judge relative to the stated audience, not an absolute scale.`

// DifficultyUnit classifies free-text difficulty into one of the five
// levels with an expected-accuracy estimate.
type DifficultyUnit struct {
	unit     *Unit[DifficultyLevel]
	provider oracle.Provider
}

// NewDifficultyUnit builds the difficulty classifier.
func NewDifficultyUnit(provider oracle.Provider) *DifficultyUnit {
	return &DifficultyUnit{
		provider: provider,
		unit: NewUnit(provider, Config[DifficultyLevel]{
			Name:       "difficulty",
			Vocabulary: DifficultyLevels,
			Default:    DifficultyMedium,
			System:     difficultySystem,
			Rules: []KeywordRule[DifficultyLevel]{
				{Label: DifficultyVeryEasy, Keywords: []string{"very easy", "trivial", "beginner", "warm-up", "아주 쉬"}},
				{Label: DifficultyExpert, Keywords: []string{"expert", "very hard", "extreme", "olympiad", "전문가", "매우 어려"}},
				{Label: DifficultyEasy, Keywords: []string{"easy", "simple", "basic", "쉬움", "쉬운", "쉽"}},
				{Label: DifficultyHard, Keywords: []string{"hard", "difficult", "challeng", "advanced", "어려"}},
				{Label: DifficultyMedium, Keywords: []string{"medium", "moderate", "average", "보통", "중간"}},
			},
		}),
	}
}

type difficultyOutput struct {
	Primary          string  `json:"primary"`
	ExpectedAccuracy float64 `json:"expected_accuracy"`
	Rationale        string  `json:"rationale"`
	Confidence       float64 `json:"confidence"`
}

// Classify is total: oracle first, keyword fallback otherwise. The
// expected accuracy is always clamped to the chosen level's range.
func (d *DifficultyUnit) Classify(ctx context.Context, input string) DifficultyResult {
	if d.provider != nil {
		if res, err := d.classifyOracle(ctx, input); err == nil {
			return res
		}
	}

	fb := d.unit.Fallback(input)
	return DifficultyResult{
		Level:            fb.Primary,
		ExpectedAccuracy: midAccuracy(fb.Primary),
		Rationale:        fb.Rationale,
		Provenance:       ProvenanceHeuristic,
	}
}

func (d *DifficultyUnit) classifyOracle(ctx context.Context, input string) (DifficultyResult, error) {
	ctx = oracle.WithPurpose(ctx, "classify-difficulty")

	resp, err := d.provider.Generate(ctx, oracle.Request{
		System: difficultySystem,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: input},
		},
		Schema:    difficultySchema,
		MaxTokens: 256,
	})
	if err != nil {
		return DifficultyResult{}, err
	}

	var raw difficultyOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return DifficultyResult{}, err
	}

	level := DifficultyMedium
	for _, l := range DifficultyLevels {
		if string(l) == raw.Primary {
			level = l
			break
		}
	}

	return DifficultyResult{
		Level:            level,
		ExpectedAccuracy: clampAccuracy(level, raw.ExpectedAccuracy),
		Rationale:        raw.Rationale,
		Provenance:       ProvenanceOracle,
	}, nil
}

// clampAccuracy forces an estimate into the level's plausible band.
func clampAccuracy(level DifficultyLevel, v float64) float64 {
	r := accuracyRanges[level]
	if v < r[0] {
		return r[0]
	}
	if v > r[1] {
		return r[1]
	}
	return v
}

// midAccuracy is the midpoint of the level's band, used by the fallback.
func midAccuracy(level DifficultyLevel) float64 {
	r := accuracyRanges[level]
	return (r[0] + r[1]) / 2
}

var difficultySchema = &oracle.Schema{
	Name:        "difficulty-classification",
	Description: "Difficulty level judgment with expected accuracy",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"primary": map[string]any{
				"type":        "string",
				"enum":        []any{"very-easy", "easy", "medium", "hard", "expert"},
				"description": "The difficulty level",
			},
			"expected_accuracy": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Expected fraction of correct answers from the target audience",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One-sentence justification",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in the level",
			},
		},
		"required":             []any{"primary", "expected_accuracy", "rationale", "confidence"},
		"additionalProperties": false,
	},
}
