package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/itemforge/internal/oracle"
)

// KeywordRule maps a label to the substrings that select it during
// fallback classification. Rules are tested in order; the first label with
// a matching keyword wins.
type KeywordRule[T ~string] struct {
	Label    T
	Keywords []string
}

// Config parameterizes a generic classifier unit.
type Config[T ~string] struct {
	// Name labels the unit for the oracle event trail ("age-band").
	Name string

	// Vocabulary is the closed label set. Oracle output outside it is
	// coerced to Default.
	Vocabulary []T

	// Default is returned when neither the oracle nor any keyword rule
	// produces a valid label. Must be a member of Vocabulary.
	Default T

	// MaxSecondary caps the secondary labels kept from oracle output.
	// Zero means primary-only.
	MaxSecondary int

	// Rules is the ordered keyword fallback table.
	Rules []KeywordRule[T]

	// System is the oracle system prompt for this unit.
	System string

	MaxTokens   int
	Temperature float64
}

// Unit is a generic total classifier: oracle first, keyword fallback
// second, static default last. Classify never returns an error and never
// returns an empty primary label.
type Unit[T ~string] struct {
	provider oracle.Provider
	cfg      Config[T]
}

// NewUnit creates a classifier unit. provider may be nil, in which case
// only the keyword fallback runs.
func NewUnit[T ~string](provider oracle.Provider, cfg Config[T]) *Unit[T] {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 256
	}
	return &Unit[T]{provider: provider, cfg: cfg}
}

// unitOutput is the raw oracle response shared by all flat-vocabulary units.
type unitOutput struct {
	Primary    string   `json:"primary"`
	Secondary  []string `json:"secondary"`
	Rationale  string   `json:"rationale"`
	Confidence float64  `json:"confidence"`
}

// Classify maps input text to a label. Total: any oracle failure routes to
// the keyword fallback, and an oracle label outside the vocabulary is
// coerced to the default.
func (u *Unit[T]) Classify(ctx context.Context, input string) Result[T] {
	if u.provider != nil {
		if res, err := u.classifyOracle(ctx, input); err == nil {
			return res
		}
	}
	return u.Fallback(input)
}

func (u *Unit[T]) classifyOracle(ctx context.Context, input string) (Result[T], error) {
	ctx = oracle.WithPurpose(ctx, "classify-"+u.cfg.Name)

	req := oracle.Request{
		System: u.cfg.System,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: input},
		},
		Schema:      u.schema(),
		MaxTokens:   u.cfg.MaxTokens,
		Temperature: u.cfg.Temperature,
	}

	resp, err := u.provider.Generate(ctx, req)
	if err != nil {
		return Result[T]{}, err
	}

	var raw unitOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Result[T]{}, fmt.Errorf("parse %s classification: %w", u.cfg.Name, err)
	}

	res := Result[T]{
		Primary:    u.coerce(T(raw.Primary)),
		Rationale:  raw.Rationale,
		Confidence: raw.Confidence,
		Provenance: ProvenanceOracle,
	}

	for _, s := range raw.Secondary {
		if len(res.Secondary) >= u.cfg.MaxSecondary {
			break
		}
		label := T(s)
		if u.inVocabulary(label) && label != res.Primary {
			res.Secondary = append(res.Secondary, label)
		}
	}

	return res, nil
}

// Fallback runs the deterministic keyword table: lower-case the input,
// test substring membership per rule in order, return the first match or
// the static default.
func (u *Unit[T]) Fallback(input string) Result[T] {
	lowered := strings.ToLower(input)

	for _, rule := range u.cfg.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return Result[T]{
					Primary:    rule.Label,
					Rationale:  fmt.Sprintf("matched keyword %q", kw),
					Provenance: ProvenanceHeuristic,
				}
			}
		}
	}

	return Result[T]{
		Primary:    u.cfg.Default,
		Rationale:  "no keyword match; using default",
		Provenance: ProvenanceHeuristic,
	}
}

// coerce forces a label into the vocabulary.
func (u *Unit[T]) coerce(label T) T {
	if u.inVocabulary(label) {
		return label
	}
	return u.cfg.Default
}

func (u *Unit[T]) inVocabulary(label T) bool {
	for _, v := range u.cfg.Vocabulary {
		if v == label {
			return true
		}
	}
	return false
}

// schema builds the structured-output schema with the vocabulary as an
// enum constraint.
func (u *Unit[T]) schema() *oracle.Schema {
	vocab := make([]any, len(u.cfg.Vocabulary))
	for i, v := range u.cfg.Vocabulary {
		vocab[i] = string(v)
	}

	return &oracle.Schema{
		Name:        u.cfg.Name + "-classification",
		Description: fmt.Sprintf("Classification of text into the %s vocabulary", u.cfg.Name),
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"primary": map[string]any{
					"type":        "string",
					"enum":        vocab,
					"description": "The best-matching label",
				},
				"secondary": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string", "enum": vocab},
					"description": "Additional applicable labels, best first",
				},
				"rationale": map[string]any{
					"type":        "string",
					"description": "One-sentence justification",
				},
				"confidence": map[string]any{
					"type":        "number",
					"minimum":     0.0,
					"maximum":     1.0,
					"description": "Confidence in the primary label",
				},
			},
			"required":             []any{"primary", "secondary", "rationale", "confidence"},
			"additionalProperties": false,
		},
	}
}
