package classify

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/itemforge/internal/oracle"
)

// TopicParent is the top level of the two-level topic taxonomy.
type TopicParent string

const (
	TopicMath       TopicParent = "math"
	TopicScience    TopicParent = "science"
	TopicLanguage   TopicParent = "language"
	TopicHistory    TopicParent = "history"
	TopicTechnology TopicParent = "technology"
	TopicArts       TopicParent = "arts"
	TopicSports     TopicParent = "sports"
	TopicGeneral    TopicParent = "general"
)

// topicTaxonomy maps each parent to its ordered subtopics. The first
// subtopic doubles as the coercion target for an invalid child.
var topicTaxonomy = map[TopicParent][]string{
	TopicMath:       {"arithmetic", "algebra", "geometry", "statistics"},
	TopicScience:    {"physics", "chemistry", "biology", "earth-science"},
	TopicLanguage:   {"vocabulary", "grammar", "reading", "writing"},
	TopicHistory:    {"world-history", "modern-history", "ancient-history", "regional-history"},
	TopicTechnology: {"programming", "internet", "ai", "devices"},
	TopicArts:       {"music", "visual-arts", "film", "literature"},
	TopicSports:     {"team-sports", "individual-sports", "esports", "fitness"},
	TopicGeneral:    {"common-knowledge", "current-events", "trivia", "mixed"},
}

// topicParents lists the parents in a stable order for the enum schema.
var topicParents = []TopicParent{
	TopicMath, TopicScience, TopicLanguage, TopicHistory,
	TopicTechnology, TopicArts, TopicSports, TopicGeneral,
}

// TopicResult is a two-level topic classification.
type TopicResult struct {
	Parent     TopicParent
	Subtopic   string
	Rationale  string
	Provenance Provenance
}

const topicSystem = `You classify quiz subject matter into a fixed two-level taxonomy.
Pick the parent topic first, then the subtopic that belongs to that parent.
Only use subtopics listed under the chosen parent.`

// TopicUnit classifies text into the two-level topic taxonomy. An invalid
// subtopic is coerced to the first valid child of the chosen parent.
type TopicUnit struct {
	provider oracle.Provider
	keywords []KeywordRule[TopicParent]
}

// NewTopicUnit builds the topic classifier.
func NewTopicUnit(provider oracle.Provider) *TopicUnit {
	return &TopicUnit{
		provider: provider,
		keywords: []KeywordRule[TopicParent]{
			{Label: TopicMath, Keywords: []string{"math", "algebra", "geometry", "fraction", "수학"}},
			{Label: TopicScience, Keywords: []string{"science", "physics", "chemi", "biolog", "과학"}},
			{Label: TopicLanguage, Keywords: []string{"english", "vocab", "grammar", "language", "영어", "국어"}},
			{Label: TopicHistory, Keywords: []string{"history", "war", "dynasty", "역사"}},
			{Label: TopicTechnology, Keywords: []string{"program", "coding", "software", "computer", "ai ", "개발", "코딩"}},
			{Label: TopicArts, Keywords: []string{"music", "art", "movie", "film", "음악", "미술", "영화"}},
			{Label: TopicSports, Keywords: []string{"sport", "soccer", "baseball", "fitness", "스포츠", "운동"}},
		},
	}
}

type topicOutput struct {
	Parent    string `json:"parent"`
	Subtopic  string `json:"subtopic"`
	Rationale string `json:"rationale"`
}

// Classify is total. Parent coercion falls back to general; subtopic
// coercion falls back to the first child of the (coerced) parent.
func (t *TopicUnit) Classify(ctx context.Context, input string) TopicResult {
	if t.provider != nil {
		if res, err := t.classifyOracle(ctx, input); err == nil {
			return res
		}
	}
	return t.fallback(input)
}

func (t *TopicUnit) classifyOracle(ctx context.Context, input string) (TopicResult, error) {
	ctx = oracle.WithPurpose(ctx, "classify-topic")

	resp, err := t.provider.Generate(ctx, oracle.Request{
		System: topicSystem,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: input + "\n\nTaxonomy:\n" + renderTaxonomy()},
		},
		Schema:    topicSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return TopicResult{}, err
	}

	var raw topicOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return TopicResult{}, err
	}

	parent := coerceParent(TopicParent(raw.Parent))
	return TopicResult{
		Parent:     parent,
		Subtopic:   coerceSubtopic(parent, raw.Subtopic),
		Rationale:  raw.Rationale,
		Provenance: ProvenanceOracle,
	}, nil
}

func (t *TopicUnit) fallback(input string) TopicResult {
	lowered := strings.ToLower(input)
	for _, rule := range t.keywords {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return TopicResult{
					Parent:     rule.Label,
					Subtopic:   topicTaxonomy[rule.Label][0],
					Rationale:  "matched keyword " + kw,
					Provenance: ProvenanceHeuristic,
				}
			}
		}
	}
	return TopicResult{
		Parent:     TopicGeneral,
		Subtopic:   topicTaxonomy[TopicGeneral][0],
		Rationale:  "no keyword match; using default",
		Provenance: ProvenanceHeuristic,
	}
}

func coerceParent(p TopicParent) TopicParent {
	if _, ok := topicTaxonomy[p]; ok {
		return p
	}
	return TopicGeneral
}

// coerceSubtopic forces the child under the parent: an unknown child maps
// to the parent's first valid child.
func coerceSubtopic(parent TopicParent, sub string) string {
	children := topicTaxonomy[parent]
	for _, c := range children {
		if c == sub {
			return sub
		}
	}
	return children[0]
}

func renderTaxonomy() string {
	var b strings.Builder
	for _, p := range topicParents {
		b.WriteString("- ")
		b.WriteString(string(p))
		b.WriteString(": ")
		b.WriteString(strings.Join(topicTaxonomy[p], ", "))
		b.WriteString("\n")
	}
	return b.String()
}

var topicSchema = &oracle.Schema{
	Name:        "topic-classification",
	Description: "Two-level topic classification",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"parent": map[string]any{
				"type": "string",
				"enum": []any{"math", "science", "language", "history", "technology", "arts", "sports", "general"},
			},
			"subtopic": map[string]any{
				"type":        "string",
				"description": "A subtopic belonging to the chosen parent",
			},
			"rationale": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"parent", "subtopic", "rationale"},
		"additionalProperties": false,
	},
}
