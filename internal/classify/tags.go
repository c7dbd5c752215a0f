package classify

import (
	"context"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
)

const (
	maxTags      = 10
	maxTagLength = 8 // runes
)

// TagsResult is a tag suggestion.
type TagsResult struct {
	Tags       []string
	Provenance Provenance
}

const tagsSystem = `You suggest short search tags for a quiz set.
Tags must be single words or very short compounds, at most 8 characters each, no spaces, no # prefix.
Suggest up to 10, most relevant first.`

// TagsUnit suggests up to ten short tags for a creation request.
type TagsUnit struct {
	provider oracle.Provider
}

// NewTagsUnit builds the tag suggester.
func NewTagsUnit(provider oracle.Provider) *TagsUnit {
	return &TagsUnit{provider: provider}
}

type tagsOutput struct {
	Tags []string `json:"tags"`
}

// Suggest is total: oracle first, then tags synthesized from the request's
// own fields. The result always holds at least one tag.
func (u *TagsUnit) Suggest(ctx context.Context, req request.CreationRequest) TagsResult {
	if u.provider != nil {
		if res, err := u.suggestOracle(ctx, req); err == nil && len(res.Tags) > 0 {
			return res
		}
	}
	return TagsResult{
		Tags:       SynthesizeTags(req),
		Provenance: ProvenanceHeuristic,
	}
}

func (u *TagsUnit) suggestOracle(ctx context.Context, req request.CreationRequest) (TagsResult, error) {
	ctx = oracle.WithPurpose(ctx, "classify-tags")

	resp, err := u.provider.Generate(ctx, oracle.Request{
		System: tagsSystem,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: req.CombinedText()},
		},
		Schema:    tagsSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return TagsResult{}, err
	}

	var raw tagsOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return TagsResult{}, err
	}

	return TagsResult{
		Tags:       SanitizeTags(raw.Tags),
		Provenance: ProvenanceOracle,
	}, nil
}

// SanitizeTags strips whitespace and # from each candidate, truncates to 8
// runes, drops empties, deduplicates case-sensitively, and caps the list
// at 10 entries.
func SanitizeTags(candidates []string) []string {
	seen := map[string]bool{}
	var out []string

	for _, c := range candidates {
		tag := cleanTag(c)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) >= maxTags {
			break
		}
	}
	return out
}

// SynthesizeTags builds fallback tags from the request's topics,
// situation, platform and age group.
func SynthesizeTags(req request.CreationRequest) []string {
	var candidates []string
	candidates = append(candidates, req.Topics...)
	candidates = append(candidates, req.Situation, req.Platform, req.AgeGroup)

	tags := SanitizeTags(candidates)
	if len(tags) == 0 {
		tags = []string{"quiz"}
	}
	return tags
}

func cleanTag(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || r == '#' {
			continue
		}
		b.WriteRune(r)
	}
	runes := []rune(b.String())
	if len(runes) > maxTagLength {
		runes = runes[:maxTagLength]
	}
	return string(runes)
}

var tagsSchema = &oracle.Schema{
	Name:        "tag-suggestion",
	Description: "Short search tags for a quiz set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"tags"},
		"additionalProperties": false,
	},
}
