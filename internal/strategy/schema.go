package strategy

import "github.com/abhisek/itemforge/internal/oracle"

// planItemSchema is shared by the format and topic plan arrays.
var planItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"label": map[string]any{
			"type":        "string",
			"description": "The format or topic this bucket covers",
		},
		"weight": map[string]any{
			"type":        "number",
			"minimum":     0.0,
			"description": "Relative share of the set; weights are renormalized afterwards",
		},
		"item_type": map[string]any{
			"type":        "string",
			"enum":        []any{"default", "mcq", "ranking", "ox", "matching", ""},
			"description": "The item type this bucket maps to, if clear",
		},
		"rationale": map[string]any{
			"type": "string",
		},
	},
	"required":             []any{"label", "weight", "item_type", "rationale"},
	"additionalProperties": false,
}

// StrategySchema defines the JSON schema for oracle strategy responses.
var StrategySchema = &oracle.Schema{
	Name:        "generation-strategy",
	Description: "A weighted generation plan for a quiz/problem set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One-paragraph summary of the planned set",
			},
			"primary_goal": map[string]any{
				"type":        "string",
				"description": "What the set should achieve for its audience",
			},
			"content_type": map[string]any{
				"type":        "string",
				"description": "Short label for the kind of content, e.g. 'review quiz'",
			},
			"recommended_problem_count": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Suggested number of items; the resolved count always wins",
			},
			"include_answers": map[string]any{
				"type":        "boolean",
				"description": "Suggested answer policy; the resolved policy always wins",
			},
			"format_plan": map[string]any{
				"type":        "array",
				"items":       planItemSchema,
				"description": "One bucket per item format",
			},
			"topic_plan": map[string]any{
				"type":        "array",
				"items":       planItemSchema,
				"description": "One bucket per topic",
			},
			"difficulty": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"user_difficulty": map[string]any{"type": "string"},
					"normalized": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
				},
				"required":             []any{"user_difficulty", "normalized"},
				"additionalProperties": false,
			},
			"constraints": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"opportunities": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"suggested_tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{
			"summary", "primary_goal", "content_type",
			"recommended_problem_count", "include_answers", "format_plan",
			"topic_plan", "difficulty", "constraints", "opportunities",
			"suggested_tags",
		},
		"additionalProperties": false,
	},
}
