package draft

import "github.com/abhisek/itemforge/internal/oracle"

// itemTypes mirrors the itemset type enum for schema construction.
var itemTypes = []string{"default", "mcq", "ranking", "ox", "matching"}

func entrySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":   map[string]any{"type": "string"},
			"text": map[string]any{"type": "string"},
		},
		"required":             []string{"id", "text"},
		"additionalProperties": false,
	}
}

// blockSchema describes one item. Content and answer stay open objects
// here; per-type payload conformance is enforced by the typed JSON codec
// and the deterministic evaluator, not the oracle-side schema, because the
// discriminated union would need conditional schema features not every
// provider supports.
func blockSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{"type": "string"},
			"type": map[string]any{
				"type": "string",
				"enum": itemTypes,
			},
			"question": map[string]any{"type": "string"},
			"content": map[string]any{
				"type":        "object",
				"description": "Type-specific payload. mcq: {choices:[{id,text}]}. ranking: {entries:[{id,text}]}. ox: {trueLabel,falseLabel}. matching: {left:[{id,text}],right:[{id,text}]}. default: {guide}.",
			},
			"answer": map[string]any{
				"type":        "object",
				"description": "Type-specific payload. mcq: {choiceIds:[string]}. ranking: {order:[string]}. ox: {value:bool}. matching: {pairs:[{leftId,rightId}]}. default: {text}. Omit when answers are not requested.",
			},
			"order": map[string]any{"type": "integer"},
		},
		"required":             []string{"type", "question", "content", "order"},
		"additionalProperties": false,
	}
}

// DraftSchema constrains draft generation and refinement output.
var DraftSchema = &oracle.Schema{
	Name:        "item_set_draft",
	Description: "A complete quiz item set draft",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"blocks": map[string]any{
				"type":  "array",
				"items": blockSchema(),
			},
		},
		"required":             []string{"title", "description", "tags", "blocks"},
		"additionalProperties": false,
	},
}

// evaluationSchema constrains the oracle judgment in Evaluate.
var evaluationSchema = &oracle.Schema{
	Name:        "draft_evaluation",
	Description: "Scored judgment of a quiz item set draft",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overall_score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 10,
			},
			"pass": map[string]any{"type": "boolean"},
			"issues": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"severity": map[string]any{
							"type": "string",
							"enum": []string{"low", "medium", "high", "critical"},
						},
						"message":     map[string]any{"type": "string"},
						"block_index": map[string]any{"type": "integer"},
					},
					"required":             []string{"severity", "message"},
					"additionalProperties": false,
				},
			},
			"topic_coverage": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"label":             map[string]any{"type": "string"},
						"meets_expectation": map[string]any{"type": "boolean"},
						"note":              map[string]any{"type": "string"},
					},
					"required":             []string{"label", "meets_expectation"},
					"additionalProperties": false,
				},
			},
			"suggestions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"notes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []string{"overall_score", "pass", "issues"},
		"additionalProperties": false,
	},
}

// refinementSchema wraps the draft schema with a change log.
var refinementSchema = &oracle.Schema{
	Name:        "refined_item_set_draft",
	Description: "A minimally edited quiz item set draft with a change log",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"draft": DraftSchema.Definition,
			"applied_changes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []string{"draft", "applied_changes"},
		"additionalProperties": false,
	},
}
