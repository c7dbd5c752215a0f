package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRunEvent records one end-to-end pipeline run: how many
// evaluate/refine iterations it took, whether it degraded, and the final
// score. The item set itself is never stored here; persistence of results
// belongs to the caller.
type PipelineRunEvent struct {
	ent.Schema
}

func (PipelineRunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PipelineRunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Comment("UUID of the pipeline run"),
		field.Int("problem_count").
			Comment("Resolved problem count for the run"),
		field.Bool("include_answers").
			Comment("Resolved answer policy for the run"),
		field.Int("iterations").
			Default(0).
			Comment("Evaluate/refine iterations executed"),
		field.Float("final_score").
			Default(0).
			Comment("Overall score of the last evaluation"),
		field.Bool("passed").
			Comment("Whether the last evaluation passed"),
		field.Bool("degraded").
			Comment("Whether the run returned a degraded placeholder"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock duration of the whole run"),
		field.String("message").
			Default("").
			Comment("Human-readable run outcome"),
	}
}

func (PipelineRunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("degraded"),
	}
}
