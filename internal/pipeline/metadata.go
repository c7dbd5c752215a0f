package pipeline

import (
	"time"

	"github.com/abhisek/itemforge/internal/classify"
	"github.com/abhisek/itemforge/internal/draft"
	"github.com/abhisek/itemforge/internal/strategy"
)

// State identifies one pipeline stage.
type State string

const (
	StateStrategy State = "STRATEGY"
	StateClassify State = "CLASSIFY"
	StateCompose  State = "COMPOSE"
	StateGenerate State = "GENERATE"
	StateEvaluate State = "EVALUATE"
	StateRefine   State = "REFINE"
	StateFinalize State = "FINALIZE"
	StateValidate State = "VALIDATE"
)

// StateTiming is the wall-clock duration of one stage, in run order.
// EVALUATE and REFINE appear once per loop pass.
type StateTiming struct {
	State    State         `json:"state"`
	Duration time.Duration `json:"duration"`
}

// Classifications holds the joined fan-out results.
type Classifications struct {
	Tags       classify.TagsResult               `json:"tags"`
	Topic      classify.TopicResult              `json:"topic"`
	AgeBand    classify.Result[classify.AgeBand] `json:"ageBand"`
	Difficulty classify.DifficultyResult         `json:"difficulty"`
	Situation  classify.SituationResult          `json:"situation"`
}

// RefinementLog records one refinement pass.
type RefinementLog struct {
	Iteration      int      `json:"iteration"`
	AppliedChanges []string `json:"appliedChanges,omitempty"`
	Notes          []string `json:"notes,omitempty"`
}

// Metadata is the run's audit trail.
type Metadata struct {
	RunID     string        `json:"runId"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`

	Timings []StateTiming `json:"timings"`

	Classifications Classifications   `json:"classifications"`
	Strategy        strategy.Strategy `json:"strategy"`

	// Iterations counts evaluations; Evaluations and Refinements are
	// retained per pass.
	Iterations  int                `json:"iterations"`
	Evaluations []draft.Evaluation `json:"evaluations"`
	Refinements []RefinementLog    `json:"refinements,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
	Notes    []string `json:"notes,omitempty"`

	// Degraded marks a run that fell back to the placeholder result.
	Degraded bool `json:"degraded"`
}

// finalScore returns the last evaluation's score, or 0 when none ran.
func (m *Metadata) finalScore() float64 {
	if len(m.Evaluations) == 0 {
		return 0
	}
	return m.Evaluations[len(m.Evaluations)-1].OverallScore
}

// passed reports whether the last evaluation passed.
func (m *Metadata) passed() bool {
	if len(m.Evaluations) == 0 {
		return false
	}
	return m.Evaluations[len(m.Evaluations)-1].Pass
}
