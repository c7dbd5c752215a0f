// Package draft generates, evaluates and refines item set drafts. Every
// stage here is total: oracle failures degrade to deterministic behavior
// instead of propagating, so the pipeline loop always has a draft and an
// evaluation to work with.
package draft

import "github.com/abhisek/itemforge/internal/classify"

// Severity ranks an evaluation issue.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// blocking reports whether an issue of this severity alone fails a draft.
func (s Severity) blocking() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// Issue is one problem found in a draft.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`

	// BlockIndex is the offending block's position, or -1 for set-level
	// issues.
	BlockIndex int `json:"blockIndex"`
}

// FormatCoverage compares one format bucket's actual block count against
// its strategy target.
type FormatCoverage struct {
	Label           string `json:"label"`
	Expected        int    `json:"expected"`
	Actual          int    `json:"actual"`
	WithinTolerance bool   `json:"withinTolerance"`
}

// TopicCoverage records whether one topic bucket is adequately covered.
// Adequacy is an oracle judgment; the deterministic fallback never claims
// it.
type TopicCoverage struct {
	Label            string `json:"label"`
	MeetsExpectation bool   `json:"meetsExpectation"`
	Note             string `json:"note,omitempty"`
}

// Evaluation is the scored judgment of one draft against its strategy.
type Evaluation struct {
	// OverallScore is in [0,10].
	OverallScore float64 `json:"overallScore"`

	Threshold float64 `json:"threshold"`
	Pass      bool    `json:"pass"`

	FormatCoverage []FormatCoverage `json:"formatCoverage"`
	TopicCoverage  []TopicCoverage  `json:"topicCoverage"`

	Issues      []Issue  `json:"issues"`
	Suggestions []string `json:"suggestions,omitempty"`
	Notes       []string `json:"notes,omitempty"`

	// Provenance records whether the score came from the oracle or the
	// deterministic fallback formula.
	Provenance classify.Provenance `json:"provenance"`
}
