// Package classify implements the total text→label classifiers behind the
// pipeline's tag, topic, age-band, difficulty, situation and item-type
// judgments. Every classifier tries the oracle first and falls back to a
// deterministic keyword table; none of them can fail or return an empty
// primary label.
package classify

// Provenance records which path produced a classification.
type Provenance string

const (
	// ProvenanceOracle means the oracle answered and its label survived
	// vocabulary coercion.
	ProvenanceOracle Provenance = "oracle"

	// ProvenanceHeuristic means the keyword fallback ran, either because
	// the oracle failed or none was configured.
	ProvenanceHeuristic Provenance = "heuristic"
)

// Result is a classification with one primary label from a fixed
// vocabulary, optional secondary labels, and provenance.
type Result[T ~string] struct {
	Primary    T
	Secondary  []T
	Rationale  string
	Confidence float64
	Provenance Provenance
}
