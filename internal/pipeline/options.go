package pipeline

// Iteration and threshold bounds for one run.
const (
	MinIterations = 1
	MaxIterations = 3

	DefaultMaxIterations  = 2
	DefaultScoreThreshold = 9.0
)

// Options tunes one pipeline run. Out-of-range values are clamped, not
// rejected; nil pointers mean "resolve from the request".
type Options struct {
	// ProblemCount overrides the item count, clamped to [1,50].
	ProblemCount *int

	// IncludeAnswers overrides the answer policy.
	IncludeAnswers *bool

	// MaxIterations bounds the evaluate/refine loop, clamped to [1,3].
	// Zero means DefaultMaxIterations.
	MaxIterations int

	// ScoreThreshold is the passing score, clamped to [0,10]. Nil means
	// DefaultScoreThreshold.
	ScoreThreshold *float64
}

// normalized returns a copy with every field clamped into range.
func (o Options) normalized() Options {
	out := o

	if out.ProblemCount != nil {
		n := *out.ProblemCount
		if n < 1 {
			n = 1
		}
		if n > 50 {
			n = 50
		}
		out.ProblemCount = &n
	}

	if out.MaxIterations == 0 {
		out.MaxIterations = DefaultMaxIterations
	}
	if out.MaxIterations < MinIterations {
		out.MaxIterations = MinIterations
	}
	if out.MaxIterations > MaxIterations {
		out.MaxIterations = MaxIterations
	}

	if out.ScoreThreshold == nil {
		t := DefaultScoreThreshold
		out.ScoreThreshold = &t
	} else {
		t := *out.ScoreThreshold
		if t < 0 {
			t = 0
		}
		if t > 10 {
			t = 10
		}
		out.ScoreThreshold = &t
	}

	return out
}
