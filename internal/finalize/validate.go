package finalize

import (
	"fmt"
	"strings"

	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/strategy"
)

// ValidationError carries every rule the item set violated.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("item set validation failed: %s", strings.Join(e.Violations, "; "))
}

// Validate is the hard gate on the finalized set, unlike the soft scored
// evaluation. It checks the block count, the per-block answer policy,
// question text, tag coverage of the strategy suggestions, and the title
// and description. All violations are gathered into one error so the
// caller sees the full picture at once.
func Validate(d itemset.Draft, strat strategy.Strategy, req request.CreationRequest, problemCount int, includeAnswers bool) error {
	var violations []string

	if len(d.Blocks) != problemCount {
		violations = append(violations, fmt.Sprintf("block count is %d, want %d", len(d.Blocks), problemCount))
	}

	for i, block := range d.Blocks {
		if includeAnswers && block.Answer == nil {
			violations = append(violations, fmt.Sprintf("block %d is missing its answer", i))
		}
		if !includeAnswers && block.Answer != nil {
			violations = append(violations, fmt.Sprintf("block %d carries an answer but answers were not requested", i))
		}
		if strings.TrimSpace(block.Question) == "" {
			violations = append(violations, fmt.Sprintf("block %d has a blank question", i))
		}
	}

	if len(d.Tags) == 0 {
		violations = append(violations, "tag set is empty")
	} else if missing := missingTags(d.Tags, strat.SuggestedTags); len(missing) > 0 {
		violations = append(violations, fmt.Sprintf("tags do not cover strategy suggestions: missing %s", strings.Join(missing, ", ")))
	}

	if strings.TrimSpace(d.Title) == "" {
		violations = append(violations, "title is blank")
	}
	if strings.TrimSpace(d.Description) == "" {
		violations = append(violations, "description is blank")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// missingTags returns the suggested tags absent from tags, compared
// case-insensitively.
func missingTags(tags, suggested []string) []string {
	have := make(map[string]bool, len(tags))
	for _, t := range tags {
		have[strings.ToLower(strings.TrimSpace(t))] = true
	}

	var missing []string
	for _, s := range suggested {
		if !have[strings.ToLower(strings.TrimSpace(s))] {
			missing = append(missing, s)
		}
	}
	return missing
}
