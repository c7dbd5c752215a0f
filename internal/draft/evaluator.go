package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/itemforge/internal/classify"
	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/strategy"
)

// EvaluatorConfig controls the judgment call.
type EvaluatorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEvaluatorConfig returns recommended evaluation defaults.
// Judgment wants low temperature.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxTokens:   2048,
		Temperature: 0.1,
	}
}

// Evaluator scores drafts against their strategy.
type Evaluator struct {
	provider oracle.Provider
	cfg      EvaluatorConfig
}

// NewEvaluator creates an Evaluator. provider may be nil; scoring then
// always uses the deterministic formula.
func NewEvaluator(provider oracle.Provider, cfg EvaluatorConfig) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

const evaluateSystem = `You are a strict quiz reviewer. Score the draft item set against its plan on a 0-10 scale and report concrete issues. Judge coverage, factual plausibility, clarity and answerability. Deterministic structural findings are supplied; focus your own judgment on content quality.`

// Evaluate scores a draft. The deterministic structural checks always run;
// the oracle judgment is merged on top when available. Evaluate is total.
func (e *Evaluator) Evaluate(ctx context.Context, req request.CreationRequest, strat strategy.Strategy, d itemset.Draft, threshold float64) Evaluation {
	detIssues, formatCov := deterministicChecks(strat, d)

	if e.provider != nil {
		if eval, err := e.evaluateOracle(ctx, req, strat, d, threshold, detIssues, formatCov); err == nil {
			return eval
		}
	}
	return fallbackEvaluation(strat, threshold, detIssues, formatCov)
}

// deterministicChecks runs the structural rules that need no oracle.
func deterministicChecks(strat strategy.Strategy, d itemset.Draft) ([]Issue, []FormatCoverage) {
	var issues []Issue
	n := strat.RecommendedProblemCount

	if len(d.Blocks) != n {
		issues = append(issues, Issue{
			Severity:   SeverityHigh,
			Message:    fmt.Sprintf("draft has %d blocks, target is %d", len(d.Blocks), n),
			BlockIndex: -1,
		})
	}

	for i, block := range d.Blocks {
		if strat.IncludeAnswers {
			if block.Answer == nil {
				issues = append(issues, Issue{
					Severity:   SeverityMedium,
					Message:    fmt.Sprintf("block %d is missing its answer", i),
					BlockIndex: i,
				})
			}
		} else if block.Answer != nil {
			issues = append(issues, Issue{
				Severity:   SeverityHigh,
				Message:    fmt.Sprintf("block %d carries an answer but answers were not requested", i),
				BlockIndex: i,
			})
		}
		if strings.TrimSpace(block.Question) == "" {
			issues = append(issues, Issue{
				Severity:   SeverityMedium,
				Message:    fmt.Sprintf("block %d has a blank question", i),
				BlockIndex: i,
			})
		}
	}

	formatCov := formatCoverage(strat, d)
	tol := formatTolerance(n)
	for _, fc := range formatCov {
		if !fc.WithinTolerance {
			issues = append(issues, Issue{
				Severity:   SeverityMedium,
				Message:    fmt.Sprintf("format %q has %d blocks, expected %d (tolerance %d)", fc.Label, fc.Actual, fc.Expected, tol),
				BlockIndex: -1,
			})
		}
	}

	return issues, formatCov
}

// formatTolerance is the allowed per-format deviation: max(1, n/10).
func formatTolerance(n int) int {
	tol := n / 10
	if tol < 1 {
		tol = 1
	}
	return tol
}

func formatCoverage(strat strategy.Strategy, d itemset.Draft) []FormatCoverage {
	counts := make(map[itemset.Type]int)
	for _, block := range d.Blocks {
		counts[block.Type]++
	}

	tol := formatTolerance(strat.RecommendedProblemCount)
	out := make([]FormatCoverage, 0, len(strat.FormatPlan))
	for _, item := range strat.FormatPlan {
		actual := counts[item.ItemType]
		diff := actual - item.TargetCount
		if diff < 0 {
			diff = -diff
		}
		out = append(out, FormatCoverage{
			Label:           item.Label,
			Expected:        item.TargetCount,
			Actual:          actual,
			WithinTolerance: diff <= tol,
		})
	}
	return out
}

// evaluationOutput is the raw oracle judgment.
type evaluationOutput struct {
	OverallScore float64 `json:"overall_score"`
	Pass         bool    `json:"pass"`
	Issues       []struct {
		Severity   string `json:"severity"`
		Message    string `json:"message"`
		BlockIndex *int   `json:"block_index"`
	} `json:"issues"`
	TopicCoverage []struct {
		Label            string `json:"label"`
		MeetsExpectation bool   `json:"meets_expectation"`
		Note             string `json:"note"`
	} `json:"topic_coverage"`
	Suggestions []string `json:"suggestions"`
	Notes       []string `json:"notes"`
}

func (e *Evaluator) evaluateOracle(ctx context.Context, req request.CreationRequest, strat strategy.Strategy, d itemset.Draft, threshold float64, detIssues []Issue, formatCov []FormatCoverage) (Evaluation, error) {
	ctx = oracle.WithPurpose(ctx, "draft-eval")

	resp, err := e.provider.Generate(ctx, oracle.Request{
		System: evaluateSystem,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: renderEvaluationInput(req, strat, d, detIssues)},
		},
		Schema:      evaluationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return Evaluation{}, err
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Evaluation{}, fmt.Errorf("parse evaluation response: %w", err)
	}

	score := clampScore(raw.OverallScore)

	eval := Evaluation{
		OverallScore:   score,
		Threshold:      threshold,
		Pass:           score >= threshold && raw.Pass,
		FormatCoverage: formatCov,
		Suggestions:    raw.Suggestions,
		Notes:          raw.Notes,
		Provenance:     classify.ProvenanceOracle,
	}

	// Oracle findings lead; deterministic findings are appended unless the
	// oracle already reported the same message at the same severity.
	seen := make(map[string]bool)
	for _, issue := range raw.Issues {
		sev := coerceSeverity(issue.Severity)
		idx := -1
		if issue.BlockIndex != nil {
			idx = *issue.BlockIndex
		}
		eval.Issues = append(eval.Issues, Issue{Severity: sev, Message: issue.Message, BlockIndex: idx})
		seen[issueKey(sev, issue.Message)] = true
	}
	for _, issue := range detIssues {
		if seen[issueKey(issue.Severity, issue.Message)] {
			continue
		}
		eval.Issues = append(eval.Issues, issue)
	}

	// Backfill topic coverage when the oracle omitted it.
	if len(raw.TopicCoverage) > 0 {
		for _, tc := range raw.TopicCoverage {
			eval.TopicCoverage = append(eval.TopicCoverage, TopicCoverage{
				Label:            tc.Label,
				MeetsExpectation: tc.MeetsExpectation,
				Note:             tc.Note,
			})
		}
	} else {
		eval.TopicCoverage = fallbackTopicCoverage(strat)
	}

	return eval, nil
}

// fallbackEvaluation derives a score from the deterministic findings
// alone. Topic coverage is conservatively marked unmet because adequacy
// is an oracle judgment this path cannot make.
func fallbackEvaluation(strat strategy.Strategy, threshold float64, detIssues []Issue, formatCov []FormatCoverage) Evaluation {
	var blocking, medium, other int
	for _, issue := range detIssues {
		switch {
		case issue.Severity.blocking():
			blocking++
		case issue.Severity == SeverityMedium:
			medium++
		default:
			other++
		}
	}

	score := 9.0 - 2*float64(blocking) - float64(medium) - 0.5*float64(other)
	if score < 3 {
		score = 3
	}
	if score > 9.5 {
		score = 9.5
	}

	return Evaluation{
		OverallScore:   score,
		Threshold:      threshold,
		Pass:           blocking == 0,
		FormatCoverage: formatCov,
		TopicCoverage:  fallbackTopicCoverage(strat),
		Issues:         detIssues,
		Notes:          []string{"scored by the deterministic fallback formula; the oracle judgment was unavailable"},
		Provenance:     classify.ProvenanceHeuristic,
	}
}

func fallbackTopicCoverage(strat strategy.Strategy) []TopicCoverage {
	out := make([]TopicCoverage, 0, len(strat.TopicPlan))
	for _, item := range strat.TopicPlan {
		out = append(out, TopicCoverage{
			Label:            item.Label,
			MeetsExpectation: false,
			Note:             "coverage adequacy requires oracle judgment",
		})
	}
	return out
}

func renderEvaluationInput(req request.CreationRequest, strat strategy.Strategy, d itemset.Draft, detIssues []Issue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target: %d %s items about %s, difficulty %s.\n",
		strat.RecommendedProblemCount, strat.ContentType,
		strings.Join(req.Topics, ", "), strat.Difficulty.Normalized)
	if strat.IncludeAnswers {
		b.WriteString("Every item must carry an answer.\n")
	} else {
		b.WriteString("Items must not carry answers.\n")
	}

	if len(detIssues) > 0 {
		b.WriteString("\nStructural findings already detected:\n")
		for _, issue := range detIssues {
			fmt.Fprintf(&b, "- [%s] %s\n", issue.Severity, issue.Message)
		}
	}

	data, err := json.Marshal(d)
	if err != nil {
		data = []byte("{}")
	}
	b.WriteString("\nDraft to evaluate:\n")
	b.Write(data)

	return b.String()
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func coerceSeverity(s string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityLow:
		return SeverityLow
	case SeverityHigh:
		return SeverityHigh
	case SeverityCritical:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}

func issueKey(sev Severity, message string) string {
	return string(sev) + "|" + message
}
