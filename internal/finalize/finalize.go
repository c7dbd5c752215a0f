// Package finalize closes out a draft: it enforces the count and answer
// policy, fills presentation fallbacks, and hard-gates the result.
// Finalize never fails; Validate is the one stage allowed to.
package finalize

import (
	"fmt"
	"strings"

	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/strategy"
)

// maxTags caps the final tag set.
const maxTags = 6

// maxFallbackTitle caps the strategy-derived title fallback, in runes.
const maxFallbackTitle = 60

// fallbackOwnerID marks sets whose real owner is assigned downstream.
const fallbackOwnerID = "itemforge"

// Finalize produces the presentation-ready item set. It truncates blocks
// to problemCount (never pads; a shortfall is only a warning), reassigns
// order by position, strips answers when includeAnswers is false, fills
// blank owner/title/description, and merges the tag set. Missing answers
// when includeAnswers is true are not injected here; the evaluator already
// flagged them. Finalize is idempotent: running it again on its own output
// with the same arguments changes nothing.
func Finalize(req request.CreationRequest, strat strategy.Strategy, d itemset.Draft, problemCount int, includeAnswers bool) (itemset.Draft, []string) {
	out := d.Clone()
	var warnings []string

	if len(out.Blocks) > problemCount {
		warnings = append(warnings, fmt.Sprintf("draft had %d blocks; truncated to %d", len(out.Blocks), problemCount))
		out.Blocks = out.Blocks[:problemCount]
	} else if len(out.Blocks) < problemCount {
		warnings = append(warnings, fmt.Sprintf("draft has only %d of %d blocks", len(out.Blocks), problemCount))
	}

	for i := range out.Blocks {
		out.Blocks[i].Order = i
		if !includeAnswers {
			out.Blocks[i].Answer = nil
		}
	}

	if strings.TrimSpace(out.OwnerID) == "" {
		out.OwnerID = fallbackOwnerID
	}
	if strings.TrimSpace(out.Title) == "" {
		out.Title = fallbackTitle(strat)
	}
	if strings.TrimSpace(out.Description) == "" {
		out.Description = fallbackDescription(req, strat)
	}

	out.Tags = mergeTags(out.Tags, strat, req)

	if err := Validate(out, strat, req, problemCount, includeAnswers); err != nil {
		warnings = append(warnings, fmt.Sprintf("finalized set still fails validation: %v", err))
	}

	return out, warnings
}

func fallbackTitle(strat strategy.Strategy) string {
	title := strings.TrimSpace(strat.Summary)
	if title == "" {
		title = "Generated item set"
	}
	runes := []rune(title)
	if len(runes) > maxFallbackTitle {
		title = string(runes[:maxFallbackTitle])
	}
	return title
}

func fallbackDescription(req request.CreationRequest, strat strategy.Strategy) string {
	if goal := strings.TrimSpace(strat.PrimaryGoal); goal != "" {
		return goal
	}
	return fmt.Sprintf("A %s item set about %s.", strat.Difficulty.Normalized, strings.Join(req.Topics, ", "))
}

// mergeTags unions the draft's tags with the strategy suggestions and the
// request context, blank-filtered and deduplicated in first-seen order,
// capped at maxTags. Existing tags keep priority so repeated finalization
// is stable.
func mergeTags(existing []string, strat strategy.Strategy, req request.CreationRequest) []string {
	candidates := make([]string, 0, len(existing)+len(strat.SuggestedTags)+len(req.Topics)+3)
	candidates = append(candidates, existing...)
	candidates = append(candidates, strat.SuggestedTags...)
	candidates = append(candidates, req.Situation, req.Platform, req.AgeGroup)
	candidates = append(candidates, req.Topics...)

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, maxTags)
	for _, tag := range candidates {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == maxTags {
			break
		}
	}
	return out
}
