// Package pipeline drives one item set generation run through its state
// machine: STRATEGY, CLASSIFY, COMPOSE, GENERATE, a bounded
// evaluate/refine loop, FINALIZE and VALIDATE. The public contract is
// that Run always returns a result; validation failures and panics are
// converted into a degraded placeholder at the single top-level catch.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/itemforge/internal/classify"
	"github.com/abhisek/itemforge/internal/compose"
	"github.com/abhisek/itemforge/internal/draft"
	"github.com/abhisek/itemforge/internal/finalize"
	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/store"
	"github.com/abhisek/itemforge/internal/strategy"
)

// RunResult is the pipeline's public output.
type RunResult struct {
	ItemSet  itemset.Draft `json:"itemSet"`
	Message  string        `json:"message"`
	Metadata Metadata      `json:"metadata"`
}

// Orchestrator wires the stages together. One Orchestrator may serve
// concurrent runs; each run is stateless.
type Orchestrator struct {
	planner   *strategy.Planner
	composer  *compose.Composer
	generator *draft.Generator
	evaluator *draft.Evaluator
	refiner   *draft.Refiner

	tags       *classify.TagsUnit
	topic      *classify.TopicUnit
	ageBand    *classify.Unit[classify.AgeBand]
	difficulty *classify.DifficultyUnit
	situation  *classify.SituationUnit

	// events may be nil; the pipeline never requires persistence.
	events store.EventRepo
}

// New creates an Orchestrator with default stage configurations. provider
// may be nil (every stage degrades deterministically); events may be nil.
func New(provider oracle.Provider, events store.EventRepo) *Orchestrator {
	return &Orchestrator{
		planner:    strategy.New(provider, strategy.DefaultConfig()),
		composer:   compose.New(provider, compose.DefaultConfig()),
		generator:  draft.NewGenerator(provider, draft.DefaultGeneratorConfig()),
		evaluator:  draft.NewEvaluator(provider, draft.DefaultEvaluatorConfig()),
		refiner:    draft.NewRefiner(provider, draft.DefaultRefinerConfig()),
		tags:       classify.NewTagsUnit(provider),
		topic:      classify.NewTopicUnit(provider),
		ageBand:    classify.NewAgeBandUnit(provider),
		difficulty: classify.NewDifficultyUnit(provider),
		situation:  classify.NewSituationUnit(provider),
		events:     events,
	}
}

// Run executes one generation run. It never returns an error and never
// panics outward: any raised failure becomes a degraded placeholder
// result with an explanatory message.
func (o *Orchestrator) Run(ctx context.Context, req request.CreationRequest, opts Options) (result RunResult) {
	opts = opts.normalized()

	meta := Metadata{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	defer func() {
		if r := recover(); r != nil {
			result = o.degraded(req, meta, fmt.Sprintf("pipeline panicked: %v", r))
		}
		result.Metadata.Duration = time.Since(result.Metadata.StartedAt)
		o.appendRunEvent(ctx, result)
	}()

	set, err := o.run(ctx, req, opts, &meta)
	if err != nil {
		return o.degraded(req, meta, err.Error())
	}

	return RunResult{
		ItemSet: set,
		Message: fmt.Sprintf("generated %d items in %d evaluation pass(es), final score %.1f",
			len(set.Blocks), meta.Iterations, meta.finalScore()),
		Metadata: meta,
	}
}

// run walks the state machine. It returns an error only from the
// validation gate; every other stage is total.
func (o *Orchestrator) run(ctx context.Context, req request.CreationRequest, opts Options, meta *Metadata) (itemset.Draft, error) {
	var strat strategy.Strategy
	o.timed(meta, StateStrategy, func() {
		strat = o.planner.Plan(ctx, req, opts.ProblemCount, opts.IncludeAnswers)
	})
	meta.Strategy = strat
	n := strat.RecommendedProblemCount
	answers := strat.IncludeAnswers

	o.timed(meta, StateClassify, func() {
		meta.Classifications = o.classify(ctx, req)
	})

	var pkg compose.Package
	o.timed(meta, StateCompose, func() {
		pkg = o.composer.Compose(ctx, req, strat, n, answers)
	})

	var current itemset.Draft
	o.timed(meta, StateGenerate, func() {
		var notes []string
		current, notes = o.generator.Generate(ctx, pkg, strat)
		meta.Notes = append(meta.Notes, notes...)
	})

	// Bounded evaluate/refine loop. Each refinement yields a new draft
	// snapshot; the last evaluation is accepted even when it fails.
	threshold := *opts.ScoreThreshold
	for i := 1; i <= opts.MaxIterations; i++ {
		var eval draft.Evaluation
		o.timed(meta, StateEvaluate, func() {
			eval = o.evaluator.Evaluate(ctx, req, strat, current, threshold)
		})
		meta.Iterations = i
		meta.Evaluations = append(meta.Evaluations, eval)

		if eval.Pass || i == opts.MaxIterations {
			break
		}

		o.timed(meta, StateRefine, func() {
			next, changes, notes := o.refiner.Refine(ctx, req, strat, current, eval, i)
			current = next
			meta.Refinements = append(meta.Refinements, RefinementLog{
				Iteration:      i,
				AppliedChanges: changes,
				Notes:          notes,
			})
		})
	}

	var final itemset.Draft
	o.timed(meta, StateFinalize, func() {
		var warnings []string
		final, warnings = finalize.Finalize(req, strat, current, n, answers)
		meta.Warnings = append(meta.Warnings, warnings...)
	})

	var vErr error
	o.timed(meta, StateValidate, func() {
		vErr = finalize.Validate(final, strat, req, n, answers)
	})
	if vErr != nil {
		return itemset.Draft{}, vErr
	}

	return final, nil
}

// classify fans out the five request classifiers concurrently and joins
// them. Every unit is total, so the group never errors and no result is
// missing.
func (o *Orchestrator) classify(ctx context.Context, req request.CreationRequest) Classifications {
	text := req.CombinedText()

	var cls Classifications
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cls.Tags = o.tags.Suggest(gctx, req)
		return nil
	})
	g.Go(func() error {
		cls.Topic = o.topic.Classify(gctx, text)
		return nil
	})
	g.Go(func() error {
		cls.AgeBand = o.ageBand.Classify(gctx, text)
		return nil
	})
	g.Go(func() error {
		cls.Difficulty = o.difficulty.Classify(gctx, req.Difficulty+" "+text)
		return nil
	})
	g.Go(func() error {
		cls.Situation = o.situation.Classify(gctx, text)
		return nil
	})
	_ = g.Wait()

	return cls
}

// timed runs fn and records its wall-clock duration under state.
func (o *Orchestrator) timed(meta *Metadata, state State, fn func()) {
	start := time.Now()
	fn()
	meta.Timings = append(meta.Timings, StateTiming{State: state, Duration: time.Since(start)})
}

// degraded builds the placeholder result: a zero-block set with a
// topic-derived title. This is the only shape a failed run ever takes.
func (o *Orchestrator) degraded(req request.CreationRequest, meta Metadata, reason string) RunResult {
	meta.Degraded = true

	return RunResult{
		ItemSet: itemset.Draft{
			Title:  degradedTitle(req),
			Tags:   classify.SynthesizeTags(req),
			Blocks: []itemset.Item{},
		},
		Message:  fmt.Sprintf("item set generation did not complete: %s", reason),
		Metadata: meta,
	}
}

// degradedTitle derives the placeholder title from the requested topics.
func degradedTitle(req request.CreationRequest) string {
	topics := strings.TrimSpace(strings.Join(req.Topics, ", "))
	if topics == "" {
		return "문제집"
	}
	return topics + " 문제집"
}

// appendRunEvent records the run outcome when a store is attached. Event
// trail failures are ignored; observability never fails a run.
func (o *Orchestrator) appendRunEvent(ctx context.Context, result RunResult) {
	if o.events == nil {
		return
	}
	_ = o.events.AppendPipelineRun(ctx, store.PipelineRunEventData{
		RunID:          result.Metadata.RunID,
		ProblemCount:   result.Metadata.Strategy.RecommendedProblemCount,
		IncludeAnswers: result.Metadata.Strategy.IncludeAnswers,
		Iterations:     result.Metadata.Iterations,
		FinalScore:     result.Metadata.finalScore(),
		Passed:         result.Metadata.passed(),
		Degraded:       result.Metadata.Degraded,
		DurationMs:     result.Metadata.Duration.Milliseconds(),
		Message:        result.Message,
	})
}
