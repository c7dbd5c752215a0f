package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPipelineRun(ctx context.Context, data PipelineRunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PipelineRunEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetProblemCount(data.ProblemCount).
		SetIncludeAnswers(data.IncludeAnswers).
		SetIterations(data.Iterations).
		SetFinalScore(data.FinalScore).
		SetPassed(data.Passed).
		SetDegraded(data.Degraded).
		SetDurationMs(data.DurationMs).
		SetMessage(data.Message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save pipeline run event: %w", err)
	}

	return nil
}
