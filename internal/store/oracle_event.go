package store

import (
	"context"
	"fmt"

	"github.com/abhisek/itemforge/ent"
	"github.com/abhisek/itemforge/ent/oraclerequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.OracleRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save oracle request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryOracleEvents(ctx context.Context, opts QueryOpts) ([]OracleRequestEvent, error) {
	q := r.client.OracleRequestEvent.Query().
		Order(ent.Desc(oraclerequestevent.FieldSequence))

	if opts.Purpose != "" {
		q = q.Where(oraclerequestevent.PurposeEQ(opts.Purpose))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query oracle events: %w", err)
	}

	out := make([]OracleRequestEvent, len(rows))
	for i, row := range rows {
		out[i] = fromEntOracleEvent(row)
	}
	return out, nil
}

func (r *eventRepo) GetOracleEvent(ctx context.Context, id int) (*OracleRequestEvent, error) {
	row, err := r.client.OracleRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get oracle event %d: %w", id, err)
	}
	e := fromEntOracleEvent(row)
	return &e, nil
}

func fromEntOracleEvent(row *ent.OracleRequestEvent) OracleRequestEvent {
	return OracleRequestEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		OracleRequestEventData: OracleRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
