package oracle

import "context"

type contextKey string

const purposeKey contextKey = "oracle_purpose"

// WithPurpose attaches a purpose label to the context for the event trail.
// Pipeline stages use: strategy, classify-<kind>, compose-polish,
// draft-gen, draft-eval, draft-refine.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
