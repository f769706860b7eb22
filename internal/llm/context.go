package llm

import "context"

// Purposes label every recorded LLM event.
const (
	PurposeQuestionSet    = "question-set"
	PurposeImprovementTip = "improvement-tip"
)

type (
	purposeKey   struct{}
	attemptIDKey struct{}
)

// WithPurpose tags ctx with the reason for the LLM call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose on ctx, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}

// WithAttemptID tags ctx with the interview attempt that made the call.
func WithAttemptID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, attemptIDKey{}, id)
}

// AttemptIDFrom returns the attempt id on ctx, or "".
func AttemptIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(attemptIDKey{}).(string)
	return id
}
