package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

// RetryProvider re-sends failed requests with exponential backoff. A
// schema failure is retried at most once per call.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	log    zerolog.Logger
}

// WithRetry wraps p. MaxAttempts below one is treated as one.
func WithRetry(p Provider, cfg RetryConfig, log zerolog.Logger) Provider {
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	return &RetryProvider{inner: p, config: cfg, log: log}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	schemaRetried := false
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		var invalid *ErrInvalidResponse
		isInvalid := errors.As(err, &invalid)
		if attempt >= r.config.MaxAttempts || !Retryable(err) || (isInvalid && schemaRetried) {
			return nil, err
		}
		schemaRetried = schemaRetried || isInvalid

		wait := r.backoff(attempt-1, err)
		r.log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("wait", wait).
			Str("purpose", PurposeFrom(ctx)).
			Msg("LLM call failed, retrying")

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// backoff is InitialWait * Multiplier^n capped at MaxWait, with up to 20%
// jitter either way. A rate-limit hint from the provider replaces it.
func (r *RetryProvider) backoff(n int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	base := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(n))
	base = math.Min(base, float64(r.config.MaxWait))
	jitter := base * 0.2 * (rand.Float64()*2 - 1)
	return time.Duration(math.Max(base+jitter, 0))
}
