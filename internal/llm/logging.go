package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Event is the persisted record of one LLM call.
type Event struct {
	Provider     string
	Model        string
	Purpose      string
	AttemptID    string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRecorder persists LLM call events.
type EventRecorder interface {
	RecordLLMEvent(ctx context.Context, e Event) error
}

// LoggingProvider is a decorator that records every LLM request as an event
// and emits a structured log line for it.
type LoggingProvider struct {
	inner    Provider
	name     string
	recorder EventRecorder
	log      zerolog.Logger
}

// WithLogging wraps a Provider with event logging. recorder may be nil.
func WithLogging(p Provider, name string, recorder EventRecorder, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, name: name, recorder: recorder, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	e := Event{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		AttemptID:   AttemptIDFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		e.InputTokens = resp.Usage.InputTokens
		e.OutputTokens = resp.Usage.OutputTokens
		e.Model = resp.Model
		e.ResponseBody = string(resp.Content)
	}
	if err != nil {
		e.ErrorMessage = err.Error()
	}

	ev := l.log.Debug()
	if err != nil {
		ev = l.log.Warn().Err(err)
	}
	ev.Str("provider", e.Provider).
		Str("model", e.Model).
		Str("purpose", e.Purpose).
		Str("attempt_id", e.AttemptID).
		Int("input_tokens", e.InputTokens).
		Int("output_tokens", e.OutputTokens).
		Int64("latency_ms", e.LatencyMs).
		Msg("llm request")

	// A failed write never fails the request.
	if l.recorder != nil {
		if recErr := l.recorder.RecordLLMEvent(ctx, e); recErr != nil {
			l.log.Warn().Err(recErr).Msg("failed to record LLM event")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
