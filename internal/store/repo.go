package store

import (
	"time"

	"github.com/abhisek/careerprep/internal/llm"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match ("" = any)
}

// LLMEvent is a stored LLM call.
type LLMEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	llm.Event
}

// PurposeUsage aggregates LLM calls by purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
	Failures     int
}

// ModelUsage aggregates LLM calls by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// Cost estimates the USD spend for this usage. ok is false for models
// missing from the pricing table.
func (u ModelUsage) Cost() (cost float64, ok bool) {
	c := llm.LookupCost(u.Model)
	if c == nil {
		return 0, false
	}
	return c.Cost(u.InputTokens, u.OutputTokens), true
}
