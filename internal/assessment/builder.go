package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by Storage.Get when no record has the given id.
var ErrNotFound = errors.New("assessment not found")

// Storage persists assessment records.
type Storage interface {
	// Save persists d and returns the stored record with ID and CreatedAt set.
	Save(ctx context.Context, d Draft) (*Record, error)

	// ListByUser returns every record for userID in no particular order.
	ListByUser(ctx context.Context, userID string) ([]Record, error)

	// Get returns the record with id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)
}

// SaveError wraps a storage failure. The draft that failed to save is
// still valid and can be submitted again.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save assessment: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Builder submits drafts to storage.
type Builder struct {
	storage Storage
	log     zerolog.Logger
}

// NewBuilder creates a Builder backed by storage.
func NewBuilder(storage Storage, log zerolog.Logger) *Builder {
	return &Builder{storage: storage, log: log.With().Str("component", "assessment").Logger()}
}

// Submit persists d with exactly one Save call. Failures come back as
// *SaveError. d is never modified.
func (b *Builder) Submit(ctx context.Context, d Draft) (*Record, error) {
	if err := d.Validate(); err != nil {
		return nil, &SaveError{Err: err}
	}

	rec, err := b.storage.Save(ctx, d)
	if err != nil {
		b.log.Error().Err(err).Str("user", d.UserID).Msg("saving assessment failed")
		return nil, &SaveError{Err: err}
	}

	b.log.Info().
		Str("user", d.UserID).
		Str("assessment_id", rec.ID).
		Float64("score", d.QuizScore).
		Msg("assessment saved")
	return rec, nil
}

// Validate checks the invariants storage relies on.
func (d Draft) Validate() error {
	switch {
	case d.UserID == "":
		return errors.New("draft has no user")
	case d.QuizScore < 0 || d.QuizScore > 100:
		return fmt.Errorf("quiz score %.2f outside [0, 100]", d.QuizScore)
	case len(d.Questions) == 0:
		return errors.New("draft has no questions")
	}
	return nil
}
