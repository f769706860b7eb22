package assessment

import (
	"context"
	"slices"
)

// DateLayout is how assessment dates are shown in history listings.
const DateLayout = "January 02, 2006 15:04"

// History returns userID's records newest first.
func (b *Builder) History(ctx context.Context, userID string) ([]Record, error) {
	recs, err := b.storage.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(recs)
	return recs, nil
}

// Lookup returns a single record by id.
func (b *Builder) Lookup(ctx context.Context, id string) (*Record, error) {
	return b.storage.Get(ctx, id)
}

// SortNewestFirst orders records by CreatedAt descending, keeping input
// order among equal timestamps.
func SortNewestFirst(recs []Record) {
	slices.SortStableFunc(recs, func(a, b Record) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
