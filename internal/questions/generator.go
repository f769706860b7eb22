package questions

import (
	"context"

	"github.com/abhisek/careerprep/internal/profile"
)

// Generator produces an ordered question set for a subject profile.
// Implementations must return a non-empty set or an error.
type Generator interface {
	Generate(ctx context.Context, p profile.Profile) (Set, error)
}
