package questions

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySet is returned when a generator produces no questions.
var ErrEmptySet = errors.New("question set is empty")

// Validator checks a generated question for structural problems.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name is a short identifier used in error messages, e.g. "structural".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Validator string
	Index     int // position of the question in its set, -1 when unknown
	Message   string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("question %d: validator %q: %s", e.Index+1, e.Validator, e.Message)
	}
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators is the validator chain every generated set runs through.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&OptionsValidator{},
	}
}

// CheckSet runs validators over every question in order and rejects empty
// sets and repeated prompts. The first failure stops the check.
func CheckSet(set Set, validators []Validator) error {
	if len(set) == 0 {
		return ErrEmptySet
	}

	seen := make(map[string]int, len(set))
	for i := range set {
		q := &set[i]
		for _, v := range validators {
			if verr := v.Validate(q); verr != nil {
				verr.Index = i
				return verr
			}
		}

		key := strings.ToLower(strings.TrimSpace(q.Prompt))
		if first, dup := seen[key]; dup {
			return &ValidationError{
				Validator: "dedup",
				Index:     i,
				Message:   fmt.Sprintf("repeats question %d", first+1),
			}
		}
		seen[key] = i
	}
	return nil
}
