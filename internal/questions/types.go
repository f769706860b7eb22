package questions

import "slices"

// Question is a single multiple-choice interview question.
// Questions are immutable once generated.
type Question struct {
	// Prompt is the question text shown to the candidate.
	Prompt string `json:"question"`

	// Options holds the answer choices in display order. Typically 4.
	Options []string `json:"options"`

	// CorrectAnswer is the text of the correct option.
	CorrectAnswer string `json:"correctAnswer"`

	// Explanation is shown after the candidate answers.
	Explanation string `json:"explanation"`
}

// HasOption reports whether choice exactly matches one of the options.
func (q Question) HasOption(choice string) bool {
	return slices.Contains(q.Options, choice)
}

// Clone returns a deep copy so callers cannot mutate shared option slices.
func (q Question) Clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// Set is an ordered question set produced by a Generator.
type Set []Question

// Len returns the number of questions in the set.
func (s Set) Len() int { return len(s) }

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for i, q := range s {
		out[i] = q.Clone()
	}
	return out
}
