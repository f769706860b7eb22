package questions

import "strings"

const (
	maxPromptLength      = 600
	maxExplanationLength = 1200
	minOptions           = 2
	maxOptions           = 6
)

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	switch {
	case strings.TrimSpace(q.Prompt) == "":
		return v.fail("question is empty")
	case len(q.Prompt) > maxPromptLength:
		return v.fail("question exceeds 600 characters")
	case strings.TrimSpace(q.Explanation) == "":
		return v.fail("explanation is empty")
	case len(q.Explanation) > maxExplanationLength:
		return v.fail("explanation exceeds 1200 characters")
	case len(q.Options) < minOptions:
		return v.fail("needs at least 2 options")
	case len(q.Options) > maxOptions:
		return v.fail("has more than 6 options")
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Index: -1, Message: msg}
}

// OptionsValidator checks that there are at least two options, that they
// are non-empty and pairwise distinct, and that the correct answer is
// exactly one of them.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Question) *ValidationError {
	if len(q.Options) < minOptions {
		return v.fail("needs at least 2 options")
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return v.fail("contains an empty option")
		}
		if seen[opt] {
			return v.fail("option " + quote(opt) + " appears more than once")
		}
		seen[opt] = true
	}
	if !seen[q.CorrectAnswer] {
		return v.fail("correct answer " + quote(q.CorrectAnswer) + " is not one of the options")
	}
	return nil
}

func (v *OptionsValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Index: -1, Message: msg}
}

func quote(s string) string {
	return "\"" + s + "\""
}
