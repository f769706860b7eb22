package questions

import (
	"errors"
	"strings"
	"testing"
)

func validQuestion() Question {
	return Question{
		Prompt:        "Which HTTP status code means Not Found?",
		Options:       []string{"200", "301", "404", "500"},
		CorrectAnswer: "404",
		Explanation:   "404 indicates the server could not find the requested resource.",
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
		ok     bool
	}{
		{"valid", func(q *Question) {}, true},
		{"empty prompt", func(q *Question) { q.Prompt = "  " }, false},
		{"long prompt", func(q *Question) { q.Prompt = strings.Repeat("x", 601) }, false},
		{"empty explanation", func(q *Question) { q.Explanation = "" }, false},
		{"one option", func(q *Question) { q.Options = []string{"404"} }, false},
		{"seven options", func(q *Question) { q.Options = []string{"1", "2", "3", "4", "5", "6", "404"} }, false},
		{"two options", func(q *Question) { q.Options = []string{"404", "200"} }, true},
	}
	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := v.Validate(&q)
			if (err == nil) != tt.ok {
				t.Fatalf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestOptionsValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
		ok     bool
	}{
		{"valid", func(q *Question) {}, true},
		{"answer not in options", func(q *Question) { q.CorrectAnswer = "403" }, false},
		{"answer differs by case", func(q *Question) {
			q.Options = []string{"true", "false"}
			q.CorrectAnswer = "True"
		}, false},
		{"duplicate options", func(q *Question) { q.Options = []string{"404", "404", "200"} }, false},
		{"blank option", func(q *Question) { q.Options = []string{"404", " ", "200"} }, false},
		{"single option", func(q *Question) { q.Options = []string{"404"} }, false},
	}
	v := &OptionsValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := v.Validate(&q)
			if (err == nil) != tt.ok {
				t.Fatalf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestCheckSet_Empty(t *testing.T) {
	if err := CheckSet(nil, DefaultValidators()); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
}

func TestCheckSet_ReportsIndex(t *testing.T) {
	bad := validQuestion()
	bad.CorrectAnswer = "418"
	set := Set{validQuestion(), bad}
	set[0].Prompt = "What does DNS resolve?"

	err := CheckSet(set, DefaultValidators())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Index != 1 || verr.Validator != "options" {
		t.Fatalf("unexpected error %+v", verr)
	}
	if !strings.Contains(verr.Error(), "question 2") {
		t.Fatalf("error should name question 2: %s", verr.Error())
	}
}

func TestCheckSet_RejectsDuplicatePrompts(t *testing.T) {
	a := validQuestion()
	b := validQuestion()
	b.Prompt = "  which http status code means not found?  "

	err := CheckSet(Set{a, b}, DefaultValidators())
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "dedup" {
		t.Fatalf("expected dedup error, got %v", err)
	}
}

func TestQuestionHasOption(t *testing.T) {
	q := validQuestion()
	if !q.HasOption("404") {
		t.Fatal("expected 404 to be an option")
	}
	if q.HasOption("404 ") {
		t.Fatal("match must be exact")
	}
}

func TestSetClone_IsDeep(t *testing.T) {
	set := Set{validQuestion()}
	clone := set.Clone()
	clone[0].Options[0] = "changed"
	if set[0].Options[0] != "200" {
		t.Fatal("clone shares option storage with the original")
	}
}

func TestSampleSetPassesDefaultValidators(t *testing.T) {
	set := SampleSet()
	if err := CheckSet(set, DefaultValidators()); err != nil {
		t.Fatalf("sample set rejected: %v", err)
	}
	if len(set) == 0 || len(set) > DefaultCount {
		t.Errorf("sample set has %d questions", len(set))
	}
}
