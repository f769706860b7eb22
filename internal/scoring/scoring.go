// Package scoring grades a completed attempt. It is pure: the same inputs
// always produce the same Result.
package scoring

import (
	"errors"
	"fmt"

	"github.com/abhisek/careerprep/internal/questions"
)

var (
	// ErrEmptyQuestionSet is returned when there is nothing to score.
	ErrEmptyQuestionSet = errors.New("cannot score an empty question set")

	// ErrLengthMismatch is returned when answers and questions differ in length.
	ErrLengthMismatch = errors.New("answers and questions differ in length")
)

// Detail is the graded outcome of one question.
type Detail struct {
	Question   questions.Question
	UserAnswer string // "" when the question was never answered
	Correct    bool
}

// Result is the outcome of scoring an attempt.
type Result struct {
	// Score is 100 * Correct / Total, unrounded.
	Score   float64
	Correct int
	Total   int
	Details []Detail
}

// Score grades answers against set by exact string equality, index by index.
// An empty answer never matches because options are never empty.
func Score(set questions.Set, answers []string) (Result, error) {
	if len(set) == 0 {
		return Result{}, ErrEmptyQuestionSet
	}
	if len(answers) != len(set) {
		return Result{}, fmt.Errorf("%w: %d answers for %d questions", ErrLengthMismatch, len(answers), len(set))
	}

	res := Result{
		Total:   len(set),
		Details: make([]Detail, len(set)),
	}
	for i, q := range set {
		ok := answers[i] != "" && answers[i] == q.CorrectAnswer
		if ok {
			res.Correct++
		}
		res.Details[i] = Detail{Question: q, UserAnswer: answers[i], Correct: ok}
	}
	res.Score = 100 * float64(res.Correct) / float64(res.Total)
	return res, nil
}

// Missed returns the details of every incorrectly answered question, in order.
func (r Result) Missed() []Detail {
	var out []Detail
	for _, d := range r.Details {
		if !d.Correct {
			out = append(out, d)
		}
	}
	return out
}

// Perfect reports whether every question was answered correctly.
func (r Result) Perfect() bool {
	return r.Total > 0 && r.Correct == r.Total
}
