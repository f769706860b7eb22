package assessment

import (
	"time"

	"github.com/abhisek/careerprep/internal/scoring"
)

// QuestionResult is the per-question outcome stored with a record.
type QuestionResult struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	UserAnswer  string   `json:"userAnswer"`
	Answer      string   `json:"answer"`
	IsCorrect   bool     `json:"isCorrect"`
	Explanation string   `json:"explanation"`
}

// Draft is a scored assessment that has not been persisted yet. The quiz
// machine holds on to it so a failed save can be retried with identical
// content.
type Draft struct {
	UserID    string
	Category  string
	QuizScore float64
	Questions []QuestionResult

	// ImprovementTip is "" when no tip was produced.
	ImprovementTip string
}

// Record is a persisted assessment. ID and CreatedAt are assigned by storage.
type Record struct {
	ID        string
	CreatedAt time.Time
	Draft
}

// HasTip reports whether the record carries an improvement tip.
func (r Record) HasTip() bool { return r.ImprovementTip != "" }

// CorrectCount returns how many questions were answered correctly.
func (r Record) CorrectCount() int {
	n := 0
	for _, q := range r.Questions {
		if q.IsCorrect {
			n++
		}
	}
	return n
}

// NewDraft converts a scoring result into a draft for userID.
// The caller fills in Category when it knows the subject profile.
func NewDraft(userID string, res scoring.Result, tip string) Draft {
	qs := make([]QuestionResult, len(res.Details))
	for i, d := range res.Details {
		qs[i] = QuestionResult{
			Question:    d.Question.Prompt,
			Options:     append([]string(nil), d.Question.Options...),
			UserAnswer:  d.UserAnswer,
			Answer:      d.Question.CorrectAnswer,
			IsCorrect:   d.Correct,
			Explanation: d.Question.Explanation,
		}
	}
	return Draft{
		UserID:         userID,
		QuizScore:      res.Score,
		Questions:      qs,
		ImprovementTip: tip,
	}
}
