package quiz

import (
	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/questions"
	"github.com/abhisek/careerprep/internal/scoring"
)

// State is a read-only snapshot of the machine for presentation.
type State struct {
	Phase     Phase
	Busy      bool
	AttemptID string

	// Index is the zero-based current question; Total is the set size.
	Index    int
	Total    int
	Answered int

	// Question is the current question while in progress.
	Question *questions.Question
	Answer   string

	// Explanation is set only after Reveal on the current question.
	Revealed    bool
	Explanation string

	Result   *scoring.Result
	HasDraft bool
	Record   *assessment.Record

	// Err is the last GenerationError or SaveError, cleared by the next
	// successful Start or Finish.
	Err error
}

// IsLast reports whether the current question is the final one.
func (s State) IsLast() bool {
	return s.Total > 0 && s.Index == s.Total-1
}

// State returns a snapshot of the machine. It never blocks on collaborators.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := State{
		Phase:     m.phase,
		Busy:      m.busy,
		AttemptID: m.attemptID,
		Index:     m.index,
		Total:     len(m.set),
		HasDraft:  m.draft != nil,
		Err:       m.lastErr,
	}
	for _, a := range m.answers {
		if a != "" {
			s.Answered++
		}
	}
	if m.phase == PhaseInProgress && m.index < len(m.set) {
		q := m.set[m.index].Clone()
		s.Question = &q
		s.Answer = m.answers[m.index]
		s.Revealed = m.revealed
		if m.revealed {
			s.Explanation = q.Explanation
		}
	}
	if m.result != nil {
		r := *m.result
		s.Result = &r
	}
	if m.record != nil {
		rec := *m.record
		s.Record = &rec
	}
	return s
}
