// Package quiz drives a single mock-interview attempt from question
// generation to a saved assessment record.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/careerprep/internal/advisor"
	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/llm"
	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/questions"
	"github.com/abhisek/careerprep/internal/scoring"
)

// Submitter persists a scored draft. *assessment.Builder implements it.
type Submitter interface {
	Submit(ctx context.Context, d assessment.Draft) (*assessment.Record, error)
}

// Options wires a Machine to its collaborators.
type Options struct {
	Generator questions.Generator
	Submitter Submitter

	// Advisor is optional. Without one, records are saved with no tip.
	Advisor advisor.Advisor

	Logger zerolog.Logger

	// NewID generates attempt ids for log correlation. Defaults to uuid.
	NewID func() string
}

// Machine is the quiz state machine. All methods are safe for concurrent
// use. Blocking collaborator calls run without the lock held, and every
// mutating intent issued meanwhile fails with ErrBusy.
type Machine struct {
	mu   sync.Mutex
	opts Options
	log  zerolog.Logger

	phase Phase
	busy  bool

	attemptID string
	userID    string
	profile   profile.Profile

	set      questions.Set
	answers  []string // "" means unanswered
	index    int
	revealed bool

	result *scoring.Result
	draft  *assessment.Draft
	record *assessment.Record

	lastErr error
}

// New creates a Machine in PhaseIdle.
func New(opts Options) (*Machine, error) {
	if opts.Generator == nil {
		return nil, errors.New("quiz: generator is required")
	}
	if opts.Submitter == nil {
		return nil, errors.New("quiz: submitter is required")
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Machine{
		opts: opts,
		log:  opts.Logger.With().Str("component", "quiz").Logger(),
	}, nil
}

// Start requests a question set for p and begins a new attempt. It is valid
// in PhaseIdle and PhaseFinished and blocks until the generator returns.
func (m *Machine) Start(ctx context.Context, userID string, p profile.Profile) error {
	m.mu.Lock()
	if err := m.check("start", PhaseIdle, PhaseFinished); err != nil {
		m.mu.Unlock()
		return err
	}
	if userID == "" {
		m.mu.Unlock()
		return invalid("start", "user id is required")
	}

	m.reset()
	m.attemptID = m.opts.NewID()
	m.userID = userID
	m.profile = p
	m.busy = true
	m.setPhase(PhaseGenerating)
	attemptID := m.attemptID
	m.mu.Unlock()

	set, err := m.opts.Generator.Generate(llm.WithAttemptID(ctx, attemptID), p)
	if err == nil {
		err = questions.CheckSet(set, []questions.Validator{&questions.OptionsValidator{}})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false

	if err != nil {
		genErr := &GenerationError{Err: err}
		m.lastErr = genErr
		m.setPhase(PhaseIdle)
		m.log.Warn().Err(err).Str("attempt_id", attemptID).Msg("question generation failed")
		return genErr
	}

	m.set = set.Clone()
	m.answers = make([]string, len(set))
	m.index = 0
	m.setPhase(PhaseInProgress)
	m.log.Info().
		Str("attempt_id", attemptID).
		Str("user", userID).
		Int("questions", len(set)).
		Msg("attempt started")
	return nil
}

// Answer records choice for the current question, replacing any earlier
// answer to it.
func (m *Machine) Answer(choice string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check("answer", PhaseInProgress); err != nil {
		return err
	}
	if !m.set[m.index].HasOption(choice) {
		return invalid("answer", "%q is not an option for question %d", choice, m.index+1)
	}
	m.answers[m.index] = choice
	return nil
}

// Reveal returns the current question's explanation. It requires an answer
// to the current question and only flips the view flag.
func (m *Machine) Reveal() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check("reveal", PhaseInProgress); err != nil {
		return "", err
	}
	if m.answers[m.index] == "" {
		return "", invalid("reveal", "question %d has no answer yet", m.index+1)
	}
	m.revealed = true
	return m.set[m.index].Explanation, nil
}

// Advance moves to the next question. On the last question it scores the
// attempt and enters PhaseCompleted. Once completed it is a no-op.
func (m *Machine) Advance() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.busy && (m.phase == PhaseCompleted || m.phase == PhaseFinished) {
		return nil
	}
	if err := m.check("advance", PhaseInProgress); err != nil {
		return err
	}
	if m.answers[m.index] == "" {
		return invalid("advance", "question %d has no answer yet", m.index+1)
	}

	m.revealed = false
	if m.index < len(m.set)-1 {
		m.index++
		return nil
	}

	res, err := scoring.Score(m.set, m.answers)
	if err != nil {
		// Unreachable: Start guarantees a non-empty set sized like answers.
		return fmt.Errorf("score attempt: %w", err)
	}
	m.result = &res
	m.setPhase(PhaseCompleted)
	m.log.Info().
		Str("attempt_id", m.attemptID).
		Float64("score", res.Score).
		Int("correct", res.Correct).
		Int("total", res.Total).
		Msg("attempt completed")
	return nil
}

// Finish saves the completed attempt. The first call builds the draft and
// asks the advisor for a tip. If saving fails the machine stays in
// PhaseCompleted and a later Finish re-submits the same draft.
func (m *Machine) Finish(ctx context.Context) (*assessment.Record, error) {
	m.mu.Lock()
	if err := m.check("finish", PhaseCompleted); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.busy = true
	m.lastErr = nil
	draft := m.draft
	res := *m.result
	userID, p, attemptID := m.userID, m.profile, m.attemptID
	m.mu.Unlock()

	ctx = llm.WithAttemptID(ctx, attemptID)

	if draft == nil {
		d := assessment.NewDraft(userID, res, m.suggest(ctx, p, res))
		d.Category = p.IndustryKey()
		draft = &d
	}

	m.mu.Lock()
	m.draft = draft
	m.setPhase(PhaseSaving)
	m.mu.Unlock()

	rec, err := m.opts.Submitter.Submit(ctx, *draft)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false

	if err != nil {
		var saveErr *assessment.SaveError
		if !errors.As(err, &saveErr) {
			saveErr = &assessment.SaveError{Err: err}
		}
		m.lastErr = saveErr
		m.setPhase(PhaseCompleted)
		return nil, saveErr
	}

	m.record = rec
	m.setPhase(PhaseFinished)
	return rec, nil
}

// Restart discards the finished attempt and returns to PhaseIdle.
func (m *Machine) Restart() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check("restart", PhaseFinished); err != nil {
		return err
	}
	m.reset()
	m.setPhase(PhaseIdle)
	return nil
}

// suggest asks the advisor for a tip, treating any failure as no tip.
func (m *Machine) suggest(ctx context.Context, p profile.Profile, res scoring.Result) string {
	if m.opts.Advisor == nil {
		return ""
	}
	tip, err := m.opts.Advisor.SuggestImprovement(ctx, advisor.Input{Profile: p, Result: res})
	if err != nil {
		m.log.Warn().Err(err).Str("attempt_id", llm.AttemptIDFrom(ctx)).Msg("improvement tip unavailable")
		return ""
	}
	return tip
}

// check rejects the intent when busy or outside the allowed phases.
// Must be called with mu held.
func (m *Machine) check(op string, allowed ...Phase) error {
	if m.busy {
		return ErrBusy
	}
	if !slices.Contains(allowed, m.phase) {
		return invalid(op, "not allowed while %s", m.phase)
	}
	return nil
}

// setPhase must be called with mu held.
func (m *Machine) setPhase(to Phase) {
	if m.phase == to {
		return
	}
	m.log.Debug().
		Str("attempt_id", m.attemptID).
		Stringer("from", m.phase).
		Stringer("to", to).
		Msg("phase transition")
	m.phase = to
}

// reset clears all attempt state. Must be called with mu held.
func (m *Machine) reset() {
	m.attemptID = ""
	m.userID = ""
	m.profile = profile.Profile{}
	m.set = nil
	m.answers = nil
	m.index = 0
	m.revealed = false
	m.result = nil
	m.draft = nil
	m.record = nil
	m.lastErr = nil
}
