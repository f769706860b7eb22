package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/questions"
	"github.com/abhisek/careerprep/internal/quiz"
)

type stubGenerator struct {
	err error
}

func (g stubGenerator) Generate(context.Context, profile.Profile) (questions.Set, error) {
	if g.err != nil {
		return nil, g.err
	}
	return questions.Set{
		{Prompt: "Which status code means Not Found?", Options: []string{"200", "404", "500"}, CorrectAnswer: "404", Explanation: "404 is returned for missing resources."},
		{Prompt: "Which port does HTTPS use by default?", Options: []string{"80", "443"}, CorrectAnswer: "443"},
	}, nil
}

// stubSubmitter fails the first failures submissions.
type stubSubmitter struct {
	failures int
	calls    int
}

func (s *stubSubmitter) Submit(_ context.Context, d assessment.Draft) (*assessment.Record, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, &assessment.SaveError{Err: errors.New("disk full")}
	}
	return &assessment.Record{ID: "rec-1", CreatedAt: time.Now(), Draft: d}, nil
}

var testProfile = profile.Profile{Industry: "Technology", SubIndustry: "Backend", Experience: 3}

func newMachine(t *testing.T, gen questions.Generator, sub quiz.Submitter) *quiz.Machine {
	t.Helper()
	m, err := quiz.New(quiz.Options{Generator: gen, Submitter: sub, Logger: zerolog.Nop()})
	require.NoError(t, err)
	return m
}

func TestRunQuiz(t *testing.T) {
	sub := &stubSubmitter{}
	m := newMachine(t, stubGenerator{}, sub)
	var out bytes.Buffer

	rec, err := runQuiz(context.Background(), m, "u1", testProfile, strings.NewReader("2\n1\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, 50.0, rec.QuizScore)
	assert.Equal(t, "technology-backend", rec.Category)
	assert.Equal(t, quiz.PhaseFinished, m.State().Phase)

	text := out.String()
	assert.Contains(t, text, "Question 1 of 2")
	assert.Contains(t, text, "  2) 404")
	assert.Contains(t, text, "Correct!")
	assert.Contains(t, text, "404 is returned for missing resources.")
	assert.Contains(t, text, "Not quite. Answer: 443")
	assert.Contains(t, text, "Score: 50.0% (1 of 2 correct)")
	assert.Contains(t, text, "Saved as rec-1")
}

func TestRunQuizRepromptsOnBadInput(t *testing.T) {
	m := newMachine(t, stubGenerator{}, &stubSubmitter{})
	var out bytes.Buffer

	rec, err := runQuiz(context.Background(), m, "u1", testProfile, strings.NewReader("7\nabc\n2\n2\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, 100.0, rec.QuizScore)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number between 1 and 3."))
}

func TestRunQuizRetriesSave(t *testing.T) {
	sub := &stubSubmitter{failures: 1}
	m := newMachine(t, stubGenerator{}, sub)
	var out bytes.Buffer

	rec, err := runQuiz(context.Background(), m, "u1", testProfile, strings.NewReader("2\n2\n\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, 2, sub.calls)
	assert.Contains(t, out.String(), "Could not save your results: disk full")
}

func TestRunQuizDeclinedRetryKeepsDraft(t *testing.T) {
	m := newMachine(t, stubGenerator{}, &stubSubmitter{failures: 1})
	var out bytes.Buffer

	_, err := runQuiz(context.Background(), m, "u1", testProfile, strings.NewReader("2\n2\nn\n"), &out)
	var saveErr *assessment.SaveError
	require.ErrorAs(t, err, &saveErr)

	st := m.State()
	assert.Equal(t, quiz.PhaseCompleted, st.Phase)
	assert.True(t, st.HasDraft)
}

func TestRunQuizQuit(t *testing.T) {
	m := newMachine(t, stubGenerator{}, &stubSubmitter{})
	var out bytes.Buffer

	_, err := runQuiz(context.Background(), m, "u1", testProfile, strings.NewReader("q\n"), &out)
	assert.ErrorIs(t, err, errQuit)

	_, err = runQuiz(context.Background(), newMachine(t, stubGenerator{}, &stubSubmitter{}), "u1", testProfile, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, errQuit)
}

func TestRunQuizGenerationFailure(t *testing.T) {
	m := newMachine(t, stubGenerator{err: errors.New("rate limited")}, &stubSubmitter{})
	var out bytes.Buffer

	_, err := runQuiz(context.Background(), m, "u1", testProfile, strings.NewReader(""), &out)
	var genErr *quiz.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, quiz.PhaseIdle, m.State().Phase)
}

func TestRunQuizRequiresProfile(t *testing.T) {
	m := newMachine(t, stubGenerator{}, &stubSubmitter{})
	var out bytes.Buffer

	_, err := runQuiz(context.Background(), m, "u1", profile.Profile{}, strings.NewReader(""), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile incomplete")
	assert.Equal(t, quiz.PhaseIdle, m.State().Phase)
}
