package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/router"
	"github.com/abhisek/careerprep/internal/screen"
)

type fakeRecords struct {
	recs []assessment.Record
	err  error
	user string
}

func (f *fakeRecords) History(_ context.Context, userID string) ([]assessment.Record, error) {
	f.user = userID
	return f.recs, f.err
}

func testRecords() []assessment.Record {
	return []assessment.Record{
		{
			ID:        "b",
			CreatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			Draft: assessment.Draft{
				UserID: "u1", Category: "technology-backend", QuizScore: 100,
				Questions: []assessment.QuestionResult{
					{Question: "What is an index?", UserAnswer: "A lookup structure", Answer: "A lookup structure", IsCorrect: true},
				},
			},
		},
		{
			ID:        "a",
			CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Draft: assessment.Draft{
				UserID: "u1", Category: "technology-backend", QuizScore: 0,
				Questions: []assessment.QuestionResult{
					{Question: "What is a mutex?", UserAnswer: "A queue", Answer: "A lock", Explanation: "Mutexes provide mutual exclusion."},
				},
				ImprovementTip: "Revisit concurrency primitives.",
			},
		},
	}
}

func load(t *testing.T, f *fakeRecords) *HistoryScreen {
	t.Helper()
	s := New(&screen.Env{Records: f, UserID: "u1"})
	s.Update(s.Init()())
	return s
}

func TestHistoryScreen_Title(t *testing.T) {
	s := New(&screen.Env{})
	if s.Title() != "History" {
		t.Errorf("Title = %q, want %q", s.Title(), "History")
	}
}

func TestHistoryScreen_LoadsForUser(t *testing.T) {
	f := &fakeRecords{recs: testRecords()}
	s := load(t, f)

	if f.user != "u1" {
		t.Errorf("History called for %q, want u1", f.user)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "100.0%") || !strings.Contains(view, "0.0%") {
		t.Error("view should list both scores")
	}
	if strings.Index(view, "100.0%") > strings.Index(view, "  0.0%") {
		t.Error("newest assessment should be listed first")
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := load(t, &fakeRecords{})
	if !strings.Contains(s.View(100, 30), "No assessments yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := load(t, &fakeRecords{err: errors.New("database is locked")})
	if !strings.Contains(s.View(100, 30), "database is locked") {
		t.Error("expected error message in view")
	}
}

func TestHistoryScreen_ExpandShowsDetails(t *testing.T) {
	s := load(t, &fakeRecords{recs: testRecords()})

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	view := s.View(100, 40)
	for _, want := range []string{"What is a mutex?", "A lock", "Revisit concurrency primitives."} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view missing %q", want)
		}
	}
	if strings.Contains(view, "What is an index?") {
		t.Error("collapsed record should not show its questions")
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(&screen.Env{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
