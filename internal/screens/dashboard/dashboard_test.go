package dashboard

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
}

func (f *fakeRecords) History(context.Context, string) ([]assessment.Record, error) {
	return f.recs, f.err
}

func record(day int, score float64, questions int) assessment.Record {
	return assessment.Record{
		ID:        "r",
		CreatedAt: time.Date(2026, 3, day, 9, 0, 0, 0, time.UTC),
		Draft: assessment.Draft{
			UserID:    "u1",
			QuizScore: score,
			Questions: make([]assessment.QuestionResult, questions),
		},
	}
}

func load(f *fakeRecords) *DashboardScreen {
	s := New(&screen.Env{Records: f, UserID: "u1"})
	s.Update(s.Init()())
	return s
}

func TestDashboard_Title(t *testing.T) {
	if got := New(&screen.Env{}).Title(); got != "Performance" {
		t.Errorf("Title = %q", got)
	}
}

func TestDashboard_Stats(t *testing.T) {
	s := load(&fakeRecords{recs: []assessment.Record{
		record(3, 80, 10),
		record(1, 40, 10),
		record(2, 60, 5),
	}})

	if s.summary.AverageScore != 60 {
		t.Errorf("AverageScore = %v, want 60", s.summary.AverageScore)
	}
	view := s.View(100, 30)
	for _, want := range []string{"60.0%", "25", "80%", "3 assessments", "best 80%", "Mar 01", "Mar 03"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDashboard_Empty(t *testing.T) {
	s := load(&fakeRecords{})
	view := s.View(100, 30)
	if !strings.Contains(view, "No assessments yet.") {
		t.Error("expected empty chart hint")
	}
	if !strings.Contains(view, "0.0%") {
		t.Error("expected zero average")
	}
}

func TestDashboard_Error(t *testing.T) {
	s := load(&fakeRecords{err: errors.New("boom")})
	if !strings.Contains(s.View(100, 30), "boom") {
		t.Error("expected error in view")
	}
}

func TestDashboard_Keys(t *testing.T) {
	s := New(&screen.Env{Records: &fakeRecords{}})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected reload command on r")
	}
	if _, ok := cmd().(summaryLoadedMsg); !ok {
		t.Error("expected summaryLoadedMsg from reload")
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
