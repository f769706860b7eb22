package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/router"
	"github.com/abhisek/careerprep/internal/screen"
	"github.com/abhisek/careerprep/internal/screens/onboarding"
)

func TestInit_OpensProfileFormOnFirstRun(t *testing.T) {
	m := newModel(&screen.Env{})
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected a command when no profile is set")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*onboarding.OnboardingScreen); !ok {
		t.Errorf("expected onboarding screen, got %T", push.Screen)
	}
}

func TestInit_WithProfile(t *testing.T) {
	m := newModel(&screen.Env{Profile: profile.Profile{Industry: "Technology"}})
	if cmd := m.Init(); cmd != nil {
		t.Error("expected no command when the profile is complete")
	}
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := newModel(&screen.Env{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the home screen should be a no-op")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newModel(&screen.Env{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestFrameShowsTrailAndProfile(t *testing.T) {
	env := &screen.Env{Profile: profile.Profile{Industry: "Technology", SubIndustry: "Backend"}}
	m := newModel(env)
	m.router.Update(router.PushScreenMsg{Screen: onboarding.New(env)})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	frame := updated.(Model).frame()

	for _, want := range []string{"CareerPrep", "Home", "Profile", "Technology (Backend)", "Ctrl+C"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestWindowSize(t *testing.T) {
	m := newModel(&screen.Env{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	am := updated.(Model)
	if am.width != 120 || am.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", am.width, am.height)
	}
	if v := am.View(); !v.AltScreen {
		t.Error("expected the alt screen")
	}
}
