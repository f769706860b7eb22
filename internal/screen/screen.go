// Package screen holds the contracts shared by the router and the screens.
package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/quiz"
	"github.com/abhisek/careerprep/internal/ui/layout"
)

// Screen is one page of the TUI. The router owns the stack of screens
// and the app frames whatever View returns with its header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title names the screen in the header trail.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Records reads saved assessments. *assessment.Builder implements it.
type Records interface {
	History(ctx context.Context, userID string) ([]assessment.Record, error)
}

// Env is shared by every screen of one program run.
type Env struct {
	// Quiz is nil when no LLM provider could be configured.
	Quiz    *quiz.Machine
	Records Records

	UserID  string
	Profile profile.Profile

	// LLMErr explains why Quiz is nil.
	LLMErr error

	// SaveProfile persists an edited profile. Optional.
	SaveProfile func(profile.Profile) error
}

// CanQuiz reports whether a mock interview can be started.
func (e *Env) CanQuiz() bool {
	return e.Quiz != nil && e.Profile.Validate() == nil
}
