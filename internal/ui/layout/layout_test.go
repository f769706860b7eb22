package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader([]string{"Home", "Mock Interview"}, "Technology (Backend)", 100)
	for _, want := range []string{"CareerPrep", "Home", "›", "Mock Interview", "Technology (Backend)"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderHeaderDropsOldestTrailEntries(t *testing.T) {
	trail := []string{"Home", "History", "A very long screen title", "Another long screen title"}
	h := RenderHeader(trail, "Technology (Backend)", 80)
	if strings.Contains(h, "Home") {
		t.Errorf("expected the root to be dropped from a long trail: %q", h)
	}
	if !strings.Contains(h, "Another long screen title") {
		t.Errorf("current screen missing from header: %q", h)
	}
}

func TestRenderTooSmall(t *testing.T) {
	msg := RenderTooSmall(60, 20)
	if !strings.Contains(msg, "80 x 24") || !strings.Contains(msg, "60 x 20") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "Back") {
		t.Errorf("footer missing hint: %q", f)
	}
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader([]string{"Home"}, "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}
