package panels

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestSearchBarTypingFlow(t *testing.T) {
	s := NewSearchBar("Search here ...", 64)
	s.SetSize(50)

	tm := teatest.NewTestModel(t, wrapSearchBar(&s), teatest.WithInitialTermSize(50, 3))
	waitForContains(t, tm, "Search")
	tm.Type("husky")
	waitForContains(t, tm, "husky")
	tm.Send(tea.QuitMsg{})
	tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration))

	if s.Value() != "husky" {
		t.Errorf("expected value husky, got %q", s.Value())
	}
}

func TestStatusBarInProgram(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(80)
	sb.SetLoadState(true, nil)
	sb.SetCounts(31, 0, "")

	tm := teatest.NewTestModel(t, wrapStatusBar(&sb), teatest.WithInitialTermSize(80, 1))
	waitForContains(t, tm, "31 items")
	tm.Send(tea.QuitMsg{})
	tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration))
}

func TestHelpOverlayInProgram(t *testing.T) {
	h := newTestHelp()

	tm := teatest.NewTestModel(t, wrapHelpOverlay(h), teatest.WithInitialTermSize(60, 20))
	waitForContains(t, tm, "Keybinds")
	tm.Send(tea.QuitMsg{})
	tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration))
}
