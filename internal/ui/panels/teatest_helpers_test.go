package panels

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/dogsearch/internal/item"
)

// panelAdapter wraps panel types that use typed Update signatures into
// a proper tea.Model so they can be used with teatest.
type panelAdapter struct {
	view     func() string
	updateFn func(tea.Msg) tea.Cmd
}

func (a panelAdapter) Init() tea.Cmd                           { return nil }
func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return a, a.updateFn(msg) }
func (a panelAdapter) View() string                            { return a.view() }

func wrapItemList(l *ItemList) tea.Model {
	return panelAdapter{
		view: func() string { return l.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			nl, cmd := l.Update(msg)
			*l = nl
			return cmd
		},
	}
}

func wrapSearchBar(s *SearchBar) tea.Model {
	return panelAdapter{
		view: func() string { return s.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			ns, cmd := s.Update(msg)
			*s = ns
			return cmd
		},
	}
}

// StatusBar has no Update method, so the adapter uses a no-op.
func wrapStatusBar(sb *StatusBar) tea.Model {
	return panelAdapter{
		view:     func() string { return sb.View() },
		updateFn: func(tea.Msg) tea.Cmd { return nil },
	}
}

func wrapHelpOverlay(h *HelpOverlay) tea.Model {
	return panelAdapter{
		view: func() string { return h.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			nh, cmd := h.Update(msg)
			*h = nh
			return cmd
		},
	}
}

// waitDuration is the standard timeout for WaitFor calls in tests.
const waitDuration = 3 * time.Second

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}

func keyMsg(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testItems() []item.Item {
	return item.FromNames([]string{
		"Labrador Retriever",
		"German Shepherd",
		"Golden Retriever",
		"Beagle",
		"Dachshund",
		"Poodle",
		"Boxer",
		"Shih Tzu",
	})
}

func loadedList(w, h int) ItemList {
	l := NewItemList("Breeds")
	l.SetSize(w, h)
	l.SetLoadState(true, nil)
	l.SetItems(testItems(), "")
	return l
}
