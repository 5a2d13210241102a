package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type testKeyMap struct {
	Yank key.Binding
	Quit key.Binding
}

func (k testKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Yank, k.Quit} }
func (k testKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yank}, {k.Quit}}
}

func newTestHelp() *HelpOverlay {
	return NewHelpOverlay(testKeyMap{
		Yank: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy name")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	})
}

func TestHelpContent(t *testing.T) {
	view := newTestHelp().View()
	for _, want := range []string{"ctrl+y", "copy name", "ctrl+c", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in help overlay", want)
		}
	}
}

func TestHelpBorder(t *testing.T) {
	view := newTestHelp().View()
	if !strings.Contains(view, "Keybinds") {
		t.Error("expected 'Keybinds' title in border")
	}
	if !strings.Contains(view, "╭") || !strings.Contains(view, "╰") {
		t.Error("expected border characters")
	}
}

func TestHelpCloseKeys(t *testing.T) {
	h := newTestHelp()
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyF1}, {Type: tea.KeyRunes, Runes: []rune("q")}} {
		_, cmd := h.Update(msg)
		if cmd == nil {
			t.Fatalf("expected close command for %s", msg)
		}
		if _, ok := cmd().(CloseModalMsg); !ok {
			t.Errorf("expected CloseModalMsg for %s", msg)
		}
	}
}

func TestHelpIgnoresOtherKeys(t *testing.T) {
	h := newTestHelp()
	if _, cmd := h.Update(keyMsg("x")); cmd != nil {
		t.Error("expected no command for unrelated key")
	}
}
