package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/dogsearch/internal/ui/border"
	"github.com/justinpbarnett/dogsearch/internal/ui/styles"
)

// HelpOverlay is a modal listing every key binding of the app.
type HelpOverlay struct {
	keys help.KeyMap
	help help.Model
}

func NewHelpOverlay(keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	h.Styles.FullDesc = styles.TextPrimaryStyle
	h.Styles.FullSeparator = styles.TextDimStyle
	h.FullSeparator = "    "
	return &HelpOverlay{keys: keys, help: h}
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "f1", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

func (h HelpOverlay) View() string {
	body := h.help.FullHelpView(h.keys.FullHelp())
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = " " + line
	}
	content := strings.Join(lines, "\n")

	width := lipgloss.Width(content) + 3
	if width < 30 {
		width = 30
	}
	bottomKb := []border.Keybind{{Key: "Esc", Label: " close"}}
	return border.Panel{
		Title:    "Keybinds",
		Content:  content,
		Keybinds: bottomKb,
		Width:    width,
		Height:   len(lines) + 2,
		Focused:  true,
	}.Render()
}
