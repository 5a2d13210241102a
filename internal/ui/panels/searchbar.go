package panels

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/dogsearch/internal/ui/border"
)

const searchPrompt = "> "

// SearchBar is the always-focused query input at the top of the screen.
type SearchBar struct {
	input textinput.Model
	width int
}

func NewSearchBar(placeholder string, charLimit int) SearchBar {
	ti := textinput.New()
	ti.Prompt = searchPrompt
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Focus()
	return SearchBar{input: ti}
}

func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s SearchBar) View() string {
	return border.Panel{
		Title:   "Search",
		Content: s.input.View(),
		Width:   s.width,
		Height:  3,
		Focused: true,
	}.Render()
}

func (s SearchBar) Value() string {
	return s.input.Value()
}

func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// Reset clears the input.
func (s *SearchBar) Reset() {
	s.input.Reset()
}

func (s *SearchBar) SetSize(w int) {
	s.width = w
	// border sides, prompt and the trailing cursor cell
	iw := w - 2 - len(searchPrompt) - 1
	if iw < 1 {
		iw = 1
	}
	s.input.Width = iw
}
