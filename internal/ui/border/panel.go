package border

import "strings"

// Panel describes a bordered box.
type Panel struct {
	Title    string
	Content  string
	Keybinds []Keybind
	Width    int
	Height   int
	Focused  bool
}

// Render assembles the panel: a titled top border, content lines framed by
// side borders, and a bottom border carrying keybinds when focused. Content
// is padded or cropped to exactly Height-2 rows.
func (p Panel) Render() string {
	if p.Height < 2 || p.Width < 2 {
		return ""
	}
	innerHeight := p.Height - 2

	var lines []string
	if p.Content != "" {
		lines = strings.Split(p.Content, "\n")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	parts := []string{Top(p.Title, p.Width, p.Focused)}
	if innerHeight > 0 {
		parts = append(parts, Sides(strings.Join(lines, "\n"), p.Width, p.Focused))
	}
	parts = append(parts, Bottom(p.Keybinds, p.Width, p.Focused))
	return strings.Join(parts, "\n")
}
