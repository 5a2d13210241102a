package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/dogsearch/internal/ui/styles"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

func borderStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(styles.BorderFocused)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderUnfocused)
}

// Top renders: ╭─ Title ────────────╮
func Top(title string, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bs := borderStyle(focused)
	inner := width - 2
	if title == "" {
		return bs.Render(cornerTL + strings.Repeat(horizBar, inner) + cornerTR)
	}

	ts := styles.TextSecondaryStyle.Bold(true)
	if focused {
		ts = styles.TitleStyle
	}
	// "─ " + title + " " + fill
	rendered := ts.Render(title)
	fill := inner - 3 - lipgloss.Width(rendered)
	if fill < 0 {
		rendered = ts.Render(truncateTitle(title, inner-3))
		fill = inner - 3 - lipgloss.Width(rendered)
		if fill < 0 {
			fill = 0
		}
	}
	return bs.Render(cornerTL+horizBar+" ") + rendered + bs.Render(" "+strings.Repeat(horizBar, fill)+cornerTR)
}

// Bottom renders ╰─ [f1] help ─╯ when focused with keybinds, else a plain
// line. Keybinds that don't fit are dropped from the right.
func Bottom(keybinds []Keybind, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bs := borderStyle(focused)
	inner := width - 2
	if !focused || len(keybinds) == 0 {
		return bs.Render(cornerBL + strings.Repeat(horizBar, inner) + cornerBR)
	}

	budget := inner - 3
	var parts []string
	used := 0
	for _, kb := range keybinds {
		r := RenderKeybind(kb)
		w := lipgloss.Width(r)
		sep := 0
		if len(parts) > 0 {
			sep = 2
		}
		if used+sep+w > budget {
			break
		}
		parts = append(parts, r)
		used += sep + w
	}
	fill := budget - used
	if fill < 0 {
		fill = 0
	}
	return bs.Render(cornerBL+horizBar+" ") + strings.Join(parts, "  ") + bs.Render(" "+strings.Repeat(horizBar, fill)+cornerBR)
}

// Sides wraps each content line in │ … │, padding or cropping it to
// width-2 visible columns.
func Sides(content string, width int, focused bool) string {
	if width < 2 {
		return content
	}
	bs := borderStyle(focused)
	inner := width - 2
	crop := lipgloss.NewStyle().MaxWidth(inner)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w > inner {
			line = crop.Render(line)
			w = lipgloss.Width(line)
		}
		if w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		lines[i] = bs.Render(vertBar) + line + bs.Render(vertBar)
	}
	return strings.Join(lines, "\n")
}

func truncateTitle(title string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(title)
	if len(r) <= max {
		return title
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
