package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/dogsearch/internal/highlight"
)

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)
	SelectedRowStyle   = lipgloss.NewStyle().Background(SelectedRowBg)
	ErrorStyle         = lipgloss.NewStyle().Foreground(StatusError)
)

// NameStyle returns the lipgloss style for a highlight class. Emphasized
// runs are also bold so they stand out on terminals with few colors.
func NameStyle(s highlight.Style) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(NameColor(s))
	if s == highlight.StyleEmphasized {
		st = st.Bold(true)
	}
	return st
}

// RenderSegments renders styled name segments. When selected is true every
// segment also gets the selected-row background.
func RenderSegments(segs []highlight.Segment, selected bool) string {
	var b strings.Builder
	for _, seg := range segs {
		st := NameStyle(seg.Style)
		if selected {
			st = st.Background(SelectedRowBg)
		}
		b.WriteString(st.Render(seg.Text))
	}
	return b.String()
}
