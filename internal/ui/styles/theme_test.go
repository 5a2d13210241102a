package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/dogsearch/internal/highlight"
)

func TestNameColorDistinct(t *testing.T) {
	d := NameColor(highlight.StyleDefault)
	m := NameColor(highlight.StyleMuted)
	e := NameColor(highlight.StyleEmphasized)
	if d == m || m == e || d == e {
		t.Errorf("expected three distinct name colors, got %v %v %v", d, m, e)
	}
}

func TestNameStyleEmphasizedIsBold(t *testing.T) {
	if !NameStyle(highlight.StyleEmphasized).GetBold() {
		t.Error("expected emphasized style to be bold")
	}
	if NameStyle(highlight.StyleMuted).GetBold() {
		t.Error("expected muted style not to be bold")
	}
}

func TestRenderSegmentsKeepsText(t *testing.T) {
	segs := highlight.Segments("a", "Labrador")
	out := RenderSegments(segs, false)
	if lipgloss.Width(out) != len("Labrador") {
		t.Errorf("expected visible width %d, got %d", len("Labrador"), lipgloss.Width(out))
	}
	sel := RenderSegments(segs, true)
	if lipgloss.Width(sel) != len("Labrador") {
		t.Errorf("expected selected visible width %d, got %d", len("Labrador"), lipgloss.Width(sel))
	}
}
