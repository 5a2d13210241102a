package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/dogsearch/internal/ui/styles"
	"github.com/justinpbarnett/dogsearch/internal/ui/text"
)

const flashDurationVal = 3 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type StatusBar struct {
	width      int
	total      int
	matches    int
	query      string
	loaded     bool
	filtering  bool
	showCounts bool
	err        error
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
}

func NewStatusBar() StatusBar {
	return StatusBar{showCounts: true}
}

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	left := " " + styles.TextSecondaryStyle.Render("dogsearch "+Version)

	switch {
	case s.err != nil:
		left += sep + styles.ErrorStyle.Render("load failed")
	case !s.loaded:
		left += sep + styles.TextSecondaryStyle.Render("loading…")
	case s.showCounts:
		left += sep + styles.TextPrimaryStyle.Render(text.Count(s.total, "item", "items"))
		if s.query != "" {
			color := styles.StatusSuccess
			if s.matches == 0 {
				color = styles.StatusWarning
			}
			left += sep + lipgloss.NewStyle().Foreground(color).Render(text.Count(s.matches, "match", "matches"))
		}
	}

	if s.filtering {
		left += sep + lipgloss.NewStyle().Foreground(styles.StatusInfo).Render("filter on")
	}

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default: // FlashInfo
			icon, color = "●", styles.StatusInfo
		}
		left += sep + lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon+" "+s.flash)
	}

	right := styles.TextSecondaryStyle.Render("f1:help") + " "

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// SetCounts records the collection size, the number of items matching the
// query, and the query itself.
func (s *StatusBar) SetCounts(total, matches int, query string) {
	s.total = total
	s.matches = matches
	s.query = query
}

func (s *StatusBar) SetLoadState(loaded bool, err error) {
	s.loaded = loaded
	s.err = err
}

// SetShowCounts hides or shows the item and match counts.
func (s *StatusBar) SetShowCounts(on bool) {
	s.showCounts = on
}

func (s *StatusBar) SetFiltering(on bool) {
	s.filtering = on
}

func (s *StatusBar) SetFlash(msg string) {
	s.SetFlashWithLevel(msg, FlashInfo)
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}
