package layout

// Layout holds the computed cell dimensions for the search screen.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	SearchBarWidth  int
	SearchBarHeight int

	ListWidth  int
	ListHeight int

	StatusBarWidth int
}

const (
	MinWidth  = 40
	MinHeight = 10

	SearchBarHeight = 3
	StatusBarHeight = 1

	// MaxContentWidth caps how wide the search bar and list grow on very
	// wide terminals. The status bar always spans the full width.
	MaxContentWidth = 100
)

// Calculate stacks the search bar, the result list and the status bar.
// The list takes whatever height is left. Returns TooSmall=true if the
// terminal is under the minimum.
func Calculate(termWidth, termHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	contentWidth := termWidth
	if contentWidth > MaxContentWidth {
		contentWidth = MaxContentWidth
	}

	l.SearchBarWidth = contentWidth
	l.SearchBarHeight = SearchBarHeight
	l.ListWidth = contentWidth
	l.ListHeight = termHeight - SearchBarHeight - StatusBarHeight
	l.StatusBarWidth = termWidth

	return l
}
