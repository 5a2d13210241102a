package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/dogsearch/internal/highlight"
	"github.com/justinpbarnett/dogsearch/internal/item"
	"github.com/justinpbarnett/dogsearch/internal/ui/border"
	"github.com/justinpbarnett/dogsearch/internal/ui/styles"
	"github.com/justinpbarnett/dogsearch/internal/ui/text"
)

const cursorMark = "▸ "

// ItemList renders the visible items, one row each, with the query's
// matches emphasized and everything else muted.
type ItemList struct {
	title    string
	items    []item.Item
	query    string
	matches  int
	loaded   bool
	err      error
	selected int
	offset   int
	width    int
	height   int
	focused  bool
}

func NewItemList(title string) ItemList {
	return ItemList{title: title, focused: true}
}

func (l ItemList) Update(msg tea.Msg) (ItemList, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch km.String() {
	case "down", "ctrl+n":
		l.move(1)
	case "up", "ctrl+p":
		l.move(-1)
	case "pgdown":
		l.move(l.pageSize())
	case "pgup":
		l.move(-l.pageSize())
	case "home":
		l.selected = 0
		l.scrollToSelection()
	case "end":
		l.selected = max(len(l.items)-1, 0)
		l.scrollToSelection()
	case "ctrl+y":
		if sel := l.SelectedItem(); sel != nil {
			name := sel.Name
			return l, func() tea.Msg { return YankMsg{Text: name} }
		}
	}
	return l, nil
}

// SetItems replaces the rows and the query used to highlight them. The
// selected item stays selected if it is still present.
func (l *ItemList) SetItems(items []item.Item, query string) {
	var selID string
	if sel := l.SelectedItem(); sel != nil {
		selID = sel.ID
	}

	l.items = items
	l.query = query
	l.matches = 0
	if query != "" {
		for _, it := range items {
			if highlight.Contains(query, it.Name) {
				l.matches++
			}
		}
	}

	if selID != "" && l.SelectByID(selID) {
		return
	}
	l.clampSelection()
}

// SetLoadState records whether items have been loaded and the last load
// error, if any.
func (l *ItemList) SetLoadState(loaded bool, err error) {
	l.loaded = loaded
	l.err = err
	l.clampSelection()
}

func (l ItemList) View() string {
	innerWidth := max(l.width-2, 0)
	innerHeight := max(l.height-2, 0)

	var keybinds []border.Keybind
	if l.focused && len(l.items) > 0 {
		keybinds = []border.Keybind{
			{Key: "↑↓", Label: " move"},
			{Key: "^y", Label: " yank"},
			{Key: "^f", Label: " filter"},
		}
	}

	return border.Panel{
		Title:    l.renderTitle(),
		Content:  l.renderContent(innerWidth, innerHeight),
		Keybinds: keybinds,
		Width:    l.width,
		Height:   l.height,
		Focused:  l.focused,
	}.Render()
}

func (l ItemList) renderTitle() string {
	if !l.loaded {
		return l.title
	}
	if l.query == "" {
		return fmt.Sprintf("%s (%d)", l.title, len(l.items))
	}
	return fmt.Sprintf("%s (%s of %d)", l.title, text.Count(l.matches, "match", "matches"), len(l.items))
}

func (l ItemList) renderContent(width, height int) string {
	var b strings.Builder
	rows := height

	if l.err != nil {
		b.WriteString(styles.ErrorStyle.Render(text.Truncate("✗ load failed: "+l.err.Error(), width)))
		rows--
		if !l.loaded || len(l.items) == 0 || rows <= 0 {
			return b.String()
		}
		b.WriteString("\n")
	}

	if !l.loaded {
		return styles.TextSecondaryStyle.Render("Loading…")
	}
	if len(l.items) == 0 {
		if l.query != "" {
			return styles.TextSecondaryStyle.Render(text.Truncate("Nothing matches "+text.Quote(l.query, width-16)+".", width))
		}
		return styles.TextSecondaryStyle.Render("No items.")
	}

	if l.offset > 0 {
		b.WriteString(styles.TextDimStyle.Render("  ▲"))
		b.WriteString("\n")
		rows--
	}

	end := l.offset + rows
	if end > len(l.items) {
		end = len(l.items)
	}
	// Reserve a row for the bottom scroll indicator if needed
	if end < len(l.items) && rows > 1 {
		end = l.offset + rows - 1
	}

	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderRow(l.items[i], i == l.selected, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(l.items) {
		b.WriteString("\n")
		b.WriteString(styles.TextDimStyle.Render("  ▼"))
	}

	return b.String()
}

func (l ItemList) renderRow(it item.Item, selected bool, width int) string {
	segs := highlight.Segments(l.query, it.Name)
	if !selected {
		return text.Truncate("  "+styles.RenderSegments(segs, false), width)
	}
	mark := styles.SelectedRowStyle.Foreground(styles.BorderFocused).Render(cursorMark)
	line := text.Truncate(mark+styles.RenderSegments(segs, true), width)
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += styles.SelectedRowStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}

func (l *ItemList) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.clampSelection()
}

func (l *ItemList) SetFocused(focused bool) {
	l.focused = focused
}

// SelectedItem returns the item under the cursor, or nil when the list is
// empty.
func (l ItemList) SelectedItem() *item.Item {
	if len(l.items) == 0 || l.selected >= len(l.items) {
		return nil
	}
	it := l.items[l.selected]
	return &it
}

// SelectByID moves the cursor to the item with the given ID and reports
// whether it was found.
func (l *ItemList) SelectByID(id string) bool {
	for i, it := range l.items {
		if it.ID == id {
			l.selected = i
			l.scrollToSelection()
			return true
		}
	}
	return false
}

func (l ItemList) Len() int {
	return len(l.items)
}

func (l *ItemList) move(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.selected += delta
	l.clampSelection()
}

func (l *ItemList) clampSelection() {
	if len(l.items) == 0 {
		l.selected = 0
		l.offset = 0
		return
	}
	if l.selected >= len(l.items) {
		l.selected = len(l.items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.scrollToSelection()
}

func (l *ItemList) scrollToSelection() {
	visible := l.visibleRows()
	if visible <= 0 {
		return
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+visible {
		l.offset = l.selected - visible + 1
	}
	maxOffset := len(l.items) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l ItemList) visibleRows() int {
	rows := l.height - 2 // border top/bottom
	if l.err != nil {
		rows--
	}
	if l.offset > 0 {
		rows--
	}
	if l.offset+rows < len(l.items) {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l ItemList) pageSize() int {
	return max(l.height-4, 1)
}
