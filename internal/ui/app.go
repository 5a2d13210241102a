package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/dogsearch/internal/config"
	"github.com/justinpbarnett/dogsearch/internal/search"
	"github.com/justinpbarnett/dogsearch/internal/ui/clipboard"
	"github.com/justinpbarnett/dogsearch/internal/ui/layout"
	"github.com/justinpbarnett/dogsearch/internal/ui/panels"
	"github.com/justinpbarnett/dogsearch/internal/ui/styles"
	"github.com/justinpbarnett/dogsearch/internal/ui/text"
)

const listTitle = "Breeds"

type App struct {
	ctx         context.Context
	config      *config.Config
	state       *search.State
	width       int
	height      int
	layout      layout.Layout
	searchBar   panels.SearchBar
	itemList    panels.ItemList
	statusBar   panels.StatusBar
	helpOverlay *panels.HelpOverlay
	keys        KeyMap
	filtering   bool
	yank        func(string) error
	ready       bool
}

func NewApp(ctx context.Context, cfg *config.Config, state *search.State) App {
	sb := panels.NewSearchBar(cfg.UI.Placeholder, cfg.UI.CharLimit)

	status := panels.NewStatusBar()
	status.SetFiltering(cfg.UI.Filtering())
	status.SetShowCounts(cfg.UI.Counting())

	a := App{
		ctx:       ctx,
		config:    cfg,
		state:     state,
		searchBar: sb,
		itemList:  panels.NewItemList(listTitle),
		statusBar: status,
		keys:      DefaultKeyMap(),
		filtering: cfg.UI.Filtering(),
		yank:      clipboard.Write,
	}
	a.sync()
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadItems(a.ctx, a.state),
		listenForChanges(a.state.Changes()),
		textinput.Blink,
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.propagateSizes()
		return a, nil

	case CloseModalMsg:
		a.helpOverlay = nil
		return a, nil

	case StateUpdatedMsg:
		a.sync()
		return a, listenForChanges(a.state.Changes())

	case ItemsLoadedMsg:
		a.sync()
		if msg.Err != nil {
			return a, a.flash("Could not load items", panels.FlashError)
		}
		return a, nil

	case YankMsg:
		if err := a.yank(msg.Text); err != nil {
			return a, a.flash(fmt.Sprintf("Copy failed: %v", err), panels.FlashError)
		}
		return a, a.flash("Copied "+text.Truncate(msg.Text, 32), panels.FlashSuccess)

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case tea.KeyMsg:
		if a.helpOverlay != nil {
			var cmd tea.Cmd
			*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.helpOverlay = panels.NewHelpOverlay(a.keys)
			return a, nil
		case key.Matches(msg, a.keys.Clear):
			if a.searchBar.Value() == "" {
				return a, tea.Quit
			}
			a.searchBar.Reset()
			a.setQuery("")
			return a, nil
		case key.Matches(msg, a.keys.Filter):
			a.filtering = !a.filtering
			a.statusBar.SetFiltering(a.filtering)
			a.sync()
			return a, nil
		case key.Matches(msg, a.keys.navigation()...):
			var cmd tea.Cmd
			a.itemList, cmd = a.itemList.Update(msg)
			return a, cmd
		}

		return a.updateSearch(msg)
	}

	// Cursor blink and other input internals belong to the search bar.
	var cmd tea.Cmd
	a.searchBar, cmd = a.searchBar.Update(msg)
	return a, cmd
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	full := lipgloss.JoinVertical(lipgloss.Left,
		a.searchBar.View(),
		a.itemList.View(),
		a.statusBar.View(),
	)

	if a.helpOverlay != nil {
		full = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, a.helpOverlay.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}

	return full
}

// Filtering reports whether non-matching items are hidden.
func (a App) Filtering() bool {
	return a.filtering
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := a.searchBar.Value()
	var cmd tea.Cmd
	a.searchBar, cmd = a.searchBar.Update(msg)
	if v := a.searchBar.Value(); v != before {
		a.setQuery(v)
	}
	return a, cmd
}

func (a *App) setQuery(q string) {
	a.state.SetQuery(q)
	a.sync()
}

// sync copies the search state into the panels.
func (a *App) sync() {
	q := a.state.Query()
	loaded, err := a.state.Loaded(), a.state.Err()

	if a.searchBar.Value() != q {
		a.searchBar.SetValue(q)
	}

	a.itemList.SetLoadState(loaded, err)
	a.itemList.SetItems(a.state.Visible(a.filtering), q)

	a.statusBar.SetLoadState(loaded, err)
	a.statusBar.SetCounts(len(a.state.Items()), a.state.MatchCount(), q)
}

func (a *App) flash(msg string, level panels.FlashLevel) tea.Cmd {
	a.statusBar.SetFlashWithLevel(msg, level)
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}

func (a *App) propagateSizes() {
	l := a.layout
	a.searchBar.SetSize(l.SearchBarWidth)
	a.itemList.SetSize(l.ListWidth, l.ListHeight)
	a.statusBar.SetSize(l.StatusBarWidth)
}

func loadItems(ctx context.Context, state *search.State) tea.Cmd {
	return func() tea.Msg {
		return ItemsLoadedMsg{Err: state.Load(ctx)}
	}
}

func listenForChanges(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return StateUpdatedMsg{}
	}
}
