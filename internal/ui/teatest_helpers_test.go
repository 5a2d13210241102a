package ui

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/dogsearch/internal/config"
	"github.com/justinpbarnett/dogsearch/internal/item"
	"github.com/justinpbarnett/dogsearch/internal/search"
	"github.com/justinpbarnett/dogsearch/internal/source"
)

const waitDuration = 3 * time.Second

func testBreeds() []item.Item {
	return item.FromNames([]string{
		"Labrador Retriever",
		"German Shepherd",
		"Golden Retriever",
		"Beagle",
		"Dachshund",
		"Boxer",
	})
}

// appAdapter wraps the App (value receiver model) into a model whose Init
// only runs the load. The real Init also blocks on the state's change
// channel, which would keep the teatest program from settling.
type appAdapter struct {
	app App
}

func newTestAppAdapter(tb testing.TB, cfg *config.Config, src source.Source) *appAdapter {
	tb.Helper()
	a := NewApp(context.Background(), cfg, search.New(src))
	a.yank = func(string) error { return nil }
	return &appAdapter{app: a}
}

func (a *appAdapter) Init() tea.Cmd {
	return loadItems(a.app.ctx, a.app.state)
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}
