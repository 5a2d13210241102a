package search

import (
	"context"
	"log"

	"github.com/justinpbarnett/dogsearch/internal/highlight"
	"github.com/justinpbarnett/dogsearch/internal/item"
	"github.com/justinpbarnett/dogsearch/internal/observable"
	"github.com/justinpbarnett/dogsearch/internal/source"
)

// State holds the search query and the item collection for one UI session.
// Query, items and the load error are observed independently: setting one
// never notifies subscribers of another.
type State struct {
	src      source.Source
	query    *observable.Value[string]
	items    *observable.Value[[]item.Item]
	err      *observable.Value[error]
	changeCh chan struct{}
}

func New(src source.Source) *State {
	s := &State{
		src:      src,
		query:    observable.New(""),
		items:    observable.New[[]item.Item](nil),
		err:      observable.New[error](nil),
		changeCh: make(chan struct{}, 1),
	}
	signal := func() {
		select {
		case s.changeCh <- struct{}{}:
		default:
		}
	}
	s.query.Subscribe(func(string) { signal() })
	s.items.Subscribe(func([]item.Item) { signal() })
	s.err.Subscribe(func(error) { signal() })
	return s
}

// SetQuery replaces the query. Any string is accepted.
func (s *State) SetQuery(q string) {
	s.query.Set(q)
}

// Load fetches items from the source and publishes them unchanged. On failure
// the previous items stay in place and the error is published instead.
func (s *State) Load(ctx context.Context) error {
	items, err := s.src.Items(ctx)
	if err != nil {
		log.Printf("search: load failed: %v", err)
		s.err.Set(err)
		return err
	}
	if items == nil {
		items = []item.Item{}
	}
	log.Printf("search: loaded %d items", len(items))
	if s.err.Get() != nil {
		s.err.Set(nil)
	}
	s.items.Set(item.Clone(items))
	return nil
}

func (s *State) Query() string {
	return s.query.Get()
}

// Items returns a copy of the current collection in source order.
func (s *State) Items() []item.Item {
	return item.Clone(s.items.Get())
}

// Err returns the error from the most recent failed Load, or nil.
func (s *State) Err() error {
	return s.err.Get()
}

// Loaded reports whether a Load has ever succeeded.
func (s *State) Loaded() bool {
	return s.items.Get() != nil
}

func (s *State) OnQuery(fn func(string)) func() {
	return s.query.Subscribe(fn)
}

func (s *State) OnItems(fn func([]item.Item)) func() {
	return s.items.Subscribe(func(items []item.Item) { fn(item.Clone(items)) })
}

func (s *State) OnError(fn func(error)) func() {
	return s.err.Subscribe(fn)
}

// Changes delivers a coalesced signal after any value changes. It lets a
// UI loop that can't be called back directly poll for updates.
func (s *State) Changes() <-chan struct{} {
	return s.changeCh
}

// Visible returns the rows to render. Without filter every item is shown
// whatever the query. With filter and a non-empty query only items whose name
// contains the query are kept.
func (s *State) Visible(filter bool) []item.Item {
	all := s.Items()
	q := s.Query()
	if !filter || q == "" {
		return all
	}
	out := make([]item.Item, 0, len(all))
	for _, it := range all {
		if highlight.Contains(q, it.Name) {
			out = append(out, it)
		}
	}
	return out
}

// MatchCount returns how many items contain the current query.
func (s *State) MatchCount() int {
	q := s.Query()
	if q == "" {
		return 0
	}
	n := 0
	for _, it := range s.items.Get() {
		if highlight.Contains(q, it.Name) {
			n++
		}
	}
	return n
}
