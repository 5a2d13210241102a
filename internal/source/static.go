package source

import (
	"context"

	"github.com/justinpbarnett/dogsearch/internal/item"
)

// Static serves a fixed in-memory collection. It never fails.
type Static struct {
	items []item.Item
}

// NewStatic returns a source over the built-in breed catalog.
func NewStatic() *Static {
	return &Static{items: item.Breeds()}
}

// NewStaticItems returns a source over a copy of items.
func NewStaticItems(items []item.Item) *Static {
	return &Static{items: item.Clone(items)}
}

func (s *Static) Items(_ context.Context) ([]item.Item, error) {
	return item.Clone(s.items), nil
}
