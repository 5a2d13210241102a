package source

import (
	"context"
	"fmt"

	"github.com/justinpbarnett/dogsearch/internal/config"
	"github.com/justinpbarnett/dogsearch/internal/item"
)

// Source supplies the item collection shown in the list.
type Source interface {
	Items(ctx context.Context) ([]item.Item, error)
}

// Func adapts a plain function to Source.
type Func func(ctx context.Context) ([]item.Item, error)

func (f Func) Items(ctx context.Context) ([]item.Item, error) { return f(ctx) }

// FromConfig returns the source selected by cfg.
func FromConfig(cfg config.SourceConfig) (Source, error) {
	switch cfg.Kind {
	case config.SourceStatic, "":
		return NewStatic(), nil
	case config.SourceFile:
		return NewFile(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}
