package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/justinpbarnett/dogsearch/internal/item"
	"gopkg.in/yaml.v3"
)

// File reads items from a local YAML, JSON or TOML document. The file is
// read on every call so edits show up on the next load.
//
// Accepted shapes:
//
//	items: ["Beagle", "Boxer"]
//	items: [{id: b1, name: Beagle}, {name: Boxer}]
//	["Beagle", "Boxer"]            (YAML/JSON only)
//
// Records without an id get a positional one.
type File struct {
	path   string
	format format
}

type format int

const (
	formatYAML format = iota
	formatTOML
)

// NewFile returns a file source for path. The format is chosen from the
// extension: .yaml, .yml and .json decode as YAML, .toml as TOML.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("file source: empty path")
	}
	var f format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		f = formatYAML
	case ".toml":
		f = formatTOML
	default:
		return nil, fmt.Errorf("file source: unsupported extension %q (want .yaml, .yml, .json or .toml)", filepath.Ext(path))
	}
	return &File{path: path, format: f}, nil
}

// Path returns the file this source reads.
func (f *File) Path() string { return f.path }

func (f *File) Items(ctx context.Context) ([]item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	var entries []entry
	switch f.format {
	case formatTOML:
		entries, err = decodeTOML(data)
	default:
		entries, err = decodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}

	items := make([]item.Item, 0, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("parsing %s: item %d has an empty name", f.path, i)
		}
		id := e.ID
		if id == "" {
			id = item.PositionalID(i)
		}
		items = append(items, item.Item{ID: id, Name: e.Name})
	}
	if err := item.CheckUnique(items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	return items, nil
}

// entry is one element of an items list: either a bare name or a record.
type entry struct {
	ID   string `yaml:"id" toml:"id"`
	Name string `yaml:"name" toml:"name"`
}

func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Name = node.Value
		return nil
	}
	type plain entry
	return node.Decode((*plain)(e))
}

func decodeYAML(data []byte) ([]entry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var entries []entry
		if err := doc.Decode(&entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var wrapper struct {
		Items []entry `yaml:"items"`
	}
	if err := doc.Decode(&wrapper); err != nil {
		return nil, err
	}
	return wrapper.Items, nil
}

func decodeTOML(data []byte) ([]entry, error) {
	var raw struct {
		Items []any `toml:"items"`
	}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(raw.Items))
	for i, v := range raw.Items {
		switch x := v.(type) {
		case string:
			entries = append(entries, entry{Name: x})
		case map[string]any:
			var e entry
			if s, ok := x["id"].(string); ok {
				e.ID = s
			}
			if s, ok := x["name"].(string); ok {
				e.Name = s
			}
			entries = append(entries, e)
		default:
			return nil, fmt.Errorf("items[%d]: expected string or table, got %T", i, v)
		}
	}
	return entries, nil
}
