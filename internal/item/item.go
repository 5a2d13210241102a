package item

import "fmt"

// Item is a single list row: a stable identifier and the name shown to the user.
type Item struct {
	ID   string `yaml:"id" toml:"id"`
	Name string `yaml:"name" toml:"name"`
}

// Clone returns a copy of items so callers can't mutate a shared backing array.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Names returns the display names in order.
func Names(items []Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

// FromNames builds items from bare names, deriving IDs from position.
func FromNames(names []string) []Item {
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{ID: PositionalID(i), Name: n}
	}
	return items
}

// PositionalID is the ID assigned to an item that arrives without one.
func PositionalID(i int) string {
	return fmt.Sprintf("%03d", i+1)
}

// CheckUnique returns an error naming the first duplicated or empty ID.
func CheckUnique(items []Item) error {
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("item %d (%q) has an empty id", i, it.Name)
		}
		if prev, ok := seen[it.ID]; ok {
			return fmt.Errorf("duplicate id %q at items %d and %d", it.ID, prev, i)
		}
		seen[it.ID] = i
	}
	return nil
}
