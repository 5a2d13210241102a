package config

type Config struct {
	Source SourceConfig `yaml:"source"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

type SourceConfig struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}

type UIConfig struct {
	Placeholder   string `yaml:"placeholder"`
	CharLimit     int    `yaml:"char_limit"`
	FilterResults *bool  `yaml:"filter_results"`
	ShowCount     *bool  `yaml:"show_count"`
}

type LogConfig struct {
	File string `yaml:"file"`
}

// Source kinds.
const (
	SourceStatic = "static"
	SourceFile   = "file"
)

// Filtering reports whether the list should be narrowed to matching items.
func (u UIConfig) Filtering() bool {
	return u.FilterResults != nil && *u.FilterResults
}

// Counting reports whether the status bar shows item and match counts.
func (u UIConfig) Counting() bool {
	return u.ShowCount == nil || *u.ShowCount
}
