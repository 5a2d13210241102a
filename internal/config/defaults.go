package config

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Kind: SourceStatic,
		},
		UI: UIConfig{
			Placeholder:   "Search here ...",
			CharLimit:     64,
			FilterResults: boolPtr(false),
			ShowCount:     boolPtr(true),
		},
	}
}
