package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at an empty dir and clears DOGSEARCH_* so the host
// environment can't leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"DOGSEARCH_SOURCE", "DOGSEARCH_SOURCE_PATH", "DOGSEARCH_FILTER", "DOGSEARCH_LOG_FILE"} {
		t.Setenv(k, "")
	}
	return t.TempDir()
}

func TestLoadDefaults(t *testing.T) {
	tmp := isolate(t)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Source.Kind != SourceStatic {
		t.Errorf("expected source kind %q, got %q", SourceStatic, cfg.Source.Kind)
	}
	if cfg.UI.Placeholder != "Search here ..." {
		t.Errorf("expected placeholder %q, got %q", "Search here ...", cfg.UI.Placeholder)
	}
	if cfg.UI.Filtering() {
		t.Error("expected filtering to be off by default")
	}
	if !cfg.UI.Counting() {
		t.Error("expected ShowCount default to be true")
	}
	if cfg.Log.File != "" {
		t.Errorf("expected no log file by default, got %q", cfg.Log.File)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmp := isolate(t)

	yaml := `
source:
  kind: file
  path: breeds.yaml
ui:
  placeholder: "Find a dog"
  filter_results: true
log:
  file: /tmp/dogsearch.log
`
	os.WriteFile(filepath.Join(tmp, "dogsearch.yaml"), []byte(yaml), 0644)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Source.Kind != SourceFile {
		t.Errorf("expected source kind %q, got %q", SourceFile, cfg.Source.Kind)
	}
	if want := filepath.Join(tmp, "breeds.yaml"); cfg.Source.Path != want {
		t.Errorf("expected relative source path resolved to %q, got %q", want, cfg.Source.Path)
	}
	if cfg.UI.Placeholder != "Find a dog" {
		t.Errorf("expected placeholder %q, got %q", "Find a dog", cfg.UI.Placeholder)
	}
	if !cfg.UI.Filtering() {
		t.Error("expected filtering enabled from file")
	}
	if cfg.Log.File != "/tmp/dogsearch.log" {
		t.Errorf("expected absolute log path kept, got %q", cfg.Log.File)
	}
	if cfg.UI.CharLimit != 64 {
		t.Errorf("expected char limit default preserved, got %d", cfg.UI.CharLimit)
	}
}

func TestLoadFromUserConfig(t *testing.T) {
	tmp := isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "dogsearch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  char_limit: 20\n"), 0644)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.CharLimit != 20 {
		t.Errorf("expected char limit 20 from user config, got %d", cfg.UI.CharLimit)
	}
}

func TestLoadLocalBeatsUserConfig(t *testing.T) {
	tmp := isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "dogsearch")
	os.MkdirAll(dir, 0o755)
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  char_limit: 20\n"), 0644)
	os.WriteFile(filepath.Join(tmp, "dogsearch.yaml"), []byte("ui:\n  char_limit: 30\n"), 0644)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.CharLimit != 30 {
		t.Errorf("expected local config to win with 30, got %d", cfg.UI.CharLimit)
	}
}

func TestLoadFileExplicit(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	os.WriteFile(path, []byte("ui:\n  show_count: false\n"), 0644)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.UI.Counting() {
		t.Error("expected show_count false from explicit file")
	}
}

func TestLoadFileMissing(t *testing.T) {
	isolate(t)
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmp := isolate(t)
	os.WriteFile(filepath.Join(tmp, "dogsearch.yaml"), []byte("ui: [unclosed"), 0644)

	if _, err := LoadFrom(tmp); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadValidationFailure(t *testing.T) {
	tmp := isolate(t)
	os.WriteFile(filepath.Join(tmp, "dogsearch.yaml"), []byte("source:\n  kind: remote\n"), 0644)

	_, err := LoadFrom(tmp)
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestMergePreservesDefaults(t *testing.T) {
	t.Parallel()
	base := DefaultConfig()
	override := &Config{
		UI: UIConfig{Placeholder: "override"},
	}

	merge(&base, override)

	if base.UI.Placeholder != "override" {
		t.Errorf("expected placeholder %q, got %q", "override", base.UI.Placeholder)
	}
	if base.Source.Kind != SourceStatic {
		t.Errorf("expected source kind preserved as %q, got %q", SourceStatic, base.Source.Kind)
	}
	if base.UI.CharLimit != 64 {
		t.Errorf("expected char limit preserved as 64, got %d", base.UI.CharLimit)
	}
}

func TestMergeBoolPtrOverride(t *testing.T) {
	t.Parallel()
	base := DefaultConfig()

	f := false
	tr := true
	override := &Config{
		UI: UIConfig{
			FilterResults: &tr,
			ShowCount:     &f,
		},
	}

	merge(&base, override)

	if !base.UI.Filtering() {
		t.Error("expected FilterResults to be overridden to true")
	}
	if base.UI.Counting() {
		t.Error("expected ShowCount to be overridden to false")
	}
}

func TestMergeBoolPtrNilPreservesDefault(t *testing.T) {
	t.Parallel()
	base := DefaultConfig()
	override := &Config{}

	merge(&base, override)

	if base.UI.FilterResults == nil || *base.UI.FilterResults != false {
		t.Error("expected FilterResults to remain false when override is nil")
	}
	if base.UI.ShowCount == nil || *base.UI.ShowCount != true {
		t.Error("expected ShowCount to remain true when override is nil")
	}
}

func TestEnvOverrides(t *testing.T) {
	tmp := isolate(t)
	t.Setenv("DOGSEARCH_SOURCE_PATH", "/data/breeds.toml")
	t.Setenv("DOGSEARCH_FILTER", "true")
	t.Setenv("DOGSEARCH_LOG_FILE", "/tmp/ds.log")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Source.Kind != SourceFile {
		t.Errorf("expected DOGSEARCH_SOURCE_PATH to imply kind %q, got %q", SourceFile, cfg.Source.Kind)
	}
	if cfg.Source.Path != "/data/breeds.toml" {
		t.Errorf("expected source path from env, got %q", cfg.Source.Path)
	}
	if !cfg.UI.Filtering() {
		t.Error("expected filter enabled from env")
	}
	if cfg.Log.File != "/tmp/ds.log" {
		t.Errorf("expected log file from env, got %q", cfg.Log.File)
	}
}

func TestEnvOverrideInvalidBool(t *testing.T) {
	tmp := isolate(t)
	t.Setenv("DOGSEARCH_FILTER", "sometimes")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.Filtering() {
		t.Error("expected invalid DOGSEARCH_FILTER to be ignored")
	}
}

func TestEnvOverrideExplicitKindWins(t *testing.T) {
	tmp := isolate(t)
	t.Setenv("DOGSEARCH_SOURCE", "static")
	t.Setenv("DOGSEARCH_SOURCE_PATH", "/data/breeds.yaml")

	_, err := LoadFrom(tmp)
	if err == nil {
		t.Fatal("expected validation error: path set with static kind")
	}
}
