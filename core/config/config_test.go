// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, getters, environment overrides, discovery
//              and watching.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-09

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	lzerror "github.com/labzen/tool/core/error"
)

const sampleTOML = `
[log]
level = "debug"
format = "json"

[random]
length = 24
charset = "abc"
uppercase = true
timeout = "1500ms"
tags = ["a", "b"]
`

const sampleYAML = `
log:
  level: warn
random:
  length: 8
  tags:
    - x
    - y
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadFromStringTOML(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
	if got := cfg.GetInt("random.length"); got != 24 {
		t.Errorf("random.length = %d, want 24", got)
	}
	if got := cfg.GetBool("random.uppercase"); !got {
		t.Error("random.uppercase should be true")
	}
	if got := cfg.GetDuration("random.timeout"); got != 1500*time.Millisecond {
		t.Errorf("random.timeout = %v, want 1.5s", got)
	}
	if got := cfg.GetStringSlice("random.tags"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("random.tags = %v", got)
	}
	if got := cfg.GetString("random.length"); got != "24" {
		t.Errorf("GetString on an int = %q, want 24", got)
	}
}

func TestLoadFromStringYAML(t *testing.T) {
	cfg, err := LoadFromString(sampleYAML, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if got := cfg.GetString("log.level"); got != "warn" {
		t.Errorf("log.level = %q, want warn", got)
	}
	if got := cfg.GetInt("random.length"); got != 8 {
		t.Errorf("random.length = %d, want 8", got)
	}
	if got := cfg.GetStringSlice("random.tags"); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("random.tags = %v", got)
	}
}

func TestLoadFromStringInvalid(t *testing.T) {
	_, err := LoadFromString("[log\nlevel=", FormatTOML)
	if !lzerror.HasCode(err, lzerror.CodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", lzerror.GetCode(err))
	}
}

func TestDefaults(t *testing.T) {
	cfg, _ := LoadFromString(sampleTOML, FormatTOML)

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"missing string", cfg.GetString("strings.ellipsis", "..."), "..."},
		{"missing int", cfg.GetInt("missing.int", 7), 7},
		{"missing bool", cfg.GetBool("missing.bool", true), true},
		{"missing duration", cfg.GetDuration("missing.d", time.Second), time.Second},
		{"missing slice", cfg.GetStringSlice("missing.s", []string{"z"}), []string{"z"}},
		{"no default", cfg.GetString("missing.none"), ""},
		{"path through scalar", cfg.GetString("log.level.deeper", "x"), "x"},
	}
	for _, tt := range tests {
		if !reflect.DeepEqual(tt.got, tt.want) {
			t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, _ := LoadFromString(sampleTOML, FormatTOML)
	cfg.WithEnvPrefix("labzen")

	t.Setenv("LABZEN_LOG_LEVEL", "error")
	t.Setenv("LABZEN_RANDOM_LENGTH", "99")
	t.Setenv("LABZEN_RANDOM_TAGS", "p,q")
	t.Setenv("LABZEN_DATETIME_PATTERN", "yyyy")

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("log.level = %q, want error", got)
	}
	if got := cfg.GetInt("random.length"); got != 99 {
		t.Errorf("random.length = %d, want 99", got)
	}
	if got := cfg.GetStringSlice("random.tags"); !reflect.DeepEqual(got, []string{"p", "q"}) {
		t.Errorf("random.tags = %v", got)
	}
	if !cfg.Has("datetime.pattern") {
		t.Error("Has() should see environment-only keys")
	}
}

func TestEnvIgnoredWithoutPrefix(t *testing.T) {
	cfg, _ := LoadFromString(sampleTOML, FormatTOML)
	t.Setenv("LOG_LEVEL", "error")
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		prefix, key, want string
	}{
		{"labzen", "log.level", "LABZEN_LOG_LEVEL"},
		{"", "random.length", "RANDOM_LENGTH"},
		{"APP", "a", "APP_A"},
	}
	for _, tt := range tests {
		if got := EnvKey(tt.prefix, tt.key); got != tt.want {
			t.Errorf("EnvKey(%q, %q) = %q; want %q", tt.prefix, tt.key, got, tt.want)
		}
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := New("", nil)
	cfg.Set("strings.ellipsis", "…")
	cfg.Set("bytes.uppercase", true)

	if got := cfg.GetString("strings.ellipsis"); got != "…" {
		t.Errorf("strings.ellipsis = %q", got)
	}

	all := cfg.GetAll()
	all["strings"].(map[string]interface{})["ellipsis"] = "changed"
	if got := cfg.GetString("strings.ellipsis"); got != "…" {
		t.Error("GetAll() should return a deep copy")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "labzen.toml", sampleTOML)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log.level":        "info",
			"strings.ellipsis": "...",
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("file value should win over the default, got %q", got)
	}
	if got := cfg.GetString("strings.ellipsis"); got != "..." {
		t.Errorf("default should fill missing keys, got %q", got)
	}
	if got := cfg.GetString("log.format"); got != "json" {
		t.Errorf("sibling file values should survive the merge, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); !lzerror.HasCode(err, lzerror.CodeValidationFailed) {
		t.Errorf("Load(\"\") code = %v", lzerror.GetCode(err))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !lzerror.HasCode(err, lzerror.CodeNotFound) {
		t.Errorf("Load(missing) code = %v", lzerror.GetCode(err))
	}
	bad := writeFile(t, t.TempDir(), "bad.yaml", "a: [unclosed")
	if _, err := Load(bad); !lzerror.HasCode(err, lzerror.CodeInvalidConfig) {
		t.Errorf("Load(bad) code = %v", lzerror.GetCode(err))
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", FormatTOML},
		{"a.yaml", FormatYAML},
		{"a.YML", FormatYAML},
		{"a.conf", FormatTOML},
	}
	for _, tt := range tests {
		if got := detectFormat(tt.path); got != tt.want {
			t.Errorf("detectFormat(%q) = %v; want %v", tt.path, got, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, second, "labzen.yaml", sampleYAML)

	opts := DiscoveryOptions{
		Paths:      []string{first, second},
		Filenames:  []string{"labzen"},
		Extensions: []string{".toml", ".yaml"},
		Required:   true,
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v, want yaml", cfg.Format())
	}
	if cfg.FilePath() != filepath.Join(second, "labzen.yaml") {
		t.Errorf("FilePath() = %q", cfg.FilePath())
	}

	writeFile(t, first, "labzen.toml", sampleTOML)
	cfg, _ = Discover(opts)
	if cfg.Format() != FormatTOML {
		t.Error("earlier search paths should win")
	}
}

func TestDiscoverNotFound(t *testing.T) {
	opts := DiscoveryOptions{Paths: []string{t.TempDir()}, Filenames: []string{"none"}, Required: true}
	if _, err := Discover(opts); !lzerror.HasCode(err, lzerror.CodeNotFound) {
		t.Errorf("Discover() code = %v, want NOT_FOUND", lzerror.GetCode(err))
	}

	opts.Required = false
	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(cfg.GetAll()) != 0 {
		t.Error("optional discovery should return an empty config")
	}
}

func TestListPossibleConfigFiles(t *testing.T) {
	got := ListPossibleConfigFiles(DiscoveryOptions{
		Paths:      []string{"a", "b"},
		Filenames:  []string{"x"},
		Extensions: []string{".toml", ".yml"},
	})
	want := []string{
		filepath.Join("a", "x.toml"), filepath.Join("a", "x.yml"),
		filepath.Join("b", "x.toml"), filepath.Join("b", "x.yml"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListPossibleConfigFiles() = %v; want %v", got, want)
	}
}

func TestReloadNotifiesHandlers(t *testing.T) {
	path := writeFile(t, t.TempDir(), "labzen.toml", sampleTOML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var oldLevel, newLevel string
	cfg.OnChange(func(o, n *Config) {
		oldLevel = o.GetString("log.level")
		newLevel = n.GetString("log.level")
	})

	writeFile(t, filepath.Dir(path), "labzen.toml", "[log]\nlevel = \"trace\"\n")
	if err := cfg.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if oldLevel != "debug" || newLevel != "trace" {
		t.Errorf("handler saw %q -> %q; want debug -> trace", oldLevel, newLevel)
	}
	if cfg.GetString("log.level") != "trace" {
		t.Error("config should hold the reloaded data")
	}
}

func TestReloadKeepsDataOnParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "labzen.toml", sampleTOML)
	cfg, _ := Load(path)

	writeFile(t, filepath.Dir(path), "labzen.toml", "[log\n")
	if err := cfg.Reload(); err == nil {
		t.Fatal("Reload() should fail on invalid content")
	}
	if cfg.GetString("log.level") != "debug" {
		t.Error("failed reload should keep the previous data")
	}
}

func TestWatch(t *testing.T) {
	path := writeFile(t, t.TempDir(), "labzen.toml", sampleTOML)
	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, Watch: true})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	defer cfg.StopWatching()

	if !cfg.IsWatching() {
		t.Fatal("IsWatching() should be true")
	}

	changed := make(chan string, 4)
	cfg.OnChange(func(_, n *Config) {
		changed <- n.GetString("log.level")
	})

	writeFile(t, filepath.Dir(path), "labzen.toml", "[log]\nlevel = \"error\"\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case level := <-changed:
			if level == "error" {
				return
			}
		case <-deadline:
			t.Fatal("no change notification within 5s")
		}
	}
}

func TestStopWatching(t *testing.T) {
	path := writeFile(t, t.TempDir(), "labzen.toml", sampleTOML)
	cfg, _ := Load(path)

	if err := cfg.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := cfg.Watch(); err != nil {
		t.Fatalf("second Watch() error = %v", err)
	}
	cfg.StopWatching()
	cfg.StopWatching()
	if cfg.IsWatching() {
		t.Error("IsWatching() should be false after StopWatching")
	}
}

func TestWatchWithoutFile(t *testing.T) {
	cfg, _ := LoadFromString(sampleTOML, FormatTOML)
	if err := cfg.Watch(); !lzerror.HasCode(err, lzerror.CodeValidationFailed) {
		t.Errorf("Watch() code = %v, want VALIDATION_FAILED", lzerror.GetCode(err))
	}
}
