package version

import (
	"regexp"
	"testing"

	lzerrors "github.com/labzen/tool/core/errors"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Tool", Tool},
		{"Stringx", Stringx},
		{"Bytex", Bytex},
		{"Slicex", Slicex},
		{"Tuple", Tuple},
		{"Randx", Randx},
		{"Timex", Timex},
		{"Objectx", Objectx},
		{"CLI", CLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
			if newer, err := Compare(tt.version, Tool); err != nil || newer > 0 {
				t.Errorf("%s version %q is ahead of the tool version %q", tt.name, tt.version, Tool)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		component string
		expected  string
	}{
		{"stringx", Stringx},
		{"randx", Randx},
		{"cli", CLI},
		{"unknown", Tool},
		{"", Tool},
	}

	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			if result := ComponentVersion(tt.component); result != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, result, tt.expected)
			}
		})
	}

	if got := len(Components()); got != 8 {
		t.Errorf("Components() has %d entries, want 8", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"v1.2.3", "1.2.3", 0},
		{"1.10.0", "1.9.9", 1},
		{"1.0.0-rc.1", "1.0.0", -1},
	}

	for _, tt := range tests {
		got, err := Compare(tt.a, tt.b)
		if err != nil {
			t.Fatalf("Compare(%q, %q) error = %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	if _, err := Compare("one", "1.0.0"); !lzerrors.IsInvalidFormat(err) {
		t.Errorf("Compare() error = %v, want invalid format", err)
	}
}

func TestSatisfies(t *testing.T) {
	ok, err := Satisfies(Tool, ">= 0.1, < 1")
	if err != nil || !ok {
		t.Errorf("Satisfies(%q) = %v, %v", Tool, ok, err)
	}

	ok, err = Satisfies("2.0.0", "^1.2")
	if err != nil || ok {
		t.Errorf("Satisfies(2.0.0, ^1.2) = %v, %v", ok, err)
	}

	if _, err := Satisfies("1.0.0", ">>> 1"); !lzerrors.IsInvalidFormat(err) {
		t.Errorf("Satisfies() error = %v, want invalid format", err)
	}
}
