// ============================================================================
// labzen tool
// ============================================================================
//
// Package:     version
// Description: Central version management for the utility packages and CLI
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"sort"

	"github.com/Masterminds/semver/v3"

	lzerrors "github.com/labzen/tool/core/errors"
)

// Version constants for the tool and its components
const (
	// Tool is the release version of the module
	Tool = "0.3.0"

	// Component versions
	Stringx = "0.3.0"
	Bytex   = "0.2.0"
	Slicex  = "0.2.0"
	Tuple   = "0.2.0"
	Randx   = "0.1.0"
	Timex   = "0.2.0"
	Objectx = "0.1.0"
	CLI     = "0.2.0"
)

var components = map[string]string{
	"stringx": Stringx,
	"bytex":   Bytex,
	"slicex":  Slicex,
	"tuple":   Tuple,
	"randx":   Randx,
	"timex":   Timex,
	"objectx": Objectx,
	"cli":     CLI,
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	if v, ok := components[name]; ok {
		return v
	}
	return Tool
}

// Components returns the known component names in order
func Components() []string {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads a semantic version, tolerating a leading "v"
func Parse(v string) (*semver.Version, error) {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, lzerrors.InvalidFormat(lzerrors.ModuleVersion, "Parse", v, "semantic version").WithDetail("cause", err.Error())
	}
	return parsed, nil
}

// Compare returns -1, 0 or 1 as a is lower than, equal to or greater than b
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// Satisfies reports whether v matches a constraint such as ">= 0.2, < 1"
func Satisfies(v, constraint string) (bool, error) {
	parsed, err := Parse(v)
	if err != nil {
		return false, err
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, lzerrors.InvalidFormat(lzerrors.ModuleVersion, "Satisfies", constraint, "version constraint").WithDetail("cause", err.Error())
	}
	return c.Check(parsed), nil
}
