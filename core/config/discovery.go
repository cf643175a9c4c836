// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the first configuration file across search paths,
//              base names and extensions and loads it.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-09
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation of file discovery
// - 2026-10-09 v0.2.0: User config directory in the default search path

package config

import (
	"os"
	"path/filepath"

	lzerror "github.com/labzen/tool/core/error"
	lzerrors "github.com/labzen/tool/core/errors"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // directories to search, in order
	Filenames  []string // base names without extension
	Extensions []string // extensions to try, in order
	EnvPrefix  string
	Required   bool // return a not-found error instead of an empty config
}

// DefaultDiscoveryOptions searches the working directory and the user config
// directory for labzen.toml, labzen.yaml and labzen.yml
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "labzen"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"labzen", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "LABZEN",
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", lzerrors.NotFound(lzerrors.ModuleConfig, "FindConfigFile", "configuration file").
		WithDetail("searchPaths", candidates)
}

// Discover finds and loads the first configuration file. When none exists and
// options.Required is false an empty configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(options.EnvPrefix, nil), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
	if err != nil {
		return nil, lzerror.Wrap(err, "found config file "+path+" but failed to load").
			WithDetail("configPath", path)
	}
	return cfg, nil
}
