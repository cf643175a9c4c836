// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package documentation for config.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-09
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-09 v0.2.0: fsnotify watching

/*
Package config loads TOML and YAML configuration for the labzen CLI.

Values are addressed with dotted keys. When an environment prefix is set,
an environment variable overrides the file value for the same key:

	cfg, err := config.Load("labzen.toml")
	if err != nil {
		return err
	}
	cfg.WithEnvPrefix("LABZEN")

	level := cfg.GetString("log.level", "info")     // or $LABZEN_LOG_LEVEL
	length := cfg.GetInt("random.length", 16)

Discovery searches a list of directories, base names and extensions and
loads the first file found:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())

A file-backed configuration can be watched. Handlers receive the previous and
the new configuration after every successful reload:

	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
		logger.Info("config reloaded")
	})
	if err := cfg.Watch(); err != nil {
		return err
	}
	defer cfg.StopWatching()
*/
package config
