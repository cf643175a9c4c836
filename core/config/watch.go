// File: watch.go
// Title: Configuration File Watching
// Description: Reloads a file-backed configuration when the file changes and
//              notifies registered handlers. The parent directory is watched
//              so editors that replace the file by rename are followed.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-09
//
// Change History:
// - 2026-09-28 v0.1.0: Polling watcher
// - 2026-10-09 v0.2.0: fsnotify based watcher

package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	lzerror "github.com/labzen/tool/core/error"
	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/utils/stringx"
)

// OnChange registers a handler called after each successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Watch starts monitoring the configuration file. Calling Watch on a config
// that is already watched is a no-op.
func (c *Config) Watch() error {
	const op = "Watch"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher != nil {
		return nil
	}
	if stringx.IsBlank(c.filePath) {
		return lzerrors.ValidationFailed(lzerrors.ModuleConfig, op, "file path required for watching", nil)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return lzerrors.ConfigFailed(op, "cannot create file watcher", err)
	}
	if err := watcher.Add(filepath.Dir(c.filePath)); err != nil {
		_ = watcher.Close()
		return lzerrors.ConfigFailed(op, "cannot watch config directory", err).
			WithDetail("filePath", c.filePath)
	}

	c.watcher = watcher
	c.done = make(chan struct{})
	go c.watchLoop(watcher, c.done, filepath.Clean(c.filePath))
	return nil
}

func (c *Config) watchLoop(watcher *fsnotify.Watcher, done <-chan struct{}, target string) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				// a failed reload keeps the previous data
				_ = c.reload()
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Reload re-reads the file and notifies handlers when parsing succeeds
func (c *Config) Reload() error {
	return c.reload()
}

func (c *Config) reload() error {
	c.mu.RLock()
	filePath, format := c.filePath, c.format
	c.mu.RUnlock()

	content, err := os.ReadFile(filePath)
	if err != nil {
		return lzerrors.ConfigFailed("reload", "failed to read config file during reload", err).
			WithDetail("filePath", filePath)
	}

	newData, err := parseContent(content, format)
	if err != nil {
		return lzerror.Wrap(err, "failed to parse config file during reload").
			WithDetail("filePath", filePath)
	}

	c.mu.Lock()
	oldConfig := &Config{data: c.data, filePath: filePath, format: format, envPrefix: c.envPrefix}
	c.data = newData
	newConfig := &Config{data: deepCopyMap(newData), filePath: filePath, format: format, envPrefix: c.envPrefix}
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}
	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher == nil {
		return
	}
	close(c.done)
	_ = c.watcher.Close()
	c.watcher = nil
	c.done = nil
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}
