package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher reloads the config file on change so long-running commands can
// react to edits, in particular the mock-data toggle.
type Watcher struct {
	basePath string
	log      zerolog.Logger
}

// NewWatcher creates a watcher for the config under basePath.
func NewWatcher(basePath string, log zerolog.Logger) *Watcher {
	return &Watcher{
		basePath: basePath,
		log:      log.With().Str("component", "config-watcher").Logger(),
	}
}

// Run watches until ctx is done, calling apply with each successfully
// reloaded config. Unreadable intermediate states (editors often write
// in two steps) are logged and skipped.
func (w *Watcher) Run(ctx context.Context, apply func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files, which
	// would drop a direct file watch.
	if err := watcher.Add(Dir(w.basePath)); err != nil {
		return fmt.Errorf("watching config directory: %w", err)
	}

	target := filepath.Base(FilePath(w.basePath))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(w.basePath)
			if err != nil {
				w.log.Warn().Err(err).Msg("config changed but could not be reloaded")
				continue
			}
			w.log.Debug().Bool("mock_enabled", cfg.Mock.Enabled).Msg("config reloaded")
			apply(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("config watcher error")
		}
	}
}
