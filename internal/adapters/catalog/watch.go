package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events editors emit on save.
const reloadDelay = 200 * time.Millisecond

// Watch reloads the catalog whenever the overlay file changes, until ctx
// is cancelled. A reload that fails validation is logged and the previous
// table stays in service.
//
// The overlay's directory is watched rather than the file itself so that
// atomic saves (write to temp, rename over) are seen.
func (c *Catalog) Watch(ctx context.Context) error {
	if c.overlay == "" {
		return errors.New("catalog: no overlay path to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(c.overlay)

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	c.logger.Info("watching catalog overlay", slog.String("path", target))

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target || event.Op == fsnotify.Chmod {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}

			pending = timer.C

		case <-pending:
			pending = nil

			if err := c.Reload(); err != nil {
				c.logger.Error("catalog reload rejected, keeping previous table",
					slog.String("path", target),
					slog.Any("error", err),
				)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			c.logger.Warn("catalog watcher error", slog.Any("error", err))
		}
	}
}
