package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when a stored key changes on disk.
type Event struct {
	Key string
}

// Watch streams change events until ctx is cancelled. Rapid bursts for the
// same key are coalesced. The channel is closed once ctx is done or the
// watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		// Coalesce bursts: diskv writes via temp file + rename, which shows
		// up as several filesystem events for one logical Set.
		pending := make(map[string]struct{})
		var flush <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := filepath.Base(ev.Name)
				if key == "" || strings.HasPrefix(key, ".") {
					continue
				}
				pending[key] = struct{}{}
				if flush == nil {
					flush = time.After(100 * time.Millisecond)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch: %v\n", err)
			case <-flush:
				for key := range pending {
					select {
					case events <- Event{Key: key}:
					default:
						// Drop rather than block the watcher; the consumer's
						// next refresh picks the change up anyway.
					}
					delete(pending, key)
				}
				flush = nil
			}
		}
	}()

	return events, nil
}
