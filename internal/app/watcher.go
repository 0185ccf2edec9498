package app

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"holomat/internal/logging"
)

// CatalogWatcher watches the app catalog file and triggers a callback when
// it changes on disk. Bursts of events (editors often write, rename and
// chmod in quick succession) are coalesced into one callback.
type CatalogWatcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	done     chan struct{}
	onChange func(path string) // Called from the watcher goroutine

	mu    sync.Mutex
	timer *time.Timer
}

// NewCatalogWatcher creates a watcher for path. The containing directory is
// watched so that atomic replace-by-rename is noticed.
func NewCatalogWatcher(path string, debounce time.Duration) (*CatalogWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("app: watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("app: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("app: watch %s: %w", path, err)
	}
	return &CatalogWatcher{
		path:     abs,
		debounce: debounce,
		watcher:  w,
	}, nil
}

// OnChange sets the callback to invoke when the catalog changes.
// The callback is called from a background goroutine - use appropriate
// synchronization if updating UI.
func (c *CatalogWatcher) OnChange(callback func(path string)) {
	c.onChange = callback
}

// Start begins watching in a background goroutine.
func (c *CatalogWatcher) Start() {
	c.stopCh = make(chan struct{})
	c.done = make(chan struct{})
	go c.watchLoop()
}

// Stop stops the watcher goroutine and releases the underlying watch.
func (c *CatalogWatcher) Stop() {
	if c.stopCh != nil {
		close(c.stopCh)
		<-c.done
		c.stopCh = nil
	}
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.mu.Unlock()
	c.watcher.Close()
}

// Path returns the absolute path being watched.
func (c *CatalogWatcher) Path() string {
	return c.path
}

func (c *CatalogWatcher) watchLoop() {
	defer close(c.done)
	for {
		select {
		case <-c.stopCh:
			return
		case ev, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != c.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				c.schedule()
			}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			logging.Logger().Warn("Catalog: watch error", "path", c.path, "err", err)
		}
	}
}

func (c *CatalogWatcher) schedule() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		if c.onChange != nil {
			c.onChange(c.path)
		}
	})
}
