package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// DefaultDebounce is how long the inbox waits for a burst of events to
// settle before emitting a batch.
const DefaultDebounce = 200 * time.Millisecond

// ErrAlreadyWatching is returned when Watch is called twice.
var ErrAlreadyWatching = errors.New("inbox already watching")

// Inbox watches a directory for new files.
type Inbox struct {
	dir      string
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	closed  bool
	done    chan struct{}
}

// Option configures an Inbox.
type Option func(*Inbox)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(i *Inbox) {
		if d > 0 {
			i.debounce = d
		}
	}
}

// New creates an inbox for dir. Nothing is watched until Watch is called.
func New(dir string, opts ...Option) *Inbox {
	i := &Inbox{dir: dir, debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Dir returns the watched directory.
func (i *Inbox) Dir() string {
	return i.dir
}

// Watch starts watching and returns a channel of batches. Files that
// settle within one debounce window arrive together. The channel is
// closed when ctx is cancelled or the inbox is closed.
func (i *Inbox) Watch(ctx context.Context) (<-chan []domain.FileDescriptor, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return nil, domain.ErrClosed
	}
	if i.watcher != nil {
		return nil, ErrAlreadyWatching
	}

	info, err := os.Stat(i.dir)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", i.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch %s: %w: not a directory", i.dir, domain.ErrInvalidInput)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(i.dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", i.dir, err)
	}

	i.watcher = w
	i.done = make(chan struct{})
	out := make(chan []domain.FileDescriptor)
	go i.loop(ctx, w, out, i.done)

	logger.Debug("watching %s for uploads", i.dir)
	return out, nil
}

func (i *Inbox) loop(ctx context.Context, w *fsnotify.Watcher, out chan<- []domain.FileDescriptor, done chan struct{}) {
	defer close(done)
	defer close(out)

	pending := make(map[string]struct{})
	timer := time.NewTimer(i.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if path, ok := i.accept(event); ok {
				pending[path] = struct{}{}
				timer.Reset(i.debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("inbox watcher: %v", err)

		case <-timer.C:
			batch := i.describe(pending)
			clear(pending)
			if len(batch) == 0 {
				continue
			}
			select {
			case out <- batch:
			case <-ctx.Done():
				return
			}
		}
	}
}

// accept filters an fsnotify event down to a candidate file path.
func (i *Inbox) accept(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return "", false
	}
	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return event.Name, true
}

// describe turns the settled paths into descriptors in name order,
// skipping anything unsupported or gone.
func (i *Inbox) describe(pending map[string]struct{}) []domain.FileDescriptor {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	batch := make([]domain.FileDescriptor, 0, len(paths))
	for _, p := range paths {
		f, err := DescribeSupported(p)
		if err != nil {
			logger.Warn("skipping %s: %v", filepath.Base(p), err)
			continue
		}
		if f.Oversized() {
			logger.Warn("%s is larger than %d MB", f.Name, domain.MaxUploadSize>>20)
		}
		batch = append(batch, f)
	}
	return batch
}

// Close stops watching. Safe to call more than once.
func (i *Inbox) Close() error {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return nil
	}
	i.closed = true
	w, done := i.watcher, i.done
	i.mu.Unlock()

	if w == nil {
		return nil
	}
	err := w.Close()
	<-done
	return err
}

// Feed submits every batch from ch to upload until ch is closed.
// Submission errors are logged and do not stop the feed.
func Feed(ch <-chan []domain.FileDescriptor, upload driving.UploadSimulator) {
	for batch := range ch {
		docs, err := upload.Submit(batch)
		if err != nil {
			logger.Warn("submit %d file(s) from inbox: %v", len(batch), err)
			continue
		}
		logger.Info("queued %d file(s) from inbox", len(docs))
	}
}
