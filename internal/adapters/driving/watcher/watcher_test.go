package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
)

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text body"), 0o644))

	f, err := Describe(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", f.Name)
	assert.Equal(t, int64(15), f.Size)
	assert.Contains(t, f.Type, "text/plain")
}

func TestDescribe_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Describe(filepath.Join(dir, "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Describe(dir)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDescribeSupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

	_, err := DescribeSupported(path)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), ".pdf, .docx, .txt")
}

func TestInbox_Accept(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "report.pdf")
	hidden := filepath.Join(dir, ".draft.txt")
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(hidden, []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(sub, 0o755))

	tests := []struct {
		name   string
		path   string
		op     fsnotify.Op
		accept bool
	}{
		{"create file", file, fsnotify.Create, true},
		{"write file", file, fsnotify.Write, true},
		{"write and chmod", file, fsnotify.Write | fsnotify.Chmod, true},
		{"chmod only", file, fsnotify.Chmod, false},
		{"remove", file, fsnotify.Remove, false},
		{"rename", file, fsnotify.Rename, false},
		{"hidden file", hidden, fsnotify.Create, false},
		{"directory", sub, fsnotify.Create, false},
		{"vanished file", filepath.Join(dir, "gone.txt"), fsnotify.Create, false},
	}

	inbox := New(dir)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := inbox.accept(fsnotify.Event{Name: tt.path, Op: tt.op})
			assert.Equal(t, tt.accept, ok)
			if tt.accept {
				assert.Equal(t, tt.path, path)
			}
		})
	}
}

func TestInbox_Describe_SkipsUnsupported(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.pdf", "c.exe"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
	}

	pending := map[string]struct{}{
		filepath.Join(dir, "b.txt"): {},
		filepath.Join(dir, "a.pdf"): {},
		filepath.Join(dir, "c.exe"): {},
	}

	batch := New(dir).describe(pending)
	require.Len(t, batch, 2)
	assert.Equal(t, "a.pdf", batch[0].Name)
	assert.Equal(t, "b.txt", batch[1].Name)
}

func TestInbox_Watch(t *testing.T) {
	t.Run("emits new files as one batch", func(t *testing.T) {
		dir := t.TempDir()
		inbox := New(dir, WithDebounce(50*time.Millisecond))
		defer inbox.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ch, err := inbox.Watch(ctx)
		require.NoError(t, err)

		go func() {
			time.Sleep(20 * time.Millisecond)
			_ = os.WriteFile(filepath.Join(dir, "one.txt"), []byte("first"), 0o644)
			_ = os.WriteFile(filepath.Join(dir, "two.txt"), []byte("second"), 0o644)
		}()

		select {
		case batch := <-ch:
			names := make([]string, 0, len(batch))
			for _, f := range batch {
				names = append(names, f.Name)
			}
			assert.Contains(t, names, "one.txt")
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for inbox batch")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		inbox := New(filepath.Join(t.TempDir(), "nope"))
		ch, err := inbox.Watch(context.Background())
		assert.Error(t, err)
		assert.Nil(t, ch)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		ch, err := New(path).Watch(context.Background())
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, ch)
	})

	t.Run("second watch fails", func(t *testing.T) {
		inbox := New(t.TempDir())
		defer inbox.Close()

		_, err := inbox.Watch(context.Background())
		require.NoError(t, err)
		_, err = inbox.Watch(context.Background())
		assert.ErrorIs(t, err, ErrAlreadyWatching)
	})

	t.Run("context cancel closes channel", func(t *testing.T) {
		inbox := New(t.TempDir())
		defer inbox.Close()

		ctx, cancel := context.WithCancel(context.Background())
		ch, err := inbox.Watch(ctx)
		require.NoError(t, err)

		cancel()
		select {
		case _, ok := <-ch:
			assert.False(t, ok, "channel should be closed")
		case <-time.After(time.Second):
			t.Fatal("channel not closed after cancel")
		}
	})

	t.Run("watch after close", func(t *testing.T) {
		inbox := New(t.TempDir())
		require.NoError(t, inbox.Close())
		require.NoError(t, inbox.Close())

		_, err := inbox.Watch(context.Background())
		assert.ErrorIs(t, err, domain.ErrClosed)
	})
}

type recordingUpload struct {
	mu      sync.Mutex
	batches [][]domain.FileDescriptor
	err     error
}

func (r *recordingUpload) Submit(files []domain.FileDescriptor) ([]domain.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, files)
	if r.err != nil {
		return nil, r.err
	}
	return make([]domain.Document, len(files)), nil
}

func (r *recordingUpload) OnBatchCompleted(driving.BatchObserver) {}
func (r *recordingUpload) Pending() int                          { return 0 }
func (r *recordingUpload) Close() error                          { return nil }

func TestFeed(t *testing.T) {
	ch := make(chan []domain.FileDescriptor, 2)
	ch <- []domain.FileDescriptor{{Name: "a.pdf"}}
	ch <- []domain.FileDescriptor{{Name: "b.txt"}, {Name: "c.docx"}}
	close(ch)

	upload := &recordingUpload{err: nil}
	Feed(ch, upload)

	require.Len(t, upload.batches, 2)
	assert.Len(t, upload.batches[1], 2)
}

func TestFeed_ContinuesAfterError(t *testing.T) {
	ch := make(chan []domain.FileDescriptor, 2)
	ch <- []domain.FileDescriptor{{Name: "a.pdf"}}
	ch <- []domain.FileDescriptor{{Name: "b.pdf"}}
	close(ch)

	upload := &recordingUpload{err: domain.ErrClosed}
	Feed(ch, upload)

	assert.Len(t, upload.batches, 2)
}
