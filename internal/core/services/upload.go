package services

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// Ensure UploadSimulator implements the interface.
var _ driving.UploadSimulator = (*UploadSimulator)(nil)

// Simulated document metrics, uniform over [min, min+span).
const (
	minPages = 5
	pageSpan = 50
	minWords = 1000
	wordSpan = 10000
)

// UploadSimulator registers uploaded files as processing documents and
// completes each batch after a fixed delay.
type UploadSimulator struct {
	registry  driving.DocumentRegistry
	scheduler driven.Scheduler
	ids       driven.IDGenerator
	rnd       driven.Random
	delay     time.Duration

	inflight sync.WaitGroup

	mu        sync.Mutex
	pending   map[uint64]driven.Task
	nextBatch uint64
	observers []driving.BatchObserver
	closed    bool
}

// NewUploadSimulator creates an upload simulator that completes batches
// after delay.
func NewUploadSimulator(
	registry driving.DocumentRegistry,
	scheduler driven.Scheduler,
	ids driven.IDGenerator,
	rnd driven.Random,
	delay time.Duration,
) *UploadSimulator {
	return &UploadSimulator{
		registry:  registry,
		scheduler: scheduler,
		ids:       ids,
		rnd:       rnd,
		delay:     delay,
		pending:   make(map[uint64]driven.Task),
	}
}

// Submit registers one processing document per file and schedules a
// single deferred completion for the whole batch.
func (u *UploadSimulator) Submit(files []domain.FileDescriptor) ([]domain.Document, error) {
	if !u.begin() {
		return nil, domain.ErrClosed
	}
	defer u.inflight.Done()
	if len(files) == 0 {
		return []domain.Document{}, nil
	}

	logger.Section("Upload")
	now := u.scheduler.Now()
	batch := make([]domain.Document, len(files))
	for i, f := range files {
		batch[i] = domain.Document{
			ID:         u.ids.NewID(),
			Name:       f.Name,
			Type:       f.Type,
			Size:       f.Size,
			UploadDate: now,
			Status:     domain.StatusProcessing,
			Pages:      u.rnd.IntN(pageSpan) + minPages,
			WordCount:  u.rnd.IntN(wordSpan) + minWords,
		}
		logger.Debug("upload: %s (%s, %d bytes) -> %s", f.Name, f.Type, f.Size, batch[i].ID)
	}

	if err := u.registry.Append(batch); err != nil {
		return nil, fmt.Errorf("register upload: %w", err)
	}

	ids := make([]string, len(batch))
	for i, d := range batch {
		ids[i] = d.ID
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return batch, domain.ErrClosed
	}
	id := u.nextBatch
	u.nextBatch++
	u.pending[id] = u.scheduler.AfterFunc(u.delay, func() { u.complete(id, ids) })
	logger.Debug("upload: batch %d of %d document(s) completes in %s", id, len(ids), u.delay)

	return batch, nil
}

func (u *UploadSimulator) complete(batchID uint64, ids []string) {
	u.mu.Lock()
	if _, ok := u.pending[batchID]; !ok || u.closed {
		u.mu.Unlock()
		return
	}
	delete(u.pending, batchID)
	observers := slices.Clone(u.observers)
	u.inflight.Add(1)
	u.mu.Unlock()
	defer u.inflight.Done()

	if err := u.registry.UpdateStatuses(ids, domain.StatusCompleted); err != nil {
		logger.Warn("upload: completing batch %d: %v", batchID, err)
		return
	}

	all := u.registry.List()
	batch := make([]domain.Document, 0, len(ids))
	for _, d := range all {
		if slices.Contains(ids, d.ID) {
			batch = append(batch, d)
		}
	}
	logger.Debug("upload: batch %d completed", batchID)

	for _, observe := range observers {
		observe(batch, all)
	}
}

// OnBatchCompleted registers an observer called after each batch completes.
func (u *UploadSimulator) OnBatchCompleted(observer driving.BatchObserver) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.observers = append(u.observers, observer)
}

// Pending returns the number of batches still processing.
func (u *UploadSimulator) Pending() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.pending)
}

// Close cancels every pending completion and waits for a submit or
// completion already running to finish. Documents of cancelled batches stay processing.
func (u *UploadSimulator) Close() error {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return nil
	}
	u.closed = true
	for id, task := range u.pending {
		task.Stop()
		delete(u.pending, id)
	}
	u.mu.Unlock()

	u.inflight.Wait()
	return nil
}

// begin registers a state write that Close waits for. It reports false
// once the simulator is closed.
func (u *UploadSimulator) begin() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return false
	}
	u.inflight.Add(1)
	return true
}

// CompletionNavigator switches to the document library once every
// uploaded document has completed.
type CompletionNavigator struct {
	router    driving.ViewRouter
	store     driven.StateStore
	scheduler driven.Scheduler
	delay     time.Duration

	mu     sync.Mutex
	tasks  []driven.Task
	closed bool
}

// NewCompletionNavigator creates a navigator that selects the documents
// view delay after the last batch completes. A batch submitted in the
// meantime holds the navigation back until it completes too.
func NewCompletionNavigator(
	router driving.ViewRouter, store driven.StateStore, scheduler driven.Scheduler, delay time.Duration,
) *CompletionNavigator {
	return &CompletionNavigator{router: router, store: store, scheduler: scheduler, delay: delay}
}

// Observe is a driving.BatchObserver.
func (n *CompletionNavigator) Observe(batch, all []domain.Document) {
	if len(batch) == 0 || len(all) == 0 {
		return
	}
	for _, d := range all {
		if d.Status != domain.StatusCompleted {
			return
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	var task driven.Task
	task = n.scheduler.AfterFunc(n.delay, func() {
		n.mu.Lock()
		live := !n.closed && n.forget(task)
		n.mu.Unlock()
		if !live {
			return
		}
		if !n.store.Snapshot().AllCompleted() {
			logger.Debug("navigate: upload still processing, staying put")
			return
		}
		if err := n.router.Select(domain.ViewDocuments); err != nil {
			logger.Warn("navigate: %v", err)
		}
	})
	n.tasks = append(n.tasks, task)
}

// forget drops task from the pending list (caller must hold lock).
func (n *CompletionNavigator) forget(task driven.Task) bool {
	i := slices.Index(n.tasks, task)
	if i < 0 {
		return false
	}
	n.tasks = slices.Delete(n.tasks, i, i+1)
	return true
}

// Pending returns the number of scheduled navigations.
func (n *CompletionNavigator) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.tasks)
}

// Close cancels scheduled navigations.
func (n *CompletionNavigator) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	for _, t := range n.tasks {
		t.Stop()
	}
	n.tasks = nil
	return nil
}
