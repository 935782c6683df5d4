package services

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// Ensure DocumentRegistry implements the interface.
var _ driving.DocumentRegistry = (*DocumentRegistry)(nil)

// DocumentRegistry keeps the ordered document list in the state store.
type DocumentRegistry struct {
	store driven.StateStore
}

// NewDocumentRegistry creates a registry backed by store.
func NewDocumentRegistry(store driven.StateStore) *DocumentRegistry {
	return &DocumentRegistry{store: store}
}

// Append adds the batch to the end of the registry. Nothing is appended
// if any ID is empty, repeated, or already registered.
func (r *DocumentRegistry) Append(batch []domain.Document) error {
	if len(batch) == 0 {
		return nil
	}

	snap := r.store.Snapshot()
	seen := make(map[string]bool, len(batch))
	for _, d := range batch {
		if d.ID == "" {
			return fmt.Errorf("%w: document %q has no id", domain.ErrInvalidInput, d.Name)
		}
		if _, ok := snap.Document(d.ID); ok || seen[d.ID] {
			return fmt.Errorf("document %s: %w", d.ID, domain.ErrAlreadyExists)
		}
		seen[d.ID] = true
	}

	next := r.store.Dispatch(state.DocumentsAppended{Documents: batch})
	if !appended(next.Documents, batch) {
		return fmt.Errorf("document batch: %w", domain.ErrAlreadyExists)
	}

	logger.Debug("registry: appended %d document(s), %d total", len(batch), len(next.Documents))
	return nil
}

// appended reports whether docs ends with batch.
func appended(docs, batch []domain.Document) bool {
	if len(docs) < len(batch) {
		return false
	}
	tail := docs[len(docs)-len(batch):]
	for i := range batch {
		if tail[i].ID != batch[i].ID {
			return false
		}
	}
	return true
}

// UpdateStatus moves one processing document to a terminal status.
func (r *DocumentRegistry) UpdateStatus(id string, status domain.DocumentStatus) error {
	if !status.Terminal() {
		return fmt.Errorf("%w: status %q is not terminal", domain.ErrInvalidInput, status)
	}

	doc, err := r.Get(id)
	if err != nil {
		return err
	}
	if doc.Status.Terminal() {
		return fmt.Errorf("%w: document %s is already %s", domain.ErrInvalidInput, id, doc.Status)
	}

	r.store.Dispatch(state.DocumentStatusChanged{IDs: []string{id}, Status: status})
	return nil
}

// UpdateStatuses moves every listed processing document in one transition.
func (r *DocumentRegistry) UpdateStatuses(ids []string, status domain.DocumentStatus) error {
	if !status.Terminal() {
		return fmt.Errorf("%w: status %q is not terminal", domain.ErrInvalidInput, status)
	}

	snap := r.store.Snapshot()
	matched := slices.ContainsFunc(ids, func(id string) bool {
		_, ok := snap.Document(id)
		return ok
	})
	if !matched {
		return fmt.Errorf("documents %v: %w", ids, domain.ErrNotFound)
	}

	r.store.Dispatch(state.DocumentStatusChanged{IDs: ids, Status: status})
	return nil
}

// Get returns the document with the given ID.
func (r *DocumentRegistry) Get(id string) (domain.Document, error) {
	doc, ok := r.store.Snapshot().Document(id)
	if !ok {
		return domain.Document{}, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return doc, nil
}

// List returns a copy of the registry in insertion order.
func (r *DocumentRegistry) List() []domain.Document {
	return slices.Clone(r.store.Snapshot().Documents)
}
