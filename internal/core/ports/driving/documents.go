package driving

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// DocumentRegistry holds the canonical ordered list of uploaded documents.
// There is no delete operation.
type DocumentRegistry interface {
	// Append adds all documents to the end of the registry, preserving order.
	// Returns domain.ErrAlreadyExists if any ID is already registered.
	Append(batch []domain.Document) error

	// UpdateStatus moves a processing document to a terminal status.
	// Returns domain.ErrNotFound for an unknown ID.
	UpdateStatus(id string, status domain.DocumentStatus) error

	// UpdateStatuses moves several documents in one transition.
	// Unknown IDs are skipped; domain.ErrNotFound is returned if none matched.
	UpdateStatuses(ids []string, status domain.DocumentStatus) error

	// Get returns the document with the given ID.
	Get(id string) (domain.Document, error)

	// List returns a read-only snapshot in insertion order.
	List() []domain.Document
}
