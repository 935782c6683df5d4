package driving

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// BatchObserver is notified once a batch has finished processing.
// batch holds the completed documents; all is the whole registry.
type BatchObserver func(batch []domain.Document, all []domain.Document)

// UploadSimulator turns file descriptors into documents and completes
// them after a fixed delay.
type UploadSimulator interface {
	// Submit registers one processing document per file and schedules
	// a single deferred completion for the batch. It does not block.
	Submit(files []domain.FileDescriptor) ([]domain.Document, error)

	// OnBatchCompleted registers an observer for batch completions.
	OnBatchCompleted(observer BatchObserver)

	// Pending returns the number of batches still processing.
	Pending() int

	// Close cancels every pending completion.
	Close() error
}
