package driving

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// ChatOrchestrator accepts questions and appends deferred assistant replies.
type ChatOrchestrator interface {
	// Send appends the user message and schedules its reply.
	// Returns domain.ErrEmptyMessage for blank content.
	Send(content string) (domain.ChatMessage, error)

	// History returns the conversation in append order.
	History() []domain.ChatMessage

	// Pending returns the number of questions still awaiting a reply.
	Pending() int

	// Close cancels the scheduled reply and drops queued questions.
	Close() error
}
