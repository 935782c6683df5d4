package domain

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is a single turn in the conversation history.
// History is append-only and ordered by creation.
type ChatMessage struct {
	// ID is the unique identifier of the message.
	ID string

	// Content is free text.
	Content string

	// Sender is the author.
	Sender Sender

	// Timestamp is the creation time.
	Timestamp time.Time

	// ReplyTo is the ID of the user message an AI message answers.
	// Empty for user messages.
	ReplyTo string

	// SourceDocuments lists the cited document IDs in registry order. AI only.
	SourceDocuments []string

	// Confidence is in [0,1]. AI only.
	Confidence float64
}

// IsAI reports whether the message was authored by the assistant.
func (m ChatMessage) IsAI() bool {
	return m.Sender == SenderAI
}

// Response is what a response generator produces for one query.
type Response struct {
	Content         string
	SourceDocuments []string
	Confidence      float64
}
