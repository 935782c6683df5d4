package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// Ensure ChatOrchestrator implements the interface.
var _ driving.ChatOrchestrator = (*ChatOrchestrator)(nil)

// FallbackReply is sent when the response generator fails.
const FallbackReply = "I couldn't analyze your documents this time. Please try asking again."

// request is a question waiting for its reply.
type request struct {
	id      string
	content string
	due     time.Time
}

// ChatOrchestrator appends user messages immediately and delivers one
// assistant reply per message after a delay. Replies are delivered in
// request order; only the oldest waiting request holds a live timer.
type ChatOrchestrator struct {
	store     driven.StateStore
	registry  driving.DocumentRegistry
	generator driven.ResponseGenerator
	scheduler driven.Scheduler
	ids       driven.IDGenerator
	delay     time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	sendMu   sync.Mutex
	inflight sync.WaitGroup

	mu     sync.Mutex
	queue  []request
	timer  driven.Task
	closed bool
}

// NewChatOrchestrator creates a chat orchestrator replying after delay.
func NewChatOrchestrator(
	store driven.StateStore,
	registry driving.DocumentRegistry,
	generator driven.ResponseGenerator,
	scheduler driven.Scheduler,
	ids driven.IDGenerator,
	delay time.Duration,
) *ChatOrchestrator {
	ctx, cancel := context.WithCancel(context.Background())
	return &ChatOrchestrator{
		store:     store,
		registry:  registry,
		generator: generator,
		scheduler: scheduler,
		ids:       ids,
		delay:     delay,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Send appends a user message and queues its reply.
func (c *ChatOrchestrator) Send(content string) (domain.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return domain.ChatMessage{}, domain.ErrEmptyMessage
	}

	// Serialise sends so history order and queue order agree.
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if !c.begin() {
		return domain.ChatMessage{}, domain.ErrClosed
	}
	defer c.inflight.Done()

	now := c.scheduler.Now()
	msg := domain.ChatMessage{
		ID:        c.ids.NewID(),
		Content:   content,
		Sender:    domain.SenderUser,
		Timestamp: now,
	}
	c.store.Dispatch(state.MessageAppended{Message: msg})
	logger.Debug("chat: request %s queued", msg.ID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return msg, domain.ErrClosed
	}
	c.queue = append(c.queue, request{id: msg.ID, content: content, due: now.Add(c.delay)})
	if len(c.queue) == 1 {
		c.scheduleHead()
	}
	return msg, nil
}

// scheduleHead starts the timer of the oldest request (caller must hold mu).
func (c *ChatOrchestrator) scheduleHead() {
	head := c.queue[0]
	wait := max(head.due.Sub(c.scheduler.Now()), 0)
	c.timer = c.scheduler.AfterFunc(wait, func() { c.deliver(head.id) })
}

func (c *ChatOrchestrator) deliver(requestID string) {
	c.mu.Lock()
	if c.closed || len(c.queue) == 0 || c.queue[0].id != requestID {
		c.mu.Unlock()
		return
	}
	req := c.queue[0]
	c.inflight.Add(1)
	c.mu.Unlock()
	defer c.inflight.Done()

	docs := c.registry.List()
	resp, err := c.generator.Generate(c.ctx, req.content, docs)
	if err != nil {
		if errors.Is(err, context.Canceled) && c.ctx.Err() != nil {
			return
		}
		logger.Warn("chat: generating reply to %s: %v", req.id, err)
		resp = domain.Response{Content: FallbackReply, SourceDocuments: []string{}}
	}

	reply := domain.ChatMessage{
		ID:              c.ids.NewID(),
		Content:         resp.Content,
		Sender:          domain.SenderAI,
		Timestamp:       c.scheduler.Now(),
		ReplyTo:         req.id,
		SourceDocuments: slices.Clone(resp.SourceDocuments),
		Confidence:      resp.Confidence,
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.queue = c.queue[1:]
	c.timer = nil
	c.mu.Unlock()

	c.store.Dispatch(state.ReplyDelivered{Message: reply, Results: Synthesize(docs)})
	logger.Debug("chat: reply %s delivered for %s citing %v", reply.ID, req.id, reply.SourceDocuments)

	c.mu.Lock()
	if !c.closed && len(c.queue) > 0 {
		c.scheduleHead()
	}
	c.mu.Unlock()
}

// History returns the conversation in append order.
func (c *ChatOrchestrator) History() []domain.ChatMessage {
	return slices.Clone(c.store.Snapshot().Messages)
}

// Pending returns the number of requests still waiting for a reply.
func (c *ChatOrchestrator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Close cancels the live timer, drops queued requests and waits for a
// send or reply already in progress.
func (c *ChatOrchestrator) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	dropped := len(c.queue)
	c.queue = nil
	c.mu.Unlock()

	c.cancel()
	c.inflight.Wait()
	if dropped > 0 {
		logger.Debug("chat: dropped %d pending request(s)", dropped)
	}
	return nil
}

// begin registers a state write that Close waits for. It reports false
// once the orchestrator is closed.
func (c *ChatOrchestrator) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.inflight.Add(1)
	return true
}
