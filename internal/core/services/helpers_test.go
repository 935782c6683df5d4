package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/ids"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/responder"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/timer"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
)

var epoch = time.Date(2025, 11, 12, 10, 0, 0, 0, time.UTC)

// --- Mock implementations ---

// fixedRandom returns value for every draw, clamped to [0, n).
type fixedRandom struct {
	value int
}

func (r fixedRandom) IntN(n int) int {
	return min(r.value, n-1)
}

// mockGenerator implements driven.ResponseGenerator for testing.
type mockGenerator struct {
	GenerateFunc func(ctx context.Context, query string, docs []domain.Document) (domain.Response, error)
	queries      []string
}

func (m *mockGenerator) Generate(ctx context.Context, query string, docs []domain.Document) (domain.Response, error) {
	m.queries = append(m.queries, query)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, query, docs)
	}
	return domain.Response{Content: "reply to " + query, SourceDocuments: []string{}, Confidence: 0.5}, nil
}

// gateStore holds the first matching dispatch until release is closed.
type gateStore struct {
	*memory.StateStore
	match   func(state.Action) bool
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGateStore(match func(state.Action) bool) *gateStore {
	return &gateStore{
		StateStore: memory.NewStateStore(state.New(domain.DefaultAgents(), domain.DefaultIntegrations())),
		match:      match,
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
}

func (g *gateStore) Dispatch(a state.Action) state.State {
	if g.match(a) {
		g.once.Do(func() {
			close(g.entered)
			<-g.release
		})
	}
	return g.StateStore.Dispatch(a)
}

// returned reports whether done is closed.
func returned(done <-chan struct{}) func() bool {
	return func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}
}

// harness wires every service over a memory store and a manual clock.
type harness struct {
	store        *memory.StateStore
	clock        *timer.Manual
	registry     *DocumentRegistry
	upload       *UploadSimulator
	navigator    *CompletionNavigator
	chat         *ChatOrchestrator
	search       *SearchService
	router       *ViewRouter
	agents       *AgentManager
	integrations *IntegrationManager
	dashboard    *DashboardService
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	generator    driven.ResponseGenerator
	integrations []domain.Integration
	rnd          driven.Random
}

func withGenerator(g driven.ResponseGenerator) harnessOption {
	return func(c *harnessConfig) { c.generator = g }
}

func withIntegrations(in ...domain.Integration) harnessOption {
	return func(c *harnessConfig) { c.integrations = in }
}

func withRandom(r driven.Random) harnessOption {
	return func(c *harnessConfig) { c.rnd = r }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()

	settings := domain.DefaultSettings()
	cfg := harnessConfig{
		generator:    responder.NewTemplate(settings.Confidence, settings.MaxSources),
		integrations: domain.DefaultIntegrations(),
		rnd:          fixedRandom{value: 0},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := memory.NewStateStore(state.New(domain.DefaultAgents(), cfg.integrations))
	clock := timer.NewManual(epoch)
	seq := ids.NewSequence("id")

	h := &harness{store: store, clock: clock}
	h.registry = NewDocumentRegistry(store)
	h.router = NewViewRouter(store)
	h.upload = NewUploadSimulator(h.registry, clock, seq, cfg.rnd, settings.UploadDelay)
	h.navigator = NewCompletionNavigator(h.router, store, clock, settings.NavigateDelay)
	h.upload.OnBatchCompleted(h.navigator.Observe)
	h.chat = NewChatOrchestrator(store, h.registry, cfg.generator, clock, seq, settings.ReplyDelay)
	h.search = NewSearchService(store)
	h.agents = NewAgentManager(store, seq, cfg.rnd)
	h.integrations = NewIntegrationManager(store, clock)
	h.dashboard = NewDashboardService(store)

	t.Cleanup(func() {
		_ = h.chat.Close()
		_ = h.upload.Close()
		_ = h.navigator.Close()
	})
	return h
}

func file(name string) domain.FileDescriptor {
	return domain.FileDescriptor{Name: name, Type: "application/pdf", Size: 2048}
}

func processingDoc(id string) domain.Document {
	return domain.Document{ID: id, Name: id + ".pdf", Status: domain.StatusProcessing}
}
