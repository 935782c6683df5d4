// Package app wires the state store, adapters and core services into one
// running analyzer and owns their lifetime.
package app

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/ids"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/responder"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/timer"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/services"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// InMemoryConfig selects a throwaway config store instead of a TOML file.
const InMemoryConfig = ":memory:"

// Options configures New. Zero values select the production adapters.
type Options struct {
	// ConfigDir is where config.toml lives. Empty means ~/.docanalyzer.
	ConfigDir string

	// Scheduler drives every deferred completion. Defaults to wall time.
	Scheduler driven.Scheduler

	// IDs hands out document, message and agent identifiers.
	IDs driven.IDGenerator

	// Random feeds synthetic page counts and success rates.
	Random driven.Random

	// Generator overrides the responder selected by settings.
	Generator driven.ResponseGenerator
}

// App is the assembled analyzer.
type App struct {
	Settings domain.Settings

	Store     driven.StateStore
	Scheduler driven.Scheduler

	Registry     *services.DocumentRegistry
	Upload       *services.UploadSimulator
	Navigator    *services.CompletionNavigator
	Chat         *services.ChatOrchestrator
	Search       *services.SearchService
	Router       *services.ViewRouter
	Agents       *services.AgentManager
	Integrations *services.IntegrationManager
	Dashboard    *services.DashboardService
	Config       *services.SettingsService
}

// New builds an App. Invalid stored settings fall back to the defaults
// with a warning so a bad config file never blocks startup.
func New(opts Options) (*App, error) {
	configStore, err := openConfig(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	config := services.NewSettingsService(configStore)

	settings, err := config.Get()
	if err != nil {
		logger.Warn("using default settings: %v", err)
	}

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = timer.Wall{}
	}
	idGen := opts.IDs
	if idGen == nil {
		idGen = ids.UUID{}
	}
	rnd := opts.Random
	if rnd == nil {
		rnd = ids.NewRand()
	}
	generator := opts.Generator
	if generator == nil {
		generator, err = responder.New(settings)
		if err != nil {
			return nil, fmt.Errorf("select responder: %w", err)
		}
	}

	logger.Section("Starting analyzer")
	logger.Debug("settings: %+v", settings)

	store := memory.NewStateStore(state.New(domain.DefaultAgents(), domain.DefaultIntegrations()))
	registry := services.NewDocumentRegistry(store)
	router := services.NewViewRouter(store)

	a := &App{
		Settings:     settings,
		Store:        store,
		Scheduler:    scheduler,
		Registry:     registry,
		Upload:       services.NewUploadSimulator(registry, scheduler, idGen, rnd, settings.UploadDelay),
		Navigator:    services.NewCompletionNavigator(router, store, scheduler, settings.NavigateDelay),
		Chat:         services.NewChatOrchestrator(store, registry, generator, scheduler, idGen, settings.ReplyDelay),
		Search:       services.NewSearchService(store),
		Router:       router,
		Agents:       services.NewAgentManager(store, idGen, rnd),
		Integrations: services.NewIntegrationManager(store, scheduler),
		Dashboard:    services.NewDashboardService(store),
		Config:       config,
	}

	if settings.AutoNavigate {
		a.Upload.OnBatchCompleted(a.Navigator.Observe)
	}

	return a, nil
}

func openConfig(dir string) (driven.ConfigStore, error) {
	if dir == InMemoryConfig {
		return memory.NewConfigStore(nil), nil
	}
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	return store, nil
}

// Close cancels every pending upload, reply and navigation.
// No state changes happen afterwards.
func (a *App) Close() error {
	return errors.Join(
		a.Upload.Close(),
		a.Navigator.Close(),
		a.Chat.Close(),
	)
}
