// Package tui provides the interactive terminal interface for docanalyzer.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/views/upload"
	"github.com/custodia-labs/docanalyzer/internal/app"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
)

// Subscriber delivers every new state snapshot.
type Subscriber interface {
	Subscribe(fn func(state.State)) (unsubscribe func())
}

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Upload submits files for simulated processing.
	Upload driving.UploadSimulator

	// Registry holds the uploaded documents.
	Registry driving.DocumentRegistry

	// Chat sends questions and exposes the conversation.
	Chat driving.ChatOrchestrator

	// Search exposes the synthesised results.
	Search driving.SearchResults

	// Router selects the visible panel.
	Router driving.ViewRouter

	// Agents manages the agent list.
	Agents driving.AgentManager

	// Integrations drives the connection forms.
	Integrations driving.IntegrationManager

	// Dashboard computes the analytics figures.
	Dashboard driving.Dashboard

	// Changes notifies the TUI when state moves. Optional.
	Changes Subscriber

	// Describe reads files typed into the upload panel. Optional.
	Describe upload.Describer
}

// NewPorts wires the ports of an assembled application.
func NewPorts(a *app.App, describe upload.Describer) *Ports {
	return &Ports{
		Upload:       a.Upload,
		Registry:     a.Registry,
		Chat:         a.Chat,
		Search:       a.Search,
		Router:       a.Router,
		Agents:       a.Agents,
		Integrations: a.Integrations,
		Dashboard:    a.Dashboard,
		Changes:      a.Store,
		Describe:     describe,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	switch {
	case p == nil:
		return ErrInvalidPorts
	case p.Upload == nil:
		return ErrMissingUploadSimulator
	case p.Registry == nil:
		return ErrMissingDocumentRegistry
	case p.Chat == nil:
		return ErrMissingChatOrchestrator
	case p.Search == nil:
		return ErrMissingSearchResults
	case p.Router == nil:
		return ErrMissingViewRouter
	case p.Agents == nil:
		return ErrMissingAgentManager
	case p.Integrations == nil:
		return ErrMissingIntegrationManager
	case p.Dashboard == nil:
		return ErrMissingDashboard
	}
	return nil
}
