package tui

import "errors"

// ErrMissingUploadSimulator is returned when the upload simulator is not provided.
var ErrMissingUploadSimulator = errors.New("tui: upload simulator is required")

// ErrMissingDocumentRegistry is returned when the document registry is not provided.
var ErrMissingDocumentRegistry = errors.New("tui: document registry is required")

// ErrMissingChatOrchestrator is returned when the chat orchestrator is not provided.
var ErrMissingChatOrchestrator = errors.New("tui: chat orchestrator is required")

// ErrMissingSearchResults is returned when the search results port is not provided.
var ErrMissingSearchResults = errors.New("tui: search results are required")

// ErrMissingViewRouter is returned when the view router is not provided.
var ErrMissingViewRouter = errors.New("tui: view router is required")

// ErrMissingAgentManager is returned when the agent manager is not provided.
var ErrMissingAgentManager = errors.New("tui: agent manager is required")

// ErrMissingIntegrationManager is returned when the integration manager is not provided.
var ErrMissingIntegrationManager = errors.New("tui: integration manager is required")

// ErrMissingDashboard is returned when the dashboard is not provided.
var ErrMissingDashboard = errors.New("tui: dashboard is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
