package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/views/agents"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/views/chat"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/views/dashboard"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/views/documents"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/views/integrations"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/views/sidebar"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/views/upload"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	sidebar      *sidebar.View
	upload       *upload.View
	chat         *chat.View
	documents    *documents.View
	search       *search.View
	agents       *agents.View
	dashboard    *dashboard.View
	integrations *integrations.View
	status       *status.Bar

	// version is the last state version the views were refreshed at.
	version uint64

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keys:         km,
		sidebar:      sidebar.NewView(s, ports.Router),
		upload:       upload.NewView(s, ports.Upload, ports.Registry, ports.Describe),
		chat:         chat.NewView(s, ports.Chat, ports.Registry),
		documents:    documents.NewView(s, ports.Registry),
		search:       search.NewView(s, ports.Search, ports.Registry),
		agents:       agents.NewView(s, ports.Agents),
		dashboard:    dashboard.NewView(s, ports.Dashboard),
		integrations: integrations.NewView(s, ports.Integrations),
		status:       status.NewBar(s, km),
	}
	a.refresh()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("docanalyzer - AI Document Analyzer"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.StateChanged:
		if msg.Version <= a.version {
			return a, nil
		}
		a.version = msg.Version
		a.refresh()
		return a, nil

	case messages.ErrorOccurred:
		a.status.SetError(msg.Err)
		return a, nil

	case messages.Notice:
		a.status.SetNotice(msg.Text)
		return a, nil

	case messages.Quit:
		return a, tea.Quit

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.forward(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if keymap.Matches(key, a.keys.Quit) && (key == "ctrl+c" || !a.capturing()) {
		return a, tea.Quit
	}

	a.status.Clear()

	var cmd tea.Cmd
	if !a.capturing() && a.sidebar.Handles(key) {
		a.sidebar, cmd = a.sidebar.Update(msg)
	} else {
		cmd = a.forward(msg)
	}

	// Actions are synchronous, so pull the result now rather than wait
	// for the subscription to catch up.
	a.refresh()
	return a, cmd
}

// forward routes msg to the active panel.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.ports.Router.Current() {
	case domain.ViewUpload:
		a.upload, cmd = a.upload.Update(msg)
	case domain.ViewChat:
		a.chat, cmd = a.chat.Update(msg)
	case domain.ViewDocuments:
		a.documents, cmd = a.documents.Update(msg)
	case domain.ViewSearch:
		a.search, cmd = a.search.Update(msg)
	case domain.ViewAgents:
		a.agents, cmd = a.agents.Update(msg)
	case domain.ViewDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case domain.ViewIntegrations:
		a.integrations, cmd = a.integrations.Update(msg)
	}
	return cmd
}

// capturing reports whether the active panel owns the keyboard.
func (a *App) capturing() bool {
	switch a.ports.Router.Current() {
	case domain.ViewUpload:
		return a.upload.Capturing()
	case domain.ViewChat:
		return a.chat.Capturing()
	case domain.ViewAgents:
		return a.agents.Capturing()
	case domain.ViewIntegrations:
		return a.integrations.Capturing()
	}
	return false
}

// refresh pulls every panel from the ports.
func (a *App) refresh() {
	a.documents.Refresh()
	a.search.Refresh()
	a.agents.Refresh()
	a.dashboard.Refresh()
	a.integrations.Refresh()

	docs := a.ports.Registry.List()
	processing := 0
	for _, d := range docs {
		if d.Status == domain.StatusProcessing {
			processing++
		}
	}
	a.sidebar.SetDocumentCount(len(docs))
	a.status.SetActivity(len(docs), processing, a.ports.Chat.Pending())
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	panel := lipgloss.NewStyle().
		Width(a.panelWidth()).
		Height(max(a.height-2, 1)).
		Padding(0, 1).
		Render(a.panel())

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), panel)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.status.View())
}

func (a *App) panel() string {
	switch a.ports.Router.Current() {
	case domain.ViewChat:
		return a.chat.View()
	case domain.ViewDocuments:
		return a.documents.View()
	case domain.ViewSearch:
		return a.search.View()
	case domain.ViewAgents:
		return a.agents.View()
	case domain.ViewDashboard:
		return a.dashboard.View()
	case domain.ViewIntegrations:
		return a.integrations.View()
	default:
		return a.upload.View()
	}
}

// panelWidth leaves room for the sidebar and its right border.
func (a *App) panelWidth() int {
	return max(a.width-sidebar.Width-1, 20)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	pw, ph := a.panelWidth()-2, max(height-2, 1)
	a.sidebar.SetDimensions(sidebar.Width, ph)
	a.upload.SetDimensions(pw, ph)
	a.chat.SetDimensions(pw, ph)
	a.documents.SetDimensions(pw, ph)
	a.search.SetDimensions(pw, ph)
	a.agents.SetDimensions(pw, ph)
	a.dashboard.SetDimensions(pw, ph)
	a.integrations.SetDimensions(pw, ph)
	a.status.SetWidth(width)
}

// CurrentView returns the active panel.
func (a *App) CurrentView() domain.View {
	return a.ports.Router.Current()
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Version returns the last state version the panels were refreshed at.
func (a *App) Version() uint64 {
	return a.version
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))

	if a.ports.Changes != nil {
		unsubscribe := a.ports.Changes.Subscribe(func(s state.State) {
			// Send blocks until the event loop reads, and the store
			// notifies while dispatching from inside Update.
			go p.Send(messages.StateChanged{Version: s.Version})
		})
		defer unsubscribe()
	}

	_, err := p.Run()
	if err != nil && a.ctx.Err() != nil {
		return nil
	}
	return err
}
