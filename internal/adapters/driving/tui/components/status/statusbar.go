// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady  State = "ready"
	StateBusy   State = "busy"
	StateNotice State = "notice"
	StateError  State = "error"
)

// Bar displays background activity, the last error or notice, and
// keybinding hints.
type Bar struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	state      State
	message    string
	processing int
	awaiting   int
	documents  int
	hints      []key.Binding
	width      int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - s.styles.StatusBar.GetHorizontalFrameSize() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.currentState() {
	case StateError:
		return s.styles.Error.Render("Error: " + s.message)
	case StateNotice:
		return s.styles.Success.Render(s.message)
	case StateBusy:
		var parts []string
		if s.processing > 0 {
			parts = append(parts, fmt.Sprintf("Processing %d document(s)", s.processing))
		}
		if s.awaiting > 0 {
			parts = append(parts, "AI is analyzing your documents...")
		}
		return s.styles.Warning.Render(strings.Join(parts, " · "))
	}
	if s.documents > 0 {
		return s.styles.Normal.Render(fmt.Sprintf("%d document(s)", s.documents))
	}
	return s.styles.Muted.Render("Ready")
}

// currentState derives busy from the activity counters when no error or
// notice is showing.
func (s *Bar) currentState() State {
	if s.state == StateError || s.state == StateNotice {
		return s.state
	}
	if s.processing > 0 || s.awaiting > 0 {
		return StateBusy
	}
	return StateReady
}

func (s *Bar) renderRight() string {
	bindings := s.hints
	if len(bindings) == 0 {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetError shows err until the next Clear or SetNotice.
func (s *Bar) SetError(err error) {
	if err == nil {
		return
	}
	s.state = StateError
	s.message = err.Error()
}

// SetNotice shows an informational line until the next Clear or SetError.
func (s *Bar) SetNotice(text string) {
	s.state = StateNotice
	s.message = text
}

// SetActivity sets the background activity counters.
func (s *Bar) SetActivity(documents, processing, awaiting int) {
	s.documents = documents
	s.processing = processing
	s.awaiting = awaiting
}

// SetHints replaces the default keybinding hints. nil restores them.
func (s *Bar) SetHints(bindings []key.Binding) {
	s.hints = bindings
}

// State returns the displayed state.
func (s *Bar) State() State {
	return s.currentState()
}

// Message returns the current error or notice text.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear drops any error or notice.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
