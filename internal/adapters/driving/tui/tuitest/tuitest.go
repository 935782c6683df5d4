// Package tuitest provides fixtures for testing TUI views against real
// services running on a virtual clock.
package tuitest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/ids"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/timer"
	"github.com/custodia-labs/docanalyzer/internal/app"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

// Epoch is the virtual start time of every fixture.
var Epoch = time.Date(2025, 11, 12, 10, 0, 0, 0, time.UTC)

// New builds an analyzer on a manual clock with sequential ids.
func New(t *testing.T) (*app.App, *timer.Manual) {
	t.Helper()

	clock := timer.NewManual(Epoch)
	a, err := app.New(app.Options{
		ConfigDir: app.InMemoryConfig,
		Scheduler: clock,
		IDs:       ids.NewSequence("id"),
		Random:    ids.NewSeededRand(1),
	})
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a, clock
}

// Upload submits files by name and completes them.
func Upload(t *testing.T, a *app.App, clock *timer.Manual, names ...string) []domain.Document {
	t.Helper()

	files := make([]domain.FileDescriptor, 0, len(names))
	for _, n := range names {
		files = append(files, domain.FileDescriptor{Name: n, Type: "application/pdf", Size: 2048})
	}
	docs, err := a.Upload.Submit(files)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	clock.Advance(a.Settings.UploadDelay)
	return docs
}

// Key converts a key name as reported by tea.KeyMsg.String into a message.
func Key(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Updater forwards one message to a model and returns its command.
type Updater func(msg tea.Msg) tea.Cmd

// Type feeds text to u one rune at a time and returns the last command.
func Type(u Updater, text string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range text {
		cmd = u(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

// Press feeds key names to u in order and returns every non-nil command.
func Press(u Updater, keys ...string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, k := range keys {
		if cmd := u(Key(k)); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Messages runs cmds and collects the resulting messages, expanding batches.
func Messages(cmds ...tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			out = append(out, Messages(batch...)...)
			continue
		}
		out = append(out, msg)
	}
	return out
}
