// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import tea "github.com/charmbracelet/bubbletea"

// StateChanged is sent when the state store published a new snapshot.
// Version lets the model drop notifications that arrive out of order.
type StateChanged struct {
	Version uint64
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Notice carries a transient informational line for the status bar.
type Notice struct {
	Text string
}

// InputFocused reports whether a view is capturing typed text, so that
// single-letter global keys are passed through instead of handled.
type InputFocused struct {
	Focused bool
}

// Quit signals the application should exit.
type Quit struct{}

// ErrorCmd returns a command reporting err, or nil when err is nil.
func ErrorCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg {
		return ErrorOccurred{Err: err}
	}
}

// NoticeCmd returns a command showing text in the status bar.
func NoticeCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return Notice{Text: text}
	}
}
