package agents

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/tuitest"
	"github.com/custodia-labs/docanalyzer/internal/app"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

func newView(t *testing.T) (*View, *app.App, tuitest.Updater) {
	t.Helper()
	a, _ := tuitest.New(t)
	v := NewView(nil, a.Agents)
	v.SetDimensions(120, 60)
	v.Refresh()
	return v, a, func(msg tea.Msg) tea.Cmd {
		_, cmd := v.Update(msg)
		return cmd
	}
}

func TestNewView(t *testing.T) {
	v, _, _ := newView(t)

	require.NotNil(t, v)
	assert.Nil(t, v.Init())
	assert.False(t, v.Capturing())
	assert.Len(t, v.items, 2)
}

func TestView_View(t *testing.T) {
	v, _, _ := newView(t)

	view := v.View()
	assert.Contains(t, view, "AI Agent Builder")
	assert.Contains(t, view, "Document Summarizer")
	assert.Contains(t, view, "Entity Extractor")
	assert.Contains(t, view, "Success Rate")
	assert.Contains(t, view, "94%")
	assert.Contains(t, view, "Active")
}

func TestView_Toggle(t *testing.T) {
	v, a, send := newView(t)

	tuitest.Press(send, "j", " ")

	agents := a.Agents.List()
	assert.True(t, agents[0].IsActive)
	assert.False(t, agents[1].IsActive)
	assert.Contains(t, v.View(), "Inactive")

	tuitest.Press(send, " ")
	assert.True(t, a.Agents.List()[1].IsActive)
}

func TestView_Delete(t *testing.T) {
	v, a, send := newView(t)

	msgs := tuitest.Messages(tuitest.Press(send, "d")...)

	require.Len(t, msgs, 1)
	assert.Equal(t, messages.Notice{Text: "Deleted agent Document Summarizer"}, msgs[0])
	require.Len(t, a.Agents.List(), 1)
	selected, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Entity Extractor", selected.Name)

	tuitest.Press(send, "d")
	assert.Empty(t, a.Agents.List())
	assert.Empty(t, tuitest.Press(send, "d", " "), "nothing left to act on")
	assert.Contains(t, v.View(), "No agents yet")
}

func TestView_Create(t *testing.T) {
	v, a, send := newView(t)

	tuitest.Press(send, "n")
	require.True(t, v.Capturing())
	tuitest.Type(send, "Invoice Parser")
	tuitest.Press(send, "tab")
	tuitest.Type(send, "Extract invoice data")
	// Typed letters must not trigger list actions while the form is open
	tuitest.Type(send, " d")

	msgs := tuitest.Messages(tuitest.Press(send, "enter")...)
	require.Len(t, msgs, 1)
	assert.Equal(t, messages.Notice{Text: "Created agent Invoice Parser"}, msgs[0])
	assert.False(t, v.Capturing())

	agents := a.Agents.List()
	require.Len(t, agents, 3)
	assert.Equal(t, "Invoice Parser", agents[2].Name)
	assert.Equal(t, "Extract invoice data d", agents[2].Description)
	assert.True(t, agents[2].IsActive)

	selected, _ := v.Selected()
	assert.Equal(t, agents[2].ID, selected.ID)
}

func TestView_CreateDefaultDescription(t *testing.T) {
	_, a, send := newView(t)

	tuitest.Press(send, "n")
	tuitest.Type(send, "Risk Reviewer")
	tuitest.Press(send, "enter")

	agents := a.Agents.List()
	require.Len(t, agents, 3)
	assert.Equal(t, domain.DefaultAgentDescription, agents[2].Description)
}

func TestView_CreateRequiresName(t *testing.T) {
	v, a, send := newView(t)

	tuitest.Press(send, "n")
	tuitest.Type(send, "   ")
	msgs := tuitest.Messages(tuitest.Press(send, "enter")...)

	require.Len(t, msgs, 1)
	errMsg, ok := msgs[0].(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, domain.ErrAgentNameRequired)
	assert.True(t, v.Capturing(), "form stays open")
	assert.Len(t, a.Agents.List(), 2)
}

func TestView_CancelForm(t *testing.T) {
	v, a, send := newView(t)

	tuitest.Press(send, "n")
	tuitest.Type(send, "Draft")
	assert.Contains(t, v.View(), "Create New AI Agent")
	tuitest.Press(send, "esc")

	assert.False(t, v.Capturing())
	assert.NotContains(t, v.View(), "Create New AI Agent")
	assert.Len(t, a.Agents.List(), 2)

	tuitest.Press(send, "n")
	assert.Equal(t, "", v.name.Value(), "form is reset")
}
