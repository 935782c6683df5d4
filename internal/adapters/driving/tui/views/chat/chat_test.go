package chat

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/timer"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/tuitest"
	"github.com/custodia-labs/docanalyzer/internal/app"
)

func newView(t *testing.T, uploads ...string) (*View, *app.App, *timer.Manual, tuitest.Updater) {
	t.Helper()
	a, clock := tuitest.New(t)
	if len(uploads) > 0 {
		tuitest.Upload(t, a, clock, uploads...)
	}
	v := NewView(nil, a.Chat, a.Registry)
	v.SetDimensions(120, 60)
	return v, a, clock, func(msg tea.Msg) tea.Cmd {
		_, cmd := v.Update(msg)
		return cmd
	}
}

func TestNewView(t *testing.T) {
	v, _, _, _ := newView(t)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Nil(t, v.Init())
	assert.False(t, v.Capturing())
}

func TestView_DisabledWithoutDocuments(t *testing.T) {
	v, a, _, send := newView(t)

	assert.False(t, v.Enabled())
	assert.Contains(t, v.View(), "Upload documents first")

	tuitest.Press(send, "n")
	assert.False(t, v.Capturing())
	tuitest.Press(send, "enter")
	assert.Empty(t, a.Chat.History())
}

func TestView_SendTypedQuestion(t *testing.T) {
	v, a, clock, send := newView(t, "contract.pdf")

	tuitest.Press(send, "n")
	require.True(t, v.Capturing())
	tuitest.Type(send, "What is the contract term?")
	tuitest.Press(send, "enter")

	history := a.Chat.History()
	require.Len(t, history, 1)
	assert.Equal(t, "What is the contract term?", history[0].Content)
	assert.Contains(t, v.View(), "AI is analyzing your documents...")
	assert.True(t, v.Capturing(), "prompt stays focused for follow-ups")

	clock.Advance(a.Settings.ReplyDelay)

	view := v.View()
	assert.NotContains(t, view, "AI is analyzing")
	assert.Contains(t, view, "Confidence: 92%")
	assert.Contains(t, view, "Sources: contract.pdf")
	assert.Contains(t, view, "Verified")
}

func TestView_BlankPromptIgnored(t *testing.T) {
	_, a, _, send := newView(t, "a.pdf")

	tuitest.Press(send, "n")
	tuitest.Type(send, "   ")
	tuitest.Press(send, "enter")

	assert.Empty(t, a.Chat.History())
}

func TestView_Suggestions(t *testing.T) {
	v, a, _, send := newView(t, "a.pdf")

	view := v.View()
	assert.Contains(t, view, "Start your conversation")
	for _, s := range Suggestions {
		assert.Contains(t, view, s)
	}

	tuitest.Press(send, "j", "j")
	tuitest.Press(send, "enter")

	history := a.Chat.History()
	require.Len(t, history, 1)
	assert.Equal(t, Suggestions[2], history[0].Content)
	assert.False(t, v.Capturing())
	assert.NotContains(t, v.View(), "Start your conversation")

	tuitest.Press(send, "enter")
	assert.True(t, v.Capturing(), "enter focuses the prompt once history exists")
}

func TestView_EscBlurs(t *testing.T) {
	v, _, _, send := newView(t, "a.pdf")

	tuitest.Press(send, "n")
	require.True(t, v.Capturing())
	tuitest.Press(send, "esc")

	assert.False(t, v.Capturing())
}

func TestView_IgnoresNonKeyMessages(t *testing.T) {
	v, _, _, _ := newView(t, "a.pdf")

	_, cmd := v.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Nil(t, cmd)
}

func TestView_SourceNamesFallBackToID(t *testing.T) {
	v, _, _, _ := newView(t, "a.pdf")

	docs := v.registry.List()
	names := v.sourceNames([]string{docs[0].ID, "missing"})
	assert.Equal(t, []string{"a.pdf", "missing"}, names)
}
