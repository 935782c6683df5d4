package search

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/tuitest"
	"github.com/custodia-labs/docanalyzer/internal/core/services"
)

func TestNewView(t *testing.T) {
	a, _ := tuitest.New(t)
	v := NewView(nil, a.Search, a.Registry)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Nil(t, v.Init())
}

func TestView_Empty(t *testing.T) {
	a, _ := tuitest.New(t)
	v := NewView(nil, a.Search, a.Registry)
	v.Refresh()

	view := v.View()
	assert.Contains(t, view, "0 results found")
	assert.Contains(t, view, "No search results yet")

	v.Update(tuitest.Key("enter"))
	assert.False(t, v.Expanded())
}

func TestView_ShowsResultAfterReply(t *testing.T) {
	a, clock := tuitest.New(t)
	docs := tuitest.Upload(t, a, clock, "contract.pdf")
	_, err := a.Chat.Send("What is the contract term?")
	require.NoError(t, err)
	clock.Advance(a.Settings.ReplyDelay)

	v := NewView(nil, a.Search, a.Registry)
	v.SetDimensions(140, 40)
	v.Refresh()

	require.Len(t, v.Results(), 1)
	assert.Equal(t, docs[0].ID, v.Results()[0].DocumentID)

	view := v.View()
	assert.Contains(t, view, "1 results found")
	assert.Contains(t, view, "contract.pdf")
	assert.Contains(t, view, "92% · p.15 · hybrid")

	v.Update(tuitest.Key("enter"))
	require.True(t, v.Expanded())
	view = v.View()
	assert.Contains(t, view, "Document Preview")
	assert.Contains(t, view, "2.0 kB")
	assert.Contains(t, view, "Nov 12, 2025")

	v.Update(tuitest.Key("esc"))
	assert.False(t, v.Expanded())
}

func TestView_PlaceholderResult(t *testing.T) {
	a, _ := tuitest.New(t)
	v := NewView(nil, a.Search, a.Registry)
	v.SetDimensions(140, 40)

	preview := v.renderPreview(services.Synthesize(nil)[0])

	assert.Contains(t, preview, services.PlaceholderDocumentName)
	assert.Contains(t, preview, "not in the library")
}

func TestView_IgnoresNonKeyMessages(t *testing.T) {
	a, _ := tuitest.New(t)
	v := NewView(nil, a.Search, a.Registry)

	_, cmd := v.Update(tea.WindowSizeMsg{Width: 1, Height: 1})
	assert.Nil(t, cmd)
}
