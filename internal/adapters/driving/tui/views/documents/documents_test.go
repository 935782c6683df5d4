package documents

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/tuitest"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

func TestNewView(t *testing.T) {
	a, _ := tuitest.New(t)
	v := NewView(nil, a.Registry)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Nil(t, v.Init())
	_, ok := v.Selected()
	assert.False(t, ok)
}

func TestView_Empty(t *testing.T) {
	a, _ := tuitest.New(t)
	v := NewView(nil, a.Registry)
	v.Refresh()

	view := v.View()
	assert.Contains(t, view, "No Documents Yet")

	v.Update(tuitest.Key("enter"))
	assert.False(t, v.Expanded(), "nothing to expand")
}

func TestView_ListsDocuments(t *testing.T) {
	a, clock := tuitest.New(t)
	tuitest.Upload(t, a, clock, "contract.pdf", "memo.txt")
	v := NewView(nil, a.Registry)
	v.SetDimensions(120, 40)
	v.Refresh()

	view := v.View()
	assert.Contains(t, view, "2 document(s)")
	assert.Contains(t, view, "> contract.pdf")
	assert.Contains(t, view, "memo.txt")
	assert.Contains(t, view, "completed")
	assert.Contains(t, view, "2.0 kB")
	assert.Contains(t, view, "Nov 12, 2025 10:00")
}

func TestView_Navigation(t *testing.T) {
	a, clock := tuitest.New(t)
	docs := tuitest.Upload(t, a, clock, "a.pdf", "b.pdf", "c.pdf")
	v := NewView(nil, a.Registry)
	v.Refresh()
	send := func(msg tea.Msg) tea.Cmd {
		_, cmd := v.Update(msg)
		return cmd
	}

	tuitest.Press(send, "j", "down")
	selected, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, docs[2].ID, selected.ID)

	tuitest.Press(send, "k")
	selected, _ = v.Selected()
	assert.Equal(t, docs[1].ID, selected.ID)
}

func TestView_Details(t *testing.T) {
	a, clock := tuitest.New(t)
	tuitest.Upload(t, a, clock, "a.pdf", "b.pdf")
	v := NewView(nil, a.Registry)
	v.SetDimensions(140, 60)
	v.Refresh()

	v.Update(tuitest.Key("j"))
	v.Update(tuitest.Key("enter"))
	require.True(t, v.Expanded())

	view := v.View()
	assert.Contains(t, view, "AI-Generated Summary")
	assert.Contains(t, view, "Key Points Extracted")
	assert.Contains(t, view, "Document Metadata")
	assert.Contains(t, view, "b.pdf")
	assert.NotContains(t, view, "a.pdf", "only the selected document is shown")
	assert.Contains(t, view, "EN")
	assert.Contains(t, view, "public")

	v.Update(tuitest.Key("esc"))
	assert.False(t, v.Expanded())
}

func TestView_RefreshClampsSelection(t *testing.T) {
	a, clock := tuitest.New(t)
	tuitest.Upload(t, a, clock, "a.pdf")
	v := NewView(nil, a.Registry)
	v.Refresh()

	_, ok := v.Selected()
	assert.True(t, ok)

	_, cmd := v.Update(tea.WindowSizeMsg{})
	assert.Nil(t, cmd)
}

func TestLanguageAndSecurity(t *testing.T) {
	assert.Equal(t, "EN", language(domain.Document{}))
	assert.Equal(t, "DE", language(domain.Document{Language: "de"}))
	assert.Equal(t, "public", security(domain.Document{}))
	assert.Equal(t, "restricted", security(domain.Document{SecurityLevel: domain.SecurityRestricted}))
}
