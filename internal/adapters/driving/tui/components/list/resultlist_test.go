package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

func sampleResults() []domain.SearchResult {
	return []domain.SearchResult{
		{ID: "1", DocumentID: "a", DocumentName: "Contract.pdf", Excerpt: "term of 24 months", RelevanceScore: 0.92, PageNumber: 15, SearchType: domain.SearchHybrid},
		{ID: "2", DocumentID: "b", DocumentName: "Invoice.pdf", Excerpt: "net 30", RelevanceScore: 0.81, PageNumber: 2, SearchType: domain.SearchKeyword},
		{ID: "3", DocumentID: "c", DocumentName: "Memo.txt", Excerpt: "summary", RelevanceScore: 0.5, PageNumber: 1, SearchType: domain.SearchSemantic},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewResultList(t *testing.T) {
	list := NewResultList(styles.DefaultStyles())

	require.NotNil(t, list)
	assert.Equal(t, -1, list.Selected())
	assert.True(t, list.IsEmpty())
	assert.Nil(t, list.SelectedResult())
}

func TestNewResultList_NilStyles(t *testing.T) {
	list := NewResultList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
	assert.Nil(t, list.Init())
}

func TestResultList_SetResults(t *testing.T) {
	list := NewResultList(nil)

	list.SetResults(sampleResults())

	assert.Equal(t, 3, list.Count())
	assert.Equal(t, 0, list.Selected())
	assert.Equal(t, "Contract.pdf", list.SelectedResult().DocumentName)
	assert.Len(t, list.Results(), 3)
}

func TestResultList_SetResults_ClampsSelection(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())
	list.SetSelected(2)

	list.SetResults(sampleResults()[:1])

	assert.Equal(t, 0, list.Selected())
}

func TestResultList_Navigation(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, list.Selected())

	list.Update(keyRune('j'))
	list.Update(keyRune('j'))
	assert.Equal(t, 2, list.Selected(), "stops at the end")

	list.Update(tea.KeyMsg{Type: tea.KeyUp})
	list.Update(keyRune('k'))
	list.Update(keyRune('k'))
	assert.Equal(t, 0, list.Selected(), "stops at the top")
}

func TestResultList_SetSelected_OutOfRange(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	list.SetSelected(10)
	assert.Equal(t, 0, list.Selected())

	list.SetSelected(-1)
	assert.Equal(t, 0, list.Selected())
}

func TestResultList_View(t *testing.T) {
	list := NewResultList(nil)
	assert.Contains(t, list.View(), "No search results yet")

	list.SetDimensions(100, 20)
	list.SetResults(sampleResults())
	view := list.View()

	assert.Contains(t, view, "Results (3)")
	assert.Contains(t, view, "Contract.pdf")
	assert.Contains(t, view, "92% · p.15 · hybrid")
	assert.Contains(t, view, "term of 24 months")
}

func TestResultList_View_ScrollsToSelection(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(100, 5)
	list.SetResults(sampleResults())
	list.SetSelected(2)

	view := list.View()

	assert.Contains(t, view, "Memo.txt")
	assert.NotContains(t, view, "Contract.pdf")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestCursor(t *testing.T) {
	var c Cursor
	assert.Equal(t, -1, c.Index())

	c.SetCount(5)
	assert.Equal(t, 0, c.Index())
	assert.True(t, c.Handle("G"))
	assert.Equal(t, 4, c.Index())
	assert.True(t, c.Handle("g"))
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Handle("x"))

	c.Set(4)
	c.SetCount(2)
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 2, c.Count())

	c.SetCount(0)
	assert.Equal(t, -1, c.Index())
}

func TestCursor_Window(t *testing.T) {
	var c Cursor
	c.SetCount(10)

	start, end := c.Window(3)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	c.Set(7)
	start, end = c.Window(3)
	assert.Equal(t, 5, start)
	assert.Equal(t, 8, end)

	start, end = c.Window(0)
	assert.Equal(t, 7, start)
	assert.Equal(t, 8, end)
}
