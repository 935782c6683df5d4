// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

// ResultList displays search results in a navigable list.
type ResultList struct {
	results []domain.SearchResult
	cursor  Cursor
	styles  *styles.Styles
	width   int
	height  int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		r.cursor.Handle(msg.String())
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No search results yet. Ask a question in the chat to generate results.")
	}

	lines := make([]string, 0, len(r.results)*3+2)
	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results)))
	lines = append(lines, header, "")

	// Each result takes three lines
	start, end := r.cursor.Window((r.height - 2) / 3)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats a single result with its excerpt.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == r.cursor.Index() {
		indicator = "> "
	}

	name := truncate(result.DocumentName, max(r.width-30, 10))
	meta := fmt.Sprintf("%.0f%% · p.%d · %s", result.RelevanceScore*100, result.PageNumber, result.SearchType)

	var titleLine string
	if index == r.cursor.Index() {
		titleLine = r.styles.Selected.Render(indicator+name) + "  " + r.styles.Muted.Render(meta)
	} else {
		titleLine = r.styles.Normal.Render(indicator+name) + "  " + r.styles.Muted.Render(meta)
	}

	excerpt := truncate(result.Excerpt, max(r.width-6, 20))
	return titleLine + "\n" + r.styles.Muted.Render("    "+excerpt) + "\n"
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// SetResults updates the result list, keeping the selection in range.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.cursor.SetCount(len(results))
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.cursor.Index()
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	r.cursor.Set(index)
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	i := r.cursor.Index()
	if i < 0 {
		return nil
	}
	return &r.results[i]
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
