// Package search provides the search results view for the TUI.
package search

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
)

// Preview is the placeholder content shown for an expanded result.
const Preview = "This document contains comprehensive information about service delivery terms, " +
	"including detailed provisions for payment processing, liability limitations, and confidentiality agreements."

// View shows the result set synthesised after the latest chat reply.
type View struct {
	styles   *styles.Styles
	search   driving.SearchResults
	registry driving.DocumentRegistry

	list     *list.ResultList
	expanded bool
	width    int
	height   int
}

// NewView creates a new search view.
func NewView(s *styles.Styles, search driving.SearchResults, registry driving.DocumentRegistry) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		search:   search,
		registry: registry,
		list:     list.NewResultList(s),
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Refresh reloads the result set.
func (v *View) Refresh() {
	v.list.SetResults(v.search.Results())
	if v.list.IsEmpty() {
		v.expanded = false
	}
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "enter":
		if !v.list.IsEmpty() {
			v.expanded = !v.expanded
		}
		return v, nil
	case "esc":
		v.expanded = false
		return v, nil
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the search view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Search Results"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d results found", v.list.Count())))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())

	if v.expanded {
		if result := v.list.SelectedResult(); result != nil {
			b.WriteString("\n")
			b.WriteString(v.renderPreview(*result))
		}
	}
	return b.String()
}

func (v *View) renderPreview(result domain.SearchResult) string {
	width := max(v.width-6, 40)

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Document Preview"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width - 4).Render(Preview))
	b.WriteString("\n\n")

	rows := [][2]string{{"Document", result.DocumentName}}
	if doc, err := v.registry.Get(result.DocumentID); err == nil {
		rows = append(rows,
			[2]string{"File Size", humanize.Bytes(uint64(doc.Size))},
			[2]string{"Upload Date", doc.UploadDate.Format("Jan 2, 2006")},
			[2]string{"Total Pages", fmt.Sprintf("%d pages", doc.Pages)},
		)
	} else {
		rows = append(rows, [2]string{"Status", "not in the library"})
	}
	for _, r := range rows {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-12s", r[0])))
		b.WriteString(v.styles.Normal.Render(r[1]))
		b.WriteString("\n")
	}

	return v.styles.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// Expanded reports whether the preview is open.
func (v *View) Expanded() bool {
	return v.expanded
}

// Results returns the displayed results.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, max(height-8, 4))
}
