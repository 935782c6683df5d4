// Package sidebar provides the navigation column listing every panel.
package sidebar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
)

// Width is the rendered width of the sidebar column.
const Width = 30

// View renders the panel list and switches panels through the router.
type View struct {
	styles    *styles.Styles
	router    driving.ViewRouter
	items     []domain.View
	documents int
	height    int
}

// NewView creates a new sidebar view.
func NewView(s *styles.Styles, router driving.ViewRouter) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		router: router,
		items:  domain.Views(),
		height: 24,
	}
}

// Init initialises the sidebar.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles panel navigation keys: tab, shift+tab and 1-7.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	current := slices.Index(v.items, v.router.Current())

	switch keyMsg.String() {
	case "tab":
		return v, v.selectIndex((current + 1) % len(v.items))
	case "shift+tab":
		return v, v.selectIndex((current - 1 + len(v.items)) % len(v.items))
	}

	if n, err := strconv.Atoi(keyMsg.String()); err == nil && n >= 1 && n <= len(v.items) {
		return v, v.selectIndex(n - 1)
	}
	return v, nil
}

func (v *View) selectIndex(i int) tea.Cmd {
	return messages.ErrorCmd(v.router.Select(v.items[i]))
}

// Handles reports whether key is a sidebar navigation key.
func (v *View) Handles(key string) bool {
	if key == "tab" || key == "shift+tab" {
		return true
	}
	n, err := strconv.Atoi(key)
	return err == nil && n >= 1 && n <= len(v.items)
}

// SetDocumentCount updates the badge next to the library entry.
func (v *View) SetDocumentCount(n int) {
	v.documents = n
}

// View renders the sidebar.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("AI Document Analyzer"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("RAG-powered insights"))
	b.WriteString("\n\n")

	current := v.router.Current()
	for i, item := range v.items {
		label := fmt.Sprintf("%d %s", i+1, item.Label())
		if item == domain.ViewDocuments && v.documents > 0 {
			label += fmt.Sprintf(" (%d)", v.documents)
		}

		if item == current {
			b.WriteString(v.styles.Selected.Render("> " + label))
		} else if item == domain.ViewChat && v.documents == 0 {
			b.WriteString(v.styles.Muted.Render("  " + label))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + label))
		}
		b.WriteString("\n")
	}

	return v.styles.Sidebar.Width(Width).Height(v.height).Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(_, height int) {
	v.height = max(height, 1)
}
