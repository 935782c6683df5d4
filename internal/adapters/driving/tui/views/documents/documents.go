// Package documents provides the document library view for the TUI.
package documents

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

// DefaultSummary is shown for documents without an extracted summary.
const DefaultSummary = "This comprehensive legal contract establishes terms and conditions for service " +
	"delivery between parties, including detailed scope of work, payment terms, liability provisions, " +
	"and dispute resolution mechanisms."

// KeyPoints are the placeholder extraction highlights shown in the detail pane.
var KeyPoints = []string{
	"Service Scope: Comprehensive consulting and implementation services for enterprise systems",
	"Payment Terms: Monthly retainers with milestone-based bonuses over 12-month engagement",
	"Liability Limit: Capped at 12 months of service fees with exceptions for IP violations",
	"Termination: Either party may terminate with 30 days written notice after initial 6-month period",
	"Confidentiality: 3-year non-disclosure agreement covering proprietary information",
}

// DefaultTags are shown for documents without tags.
var DefaultTags = []string{"research", "legal", "financial", "technical"}

const dateLayout = "Jan 2, 2006 15:04"

// View is the document library view.
type View struct {
	styles   *styles.Styles
	registry driving.DocumentRegistry

	documents []domain.Document
	cursor    list.Cursor
	expanded  bool
	width     int
	height    int
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, registry driving.DocumentRegistry) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		registry: registry,
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Refresh reloads the registry snapshot.
func (v *View) Refresh() {
	v.documents = v.registry.List()
	v.cursor.SetCount(len(v.documents))
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.cursor.Handle(keyMsg.String()) {
		return v, nil
	}

	switch keyMsg.String() {
	case "enter":
		if len(v.documents) > 0 {
			v.expanded = !v.expanded
		}
	case "esc":
		v.expanded = false
	}
	return v, nil
}

// View renders the document library.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Document Library"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d document(s) analyzed with AI-powered insights", len(v.documents))))
	b.WriteString("\n\n")

	if len(v.documents) == 0 {
		b.WriteString(v.styles.Subtitle.Render("No Documents Yet"))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Upload your first document to get started"))
		return b.String()
	}

	// Each row takes two lines
	start, end := v.cursor.Window(max((v.height-8)/2, 1))
	if v.expanded {
		start, end = v.cursor.Index(), v.cursor.Index()+1
	}
	for i := start; i < end; i++ {
		b.WriteString(v.renderRow(i, v.documents[i]))
		b.WriteString("\n")
	}

	if v.expanded {
		b.WriteString("\n")
		b.WriteString(v.renderDetails(v.documents[v.cursor.Index()]))
	}

	return b.String()
}

func (v *View) renderRow(index int, doc domain.Document) string {
	name := "  " + doc.Name
	if index == v.cursor.Index() {
		name = v.styles.Selected.Render("> " + doc.Name)
	} else {
		name = v.styles.Normal.Render(name)
	}

	meta := fmt.Sprintf("    %s · %s · %d pages · %s",
		humanize.Bytes(uint64(doc.Size)),
		doc.UploadDate.Format(dateLayout),
		doc.Pages,
		language(doc),
	)
	return name + "  " + v.styles.DocumentStatus(doc.Status) + "\n" + v.styles.Muted.Render(meta)
}

func (v *View) renderDetails(doc domain.Document) string {
	width := max(v.width-6, 40)
	wrap := lipgloss.NewStyle().Width(width - 4)

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("AI-Generated Summary"))
	b.WriteString("\n")
	summary := doc.Summary
	if summary == "" {
		summary = DefaultSummary
	}
	b.WriteString(wrap.Render(summary))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Key Points Extracted"))
	b.WriteString("\n")
	for _, p := range KeyPoints {
		b.WriteString(wrap.Render("→ " + p))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Document Metadata"))
	b.WriteString("\n")
	rows := [][2]string{
		{"Title", doc.Name},
		{"Type", doc.Type},
		{"Size", humanize.Bytes(uint64(doc.Size))},
		{"Uploaded", doc.UploadDate.Format(dateLayout)},
		{"Pages", humanize.Comma(int64(doc.Pages))},
		{"Words", humanize.Comma(int64(doc.WordCount))},
		{"Language", language(doc)},
		{"Security", security(doc)},
	}
	for _, r := range rows {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-10s", r[0])))
		b.WriteString(v.styles.Normal.Render(r[1]))
		b.WriteString("\n")
	}

	tags := doc.Tags
	if len(tags) == 0 {
		tags = DefaultTags
	}
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-10s", "Tags")))
	b.WriteString(v.styles.Warning.Render(strings.Join(tags, "  ")))

	return v.styles.Card.Width(width).Render(b.String())
}

func language(doc domain.Document) string {
	if doc.Language == "" {
		return "EN"
	}
	return strings.ToUpper(doc.Language)
}

func security(doc domain.Document) string {
	if doc.SecurityLevel == "" {
		return string(domain.SecurityPublic)
	}
	return string(doc.SecurityLevel)
}

// Expanded reports whether the detail pane is open.
func (v *View) Expanded() bool {
	return v.expanded
}

// Selected returns the selected document, or false when the library is empty.
func (v *View) Selected() (domain.Document, bool) {
	i := v.cursor.Index()
	if i < 0 {
		return domain.Document{}, false
	}
	return v.documents[i], true
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
