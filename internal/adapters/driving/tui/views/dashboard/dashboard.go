// Package dashboard provides the analytics view for the TUI.
package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
)

// Pipeline is one simulated processing subsystem with its headline
// efficiency and sub-task progress.
type Pipeline struct {
	Name        string
	Description string
	Efficiency  int
	Tasks       []Task
}

// Task is one progress bar in a pipeline card.
type Task struct {
	Label    string
	Progress int
}

// Pipelines are the fixed system health cards.
var Pipelines = []Pipeline{
	{"Data Processing Pipeline", "PDF parsing, OCR, chunking, table extraction", 92,
		[]Task{{"OCR Processing", 88}, {"Text Extraction", 95}, {"Layout Analysis", 87}}},
	{"Retrieval-Augmented Generation (RAG)", "Core method combining retrieval and generation", 94,
		[]Task{{"Context Precision", 91}, {"Context Recall", 93}, {"Answer Relevance", 96}}},
	{"Deep Learning Models", "Embedding transformers and LLM generation", 96,
		[]Task{{"Embedding Quality", 97}, {"Vector Indexing", 94}, {"LLM Synthesis", 95}}},
	{"Hybrid Search System", "Semantic + keyword search with adaptive routing", 93,
		[]Task{{"Semantic Search", 94}, {"Keyword Search (BM25)", 91}, {"Query Routing", 92}}},
	{"Security & Privacy", "Self-hosted architecture with data anonymization", 100,
		[]Task{{"Encryption", 100}, {"Access Control", 98}, {"Anonymization", 99}}},
}

// View renders aggregate figures. It has no key bindings.
type View struct {
	styles    *styles.Styles
	dashboard driving.Dashboard

	stats  domain.DashboardStats
	width  int
	height int
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, dashboard driving.Dashboard) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, dashboard: dashboard, width: 80, height: 24}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Refresh recomputes the figures.
func (v *View) Refresh() {
	v.stats = v.dashboard.Stats()
}

// Update handles messages for the dashboard view.
func (v *View) Update(tea.Msg) (*View, tea.Cmd) {
	return v, nil
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Analytics"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Real-time insights into your document processing pipeline"))
	b.WriteString("\n\n")

	tiles := []string{
		v.tile("Documents Processed", humanize.Comma(int64(v.stats.Completed)),
			fmt.Sprintf("%d processing", v.stats.Processing)),
		v.tile("Total Pages", humanize.Comma(int64(v.stats.TotalPages)),
			humanize.Comma(int64(v.stats.TotalWords))+" words"),
		v.tile("Questions Answered", humanize.Comma(int64(answered(v.stats.Messages))),
			fmt.Sprintf("%d messages", v.stats.Messages)),
		v.tile("Active Agents", fmt.Sprint(v.stats.ActiveAgents),
			fmt.Sprintf("%d integrations connected", v.stats.ConnectedIntegrations)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("System Health"))
	b.WriteString("\n")
	for _, p := range Pipelines {
		b.WriteString(v.renderPipeline(p))
		b.WriteString("\n")
	}
	return b.String()
}

// answered counts assistant replies, which follow every user message.
func answered(messages int) int {
	return messages / 2
}

func (v *View) tile(label, value, detail string) string {
	body := v.styles.Muted.Render(label) + "\n" +
		v.styles.Title.Render(value) + "\n" +
		v.styles.Muted.Render(detail)
	return v.styles.Card.Width(max((v.width-8)/4, 24)).Render(body)
}

func (v *View) renderPipeline(p Pipeline) string {
	var b strings.Builder
	b.WriteString(v.styles.Normal.Bold(true).Render(p.Name))
	b.WriteString("  ")
	b.WriteString(v.styles.Success.Render(fmt.Sprintf("● Active %d%%", p.Efficiency)))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(p.Description))
	fill := lipgloss.NewStyle().Foreground(v.styles.Theme().Secondary)
	for _, t := range p.Tasks {
		filled := t.Progress / 5
		bar := fill.Render(strings.Repeat("█", filled)) + v.styles.Muted.Render(strings.Repeat("░", 20-filled))
		b.WriteString(fmt.Sprintf("\n  %-22s %s %3d%%", t.Label, bar, t.Progress))
	}
	return b.String()
}

// Stats returns the last computed figures.
func (v *View) Stats() domain.DashboardStats {
	return v.stats
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
