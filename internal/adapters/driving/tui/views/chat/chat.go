// Package chat provides the question and answer view for the TUI.
package chat

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
)

// Suggestions are offered before the first question is asked.
var Suggestions = []string{
	"Perform multi-document RAG analysis to compare contract terms and identify risks",
	"Generate AI summary with sentiment analysis and compliance checking across all documents",
	"Extract entities and perform blockchain verification of document authenticity",
	"Create automated workflow to process invoices and sync with accounting systems",
}

// View is the chat view.
type View struct {
	styles   *styles.Styles
	chat     driving.ChatOrchestrator
	registry driving.DocumentRegistry

	prompt      *input.Field
	suggestions list.Cursor
	width       int
	height      int
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, chat driving.ChatOrchestrator, registry driving.DocumentRegistry) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:   s,
		chat:     chat,
		registry: registry,
		prompt:   input.NewField(s, "", "Ask questions, request summaries, compare documents...", input.CharLimit(2000)),
		width:    80,
		height:   24,
	}
	v.suggestions.SetCount(len(Suggestions))
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Capturing reports whether typed keys go to the prompt.
func (v *View) Capturing() bool {
	return v.prompt.Focused()
}

// Enabled reports whether questions can be asked. Chat opens once at
// least one document has been uploaded.
func (v *View) Enabled() bool {
	return len(v.registry.List()) > 0
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !v.Enabled() {
		return v, nil
	}

	if v.prompt.Focused() {
		switch keyMsg.String() {
		case "esc":
			v.prompt.Blur()
			return v, nil
		case "enter":
			content := v.prompt.Value()
			if strings.TrimSpace(content) == "" {
				return v, nil
			}
			v.prompt.Reset()
			return v, v.send(content)
		}
		var cmd tea.Cmd
		v.prompt, cmd = v.prompt.Update(msg)
		return v, cmd
	}

	showingSuggestions := len(v.chat.History()) == 0
	if showingSuggestions && v.suggestions.Handle(keyMsg.String()) {
		return v, nil
	}

	switch keyMsg.String() {
	case "enter":
		if showingSuggestions {
			return v, v.send(Suggestions[v.suggestions.Index()])
		}
		return v, v.prompt.Focus()
	case "n":
		return v, v.prompt.Focus()
	}
	return v, nil
}

func (v *View) send(content string) tea.Cmd {
	_, err := v.chat.Send(content)
	return messages.ErrorCmd(err)
}

// View renders the chat view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Advanced Document Intelligence Ready"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Ask complex questions and get answers with precise source citations."))
	b.WriteString("\n\n")

	if !v.Enabled() {
		b.WriteString(v.styles.Warning.Render("Upload documents first to start asking questions."))
		return b.String()
	}

	history := v.chat.History()
	if len(history) == 0 {
		b.WriteString(v.renderSuggestions())
	} else {
		b.WriteString(v.renderHistory(history))
	}

	b.WriteString("\n")
	if v.chat.Pending() > 0 {
		b.WriteString(v.styles.Warning.Render("AI is analyzing your documents..."))
		b.WriteString("\n")
	}
	b.WriteString(v.prompt.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("● Semantic Search  ● Entity Extraction  ● Multi-Document Analysis"))

	return b.String()
}

func (v *View) renderSuggestions() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Start your conversation"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Ask me anything about your documents. I'll analyze them and provide answers with source citations."))
	b.WriteString("\n\n")
	for i, s := range Suggestions {
		if i == v.suggestions.Index() && !v.prompt.Focused() {
			b.WriteString(v.styles.Selected.Render("> " + s))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + s))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderHistory renders messages oldest first and keeps only the tail
// that fits the view height.
func (v *View) renderHistory(history []domain.ChatMessage) string {
	bubbleWidth := max(min(v.width-8, 100), 30)
	blocks := make([]string, 0, len(history))
	for _, m := range history {
		blocks = append(blocks, v.renderMessage(m, bubbleWidth))
	}

	lines := strings.Split(strings.Join(blocks, "\n"), "\n")
	if room := v.height - 10; room > 0 && len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderMessage(m domain.ChatMessage, width int) string {
	if !m.IsAI() {
		bubble := v.styles.UserBubble.MaxWidth(width).Render(m.Content)
		return lipgloss.PlaceHorizontal(max(v.width-4, lipgloss.Width(bubble)), lipgloss.Right, bubble)
	}

	footer := fmt.Sprintf("Confidence: %d%%", int(math.Round(m.Confidence*100)))
	if len(m.SourceDocuments) > 0 {
		footer += " · Sources: " + strings.Join(v.sourceNames(m.SourceDocuments), ", ")
	}
	if m.Confidence > 0 {
		footer += "  " + v.styles.Success.Render("✓ Verified")
	}
	body := lipgloss.NewStyle().Width(width - 4).Render(m.Content)
	return v.styles.AIBubble.Render(body + "\n" + v.styles.Muted.Render(footer))
}

func (v *View) sourceNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if doc, err := v.registry.Get(id); err == nil {
			names = append(names, doc.Name)
		} else {
			names = append(names, id)
		}
	}
	return names
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.prompt.SetWidth(width - 4)
}
