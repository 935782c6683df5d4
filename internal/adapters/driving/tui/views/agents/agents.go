// Package agents provides the agent builder view for the TUI.
package agents

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
)

// View lists agents and hosts the create form.
type View struct {
	styles *styles.Styles
	agents driving.AgentManager

	items  []domain.Agent
	cursor list.Cursor

	creating    bool
	name        *input.Field
	description *input.Field
	width       int
	height      int
}

// NewView creates a new agents view.
func NewView(s *styles.Styles, agents driving.AgentManager) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:      s,
		agents:      agents,
		name:        input.NewField(s, "Agent Name", "e.g., Invoice Parser, Contract Analyzer, Data Extractor"),
		description: input.NewField(s, "Description", "Describe what this agent will do...", input.CharLimit(500)),
		width:       80,
		height:      24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Refresh reloads the agent list.
func (v *View) Refresh() {
	v.items = v.agents.List()
	v.cursor.SetCount(len(v.items))
}

// Capturing reports whether the create form is open.
func (v *View) Capturing() bool {
	return v.creating
}

// Update handles messages for the agents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.creating {
		return v.updateForm(keyMsg)
	}

	if v.cursor.Handle(keyMsg.String()) {
		return v, nil
	}

	switch keyMsg.String() {
	case "n":
		v.creating = true
		v.description.Blur()
		return v, v.name.Focus()
	case " ":
		if agent, ok := v.Selected(); ok {
			v.agents.Toggle(agent.ID)
			v.Refresh()
		}
	case "d":
		if agent, ok := v.Selected(); ok {
			v.agents.Delete(agent.ID)
			v.Refresh()
			return v, messages.NoticeCmd(fmt.Sprintf("Deleted agent %s", agent.Name))
		}
	}
	return v, nil
}

func (v *View) updateForm(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.closeForm()
		return v, nil
	case "tab", "shift+tab", "up", "down":
		if v.name.Focused() {
			v.name.Blur()
			return v, v.description.Focus()
		}
		v.description.Blur()
		return v, v.name.Focus()
	case "enter":
		agent, err := v.agents.Create(v.name.Value(), v.description.Value())
		if err != nil {
			return v, messages.ErrorCmd(err)
		}
		v.closeForm()
		v.Refresh()
		v.cursor.Set(v.cursor.Count() - 1)
		return v, messages.NoticeCmd(fmt.Sprintf("Created agent %s", agent.Name))
	}

	var cmd tea.Cmd
	if v.name.Focused() {
		v.name, cmd = v.name.Update(msg)
	} else {
		v.description, cmd = v.description.Update(msg)
	}
	return v, cmd
}

func (v *View) closeForm() {
	v.creating = false
	v.name.Reset()
	v.description.Reset()
	v.name.Blur()
	v.description.Blur()
}

// View renders the agents view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("AI Agent Builder"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Create and manage automated document processing workflows"))
	b.WriteString("\n\n")

	if v.creating {
		form := v.styles.Subtitle.Render("Create New AI Agent") + "\n\n" +
			v.name.View() + "\n" + v.description.View() + "\n\n" +
			v.styles.Muted.Render("enter create · tab switch field · esc cancel")
		b.WriteString(v.styles.Card.Render(form))
		b.WriteString("\n\n")
	}

	if len(v.items) == 0 {
		b.WriteString(v.styles.Muted.Render("No agents yet. Press n to create one."))
		return b.String()
	}

	// Each card takes five lines
	start, end := v.cursor.Window(max((v.height-8)/5, 1))
	for i := start; i < end; i++ {
		b.WriteString(v.renderAgent(i, v.items[i]))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderAgent(index int, agent domain.Agent) string {
	title := v.styles.Normal.Bold(true).Render(agent.Name)
	if index == v.cursor.Index() && !v.creating {
		title = v.styles.Selected.Render(agent.Name)
	}

	filled := min(max(agent.SuccessRate, 0), 100) / 5
	bar := v.styles.Success.Render(strings.Repeat("█", filled)) +
		v.styles.Muted.Render(strings.Repeat("░", 20-filled))

	card := title + "  " + v.styles.AgentStatus(agent.IsActive) + "\n" +
		v.styles.Muted.Render(agent.Description) + "\n" +
		fmt.Sprintf("Success Rate %s %d%%", bar, agent.SuccessRate)
	return v.styles.Card.Width(max(v.width-6, 40)).Render(card)
}

// Selected returns the selected agent.
func (v *View) Selected() (domain.Agent, bool) {
	i := v.cursor.Index()
	if i < 0 {
		return domain.Agent{}, false
	}
	return v.items[i], true
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.name.SetWidth(min(width-8, 80))
	v.description.SetWidth(min(width-8, 80))
}
