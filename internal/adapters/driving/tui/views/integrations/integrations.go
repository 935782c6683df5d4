// Package integrations provides the integration hub view for the TUI.
package integrations

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

const dateLayout = "Jan 2, 2006"

// View lists integrations and hosts the connect form of the selected one.
type View struct {
	styles       *styles.Styles
	integrations driving.IntegrationManager

	items  []domain.Integration
	cursor list.Cursor

	// form is non-nil while a connect form is open.
	form   *domain.Integration
	fields []*input.Field
	focus  int

	width  int
	height int
}

// NewView creates a new integrations view.
func NewView(s *styles.Styles, integrations driving.IntegrationManager) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:       s,
		integrations: integrations,
		width:        80,
		height:       24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Refresh reloads the integration catalogue.
func (v *View) Refresh() {
	v.items = v.integrations.List()
	v.cursor.SetCount(len(v.items))
}

// Capturing reports whether a connect form is open.
func (v *View) Capturing() bool {
	return v.form != nil
}

// Update handles messages for the integrations view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.form != nil {
		return v.updateForm(keyMsg)
	}

	if v.cursor.Handle(keyMsg.String()) {
		return v, nil
	}

	selected, ok := v.Selected()
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "enter":
		if err := v.integrations.Open(selected.ID); err != nil {
			return v, messages.ErrorCmd(err)
		}
		return v, v.openForm(selected)
	case "d":
		if !selected.Connected() {
			return v, nil
		}
		v.integrations.Disconnect(selected.ID)
		v.Refresh()
		return v, messages.NoticeCmd(fmt.Sprintf("Disconnected %s", selected.Name))
	}
	return v, nil
}

func (v *View) openForm(in domain.Integration) tea.Cmd {
	v.form = &in
	v.fields = make([]*input.Field, 0, len(in.Schema))
	for _, spec := range in.Schema {
		label := spec.Name
		if spec.Required {
			label += " *"
		}
		var opts []input.Option
		if spec.Secret {
			opts = append(opts, input.Secret())
		}
		field := input.NewField(v.styles, label, spec.Placeholder, opts...)
		field.SetWidth(min(v.width-8, 80))
		v.fields = append(v.fields, field)
	}
	v.focus = 0
	if len(v.fields) == 0 {
		return nil
	}
	return v.fields[0].Focus()
}

func (v *View) updateForm(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.integrations.Cancel()
		v.closeForm()
		return v, nil
	case "tab", "down":
		return v, v.moveFocus(1)
	case "shift+tab", "up":
		return v, v.moveFocus(-1)
	case "enter":
		return v, v.connect()
	}

	if len(v.fields) == 0 {
		return v, nil
	}
	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) moveFocus(delta int) tea.Cmd {
	if len(v.fields) == 0 {
		return nil
	}
	v.fields[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.fields)) % len(v.fields)
	return v.fields[v.focus].Focus()
}

func (v *View) connect() tea.Cmd {
	for i, spec := range v.form.Schema {
		if err := v.integrations.SetField(spec.Name, v.fields[i].Value()); err != nil {
			return messages.ErrorCmd(err)
		}
	}

	connected, err := v.integrations.Connect()
	if err != nil {
		return messages.ErrorCmd(err)
	}
	v.closeForm()
	v.Refresh()
	return messages.NoticeCmd(fmt.Sprintf("Successfully connected to %s!", connected.Name))
}

func (v *View) closeForm() {
	v.form = nil
	v.fields = nil
	v.focus = 0
}

// View renders the integrations view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Integration Hub"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Connect your favorite tools and automate document workflows"))
	b.WriteString("\n\n")

	if v.form != nil {
		b.WriteString(v.renderForm())
		b.WriteString("\n\n")
	}

	// Each card takes seven lines
	start, end := v.cursor.Window(max((v.height-8)/7, 1))
	for i := start; i < end; i++ {
		b.WriteString(v.renderIntegration(i, v.items[i]))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderForm() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Connect " + v.form.Name))
	b.WriteString("\n\n")
	for _, field := range v.fields {
		b.WriteString(field.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("enter authenticate & connect · tab next field · esc cancel"))
	return v.styles.Card.Render(b.String())
}

func (v *View) renderIntegration(index int, in domain.Integration) string {
	title := v.styles.Normal.Bold(true).Render(in.Name)
	if index == v.cursor.Index() && v.form == nil {
		title = v.styles.Selected.Render(in.Name)
	}

	var b strings.Builder
	b.WriteString(title + "  " + v.styles.Muted.Render(string(in.Type)) + "  " +
		v.styles.IntegrationStatus(in.Status))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(in.Description))
	b.WriteString("\n")
	b.WriteString("✓ " + strings.Join(in.Features, "  ✓ "))

	if in.Connected() {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Connected since: ") + in.ConnectedAt.Format(dateLayout))
		if in.ActiveConnections > 0 {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render("Active connections: ") + fmt.Sprint(in.ActiveConnections))
		}
	}
	return v.styles.Card.Width(max(v.width-6, 40)).Render(b.String())
}

// Selected returns the selected integration.
func (v *View) Selected() (domain.Integration, bool) {
	i := v.cursor.Index()
	if i < 0 {
		return domain.Integration{}, false
	}
	return v.items[i], true
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	for _, field := range v.fields {
		field.SetWidth(min(width-8, 80))
	}
}
