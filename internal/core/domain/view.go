package domain

import "fmt"

// View identifies the top-level panel currently selected for display.
type View string

const (
	ViewUpload       View = "upload"
	ViewChat         View = "chat"
	ViewDocuments    View = "documents"
	ViewSearch       View = "search"
	ViewAgents       View = "agents"
	ViewDashboard    View = "dashboard"
	ViewIntegrations View = "integrations"
)

// DefaultView is the panel shown at start-up.
const DefaultView = ViewUpload

// Views returns every view in navigation order.
func Views() []View {
	return []View{
		ViewUpload,
		ViewChat,
		ViewDocuments,
		ViewSearch,
		ViewAgents,
		ViewDashboard,
		ViewIntegrations,
	}
}

// Valid reports whether v is a member of the view enumeration.
func (v View) Valid() bool {
	for _, known := range Views() {
		if v == known {
			return true
		}
	}
	return false
}

// Label returns the navigation label for the view.
func (v View) Label() string {
	switch v {
	case ViewUpload:
		return "Upload Documents"
	case ViewChat:
		return "Ask Questions"
	case ViewDocuments:
		return "Document Library"
	case ViewSearch:
		return "Search Results"
	case ViewAgents:
		return "AI Agents"
	case ViewDashboard:
		return "Analytics"
	case ViewIntegrations:
		return "Integrations"
	default:
		return string(v)
	}
}

// ParseView converts a string into a View.
func ParseView(s string) (View, error) {
	v := View(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: unknown view %q", ErrInvalidInput, s)
	}
	return v, nil
}
