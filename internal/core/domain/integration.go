package domain

import "time"

// IntegrationType groups integrations by the kind of service they reach.
type IntegrationType string

const (
	IntegrationStorage IntegrationType = "storage"
	IntegrationCRM     IntegrationType = "crm"
	IntegrationAPI     IntegrationType = "api"
)

// IntegrationStatus is the connection state of an integration.
type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
)

// FieldSpec declares one credential field of a connection form.
type FieldSpec struct {
	// Name is the form key, e.g. "apiKey".
	Name string

	// Placeholder is the hint shown in an empty input.
	Placeholder string

	// Required fields must be non-blank before Connect succeeds.
	Required bool

	// Secret fields are masked on screen.
	Secret bool
}

// Integration is a simulated connection to an external service.
// Field values are checked for presence only and never transmitted.
type Integration struct {
	ID          string
	Name        string
	Type        IntegrationType
	Status      IntegrationStatus
	Description string
	Features    []string

	// Schema is the ordered list of connection form fields.
	Schema []FieldSpec

	// ConnectedAt is zero while disconnected.
	ConnectedAt time.Time

	// ActiveConnections is 0 while disconnected.
	ActiveConnections int
}

// Connected reports whether the integration is currently connected.
func (i Integration) Connected() bool {
	return i.Status == IntegrationConnected
}

// RequiredFields returns the names of the required schema fields.
func (i Integration) RequiredFields() []string {
	var names []string
	for _, f := range i.Schema {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// IntegrationForm is the open connection form for one integration.
type IntegrationForm struct {
	IntegrationID string
	Values        map[string]string
}

// DefaultIntegrations returns the integration catalogue every session starts with.
func DefaultIntegrations() []Integration {
	return []Integration{
		{
			ID:          "1",
			Name:        "Google Drive",
			Type:        IntegrationStorage,
			Status:      IntegrationConnected,
			Description: "Sync documents from Google Drive automatically",
			Features:    []string{"Auto-sync", "Real-time processing", "Folder monitoring"},
			Schema: []FieldSpec{
				{Name: "email", Placeholder: "Your Google Email", Required: true},
				{Name: "password", Placeholder: "Google App Password", Required: true, Secret: true},
			},
			ConnectedAt:       time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC),
			ActiveConnections: 3,
		},
		{
			ID:          "2",
			Name:        "Salesforce CRM",
			Type:        IntegrationCRM,
			Status:      IntegrationConnected,
			Description: "Extract data and sync with Salesforce records",
			Features:    []string{"Lead extraction", "Contact sync", "Opportunity tracking"},
			Schema: []FieldSpec{
				{Name: "email", Placeholder: "Salesforce Email", Required: true},
				{Name: "apiKey", Placeholder: "API Key / Consumer Key", Required: true, Secret: true},
				{Name: "instanceUrl", Placeholder: "Your Salesforce Instance URL", Required: true},
			},
			ConnectedAt:       time.Date(2025, time.November, 8, 0, 0, 0, 0, time.UTC),
			ActiveConnections: 2,
		},
		{
			ID:          "3",
			Name:        "Zapier",
			Type:        IntegrationAPI,
			Status:      IntegrationDisconnected,
			Description: "Connect to 5000+ apps with automated workflows",
			Features:    []string{"Custom triggers", "Multi-step workflows", "Error handling"},
			Schema: []FieldSpec{
				{Name: "apiKey", Placeholder: "Zapier API Key", Required: true, Secret: true},
				{Name: "webhookUrl", Placeholder: "Webhook URL from Zapier", Required: true},
			},
		},
		{
			ID:          "4",
			Name:        "Slack",
			Type:        IntegrationAPI,
			Status:      IntegrationDisconnected,
			Description: "Send notifications and summaries to Slack channels",
			Features:    []string{"Channel notifications", "Direct messages", "Custom alerts"},
			Schema: []FieldSpec{
				{Name: "botToken", Placeholder: "Slack Bot Token", Required: true, Secret: true},
				{Name: "channelId", Placeholder: "Channel ID or Webhook URL", Required: true},
			},
		},
		{
			ID:          "5",
			Name:        "Microsoft 365",
			Type:        IntegrationStorage,
			Status:      IntegrationDisconnected,
			Description: "Process documents from OneDrive and SharePoint",
			Features:    []string{"OneDrive sync", "SharePoint integration", "Teams notifications"},
			Schema: []FieldSpec{
				{Name: "email", Placeholder: "Microsoft 365 Email", Required: true},
				{Name: "password", Placeholder: "Microsoft Password", Required: true, Secret: true},
				{Name: "tenantId", Placeholder: "Tenant ID (Optional)"},
			},
		},
		{
			ID:          "6",
			Name:        "QuickBooks",
			Type:        IntegrationCRM,
			Status:      IntegrationDisconnected,
			Description: "Automatically process invoices and financial documents",
			Features:    []string{"Invoice processing", "Expense tracking", "Financial reporting"},
			Schema: []FieldSpec{
				{Name: "realmId", Placeholder: "QuickBooks Realm ID", Required: true},
				{Name: "apiKey", Placeholder: "Consumer Key", Required: true, Secret: true},
				{Name: "email", Placeholder: "QuickBooks Email", Required: true},
			},
		},
	}
}
