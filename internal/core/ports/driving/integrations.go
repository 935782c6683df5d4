package driving

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// IntegrationManager drives the simulated connection forms.
type IntegrationManager interface {
	// Open starts editing the connection form of a disconnected integration.
	Open(id string) error

	// SetField records a value on the open form.
	SetField(field, value string) error

	// Connect validates the open form and connects its integration.
	// Returns a *domain.FieldError when required fields are empty.
	Connect() (domain.Integration, error)

	// Cancel closes the open form without connecting.
	Cancel()

	// Disconnect disconnects the integration. Unknown IDs are ignored.
	Disconnect(id string)

	// Form returns the open form, or nil.
	Form() *domain.IntegrationForm

	// List returns the integration catalogue.
	List() []domain.Integration
}
