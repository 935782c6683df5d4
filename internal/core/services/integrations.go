package services

import (
	"fmt"
	"maps"
	"slices"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
	"github.com/custodia-labs/docanalyzer/internal/core/state"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// Ensure IntegrationManager implements the interface.
var _ driving.IntegrationManager = (*IntegrationManager)(nil)

// IntegrationManager runs the connect form of each integration:
// disconnected -> editing -> connected -> disconnected.
type IntegrationManager struct {
	store driven.StateStore
	clock driven.Clock
}

// NewIntegrationManager creates an integration manager. clock stamps
// ConnectedAt.
func NewIntegrationManager(store driven.StateStore, clock driven.Clock) *IntegrationManager {
	return &IntegrationManager{store: store, clock: clock}
}

// Open starts editing the form of a disconnected integration, replacing
// any form already open. Unknown IDs are ignored.
func (m *IntegrationManager) Open(id string) error {
	in, ok := m.store.Snapshot().Integration(id)
	if !ok {
		return nil
	}
	if in.Connected() {
		return fmt.Errorf("%w: %s is already connected", domain.ErrInvalidInput, in.Name)
	}
	m.store.Dispatch(state.IntegrationFormOpened{ID: id})
	return nil
}

// SetField records value for a field declared by the open form's schema.
func (m *IntegrationManager) SetField(field, value string) error {
	snap := m.store.Snapshot()
	if snap.Form == nil {
		return domain.ErrNoIntegrationSelected
	}
	in, _ := snap.Integration(snap.Form.IntegrationID)
	if !slices.ContainsFunc(in.Schema, func(f domain.FieldSpec) bool { return f.Name == field }) {
		return fmt.Errorf("%w: %s has no field %q", domain.ErrInvalidInput, in.Name, field)
	}
	m.store.Dispatch(state.IntegrationFieldSet{Field: field, Value: value})
	return nil
}

// Connect validates the open form and connects its integration. When a
// required field is blank it returns a *domain.FieldError and nothing
// changes.
func (m *IntegrationManager) Connect() (domain.Integration, error) {
	snap := m.store.Snapshot()
	if snap.Form == nil {
		return domain.Integration{}, domain.ErrNoIntegrationSelected
	}
	in, ok := snap.Integration(snap.Form.IntegrationID)
	if !ok {
		return domain.Integration{}, fmt.Errorf("integration %s: %w", snap.Form.IntegrationID, domain.ErrNotFound)
	}

	if missing := missingFields(in, snap.Form.Values); len(missing) > 0 {
		return domain.Integration{}, &domain.FieldError{Integration: in.Name, Fields: missing}
	}

	next := m.store.Dispatch(state.IntegrationConnected{ID: in.ID, At: m.clock.Now()})
	connected, _ := next.Integration(in.ID)
	logger.Debug("integrations: %s connected", in.Name)
	return connected, nil
}

// Cancel closes the open form.
func (m *IntegrationManager) Cancel() {
	m.store.Dispatch(state.IntegrationFormClosed{})
}

// Disconnect disconnects the integration. Unknown IDs are ignored.
func (m *IntegrationManager) Disconnect(id string) {
	m.store.Dispatch(state.IntegrationDisconnected{ID: id})
}

// Form returns a copy of the open form, or nil.
func (m *IntegrationManager) Form() *domain.IntegrationForm {
	form := m.store.Snapshot().Form
	if form == nil {
		return nil
	}
	return &domain.IntegrationForm{IntegrationID: form.IntegrationID, Values: maps.Clone(form.Values)}
}

// List returns the integration catalogue.
func (m *IntegrationManager) List() []domain.Integration {
	return slices.Clone(m.store.Snapshot().Integrations)
}
