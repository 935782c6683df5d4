package responder

import (
	"fmt"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
)

// New returns the generator selected by settings.Responder.
func New(settings domain.Settings) (driven.ResponseGenerator, error) {
	switch settings.Responder {
	case domain.ResponderTemplate, "":
		return NewTemplate(settings.Confidence, settings.MaxSources), nil
	case domain.ResponderCatalogue:
		return NewCatalogue(settings.Confidence, settings.MaxSources), nil
	default:
		return nil, fmt.Errorf("%w: unknown responder %q", domain.ErrInvalidInput, settings.Responder)
	}
}

// sources returns the IDs of the first limit documents in registry order.
func sources(docs []domain.Document, limit int) []string {
	n := min(limit, len(docs))
	if n <= 0 {
		return []string{}
	}
	ids := make([]string, n)
	for i := range n {
		ids[i] = docs[i].ID
	}
	return ids
}
