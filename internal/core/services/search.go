package services

import (
	"slices"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
)

// Ensure SearchService implements the interface.
var _ driving.SearchResults = (*SearchService)(nil)

// Values of the synthesised search result.
const (
	PlaceholderDocumentID   = "1"
	PlaceholderDocumentName = "Sample Document.pdf"
	SynthesizedExcerpt      = "Relevant information extracted from your documents..."
	SynthesizedRelevance    = 0.92
	SynthesizedPage         = 15
)

// Synthesize builds the result set shown after a chat reply: a single
// hybrid hit on the first registered document, or on a placeholder when
// the registry is empty.
func Synthesize(docs []domain.Document) []domain.SearchResult {
	id, name := PlaceholderDocumentID, PlaceholderDocumentName
	if len(docs) > 0 {
		id, name = docs[0].ID, docs[0].Name
	}
	return []domain.SearchResult{{
		ID:             "1",
		DocumentID:     id,
		DocumentName:   name,
		Excerpt:        SynthesizedExcerpt,
		RelevanceScore: SynthesizedRelevance,
		PageNumber:     SynthesizedPage,
		SearchType:     domain.SearchHybrid,
	}}
}

// SearchService exposes the current result set.
type SearchService struct {
	store driven.StateStore
}

// NewSearchService creates a search service backed by store.
func NewSearchService(store driven.StateStore) *SearchService {
	return &SearchService{store: store}
}

// Results returns the result set from the most recent chat reply.
func (s *SearchService) Results() []domain.SearchResult {
	return slices.Clone(s.store.Snapshot().SearchResults)
}
