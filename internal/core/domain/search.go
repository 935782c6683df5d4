package domain

// SearchType is the retrieval strategy a result claims to come from.
type SearchType string

const (
	SearchSemantic SearchType = "semantic"
	SearchKeyword  SearchType = "keyword"
	SearchHybrid   SearchType = "hybrid"
)

// SearchResult represents a single synthesised search hit.
type SearchResult struct {
	// ID is the identifier of the result within its set.
	ID string

	// DocumentID and DocumentName reference the matched document.
	DocumentID   string
	DocumentName string

	// Excerpt is the snippet shown for the hit.
	Excerpt string

	// RelevanceScore is in [0,1].
	RelevanceScore float64

	// PageNumber is a positive page reference.
	PageNumber int

	// SearchType is the claimed retrieval strategy.
	SearchType SearchType
}
