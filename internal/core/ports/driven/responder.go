package driven

import (
	"context"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

// ResponseGenerator produces the assistant reply for a query.
// It is the seam where a real retrieval-augmented backend would plug in.
type ResponseGenerator interface {
	// Generate answers query using docs, the registry snapshot at reply time.
	Generate(ctx context.Context, query string, docs []domain.Document) (domain.Response, error)
}
