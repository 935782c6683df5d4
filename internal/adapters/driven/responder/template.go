package responder

import (
	"context"
	"fmt"
	"math"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
)

// Ensure Template implements the interface.
var _ driven.ResponseGenerator = (*Template)(nil)

const templateFormat = "Based on RAG-enhanced analysis of your documents, " +
	"I found relevant information about \"%s\". The system extracted key entities " +
	"and identified supporting citations with %d%% confidence."

// Template answers every query with the same sentence, quoting the query.
type Template struct {
	confidence float64
	maxSources int
}

// NewTemplate creates a Template generator.
func NewTemplate(confidence float64, maxSources int) *Template {
	return &Template{confidence: confidence, maxSources: maxSources}
}

// Generate returns the templated reply.
func (t *Template) Generate(ctx context.Context, query string, docs []domain.Document) (domain.Response, error) {
	if err := ctx.Err(); err != nil {
		return domain.Response{}, err
	}
	return domain.Response{
		Content:         fmt.Sprintf(templateFormat, query, percent(t.confidence)),
		SourceDocuments: sources(docs, t.maxSources),
		Confidence:      t.confidence,
	}, nil
}

func percent(c float64) int {
	return int(math.Round(c * 100))
}
