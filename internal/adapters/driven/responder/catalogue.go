package responder

import (
	"context"
	"strings"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
)

// Ensure Catalogue implements the interface.
var _ driven.ResponseGenerator = (*Catalogue)(nil)

// Entry is one canned analysis.
type Entry struct {
	Kind       string
	Keywords   []string
	Content    string
	Confidence float64 // zero means use the generator default
}

// Entries is the built-in catalogue. The first entry is the fallback.
var Entries = []Entry{
	{
		Kind:       "analysis",
		Keywords:   []string{"analy", "term", "contract", "clause"},
		Confidence: 0.94,
		Content: "Based on my comprehensive analysis of your uploaded documents, I identified several key findings:\n\n" +
			"• Contract Duration: 3-year service agreement with automatic renewal provisions\n" +
			"• Payment Terms: Net-30 with quarterly reconciliation\n" +
			"• Risk Factors: Limitation of liability capped at 12 months of service fees\n" +
			"• Critical Clause: Force majeure provisions exclude pandemic-related events\n\n" +
			"I found 12 potential areas requiring legal review, particularly around IP ownership clauses.",
	},
	{
		Kind:     "extraction",
		Keywords: []string{"extract", "entit", "who", "people", "organi"},
		Content: "I've successfully extracted the following key entities from your documents:\n\n" +
			"Organizations: Acme Corp, Global Finance Inc, TechVentures LLC\n" +
			"People: John Smith (Legal Lead), Sarah Johnson (CFO), Michael Chen (CTO)\n" +
			"Locations: New York, London, Singapore\n\n" +
			"These entities are cross-referenced across 8 documents with 156 total mentions.",
	},
	{
		Kind:     "summary",
		Keywords: []string{"summar", "overview", "tl;dr"},
		Content: "Document Summary:\n\n" +
			"This is a comprehensive service agreement establishing terms between the parties. Key highlights:\n\n" +
			"✓ Scope: 24/7 managed IT services including infrastructure, security, and support\n" +
			"✓ Duration: 36 months with performance SLAs of 99.9% uptime\n" +
			"✓ Cost: $250K annually with volume discounts for additional services\n" +
			"✓ Governance: Quarterly business reviews with escalation procedures\n" +
			"✓ Compliance: GDPR, SOC2 Type II certified, regular audit rights\n\n" +
			"The agreement is favorable for both parties with balanced risk allocation.",
	},
	{
		Kind:     "comparison",
		Keywords: []string{"compar", "differ", "versus", " vs"},
		Content: "Comparative Analysis of 3 contracts:\n\n" +
			"Client A Agreement:\n→ 2-year term | $180K/year | 99% uptime SLA\n" +
			"→ Payment: Net-60 | Standard liability cap\n→ Termination: 90-day notice required\n\n" +
			"Client B Agreement:\n→ 3-year term | $250K/year | 99.9% uptime SLA\n" +
			"→ Payment: Net-30 | Enhanced liability cap (18 months)\n→ Termination: 60-day notice required\n\n" +
			"Key Difference: Client B agreement has more favorable terms with shorter notice period " +
			"and better uptime guarantees.",
	},
	{
		Kind:     "risk",
		Keywords: []string{"risk", "liabil", "danger", "indemn"},
		Content: "Risk Assessment Report:\n\n" +
			"High Risk Items (2):\n1. Unlimited indemnification obligations in Section 7.2\n" +
			"2. One-sided termination rights favoring vendor\n\n" +
			"Medium Risk Items (4):\n1. Data retention policies not clearly defined\n" +
			"2. Subcontractor approval process missing\n3. Change order procedures lack clarity\n" +
			"4. Performance metrics lack financial penalties\n\n" +
			"Low Risk Items (3):\n1. Standard confidentiality clauses\n2. Normal IP ownership provisions\n" +
			"3. Standard insurance requirements\n\n" +
			"Recommendation: Negotiate items 1 and 2 before signing.",
	},
	{
		Kind:     "insights",
		Keywords: []string{"insight", "trend", "market"},
		Content: "Advanced Insights from Multi-Document Analysis:\n\n" +
			"Market Trends Identified:\n• Average contract value increased 23% YoY\n" +
			"• Service SLA standards trending toward 99.95%\n" +
			"• Payment terms shifting from Net-60 to Net-45\n" +
			"• Auto-renewal clauses in 87% of recent contracts\n\n" +
			"Your Position:\n• Your contracts align with market standards\n" +
			"• Payment terms are favorable compared to peers\n" +
			"• Missing auto-escalation clauses vs. 65% of market\n\n" +
			"Action Items:\n→ Consider adding auto-escalation for inflation (2.5% annually)\n" +
			"→ Add quarterly adjustment provisions\n→ Include technology refresh provisions",
	},
}

// Catalogue selects an entry whose keywords appear in the query.
type Catalogue struct {
	entries    []Entry
	confidence float64
	maxSources int
}

// NewCatalogue creates a Catalogue over Entries.
func NewCatalogue(confidence float64, maxSources int) *Catalogue {
	return &Catalogue{entries: Entries, confidence: confidence, maxSources: maxSources}
}

// Generate returns the first entry matching query, or the fallback.
func (c *Catalogue) Generate(ctx context.Context, query string, docs []domain.Document) (domain.Response, error) {
	if err := ctx.Err(); err != nil {
		return domain.Response{}, err
	}

	entry := c.Match(query)
	confidence := c.confidence
	if entry.Confidence > 0 {
		confidence = entry.Confidence
	}

	return domain.Response{
		Content:         entry.Content,
		SourceDocuments: sources(docs, c.maxSources),
		Confidence:      confidence,
	}, nil
}

// Match returns the entry chosen for query. Entries are scanned in
// reverse so the more specific kinds win over the broad fallback.
func (c *Catalogue) Match(query string) Entry {
	q := strings.ToLower(query)
	for i := len(c.entries) - 1; i > 0; i-- {
		for _, kw := range c.entries[i].Keywords {
			if strings.Contains(q, kw) {
				return c.entries[i]
			}
		}
	}
	return c.entries[0]
}
