package domain

// DefaultAgentDescription is used when an agent is created without one.
const DefaultAgentDescription = "Custom AI agent for document processing"

// Agent is a user-defined automation. It has no relationship to
// documents or chat.
type Agent struct {
	ID          string
	Name        string
	Description string
	IsActive    bool

	// SuccessRate is an integer percentage in [0,100].
	SuccessRate int
}

// DefaultAgents returns the agents every session starts with.
func DefaultAgents() []Agent {
	return []Agent{
		{
			ID:          "1",
			Name:        "Document Summarizer",
			Description: "Automatically summarizes documents and extracts key points",
			IsActive:    true,
			SuccessRate: 94,
		},
		{
			ID:          "2",
			Name:        "Entity Extractor",
			Description: "Identifies and tags entities like people, organizations, and dates",
			IsActive:    true,
			SuccessRate: 91,
		},
	}
}
