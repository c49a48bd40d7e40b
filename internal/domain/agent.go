package domain

// AgentConfig is a persona bundled with the tools it may call.
type AgentConfig struct {
	ID          string
	Name        string
	Company     string
	Icon        string
	Color       string
	Description string
	Persona     string
	Tools       []Tool
}

// AgentRegistry is a read-only lookup of the configured agents.
type AgentRegistry interface {
	// IDs returns the agent identifiers in display order.
	IDs() []string
	// Get returns the agent with the given id or a NotFoundErr.
	Get(id string) (AgentConfig, error)
}
