package assistant

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"github.com/cleitonmarx/symbiont-agenthub/internal/assistant/tools"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

//go:embed agents.yml
var agentsYAML []byte

// AgentProfile is the persona part of an agent, as declared in agents.yml.
type AgentProfile struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Company     string `yaml:"company"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	Description string `yaml:"description"`
	Persona     string `yaml:"persona"`
}

// ParseAgentProfiles parses an agents document. Ids must be unique.
func ParseAgentProfiles(data []byte) ([]AgentProfile, error) {
	var doc struct {
		Agents []AgentProfile `yaml:"agents"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse agent profiles: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Agents))
	for _, p := range doc.Agents {
		if p.ID == "" {
			return nil, fmt.Errorf("agent profile %q has no id", p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicated agent id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return doc.Agents, nil
}

// AgentRegistry is a static, ordered set of agents.
type AgentRegistry struct {
	order  []string
	agents map[string]domain.AgentConfig
}

// NewAgentRegistry binds each profile to its toolset. Every profile must have
// a toolset.
func NewAgentRegistry(profiles []AgentProfile, toolsets map[string][]domain.Tool) (AgentRegistry, error) {
	r := AgentRegistry{
		order:  make([]string, 0, len(profiles)),
		agents: make(map[string]domain.AgentConfig, len(profiles)),
	}
	for _, p := range profiles {
		toolset, ok := toolsets[p.ID]
		if !ok {
			return AgentRegistry{}, fmt.Errorf("no toolset for agent %q", p.ID)
		}
		r.order = append(r.order, p.ID)
		r.agents[p.ID] = domain.AgentConfig{
			ID:          p.ID,
			Name:        p.Name,
			Company:     p.Company,
			Icon:        p.Icon,
			Color:       p.Color,
			Description: p.Description,
			Persona:     p.Persona,
			Tools:       toolset,
		}
	}
	return r, nil
}

// IDs returns the agent ids in declaration order.
func (r AgentRegistry) IDs() []string {
	return slices.Clone(r.order)
}

// Get returns the agent with the given id.
func (r AgentRegistry) Get(id string) (domain.AgentConfig, error) {
	agent, ok := r.agents[id]
	if !ok {
		return domain.AgentConfig{}, domain.NewNotFoundErrf("agent '%s' not found", id)
	}
	return agent, nil
}

// InitAgentRegistry builds the agent toolsets from the injected fetchers and
// registers the AgentRegistry.
type InitAgentRegistry struct {
	QuoteFetcher   domain.QuoteFetcher        `resolve:""`
	WeatherFetcher domain.WeatherFetcher      `resolve:""`
	TimeProvider   domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the AgentRegistry in the dependency container.
func (i InitAgentRegistry) Initialize(ctx context.Context) (context.Context, error) {
	profiles, err := ParseAgentProfiles(agentsYAML)
	if err != nil {
		return ctx, err
	}

	catalog, err := tools.LoadCatalog()
	if err != nil {
		return ctx, err
	}

	registry, err := NewAgentRegistry(profiles, map[string][]domain.Tool{
		"ecommerce": tools.NewEcommerceTools(catalog),
		"stock":     tools.NewStockTools(i.QuoteFetcher, i.TimeProvider),
		"weather":   tools.NewWeatherTools(i.WeatherFetcher, i.TimeProvider),
	})
	if err != nil {
		return ctx, err
	}

	depend.Register[domain.AgentRegistry](registry)
	return ctx, nil
}
