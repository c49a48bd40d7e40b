package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/inbound/http/gen"
)

// List agents
// (GET /api/v1/agents)
func (api AgentHubServer) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := api.ListAgentsUseCase.Query(r.Context())
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := gen.AgentListResp{
		Agents: make([]gen.Agent, len(agents)),
	}
	for i, a := range agents {
		resp.Agents[i] = toAgent(a)
	}

	respondJSON(w, http.StatusOK, resp)
}

// Get an agent
// (GET /api/v1/agents/{agent_id})
func (api AgentHubServer) GetAgent(w http.ResponseWriter, r *http.Request, agentId gen.AgentID) {
	agent, err := api.GetAgentUseCase.Query(r.Context(), agentId)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toAgent(agent))
}
