package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-agenthub/internal/usecases"
	"github.com/google/uuid"
)

// Send a message to an agent
// (POST /api/v1/agents/{agent_id}/chat)
func (api AgentHubServer) ChatWithAgent(w http.ResponseWriter, r *http.Request, agentId gen.AgentID) {
	var req gen.ChatWithAgentJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	sessionID := uuid.NewString()
	if req.SessionId != nil && *req.SessionId != "" {
		sessionID = *req.SessionId
	}

	reply, err := api.ChatWithAgentUseCase.Execute(r.Context(), usecases.ChatTurnInput{
		SessionID: sessionID,
		AgentID:   agentId,
		Message:   req.Message,
	})
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toChatResponse(sessionID, agentId, reply))
}

// List the messages of a chat session
// (GET /api/v1/agents/{agent_id}/sessions/{session_id}/messages)
func (api AgentHubServer) ListChatMessages(w http.ResponseWriter, r *http.Request, agentId gen.AgentID, sessionId gen.SessionID) {
	messages, err := api.ListChatMessagesUseCase.Query(r.Context(), sessionId, agentId)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := gen.ChatMessagesResp{
		Messages: make([]gen.ChatMessage, len(messages)),
	}
	for i, msg := range messages {
		resp.Messages[i] = toChatMessage(msg)
	}

	respondJSON(w, http.StatusOK, resp)
}

// Clear a chat session
// (DELETE /api/v1/agents/{agent_id}/sessions/{session_id}/messages)
func (api AgentHubServer) ClearChatMessages(w http.ResponseWriter, r *http.Request, agentId gen.AgentID, sessionId gen.SessionID) {
	err := api.ClearChatSessionUseCase.Execute(r.Context(), sessionId, agentId)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
