package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toAgent(a domain.AgentConfig) gen.Agent {
	agent := gen.Agent{
		Id:          a.ID,
		Name:        a.Name,
		Company:     a.Company,
		Icon:        a.Icon,
		Color:       a.Color,
		Description: a.Description,
		Tools:       make([]string, len(a.Tools)),
	}
	for i, tool := range a.Tools {
		agent.Tools[i] = tool.Spec().Name
	}
	return agent
}

func toChatResponse(sessionID, agentID string, reply domain.ChatReply) gen.ChatResponse {
	resp := gen.ChatResponse{
		SessionId: sessionID,
		AgentId:   agentID,
		Reply:     reply.Content,
		Outcome:   gen.ChatOutcome(reply.Outcome),
		ToolCalls: make([]gen.ToolCall, len(reply.ToolCalls)),
		Usage: gen.TokenUsage{
			PromptTokens:     reply.Usage.PromptTokens,
			CompletionTokens: reply.Usage.CompletionTokens,
			TotalTokens:      reply.Usage.TotalTokens,
		},
	}
	for i, call := range reply.ToolCalls {
		resp.ToolCalls[i] = gen.ToolCall{
			Id:     call.ID,
			Name:   call.Name,
			Failed: call.Failed,
		}
	}
	return resp
}

func toChatMessage(msg domain.StoredChatMessage) gen.ChatMessage {
	return gen.ChatMessage{
		Role:      gen.ChatMessageRole(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}
