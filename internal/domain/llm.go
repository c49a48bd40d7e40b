package domain

import "context"

// ChatCompletionRequest is a single request to a chat-completion backend.
type ChatCompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature *float64
	MaxTokens   *int
	Tools       []ToolSchema
	// ToolChoice is left empty when no tools are offered.
	ToolChoice string
}

// ChatCompletionResponse is the first choice returned by a chat-completion backend.
type ChatCompletionResponse struct {
	Content   string
	ToolCalls []ToolCallRequest
	Usage     LLMUsage
}

// LLMUsage represents token usage of a chat completion.
type LLMUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add returns the sum of two usages.
func (u LLMUsage) Add(other LLMUsage) LLMUsage {
	return LLMUsage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// ChatCompleter is the chat-completion backend used by the conversation orchestrator.
type ChatCompleter interface {
	// Configured reports whether the backend has the credentials it needs.
	Configured() bool
	// Complete issues one chat completion request.
	Complete(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error)
}
