package domain

import "time"

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_Tool      ChatRole = "tool"
)

// ChatMessage is one entry of a completion transcript.
type ChatMessage struct {
	Role       ChatRole
	Content    string
	ToolCallID *string
	ToolCalls  []ToolCallRequest
}

// ToolCallRequest is a tool invocation requested by the model.
// Arguments holds the raw JSON text emitted by the model.
type ToolCallRequest struct {
	ID        string
	Name      string
	Arguments string
}

// ChatOutcome classifies how a chat turn ended.
type ChatOutcome string

const (
	ChatOutcome_Answered      ChatOutcome = "answered"
	ChatOutcome_ToolAssisted  ChatOutcome = "tool_assisted"
	ChatOutcome_SetupRequired ChatOutcome = "setup_required"
	ChatOutcome_AuthError     ChatOutcome = "auth_error"
	ChatOutcome_RateLimited   ChatOutcome = "rate_limited"
	ChatOutcome_ProviderError ChatOutcome = "provider_error"
)

// Failed reports whether the outcome represents a provider or configuration failure.
func (o ChatOutcome) Failed() bool {
	switch o {
	case ChatOutcome_Answered, ChatOutcome_ToolAssisted:
		return false
	}
	return true
}

// ToolInvocation records a tool call executed during a chat turn.
type ToolInvocation struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Failed bool   `json:"failed"`
}

// ChatReply is the result of a chat turn. Content is always populated,
// including when the turn failed.
type ChatReply struct {
	Content   string
	Outcome   ChatOutcome
	ToolCalls []ToolInvocation
	Usage     LLMUsage
}

// StoredChatMessage is a chat message kept in a session history.
type StoredChatMessage struct {
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}
