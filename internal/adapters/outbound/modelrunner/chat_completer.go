package modelrunner

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ProviderName is the LLM_PROVIDER value selecting this adapter.
const ProviderName = "modelrunner"

// ChatCompleter adapts DRMAPIClient to domain.ChatCompleter.
type ChatCompleter struct {
	client  DRMAPIClient
	baseURL string
}

// NewChatCompleter creates a new ChatCompleter.
func NewChatCompleter(client DRMAPIClient) ChatCompleter {
	return ChatCompleter{client: client, baseURL: client.baseURL}
}

// Configured reports whether a model host is set. Local model runners need no API key.
func (a ChatCompleter) Configured() bool {
	return a.baseURL != ""
}

// Complete implements domain.ChatCompleter.
func (a ChatCompleter) Complete(ctx context.Context, req domain.ChatCompletionRequest) (domain.ChatCompletionResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Chat(spanCtx, toChatRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatCompletionResponse{}, err
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ChatCompletionResponse{}, err
	}

	msg := resp.Choices[0].Message
	out := domain.ChatCompletionResponse{
		Content: msg.Content,
		Usage:   toUsage(resp),
	}
	for _, tc := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, domain.ToolCallRequest{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out, nil
}

func toUsage(resp *ChatResponse) domain.LLMUsage {
	switch {
	case resp.Usage != nil:
		return domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	case resp.Timings != nil:
		return domain.LLMUsage{
			PromptTokens:     resp.Timings.PromptN,
			CompletionTokens: resp.Timings.PredictedN,
			TotalTokens:      resp.Timings.PromptN + resp.Timings.PredictedN,
		}
	}
	return domain.LLMUsage{}
}

func toChatRequest(req domain.ChatCompletionRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ToolChoice:  req.ToolChoice,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ToolCallID,
			Content:    msg.Content,
		}
		for _, call := range msg.ToolCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   call.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		adapterReq.Messages[i] = adpMsg
	}

	for _, schema := range req.Tools {
		tool := Tool{
			Type: schema.Type,
			Function: ToolFunc{
				Name:        schema.Function.Name,
				Description: schema.Function.Description,
				Parameters: ToolFuncParameters{
					Type:       schema.Function.Parameters.Type,
					Properties: make(map[string]ToolFuncParameterDetail, len(schema.Function.Parameters.Properties)),
					Required:   schema.Function.Parameters.Required,
				},
			},
		}
		if tool.Function.Parameters.Required == nil {
			tool.Function.Parameters.Required = []string{}
		}
		for name, prop := range schema.Function.Parameters.Properties {
			tool.Function.Parameters.Properties[name] = ToolFuncParameterDetail{
				Type:        prop.Type,
				Description: prop.Description,
			}
		}
		adapterReq.Tools = append(adapterReq.Tools, tool)
	}

	return adapterReq
}

// InitChatCompleter registers the model runner ChatCompleter when LLM_PROVIDER is "modelrunner".
type InitChatCompleter struct {
	HttpClient *http.Client `resolve:"llm"`
	Provider   string       `config:"LLM_PROVIDER" default:"openai"`
	ModelHost  string       `config:"LLM_BASE_URL" default:"http://localhost:12434/engines"`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
}

// Initialize registers the ChatCompleter.
func (i InitChatCompleter) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != ProviderName {
		return ctx, nil
	}
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	depend.Register[domain.ChatCompleter](NewChatCompleter(
		NewDRMAPIClient(i.ModelHost, apiKey, i.HttpClient),
	))
	return ctx, nil
}
