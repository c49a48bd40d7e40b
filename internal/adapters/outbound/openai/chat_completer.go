// Package openai implements domain.ChatCompleter with the OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	oai "github.com/sashabaranov/go-openai"
)

// ProviderName is the LLM_PROVIDER value selecting this adapter.
const ProviderName = "openai"

// ChatCompleter adapts the go-openai client to domain.ChatCompleter.
type ChatCompleter struct {
	client *oai.Client
	apiKey string
}

// NewChatCompleter creates a ChatCompleter. An empty apiKey yields a
// completer that reports itself as not configured.
func NewChatCompleter(apiKey, baseURL string, httpClient *http.Client) ChatCompleter {
	cfg := oai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return ChatCompleter{
		client: oai.NewClientWithConfig(cfg),
		apiKey: apiKey,
	}
}

// Configured reports whether an API key is set.
func (c ChatCompleter) Configured() bool {
	return c.apiKey != ""
}

// Complete implements domain.ChatCompleter.
func (c ChatCompleter) Complete(ctx context.Context, req domain.ChatCompletionRequest) (domain.ChatCompletionResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := c.client.CreateChatCompletion(spanCtx, toChatCompletionRequest(req))
	if err != nil {
		err = wrapAPIError(err)
		telemetry.RecordErrorAndStatus(span, err)
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
		Usage: domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
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

// wrapAPIError prefixes OpenAI API errors with their error code, e.g.
// invalid_api_key or rate_limit_exceeded.
func wrapAPIError(err error) error {
	var apiErr *oai.APIError
	if errors.As(err, &apiErr) {
		if code, ok := apiErr.Code.(string); ok && code != "" {
			return fmt.Errorf("openai %s: %w", code, err)
		}
	}
	return fmt.Errorf("openai chat completion: %w", err)
}

func toChatCompletionRequest(req domain.ChatCompletionRequest) oai.ChatCompletionRequest {
	out := oai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: make([]oai.ChatCompletionMessage, len(req.Messages)),
	}
	if req.Temperature != nil {
		out.Temperature = float32(*req.Temperature)
	}
	if req.MaxTokens != nil {
		out.MaxTokens = *req.MaxTokens
	}
	if req.ToolChoice != "" {
		out.ToolChoice = req.ToolChoice
	}

	for i, msg := range req.Messages {
		m := oai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
		if msg.ToolCallID != nil {
			m.ToolCallID = *msg.ToolCallID
		}
		for _, call := range msg.ToolCalls {
			m.ToolCalls = append(m.ToolCalls, oai.ToolCall{
				ID:   call.ID,
				Type: oai.ToolTypeFunction,
				Function: oai.FunctionCall{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		out.Messages[i] = m
	}

	for _, schema := range req.Tools {
		out.Tools = append(out.Tools, oai.Tool{
			Type: oai.ToolType(schema.Type),
			Function: &oai.FunctionDefinition{
				Name:        schema.Function.Name,
				Description: schema.Function.Description,
				Parameters:  schema.Function.Parameters,
			},
		})
	}

	return out
}

// InitChatCompleter registers the OpenAI ChatCompleter when LLM_PROVIDER is "openai".
// A missing OPENAI_API_KEY is not fatal: chat turns answer with setup instructions.
type InitChatCompleter struct {
	HttpClient *http.Client `resolve:"llm"`
	Provider   string       `config:"LLM_PROVIDER" default:"openai"`
	APIKey     string       `config:"OPENAI_API_KEY" default:"-"`
	BaseURL    string       `config:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
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
	depend.Register[domain.ChatCompleter](NewChatCompleter(apiKey, i.BaseURL, i.HttpClient))
	return ctx, nil
}
