package openai

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cleitonmarx/symbiont-agenthub/internal/common"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont-agenthub/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	oai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var weatherSchema = domain.ToolSchema{
	Type: "function",
	Function: domain.ToolSchemaFunction{
		Name:        "get_weather_forecast",
		Description: "Get the weather forecast for a city.",
		Parameters: domain.ToolSchemaParameters{
			Type: "object",
			Properties: map[string]domain.ToolSchemaProperty{
				"city": {Type: "string", Description: "City name"},
				"days": {Type: "integer", Description: "Number of days"},
			},
			Required: []string{"city"},
		},
	},
}

func TestChatCompleter_Complete(t *testing.T) {
	req := domain.ChatCompletionRequest{
		Model:       "gpt-4o-mini",
		Temperature: common.Ptr(0.7),
		MaxTokens:   common.Ptr(1000),
		ToolChoice:  "auto",
		Tools:       []domain.ToolSchema{weatherSchema},
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRole_System, Content: "You are SkyWatch."},
			{Role: domain.ChatRole_User, Content: "Weather in London?"},
			{Role: domain.ChatRole_Assistant, ToolCalls: []domain.ToolCallRequest{{ID: "call_1", Name: "get_weather_forecast", Arguments: `{"city":"London"}`}}},
			{Role: domain.ChatRole_Tool, ToolCallID: common.Ptr("call_1"), Content: `{"success": true}`},
		},
	}

	tests := map[string]struct {
		status       int
		body         string
		expectedResp domain.ChatCompletionResponse
		expectedErr  string
	}{
		"tool-calls": {
			status: http.StatusOK,
			body: `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"finish_reason":"tool_calls",
				"message":{"role":"assistant","content":null,"tool_calls":[{"id":"call_2","type":"function","function":{"name":"get_weather_forecast","arguments":"{\"city\":\"Paris\"}"}}]}}],
				"usage":{"prompt_tokens":150,"completion_tokens":18,"total_tokens":168}}`,
			expectedResp: domain.ChatCompletionResponse{
				ToolCalls: []domain.ToolCallRequest{{ID: "call_2", Name: "get_weather_forecast", Arguments: `{"city":"Paris"}`}},
				Usage:     domain.LLMUsage{PromptTokens: 150, CompletionTokens: 18, TotalTokens: 168},
			},
		},
		"final-answer": {
			status: http.StatusOK,
			body:   `{"id":"chatcmpl-2","object":"chat.completion","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Cloudy, 8°C."}}],"usage":{"prompt_tokens":200,"completion_tokens":10,"total_tokens":210}}`,
			expectedResp: domain.ChatCompletionResponse{
				Content: "Cloudy, 8°C.",
				Usage:   domain.LLMUsage{PromptTokens: 200, CompletionTokens: 10, TotalTokens: 210},
			},
		},
		"no-choices": {
			status:      http.StatusOK,
			body:        `{"id":"chatcmpl-3","object":"chat.completion","choices":[]}`,
			expectedErr: "no choices in response",
		},
		"invalid-api-key": {
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"Incorrect API key provided.","type":"invalid_request_error","param":null,"code":"invalid_api_key"}}`,
			expectedErr: "openai invalid_api_key",
		},
		"rate-limited": {
			status:      http.StatusTooManyRequests,
			body:        `{"error":{"message":"Rate limit reached for gpt-4o-mini.","type":"requests","param":null,"code":"rate_limit_exceeded"}}`,
			expectedErr: "openai rate_limit_exceeded",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

				raw, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				var body map[string]any
				require.NoError(t, json.Unmarshal(raw, &body))
				assert.Equal(t, "gpt-4o-mini", body["model"])
				assert.Equal(t, "auto", body["tool_choice"])
				assert.InDelta(t, 0.7, body["temperature"], 0.0001)
				assert.Equal(t, 1000.0, body["max_tokens"])

				tools := body["tools"].([]any)
				require.Len(t, tools, 1)
				fn := tools[0].(map[string]any)["function"].(map[string]any)
				assert.Equal(t, "get_weather_forecast", fn["name"])
				assert.Equal(t, []any{"city"}, fn["parameters"].(map[string]any)["required"])

				messages := body["messages"].([]any)
				require.Len(t, messages, 4)
				assert.Equal(t, "call_1", messages[3].(map[string]any)["tool_call_id"])

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			completer := NewChatCompleter("sk-test", server.URL+"/v1", server.Client())
			got, err := completer.Complete(context.Background(), req)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResp, got)
		})
	}
}

func TestChatCompleter_Complete_RateLimitedThroughLLMHttpClient(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"Rate limit reached for gpt-4o-mini.","type":"requests","param":null,"code":"rate_limit_exceeded"}}`)
	}))
	defer server.Close()

	httpClient := telemetry.NewLLMHttpClient(log.New(io.Discard, "", 0))
	completer := NewChatCompleter("sk-test", server.URL+"/v1", httpClient)

	builder := domain.NewMockToolSchemaBuilder(t)
	builder.EXPECT().Build(mock.Anything).Return(nil).Once()
	dispatcher := domain.NewMockToolDispatcher(t)

	gen := usecases.NewGenerateChatReplyImpl(completer, builder, dispatcher, usecases.ChatReplyOptions{
		Model:            "gpt-4o-mini",
		Temperature:      0.7,
		MaxTokens:        1000,
		HistoryLimit:     10,
		MaxParallelTools: 4,
		ResultFormat:     usecases.ToolResultFormat_JSON,
	})
	reply := gen.Execute(context.Background(), "Hello", nil, domain.AgentConfig{ID: "stock", Persona: "You are FinanceBot."}, nil)

	assert.Equal(t, domain.ChatOutcome_RateLimited, reply.Outcome)
	assert.Equal(t, int32(1), calls.Load())

	_, err := completer.Complete(context.Background(), domain.ChatCompletionRequest{
		Model:    "gpt-4o-mini",
		Messages: []domain.ChatMessage{{Role: domain.ChatRole_User, Content: "Hello"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai rate_limit_exceeded")
	assert.Equal(t, int32(2), calls.Load())
}

func TestWrapAPIError(t *testing.T) {
	err := wrapAPIError(&oai.APIError{Code: "invalid_api_key", Message: "Incorrect API key provided."})
	assert.EqualError(t, err, "openai invalid_api_key: Incorrect API key provided.")

	var apiErr *oai.APIError
	assert.ErrorAs(t, err, &apiErr)

	err = wrapAPIError(io.ErrUnexpectedEOF)
	assert.EqualError(t, err, "openai chat completion: unexpected EOF")
}

func TestChatCompleter_Configured(t *testing.T) {
	assert.True(t, NewChatCompleter("sk-test", "", nil).Configured())
	assert.False(t, NewChatCompleter("", "", nil).Configured())
}

func TestInitChatCompleter_Initialize(t *testing.T) {
	tests := map[string]struct {
		init               InitChatCompleter
		expectedConfigured bool
	}{
		"with-api-key": {
			init:               InitChatCompleter{Provider: ProviderName, APIKey: "sk-test", BaseURL: "https://api.openai.com/v1"},
			expectedConfigured: true,
		},
		"without-api-key": {
			init:               InitChatCompleter{Provider: ProviderName, APIKey: "-", BaseURL: "https://api.openai.com/v1"},
			expectedConfigured: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.init.HttpClient = http.DefaultClient
			_, err := tt.init.Initialize(context.Background())
			require.NoError(t, err)

			completer, err := depend.Resolve[domain.ChatCompleter]()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedConfigured, completer.Configured())
		})
	}
}

func TestInitChatCompleter_ResolvesLLMHttpClient(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	retrying := telemetry.NewHttpClient(log.New(io.Discard, "", 0), 3, 0)
	llmClient := telemetry.NewLLMHttpClient(log.New(io.Discard, "", 0))
	depend.Register(retrying)
	depend.RegisterNamed(llmClient, telemetry.LLMHttpClientName)

	var i InitChatCompleter
	require.NoError(t, depend.ResolveStruct(&i))
	assert.Same(t, llmClient, i.HttpClient)
}
