package modelrunner

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-agenthub/internal/common"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quoteSchema = domain.ToolSchema{
	Type: "function",
	Function: domain.ToolSchemaFunction{
		Name:        "get_stock_price",
		Description: "Get the current stock price.",
		Parameters: domain.ToolSchemaParameters{
			Type:       "object",
			Properties: map[string]domain.ToolSchemaProperty{"symbol": {Type: "string", Description: "Ticker"}},
			Required:   []string{"symbol"},
		},
	},
}

func TestChatCompleter_Complete(t *testing.T) {
	toolRequest := domain.ChatCompletionRequest{
		Model:       "ai/qwen3",
		Temperature: common.Ptr(0.7),
		MaxTokens:   common.Ptr(1000),
		ToolChoice:  "auto",
		Tools:       []domain.ToolSchema{quoteSchema},
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRole_System, Content: "You are FinanceBot."},
			{Role: domain.ChatRole_User, Content: "price of AAPL"},
			{Role: domain.ChatRole_Assistant, ToolCalls: []domain.ToolCallRequest{{ID: "call_1", Name: "get_stock_price", Arguments: `{"symbol":"AAPL"}`}}},
			{Role: domain.ChatRole_Tool, ToolCallID: common.Ptr("call_1"), Content: `{"success": true}`},
		},
	}

	tests := map[string]struct {
		req          domain.ChatCompletionRequest
		status       int
		body         string
		assertBody   func(t *testing.T, body map[string]any)
		expectedResp domain.ChatCompletionResponse
		expectedErr  string
	}{
		"tool-calls": {
			req:    toolRequest,
			status: http.StatusOK,
			body: `{"id":"1","object":"chat.completion","model":"ai/qwen3","choices":[{"index":0,"finish_reason":"tool_calls","message":{"role":"assistant","tool_calls":[
				{"id":"call_2","type":"function","function":{"name":"get_stock_price","arguments":"{\"symbol\":\"MSFT\"}"}}]}}],
				"usage":{"prompt_tokens":100,"completion_tokens":20,"total_tokens":120}}`,
			assertBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "ai/qwen3", body["model"])
				assert.Equal(t, 0.7, body["temperature"])
				assert.Equal(t, 1000.0, body["max_tokens"])
				assert.Equal(t, "auto", body["tool_choice"])

				tools := body["tools"].([]any)
				require.Len(t, tools, 1)
				fn := tools[0].(map[string]any)["function"].(map[string]any)
				assert.Equal(t, "get_stock_price", fn["name"])
				assert.Equal(t, []any{"symbol"}, fn["parameters"].(map[string]any)["required"])

				messages := body["messages"].([]any)
				require.Len(t, messages, 4)
				assistant := messages[2].(map[string]any)
				call := assistant["tool_calls"].([]any)[0].(map[string]any)
				assert.Equal(t, "call_1", call["id"])
				assert.Equal(t, `{"symbol":"AAPL"}`, call["function"].(map[string]any)["arguments"])
				assert.Equal(t, "call_1", messages[3].(map[string]any)["tool_call_id"])
			},
			expectedResp: domain.ChatCompletionResponse{
				ToolCalls: []domain.ToolCallRequest{{ID: "call_2", Name: "get_stock_price", Arguments: `{"symbol":"MSFT"}`}},
				Usage:     domain.LLMUsage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120},
			},
		},
		"content-with-timings": {
			req: domain.ChatCompletionRequest{
				Model:    "ai/qwen3",
				Messages: []domain.ChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			status: http.StatusOK,
			body:   `{"choices":[{"index":0,"message":{"role":"assistant","content":"Hello!"}}],"timings":{"prompt_n":12,"predicted_n":3}}`,
			assertBody: func(t *testing.T, body map[string]any) {
				assert.NotContains(t, body, "tools")
				assert.NotContains(t, body, "tool_choice")
				assert.NotContains(t, body, "temperature")
			},
			expectedResp: domain.ChatCompletionResponse{
				Content: "Hello!",
				Usage:   domain.LLMUsage{PromptTokens: 12, CompletionTokens: 3, TotalTokens: 15},
			},
		},
		"no-choices": {
			req:         toolRequest,
			status:      http.StatusOK,
			body:        `{"choices":[]}`,
			expectedErr: "no choices in response",
		},
		"invalid-api-key": {
			req:         toolRequest,
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"Incorrect API key provided.","type":"invalid_request_error","code":"invalid_api_key"}}`,
			expectedErr: "non-2xx response: 401 Unauthorized: invalid_api_key: Incorrect API key provided.",
		},
		"plain-error-body": {
			req:         toolRequest,
			status:      http.StatusServiceUnavailable,
			body:        `model is loading`,
			expectedErr: "non-2xx response: 503 Service Unavailable: model is loading",
		},
		"missing-model": {
			req:         domain.ChatCompletionRequest{Messages: []domain.ChatMessage{{Role: domain.ChatRole_User, Content: "hi"}}},
			expectedErr: "model is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/engines/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer local-key", r.Header.Get("Authorization"))
				if tt.assertBody != nil {
					raw, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					var body map[string]any
					require.NoError(t, json.Unmarshal(raw, &body))
					tt.assertBody(t, body)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			completer := NewChatCompleter(NewDRMAPIClient(server.URL+"/engines", "local-key", server.Client()))
			assert.True(t, completer.Configured())

			got, err := completer.Complete(context.Background(), tt.req)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResp, got)
		})
	}
}

func TestChatCompleter_Configured(t *testing.T) {
	assert.False(t, NewChatCompleter(NewDRMAPIClient("", "", http.DefaultClient)).Configured())
}

func TestInitChatCompleter_Initialize(t *testing.T) {
	i := InitChatCompleter{
		HttpClient: http.DefaultClient,
		Provider:   ProviderName,
		ModelHost:  "http://localhost:12434/engines",
		APIKey:     "-",
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	completer, err := depend.Resolve[domain.ChatCompleter]()
	require.NoError(t, err)
	assert.IsType(t, ChatCompleter{}, completer)
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
