package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/assistant"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetTool struct{}

func (greetTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:    "greet",
		Summary: "Greet a person.",
		Params: []domain.ToolParam{
			{Name: "name", Kind: domain.ToolParamKind_String, Description: "Person name"},
			{Name: "excited", Kind: domain.ToolParamKind_Boolean, Description: "Add an exclamation mark", Default: false},
		},
	}
}

func (greetTool) Call(_ context.Context, args domain.ToolArguments) (domain.ToolResult, error) {
	name, _ := args["name"].(string)
	if name == "nobody" {
		return domain.ToolResult{"success": false, "error": "Nobody to greet"}, nil
	}
	greeting := "Hello, " + name
	if excited, _ := args["excited"].(bool); excited {
		greeting += "!"
	}
	return domain.ToolResult{"success": true, "greeting": greeting}, nil
}

var greeterAgent = domain.AgentConfig{
	ID:          "greeter",
	Name:        "GreetBot",
	Company:     "Hello Inc",
	Description: "Greets people",
	Tools:       []domain.Tool{greetTool{}},
}

func newAgentToolServer(t *testing.T) AgentToolServer {
	registry := domain.NewMockAgentRegistry(t)
	registry.EXPECT().IDs().Return([]string{"greeter"}).Maybe()
	registry.EXPECT().Get("greeter").Return(greeterAgent, nil).Maybe()

	return AgentToolServer{
		Logger:        log.New(io.Discard, "", 0),
		Registry:      registry,
		SchemaBuilder: assistant.NewToolSchemaBuilder(),
		Dispatcher:    assistant.NewToolDispatcher(time.Second),
	}
}

func connect(t *testing.T, server *mcp.Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() }) //nolint:errcheck

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() }) //nolint:errcheck
	return cs
}

func TestAgentToolServer_ListTools(t *testing.T) {
	s := newAgentToolServer(t)
	cs := connect(t, s.NewAgentServer(greeterAgent))

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Tools, 1)

	tool := res.Tools[0]
	assert.Equal(t, "greet", tool.Name)
	assert.Equal(t, "Greet a person.", tool.Description)

	schema, err := json.Marshal(tool.InputSchema)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"name":    {"type": "string", "description": "Person name"},
			"excited": {"type": "boolean", "description": "Add an exclamation mark"}
		},
		"required": ["name"]
	}`, string(schema))
}

func TestAgentToolServer_CallTool(t *testing.T) {
	tests := map[string]struct {
		toolName        string
		arguments       any
		expectedIsError bool
		expectedResult  domain.ToolResult
	}{
		"success-with-default": {
			toolName:       "greet",
			arguments:      map[string]any{"name": "Ada"},
			expectedResult: domain.ToolResult{"success": true, "greeting": "Hello, Ada"},
		},
		"success-with-all-arguments": {
			toolName:       "greet",
			arguments:      map[string]any{"name": "Ada", "excited": true},
			expectedResult: domain.ToolResult{"success": true, "greeting": "Hello, Ada!"},
		},
		"tool-reported-failure": {
			toolName:        "greet",
			arguments:       map[string]any{"name": "nobody"},
			expectedIsError: true,
			expectedResult:  domain.ToolResult{"success": false, "error": "Nobody to greet"},
		},
		"missing-required-argument": {
			toolName:        "greet",
			arguments:       map[string]any{},
			expectedIsError: true,
			expectedResult:  domain.ToolResult{"error": "Tool execution failed: greet() missing required argument(s): name"},
		},
		"unexpected-argument": {
			toolName:        "greet",
			arguments:       map[string]any{"name": "Ada", "mood": "happy"},
			expectedIsError: true,
			expectedResult:  domain.ToolResult{"error": "Tool execution failed: greet() got unexpected argument(s): mood"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newAgentToolServer(t)
			cs := connect(t, s.NewAgentServer(greeterAgent))

			res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      tt.toolName,
				Arguments: tt.arguments,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIsError, res.IsError)

			require.Len(t, res.Content, 1)
			text, ok := res.Content[0].(*mcp.TextContent)
			require.True(t, ok)

			var got domain.ToolResult
			require.NoError(t, json.Unmarshal([]byte(text.Text), &got))
			assert.Equal(t, tt.expectedResult, got)
		})
	}
}

func TestAgentToolServer_Handler(t *testing.T) {
	s := newAgentToolServer(t)
	httpServer := httptest.NewServer(s.Handler())
	defer httpServer.Close()

	t.Run("unknown-agent", func(t *testing.T) {
		resp, err := http.Post(httpServer.URL+"/mcp/ghost", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("streamable-session", func(t *testing.T) {
		ctx := context.Background()
		client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
		cs, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: httpServer.URL + "/mcp/greeter"}, nil)
		require.NoError(t, err)
		defer cs.Close() //nolint:errcheck

		assert.Equal(t, "greeter", cs.InitializeResult().ServerInfo.Name)

		res, err := cs.CallTool(ctx, &mcp.CallToolParams{
			Name:      "greet",
			Arguments: map[string]any{"name": "Grace"},
		})
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.JSONEq(t, `{"success":true,"greeting":"Hello, Grace"}`, res.Content[0].(*mcp.TextContent).Text)
	})
}
