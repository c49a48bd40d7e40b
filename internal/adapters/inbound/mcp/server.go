// Package mcp exposes the agent toolsets over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "1.0.0"

// AgentToolServer serves one streamable-HTTP MCP endpoint per agent at /mcp/{agent_id}.
type AgentToolServer struct {
	Port          int                      `config:"MCP_PORT" default:"8090"`
	Logger        *log.Logger              `resolve:""`
	Registry      domain.AgentRegistry     `resolve:""`
	SchemaBuilder domain.ToolSchemaBuilder `resolve:""`
	Dispatcher    domain.ToolDispatcher    `resolve:""`
}

// NewAgentServer creates the MCP server exposing the tools of the agent.
func (s AgentToolServer) NewAgentServer(agent domain.AgentConfig) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    agent.ID,
		Title:   fmt.Sprintf("%s (%s)", agent.Name, agent.Company),
		Version: serverVersion,
	}, &mcp.ServerOptions{
		Instructions: agent.Description,
	})

	for _, schema := range s.SchemaBuilder.Build(agent.Tools) {
		server.AddTool(&mcp.Tool{
			Name:        schema.Function.Name,
			Description: schema.Function.Description,
			InputSchema: schema.Function.Parameters,
		}, s.toolHandler(agent, schema.Function.Name))
	}
	return server
}

func (s AgentToolServer) toolHandler(agent domain.AgentConfig, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := domain.ToolArguments{}
		if raw := req.Params.Arguments; len(raw) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				return toCallToolResult(domain.NewToolErrorResult("Invalid arguments for %s: %v", name, err))
			}
			if args == nil {
				args = domain.ToolArguments{}
			}
		}
		return toCallToolResult(s.Dispatcher.Invoke(ctx, name, agent.Tools, args))
	}
}

func toCallToolResult(result domain.ToolResult) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	_, hasError := result["error"]
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
		IsError: hasError,
	}, nil
}

// Handler builds the HTTP handler routing /mcp/{agent_id} to the agent MCP server.
func (s AgentToolServer) Handler() http.Handler {
	servers := make(map[string]*mcp.Server)
	for _, id := range s.Registry.IDs() {
		agent, err := s.Registry.Get(id)
		if err != nil {
			continue
		}
		servers[id] = s.NewAgentServer(agent)
	}

	streamable := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return servers[r.PathValue("agent_id")]
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp/{agent_id}", telemetry.HttpHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agentID := r.PathValue("agent_id")
		if _, ok := servers[agentID]; !ok {
			http.Error(w, fmt.Sprintf("agent '%s' not found", agentID), http.StatusNotFound)
			return
		}
		streamable.ServeHTTP(w, r)
	}), "agenthub-mcp"))
	return mux
}

// Run starts the MCP HTTP server.
func (s AgentToolServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("AgentToolServer: Listening on port %d", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Printf("AgentToolServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("AgentToolServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}
