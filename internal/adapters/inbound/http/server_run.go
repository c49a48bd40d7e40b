package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont-agenthub/internal/usecases"
	"github.com/rs/cors"
)

var _ gen.ServerInterface = (*AgentHubServer)(nil)

// AgentHubServer is the REST API HTTP server of the AgentHub application.
type AgentHubServer struct {
	Port                    int                       `config:"HTTP_PORT" default:"8080"`
	Logger                  *log.Logger               `resolve:""`
	ListAgentsUseCase       usecases.ListAgents       `resolve:""`
	GetAgentUseCase         usecases.GetAgent         `resolve:""`
	ChatWithAgentUseCase    usecases.ChatWithAgent    `resolve:""`
	ListChatMessagesUseCase usecases.ListChatMessages `resolve:""`
	ClearChatSessionUseCase usecases.ClearChatSession `resolve:""`
}

// Handler builds the HTTP handler with every route of the server.
func (api AgentHubServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /introspect", api.Introspect)

	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("agenthub-api"),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			respondError(w, gen.ErrorResp{
				Error: gen.Error{
					Code:    gen.BADREQUEST,
					Message: err.Error(),
				},
			})
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the AgentHubServer.
func (api AgentHubServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AgentHubServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AgentHubServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AgentHubServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the AgentHubServer is ready by listing the agents.
func (api AgentHubServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/api/v1/agents", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
