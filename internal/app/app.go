package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/outbound/openai"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/outbound/openmeteo"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-agenthub/internal/adapters/outbound/yahoofinance"
	"github.com/cleitonmarx/symbiont-agenthub/internal/assistant"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont-agenthub/internal/usecases"
)

// NewAgentHubApp creates and returns a new instance of the AgentHub application.
func NewAgentHubApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&time.InitCurrentTimeProvider{},
			&memory.InitChatHistoryRepository{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&openai.InitChatCompleter{},
			&modelrunner.InitChatCompleter{},
			&yahoofinance.InitQuoteFetcher{},
			&openmeteo.InitWeatherFetcher{},

			&assistant.InitToolBridge{},
			&assistant.InitAgentRegistry{},

			&usecases.InitGenerateChatReply{},
			&usecases.InitChatWithAgent{},
			&usecases.InitListAgents{},
			&usecases.InitGetAgent{},
			&usecases.InitListChatMessages{},
			&usecases.InitClearChatSession{},
			&usecases.InitEvictIdleSessions{},
		).
		Host(
			&http.AgentHubServer{},
			&mcp.AgentToolServer{},
			&workers.SessionJanitor{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
