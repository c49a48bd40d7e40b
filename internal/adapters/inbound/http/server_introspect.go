package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// mermaidGraphDependency is the name the app registers the dependency graph under.
const mermaidGraphDependency = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS    embed.FS
	introspectTpl = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectAgent struct {
	ID    string
	Name  string
	Icon  string
	Tools []string
}

type introspectPage struct {
	Title  string
	Graph  string
	Agents []introspectAgent
}

// Introspect serves a debug page with the dependency graph and the tools
// each agent exposes.
func (api AgentHubServer) Introspect(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](mermaidGraphDependency)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	agents, err := api.ListAgentsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("AgentHubServer: introspect could not list agents: %v", err)
		http.Error(w, "Failed to list agents", http.StatusInternalServerError)
		return
	}

	page := introspectPage{
		Title:  "AgentHub Introspection",
		Graph:  graph,
		Agents: make([]introspectAgent, len(agents)),
	}
	for i, a := range agents {
		agent := toAgent(a)
		page.Agents[i] = introspectAgent{ID: agent.Id, Name: agent.Name, Icon: agent.Icon, Tools: agent.Tools}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := introspectTpl.Execute(w, page); err != nil {
		api.Logger.Printf("AgentHubServer: introspect render failed: %v", err)
	}
}
