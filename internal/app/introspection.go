package app

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs the configuration keys read at startup.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect logs every configuration key and whether its default value was used.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.Default()
	}
	for _, c := range r.Configs {
		source := "provided"
		if c.UsedDefault {
			source = "default"
		}
		logger.Printf("AgentHub: config %s (%s)", c.Key, source)
	}
	return nil
}
