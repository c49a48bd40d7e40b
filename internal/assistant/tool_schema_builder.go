package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// ToolSchemaBuilder converts tool specs into function-calling schemas.
type ToolSchemaBuilder struct{}

// NewToolSchemaBuilder creates a ToolSchemaBuilder.
func NewToolSchemaBuilder() ToolSchemaBuilder {
	return ToolSchemaBuilder{}
}

// Build returns one schema per tool, preserving tool and parameter order.
// Parameters without a default are required.
func (b ToolSchemaBuilder) Build(tools []domain.Tool) []domain.ToolSchema {
	schemas := make([]domain.ToolSchema, 0, len(tools))
	for _, tool := range tools {
		schemas = append(schemas, b.buildOne(tool.Spec()))
	}
	return schemas
}

func (b ToolSchemaBuilder) buildOne(spec domain.ToolSpec) domain.ToolSchema {
	params := domain.ToolSchemaParameters{
		Type:       "object",
		Properties: make(map[string]domain.ToolSchemaProperty, len(spec.Params)),
		Required:   []string{},
	}

	for _, p := range spec.Params {
		params.Properties[p.Name] = domain.ToolSchemaProperty{
			Type:        string(paramKind(p.Kind)),
			Description: paramDescription(spec, p),
		}
		if p.Required() {
			params.Required = append(params.Required, p.Name)
		}
	}

	return domain.ToolSchema{
		Type: "function",
		Function: domain.ToolSchemaFunction{
			Name:        spec.Name,
			Description: toolSummary(spec),
			Parameters:  params,
		},
	}
}

// paramKind falls back to string for unset or unsupported kinds.
func paramKind(kind domain.ToolParamKind) domain.ToolParamKind {
	if kind.Valid() {
		return kind
	}
	return domain.ToolParamKind_String
}

func toolSummary(spec domain.ToolSpec) string {
	if s := strings.TrimSpace(spec.Summary); s != "" {
		return s
	}
	for _, line := range strings.Split(spec.Doc, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return fmt.Sprintf("Execute %s", spec.Name)
}

// paramDescription prefers the declared description. Otherwise it scans the
// doc for the first line containing "<name>:" and uses the text after that
// line's first colon.
func paramDescription(spec domain.ToolSpec, p domain.ToolParam) string {
	if d := strings.TrimSpace(p.Description); d != "" {
		return d
	}
	marker := p.Name + ":"
	for _, line := range strings.Split(spec.Doc, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		_, after, _ := strings.Cut(line, ":")
		return strings.TrimSpace(after)
	}
	return fmt.Sprintf("Parameter: %s", p.Name)
}

// InitToolBridge registers the ToolSchemaBuilder and the ToolDispatcher.
type InitToolBridge struct {
	CallTimeout time.Duration `config:"TOOL_CALL_TIMEOUT" default:"30s"`
}

// Initialize registers the tool bridge components in the dependency container.
func (i InitToolBridge) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ToolSchemaBuilder](NewToolSchemaBuilder())
	depend.Register[domain.ToolDispatcher](NewToolDispatcher(i.CallTimeout))
	return ctx, nil
}
