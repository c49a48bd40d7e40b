package assistant

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpecTool(t *testing.T, spec domain.ToolSpec) *domain.MockTool {
	tool := domain.NewMockTool(t)
	tool.EXPECT().Spec().Return(spec).Maybe()
	return tool
}

func TestToolSchemaBuilder_Build(t *testing.T) {
	tests := map[string]struct {
		spec domain.ToolSpec
		want domain.ToolSchema
	}{
		"declared-descriptions-and-defaults": {
			spec: domain.ToolSpec{
				Name:    "search_products",
				Summary: "Search for products in the catalog.",
				Params: []domain.ToolParam{
					{Name: "query", Kind: domain.ToolParamKind_String, Description: "Search term", Default: ""},
					{Name: "limit", Kind: domain.ToolParamKind_Integer, Description: "Max results"},
				},
			},
			want: domain.ToolSchema{
				Type: "function",
				Function: domain.ToolSchemaFunction{
					Name:        "search_products",
					Description: "Search for products in the catalog.",
					Parameters: domain.ToolSchemaParameters{
						Type: "object",
						Properties: map[string]domain.ToolSchemaProperty{
							"query": {Type: "string", Description: "Search term"},
							"limit": {Type: "integer", Description: "Max results"},
						},
						Required: []string{"limit"},
					},
				},
			},
		},
		"doc-scraped-descriptions": {
			spec: domain.ToolSpec{
				Name: "get_weather_forecast",
				Doc: `
    Get the forecast for a city.

    city: City name (e.g., New York: NY)
    days: Number of days`,
				Params: []domain.ToolParam{
					{Name: "city"},
					{Name: "days", Kind: domain.ToolParamKind_Integer, Default: 3},
					{Name: "units", Kind: "decimal", Default: "metric"},
				},
			},
			want: domain.ToolSchema{
				Type: "function",
				Function: domain.ToolSchemaFunction{
					Name:        "get_weather_forecast",
					Description: "Get the forecast for a city.",
					Parameters: domain.ToolSchemaParameters{
						Type: "object",
						Properties: map[string]domain.ToolSchemaProperty{
							"city":  {Type: "string", Description: "City name (e.g., New York: NY)"},
							"days":  {Type: "integer", Description: "Number of days"},
							"units": {Type: "string", Description: "Parameter: units"},
						},
						Required: []string{"city"},
					},
				},
			},
		},
		"no-docs-no-params": {
			spec: domain.ToolSpec{Name: "get_market_summary"},
			want: domain.ToolSchema{
				Type: "function",
				Function: domain.ToolSchemaFunction{
					Name:        "get_market_summary",
					Description: "Execute get_market_summary",
					Parameters: domain.ToolSchemaParameters{
						Type:       "object",
						Properties: map[string]domain.ToolSchemaProperty{},
						Required:   []string{},
					},
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NewToolSchemaBuilder().Build([]domain.Tool{newSpecTool(t, tt.spec)})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestToolSchemaBuilder_Build_PreservesOrder(t *testing.T) {
	tools := []domain.Tool{
		newSpecTool(t, domain.ToolSpec{Name: "b"}),
		newSpecTool(t, domain.ToolSpec{Name: "a"}),
		newSpecTool(t, domain.ToolSpec{Name: "c"}),
	}

	got := NewToolSchemaBuilder().Build(tools)

	names := make([]string, 0, len(got))
	for _, s := range got {
		names = append(names, s.Function.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
	assert.Empty(t, NewToolSchemaBuilder().Build(nil))
}

func TestToolSchemaBuilder_Build_WireShape(t *testing.T) {
	tool := newSpecTool(t, domain.ToolSpec{Name: "ping", Summary: "Ping."})

	b, err := json.Marshal(NewToolSchemaBuilder().Build([]domain.Tool{tool}))
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"type":"function","function":{"name":"ping","description":"Ping.","parameters":{"type":"object","properties":{},"required":[]}}}]`,
		string(b),
	)
}

func TestInitToolBridge_Initialize(t *testing.T) {
	i := InitToolBridge{}
	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)
}
