package domain

import (
	"context"
	"fmt"
)

// ToolParamKind is the wire type of a tool parameter.
type ToolParamKind string

const (
	ToolParamKind_String  ToolParamKind = "string"
	ToolParamKind_Integer ToolParamKind = "integer"
	ToolParamKind_Number  ToolParamKind = "number"
	ToolParamKind_Boolean ToolParamKind = "boolean"
)

// Valid reports whether k is one of the supported kinds.
func (k ToolParamKind) Valid() bool {
	switch k {
	case ToolParamKind_String, ToolParamKind_Integer, ToolParamKind_Number, ToolParamKind_Boolean:
		return true
	}
	return false
}

// ToolParam declares one named parameter of a tool.
type ToolParam struct {
	Name        string
	Kind        ToolParamKind
	Description string
	// Default is applied when the model omits the parameter.
	// A nil Default makes the parameter required.
	Default any
}

// Required reports whether the parameter has no default value.
func (p ToolParam) Required() bool {
	return p.Default == nil
}

// ToolSpec is the declarative description of a tool.
type ToolSpec struct {
	Name    string
	Summary string
	// Doc is free-form documentation. Lines of the form "<param>: <text>"
	// describe parameters that carry no Description of their own.
	Doc    string
	Params []ToolParam
}

// Param returns the parameter with the given name.
func (s ToolSpec) Param(name string) (ToolParam, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ToolParam{}, false
}

// ToolSchema is the function-calling schema of a tool, in the shape
// expected by OpenAI compatible chat-completion APIs.
type ToolSchema struct {
	Type     string             `json:"type"`
	Function ToolSchemaFunction `json:"function"`
}

// ToolSchemaFunction describes the function of a ToolSchema.
type ToolSchemaFunction struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  ToolSchemaParameters `json:"parameters"`
}

// ToolSchemaParameters is the JSON schema object of the function parameters.
type ToolSchemaParameters struct {
	Type       string                        `json:"type"`
	Properties map[string]ToolSchemaProperty `json:"properties"`
	Required   []string                      `json:"required"`
}

// ToolSchemaProperty describes a single parameter.
type ToolSchemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ToolArguments are the named arguments of a tool call.
type ToolArguments map[string]any

// ToolResult is the structured outcome of a tool call.
type ToolResult map[string]any

// NewToolErrorResult creates a ToolResult carrying only an error message.
func NewToolErrorResult(format string, args ...any) ToolResult {
	return ToolResult{"error": fmt.Sprintf(format, args...)}
}

// IsError reports whether the result carries an error or an explicit
// success=false flag.
func (r ToolResult) IsError() bool {
	if _, ok := r["error"]; ok {
		return true
	}
	if success, ok := r["success"].(bool); ok && !success {
		return true
	}
	return false
}

// Tool is a named data-retrieval operation the model may call.
//
// Call returns an error only for unexpected faults. Intentional failures,
// like an unknown product or an upstream without data, are reported as a
// ToolResult with success=false.
type Tool interface {
	Spec() ToolSpec
	Call(ctx context.Context, args ToolArguments) (ToolResult, error)
}

// ToolSchemaBuilder converts tools into function-calling schemas.
type ToolSchemaBuilder interface {
	Build(tools []Tool) []ToolSchema
}

// ToolDispatcher invokes a tool by name. It never fails: unknown tools and
// tool faults are converted into error results.
type ToolDispatcher interface {
	Invoke(ctx context.Context, name string, tools []Tool, args ToolArguments) ToolResult
}
