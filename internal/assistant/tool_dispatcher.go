package assistant

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// ToolDispatcher invokes tools by name on behalf of the model.
type ToolDispatcher struct {
	callTimeout time.Duration
}

// NewToolDispatcher creates a ToolDispatcher. A positive callTimeout bounds
// every tool call.
func NewToolDispatcher(callTimeout time.Duration) ToolDispatcher {
	return ToolDispatcher{callTimeout: callTimeout}
}

// Invoke calls the named tool with the given arguments. It never fails:
// an unknown name, invalid arguments, a returned error, a panic or a
// timeout are all converted into an error result.
func (d ToolDispatcher) Invoke(ctx context.Context, name string, tools []domain.Tool, args domain.ToolArguments) domain.ToolResult {
	spanCtx, span := telemetry.StartNamed(ctx, "tool::"+name,
		trace.WithAttributes(telemetry.AttrToolName.String(name)),
	)
	defer span.End()

	start := time.Now()

	lookup := make(map[string]domain.Tool, len(tools))
	for _, t := range tools {
		lookup[t.Spec().Name] = t
	}

	tool, ok := lookup[name]
	if !ok {
		recordToolInvocation(spanCtx, name, toolOutcome_NotFound, time.Since(start))
		span.SetAttributes(telemetry.AttrToolOutcome.String(toolOutcome_NotFound))
		return domain.NewToolErrorResult("Tool '%s' not found", name)
	}

	result, err := d.call(spanCtx, tool, args)
	if telemetry.RecordErrorAndStatus(span, err) {
		recordToolInvocation(spanCtx, name, toolOutcome_Failed, time.Since(start))
		return domain.NewToolErrorResult("Tool execution failed: %s", err.Error())
	}

	outcome := toolOutcome_Succeeded
	if result.IsError() {
		outcome = toolOutcome_Rejected
	}
	recordToolInvocation(spanCtx, name, outcome, time.Since(start))
	span.SetAttributes(telemetry.AttrToolOutcome.String(outcome))

	return result
}

type callOutcome struct {
	result domain.ToolResult
	err    error
}

func (d ToolDispatcher) call(ctx context.Context, tool domain.Tool, args domain.ToolArguments) (domain.ToolResult, error) {
	bound, err := bindArguments(tool.Spec(), args)
	if err != nil {
		return nil, err
	}

	callCtx := ctx
	if d.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, d.callTimeout)
		defer cancel()
	}

	done := make(chan callOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callOutcome{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		result, err := tool.Call(callCtx, bound)
		done <- callOutcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-callCtx.Done():
		return nil, callCtx.Err()
	}
}

// bindArguments matches the model supplied arguments against the tool spec
// and applies the declared defaults for omitted optional parameters.
func bindArguments(spec domain.ToolSpec, args domain.ToolArguments) (domain.ToolArguments, error) {
	var unexpected []string
	for name := range args {
		if _, ok := spec.Param(name); !ok {
			unexpected = append(unexpected, name)
		}
	}
	if len(unexpected) > 0 {
		slices.Sort(unexpected)
		return nil, fmt.Errorf("%s() got unexpected argument(s): %s", spec.Name, strings.Join(unexpected, ", "))
	}

	bound := make(domain.ToolArguments, len(spec.Params))
	var missing []string
	for _, p := range spec.Params {
		if v, ok := args[p.Name]; ok {
			bound[p.Name] = v
			continue
		}
		if p.Required() {
			missing = append(missing, p.Name)
			continue
		}
		bound[p.Name] = p.Default
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s() missing required argument(s): %s", spec.Name, strings.Join(missing, ", "))
	}
	return bound, nil
}
