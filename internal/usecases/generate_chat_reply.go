package usecases

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/common"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"
)

const (
	ToolResultFormat_JSON = "json"
	ToolResultFormat_TOON = "toon"
)

//go:embed prompts/replies.yml
var repliesYAML []byte

// fixedReplies are the canned messages returned when no model answer is available.
type fixedReplies struct {
	SetupRequired string `yaml:"setup_required"`
	AuthError     string `yaml:"auth_error"`
	RateLimited   string `yaml:"rate_limited"`
	ProviderError string `yaml:"provider_error"`
}

var replies = mustLoadReplies()

func mustLoadReplies() fixedReplies {
	var r fixedReplies
	if err := yaml.Unmarshal(repliesYAML, &r); err != nil {
		panic(fmt.Errorf("failed to decode replies prompt: %w", err))
	}
	return r
}

// ChatReplyOptions tunes the completion requests of GenerateChatReply.
type ChatReplyOptions struct {
	Model          string
	Temperature    float64
	MaxTokens      int
	RequestTimeout time.Duration
	// HistoryLimit is the number of most recent history entries sent to the model.
	HistoryLimit int
	// MaxParallelTools bounds the concurrent tool calls of a single turn.
	MaxParallelTools int
	ResultFormat     string
}

// GenerateChatReply defines the interface for the GenerateChatReply use case
type GenerateChatReply interface {
	// Execute answers the user message as the given agent. It never fails:
	// provider and configuration faults are turned into reply messages.
	Execute(ctx context.Context, userMessage string, history []domain.ChatMessage, agent domain.AgentConfig, tools []domain.Tool) domain.ChatReply
}

// GenerateChatReplyImpl is the implementation of the GenerateChatReply use case
type GenerateChatReplyImpl struct {
	completer     domain.ChatCompleter
	schemaBuilder domain.ToolSchemaBuilder
	dispatcher    domain.ToolDispatcher
	opts          ChatReplyOptions
}

// NewGenerateChatReplyImpl creates a new instance of GenerateChatReplyImpl
func NewGenerateChatReplyImpl(
	completer domain.ChatCompleter,
	schemaBuilder domain.ToolSchemaBuilder,
	dispatcher domain.ToolDispatcher,
	opts ChatReplyOptions,
) GenerateChatReplyImpl {
	return GenerateChatReplyImpl{
		completer:     completer,
		schemaBuilder: schemaBuilder,
		dispatcher:    dispatcher,
		opts:          opts,
	}
}

// Execute runs the two-round tool-calling protocol: a first completion that
// may request tools, the tool dispatch, and a second completion without tools
// that sees the tool results.
func (g GenerateChatReplyImpl) Execute(ctx context.Context, userMessage string, history []domain.ChatMessage, agent domain.AgentConfig, tools []domain.Tool) domain.ChatReply {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	span.SetAttributes(telemetry.AttrAgentID.String(agent.ID))

	if !g.completer.Configured() {
		return domain.ChatReply{
			Content: replies.SetupRequired,
			Outcome: domain.ChatOutcome_SetupRequired,
		}
	}

	messages := g.buildTranscript(userMessage, history, agent)
	schemas := g.schemaBuilder.Build(tools)

	req := g.newRequest(messages)
	if len(schemas) > 0 {
		req.Tools = schemas
		req.ToolChoice = "auto"
	}

	first, err := g.complete(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return classifyProviderFault(err)
	}
	usage := first.Usage

	if len(first.ToolCalls) == 0 {
		return domain.ChatReply{
			Content: first.Content,
			Outcome: domain.ChatOutcome_Answered,
			Usage:   usage,
		}
	}

	messages = append(messages, domain.ChatMessage{
		Role:      domain.ChatRole_Assistant,
		Content:   first.Content,
		ToolCalls: first.ToolCalls,
	})

	results := g.dispatchToolCalls(spanCtx, first.ToolCalls, tools)
	invocations := make([]domain.ToolInvocation, 0, len(first.ToolCalls))
	for i, call := range first.ToolCalls {
		messages = append(messages, domain.ChatMessage{
			Role:       domain.ChatRole_Tool,
			Content:    g.encodeToolResult(results[i]),
			ToolCallID: common.Ptr(call.ID),
		})
		invocations = append(invocations, domain.ToolInvocation{
			ID:     call.ID,
			Name:   call.Name,
			Failed: results[i].IsError(),
		})
	}

	second, err := g.complete(spanCtx, g.newRequest(messages))
	if telemetry.RecordErrorAndStatus(span, err) {
		reply := classifyProviderFault(err)
		reply.ToolCalls = invocations
		reply.Usage = usage
		return reply
	}
	usage = usage.Add(second.Usage)

	return domain.ChatReply{
		Content:   second.Content,
		Outcome:   domain.ChatOutcome_ToolAssisted,
		ToolCalls: invocations,
		Usage:     usage,
	}
}

// buildTranscript returns the persona, the most recent history entries and
// the user message. Only the role and content of history entries are kept.
func (g GenerateChatReplyImpl) buildTranscript(userMessage string, history []domain.ChatMessage, agent domain.AgentConfig) []domain.ChatMessage {
	if g.opts.HistoryLimit >= 0 && len(history) > g.opts.HistoryLimit {
		history = history[len(history)-g.opts.HistoryLimit:]
	}

	messages := make([]domain.ChatMessage, 0, len(history)+2)
	messages = append(messages, domain.ChatMessage{
		Role:    domain.ChatRole_System,
		Content: agent.Persona,
	})
	for _, msg := range history {
		messages = append(messages, domain.ChatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	messages = append(messages, domain.ChatMessage{
		Role:    domain.ChatRole_User,
		Content: userMessage,
	})
	return messages
}

func (g GenerateChatReplyImpl) newRequest(messages []domain.ChatMessage) domain.ChatCompletionRequest {
	return domain.ChatCompletionRequest{
		Model:       g.opts.Model,
		Messages:    messages,
		Temperature: common.Ptr(g.opts.Temperature),
		MaxTokens:   common.Ptr(g.opts.MaxTokens),
	}
}

func (g GenerateChatReplyImpl) complete(ctx context.Context, req domain.ChatCompletionRequest) (domain.ChatCompletionResponse, error) {
	if g.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.RequestTimeout)
		defer cancel()
	}

	resp, err := g.completer.Complete(ctx, req)
	if err != nil {
		return domain.ChatCompletionResponse{}, err
	}
	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp, nil
}

// dispatchToolCalls invokes the requested tools concurrently. Results are
// returned in the order of the calls.
func (g GenerateChatReplyImpl) dispatchToolCalls(ctx context.Context, calls []domain.ToolCallRequest, tools []domain.Tool) []domain.ToolResult {
	results := make([]domain.ToolResult, len(calls))

	var eg errgroup.Group
	if g.opts.MaxParallelTools > 0 {
		eg.SetLimit(g.opts.MaxParallelTools)
	}
	for i, call := range calls {
		eg.Go(func() error {
			args, err := decodeToolArguments(call.Arguments)
			if err != nil {
				results[i] = domain.NewToolErrorResult("Tool execution failed: %s", err.Error())
				return nil
			}
			results[i] = g.dispatcher.Invoke(ctx, call.Name, tools, args)
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// decodeToolArguments parses the JSON arguments emitted by the model.
// Empty and null arguments are treated as no arguments.
func decodeToolArguments(raw string) (domain.ToolArguments, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return domain.ToolArguments{}, nil
	}

	var args domain.ToolArguments
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid tool arguments: %w", err)
	}
	if args == nil {
		return domain.ToolArguments{}, nil
	}
	return args, nil
}

// encodeToolResult serializes a tool result for the tool message content.
func (g GenerateChatReplyImpl) encodeToolResult(result domain.ToolResult) string {
	if g.opts.ResultFormat == ToolResultFormat_TOON {
		if s, err := toon.MarshalString(map[string]any(result), toon.WithLengthMarkers(true)); err == nil {
			return s
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Sprintf(`{"error": %s}`, strconv.Quote("Tool execution failed: "+err.Error()))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// classifyProviderFault maps a completion fault to a fixed reply by
// inspecting the fault message.
func classifyProviderFault(err error) domain.ChatReply {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "api_key"),
		strings.Contains(lower, "api key"),
		strings.Contains(lower, "authentication"):
		return domain.ChatReply{Content: replies.AuthError, Outcome: domain.ChatOutcome_AuthError}
	case strings.Contains(lower, "rate_limit"),
		strings.Contains(lower, "rate limit"):
		return domain.ChatReply{Content: replies.RateLimited, Outcome: domain.ChatOutcome_RateLimited}
	default:
		return domain.ChatReply{
			Content: fmt.Sprintf(replies.ProviderError, msg),
			Outcome: domain.ChatOutcome_ProviderError,
		}
	}
}

// InitGenerateChatReply is the initializer for the GenerateChatReply use case
type InitGenerateChatReply struct {
	Completer      domain.ChatCompleter     `resolve:""`
	SchemaBuilder  domain.ToolSchemaBuilder `resolve:""`
	Dispatcher     domain.ToolDispatcher    `resolve:""`
	Model          string                   `config:"LLM_MODEL" default:"gpt-4o-mini"`
	Temperature    string                   `config:"LLM_TEMPERATURE" default:"0.7"`
	MaxTokens      int                      `config:"LLM_MAX_TOKENS" default:"1000"`
	RequestTimeout time.Duration            `config:"LLM_REQUEST_TIMEOUT" default:"60s"`
	HistoryLimit   int                      `config:"CHAT_HISTORY_LIMIT" default:"10"`
	MaxParallel    int                      `config:"TOOL_MAX_PARALLEL" default:"4"`
	ResultFormat   string                   `config:"TOOL_RESULT_FORMAT" default:"json"`
}

// Initialize registers the GenerateChatReply use case in the dependency container
func (i InitGenerateChatReply) Initialize(ctx context.Context) (context.Context, error) {
	temperature, err := strconv.ParseFloat(i.Temperature, 64)
	if err != nil {
		return ctx, fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", i.Temperature, err)
	}

	format := strings.ToLower(i.ResultFormat)
	if format != ToolResultFormat_JSON && format != ToolResultFormat_TOON {
		return ctx, fmt.Errorf("invalid TOOL_RESULT_FORMAT %q: expected json or toon", i.ResultFormat)
	}

	depend.Register[GenerateChatReply](NewGenerateChatReplyImpl(
		i.Completer,
		i.SchemaBuilder,
		i.Dispatcher,
		ChatReplyOptions{
			Model:            i.Model,
			Temperature:      temperature,
			MaxTokens:        i.MaxTokens,
			RequestTimeout:   i.RequestTimeout,
			HistoryLimit:     i.HistoryLimit,
			MaxParallelTools: i.MaxParallel,
			ResultFormat:     format,
		},
	))
	return ctx, nil
}
