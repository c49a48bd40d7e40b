package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var turnEvent = domain.ChatTurnCompletedEvent{
	ID:        uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
	Type:      domain.EventType_ChatTurnCompleted,
	SessionID: "session-1",
	AgentID:   "stock",
	Outcome:   domain.ChatOutcome_ToolAssisted,
	ToolCalls: []domain.ToolInvocation{
		{ID: "call_1", Name: "get_stock_price"},
	},
	Usage:       domain.LLMUsage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120},
	CompletedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
}

func newTestClient(t *testing.T, ctx context.Context) *pubsubV2.Client {
	t.Helper()
	server := pstest.NewServer()
	t.Cleanup(func() { server.Close() }) //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() }) //nolint:errcheck

	client, err := pubsubV2.NewClient(ctx, "test-project", option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() }) //nolint:errcheck
	return client
}

func TestTurnEventPublisher_PublishTurnCompleted(t *testing.T) {
	tests := map[string]struct {
		createTopic bool
		expectErr   bool
	}{
		"success-publish-event": {
			createTopic: true,
		},
		"error-topic-not-found": {
			createTopic: false,
			expectErr:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			client := newTestClient(t, ctx)
			subID := "chat-turn-events-sub"

			if tt.createTopic {
				topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
					Name: "projects/test-project/topics/chat-turn-events",
				})
				require.NoError(t, err)

				_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
					Name:  "projects/test-project/subscriptions/" + subID,
					Topic: topic.GetName(),
				})
				require.NoError(t, err)
			}

			publisher := NewTurnEventPublisher(client, "chat-turn-events")

			publishCtx, publishCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer publishCancel()

			err := publisher.PublishTurnCompleted(publishCtx, turnEvent)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			receiveCtx, receiveCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer receiveCancel()

			messages := make([]*pubsubV2.Message, 0)
			err = client.Subscriber(subID).Receive(receiveCtx, func(ctx context.Context, msg *pubsubV2.Message) {
				messages = append(messages, msg)
				msg.Ack()
			})
			if err != nil && err != context.DeadlineExceeded {
				t.Fatalf("failed to receive: %v", err)
			}

			require.Len(t, messages, 1)
			msg := messages[0]
			assert.Equal(t, domain.EventType_ChatTurnCompleted, msg.Attributes["event_type"])
			assert.Equal(t, "stock", msg.Attributes["agent_id"])
			assert.Equal(t, "session-1", msg.Attributes["session_id"])

			var got domain.ChatTurnCompletedEvent
			require.NoError(t, json.Unmarshal(msg.Data, &got))
			assert.Equal(t, turnEvent, got)
		})
	}
}

func TestLogTurnEventPublisher_PublishTurnCompleted(t *testing.T) {
	var buf bytes.Buffer
	publisher := NewLogTurnEventPublisher(log.New(&buf, "", 0))

	err := publisher.PublishTurnCompleted(context.Background(), turnEvent)
	assert.NoError(t, err)
	assert.Equal(t,
		"TurnEvent: CHAT_TURN_COMPLETED agent=stock session=session-1 outcome=tool_assisted tool_calls=1 total_tokens=120\n",
		buf.String(),
	)
}

func TestInitPublisher_Initialize(t *testing.T) {
	tests := map[string]struct {
		projectID    string
		registerFunc func(t *testing.T)
		expectedType any
	}{
		"pubsub-disabled": {
			projectID:    "-",
			expectedType: LogTurnEventPublisher{},
		},
		"pubsub-enabled": {
			projectID: "test-project",
			registerFunc: func(t *testing.T) {
				depend.Register(newTestClient(t, context.Background()))
			},
			expectedType: TurnEventPublisher{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.registerFunc != nil {
				tt.registerFunc(t)
			}
			init := InitPublisher{
				Logger:    log.New(&bytes.Buffer{}, "", 0),
				ProjectID: tt.projectID,
				Topic:     "chat-turn-events",
			}

			_, err := init.Initialize(context.Background())
			require.NoError(t, err)

			res, err := depend.Resolve[domain.ChatTurnEventPublisher]()
			require.NoError(t, err)
			assert.IsType(t, tt.expectedType, res)
		})
	}
}
