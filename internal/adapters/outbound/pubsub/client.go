package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitClient creates the Pub/Sub client. It is a no-op when PUBSUB_PROJECT_ID is not set.
type InitClient struct {
	Logger    *log.Logger `resolve:""`
	ProjectID string      `config:"PUBSUB_PROJECT_ID" default:"-"`
	client    *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		if i.ProjectID == "-" {
			i.Logger.Print("InitClient: PUBSUB_PROJECT_ID not set, pubsub client disabled")
			return ctx, nil
		}
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}
