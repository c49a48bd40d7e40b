package telemetry

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		ServiceName:     "agenthub-test",
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitHttpClient{
		Logger:       log.New(&strings.Builder{}, "", 0),
		RetryMax:     1,
		RetryWaitMax: 10 * time.Millisecond,
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	require.NoError(t, err)
	assert.NotNil(t, client.Transport)

	llmClient, err := depend.ResolveNamed[*http.Client](LLMHttpClientName)
	require.NoError(t, err)
	assert.NotNil(t, llmClient.Transport)
	assert.NotSame(t, client, llmClient)
}

func TestNewHttpClient_RetryPolicy(t *testing.T) {
	tests := map[string]struct {
		status        int
		expectedCalls int32
	}{
		"retries-service-unavailable": {
			status:        http.StatusServiceUnavailable,
			expectedCalls: 3,
		},
		"does-not-retry-internal-server-error": {
			status:        http.StatusInternalServerError,
			expectedCalls: 1,
		},
		"does-not-retry-not-found": {
			status:        http.StatusNotFound,
			expectedCalls: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewHttpClient(log.New(&strings.Builder{}, "", 0), 2, time.Millisecond)
			resp, err := client.Get(server.URL)
			if err == nil {
				resp.Body.Close() //nolint:errcheck
			}
			assert.Equal(t, tt.expectedCalls, calls.Load())
		})
	}
}

func TestNewLLMHttpClient_SingleAttempt(t *testing.T) {
	tests := map[string]struct {
		status int
		body   string
	}{
		"rate-limited": {
			status: http.StatusTooManyRequests,
			body:   `{"error":{"code":"rate_limit_exceeded"}}`,
		},
		"service-unavailable": {
			status: http.StatusServiceUnavailable,
			body:   `{"error":{"code":"server_overloaded"}}`,
		},
		"unauthorized": {
			status: http.StatusUnauthorized,
			body:   `{"error":{"code":"invalid_api_key"}}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewLLMHttpClient(log.New(&strings.Builder{}, "", 0))
			resp, err := client.Get(server.URL)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.body, string(raw))
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestNeverRetryPolicy(t *testing.T) {
	retry, err := neverRetryPolicy(context.Background(), &http.Response{StatusCode: http.StatusTooManyRequests}, nil)
	assert.False(t, retry)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	retry, err = neverRetryPolicy(ctx, nil, errors.New("boom"))
	assert.False(t, retry)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	policy := dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	retry, err := policy(ctx, nil, errors.New("boom"))
	assert.False(t, retry)
	assert.ErrorIs(t, err, context.Canceled)

	retry, _ = policy(context.Background(), nil, errors.New("connection refused"))
	assert.True(t, retry)
}
