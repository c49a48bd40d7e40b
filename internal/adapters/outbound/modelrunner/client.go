// Package modelrunner provides a chat completer for OpenAI-compatible
// endpoints such as Docker Model Runner or a llama.cpp server.
package modelrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DRMAPIClient is a thin client for OpenAI-compatible chat completion APIs
type DRMAPIClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewDRMAPIClient creates a new client
func NewDRMAPIClient(baseURL string, apiKey string, httpClient *http.Client) DRMAPIClient {
	return DRMAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// Chat sends a non-streaming request
func (c DRMAPIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}

	httpReq, err := c.newPostRequest(ctx, "/v1/chat/completions", req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp.Status, respBody)
	}

	var out ChatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &out, nil
}

// responseError keeps the error code of OpenAI-style error bodies in the
// message so callers can tell authentication and rate limit faults apart.
func responseError(status string, body []byte) error {
	var errResp ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
		if code, ok := errResp.Error.Code.(string); ok && code != "" {
			return fmt.Errorf("non-2xx response: %s: %s: %s", status, code, errResp.Error.Message)
		}
		return fmt.Errorf("non-2xx response: %s: %s", status, errResp.Error.Message)
	}
	return fmt.Errorf("non-2xx response: %s: %s", status, string(body))
}

func (c DRMAPIClient) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}
