package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AzureClient talks to an Azure OpenAI chat-completions deployment.
type AzureClient struct {
	endpoint   string
	key        string
	deployment string
	apiVersion string
	httpClient *http.Client
}

// NewAzureClient is the constructor for the Azure OpenAI client.
func NewAzureClient(endpoint, key, deployment, apiVersion string, timeout time.Duration) (*AzureClient, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid azure endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid azure endpoint %q: scheme and host are required", endpoint)
	}
	if deployment == "" {
		return nil, fmt.Errorf("azure deployment name is required")
	}
	if apiVersion == "" {
		apiVersion = "2024-06-01"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &AzureClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		key:        key,
		deployment: deployment,
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// DTOs for the Azure OpenAI chat completions API
type azureRequest struct {
	Messages []azureMessage `json:"messages"`
}

type azureMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type azureResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string  `json:"role"`
			Content *string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (c *AzureClient) completionsURL() string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, url.PathEscape(c.deployment), url.QueryEscape(c.apiVersion))
}

// Complete makes an http call to the deployment's chat completions endpoint.
func (c *AzureClient) Complete(ctx context.Context, messages []Message) (*CompletionResponse, error) {
	apiReq := azureRequest{Messages: make([]azureMessage, len(messages))}
	for i, m := range messages {
		apiReq.Messages[i] = azureMessage{Role: string(m.Role), Content: m.Content}
	}

	reqBody, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("could not marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.completionsURL(), bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("could not create completion http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("azure openai returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var apiResp azureResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("could not decode completion response: %w", err)
	}

	out := &CompletionResponse{Model: apiResp.Model}
	for _, choice := range apiResp.Choices {
		if choice.Message.Content == nil {
			continue
		}
		out.Content = append(out.Content, ContentBlock{Type: ContentTypeText, Text: *choice.Message.Content})
	}
	return out, nil
}
