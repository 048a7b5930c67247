package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/llmshell/llmshell/internal/domain"
)

// knownProviders enumerates the OpenAI-compatible endpoints llmshell can
// talk to. All of them accept the chat-completions wire format.
var knownProviders = map[string]string{
	"openai":   "https://api.openai.com/v1",
	"deepseek": "https://api.deepseek.com/v1",
	"doubao":   "https://api.doubao.com/v1",
	"qwen":     "https://dashscope.aliyuncs.com/api/v1",
}

// chatClient issues chat-completion requests against one provider endpoint.
type chatClient struct {
	provider   domain.ProviderSettings
	apiKey     string
	httpClient *http.Client
}

// newChatClient validates the provider name and binds the credential.
func newChatClient(provider domain.ProviderSettings, apiKey string, httpClient *http.Client) (*chatClient, error) {
	if _, ok := knownProviders[strings.ToLower(provider.Name)]; !ok {
		return nil, fmt.Errorf("unsupported provider: %s", provider.Name)
	}
	return &chatClient{
		provider:   provider,
		apiKey:     apiKey,
		httpClient: httpClient,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one request and returns the first choice's message content.
func (c *chatClient) Complete(ctx context.Context, userInput string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.provider.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userInput},
		},
		Temperature: c.provider.Temperature,
		MaxTokens:   domain.DefaultMaxTokens,
	})
	if err != nil {
		return "", err
	}

	endpoint := c.endpoint()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%s: %s", c.provider.Name, resp.Status)
	}

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(responseBody.Bytes(), &parsed); err != nil {
		return "", fmt.Errorf("%s: malformed response: %w", c.provider.Name, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%s: empty response", c.provider.Name)
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func (c *chatClient) endpoint() string {
	base := c.provider.BaseURL
	if base == "" {
		base = knownProviders[strings.ToLower(c.provider.Name)]
	}
	return strings.TrimRight(base, "/") + "/chat/completions"
}
