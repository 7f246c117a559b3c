package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"inner-story/backend/internal/config"
	app_errors "inner-story/backend/internal/errors"
	"inner-story/backend/internal/model"
)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com/v1"

	// anthropicVersion pins the Messages API wire format; Anthropic requires
	// this header on every request.
	anthropicVersion = "2023-06-01"
)

type AnthropicProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewAnthropicProvider builds the Anthropic adapter from a configuration snapshot.
func NewAnthropicProvider(snap config.ProviderSnapshot, client *http.Client) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey:  snap.AnthropicKey,
		model:   snap.AnthropicModel,
		baseURL: anthropicDefaultBaseURL,
		client:  client,
	}
}

// WithBaseURL overrides the API base URL, for proxies and test servers.
func (p *AnthropicProvider) WithBaseURL(baseURL string) *AnthropicProvider {
	p.baseURL = baseURL
	return p
}

func (p *AnthropicProvider) Identity() Identity { return ProviderAnthropic }

// Wire structs for the Messages API.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage *struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// GenerateChat sends the conversation to the Messages API. Anthropic takes
// system content through a dedicated top-level parameter, so the safety
// preamble goes there and any system-role messages are filtered out of the
// message list.
func (p *AnthropicProvider) GenerateChat(ctx context.Context, messages []model.Message, temperature float64, maxTokens int) (*model.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is not set", app_errors.ErrConfiguration)
	}

	wireMessages := make([]anthropicMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role == "system" {
			continue
		}
		wireMessages = append(wireMessages, anthropicMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(anthropicRequest{
		Model:       p.model,
		System:      systemPreamble,
		Messages:    wireMessages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	start := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: anthropic: %v", app_errors.ErrProviderCall, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: anthropic: could not read response: %v", app_errors.ErrProviderCall, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: anthropic: status %d: %s", app_errors.ErrProviderCall, resp.StatusCode, string(respBody))
	}

	var msgResp anthropicResponse
	if err := json.Unmarshal(respBody, &msgResp); err != nil {
		return nil, fmt.Errorf("%w: anthropic: could not decode response: %v", app_errors.ErrProviderCall, err)
	}

	content := ""
	if len(msgResp.Content) > 0 {
		content = msgResp.Content[0].Text
	}

	var usage *model.Usage
	if msgResp.Usage != nil {
		usage = &model.Usage{
			PromptTokens:     msgResp.Usage.InputTokens,
			CompletionTokens: msgResp.Usage.OutputTokens,
			TotalTokens:      msgResp.Usage.InputTokens + msgResp.Usage.OutputTokens,
		}
	}

	return &model.ChatResponse{
		Message: model.Message{Role: "assistant", Content: content},
		Meta: model.ResponseMeta{
			Provider:       string(ProviderAnthropic),
			Model:          p.model,
			Usage:          usage,
			ProcessingTime: time.Since(start).Seconds(),
		},
	}, nil
}
