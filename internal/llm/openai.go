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

const openaiDefaultBaseURL = "https://api.openai.com/v1"

type OpenAIProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAIProvider builds the OpenAI adapter from a configuration snapshot.
func NewOpenAIProvider(snap config.ProviderSnapshot, client *http.Client) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:  snap.OpenAIKey,
		model:   snap.OpenAIModel,
		baseURL: openaiDefaultBaseURL,
		client:  client,
	}
}

// WithBaseURL overrides the API base URL, for proxies and test servers.
func (p *OpenAIProvider) WithBaseURL(baseURL string) *OpenAIProvider {
	p.baseURL = baseURL
	return p
}

func (p *OpenAIProvider) Identity() Identity { return ProviderOpenAI }

// Wire structs for the chat completions endpoint.
type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openaiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type openaiChatResponse struct {
	Choices []struct {
		Message openaiMessage `json:"message"`
	} `json:"choices"`
	Usage *openaiUsage `json:"usage"`
}

// GenerateChat sends the conversation to the chat completions endpoint with
// the safety preamble prepended as a leading system message.
func (p *OpenAIProvider) GenerateChat(ctx context.Context, messages []model.Message, temperature float64, maxTokens int) (*model.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", app_errors.ErrConfiguration)
	}

	wireMessages := make([]openaiMessage, 0, len(messages)+1)
	wireMessages = append(wireMessages, openaiMessage{Role: "system", Content: systemPreamble})
	for _, m := range messages {
		wireMessages = append(wireMessages, openaiMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(openaiChatRequest{
		Model:       p.model,
		Messages:    wireMessages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	start := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %v", app_errors.ErrProviderCall, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: openai: could not read response: %v", app_errors.ErrProviderCall, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: openai: status %d: %s", app_errors.ErrProviderCall, resp.StatusCode, string(respBody))
	}

	var chatResp openaiChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("%w: openai: could not decode response: %v", app_errors.ErrProviderCall, err)
	}

	content := ""
	if len(chatResp.Choices) > 0 {
		content = chatResp.Choices[0].Message.Content
	}

	var usage *model.Usage
	if chatResp.Usage != nil {
		usage = &model.Usage{
			PromptTokens:     chatResp.Usage.PromptTokens,
			CompletionTokens: chatResp.Usage.CompletionTokens,
			TotalTokens:      chatResp.Usage.TotalTokens,
		}
	}

	return &model.ChatResponse{
		Message: model.Message{Role: "assistant", Content: content},
		Meta: model.ResponseMeta{
			Provider:       string(ProviderOpenAI),
			Model:          p.model,
			Usage:          usage,
			ProcessingTime: time.Since(start).Seconds(),
		},
	}, nil
}
