package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inner-story/backend/internal/config"
	app_errors "inner-story/backend/internal/errors"
	"inner-story/backend/internal/model"
)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiProvider builds the Gemini adapter from a configuration snapshot.
func NewGeminiProvider(snap config.ProviderSnapshot, client *http.Client) *GeminiProvider {
	return &GeminiProvider{
		apiKey:  snap.GoogleKey,
		model:   snap.GeminiModel,
		baseURL: geminiDefaultBaseURL,
		client:  client,
	}
}

// WithBaseURL overrides the API base URL, for proxies and test servers.
func (p *GeminiProvider) WithBaseURL(baseURL string) *GeminiProvider {
	p.baseURL = baseURL
	return p
}

func (p *GeminiProvider) Identity() Identity { return ProviderGemini }

// Wire structs for the generateContent endpoint.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// flattenConversation renders the whole conversation as a single prompt
// string: the safety preamble as a "System:" prefix, then every message as
// "<role>: <content>" joined by newlines.
func flattenConversation(messages []model.Message) string {
	var b strings.Builder
	b.WriteString("System: ")
	b.WriteString(systemPreamble)
	b.WriteString("\n\n")
	for i, m := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}

// GenerateChat sends the flattened conversation to the generateContent
// endpoint. Gemini reports no usage counters here, so Meta.Usage stays nil
// rather than zero-filled.
func (p *GeminiProvider) GenerateChat(ctx context.Context, messages []model.Message, temperature float64, maxTokens int) (*model.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is not set", app_errors.ErrConfiguration)
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: flattenConversation(messages)}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxTokens,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	start := time.Now()
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %v", app_errors.ErrProviderCall, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: could not read response: %v", app_errors.ErrProviderCall, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gemini: status %d: %s", app_errors.ErrProviderCall, resp.StatusCode, string(respBody))
	}

	var genResp geminiResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, fmt.Errorf("%w: gemini: could not decode response: %v", app_errors.ErrProviderCall, err)
	}

	content := ""
	if len(genResp.Candidates) > 0 && len(genResp.Candidates[0].Content.Parts) > 0 {
		content = genResp.Candidates[0].Content.Parts[0].Text
	}

	return &model.ChatResponse{
		Message: model.Message{Role: "assistant", Content: content},
		Meta: model.ResponseMeta{
			Provider:       string(ProviderGemini),
			Model:          p.model,
			ProcessingTime: time.Since(start).Seconds(),
		},
	}, nil
}
