package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inner-story/backend/internal/config"
	app_errors "inner-story/backend/internal/errors"
	"inner-story/backend/internal/model"
)

func TestAnthropicProvider(t *testing.T) {
	var capturedPath, capturedKey, capturedVersion string
	var capturedReq anthropicRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedKey = r.Header.Get("x-api-key")
		capturedVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedReq))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"content": [{"type": "text", "text": "I hear you"}],
			"usage": {"input_tokens": 20, "output_tokens": 8}
		}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	snap := config.ProviderSnapshot{AnthropicKey: "ak-test", AnthropicModel: "claude-3.5-sonnet"}
	provider := NewAnthropicProvider(snap, server.Client()).WithBaseURL(server.URL)
	ctx := context.Background()

	// A system-role message in the conversation must NOT reach the message
	// list: Anthropic takes system content through the top-level parameter.
	messages := []model.Message{
		{Role: "system", Content: "legacy instructions"},
		{Role: "user", Content: "Hi"},
	}

	resp, err := provider.GenerateChat(ctx, messages, 0.5, 400)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "/messages", capturedPath)
	assert.Equal(t, "ak-test", capturedKey)
	assert.Equal(t, "2023-06-01", capturedVersion)

	assert.Equal(t, "claude-3.5-sonnet", capturedReq.Model)
	assert.Equal(t, systemPreamble, capturedReq.System)
	assert.Equal(t, 400, capturedReq.MaxTokens)
	assert.Equal(t, 0.5, capturedReq.Temperature)
	require.Len(t, capturedReq.Messages, 1)
	assert.Equal(t, anthropicMessage{Role: "user", Content: "Hi"}, capturedReq.Messages[0])

	assert.Equal(t, "assistant", resp.Message.Role)
	assert.Equal(t, "I hear you", resp.Message.Content)
	assert.Equal(t, "anthropic", resp.Meta.Provider)
	require.NotNil(t, resp.Meta.Usage)
	assert.Equal(t, 20, resp.Meta.Usage.PromptTokens)
	assert.Equal(t, 8, resp.Meta.Usage.CompletionTokens)
	assert.Equal(t, 28, resp.Meta.Usage.TotalTokens)
}

func TestAnthropicProvider_MissingKey(t *testing.T) {
	snap := config.ProviderSnapshot{AnthropicModel: "claude-3.5-sonnet"}
	provider := NewAnthropicProvider(snap, http.DefaultClient)

	_, err := provider.GenerateChat(context.Background(), []model.Message{{Role: "user", Content: "Hi"}}, 0.7, 800)
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrConfiguration)
	assert.ErrorContains(t, err, "ANTHROPIC_API_KEY")
}

func TestAnthropicProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	snap := config.ProviderSnapshot{AnthropicKey: "ak-test", AnthropicModel: "claude-3.5-sonnet"}
	provider := NewAnthropicProvider(snap, server.Client()).WithBaseURL(server.URL)

	_, err := provider.GenerateChat(context.Background(), []model.Message{{Role: "user", Content: "Hi"}}, 0.7, 800)
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrProviderCall)
}
