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

// TestOpenAIProvider is a unit test for our OpenAI HTTP client implementation.
//
// GOAL: To verify that the adapter sends a correctly shaped chat completions
// request (auth header, safety preamble threaded as a leading system message)
// and normalizes the vendor response into our model types.
//
// TECHNIQUE: We use `net/http/httptest` as a stand-in for the real OpenAI API,
// so the client's logic is tested in complete isolation without network calls.
func TestOpenAIProvider(t *testing.T) {
	var capturedPath, capturedAuth string
	var capturedReq openaiChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedReq))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "Hello there"}}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
		}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	snap := config.ProviderSnapshot{OpenAIKey: "sk-test", OpenAIModel: "gpt-4o"}
	provider := NewOpenAIProvider(snap, server.Client()).WithBaseURL(server.URL)
	ctx := context.Background()

	messages := []model.Message{{Role: "user", Content: "Hi"}}

	resp, err := provider.GenerateChat(ctx, messages, 0.7, 800)
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Request shape.
	assert.Equal(t, "/chat/completions", capturedPath)
	assert.Equal(t, "Bearer sk-test", capturedAuth)
	assert.Equal(t, "gpt-4o", capturedReq.Model)
	assert.Equal(t, 0.7, capturedReq.Temperature)
	assert.Equal(t, 800, capturedReq.MaxTokens)

	// The safety preamble must come first, as a system message, followed by
	// the caller's conversation untouched.
	require.Len(t, capturedReq.Messages, 2)
	assert.Equal(t, "system", capturedReq.Messages[0].Role)
	assert.Equal(t, systemPreamble, capturedReq.Messages[0].Content)
	assert.Equal(t, openaiMessage{Role: "user", Content: "Hi"}, capturedReq.Messages[1])

	// Normalized response.
	assert.Equal(t, "assistant", resp.Message.Role)
	assert.Equal(t, "Hello there", resp.Message.Content)
	assert.Equal(t, "openai", resp.Meta.Provider)
	assert.Equal(t, "gpt-4o", resp.Meta.Model)
	require.NotNil(t, resp.Meta.Usage)
	assert.Equal(t, 12, resp.Meta.Usage.PromptTokens)
	assert.Equal(t, 5, resp.Meta.Usage.CompletionTokens)
	assert.Equal(t, 17, resp.Meta.Usage.TotalTokens)
	assert.GreaterOrEqual(t, resp.Meta.ProcessingTime, 0.0)
}

func TestOpenAIProvider_MissingKey(t *testing.T) {
	snap := config.ProviderSnapshot{OpenAIModel: "gpt-4o"}
	provider := NewOpenAIProvider(snap, http.DefaultClient)

	_, err := provider.GenerateChat(context.Background(), []model.Message{{Role: "user", Content: "Hi"}}, 0.7, 800)
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrConfiguration)
	assert.ErrorContains(t, err, "OPENAI_API_KEY")
}

func TestOpenAIProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, err := w.Write([]byte(`{"error": {"message": "rate limited"}}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	snap := config.ProviderSnapshot{OpenAIKey: "sk-test", OpenAIModel: "gpt-4o"}
	provider := NewOpenAIProvider(snap, server.Client()).WithBaseURL(server.URL)

	_, err := provider.GenerateChat(context.Background(), []model.Message{{Role: "user", Content: "Hi"}}, 0.7, 800)
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrProviderCall)
	assert.ErrorContains(t, err, "429")
}
