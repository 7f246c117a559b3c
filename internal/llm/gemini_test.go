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

func TestGeminiProvider(t *testing.T) {
	var capturedPath, capturedKey string
	var capturedReq geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedReq))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"candidates": [{"content": {"parts": [{"text": "That sounds hard"}]}}]
		}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	snap := config.ProviderSnapshot{GoogleKey: "gk-test", GeminiModel: "gemini-1.5-flash"}
	provider := NewGeminiProvider(snap, server.Client()).WithBaseURL(server.URL)
	ctx := context.Background()

	messages := []model.Message{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello"},
	}

	resp, err := provider.GenerateChat(ctx, messages, 0.9, 256)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", capturedPath)
	assert.Equal(t, "gk-test", capturedKey)

	assert.Equal(t, 0.9, capturedReq.GenerationConfig.Temperature)
	assert.Equal(t, 256, capturedReq.GenerationConfig.MaxOutputTokens)

	// The whole conversation goes up as one flattened prompt, preamble first.
	require.Len(t, capturedReq.Contents, 1)
	require.Len(t, capturedReq.Contents[0].Parts, 1)
	prompt := capturedReq.Contents[0].Parts[0].Text
	assert.Equal(t, "System: "+systemPreamble+"\n\nuser: Hi\nassistant: Hello", prompt)

	assert.Equal(t, "assistant", resp.Message.Role)
	assert.Equal(t, "That sounds hard", resp.Message.Content)
	assert.Equal(t, "gemini", resp.Meta.Provider)
	// generateContent reports no usage counters; the field stays nil.
	assert.Nil(t, resp.Meta.Usage)
}

func TestGeminiProvider_MissingKey(t *testing.T) {
	snap := config.ProviderSnapshot{GeminiModel: "gemini-1.5-flash"}
	provider := NewGeminiProvider(snap, http.DefaultClient)

	_, err := provider.GenerateChat(context.Background(), []model.Message{{Role: "user", Content: "Hi"}}, 0.7, 800)
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrConfiguration)
	assert.ErrorContains(t, err, "GOOGLE_API_KEY")
}

func TestGeminiProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, err := w.Write([]byte(`{"error": {"message": "invalid model"}}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	snap := config.ProviderSnapshot{GoogleKey: "gk-test", GeminiModel: "gemini-1.5-flash"}
	provider := NewGeminiProvider(snap, server.Client()).WithBaseURL(server.URL)

	_, err := provider.GenerateChat(context.Background(), []model.Message{{Role: "user", Content: "Hi"}}, 0.7, 800)
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrProviderCall)
}
