package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inner-story/backend/internal/config"
	app_errors "inner-story/backend/internal/errors"
	"inner-story/backend/internal/llm"
	mock_llm "inner-story/backend/internal/llm/mocks"
	"inner-story/backend/internal/model"
	"inner-story/backend/internal/service"
)

// setupChatService wires a ChatService whose three provider slots all resolve
// to the given mock, against a fixed configuration snapshot.
func setupChatService(t *testing.T, snap config.ProviderSnapshot) (*service.ChatService, *mock_llm.MockProvider) {
	provider := mock_llm.NewMockProvider(t)

	registry := llm.NewRegistry(http.DefaultClient)
	builder := func(config.ProviderSnapshot, *http.Client) llm.Provider { return provider }
	for _, id := range llm.Identities() {
		registry.WithBuilder(id, builder)
	}

	chatService := service.NewChatService(registry, func() config.ProviderSnapshot { return snap })
	return chatService, provider
}

func TestChatService_HandleChat(t *testing.T) {
	ctx := context.Background()
	snap := config.ProviderSnapshot{OpenAIKey: "sk", OpenAIModel: "gpt-4o"}

	t.Run("Success - defaults applied", func(t *testing.T) {
		chatService, provider := setupChatService(t, snap)

		messages := []model.Message{{Role: "user", Content: "Hi"}}
		expected := &model.ChatResponse{Message: model.Message{Role: "assistant", Content: "Hello"}}

		provider.On("GenerateChat", ctx, messages, service.DefaultTemperature, service.DefaultMaxTokens).
			Return(expected, nil).Once()

		resp, err := chatService.HandleChat(ctx, &model.ChatRequest{Messages: messages})
		require.NoError(t, err)
		assert.Equal(t, expected, resp)
	})

	t.Run("Success - explicit knobs forwarded", func(t *testing.T) {
		chatService, provider := setupChatService(t, snap)

		messages := []model.Message{{Role: "user", Content: "Hi"}}
		temperature := 0.2
		maxTokens := 64

		provider.On("GenerateChat", ctx, messages, 0.2, 64).
			Return(&model.ChatResponse{}, nil).Once()

		_, err := chatService.HandleChat(ctx, &model.ChatRequest{
			Messages:    messages,
			Temperature: &temperature,
			MaxTokens:   &maxTokens,
		})
		assert.NoError(t, err)
	})

	t.Run("Failure - empty messages rejected before dispatch", func(t *testing.T) {
		// No expectations are set on the provider: a validation failure must
		// never reach an adapter.
		chatService, provider := setupChatService(t, snap)

		_, err := chatService.HandleChat(ctx, &model.ChatRequest{Messages: []model.Message{}})
		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		provider.AssertNotCalled(t, "GenerateChat", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - assistant-first conversation rejected", func(t *testing.T) {
		chatService, provider := setupChatService(t, snap)

		_, err := chatService.HandleChat(ctx, &model.ChatRequest{
			Messages: []model.Message{{Role: "assistant", Content: "Hello"}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		provider.AssertNotCalled(t, "GenerateChat", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - provider error surfaces unchanged", func(t *testing.T) {
		chatService, provider := setupChatService(t, snap)

		messages := []model.Message{{Role: "user", Content: "Hi"}}
		provider.On("GenerateChat", ctx, messages, service.DefaultTemperature, service.DefaultMaxTokens).
			Return(nil, app_errors.ErrProviderCall).Once()

		_, err := chatService.HandleChat(ctx, &model.ChatRequest{Messages: messages})
		assert.ErrorIs(t, err, app_errors.ErrProviderCall)
	})

	t.Run("Failure - disabled provider slot", func(t *testing.T) {
		registry := llm.NewRegistry(http.DefaultClient).WithBuilder(llm.ProviderGemini, nil)
		chatService := service.NewChatService(registry, func() config.ProviderSnapshot {
			return config.ProviderSnapshot{Override: "gemini"}
		})

		_, err := chatService.HandleChat(ctx, &model.ChatRequest{
			Messages: []model.Message{{Role: "user", Content: "Hi"}},
		})
		assert.ErrorIs(t, err, app_errors.ErrIntegrationUnavailable)
	})
}

func TestChatService_ProviderInfo(t *testing.T) {
	tests := []struct {
		name         string
		snap         config.ProviderSnapshot
		wantProvider string
		wantModel    string
	}{
		{
			name:         "default",
			snap:         config.ProviderSnapshot{OpenAIModel: "gpt-4o"},
			wantProvider: "openai",
			wantModel:    "gpt-4o",
		},
		{
			name:         "anthropic via key probe",
			snap:         config.ProviderSnapshot{AnthropicKey: "ak", AnthropicModel: "claude-3.5-sonnet"},
			wantProvider: "anthropic",
			wantModel:    "claude-3.5-sonnet",
		},
		{
			name:         "gemini via override",
			snap:         config.ProviderSnapshot{Override: "gemini", GeminiModel: "gemini-1.5-flash"},
			wantProvider: "gemini",
			wantModel:    "gemini-1.5-flash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := tt.snap
			chatService := service.NewChatService(llm.NewRegistry(nil), func() config.ProviderSnapshot { return snap })

			info := chatService.ProviderInfo()
			require.NotNil(t, info)
			assert.Equal(t, tt.wantProvider, info.Provider)
			assert.Equal(t, tt.wantModel, info.Model)
			assert.Equal(t, []string{"openai", "anthropic", "gemini"}, info.AvailableProviders)
		})
	}
}
