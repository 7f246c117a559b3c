package service

import (
	"context"
	"fmt"

	"inner-story/backend/internal/config"
	app_errors "inner-story/backend/internal/errors"
	"inner-story/backend/internal/llm"
	"inner-story/backend/internal/model"
)

// Generation defaults applied when the client leaves the knobs unset.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 800
)

// ChatService is the single entry point for chat generation. It validates
// the request, resolves the provider from a fresh configuration snapshot,
// and dispatches to the matching adapter. Selection happens exactly once per
// request; a failing provider fails the whole request, with no fallback
// across providers and no retry.
type ChatService struct {
	registry *llm.Registry
	snapshot func() config.ProviderSnapshot
}

// ProviderInfo describes the currently selected provider for the
// introspection endpoint.
type ProviderInfo struct {
	Provider           string   `json:"provider"`
	Model              string   `json:"model"`
	AvailableProviders []string `json:"available_providers"`
}

// NewChatService wires the orchestrator. snapshot defaults to the live
// viper-backed reader when nil.
func NewChatService(registry *llm.Registry, snapshot func() config.ProviderSnapshot) *ChatService {
	if snapshot == nil {
		snapshot = config.NewProviderSnapshot
	}
	return &ChatService{registry: registry, snapshot: snapshot}
}

// HandleChat validates and dispatches one chat request. Validation failures
// are detected before any provider adapter is built, so no remote I/O is
// attempted for a malformed conversation.
func (s *ChatService) HandleChat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if err := validateChatRequest(req); err != nil {
		return nil, err
	}

	temperature := DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := DefaultMaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}

	snap := s.snapshot()
	provider := llm.Select(snap)

	client, err := s.registry.ClientFor(provider, snap)
	if err != nil {
		return nil, err
	}

	return client.GenerateChat(ctx, req.Messages, temperature, maxTokens)
}

// ProviderInfo reports which provider and model the next chat request would
// use, given the current configuration.
func (s *ChatService) ProviderInfo() *ProviderInfo {
	snap := s.snapshot()
	provider := llm.Select(snap)

	var resolvedModel string
	switch provider {
	case llm.ProviderOpenAI:
		resolvedModel = snap.OpenAIModel
	case llm.ProviderAnthropic:
		resolvedModel = snap.AnthropicModel
	case llm.ProviderGemini:
		resolvedModel = snap.GeminiModel
	}

	available := make([]string, 0, 3)
	for _, id := range llm.Identities() {
		available = append(available, string(id))
	}

	return &ProviderInfo{
		Provider:           string(provider),
		Model:              resolvedModel,
		AvailableProviders: available,
	}
}

func validateChatRequest(req *model.ChatRequest) error {
	if req == nil || len(req.Messages) == 0 {
		return fmt.Errorf("%w: messages must not be empty", app_errors.ErrValidation)
	}
	if req.Messages[0].Role == "assistant" {
		return fmt.Errorf("%w: conversation must start with a user or system message", app_errors.ErrValidation)
	}
	return nil
}
