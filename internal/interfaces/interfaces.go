package interfaces

import (
	"context"

	"inner-story/backend/internal/model"
	"inner-story/backend/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// ChatService defines the contract for chat generation and provider
// introspection.
type ChatService interface {
	HandleChat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
	ProviderInfo() *service.ProviderInfo
}

// StoryService defines the contract for the story document lifecycle.
type StoryService interface {
	Init(ctx context.Context, clientID string) (*model.Story, error)
	Save(ctx context.Context, storyID, clientID string, sections map[string]string, resonanceScore *float64) (*model.Story, error)
	Get(ctx context.Context, storyID string) (*model.Story, error)
}

// StatusService defines the contract for client status checks.
type StatusService interface {
	Create(ctx context.Context, clientName string) (*model.StatusCheck, error)
	List(ctx context.Context) ([]model.StatusCheck, error)
}
