package repository

import (
	"context"
	"time"

	"inner-story/backend/internal/model"
)

// StoryUpdate carries the fields the save operation replaces on an existing
// story. StoryID and ClientID are never part of an update.
type StoryUpdate struct {
	Sections       map[string]string
	ResonanceScore *float64
	UpdatedAt      time.Time
	History        []model.HistorySnapshot
	Version        int
}

// StoryRepository is the narrow document-store contract the story lifecycle
// is built on. Implementations translate their driver's "no result" into
// ErrNotFound so the service layer stays store-agnostic.
type StoryRepository interface {
	// FindByClientID returns the first story matching the client identifier.
	// clientId is not guaranteed unique; first match wins.
	FindByClientID(ctx context.Context, clientID string) (*model.Story, error)
	// FindByStoryID looks a story up by its id alone, not scoped by client.
	FindByStoryID(ctx context.Context, storyID string) (*model.Story, error)
	// FindByStoryAndClient looks a story up by the exact (storyId, clientId) pair.
	FindByStoryAndClient(ctx context.Context, storyID, clientID string) (*model.Story, error)
	Insert(ctx context.Context, story *model.Story) error
	Update(ctx context.Context, storyID, clientID string, update *StoryUpdate) error
}

// StatusRepository stores client liveness records.
type StatusRepository interface {
	Insert(ctx context.Context, check *model.StatusCheck) error
	List(ctx context.Context, limit int64) ([]model.StatusCheck, error)
}
