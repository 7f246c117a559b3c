package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	app_errors "inner-story/backend/internal/errors"
	"inner-story/backend/internal/model"
	"inner-story/backend/internal/repository"
)

// historyLimit bounds a story's history to the most recent snapshots.
// Appending past the limit evicts the oldest entry first.
const historyLimit = 10

// StoryService manages the lifecycle of a versioned story document:
// find-or-create initialization and the optimistic save that bumps the
// version while preserving a bounded window of pre-update snapshots.
type StoryService struct {
	repo repository.StoryRepository
}

func NewStoryService(repo repository.StoryRepository) *StoryService {
	return &StoryService{repo: repo}
}

// Init returns the first story matching clientID, creating a fresh one when
// none exists. Calling it again without an intervening save returns the same
// document; it never resets progress.
func (s *StoryService) Init(ctx context.Context, clientID string) (*model.Story, error) {
	existing, err := s.repo.FindByClientID(ctx, clientID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
	}

	now := time.Now().UTC()
	story := &model.Story{
		StoryID:   uuid.NewString(),
		ClientID:  clientID,
		Version:   1,
		Sections:  model.DefaultSections(),
		CreatedAt: now,
		UpdatedAt: now,
		History:   []model.HistorySnapshot{},
	}
	if err := s.repo.Insert(ctx, story); err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
	}

	slog.Info("Created new story", "story_id", story.StoryID, "client_id", clientID)
	return story, nil
}

// Save updates the story identified by the exact (storyID, clientID) pair.
// A miss creates the document instead of failing; saving is never rejected
// for an unknown id. A hit appends the pre-update state to history, trims
// the window to the newest entries, and bumps the version by exactly one.
//
// The read-modify-write here is not atomic against concurrent saves to the
// same pair: two racing saves can both observe version N and write N+1, with
// the store's last write winning and one snapshot lost. Accepted limitation;
// callers needing strict optimistic concurrency must add a version
// precondition at the store layer.
func (s *StoryService) Save(ctx context.Context, storyID, clientID string, sections map[string]string, resonanceScore *float64) (*model.Story, error) {
	existing, err := s.repo.FindByStoryAndClient(ctx, storyID, clientID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
		}
		return s.createOnSave(ctx, storyID, clientID, sections, resonanceScore)
	}

	snapshot := model.HistorySnapshot{
		Version:        existing.Version,
		Sections:       existing.Sections,
		ResonanceScore: existing.ResonanceScore,
		Timestamp:      snapshotTimestamp(existing),
	}

	update := &repository.StoryUpdate{
		Sections:       sections,
		ResonanceScore: resonanceScore,
		UpdatedAt:      time.Now().UTC(),
		History:        appendBounded(existing.History, snapshot),
		Version:        existing.Version + 1,
	}
	if err := s.repo.Update(ctx, storyID, clientID, update); err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
	}

	updated, err := s.repo.FindByStoryAndClient(ctx, storyID, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
	}
	return updated, nil
}

// Get looks a story up by id alone, not scoped by client.
func (s *StoryService) Get(ctx context.Context, storyID string) (*model.Story, error) {
	story, err := s.repo.FindByStoryID(ctx, storyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: story %s", app_errors.ErrNotFound, storyID)
		}
		return nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
	}
	return story, nil
}

func (s *StoryService) createOnSave(ctx context.Context, storyID, clientID string, sections map[string]string, resonanceScore *float64) (*model.Story, error) {
	if storyID == "" {
		storyID = uuid.NewString()
	}
	if len(sections) == 0 {
		sections = model.DefaultSections()
	}

	now := time.Now().UTC()
	story := &model.Story{
		StoryID:        storyID,
		ClientID:       clientID,
		Version:        1,
		Sections:       sections,
		ResonanceScore: resonanceScore,
		CreatedAt:      now,
		UpdatedAt:      now,
		History:        []model.HistorySnapshot{},
	}
	if err := s.repo.Insert(ctx, story); err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
	}

	slog.Info("Created story on save", "story_id", storyID, "client_id", clientID)
	return story, nil
}

// appendBounded implements the fixed-capacity window over history: append,
// then drop the oldest entries until at most historyLimit remain.
func appendBounded(history []model.HistorySnapshot, snapshot model.HistorySnapshot) []model.HistorySnapshot {
	history = append(history, snapshot)
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	return history
}

// snapshotTimestamp is the moment the captured state became current: the
// previous update time, or creation time for a story never saved before.
func snapshotTimestamp(story *model.Story) time.Time {
	if !story.UpdatedAt.IsZero() {
		return story.UpdatedAt
	}
	return story.CreatedAt
}
