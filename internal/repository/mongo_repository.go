package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inner-story/backend/internal/model"
)

const (
	storiesCollection = "stories"
	statusCollection  = "status_checks"
)

type mongoStoryRepository struct {
	stories *mongo.Collection
}

// NewMongoStoryRepository returns a StoryRepository backed by the "stories"
// collection of the given database.
func NewMongoStoryRepository(db *mongo.Database) StoryRepository {
	return &mongoStoryRepository{stories: db.Collection(storiesCollection)}
}

func (r *mongoStoryRepository) findOne(ctx context.Context, filter bson.M) (*model.Story, error) {
	var story model.Story
	err := r.stories.FindOne(ctx, filter).Decode(&story)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not query stories: %w", err)
	}
	return &story, nil
}

func (r *mongoStoryRepository) FindByClientID(ctx context.Context, clientID string) (*model.Story, error) {
	return r.findOne(ctx, bson.M{"clientId": clientID})
}

func (r *mongoStoryRepository) FindByStoryID(ctx context.Context, storyID string) (*model.Story, error) {
	return r.findOne(ctx, bson.M{"storyId": storyID})
}

func (r *mongoStoryRepository) FindByStoryAndClient(ctx context.Context, storyID, clientID string) (*model.Story, error) {
	return r.findOne(ctx, bson.M{"storyId": storyID, "clientId": clientID})
}

func (r *mongoStoryRepository) Insert(ctx context.Context, story *model.Story) error {
	if _, err := r.stories.InsertOne(ctx, story); err != nil {
		return fmt.Errorf("could not insert story: %w", err)
	}
	return nil
}

func (r *mongoStoryRepository) Update(ctx context.Context, storyID, clientID string, update *StoryUpdate) error {
	// Filters on the id pair only; no version precondition. Concurrent saves
	// to the same pair resolve last-write-wins.
	filter := bson.M{"storyId": storyID, "clientId": clientID}
	set := bson.M{"$set": bson.M{
		"sections":       update.Sections,
		"resonanceScore": update.ResonanceScore,
		"updatedAt":      update.UpdatedAt,
		"history":        update.History,
		"version":        update.Version,
	}}
	if _, err := r.stories.UpdateOne(ctx, filter, set); err != nil {
		return fmt.Errorf("could not update story: %w", err)
	}
	return nil
}

type mongoStatusRepository struct {
	checks *mongo.Collection
}

// NewMongoStatusRepository returns a StatusRepository backed by the
// "status_checks" collection.
func NewMongoStatusRepository(db *mongo.Database) StatusRepository {
	return &mongoStatusRepository{checks: db.Collection(statusCollection)}
}

func (r *mongoStatusRepository) Insert(ctx context.Context, check *model.StatusCheck) error {
	if _, err := r.checks.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("could not insert status check: %w", err)
	}
	return nil
}

func (r *mongoStatusRepository) List(ctx context.Context, limit int64) ([]model.StatusCheck, error) {
	cursor, err := r.checks.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("could not query status checks: %w", err)
	}
	defer cursor.Close(ctx)

	var checks []model.StatusCheck
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("could not decode status checks: %w", err)
	}
	return checks, nil
}
