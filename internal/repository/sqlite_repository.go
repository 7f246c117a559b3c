package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"inner-story/backend/internal/model"
)

type sqliteStoryRepository struct {
	db *sql.DB
}

// NewSQLiteStoryRepository returns a StoryRepository over a local SQLite
// database. Sections and history are stored as JSON text columns; this
// implementation backs deployments without a MongoDB instance.
func NewSQLiteStoryRepository(db *sql.DB) StoryRepository {
	return &sqliteStoryRepository{db: db}
}

const storyColumns = "story_id, client_id, version, sections, resonance_score, created_at, updated_at, history"

func scanStory(row *sql.Row) (*model.Story, error) {
	var story model.Story
	var sections, history string
	var resonance sql.NullFloat64

	err := row.Scan(&story.StoryID, &story.ClientID, &story.Version, &sections, &resonance, &story.CreatedAt, &story.UpdatedAt, &history)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(sections), &story.Sections); err != nil {
		return nil, fmt.Errorf("could not decode sections: %w", err)
	}
	if err := json.Unmarshal([]byte(history), &story.History); err != nil {
		return nil, fmt.Errorf("could not decode history: %w", err)
	}
	if resonance.Valid {
		story.ResonanceScore = &resonance.Float64
	}
	return &story, nil
}

func (r *sqliteStoryRepository) FindByClientID(ctx context.Context, clientID string) (*model.Story, error) {
	query := "SELECT " + storyColumns + " FROM stories WHERE client_id = ? ORDER BY created_at ASC LIMIT 1"
	return scanStory(r.db.QueryRowContext(ctx, query, clientID))
}

func (r *sqliteStoryRepository) FindByStoryID(ctx context.Context, storyID string) (*model.Story, error) {
	query := "SELECT " + storyColumns + " FROM stories WHERE story_id = ?"
	return scanStory(r.db.QueryRowContext(ctx, query, storyID))
}

func (r *sqliteStoryRepository) FindByStoryAndClient(ctx context.Context, storyID, clientID string) (*model.Story, error) {
	query := "SELECT " + storyColumns + " FROM stories WHERE story_id = ? AND client_id = ?"
	return scanStory(r.db.QueryRowContext(ctx, query, storyID, clientID))
}

func (r *sqliteStoryRepository) Insert(ctx context.Context, story *model.Story) error {
	sections, err := json.Marshal(story.Sections)
	if err != nil {
		return fmt.Errorf("could not encode sections: %w", err)
	}
	history, err := marshalHistory(story.History)
	if err != nil {
		return err
	}

	var resonance sql.NullFloat64
	if story.ResonanceScore != nil {
		resonance = sql.NullFloat64{Float64: *story.ResonanceScore, Valid: true}
	}

	query := "INSERT INTO stories (" + storyColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	_, err = r.db.ExecContext(ctx, query,
		story.StoryID, story.ClientID, story.Version, string(sections), resonance,
		story.CreatedAt, story.UpdatedAt, string(history))
	return err
}

func (r *sqliteStoryRepository) Update(ctx context.Context, storyID, clientID string, update *StoryUpdate) error {
	sections, err := json.Marshal(update.Sections)
	if err != nil {
		return fmt.Errorf("could not encode sections: %w", err)
	}
	history, err := marshalHistory(update.History)
	if err != nil {
		return err
	}

	var resonance sql.NullFloat64
	if update.ResonanceScore != nil {
		resonance = sql.NullFloat64{Float64: *update.ResonanceScore, Valid: true}
	}

	query := "UPDATE stories SET sections = ?, resonance_score = ?, updated_at = ?, history = ?, version = ? WHERE story_id = ? AND client_id = ?"
	_, err = r.db.ExecContext(ctx, query,
		string(sections), resonance, update.UpdatedAt, string(history), update.Version,
		storyID, clientID)
	return err
}

// marshalHistory keeps an empty history as "[]" instead of "null" so the
// column always decodes into a slice.
func marshalHistory(history []model.HistorySnapshot) ([]byte, error) {
	if history == nil {
		history = []model.HistorySnapshot{}
	}
	b, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("could not encode history: %w", err)
	}
	return b, nil
}

type sqliteStatusRepository struct {
	db *sql.DB
}

// NewSQLiteStatusRepository returns a StatusRepository over SQLite.
func NewSQLiteStatusRepository(db *sql.DB) StatusRepository {
	return &sqliteStatusRepository{db: db}
}

func (r *sqliteStatusRepository) Insert(ctx context.Context, check *model.StatusCheck) error {
	query := "INSERT INTO status_checks (id, client_name, timestamp) VALUES (?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, check.ID, check.ClientName, check.Timestamp)
	return err
}

func (r *sqliteStatusRepository) List(ctx context.Context, limit int64) ([]model.StatusCheck, error) {
	query := "SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp ASC LIMIT ?"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []model.StatusCheck
	for rows.Next() {
		var check model.StatusCheck
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}
	return checks, rows.Err()
}
