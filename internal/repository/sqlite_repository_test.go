package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inner-story/backend/internal/model"
	"inner-story/backend/internal/repository"
)

var storyColumns = []string{"story_id", "client_id", "version", "sections", "resonance_score", "created_at", "updated_at", "history"}

func setupStoryRepo(t *testing.T) (repository.StoryRepository, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteStoryRepository(db), mockDB
}

func TestSQLiteStoryRepository_FindByClientID(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		repo, mockDB := setupStoryRepo(t)

		rows := sqlmock.NewRows(storyColumns).
			AddRow("story-1", "client-A", 3,
				`{"guidingNarrative": "draft"}`, 0.5, now, now,
				`[{"version": 2, "sections": {}, "timestamp": "2025-01-01T00:00:00Z"}]`)
		mockDB.ExpectQuery("SELECT (.+) FROM stories WHERE client_id = \\?").
			WithArgs("client-A").
			WillReturnRows(rows)

		story, err := repo.FindByClientID(ctx, "client-A")
		require.NoError(t, err)
		assert.Equal(t, "story-1", story.StoryID)
		assert.Equal(t, 3, story.Version)
		assert.Equal(t, "draft", story.Sections["guidingNarrative"])
		require.NotNil(t, story.ResonanceScore)
		assert.Equal(t, 0.5, *story.ResonanceScore)
		require.Len(t, story.History, 1)
		assert.Equal(t, 2, story.History[0].Version)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mockDB := setupStoryRepo(t)

		mockDB.ExpectQuery("SELECT (.+) FROM stories WHERE client_id = \\?").
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows(storyColumns))

		_, err := repo.FindByClientID(ctx, "nobody")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Null resonance stays nil", func(t *testing.T) {
		repo, mockDB := setupStoryRepo(t)

		rows := sqlmock.NewRows(storyColumns).
			AddRow("story-1", "client-A", 1, `{}`, nil, now, now, `[]`)
		mockDB.ExpectQuery("SELECT (.+) FROM stories WHERE client_id = \\?").
			WithArgs("client-A").
			WillReturnRows(rows)

		story, err := repo.FindByClientID(ctx, "client-A")
		require.NoError(t, err)
		assert.Nil(t, story.ResonanceScore)
	})
}

func TestSQLiteStoryRepository_FindByStoryAndClient(t *testing.T) {
	repo, mockDB := setupStoryRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(storyColumns).
		AddRow("story-1", "client-A", 1, `{}`, nil, now, now, `[]`)
	mockDB.ExpectQuery("SELECT (.+) FROM stories WHERE story_id = \\? AND client_id = \\?").
		WithArgs("story-1", "client-A").
		WillReturnRows(rows)

	story, err := repo.FindByStoryAndClient(context.Background(), "story-1", "client-A")
	require.NoError(t, err)
	assert.Equal(t, "story-1", story.StoryID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteStoryRepository_Insert(t *testing.T) {
	repo, mockDB := setupStoryRepo(t)
	now := time.Now().UTC()

	story := &model.Story{
		StoryID:   "story-1",
		ClientID:  "client-A",
		Version:   1,
		Sections:  map[string]string{"guidingNarrative": ""},
		CreatedAt: now,
		UpdatedAt: now,
		// History nil on purpose: the column must still receive "[]".
	}

	mockDB.ExpectExec("INSERT INTO stories").
		WithArgs("story-1", "client-A", 1, `{"guidingNarrative":""}`, nil, now, now, `[]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), story)
	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteStoryRepository_Update(t *testing.T) {
	repo, mockDB := setupStoryRepo(t)
	now := time.Now().UTC()
	score := 0.8

	update := &repository.StoryUpdate{
		Sections:       map[string]string{"guidingNarrative": "next"},
		ResonanceScore: &score,
		UpdatedAt:      now,
		History:        []model.HistorySnapshot{{Version: 1, Timestamp: now}},
		Version:        2,
	}

	mockDB.ExpectExec("UPDATE stories SET").
		WithArgs(`{"guidingNarrative":"next"}`, 0.8, now, sqlmock.AnyArg(), 2, "story-1", "client-A").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "story-1", "client-A", update)
	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteStatusRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Insert", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		repo := repository.NewSQLiteStatusRepository(db)

		mockDB.ExpectExec("INSERT INTO status_checks").
			WithArgs("check-1", "web", now).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = repo.Insert(ctx, &model.StatusCheck{ID: "check-1", ClientName: "web", Timestamp: now})
		require.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("List", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		repo := repository.NewSQLiteStatusRepository(db)

		rows := sqlmock.NewRows([]string{"id", "client_name", "timestamp"}).
			AddRow("1", "web", now).
			AddRow("2", "cli", now)
		mockDB.ExpectQuery("SELECT id, client_name, timestamp FROM status_checks").
			WithArgs(int64(1000)).
			WillReturnRows(rows)

		checks, err := repo.List(ctx, 1000)
		require.NoError(t, err)
		require.Len(t, checks, 2)
		assert.Equal(t, "web", checks[0].ClientName)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
