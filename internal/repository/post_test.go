package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_Integration(t *testing.T) {
	repo := NewPostRepository(testDB)
	followRepo := NewFollowRepository(testDB)
	ctx := context.Background()

	author := newTestUser(t, "ps_author")
	reader := newTestUser(t, "ps_reader")
	stranger := newTestUser(t, "ps_stranger")

	t.Run("Create and GetByID", func(t *testing.T) {
		post := &models.Post{UserID: author.ID, Content: "hello world", CommentsEnabled: true}
		err := repo.Create(ctx, post)
		require.NoError(t, err)
		require.NotZero(t, post.ID)
		assert.Equal(t, author.Username, post.User.Username)

		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello world", got.Content)
		assert.Equal(t, author.ID, got.UserID)
	})

	t.Run("GetByID unknown returns not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
	})

	t.Run("GetByAuthor newest first", func(t *testing.T) {
		first := newTestPost(t, author.ID, "older by author")
		second := newTestPost(t, author.ID, "newer by author")
		// created_at resolution can collide in-memory; pin explicit ordering
		testDB.Model(first).Update("created_at", "2026-01-01 10:00:00")
		testDB.Model(second).Update("created_at", "2026-01-02 10:00:00")

		posts, err := repo.GetByAuthor(ctx, author.ID, 50, 0)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(posts), 2)
		assert.Equal(t, "newer by author", posts[0].Content)
		for _, p := range posts {
			assert.Equal(t, author.ID, p.UserID)
		}
	})

	t.Run("Update", func(t *testing.T) {
		post := newTestPost(t, author.ID, "before edit")
		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)

		got.Content = "after edit"
		got.CommentsEnabled = false
		require.NoError(t, repo.Update(ctx, got))

		reloaded, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "after edit", reloaded.Content)
		assert.False(t, reloaded.CommentsEnabled)
	})

	t.Run("Delete hides the post", func(t *testing.T) {
		post := newTestPost(t, author.ID, "to be removed")
		require.NoError(t, repo.Delete(ctx, post.ID))

		_, err := repo.GetByID(ctx, post.ID)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, models.ErrCodeNotFound, appErr.Code)

		// Deleting again reports not found.
		err = repo.Delete(ctx, post.ID)
		require.Error(t, err)

		// The row itself survives as a tombstone in the store.
		var raw models.Post
		require.NoError(t, testDB.Unscoped().First(&raw, post.ID).Error)
		assert.True(t, raw.DeletedAt.Valid)
		assert.Equal(t, "to be removed", raw.Content)
	})

	t.Run("Feed shows only followed authors", func(t *testing.T) {
		require.NoError(t, followRepo.Follow(ctx, reader.ID, author.ID))
		mine := newTestPost(t, reader.ID, "my own feed post")
		strangerPost := newTestPost(t, stranger.ID, "stranger feed post")
		followed := newTestPost(t, author.ID, "followed feed post")

		feed, err := repo.Feed(ctx, reader.ID, 100, 0)
		require.NoError(t, err)
		require.NotEmpty(t, feed)
		ids := make(map[uint]bool)
		for _, p := range feed {
			assert.Equal(t, author.ID, p.UserID)
			ids[p.ID] = true
		}
		assert.True(t, ids[followed.ID])
		assert.False(t, ids[mine.ID])
		assert.False(t, ids[strangerPost.ID])
	})

	t.Run("Feed is empty when following no one", func(t *testing.T) {
		loner := newTestUser(t, "ps_loner")
		feed, err := repo.Feed(ctx, loner.ID, 20, 0)
		require.NoError(t, err)
		assert.Empty(t, feed)
	})

	t.Run("Search is case-insensitive substring", func(t *testing.T) {
		newTestPost(t, author.ID, "The QUICK brown fox")

		found, err := repo.Search(ctx, "quick BROWN", 20, 0)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Contains(t, found[0].Content, "QUICK brown")
	})

	t.Run("Search treats wildcards as literals", func(t *testing.T) {
		literal := newTestPost(t, author.ID, "progress is 100% complete")
		newTestPost(t, author.ID, "progress is 100x complete")
		underscored := newTestPost(t, author.ID, "the under_score token")
		newTestPost(t, author.ID, "the underXscore token")

		found, err := repo.Search(ctx, "100%", 20, 0)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, literal.ID, found[0].ID)

		found, err = repo.Search(ctx, "under_score", 20, 0)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, underscored.ID, found[0].ID)
	})

	t.Run("Search empty query matches live posts only", func(t *testing.T) {
		gone := newTestPost(t, author.ID, "search tombstone target")
		require.NoError(t, repo.Delete(ctx, gone.ID))

		found, err := repo.Search(ctx, "", 1000, 0)
		require.NoError(t, err)
		require.NotEmpty(t, found)
		for _, p := range found {
			assert.NotEqual(t, gone.ID, p.ID)
		}
	})
}
