// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"strings"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// escapeLike neutralizes LIKE wildcards in user-supplied text so the query
// matches them literally. Patterns built from it must carry ESCAPE '\'.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error)
	Search(ctx context.Context, query string, limit, offset int) ([]models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Reload with the author so callers get a complete record back.
	if err := r.db.WithContext(ctx).Preload("User").First(post, post.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID retrieves a live post by ID. Tombstoned posts are invisible here,
// so callers see the same not-found as for an ID that never existed.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("post not found", err)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// GetByAuthor lists a user's live posts, newest first.
func (r *postRepository) GetByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Update saves modified post fields
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete tombstones a post. Comments and likes under it are retained but
// become unreachable through post lookups.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("post not found", nil)
	}
	return nil
}

// Feed lists live posts authored by users the viewer follows, newest first.
// A viewer who follows no one gets an empty feed; the viewer's own posts are
// not included unless they follow themselves, which the service layer forbids.
func (r *postRepository) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	sub := r.db.Model(&models.Follow{}).
		Select("following_id").
		Where("follower_id = ?", userID)
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN (?)", sub).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Search finds live posts whose content contains the query, case-insensitive,
// newest first. An empty query matches every live post.
func (r *postRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("LOWER(content) LIKE LOWER(?) ESCAPE '\\'", "%"+escapeLike(query)+"%").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
