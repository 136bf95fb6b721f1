// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like-edge operations.
type LikeRepository interface {
	Like(ctx context.Context, userID, postID uint) (bool, error)
	Unlike(ctx context.Context, userID, postID uint) (bool, error)
	HasLiked(ctx context.Context, userID, postID uint) (bool, error)
	LikesForPost(ctx context.Context, postID uint, limit, offset int) ([]models.PostLike, error)
	PostsLikedBy(ctx context.Context, userID uint, limit, offset int) ([]models.LikedPost, error)
}

// likeRepository implements LikeRepository
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Like inserts the edge with ON CONFLICT DO NOTHING and reports whether a
// row was inserted. RowsAffected == 0 is the authoritative "already liked"
// signal: the unique constraint holds even when two identical requests race
// past any prior existence check.
func (r *likeRepository) Like(ctx context.Context, userID, postID uint) (bool, error) {
	like := &models.Like{UserID: userID, PostID: postID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(like)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Unlike removes the edge if present; absence is not an error.
func (r *likeRepository) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// LikesForPost returns who liked the post and when, ordered by like time ascending.
func (r *likeRepository) LikesForPost(ctx context.Context, postID uint, limit, offset int) ([]models.PostLike, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	result := make([]models.PostLike, 0, len(likes))
	for _, l := range likes {
		result = append(result, models.PostLike{
			User:      l.User.Summary(),
			CreatedAt: l.CreatedAt,
		})
	}
	return result, nil
}

// PostsLikedBy returns the posts a user liked, annotated with the like
// timestamp, ordered by like time descending. Joining against the live post
// set drops tombstoned posts while their like edges stay behind.
func (r *likeRepository) PostsLikedBy(ctx context.Context, userID uint, limit, offset int) ([]models.LikedPost, error) {
	var result []models.LikedPost
	if err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.*, likes.created_at AS liked_at").
		Joins("JOIN likes ON likes.post_id = posts.id").
		Where("likes.user_id = ? AND posts.deleted_at IS NULL", userID).
		Order("likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&result).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(result) == 0 {
		return result, nil
	}

	// Scan bypasses preloading; attach the authors in one pass.
	authorIDs := make([]uint, 0, len(result))
	seen := make(map[uint]bool, len(result))
	for _, p := range result {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			authorIDs = append(authorIDs, p.UserID)
		}
	}
	var authors []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	byID := make(map[uint]models.User, len(authors))
	for _, u := range authors {
		byID[u.ID] = u
	}
	for i := range result {
		result[i].User = byID[result[i].UserID]
	}
	return result, nil
}
