// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow-graph operations.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	Following(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error)
	Followers(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error)
	Counts(ctx context.Context, userID uint) (*models.FollowCounts, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow inserts the edge if absent. The unique constraint on the ordered
// pair makes duplicate calls a silent no-op, so the operation is idempotent
// even under concurrent identical requests.
func (r *followRepository) Follow(ctx context.Context, followerID, followingID uint) error {
	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).
		Create(follow).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unfollow removes the edge if present and reports whether a removal occurred.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Following lists the users userID follows, ordered by username ascending.
func (r *followRepository) Following(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error) {
	var users []models.UserSummary
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.username, users.full_name").
		Joins("JOIN follows f ON f.following_id = users.id").
		Where("f.follower_id = ?", userID).
		Order("users.username ASC").
		Limit(limit).
		Offset(offset).
		Scan(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// Followers lists the users that follow userID, ordered by username ascending.
func (r *followRepository) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error) {
	var users []models.UserSummary
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.username, users.full_name").
		Joins("JOIN follows f ON f.follower_id = users.id").
		Where("f.following_id = ?", userID).
		Order("users.username ASC").
		Limit(limit).
		Offset(offset).
		Scan(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// Counts computes follower and following totals from the edge set.
func (r *followRepository) Counts(ctx context.Context, userID uint) (*models.FollowCounts, error) {
	var counts models.FollowCounts
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&counts.FollowingCount).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&counts.FollowerCount).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &counts, nil
}
