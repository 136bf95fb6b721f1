package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// FollowUser creates a follow edge. Self-follows are rejected before the
// store is touched; following someone already followed is a quiet success.
func (s *FollowService) FollowUser(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return err
	}
	return s.followRepo.Follow(ctx, followerID, followingID)
}

// UnfollowUser removes the edge. Unfollowing someone never followed succeeds
// quietly, mirroring the idempotent follow.
func (s *FollowService) UnfollowUser(ctx context.Context, followerID, followingID uint) error {
	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return err
	}
	_, err := s.followRepo.Unfollow(ctx, followerID, followingID)
	return err
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followingID)
}

// ListFollowing returns who a user follows, username ascending.
func (s *FollowService) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Following(ctx, userID, limit, offset)
}

// ListFollowers returns a user's followers, username ascending.
func (s *FollowService) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Followers(ctx, userID, limit, offset)
}

// Counts returns follower and following totals for a user.
func (s *FollowService) Counts(ctx context.Context, userID uint) (*models.FollowCounts, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Counts(ctx, userID)
}
