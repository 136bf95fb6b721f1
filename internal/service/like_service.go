package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// LikePost records a like. Liking the same post twice is an error; the
// insert's row count is the authority on duplication, so two racing requests
// cannot both succeed.
func (s *LikeService) LikePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	inserted, err := s.likeRepo.Like(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !inserted {
		return models.NewConflictError("You have already liked this post")
	}
	return nil
}

// UnlikePost removes a like. Unliking a post that was never liked succeeds
// quietly.
func (s *LikeService) UnlikePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	_, err := s.likeRepo.Unlike(ctx, userID, postID)
	return err
}

// ListLikes returns who liked a post, earliest like first.
func (s *LikeService) ListLikes(ctx context.Context, postID uint, limit, offset int) ([]models.PostLike, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.likeRepo.LikesForPost(ctx, postID, limit, offset)
}

// ListLikedPosts returns posts a user liked, most recent like first.
func (s *LikeService) ListLikedPosts(ctx context.Context, userID uint, limit, offset int) ([]models.LikedPost, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.likeRepo.PostsLikedBy(ctx, userID, limit, offset)
}

func (s *LikeService) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return false, err
	}
	return s.likeRepo.HasLiked(ctx, userID, postID)
}
