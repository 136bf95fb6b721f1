package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxPostContentLen = 1000

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID          uint
	Content         string
	MediaURL        string
	CommentsEnabled *bool
}

type UpdatePostInput struct {
	UserID          uint
	PostID          uint
	Content         *string
	MediaURL        *string
	CommentsEnabled *bool
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxPostContentLen {
		return nil, models.NewValidationError("Post too long (max 1000 characters)")
	}

	post := &models.Post{
		UserID:          in.UserID,
		Content:         in.Content,
		MediaURL:        in.MediaURL,
		CommentsEnabled: true,
	}
	if in.CommentsEnabled != nil {
		post.CommentsEnabled = *in.CommentsEnabled
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// UpdatePost applies partial edits. Only the author may edit; a deleted
// post reads as not found before ownership is ever considered.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content is required")
		}
		if len(*in.Content) > maxPostContentLen {
			return nil, models.NewValidationError("Post too long (max 1000 characters)")
		}
		post.Content = *in.Content
	}
	if in.MediaURL != nil {
		post.MediaURL = *in.MediaURL
	}
	if in.CommentsEnabled != nil {
		post.CommentsEnabled = *in.CommentsEnabled
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

// ListByAuthor returns a user's posts newest first. The author must exist.
func (s *PostService) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByAuthor(ctx, authorID, limit, offset)
}

// Feed returns posts by authors the viewer follows, newest first.
func (s *PostService) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	return s.postRepo.Feed(ctx, userID, limit, offset)
}

// Search matches post content case-insensitively. An empty query is valid
// and matches everything.
func (s *PostService) Search(ctx context.Context, query string, limit, offset int) ([]models.Post, error) {
	return s.postRepo.Search(ctx, query, limit, offset)
}
