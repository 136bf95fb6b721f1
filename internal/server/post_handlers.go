// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"errors"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Content         string `json:"content"`
		MediaURL        string `json:"media_url,omitempty"`
		CommentsEnabled *bool  `json:"comments_enabled,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:          userID,
		Content:         req.Content,
		MediaURL:        req.MediaURL,
		CommentsEnabled: req.CommentsEnabled,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content         *string `json:"content"`
		MediaURL        *string `json:"media_url"`
		CommentsEnabled *bool   `json:"comments_enabled"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:          userID,
		PostID:          postID,
		Content:         req.Content,
		MediaURL:        req.MediaURL,
		CommentsEnabled: req.CommentsEnabled,
	})
	if err != nil {
		return respondPostOwnershipError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); err != nil {
		return respondPostOwnershipError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// GetFeed handles GET /api/posts/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	posts, err := s.postService.Feed(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return paginatedJSON(c, "posts", posts, len(posts), page)
}

// GetMyPosts handles GET /api/posts/my
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	posts, err := s.postService.ListByAuthor(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return paginatedJSON(c, "posts", posts, len(posts), page)
}

// SearchPosts handles GET /api/posts/search?q=
// An empty q is valid and matches every live post.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	q := c.Query("q")
	page := parsePagination(c, 20)

	posts, err := s.postService.Search(c.Context(), q, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return paginatedJSON(c, "posts", posts, len(posts), page)
}

// respondPostOwnershipError collapses "not the owner" into the same 404 as
// "no such post", so editing someone else's post does not confirm the post
// exists.
func respondPostOwnershipError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.ErrCodeForbidden {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post not found", nil))
	}
	return respondServiceError(c, err)
}
