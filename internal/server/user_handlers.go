// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"ripple/internal/models"
	"ripple/internal/service"
	"ripple/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		FullName *string `json:"full_name"`
		Bio      *string `json:"bio"`
		Password *string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpdateProfileInput{
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Bio:      req.Bio,
	}

	if req.Password != nil {
		if err := validation.ValidatePassword(*req.Password); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		hashedStr := string(hashed)
		in.Password = &hashedStr
	}

	user, err := s.userService.UpdateProfile(c.Context(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// SearchUsers handles GET /api/users/search?q=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	q := c.Query("q")
	page := parsePagination(c, 20)

	users, err := s.userService.SearchUsers(c.Context(), q, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return paginatedJSON(c, "users", users, len(users), page)
}

// GetUserStats handles GET /api/users/:id/stats
func (s *Server) GetUserStats(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	counts, err := s.followService.Counts(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counts)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	posts, err := s.postService.ListByAuthor(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return paginatedJSON(c, "posts", posts, len(posts), page)
}

// GetUserLikedPosts handles GET /api/users/:id/likes
func (s *Server) GetUserLikedPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	liked, err := s.likeService.ListLikedPosts(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return paginatedJSON(c, "posts", liked, len(liked), page)
}
