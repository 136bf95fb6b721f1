package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

type UpdateProfileInput struct {
	UserID   uint
	Username *string
	Email    *string
	FullName *string
	Bio      *string
	Password *string // already bcrypt-hashed by the caller
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// GetProfile returns a user together with live follower/following counts.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.followRepo.Counts(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		User:           *user,
		FollowerCount:  counts.FollowerCount,
		FollowingCount: counts.FollowingCount,
	}, nil
}

// UpdateProfile applies partial edits to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		if err := validation.ValidateUsername(*in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if other, err := s.userRepo.GetByUsername(ctx, *in.Username); err == nil && other.ID != in.UserID {
			return nil, models.NewConflictError("Username already taken")
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if other, err := s.userRepo.GetByEmail(ctx, *in.Email); err == nil && other.ID != in.UserID {
			return nil, models.NewConflictError("Email already in use")
		}
		user.Email = *in.Email
	}
	if in.FullName != nil {
		if err := validation.ValidateFullName(*in.FullName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FullName = *in.FullName
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Password != nil {
		user.Password = *in.Password
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SearchUsers finds users by username or display name, case-insensitive.
func (s *UserService) SearchUsers(ctx context.Context, query string, limit, offset int) ([]models.UserSummary, error) {
	return s.userRepo.SearchByName(ctx, query, limit, offset)
}
