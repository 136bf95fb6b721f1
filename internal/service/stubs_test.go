package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint) (*models.Post, error)
	getByAuthorFn func(context.Context, uint, int, int) ([]models.Post, error)
	updateFn      func(context.Context, *models.Post) error
	deleteFn      func(context.Context, uint) error
	feedFn        func(context.Context, uint, int, int) ([]models.Post, error)
	searchFn      func(context.Context, string, int, int) ([]models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error) {
	return s.getByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	return s.feedFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) Search(ctx context.Context, query string, limit, offset int) ([]models.Post, error) {
	return s.searchFn(ctx, query, limit, offset)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:      func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:     func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id, CommentsEnabled: true}, nil },
		getByAuthorFn: func(_ context.Context, _ uint, _, _ int) ([]models.Post, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
		feedFn:        func(_ context.Context, _ uint, _, _ int) ([]models.Post, error) { return nil, nil },
		searchFn:      func(_ context.Context, _ string, _, _ int) ([]models.Post, error) { return nil, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
	searchByNameFn  func(context.Context, string, int, int) ([]models.UserSummary, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) SearchByName(ctx context.Context, query string, limit, offset int) ([]models.UserSummary, error) {
	return s.searchByNameFn(ctx, query, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		searchByNameFn:  func(_ context.Context, _ string, _, _ int) ([]models.UserSummary, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
	listByPostFn func(context.Context, uint, int, int) ([]models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]models.Comment, error) { return nil, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	likeFn          func(context.Context, uint, uint) (bool, error)
	unlikeFn        func(context.Context, uint, uint) (bool, error)
	hasLikedFn      func(context.Context, uint, uint) (bool, error)
	likesForPostFn  func(context.Context, uint, int, int) ([]models.PostLike, error)
	postsLikedByFn  func(context.Context, uint, int, int) ([]models.LikedPost, error)
}

func (s *likeRepoStub) Like(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *likeRepoStub) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *likeRepoStub) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.hasLikedFn(ctx, userID, postID)
}
func (s *likeRepoStub) LikesForPost(ctx context.Context, postID uint, limit, offset int) ([]models.PostLike, error) {
	return s.likesForPostFn(ctx, postID, limit, offset)
}
func (s *likeRepoStub) PostsLikedBy(ctx context.Context, userID uint, limit, offset int) ([]models.LikedPost, error) {
	return s.postsLikedByFn(ctx, userID, limit, offset)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		likeFn:         func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		unlikeFn:       func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		hasLikedFn:     func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likesForPostFn: func(_ context.Context, _ uint, _, _ int) ([]models.PostLike, error) { return nil, nil },
		postsLikedByFn: func(_ context.Context, _ uint, _, _ int) ([]models.LikedPost, error) { return nil, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	followFn      func(context.Context, uint, uint) error
	unfollowFn    func(context.Context, uint, uint) (bool, error)
	isFollowingFn func(context.Context, uint, uint) (bool, error)
	followingFn   func(context.Context, uint, int, int) ([]models.UserSummary, error)
	followersFn   func(context.Context, uint, int, int) ([]models.UserSummary, error)
	countsFn      func(context.Context, uint) (*models.FollowCounts, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.unfollowFn(ctx, followerID, followingID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error) {
	return s.followingFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error) {
	return s.followersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) Counts(ctx context.Context, userID uint) (*models.FollowCounts, error) {
	return s.countsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:      func(_ context.Context, _, _ uint) error { return nil },
		unfollowFn:    func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		isFollowingFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		followingFn:   func(_ context.Context, _ uint, _, _ int) ([]models.UserSummary, error) { return nil, nil },
		followersFn:   func(_ context.Context, _ uint, _, _ int) ([]models.UserSummary, error) { return nil, nil },
		countsFn:      func(_ context.Context, _ uint) (*models.FollowCounts, error) { return &models.FollowCounts{}, nil },
	}
}

// assertAppError asserts that err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
