// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls how much data a seeding run creates.
type Options struct {
	Users           int
	PostsPerUser    int
	FollowsPerUser  int
	LikesPerUser    int
	CommentsPerUser int
	// SkipBcrypt stores a plaintext placeholder password for faster dev runs.
	SkipBcrypt bool
	// MaxDays spreads generated created_at timestamps over this many days.
	MaxDays int
}

// DefaultOptions returns a medium-sized demo dataset configuration.
func DefaultOptions() Options {
	return Options{
		Users:           25,
		PostsPerUser:    8,
		FollowsPerUser:  6,
		LikesPerUser:    15,
		CommentsPerUser: 10,
		MaxDays:         90,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
		Bio:      gofakeit.Sentence(10),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a post with a realistic created_at
// spread so feeds and listings look lived-in.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:          user.ID,
		Content:         gofakeit.Paragraph(1, 3, 8, " "),
		CommentsEnabled: true,
	}
	if f.rng.Intn(3) == 0 {
		post.MediaURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}
	post.CreatedAt = f.pastTimestamp()

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment by the given user on the given post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:    user.ID,
		PostID:    post.ID,
		Content:   gofakeit.Sentence(f.rng.Intn(12) + 3),
		CreatedAt: f.pastTimestamp(),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like edge; duplicates are silently skipped.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{UserID: user.ID, PostID: post.ID}
	return f.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(like).Error
}

// CreateFollow persists a follow edge; duplicates and self-follows are
// silently skipped.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	if follower.ID == following.ID {
		return nil
	}
	follow := &models.Follow{FollowerID: follower.ID, FollowingID: following.ID}
	return f.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).
		Create(follow).Error
}

func (f *Factory) pastTimestamp() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)
}

// Run populates the database with a connected social graph: users, posts,
// follow edges, likes and comments per the options.
func (f *Factory) Run() error {
	users := make([]*models.User, 0, f.opts.Users)
	for i := 0; i < f.opts.Users; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, u)
	}

	posts := make([]*models.Post, 0, f.opts.Users*f.opts.PostsPerUser)
	for _, u := range users {
		for i := 0; i < f.opts.PostsPerUser; i++ {
			p, err := f.CreatePost(u)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, p)
		}
	}

	for _, u := range users {
		for i := 0; i < f.opts.FollowsPerUser; i++ {
			target := users[f.rng.Intn(len(users))]
			if err := f.CreateFollow(u, target); err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
		for i := 0; i < f.opts.LikesPerUser; i++ {
			if err := f.CreateLike(u, posts[f.rng.Intn(len(posts))]); err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
		for i := 0; i < f.opts.CommentsPerUser; i++ {
			if _, err := f.CreateComment(u, posts[f.rng.Intn(len(posts))]); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	return nil
}
