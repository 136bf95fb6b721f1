// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post authored by a user. Deletion is a soft delete:
// DeletedAt is the tombstone and tombstoned rows are excluded from every
// listing, feed, and search query while the row itself persists.
type Post struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	User            User           `gorm:"foreignKey:UserID" json:"user"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	MediaURL        string         `json:"media_url,omitempty"`
	CommentsEnabled bool           `gorm:"default:true" json:"comments_enabled"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// LikedPost is a post annotated with the timestamp of the caller-relevant
// like edge, used by the "posts liked by user" listing.
type LikedPost struct {
	Post
	LikedAt time.Time `json:"liked_at"`
}
