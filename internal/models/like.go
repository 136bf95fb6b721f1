package models

import (
	"time"
)

// Like is an edge between a user and a post. The (UserID, PostID) pair is
// unique at the schema level; the constraint is the authoritative duplicate
// signal under concurrent inserts.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

// PostLike is the shape returned by the per-post like listing: who liked,
// and when.
type PostLike struct {
	User      UserSummary `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}
