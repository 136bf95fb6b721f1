package models

import (
	"time"
)

// Follow is a directed edge follower -> following. The ordered pair is
// unique at the schema level; inserting an existing edge is a no-op.
// Self-follow edges are rejected before the store is touched.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `gorm:"foreignKey:FollowerID" json:"-"`
	Following User `gorm:"foreignKey:FollowingID" json:"-"`
}

// FollowCounts holds the two independent edge counts for a user.
type FollowCounts struct {
	FollowingCount int64 `json:"following_count"`
	FollowerCount  int64 `json:"follower_count"`
}
