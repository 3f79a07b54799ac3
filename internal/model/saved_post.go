package model

import (
	"time"
)

// SavedPost 收藏，复合主键保证 (user, post) 唯一
type SavedPost struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	PostID    uint64    `gorm:"primaryKey;index:idx_post_id" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (SavedPost) TableName() string {
	return "saved_posts"
}
