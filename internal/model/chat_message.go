package model

import (
	"time"
)

// ChatMessage 用户提交的支持消息，Reply 由管理员填写
type ChatMessage struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Content   string    `gorm:"type:varchar(2000);not null" json:"content"`
	Reply     *string   `gorm:"type:varchar(2000)" json:"reply"`
	IsRead    bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
