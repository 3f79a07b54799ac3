package model

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID         uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"not null;index:idx_user_id" json:"user_id"`
	CategoryID uint64 `gorm:"not null;index:idx_category_id" json:"category_id"`
	Title      string `gorm:"type:varchar(100);not null" json:"title"`
	Content    string `gorm:"type:text;not null" json:"content"`
	// Status 取值 active / inactive / draft
	Status    string    `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	ImageURL  string    `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// 软删除：默认查询范围不含已删除帖子
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 关联关系
	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
	Tags     []Tag    `gorm:"many2many:post_tags"`
}

func (Post) TableName() string {
	return "posts"
}
