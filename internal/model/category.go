package model

import (
	"time"

	"gorm.io/gorm"
)

// Category 分类。软删除；存在关联帖子时禁止删除
type Category struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);uniqueIndex:idx_category_name;not null" json:"name"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
