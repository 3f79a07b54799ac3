package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Email     string `gorm:"type:varchar(100);uniqueIndex:idx_email;not null" json:"email"`
	Username  string `gorm:"type:varchar(50);uniqueIndex:idx_username;not null" json:"username"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	AvatarURL string `gorm:"type:varchar(255)" json:"avatar_url"`
	RoleID    uint64 `gorm:"not null;index:idx_role_id" json:"role_id"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Role Role `gorm:"foreignKey:RoleID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
