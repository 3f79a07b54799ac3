package model

import (
	"time"
)

// ActivityLog 追加式动态流，供管理端最近动态使用
type ActivityLog struct {
	ID       uint64 `gorm:"primaryKey"`
	Action   string `gorm:"type:varchar(20);not null" json:"action"` // create / delete / role_change
	Entity   string `gorm:"type:varchar(20);not null" json:"entity"`
	EntityID uint64 `gorm:"not null" json:"entity_id"`
	ActorID  uint64 `gorm:"not null" json:"actor_id"`
	// Detail 可读描述，例如 "role changed to subadmin"
	Detail    string    `gorm:"type:varchar(255)" json:"detail"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
