package dto

// ChangeRoleDTO 管理员调整用户角色
type ChangeRoleDTO struct {
	Role string `json:"role" validate:"required,oneof=admin subadmin user"`
}

// StatsDTO 管理端仪表盘数据
type StatsDTO struct {
	Users        int64 `json:"users"`
	Posts        int64 `json:"posts"`
	Comments     int64 `json:"comments"`
	Likes        int64 `json:"likes"`
	Categories   int64 `json:"categories"`
	Tags         int64 `json:"tags"`
	ChatMessages int64 `json:"chat_messages"`

	// UsersByRole 全部角色都会出现，缺失的计为 0
	UsersByRole map[string]int64 `json:"users_by_role"`

	RecentActivities []ActivityDTO `json:"recent_activities"`
}

// ActivityDTO 最近动态条目
type ActivityDTO struct {
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  uint64 `json:"entity_id"`
	ActorID   uint64 `json:"actor_id"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}
