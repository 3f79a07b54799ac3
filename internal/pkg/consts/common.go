package consts

const (
	RoleAdmin    = "admin"
	RoleSubAdmin = "subadmin"
	RoleUser     = "user"
)

const (
	PostStatusActive   = "active"
	PostStatusInactive = "inactive"
	PostStatusDraft    = "draft"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

const MimePrefixImage = "image/"

// ActivityFeedLimit 管理端最近动态条数上限
const ActivityFeedLimit = 20
