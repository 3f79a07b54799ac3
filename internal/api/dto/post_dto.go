package dto

// PostCreateDTO 发帖
type PostCreateDTO struct {
	Title      string   `json:"title" validate:"required,min=5,max=100"`
	Content    string   `json:"content" validate:"required,min=10,max=5000"`
	CategoryID uint64   `json:"category_id" validate:"required"`
	Status     string   `json:"status" validate:"omitempty,oneof=active inactive draft"`
	ImageURL   string   `json:"image_url"`
	Tags       []string `json:"tags" validate:"omitempty,dive,min=1,max=50"`
}

// PostUpdateDTO 编辑帖子；空字段保持不变
type PostUpdateDTO struct {
	Title      *string  `json:"title" validate:"omitempty,min=5,max=100"`
	Content    *string  `json:"content" validate:"omitempty,min=10,max=5000"`
	CategoryID *uint64  `json:"category_id"`
	Status     *string  `json:"status" validate:"omitempty,oneof=active inactive draft"`
	ImageURL   *string  `json:"image_url"`
	Tags       []string `json:"tags" validate:"omitempty,dive,min=1,max=50"`
}

// PostDTO 帖子详情，关联对象拍平为客户端期望的字段
type PostDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	// User
	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`

	// Category
	CategoryID   uint64 `json:"category_id"`
	CategoryName string `json:"category_name"`

	Tags []string `json:"tags"`

	// 聚合与观察者相关字段；匿名访问时 IsLiked/IsSaved 恒为 false
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	IsLiked      bool  `json:"is_liked"`
	IsSaved      bool  `json:"is_saved"`
}

// PostListQuery 列表过滤参数
type PostListQuery struct {
	CategoryID uint64 `form:"category_id"`
	TagID      uint64 `form:"tag_id"`
	UserID     uint64 `form:"user_id"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}
