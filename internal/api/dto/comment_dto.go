package dto

// CommentCreateDTO 发表评论
type CommentCreateDTO struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// CommentUpdateDTO 修改评论
type CommentUpdateDTO struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`

	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}
