package dto

// ChatSendDTO 用户提交支持消息
type ChatSendDTO struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// ChatReplyDTO 管理员回复
type ChatReplyDTO struct {
	Reply string `json:"reply" validate:"required,min=1,max=2000"`
}

// ChatMessageDTO 消息
type ChatMessageDTO struct {
	ID        uint64  `json:"id"`
	UserID    uint64  `json:"user_id"`
	Username  string  `json:"username,omitempty"`
	Content   string  `json:"content"`
	Reply     *string `json:"reply"`
	IsRead    bool    `json:"is_read"`
	CreatedAt string  `json:"created_at"`
}
