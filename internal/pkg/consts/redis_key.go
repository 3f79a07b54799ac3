package consts

const (
	TokenRevokedKey   = "token:revoked:"
	PostLikeKey       = "post:like:"
	PostCommentKey    = "post:comment:"
	ChatNotifyChannel = "chat:notify:"
)
