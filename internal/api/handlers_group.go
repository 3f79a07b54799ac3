package api

import "Inkstone/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	PostHandler       *handler.PostHandler
	CommentHandler    *handler.CommentHandler
	PostActionHandler *handler.PostActionHandler
	CategoryHandler   *handler.CategoryHandler
	TagHandler        *handler.TagHandler
	ChatHandler       *handler.ChatHandler
	AdminHandler      *handler.AdminHandler
	MediaHandler      *handler.MediaHandler
	WsHandler         *handler.WsHandler
}
